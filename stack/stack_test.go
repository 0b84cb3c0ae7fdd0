package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nartvell/gostructs/stack"
)

func TestZeroValueAndNew(t *testing.T) {
	var zero stack.Stack[int]
	assert.True(t, zero.IsEmpty())
	assert.Zero(t, zero.Len())

	s := stack.New[int]()
	assert.True(t, s.IsEmpty())

	_, err := s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmpty)
	_, err = s.Top()
	assert.ErrorIs(t, err, stack.ErrEmpty)
	_, err = s.Bottom()
	assert.ErrorIs(t, err, stack.ErrEmpty)
}

func TestPushPop_LIFO(t *testing.T) {
	s := stack.New[int]()
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	require.Equal(t, 3, s.Len())

	for want := 3; want >= 1; want-- {
		top, err := s.Top()
		require.NoError(t, err)
		assert.Equal(t, want, top)

		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

func TestBottomAndAt(t *testing.T) {
	s := stack.New[string]()
	s.Push("first")
	s.Push("middle")
	s.Push("last")

	bottom, err := s.Bottom()
	require.NoError(t, err)
	assert.Equal(t, "first", bottom)

	// At counts down from the top
	for i, want := range []string{"last", "middle", "first"} {
		got, err := s.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = s.At(3)
	assert.ErrorIs(t, err, stack.ErrIndexOutOfRange)
	_, err = s.At(-1)
	assert.ErrorIs(t, err, stack.ErrIndexOutOfRange)
}

func TestClear(t *testing.T) {
	s := stack.New[int]()
	s.Push(7)
	s.Push(8)

	s.Clear()
	assert.True(t, s.IsEmpty())
	_, err := s.Top()
	assert.ErrorIs(t, err, stack.ErrEmpty)

	// still usable after clearing
	s.Push(9)
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, 9, top)
}

func TestReverse(t *testing.T) {
	s := stack.New[int]()
	for i := 1; i <= 4; i++ {
		s.Push(i)
	}

	s.Reverse()
	assert.Equal(t, []int{1, 2, 3, 4}, s.ToSlice())

	s.Reverse()
	assert.Equal(t, []int{4, 3, 2, 1}, s.ToSlice())
}

func TestSwap(t *testing.T) {
	a := stack.New[int]()
	a.Push(1)
	b := stack.New[int]()
	b.Push(2)
	b.Push(3)

	a.Swap(b)
	assert.Equal(t, []int{3, 2}, a.ToSlice())
	assert.Equal(t, []int{1}, b.ToSlice())
}

func TestToSlice_TopFirstAndIndependent(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)

	snap := s.ToSlice()
	assert.Equal(t, []int{2, 1}, snap)

	// mutating the snapshot must not touch the stack
	snap[0] = 99
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, 2, top)

	empty := stack.New[int]()
	assert.Empty(t, empty.ToSlice())
}

func TestEqual(t *testing.T) {
	a := stack.New[int]()
	b := stack.New[int]()
	assert.True(t, stack.Equal(a, b))

	a.Push(1)
	a.Push(2)
	b.Push(1)
	assert.False(t, stack.Equal(a, b))

	b.Push(2)
	assert.True(t, stack.Equal(a, b))

	b.Push(3)
	assert.False(t, stack.Equal(a, b))
}
