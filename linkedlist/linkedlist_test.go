package linkedlist_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nartvell/gostructs/linkedlist"
)

func TestZeroValueAndNew(t *testing.T) {
	var zero linkedlist.List[int]
	assert.True(t, zero.IsEmpty())
	assert.False(t, zero.HasCycle())

	l := linkedlist.New[int]()
	_, err := l.PopFront()
	assert.ErrorIs(t, err, linkedlist.ErrEmpty)
	_, err = l.Middle()
	assert.ErrorIs(t, err, linkedlist.ErrEmpty)
}

func TestPushPop(t *testing.T) {
	l := linkedlist.New[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	assert.Equal(t, 3, l.Len())

	v, err := l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, l.Len())
}

func TestInsertSorted(t *testing.T) {
	l := linkedlist.New[int]()
	for _, v := range []int{5, 1, 3, 3, 9, 0} {
		l.InsertSorted(v)
	}
	assert.Equal(t, []int{0, 1, 3, 3, 5, 9}, l.ToSlice())
	assert.Equal(t, 6, l.Len())
}

func TestRemove(t *testing.T) {
	l := linkedlist.New[int]()
	for _, v := range []int{1, 2, 3, 2} {
		l.PushBack(v)
	}

	assert.True(t, l.Remove(2)) // first occurrence only
	assert.Equal(t, []int{1, 3, 2}, l.ToSlice())

	assert.True(t, l.Remove(1)) // head
	assert.Equal(t, []int{3, 2}, l.ToSlice())

	assert.False(t, l.Remove(42))
	assert.Equal(t, 2, l.Len())
}

func TestReverse(t *testing.T) {
	l := linkedlist.New[int]()
	l.Reverse() // empty: no-op
	for _, v := range []int{1, 2, 3} {
		l.PushBack(v)
	}
	l.Reverse()
	assert.Equal(t, []int{3, 2, 1}, l.ToSlice())
}

func TestSort(t *testing.T) {
	l := linkedlist.New[int]()
	for _, v := range []int{4, 1, 3, 2, 1} {
		l.PushBack(v)
	}
	l.Sort()
	assert.Equal(t, []int{1, 1, 2, 3, 4}, l.ToSlice())

	// already sorted and trivial lists survive
	l.Sort()
	assert.Equal(t, []int{1, 1, 2, 3, 4}, l.ToSlice())

	single := linkedlist.New[int]()
	single.PushBack(7)
	single.Sort()
	assert.Equal(t, []int{7}, single.ToSlice())
}

// TestSort_Random compares against the slice sort on seeded inputs.
func TestSort_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 5; trial++ {
		l := linkedlist.New[int]()
		want := make([]int, 0, 60)
		for i := 0; i < 60; i++ {
			v := rng.Intn(50)
			l.PushBack(v)
			want = append(want, v)
		}

		l.Sort()
		sort.Ints(want)
		require.Equal(t, want, l.ToSlice(), "trial %d", trial)
	}
}

func TestMiddle(t *testing.T) {
	l := linkedlist.New[int]()
	l.PushBack(1)

	mid, err := l.Middle()
	require.NoError(t, err)
	assert.Equal(t, 1, mid)

	l.PushBack(2)
	mid, _ = l.Middle() // even length: second of the two middles
	assert.Equal(t, 2, mid)

	l.PushBack(3)
	mid, _ = l.Middle()
	assert.Equal(t, 2, mid)
}

func TestNthFromEnd(t *testing.T) {
	l := linkedlist.New[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		l.PushBack(v)
	}

	last, err := l.NthFromEnd(1)
	require.NoError(t, err)
	assert.Equal(t, "d", last)

	first, err := l.NthFromEnd(4)
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	_, err = l.NthFromEnd(0)
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)
	_, err = l.NthFromEnd(5)
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		k    int
		want []int
	}{
		{"by one", 1, []int{2, 3, 4, 1}},
		{"by length is identity", 4, []int{1, 2, 3, 4}},
		{"wraps past length", 5, []int{2, 3, 4, 1}},
		{"negative rotates right", -1, []int{4, 1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := linkedlist.New[int]()
			for _, v := range []int{1, 2, 3, 4} {
				l.PushBack(v)
			}
			l.Rotate(tc.k)
			assert.Equal(t, tc.want, l.ToSlice())
			assert.Equal(t, 4, l.Len())
		})
	}
}

func TestUnique(t *testing.T) {
	l := linkedlist.New[int]()
	for _, v := range []int{1, 1, 2, 3, 3, 3, 4} {
		l.PushBack(v)
	}
	l.Unique()
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
	assert.Equal(t, 4, l.Len())

	// only adjacent runs collapse; an unsorted list keeps repeats apart
	m := linkedlist.New[int]()
	for _, v := range []int{1, 2, 1} {
		m.PushBack(v)
	}
	m.Unique()
	assert.Equal(t, []int{1, 2, 1}, m.ToSlice())
}

func TestClear(t *testing.T) {
	l := linkedlist.New[int]()
	l.PushBack(1)
	l.Clear()
	assert.True(t, l.IsEmpty())

	l.PushBack(2)
	assert.Equal(t, []int{2}, l.ToSlice())
}
