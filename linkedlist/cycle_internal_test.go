package linkedlist

import "testing"

// Cycles cannot be produced through the public API, so the detector's
// positive cases splice node chains directly.

func TestHasCycle_SplicedLoop(t *testing.T) {
	a := &node[int]{val: 1}
	b := &node[int]{val: 2}
	c := &node[int]{val: 3}
	a.next, b.next, c.next = b, c, b // 1→2→3→2...

	l := &List[int]{head: a, size: 3}
	if !l.HasCycle() {
		t.Fatal("spliced loop not detected")
	}
}

func TestHasCycle_SelfLoop(t *testing.T) {
	a := &node[int]{val: 1}
	a.next = a

	l := &List[int]{head: a, size: 1}
	if !l.HasCycle() {
		t.Fatal("self-loop not detected")
	}
}

func TestHasCycle_StraightChain(t *testing.T) {
	l := New[int]()
	for v := 0; v < 5; v++ {
		l.PushBack(v)
	}
	if l.HasCycle() {
		t.Fatal("acyclic chain reported as cyclic")
	}
}
