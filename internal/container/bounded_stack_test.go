package container

import "testing"

func TestBoundedStackResizeCapacity(t *testing.T) {
	var s BoundedStack[int]
	s.ResizeCapacity(5)
	if s.Capacity() != 5 {
		t.Fatalf("capacity = %d, want 5", s.Capacity())
	}
	s.ResizeCapacity(10)
	if s.Capacity() != 10 {
		t.Fatalf("capacity = %d, want 10", s.Capacity())
	}
	s.Push(1)
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestBoundedStackPushPop(t *testing.T) {
	var s BoundedStack[int]
	s.ResizeCapacity(2)
	s.Push(1)
	s.Push(2)
	if !s.IsFull() {
		t.Fatalf("expected stack full")
	}
	if err := s.TryPush(3); err == nil {
		t.Fatalf("expected out of bounds error when pushing past capacity")
	}
	v, ok := s.Pop()
	if !ok || v != 2 {
		t.Fatalf("pop = (%v, %v), want (2, true)", v, ok)
	}
}

func TestBoundedStackPopTo(t *testing.T) {
	var s BoundedStack[int]
	s.ResizeCapacity(5)
	for i := 1; i <= 5; i++ {
		s.Push(i)
	}
	var popped []int
	s.PopTo(2, func(v int) { popped = append(popped, v) })
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	want := []int{5, 4, 3}
	for i := range want {
		if popped[i] != want[i] {
			t.Fatalf("popped = %v, want %v", popped, want)
		}
	}
}
