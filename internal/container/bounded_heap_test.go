package container

import (
	"sort"
	"testing"
)

type testKey int

func (k testKey) IntoIndex() int { return int(k) }

func TestBoundedHeapEmpty(t *testing.T) {
	var h BoundedHeap[testKey, int]
	if h.Len() != 0 || !h.IsEmpty() {
		t.Fatalf("expected empty heap")
	}
	h.ResizeCapacity(10)
	if h.Capacity() != 10 {
		t.Fatalf("capacity = %d, want 10", h.Capacity())
	}
	if !h.IsEmpty() {
		t.Fatalf("expected still empty after resize")
	}
}

func TestBoundedHeapContains(t *testing.T) {
	var h BoundedHeap[testKey, int]
	h.ResizeCapacity(10)
	for i := 0; i < 10; i++ {
		ok, err := h.Contains(testKey(i))
		if err != nil || ok {
			t.Fatalf("key %d unexpectedly contained", i)
		}
	}
	if err := h.PushOrUpdate(5, func(int) int { return 42 }); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		ok, _ := h.Contains(testKey(i))
		if ok != (i == 5) {
			t.Fatalf("key %d contained = %v", i, ok)
		}
	}
}

func TestBoundedHeapNoDuplicateOnDoubleInsert(t *testing.T) {
	var h BoundedHeap[testKey, int]
	h.ResizeCapacity(10)
	h.PushOrUpdate(5, func(int) int { return 42 })
	h.PushOrUpdate(5, func(int) int { return 42 })
	if h.Len() != 1 {
		t.Fatalf("len = %d, want 1", h.Len())
	}
	k, w, ok := h.Pop()
	if !ok || k != 5 || w != 42 {
		t.Fatalf("pop = (%v, %v, %v)", k, w, ok)
	}
}

func TestBoundedHeapOutOfBoundsKeyRejected(t *testing.T) {
	var h BoundedHeap[testKey, int]
	h.ResizeCapacity(10)
	if err := h.PushOrUpdate(10, func(int) int { return 42 }); err == nil {
		t.Fatalf("expected out of bounds error")
	}
}

func TestBoundedHeapDescendingRemovalSequence(t *testing.T) {
	priorities := []int{3, 9, 1, -5, -10, -9, 10, 0, -1, 7}
	var h BoundedHeap[testKey, int]
	h.ResizeCapacity(len(priorities))
	for k, w := range priorities {
		w := w
		if err := h.PushOrUpdate(testKey(k), func(int) int { return w }); err != nil {
			t.Fatal(err)
		}
	}
	if !h.satisfiesHeapProperty() {
		t.Fatalf("heap property violated after insertion")
	}
	var got []int
	for {
		_, w, ok := h.Pop()
		if !ok {
			break
		}
		got = append(got, w)
		if !h.satisfiesHeapProperty() {
			t.Fatalf("heap property violated after pop")
		}
	}
	want := append([]int(nil), priorities...)
	sort.Sort(sort.Reverse(sort.IntSlice(want)))
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBoundedHeapPushPopSequence(t *testing.T) {
	weights := []int{3, 9, 1, -5}
	var h BoundedHeap[testKey, int]
	h.ResizeCapacity(10)
	for k, w := range weights {
		w := w
		h.PushOrUpdate(testKey(k), func(int) int { return w })
	}
	mustPop := func(wantK testKey, wantW int) {
		t.Helper()
		k, w, ok := h.Pop()
		if !ok || k != wantK || w != wantW {
			t.Fatalf("pop = (%v, %v, %v), want (%v, %v)", k, w, ok, wantK, wantW)
		}
	}
	mustPop(1, 9)
	mustPop(0, 3)
	h.PushOrUpdate(testKey(len(weights)), func(int) int { return 2 })
	mustPop(testKey(len(weights)), 2)
	h.PushOrUpdate(testKey(len(weights)+1), func(int) int { return -3 })
	mustPop(2, 1)
	mustPop(testKey(len(weights)+1), -3)
	mustPop(3, -5)
}

func TestBoundedHeapResize(t *testing.T) {
	weights := []int{10, 30, 20}
	var h BoundedHeap[testKey, int]
	h.ResizeCapacity(len(weights))
	for k, w := range weights {
		w := w
		h.PushOrUpdate(testKey(k), func(int) int { return w })
	}
	if err := h.PushOrUpdate(testKey(len(weights)), func(int) int { return 40 }); err == nil {
		t.Fatalf("expected out of bounds error before resize")
	}
	h.ResizeCapacity(len(weights) + 1)
	if err := h.PushOrUpdate(testKey(len(weights)), func(int) int { return 40 }); err != nil {
		t.Fatal(err)
	}
	k, w, ok := h.Pop()
	if !ok || k != testKey(len(weights)) || w != 40 {
		t.Fatalf("pop = (%v, %v, %v)", k, w, ok)
	}
}

func TestBoundedHeapRestoreViaIdentity(t *testing.T) {
	var h BoundedHeap[testKey, int]
	h.ResizeCapacity(3)
	h.PushOrUpdate(0, func(int) int { return 5 })
	h.PushOrUpdate(1, func(int) int { return 7 })
	k, _, _ := h.Pop()
	if k != 1 {
		t.Fatalf("expected to pop key 1 first")
	}
	// Restore the popped key with its previous priority via identity.
	if err := h.PushOrUpdate(1, func(w int) int { return w }); err != nil {
		t.Fatal(err)
	}
	k, w, ok := h.Pop()
	if !ok || k != 1 || w != 7 {
		t.Fatalf("restored pop = (%v, %v, %v)", k, w, ok)
	}
}
