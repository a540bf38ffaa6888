package container

import "testing"

func TestBoundedArrayGetSet(t *testing.T) {
	var a BoundedArray[testKey, byte]
	a.ResizeWith(3, func() byte { return 0 })
	if a.Len() != 3 {
		t.Fatalf("len = %d, want 3", a.Len())
	}
	if err := a.Update(testKey(1), 'B'); err != nil {
		t.Fatal(err)
	}
	v, err := a.Get(testKey(1))
	if err != nil || v != 'B' {
		t.Fatalf("get = (%v, %v)", v, err)
	}
	if _, err := a.Get(testKey(3)); err == nil {
		t.Fatalf("expected out of bounds error")
	}
}

func TestBoundedArraySwap(t *testing.T) {
	var a BoundedArray[testKey, int]
	a.ResizeWith(2, func() int { return 0 })
	a.Update(testKey(0), 1)
	a.Update(testKey(1), 2)
	if err := a.Swap(testKey(0), testKey(1)); err != nil {
		t.Fatal(err)
	}
	if a.MustGet(testKey(0)) != 2 || a.MustGet(testKey(1)) != 1 {
		t.Fatalf("swap did not exchange values")
	}
}

func TestBoundedArrayResizeTruncates(t *testing.T) {
	var a BoundedArray[testKey, int]
	a.ResizeWith(5, func() int { return 0 })
	a.ResizeWith(2, func() int { return 0 })
	if a.Len() != 2 {
		t.Fatalf("len = %d, want 2", a.Len())
	}
}
