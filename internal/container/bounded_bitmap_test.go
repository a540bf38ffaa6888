package container

import "testing"

func TestBoundedBitmapRoundTrip(t *testing.T) {
	var b BoundedBitmap[testKey]
	b.ResizeTo(100)
	for i := 0; i < 100; i++ {
		if err := b.Set(testKey(i), i%3 == 0); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 100; i++ {
		got, err := b.Get(testKey(i))
		if err != nil {
			t.Fatal(err)
		}
		if got != (i%3 == 0) {
			t.Fatalf("bit %d = %v, want %v", i, got, i%3 == 0)
		}
	}
}

func TestBoundedBitmapClearAll(t *testing.T) {
	var b BoundedBitmap[testKey]
	b.ResizeTo(40)
	b.MustSet(testKey(5), true)
	b.ClearAll()
	if b.MustGet(testKey(5)) {
		t.Fatalf("expected bit cleared")
	}
}

func TestBoundedBitmapOutOfBounds(t *testing.T) {
	var b BoundedBitmap[testKey]
	b.ResizeTo(4)
	if _, err := b.Get(testKey(4)); err == nil {
		t.Fatalf("expected out of bounds error")
	}
}
