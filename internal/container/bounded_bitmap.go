package container

import "fmt"

const bitmapChunkLen = 32

// BoundedBitmap packs one bit per index into 32-bit words, most-significant
// bit first. It is used for densely-indexed boolean flags (e.g. conflict
// analysis stamps) where a plain []bool would waste a byte per entry.
type BoundedBitmap[Idx Index] struct {
	chunks []uint32
	length int
}

func bitIndexToMask(bitIndex int) uint32 {
	return 0x01 << (31 - uint(bitIndex))
}

// Len returns the number of addressable indices.
func (b *BoundedBitmap[Idx]) Len() int {
	return b.length
}

// ResizeTo grows or truncates the bitmap to hold newLen indices, clearing
// newly introduced bits to false.
func (b *BoundedBitmap[Idx]) ResizeTo(newLen int) {
	chunks := (newLen + bitmapChunkLen - 1) / bitmapChunkLen
	if chunks <= len(b.chunks) {
		b.chunks = b.chunks[:chunks]
		if rem := newLen % bitmapChunkLen; rem != 0 {
			b.chunks[chunks-1] &^= (uint32(1) << (bitmapChunkLen - rem)) - 1
		}
	} else {
		for len(b.chunks) < chunks {
			b.chunks = append(b.chunks, 0)
		}
	}
	b.length = newLen
}

func (b *BoundedBitmap[Idx]) checkIndex(idx Idx) (int, error) {
	i := idx.IntoIndex()
	if i < 0 || i >= b.length {
		return 0, fmt.Errorf("%w: index %d len %d", ErrOutOfBounds, i, b.length)
	}
	return i, nil
}

// Get returns the bit stored at idx.
func (b *BoundedBitmap[Idx]) Get(idx Idx) (bool, error) {
	i, err := b.checkIndex(idx)
	if err != nil {
		return false, err
	}
	chunk := b.chunks[i/bitmapChunkLen]
	return chunk&bitIndexToMask(i%bitmapChunkLen) != 0, nil
}

// Set stores the bit at idx.
func (b *BoundedBitmap[Idx]) Set(idx Idx, value bool) error {
	i, err := b.checkIndex(idx)
	if err != nil {
		return err
	}
	mask := bitIndexToMask(i % bitmapChunkLen)
	if value {
		b.chunks[i/bitmapChunkLen] |= mask
	} else {
		b.chunks[i/bitmapChunkLen] &^= mask
	}
	return nil
}

// MustGet returns the bit at idx, panicking if idx is out of bounds.
func (b *BoundedBitmap[Idx]) MustGet(idx Idx) bool {
	v, err := b.Get(idx)
	if err != nil {
		panic(err)
	}
	return v
}

// MustSet stores the bit at idx, panicking if idx is out of bounds.
func (b *BoundedBitmap[Idx]) MustSet(idx Idx, value bool) {
	if err := b.Set(idx, value); err != nil {
		panic(err)
	}
}

// ClearAll resets every addressable bit to false.
func (b *BoundedBitmap[Idx]) ClearAll() {
	for i := range b.chunks {
		b.chunks[i] = 0
	}
}

// Clone returns a bitmap holding a copy of the same bits, backed by its own
// storage.
func (b *BoundedBitmap[Idx]) Clone() BoundedBitmap[Idx] {
	return BoundedBitmap[Idx]{chunks: append([]uint32(nil), b.chunks...), length: b.length}
}
