package container

import "fmt"

const quadmapChunkLen = 16 // 2 bits per value, 32 bits per chunk.

// Quad is a 2-bit value, 0 through 3.
type Quad uint8

// BoundedQuadmap packs one 2-bit value per index into 32-bit words, used for
// ternary-or-wider per-variable state (e.g. a lifted boolean assignment)
// where a full byte per entry would be wasteful.
type BoundedQuadmap[Idx Index] struct {
	chunks []uint32
	length int
}

func quadIndexToShift(quadIndex int) uint {
	return uint(30 - 2*quadIndex)
}

// Len returns the number of addressable indices.
func (q *BoundedQuadmap[Idx]) Len() int {
	return q.length
}

// ResizeTo grows or truncates the quadmap to hold newLen indices, clearing
// newly introduced entries to zero.
func (q *BoundedQuadmap[Idx]) ResizeTo(newLen int) {
	chunks := (newLen + quadmapChunkLen - 1) / quadmapChunkLen
	if chunks <= len(q.chunks) {
		q.chunks = q.chunks[:chunks]
		if rem := newLen % quadmapChunkLen; rem != 0 {
			q.chunks[chunks-1] &^= (uint32(1) << (32 - 2*rem)) - 1
		}
	} else {
		for len(q.chunks) < chunks {
			q.chunks = append(q.chunks, 0)
		}
	}
	q.length = newLen
}

func (q *BoundedQuadmap[Idx]) checkIndex(idx Idx) (int, error) {
	i := idx.IntoIndex()
	if i < 0 || i >= q.length {
		return 0, fmt.Errorf("%w: index %d len %d", ErrOutOfBounds, i, q.length)
	}
	return i, nil
}

// Get returns the quad value stored at idx.
func (q *BoundedQuadmap[Idx]) Get(idx Idx) (Quad, error) {
	i, err := q.checkIndex(idx)
	if err != nil {
		return 0, err
	}
	chunk := q.chunks[i/quadmapChunkLen]
	shift := quadIndexToShift(i % quadmapChunkLen)
	return Quad((chunk >> shift) & 0b11), nil
}

// Set stores the quad value at idx.
func (q *BoundedQuadmap[Idx]) Set(idx Idx, value Quad) error {
	i, err := q.checkIndex(idx)
	if err != nil {
		return err
	}
	shift := quadIndexToShift(i % quadmapChunkLen)
	mask := uint32(0b11) << shift
	chunk := &q.chunks[i/quadmapChunkLen]
	*chunk = (*chunk &^ mask) | (uint32(value&0b11) << shift)
	return nil
}

// MustGet returns the quad value at idx, panicking if idx is out of bounds.
func (q *BoundedQuadmap[Idx]) MustGet(idx Idx) Quad {
	v, err := q.Get(idx)
	if err != nil {
		panic(err)
	}
	return v
}

// MustSet stores the quad value at idx, panicking if idx is out of bounds.
func (q *BoundedQuadmap[Idx]) MustSet(idx Idx, value Quad) {
	if err := q.Set(idx, value); err != nil {
		panic(err)
	}
}

// Clone returns a quadmap holding a copy of the same values, backed by its
// own storage.
func (q *BoundedQuadmap[Idx]) Clone() BoundedQuadmap[Idx] {
	return BoundedQuadmap[Idx]{chunks: append([]uint32(nil), q.chunks...), length: q.length}
}
