package container

// BoundedMap is a dense, index-addressable map: every key in [0, capacity)
// has a slot, occupied or not. Unlike a Go map it never allocates per entry
// and never grows past the capacity set by ResizeCapacity.
type BoundedMap[K Index, V any] struct {
	length int
	slots  BoundedArray[K, *V]
}

// ResizeCapacity grows or truncates the map's capacity to newLen.
func (m *BoundedMap[K, V]) ResizeCapacity(newLen int) {
	m.slots.ResizeWith(newLen, func() *V { return nil })
}

// Len returns the number of occupied slots.
func (m *BoundedMap[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether the map has no occupied slots.
func (m *BoundedMap[K, V]) IsEmpty() bool {
	return m.length == 0
}

// IsFull reports whether every slot is occupied.
func (m *BoundedMap[K, V]) IsFull() bool {
	return m.length == m.Capacity()
}

// Capacity returns the total number of addressable slots.
func (m *BoundedMap[K, V]) Capacity() int {
	return m.slots.Len()
}

// Insert stores value at key and returns the previously stored value, if
// any.
func (m *BoundedMap[K, V]) Insert(key K, value V) (*V, error) {
	old, err := m.slots.Get(key)
	if err != nil {
		return nil, err
	}
	if err := m.slots.Update(key, &value); err != nil {
		return nil, err
	}
	if old == nil {
		m.length++
	}
	return old, nil
}

// Take removes and returns the value stored at key, if any.
func (m *BoundedMap[K, V]) Take(key K) (*V, error) {
	old, err := m.slots.Get(key)
	if err != nil {
		return nil, err
	}
	if err := m.slots.Update(key, nil); err != nil {
		return nil, err
	}
	if old != nil {
		m.length--
	}
	return old, nil
}

// Get returns the value stored at key, if any.
func (m *BoundedMap[K, V]) Get(key K) (*V, error) {
	return m.slots.Get(key)
}

// MapIter allows iterating over the occupied (key, value) pairs of a
// BoundedMap in index order.
type MapIter[K Index, V any] struct {
	fromIndex func(int) K
	slots     []*V
	pos       int
}

// Iter returns an iterator over the occupied entries of the map. fromIndex
// reconstructs a key from its dense index.
func (m *BoundedMap[K, V]) Iter(fromIndex func(int) K) *MapIter[K, V] {
	return &MapIter[K, V]{fromIndex: fromIndex, slots: m.slots.Iter()}
}

// Clone returns a map holding a copy of the same entries, backed by its own
// storage. The stored values themselves are never mutated in place once
// inserted, so sharing their pointers between the original and the clone is
// safe.
func (m *BoundedMap[K, V]) Clone() BoundedMap[K, V] {
	return BoundedMap[K, V]{length: m.length, slots: m.slots.Clone()}
}

// Next advances the iterator, returning false once exhausted.
func (it *MapIter[K, V]) Next() (K, V, bool) {
	for it.pos < len(it.slots) {
		idx := it.pos
		it.pos++
		if it.slots[idx] != nil {
			return it.fromIndex(idx), *it.slots[idx], true
		}
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}
