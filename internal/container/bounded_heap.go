package container

// heapPosition is an index into the heap's internal array.
type heapPosition int

// IntoIndex implements Index so heapPosition can key a BoundedArray.
func (p heapPosition) IntoIndex() int { return int(p) }

func (p heapPosition) leftChild() heapPosition  { return heapPosition(int(p)*2 + 1) }
func (p heapPosition) rightChild() heapPosition { return heapPosition(int(p)*2 + 2) }
func (p heapPosition) isRoot() bool             { return p == 0 }

func (p heapPosition) parent() (heapPosition, bool) {
	if p.isRoot() {
		return 0, false
	}
	return heapPosition((int(p) - 1) / 2), true
}

const heapRoot = heapPosition(0)

// BoundedHeap is an index-addressable binary max-heap supporting priority
// updates in place. Keys are dense indices (see Index); pushing an existing
// key updates its priority instead of duplicating it, which is what makes
// it suitable as a decision-variable priority queue that must be able to
// restore a variable to its previous priority on backtracking.
type BoundedHeap[K Index, W Ordered] struct {
	length     int
	heap       BoundedArray[heapPosition, K]
	positions  BoundedArray[K, *heapPosition]
	priorities BoundedArray[K, W]
}

// Ordered constrains heap priorities to totally ordered values.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Len returns the number of keys currently stored in the heap.
func (h *BoundedHeap[K, W]) Len() int {
	return h.length
}

// IsEmpty reports whether the heap holds no keys.
func (h *BoundedHeap[K, W]) IsEmpty() bool {
	return h.length == 0
}

// Capacity returns the heap's capacity.
func (h *BoundedHeap[K, W]) Capacity() int {
	return h.priorities.Len()
}

func (h *BoundedHeap[K, W]) ensureValidKey(key K) error {
	i := key.IntoIndex()
	if i < 0 || i >= h.Capacity() {
		return ErrOutOfBounds
	}
	return nil
}

// Contains reports whether key currently has an entry in the heap.
func (h *BoundedHeap[K, W]) Contains(key K) (bool, error) {
	pos, err := h.positions.Get(key)
	if err != nil {
		return false, err
	}
	return pos != nil, nil
}

func (h *BoundedHeap[K, W]) leftChild(pos heapPosition) (heapPosition, bool) {
	c := pos.leftChild()
	if int(c) >= h.length {
		return 0, false
	}
	return c, true
}

func (h *BoundedHeap[K, W]) rightChild(pos heapPosition) (heapPosition, bool) {
	c := pos.rightChild()
	if int(c) >= h.length {
		return 0, false
	}
	return c, true
}

// ResizeCapacity grows or truncates the heap's capacity to newCap.
func (h *BoundedHeap[K, W]) ResizeCapacity(newCap int) {
	var zeroK K
	h.heap.ResizeWith(newCap, func() K { return zeroK })
	h.positions.ResizeWith(newCap, func() *heapPosition { return nil })
	var zeroW W
	h.priorities.ResizeWith(newCap, func() W { return zeroW })
}

func (h *BoundedHeap[K, W]) pushHeapPosition(key K) heapPosition {
	last := heapPosition(h.length)
	h.updatePosition(key, last)
	h.length++
	return last
}

// PushOrUpdate inserts key if absent, then sets its priority to
// evalNewPriority(old), where old is the key's recorded priority (zero for
// a key never given one; a popped key keeps its last priority), and
// restores the heap property. Passing the identity function restores a key
// to its previously recorded priority.
func (h *BoundedHeap[K, W]) PushOrUpdate(key K, evalNewPriority func(W) W) error {
	if err := h.ensureValidKey(key); err != nil {
		return err
	}
	already, err := h.Contains(key)
	if err != nil {
		return err
	}
	if !already {
		h.pushHeapPosition(key)
	}
	oldPriority := h.getPriority(key)
	newPriority := evalNewPriority(oldPriority)
	if err := h.priorities.Update(key, newPriority); err != nil {
		return err
	}
	increased := !already || oldPriority <= newPriority
	pos := h.getPosition(key)
	if increased {
		h.siftUp(pos)
	} else {
		h.siftDown(pos)
	}
	return nil
}

// UpdatePriority updates key's priority, adjusting heap structure only if
// key is currently contained. If key is absent the priority is still
// recorded so a later PushOrUpdate with the identity function restores it.
func (h *BoundedHeap[K, W]) UpdatePriority(key K, evalNewPriority func(W) W) error {
	if err := h.ensureValidKey(key); err != nil {
		return err
	}
	oldPriority := h.getPriority(key)
	newPriority := evalNewPriority(oldPriority)
	if err := h.priorities.Update(key, newPriority); err != nil {
		return err
	}
	increased := oldPriority <= newPriority
	contained, err := h.Contains(key)
	if err != nil {
		return err
	}
	if contained {
		pos := h.getPosition(key)
		if increased {
			h.siftUp(pos)
		} else {
			h.siftDown(pos)
		}
	}
	return nil
}

// TransformPriorities applies newPriorityEval to every recorded priority,
// including keys not currently contained in the heap. The heap property
// must still hold afterwards; it panics otherwise, since such a call leaves
// the heap in an unrecoverable state.
func (h *BoundedHeap[K, W]) TransformPriorities(newPriorityEval func(W) W) {
	values := h.priorities.Iter()
	for i := range values {
		values[i] = newPriorityEval(values[i])
	}
	if !h.satisfiesHeapProperty() {
		panic("container: heap property violated by priority transformation")
	}
}

func (h *BoundedHeap[K, W]) cmpPriorities(lhs, rhs K) int {
	if lhs.IntoIndex() == rhs.IntoIndex() {
		return 0
	}
	l, r := h.getPriority(lhs), h.getPriority(rhs)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func (h *BoundedHeap[K, W]) siftUp(pivot heapPosition) {
	pivotKey := h.heapEntry(pivot)
	cursor := pivot
	for {
		parent, ok := cursor.parent()
		if !ok {
			break
		}
		parentKey := h.heapEntry(parent)
		if h.cmpPriorities(pivotKey, parentKey) <= 0 {
			break
		}
		h.updatePosition(parentKey, cursor)
		cursor = parent
	}
	h.updatePosition(pivotKey, cursor)
}

func (h *BoundedHeap[K, W]) siftDown(pivot heapPosition) {
	pivotKey := h.heapEntry(pivot)
	cursor := pivot
	for {
		left, ok := h.leftChild(cursor)
		if !ok {
			break
		}
		maxChild := left
		if right, ok := h.rightChild(cursor); ok {
			leftKey, rightKey := h.heapEntry(left), h.heapEntry(right)
			if h.cmpPriorities(leftKey, rightKey) <= 0 {
				maxChild = right
			}
		}
		maxChildKey := h.heapEntry(maxChild)
		if h.cmpPriorities(pivotKey, maxChildKey) >= 0 {
			break
		}
		h.updatePosition(maxChildKey, cursor)
		cursor = maxChild
	}
	h.updatePosition(pivotKey, cursor)
}

// Peek returns the current maximum key and its priority without removing
// it.
func (h *BoundedHeap[K, W]) Peek() (K, W, bool) {
	if h.IsEmpty() {
		var zeroK K
		var zeroW W
		return zeroK, zeroW, false
	}
	key := h.heapEntry(heapRoot)
	return key, h.getPriority(key), true
}

// Pop removes and returns the current maximum key and its priority.
func (h *BoundedHeap[K, W]) Pop() (K, W, bool) {
	if h.IsEmpty() {
		var zeroK K
		var zeroW W
		return zeroK, zeroW, false
	}
	key := h.heapEntry(heapRoot)
	if err := h.positions.Update(key, nil); err != nil {
		panic(err)
	}
	priority := h.getPriority(key)
	if h.length == 1 {
		h.length = 0
	} else {
		newRoot := h.heapEntry(heapPosition(h.length - 1))
		h.updatePosition(newRoot, heapRoot)
		h.length--
		h.siftDown(heapRoot)
	}
	return key, priority, true
}

func (h *BoundedHeap[K, W]) updatePosition(key K, pos heapPosition) {
	if err := h.heap.Update(pos, key); err != nil {
		panic(err)
	}
	p := pos
	if err := h.positions.Update(key, &p); err != nil {
		panic(err)
	}
}

func (h *BoundedHeap[K, W]) getPriority(key K) W {
	v, err := h.priorities.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

func (h *BoundedHeap[K, W]) getPosition(key K) heapPosition {
	p, err := h.positions.Get(key)
	if err != nil || p == nil {
		panic("container: key unexpectedly not contained in heap")
	}
	return *p
}

func (h *BoundedHeap[K, W]) heapEntry(pos heapPosition) K {
	k, err := h.heap.Get(pos)
	if err != nil {
		panic(err)
	}
	return k
}

// Clone returns a heap holding a copy of the same keys, positions, and
// priorities, backed by its own storage.
func (h *BoundedHeap[K, W]) Clone() BoundedHeap[K, W] {
	return BoundedHeap[K, W]{
		length:     h.length,
		heap:       h.heap.Clone(),
		positions:  h.positions.Clone(),
		priorities: h.priorities.Clone(),
	}
}

func (h *BoundedHeap[K, W]) satisfiesHeapProperty() bool {
	for i := 1; i < h.length; i++ {
		child := heapPosition(i)
		parent, _ := child.parent()
		if h.cmpPriorities(h.heapEntry(parent), h.heapEntry(child)) < 0 {
			return false
		}
	}
	return true
}
