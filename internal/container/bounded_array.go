package container

import "fmt"

// BoundedArray is a slice addressed by an Index instead of a plain int. It
// never grows implicitly: Resize must be called before an index becomes
// valid.
type BoundedArray[Idx Index, T any] struct {
	values []T
}

// Len returns the current length of the array.
func (a *BoundedArray[Idx, T]) Len() int {
	return len(a.values)
}

func (a *BoundedArray[Idx, T]) checkIndex(idx Idx) (int, error) {
	i := idx.IntoIndex()
	if i < 0 || i >= len(a.values) {
		return 0, fmt.Errorf("%w: index %d len %d", ErrOutOfBounds, i, len(a.values))
	}
	return i, nil
}

// Get returns the value at idx.
func (a *BoundedArray[Idx, T]) Get(idx Idx) (T, error) {
	i, err := a.checkIndex(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.values[i], nil
}

// Update replaces the value stored at idx.
func (a *BoundedArray[Idx, T]) Update(idx Idx, value T) error {
	i, err := a.checkIndex(idx)
	if err != nil {
		return err
	}
	a.values[i] = value
	return nil
}

// Swap exchanges the values stored at lhs and rhs.
func (a *BoundedArray[Idx, T]) Swap(lhs, rhs Idx) error {
	l, err := a.checkIndex(lhs)
	if err != nil {
		return err
	}
	r, err := a.checkIndex(rhs)
	if err != nil {
		return err
	}
	a.values[l], a.values[r] = a.values[r], a.values[l]
	return nil
}

// ResizeWith grows or truncates the array to newLen, filling any new slots
// by calling placeholder.
func (a *BoundedArray[Idx, T]) ResizeWith(newLen int, placeholder func() T) {
	if newLen <= len(a.values) {
		a.values = a.values[:newLen]
		return
	}
	for len(a.values) < newLen {
		a.values = append(a.values, placeholder())
	}
}

// Iter returns a shared view of the underlying values, in index order.
func (a *BoundedArray[Idx, T]) Iter() []T {
	return a.values
}

// Clone returns an array holding a copy of the same values, backed by its
// own slice. If T itself holds slices or pointers, those are shared between
// the original and the clone.
func (a *BoundedArray[Idx, T]) Clone() BoundedArray[Idx, T] {
	return BoundedArray[Idx, T]{values: append([]T(nil), a.values...)}
}

// MustGet returns the value at idx, panicking if idx is out of bounds. It
// mirrors the panicking Index operator of the original container.
func (a *BoundedArray[Idx, T]) MustGet(idx Idx) T {
	v, err := a.Get(idx)
	if err != nil {
		panic(err)
	}
	return v
}

// MustUpdate replaces the value at idx, panicking if idx is out of bounds.
func (a *BoundedArray[Idx, T]) MustUpdate(idx Idx, value T) {
	if err := a.Update(idx, value); err != nil {
		panic(err)
	}
}
