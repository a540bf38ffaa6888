// Package container provides bounded, index-addressable collections used by
// the solver's core data structures. Every container is preallocated to a
// capacity and rejects indices beyond it instead of growing on demand.
package container

import "errors"

// ErrOutOfBounds is returned whenever an index or key falls outside the
// capacity of a bounded container.
var ErrOutOfBounds = errors.New("container: index out of bounds")

// Index is implemented by dense, zero-based identifiers (such as variables
// or clause references) that can address a bounded container.
type Index interface {
	IntoIndex() int
}
