package sat

import "github.com/rhartert/gosat/internal/satcore"

// LiteralChunk is a contiguous range of freshly allocated positive literals,
// returned by Solver.NewLiteralChunk for efficient bulk variable creation.
type LiteralChunk struct {
	first int
	len   int
}

// Len returns the number of literals in the chunk.
func (c LiteralChunk) Len() int { return c.len }

// IsEmpty reports whether the chunk contains no literals.
func (c LiteralChunk) IsEmpty() bool { return c.len == 0 }

// At returns the n-th literal of the chunk. It panics if n is out of range.
func (c LiteralChunk) At(n int) Literal {
	if n < 0 || n >= c.len {
		panic("sat: literal chunk index out of range")
	}
	return satcore.NewLiteral(satcore.VariableFromIndex(c.first+n), Positive)
}

// Literals returns the chunk's literals as a plain slice.
func (c LiteralChunk) Literals() []Literal {
	out := make([]Literal, c.len)
	for i := range out {
		out[i] = c.At(i)
	}
	return out
}
