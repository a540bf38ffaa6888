// Package sat implements a DPLL-style satisfiability solver with two-watched
// literal propagation, built on top of the low-level data structures in
// internal/satcore.
package sat

import "github.com/rhartert/gosat/internal/satcore"

// Variable, Literal, and Sign are re-exported from internal/satcore so that
// callers of this package never need to import it directly.
type (
	Variable = satcore.Variable
	Literal  = satcore.Literal
	Sign     = satcore.Sign
)

// Positive and Negative are the two possible signs of a literal.
const (
	Positive = satcore.Positive
	Negative = satcore.Negative
)

// NewLiteral builds a literal from a variable and a sign.
func NewLiteral(v Variable, sign Sign) Literal {
	return satcore.NewLiteral(v, sign)
}

// FromDIMACS builds a literal from a non-zero signed DIMACS integer.
func FromDIMACS(x int) Literal {
	return satcore.FromDIMACS(x)
}
