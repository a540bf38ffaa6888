package sat

import (
	"fmt"
	"strings"

	"github.com/rhartert/gosat/internal/satcore"
)

// Model is a satisfying assignment: the sign assigned to every registered
// variable of the solver that produced it.
type Model struct {
	signs []Sign
}

func newModelFrom(assignment *satcore.PartialAssignment) Model {
	n := assignment.Len()
	signs := make([]Sign, n)
	for i := 0; i < n; i++ {
		v := satcore.VariableFromIndex(i)
		sign, ok := assignment.Get(v)
		if !ok {
			panic("sat: cannot build a model from an incomplete assignment")
		}
		signs[i] = sign
	}
	return Model{signs: signs}
}

// Len returns the number of variables in the model.
func (m Model) Len() int { return len(m.signs) }

// IsSatisfied reports whether lit holds under this model.
func (m Model) IsSatisfied(lit Literal) bool {
	idx := lit.Variable().IntoIndex()
	if idx < 0 || idx >= len(m.signs) {
		panic("sat: literal refers to a variable outside this model")
	}
	return m.signs[idx] == lit.Sign()
}

// Literals returns the model as a slice of literals, one per variable, in
// variable order (var 0 first), each carrying the sign the variable was
// assigned.
func (m Model) Literals() []Literal {
	out := make([]Literal, len(m.signs))
	for i, sign := range m.signs {
		out[i] = satcore.NewLiteral(satcore.VariableFromIndex(i), sign)
	}
	return out
}

// String renders the model as a bracketed list of signed DIMACS-style
// integers, e.g. "[1, -2, 3]".
func (m Model) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, lit := range m.Literals() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s", lit)
	}
	b.WriteByte(']')
	return b.String()
}
