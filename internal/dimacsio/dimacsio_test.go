package dimacsio

import (
	"strings"
	"testing"

	"github.com/rhartert/gosat/sat"
)

type fakeSolver struct {
	chunkAmount int
	clauses     [][]sat.Literal
}

func (f *fakeSolver) NewLiteralChunk(amount int) sat.LiteralChunk {
	f.chunkAmount = amount
	return sat.LiteralChunk{}
}

func (f *fakeSolver) ConsumeClause(literals []sat.Literal) {
	f.clauses = append(f.clauses, append([]sat.Literal(nil), literals...))
}

func TestLoadForwardsProblemAndClauses(t *testing.T) {
	const cnf = "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"

	f := &fakeSolver{}
	if err := Load(strings.NewReader(cnf), f); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if f.chunkAmount != 3 {
		t.Fatalf("chunk amount = %d, want 3", f.chunkAmount)
	}
	if len(f.clauses) != 2 {
		t.Fatalf("got %d clauses, want 2", len(f.clauses))
	}
	want := [][]sat.Literal{
		{sat.FromDIMACS(1), sat.FromDIMACS(-2)},
		{sat.FromDIMACS(2), sat.FromDIMACS(3)},
	}
	for i, clause := range want {
		if len(f.clauses[i]) != len(clause) {
			t.Fatalf("clause %d length = %d, want %d", i, len(f.clauses[i]), len(clause))
		}
		for j, lit := range clause {
			if f.clauses[i][j] != lit {
				t.Fatalf("clause %d literal %d = %v, want %v", i, j, f.clauses[i][j], lit)
			}
		}
	}
}
