package sat

import "testing"

func dimacsClause(s *Solver, ints ...int) []Literal {
	lits := make([]Literal, len(ints))
	for i, x := range ints {
		lits[i] = FromDIMACS(x)
	}
	return lits
}

func TestSolverSatisfiableSimpleChain(t *testing.T) {
	var s Solver
	s.NewLiteralChunk(3)

	s.ConsumeClause(dimacsClause(&s, 1, 2))
	s.ConsumeClause(dimacsClause(&s, -2, 3))

	result := s.Solve(nil)
	if !result.Satisfiable {
		t.Fatalf("expected instance to be satisfiable")
	}
	for _, lit := range []Literal{FromDIMACS(1), FromDIMACS(2), FromDIMACS(3)} {
		if !result.Model.IsSatisfied(lit) && !result.Model.IsSatisfied(lit.Opposite()) {
			t.Fatalf("model does not determine literal %v", lit)
		}
	}
	if !result.Model.IsSatisfied(FromDIMACS(1)) && !result.Model.IsSatisfied(FromDIMACS(2)) {
		t.Fatalf("clause (1 2) not satisfied by model %v", result.Model)
	}
	if !result.Model.IsSatisfied(FromDIMACS(-2)) && !result.Model.IsSatisfied(FromDIMACS(3)) {
		t.Fatalf("clause (-2 3) not satisfied by model %v", result.Model)
	}
}

func TestSolverUnsatisfiableConflictingUnitClauses(t *testing.T) {
	var s Solver
	s.NewLiteralChunk(1)

	s.ConsumeClause(dimacsClause(&s, 1))
	s.ConsumeClause(dimacsClause(&s, -1))

	result := s.Solve(nil)
	if result.Satisfiable {
		t.Fatalf("expected instance to be unsatisfiable")
	}
}

func TestSolverEmptyClauseIsUnsat(t *testing.T) {
	var s Solver
	s.NewLiteralChunk(1)
	s.ConsumeClause(nil)

	result := s.Solve(nil)
	if result.Satisfiable {
		t.Fatalf("expected instance with an empty clause to be unsatisfiable")
	}
}

func TestSolverNoVariablesIsTriviallySat(t *testing.T) {
	var s Solver
	result := s.Solve(nil)
	if !result.Satisfiable {
		t.Fatalf("expected an empty instance to be satisfiable")
	}
}

func TestSolverAssumptionsCanForceUnsat(t *testing.T) {
	var s Solver
	s.NewLiteralChunk(1)
	s.ConsumeClause(dimacsClause(&s, 1))

	result := s.Solve([]Literal{FromDIMACS(-1)})
	if result.Satisfiable {
		t.Fatalf("expected assumption -1 to conflict with hard fact 1")
	}
}

func TestSolverCloneIsIndependent(t *testing.T) {
	var s Solver
	s.NewLiteralChunk(2)
	s.ConsumeClause(dimacsClause(&s, 1, 2))

	clone := s.Clone()
	clone.ConsumeClause(dimacsClause(&s, -1))
	clone.ConsumeClause(dimacsClause(&s, -2))

	cloneResult := clone.Solve(nil)
	if cloneResult.Satisfiable {
		t.Fatalf("expected clone to be unsatisfiable after adding conflicting facts")
	}

	originalResult := s.Solve(nil)
	if !originalResult.Satisfiable {
		t.Fatalf("expected original solver to remain unaffected by mutations to its clone")
	}
}
