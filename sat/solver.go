package sat

import "github.com/rhartert/gosat/internal/satcore"

// decisionOutcome is the internal result of trying a decision literal and
// everything it propagates.
type decisionOutcome int

const (
	decisionConflict decisionOutcome = iota
	decisionSat
)

// Solver is a DPLL-style satisfiability solver: unit propagation over a
// two-watched-literal clause database, a priority-ordered decision
// heuristic, and chronological backtracking on conflict.
//
// The zero value is ready to use.
type Solver struct {
	numVariables int
	clauses      satcore.ClauseDatabase
	assignment   satcore.Assignment
	decider      satcore.Decider
	lastModel    Model
	sanitizer    satcore.Sanitizer

	encounteredEmptyClause bool
	hardFacts              []Literal
}

// NumVariables returns the number of variables currently registered with
// the solver.
func (s *Solver) NumVariables() int {
	return s.numVariables
}

// NewVariable registers a new variable and returns it.
func (s *Solver) NewVariable() Variable {
	s.assignment.Grow(1)
	s.decider.Grow(1)
	v := satcore.VariableFromIndex(s.numVariables)
	s.numVariables++
	return v
}

// NewLiteral registers a new variable and returns its positive literal.
func (s *Solver) NewLiteral() Literal {
	return satcore.NewLiteral(s.NewVariable(), Positive)
}

// NewLiteralChunk registers amount new variables in one batch and returns
// them as a LiteralChunk. Batching avoids the per-variable bookkeeping cost
// NewVariable pays on every call, which matters when loading a DIMACS
// instance's whole variable range at once.
func (s *Solver) NewLiteralChunk(amount int) LiteralChunk {
	if amount < 0 {
		panic("sat: literal chunk amount must be non-negative")
	}
	first := s.numVariables
	if amount > 0 {
		satcore.VariableFromIndex(first + amount - 1) // panics if out of range
	}
	s.assignment.Grow(amount)
	s.decider.Grow(amount)
	s.numVariables += amount
	return LiteralChunk{first: first, len: amount}
}

// ConsumeClause sanitizes literals and adds it to the solver as a new
// constraint. Duplicate literals are dropped, every variable that occurs
// with both polarities is dropped from the clause (the clause is discarded
// as tautological only when no literal remains), a clause that sanitizes to
// a single literal is recorded as a hard fact to be propagated at the start
// of the next Solve, and an empty clause marks the instance permanently
// unsatisfiable.
func (s *Solver) ConsumeClause(literals []Literal) {
	sanitized := s.sanitizer.Sanitize(literals)
	switch sanitized.Kind {
	case satcore.KindLiterals:
		ref := s.clauses.Alloc(sanitized.Literals)
		resolved, ok := s.clauses.Resolve(ref)
		if !ok {
			panic("sat: freshly allocated clause is already unresolvable")
		}
		s.assignment.InitializeWatchers(ref, resolved)
		for _, lit := range sanitized.Literals {
			s.decider.BumpPriorityBy(lit.Variable(), 1)
		}
	case satcore.KindUnitClause:
		s.hardFacts = append(s.hardFacts, sanitized.Unit)
	case satcore.KindTautologicalClause:
		// Always satisfied: nothing to record.
	case satcore.KindEmptyClause:
		s.encounteredEmptyClause = true
	}
}

// solveForDecision enqueues decision, propagates it, and recursively
// decides the remaining unassigned variables if propagation does not
// conflict.
func (s *Solver) solveForDecision(decision Literal) decisionOutcome {
	switch s.assignment.TryEnqueueAssumption(decision) {
	case satcore.AssignmentConflict:
		return decisionConflict
	case satcore.AssignmentAlreadyAssigned:
		panic("sat: decision heuristic proposed an already assigned variable")
	}
	if s.assignment.Propagate(&s.clauses, &s.decider) == satcore.Conflict {
		return decisionConflict
	}
	return s.decideAndPropagate()
}

// decideAndPropagate picks the next unassigned variable and tries it
// positive then negative, backtracking if both conflict. It returns
// decisionSat once every variable is assigned without conflict.
func (s *Solver) decideAndPropagate() decisionOutcome {
	next, ok := s.decider.NextUnassigned(&s.assignment.Assignments)
	if !ok {
		s.lastModel = newModelFrom(&s.assignment.Assignments)
		return decisionSat
	}

	level := s.assignment.BumpDecisionLevel()
	if s.solveForDecision(satcore.NewLiteral(next, satcore.Positive)) == decisionSat {
		return decisionSat
	}
	s.assignment.PopDecisionLevel(level, &s.decider)
	if s.solveForDecision(satcore.NewLiteral(next, satcore.Negative)) == decisionSat {
		return decisionSat
	}
	s.assignment.PopDecisionLevel(level, &s.decider)
	return decisionConflict
}

// Result is the outcome of a call to Solve.
type Result struct {
	// Satisfiable reports whether the instance, together with any given
	// assumptions, is satisfiable.
	Satisfiable bool
	// Model is the satisfying assignment. It is only meaningful when
	// Satisfiable is true.
	Model Model
}

// Solve searches for a satisfying assignment of every clause consumed so
// far, under the additional temporary assumptions. Assumptions do not
// persist across calls to Solve.
func (s *Solver) Solve(assumptions []Literal) Result {
	if s.encounteredEmptyClause {
		return Result{}
	}
	if s.numVariables == 0 {
		return Result{Satisfiable: true, Model: s.lastModel}
	}

	// Undo every decision and propagation left over from a previous call to
	// Solve, so hard facts and assumptions can be enqueued fresh. Mirrors
	// the teacher's own cancelUntil(0) at the end of its search loop.
	s.assignment.PopDecisionLevel(0, &s.decider)

	for _, fact := range s.hardFacts {
		if s.assignment.TryEnqueueAssumption(fact) == satcore.AssignmentConflict {
			return Result{}
		}
	}

	// Root level: propagate the hard facts gathered while consuming clauses.
	s.assignment.BumpDecisionLevel()
	if s.assignment.Propagate(&s.clauses, &s.decider) == satcore.Conflict {
		return Result{}
	}

	// Assumptions level: enqueue and propagate the caller's assumptions.
	s.assignment.BumpDecisionLevel()
	for _, lit := range assumptions {
		if s.assignment.TryEnqueueAssumption(lit) == satcore.AssignmentConflict {
			return Result{}
		}
	}
	if s.assignment.Propagate(&s.clauses, &s.decider) == satcore.Conflict {
		return Result{}
	}

	// Constraints level: the search proper starts here.
	s.assignment.BumpDecisionLevel()
	if s.decideAndPropagate() == decisionConflict {
		return Result{}
	}
	return Result{Satisfiable: true, Model: s.lastModel}
}

// Clone returns a deep, independently usable copy of the solver: mutating
// the clone, including further calls to ConsumeClause or Solve, never
// affects the receiver and vice versa. Useful for seeding repeated
// benchmark runs from a common prepared state.
func (s *Solver) Clone() *Solver {
	return &Solver{
		numVariables:           s.numVariables,
		clauses:                s.clauses.Clone(),
		assignment:             s.assignment.Clone(),
		decider:                s.decider.Clone(),
		lastModel:              Model{signs: append([]Sign(nil), s.lastModel.signs...)},
		sanitizer:              s.sanitizer.Clone(),
		encounteredEmptyClause: s.encounteredEmptyClause,
		hardFacts:              append([]Literal(nil), s.hardFacts...),
	}
}
