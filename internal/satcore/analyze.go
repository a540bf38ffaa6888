package satcore

import "github.com/rhartert/gosat/internal/container"

// DecisionLevelsAndReasons records, for every currently assigned variable,
// the decision level it was assigned at and the clause that implied it (nil
// for a decision or assumption literal). Conflict analysis consults this to
// walk the trail backwards during resolution.
type DecisionLevelsAndReasons struct {
	levels  container.BoundedArray[Variable, DecisionLevel]
	reasons container.BoundedArray[Variable, ClauseRef]
	hasReas container.BoundedArray[Variable, bool]
	known   container.BoundedBitmap[Variable]
}

// Grow registers additional variables.
func (r *DecisionLevelsAndReasons) Grow(additional int) {
	total := r.known.Len() + additional
	r.levels.ResizeWith(total, func() DecisionLevel { return 0 })
	r.reasons.ResizeWith(total, func() ClauseRef { return ClauseRef{} })
	r.hasReas.ResizeWith(total, func() bool { return false })
	r.known.ResizeTo(total)
}

// Record notes that v was assigned at level, implied by reason (nil if v
// was a decision or assumption).
func (r *DecisionLevelsAndReasons) Record(v Variable, level DecisionLevel, reason *ClauseRef) {
	r.levels.MustUpdate(v, level)
	if reason != nil {
		r.reasons.MustUpdate(v, *reason)
	}
	r.hasReas.MustUpdate(v, reason != nil)
	r.known.MustSet(v, true)
}

// Forget clears the recorded level/reason for v, called when v is
// unassigned by backtracking.
func (r *DecisionLevelsAndReasons) Forget(v Variable) {
	r.known.MustSet(v, false)
}

// Level returns the decision level v was assigned at.
func (r *DecisionLevelsAndReasons) Level(v Variable) (DecisionLevel, bool) {
	if !r.known.MustGet(v) {
		return 0, false
	}
	return r.levels.MustGet(v), true
}

// Reason returns the clause that implied v, or ok=false if v was a
// decision/assumption (no reason) or is not currently assigned.
func (r *DecisionLevelsAndReasons) Reason(v Variable) (ClauseRef, bool) {
	if !r.known.MustGet(v) || !r.hasReas.MustGet(v) {
		return ClauseRef{}, false
	}
	return r.reasons.MustGet(v), true
}

// FirstUipLearning computes the first-UIP conflict clause for a conflicting
// clause encountered during propagation. It is a standalone subsystem: it
// consumes a DecisionLevelsAndReasons kept up to date by the caller, but is
// not itself invoked by Assignment.Propagate.
type FirstUipLearning struct {
	work conflictWorkspace
}

// conflictWorkspace holds the first-UIP working state: a stamp bitmap
// (doubling as "still needs resolving" and "already in the learned
// clause") and the literal buffer being built, with a leading placeholder
// for the asserting literal determined only once the UIP is found.
type conflictWorkspace struct {
	stamped  container.BoundedBitmap[Variable]
	literals []Literal
	defined  []bool
}

// Grow registers additional variables.
func (f *FirstUipLearning) Grow(additional int) {
	f.work.stamped.ResizeTo(f.work.stamped.Len() + additional)
}

func (f *FirstUipLearning) stamp(v Variable)      { f.work.stamped.MustSet(v, true) }
func (f *FirstUipLearning) unstamp(v Variable)     { f.work.stamped.MustSet(v, false) }
func (f *FirstUipLearning) isStamped(v Variable) bool { return f.work.stamped.MustGet(v) }

// ComputeConflictClause returns the literals of the first-UIP clause learned
// from a conflict found while resolving conflicting against the current
// trail. The first literal returned is always the asserting literal.
func (f *FirstUipLearning) ComputeConflictClause(
	conflicting ClauseRef,
	trail *Trail,
	lr *DecisionLevelsAndReasons,
	db *ClauseDatabase,
) []Literal {
	countUnresolved := f.initializeResult(conflicting, trail, lr, db)
	f.resolveUntilUIP(countUnresolved, trail, lr, db)
	clause := make([]Literal, len(f.work.literals))
	for i, defined := range f.work.defined {
		if !defined {
			panic("satcore: undefined literal in learned clause")
		}
		clause[i] = f.work.literals[i]
	}
	f.clearStamps()
	return clause
}

func (f *FirstUipLearning) initializeResult(conflicting ClauseRef, trail *Trail, lr *DecisionLevelsAndReasons, db *ClauseDatabase) int {
	f.work.literals = f.work.literals[:0]
	f.work.defined = f.work.defined[:0]
	// Leading placeholder for the asserting literal, filled in once found.
	f.work.literals = append(f.work.literals, Literal{})
	f.work.defined = append(f.work.defined, false)

	countUnresolved := f.addResolvent(conflicting, nil, trail, lr, db)
	if countUnresolved < 2 {
		panic("satcore: fewer than 2 literals on the current decision level during first-UIP initialization")
	}
	return countUnresolved
}

// addResolvent resolves reason into the working result, skipping
// resolveAtLit (the literal the resolution step pivots on, nil for the
// initial conflicting clause) and any variable already stamped. It returns
// the number of newly-stamped variables that belong to the current
// decision level (still needing resolution).
func (f *FirstUipLearning) addResolvent(
	reason ClauseRef,
	resolveAtLit *Literal,
	trail *Trail,
	lr *DecisionLevelsAndReasons,
	db *ClauseDatabase,
) int {
	countUnresolved := 0
	currentLevel := trail.CurrentDecisionLevel()
	if resolveAtLit != nil {
		f.unstamp(resolveAtLit.Variable())
	}

	resolved, ok := db.Resolve(reason)
	if !ok {
		panic("satcore: reason clause no longer resolvable")
	}
	for _, reasonLit := range resolved.Literals {
		if resolveAtLit != nil && reasonLit == *resolveAtLit {
			continue
		}
		v := reasonLit.Variable()
		if f.isStamped(v) {
			continue
		}
		f.stamp(v)
		level, ok := lr.Level(v)
		if !ok {
			panic("satcore: missing decision level for reason variable")
		}
		if level == currentLevel {
			countUnresolved++
		} else {
			f.work.literals = append(f.work.literals, reasonLit)
			f.work.defined = append(f.work.defined, true)
		}
	}
	return countUnresolved
}

func (f *FirstUipLearning) resolveUntilUIP(countUnresolved int, trail *Trail, lr *DecisionLevelsAndReasons, db *ClauseDatabase) {
	currentLevel := trail.CurrentDecisionLevel()
	levelAssignments := trail.LevelAssignments(currentLevel)
	pos := len(levelAssignments) - 1

	for countUnresolved != 1 {
		if pos < 0 {
			panic("satcore: ran out of level assignments before reaching the first UIP")
		}
		resolveAtLit := levelAssignments[pos]
		pos--
		v := resolveAtLit.Variable()
		if !f.isStamped(v) {
			continue
		}
		level, ok := lr.Level(v)
		if !ok || level != currentLevel {
			panic("satcore: resolution variable not on the current decision level")
		}
		reason, hasReason := lr.Reason(v)
		if !hasReason {
			panic("satcore: reached the first UIP too early")
		}
		lit := resolveAtLit
		countUnresolved += f.addResolvent(reason, &lit, trail, lr, db)
		countUnresolved--
	}

	for pos >= 0 {
		lit := levelAssignments[pos]
		if f.isStamped(lit.Variable()) {
			f.work.literals[0] = lit
			f.work.defined[0] = true
			f.unstamp(lit.Variable())
			return
		}
		pos--
	}
	panic("satcore: missing asserting literal")
}

func (f *FirstUipLearning) clearStamps() {
	for i, lit := range f.work.literals {
		if !f.work.defined[i] {
			continue
		}
		f.unstamp(lit.Variable())
	}
}
