package satcore

import "github.com/rhartert/gosat/internal/container"

// DecisionLevel identifies a point in the search tree: 0 is the root,
// before any decision has been made.
type DecisionLevel int

// IntoIndex implements container.Index.
func (d DecisionLevel) IntoIndex() int { return int(d) }

// PartialAssignment records, for each variable, whether it has been
// assigned and to which sign.
type PartialAssignment struct {
	assignment container.BoundedMap[Variable, Sign]
}

// Grow registers additional variables.
func (a *PartialAssignment) Grow(additional int) {
	a.assignment.ResizeCapacity(a.assignment.Capacity() + additional)
}

// Len returns the number of registered variables.
func (a *PartialAssignment) Len() int {
	return a.assignment.Capacity()
}

// LenAssigned returns the number of variables currently assigned.
func (a *PartialAssignment) LenAssigned() int {
	return a.assignment.Len()
}

// IsComplete reports whether every registered variable is assigned.
func (a *PartialAssignment) IsComplete() bool {
	return a.LenAssigned() == a.Len()
}

// IsAssigned implements ValueOf for Decider.
func (a *PartialAssignment) IsAssigned(v Variable) bool {
	_, ok := a.Get(v)
	return ok
}

// Get returns the variable's current sign, if assigned.
func (a *PartialAssignment) Get(v Variable) (Sign, bool) {
	s, err := a.assignment.Get(v)
	if err != nil {
		panic(err)
	}
	if s == nil {
		return Negative, false
	}
	return *s, true
}

// LiteralValue implements ValueAssigner for WatchList.
func (a *PartialAssignment) LiteralValue(lit Literal) LBool {
	sign, ok := a.Get(lit.Variable())
	if !ok {
		return LUnknown
	}
	return LiftBool(sign == lit.Sign())
}

// IsConflicting reports whether lit contradicts the current assignment.
// The second return value is false if the variable is unassigned.
func (a *PartialAssignment) IsConflicting(lit Literal) (bool, bool) {
	switch a.LiteralValue(lit) {
	case LTrue:
		return false, true
	case LFalse:
		return true, true
	default:
		return false, false
	}
}

// Assign records variable's sign. It panics if variable is already
// assigned.
func (a *PartialAssignment) Assign(variable Variable, sign Sign) {
	old, err := a.assignment.Insert(variable, sign)
	if err != nil {
		panic(err)
	}
	if old != nil {
		panic("satcore: variable assigned twice")
	}
}

// Clone returns a partial assignment holding a copy of the same
// assignments, backed by its own storage.
func (a *PartialAssignment) Clone() PartialAssignment {
	return PartialAssignment{assignment: a.assignment.Clone()}
}

// Unassign clears variable's assignment. It panics if variable was not
// assigned.
func (a *PartialAssignment) Unassign(variable Variable) {
	old, err := a.assignment.Take(variable)
	if err != nil {
		panic(err)
	}
	if old == nil {
		panic("satcore: variable unassigned twice")
	}
}

// Trail is the ordered sequence of decisions and their implications, split
// into decision levels by limits[level], with a cursor tracking how much of
// the trail has been handed to propagation.
type Trail struct {
	propagateHead int
	literals      container.BoundedStack[Literal]
	limits        []int // limits[level] = trail length when that level began
}

func (t *Trail) ensureInit() {
	if t.limits == nil {
		t.limits = []int{0}
	}
}

// Grow registers additional variables.
func (t *Trail) Grow(additional int) {
	t.ensureInit()
	t.literals.ResizeCapacity(t.literals.Capacity() + additional)
}

// CurrentDecisionLevel returns the decision level currently being built.
func (t *Trail) CurrentDecisionLevel() DecisionLevel {
	t.ensureInit()
	return DecisionLevel(len(t.limits) - 1)
}

// BumpDecisionLevel starts a new decision level at the trail's current
// length and returns it.
func (t *Trail) BumpDecisionLevel() DecisionLevel {
	t.ensureInit()
	t.limits = append(t.limits, t.literals.Len())
	return DecisionLevel(len(t.limits) - 1)
}

// PopEnqueued returns the next literal awaiting propagation, if any.
func (t *Trail) PopEnqueued() (Literal, bool) {
	if t.propagateHead == t.literals.Len() {
		var zero Literal
		return zero, false
	}
	lit := t.literals.At(t.propagateHead)
	t.propagateHead++
	return lit, true
}

// Push records literal as decided or implied, assigning its variable. If
// the literal's variable is already assigned, nothing is modified: Push
// returns true if the literal already holds and false if it conflicts with
// the current assignment.
func (t *Trail) Push(literal Literal, assignment *PartialAssignment) bool {
	if conflicting, determinate := assignment.IsConflicting(literal); determinate {
		return !conflicting
	}
	t.literals.Push(literal)
	assignment.Assign(literal.Variable(), literal.Sign())
	return true
}

// PopToLevel rolls the trail back to the given decision level, unassigning
// every variable implied or decided since, and calling restore once per
// unassigned variable so the decider can reinsert it.
func (t *Trail) PopToLevel(level DecisionLevel, assignment *PartialAssignment, restore func(Variable)) {
	t.ensureInit()
	idx := level.IntoIndex()
	if idx < 0 || idx >= len(t.limits) {
		panic("satcore: decision level out of range")
	}
	t.limits = t.limits[:idx+1]
	limit := t.limits[idx]
	t.propagateHead = limit
	t.literals.PopTo(limit, func(popped Literal) {
		v := popped.Variable()
		assignment.Unassign(v)
		restore(v)
	})
}

// LevelAssignments returns the literals decided or implied at the given
// decision level, in the order they were pushed.
func (t *Trail) LevelAssignments(level DecisionLevel) []Literal {
	idx := level.IntoIndex()
	if idx < 0 || idx >= len(t.limits) {
		panic("satcore: decision level out of range")
	}
	start := t.limits[idx]
	end := t.literals.Len()
	if idx+1 < len(t.limits) {
		end = t.limits[idx+1]
	}
	return t.literals.Iter()[start:end]
}

// Clone returns a trail holding a copy of the same literals and decision
// limits, backed by its own storage.
func (t *Trail) Clone() Trail {
	return Trail{
		propagateHead: t.propagateHead,
		literals:      t.literals.Clone(),
		limits:        append([]int(nil), t.limits...),
	}
}

// Assignment bundles the partial assignment, decision trail, and watch
// list: the state that flows together through decisions, propagation, and
// backtracking.
type Assignment struct {
	Trail       Trail
	Assignments PartialAssignment
	Watchers    WatchList
}

// Grow registers additional variables across the trail, partial
// assignment, and watch list.
func (a *Assignment) Grow(additional int) {
	a.Trail.Grow(additional)
	a.Assignments.Grow(additional)
	a.Watchers.Grow(a.Watchers.watchers.Len() + additional)
}

// InitializeWatchers registers a newly allocated clause's first two
// literals as its initial watched pair.
func (a *Assignment) InitializeWatchers(ref ClauseRef, resolved ResolvedClause) {
	fst, snd := resolved.Literals[0], resolved.Literals[1]
	a.Watchers.Register(fst.Opposite(), snd, ref)
	a.Watchers.Register(snd.Opposite(), fst, ref)
}

// EnqueueAssumption pushes an assumed literal at the current decision
// level without propagating it.
func (a *Assignment) EnqueueAssumption(lit Literal) bool {
	return a.Trail.Push(lit, &a.Assignments)
}

// AssignmentOutcome classifies the result of trying to enqueue an assumed
// literal against the current partial assignment.
type AssignmentOutcome int

const (
	// AssignmentOk means the literal was freshly pushed.
	AssignmentOk AssignmentOutcome = iota
	// AssignmentAlreadyAssigned means the literal's variable already carries
	// the same sign; the trail is left unchanged.
	AssignmentAlreadyAssigned
	// AssignmentConflict means the literal's variable is already assigned
	// the opposite sign; the trail is left unchanged.
	AssignmentConflict
)

// TryEnqueueAssumption enqueues lit, distinguishing a fresh push from a
// literal that is already consistently or inconsistently assigned. Unlike
// EnqueueAssumption, which reports true both for a fresh push and for a
// literal that already holds, it tells those two cases apart.
func (a *Assignment) TryEnqueueAssumption(lit Literal) AssignmentOutcome {
	if conflicting, determinate := a.Assignments.IsConflicting(lit); determinate {
		if conflicting {
			return AssignmentConflict
		}
		return AssignmentAlreadyAssigned
	}
	a.EnqueueAssumption(lit)
	return AssignmentOk
}

// BumpDecisionLevel starts a new decision level.
func (a *Assignment) BumpDecisionLevel() DecisionLevel {
	return a.Trail.BumpDecisionLevel()
}

// PopDecisionLevel rolls back to level, restoring unassigned variables to
// restore (the Decider).
func (a *Assignment) PopDecisionLevel(level DecisionLevel, restore *Decider) {
	a.Trail.PopToLevel(level, &a.Assignments, restore.RestoreVariable)
}

// trailEnqueuer adapts a Trail and PartialAssignment to the Enqueuer
// interface expected by WatchList.Propagate: pushing an implied literal
// both assigns its variable and queues it for further propagation.
type trailEnqueuer struct {
	trail      *Trail
	assignment *PartialAssignment
}

func (e trailEnqueuer) Push(lit Literal, _ ClauseRef) bool {
	return e.trail.Push(lit, e.assignment)
}

// Clone returns an assignment holding a copy of the same trail, partial
// assignment, and watch list, backed by its own storage.
func (a *Assignment) Clone() Assignment {
	return Assignment{
		Trail:       a.Trail.Clone(),
		Assignments: a.Assignments.Clone(),
		Watchers:    a.Watchers.Clone(),
	}
}

// Propagate drains the propagation queue against db, stopping at the first
// conflict. On conflict it rolls the trail back to the level it started
// at, restoring variables via restore.
func (a *Assignment) Propagate(db *ClauseDatabase, restore *Decider) PropagationResult {
	level := a.Trail.CurrentDecisionLevel()
	enq := trailEnqueuer{trail: &a.Trail, assignment: &a.Assignments}
	for {
		lit, ok := a.Trail.PopEnqueued()
		if !ok {
			return Consistent
		}
		result := a.Watchers.Propagate(lit, db, &a.Assignments, enq)
		if result == Conflict {
			a.Trail.PopToLevel(level, &a.Assignments, restore.RestoreVariable)
			return Conflict
		}
	}
}
