package satcore

import "github.com/rhartert/gosat/internal/container"

// Priority orders variables for branching decisions. Higher priorities are
// chosen first.
type Priority uint64

// ValueOf reports whether a variable currently has an assigned value, used
// by the decider to skip already-assigned variables without consulting the
// full Assignment interface.
type ValueOf interface {
	IsAssigned(Variable) bool
}

// Decider chooses the next unassigned variable to branch on, ordering
// candidates by a priority that Solver.ConsumeClause bumps by one for each
// literal of every stored clause the variable occurs in. It is also the
// RestoreVariable target: when the trail backtracks past a decision, the variable is
// reinserted into the heap at its previously recorded priority.
type Decider struct {
	numVariables int
	priorities   container.BoundedHeap[Variable, Priority]
}

// Grow registers additional variables, inserting each at priority zero.
func (d *Decider) Grow(additional int) {
	total := d.numVariables + additional
	d.priorities.ResizeCapacity(total)
	for i := d.numVariables; i < total; i++ {
		v := VariableFromIndex(i)
		if err := d.priorities.PushOrUpdate(v, identity[Priority]); err != nil {
			panic(err)
		}
	}
	d.numVariables = total
}

// BumpPriorityBy increases v's priority by amount. If v is not currently
// in the heap (it has already been popped by NextUnassigned) it is
// reinserted, matching PushOrUpdate's insert-if-absent semantics.
func (d *Decider) BumpPriorityBy(v Variable, amount uint64) {
	if err := d.priorities.PushOrUpdate(v, func(old Priority) Priority {
		return old + Priority(amount)
	}); err != nil {
		panic(err)
	}
}

// RestoreVariable reinserts v into the heap at its last recorded priority.
// Called when backtracking unassigns a variable that had been popped off
// the heap by NextUnassigned.
func (d *Decider) RestoreVariable(v Variable) {
	if err := d.priorities.PushOrUpdate(v, identity[Priority]); err != nil {
		panic(err)
	}
}

// Clone returns a decider holding a copy of the same priorities, backed by
// its own storage.
func (d *Decider) Clone() Decider {
	return Decider{
		numVariables: d.numVariables,
		priorities:   d.priorities.Clone(),
	}
}

// NextUnassigned pops and returns the highest-priority variable that is
// not yet assigned in values, discarding already-assigned entries still
// sitting in the heap. It returns ok=false once every variable is
// assigned.
func (d *Decider) NextUnassigned(values ValueOf) (Variable, bool) {
	for {
		v, _, ok := d.priorities.Pop()
		if !ok {
			var zero Variable
			return zero, false
		}
		if !values.IsAssigned(v) {
			return v, true
		}
	}
}

func identity[T any](v T) T { return v }
