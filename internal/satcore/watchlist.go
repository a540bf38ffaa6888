package satcore

import "github.com/rhartert/gosat/internal/container"

// ValueAssigner reports the current value of a literal under a partial
// assignment. It is satisfied by PartialAssignment.
type ValueAssigner interface {
	LiteralValue(Literal) LBool
}

// Enqueuer accepts a literal implied by a clause during propagation. It is
// satisfied by the trail adapter Assignment.Propagate passes in; Push
// reports false on conflict (the literal's opposite is already assigned).
type Enqueuer interface {
	Push(lit Literal, reason ClauseRef) bool
}

// watcher is a registration of a clause against one of its two watched
// literals. blocker is a literal known to be in the clause that, if
// already satisfied, lets propagation skip resolving the clause entirely.
type watcher struct {
	blocker Literal
	clause  ClauseRef
}

// variableWatchers holds the watchers for a single variable, split by the
// polarity of the literal being watched.
type variableWatchers struct {
	pos []watcher
	neg []watcher
}

func (vw *variableWatchers) forLiteral(lit Literal) *[]watcher {
	if lit.IsPositive() {
		return &vw.pos
	}
	return &vw.neg
}

// deferredInsert is a watcher registration produced while propagating a
// literal, applied only after that literal's watcher list has finished
// being scanned. Registering immediately would let a newly-inserted
// watcher be revisited in the same pass, or alias the slice being
// compacted in place.
type deferredInsert struct {
	watched Literal
	blocker Literal
	clause  ClauseRef
}

// WatchList maps each literal to the clauses that currently watch it, and
// drives two-watched-literal propagation over a ClauseDatabase.
type WatchList struct {
	watchers container.BoundedArray[Variable, variableWatchers]
	deferred []deferredInsert
}

// Grow ensures the watch list has storage for the given number of
// variables, indexed [0, numVariables).
func (wl *WatchList) Grow(numVariables int) {
	wl.watchers.ResizeWith(numVariables, func() variableWatchers { return variableWatchers{} })
}

// Clone returns a watch list holding a copy of the same watchers, backed by
// its own storage. This cannot reuse BoundedArray.Clone directly since
// variableWatchers itself holds slices that would otherwise be shared with
// the original.
func (wl *WatchList) Clone() WatchList {
	clone := WatchList{
		watchers: wl.watchers.Clone(),
		deferred: append([]deferredInsert(nil), wl.deferred...),
	}
	for i := 0; i < clone.watchers.Len(); i++ {
		v := VariableFromIndex(i)
		vw := clone.watchers.MustGet(v)
		vw.pos = append([]watcher(nil), vw.pos...)
		vw.neg = append([]watcher(nil), vw.neg...)
		clone.watchers.MustUpdate(v, vw)
	}
	return clone
}

// Register records that clause watches the literal watched, with the
// given blocker literal used to short-circuit propagation.
func (wl *WatchList) Register(watched, blocker Literal, clause ClauseRef) {
	vw := wl.watchers.MustGet(watched.Variable())
	list := vw.forLiteral(watched)
	*list = append(*list, watcher{blocker: blocker, clause: clause})
	wl.watchers.MustUpdate(watched.Variable(), vw)
}

// clausePropagation is the outcome of resolving one watched clause against
// a newly falsified literal.
type clausePropagation int

const (
	// stillWatched means the clause keeps watching the same literal; no
	// further action needed (it was already satisfied by another literal).
	stillWatched clausePropagation = iota
	// newWatchedLiteral means the clause switched to watching a different
	// literal; the caller must move the watcher registration.
	newWatchedLiteral
	// unitUnderAssignment means every other literal is false and the
	// clause's remaining literal must be enqueued.
	unitUnderAssignment
)

// propagateClause resolves clause against l, the literal just made true
// (so that l's opposite in the clause is falsified), mutating the clause's
// literal order in db so that literals[0] is the literal to enqueue (or
// already true) and literals[1] is the falsified trigger,
// mirroring the classic two-watched-literal invariant.
func propagateClause(db *ClauseDatabase, clause ClauseRef, l Literal, values ValueAssigner) (clausePropagation, Literal, Literal) {
	opp := l.Opposite()
	if db.LiteralAt(clause, 0) == opp {
		db.SetLiteralAt(clause, 0, db.LiteralAt(clause, 1))
		db.SetLiteralAt(clause, 1, opp)
	}

	first := db.LiteralAt(clause, 0)
	if values.LiteralValue(first) == LTrue {
		return stillWatched, l, first
	}

	length := db.ClauseLen(clause)
	for i := 2; i < length; i++ {
		lit := db.LiteralAt(clause, i)
		if values.LiteralValue(lit) != LFalse {
			db.SetLiteralAt(clause, 1, lit)
			db.SetLiteralAt(clause, i, opp)
			return newWatchedLiteral, lit.Opposite(), first
		}
	}

	return unitUnderAssignment, l, first
}

// PropagationResult reports whether propagating a literal left the
// assignment consistent or produced a conflict.
type PropagationResult int

const (
	Consistent PropagationResult = iota
	Conflict
)

// Propagate resolves every clause registered under lit, the literal just
// made true (those clauses watch lit's now falsified opposite), enqueuing newly implied literals through enq and relocating watchers
// that moved to a different literal. It returns Conflict as soon as
// enqueuing an implied literal fails.
func (wl *WatchList) Propagate(lit Literal, db *ClauseDatabase, values ValueAssigner, enq Enqueuer) PropagationResult {
	vw := wl.watchers.MustGet(lit.Variable())
	list := vw.forLiteral(lit)

	result := Consistent
	kept := (*list)[:0]
	for _, w := range *list {
		if result == Conflict {
			kept = append(kept, w)
			continue
		}
		if values.LiteralValue(w.blocker) == LTrue {
			kept = append(kept, w)
			continue
		}

		outcome, newWatched, newBlocker := propagateClause(db, w.clause, lit, values)
		switch outcome {
		case unitUnderAssignment:
			if !enq.Push(newBlocker, w.clause) {
				result = Conflict
			}
			kept = append(kept, w)
		case newWatchedLiteral:
			wl.deferred = append(wl.deferred, deferredInsert{
				watched: newWatched,
				blocker: newBlocker,
				clause:  w.clause,
			})
		case stillWatched:
			kept = append(kept, w)
		}
	}
	*list = kept
	wl.watchers.MustUpdate(lit.Variable(), vw)

	for _, d := range wl.deferred {
		wl.Register(d.watched, d.blocker, d.clause)
	}
	wl.deferred = wl.deferred[:0]

	return result
}
