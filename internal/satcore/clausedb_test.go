package satcore

import "testing"

func TestClauseDatabaseWorks(t *testing.T) {
	var db ClauseDatabase
	if !db.IsEmpty() {
		t.Fatalf("expected empty database")
	}
	c1 := db.Alloc(clause(1, 2, 3))
	c2 := db.Alloc(clause(-1, -2, -3))
	c3 := db.Alloc(clause(4, 5, 6, 7))
	if db.Len() != 3 {
		t.Fatalf("len = %d, want 3", db.Len())
	}

	rc1, ok := db.Resolve(c1)
	if !ok || !literalsEqual(rc1.Literals, clause(1, 2, 3)) {
		t.Fatalf("resolve(c1) = %+v, %v", rc1, ok)
	}
	rc2, ok := db.Resolve(c2)
	if !ok || !literalsEqual(rc2.Literals, clause(-1, -2, -3)) {
		t.Fatalf("resolve(c2) = %+v, %v", rc2, ok)
	}
	rc3, ok := db.Resolve(c3)
	if !ok || !literalsEqual(rc3.Literals, clause(4, 5, 6, 7)) {
		t.Fatalf("resolve(c3) = %+v, %v", rc3, ok)
	}

	if removal, freed := db.RemoveClause(c1); removal != ClauseRemoved || freed != 5 {
		t.Fatalf("remove(c1) = %v, %d", removal, freed)
	}
	if removal, freed := db.RemoveClause(c2); removal != ClauseRemoved || freed != 5 {
		t.Fatalf("remove(c2) = %v, %d", removal, freed)
	}
	if _, ok := db.Resolve(c1); ok {
		t.Fatalf("expected c1 to be gone")
	}
	if _, ok := db.Resolve(c2); ok {
		t.Fatalf("expected c2 to be gone")
	}
	if _, ok := db.Resolve(c3); !ok {
		t.Fatalf("expected c3 still resolvable")
	}
	if db.IsEmpty() {
		t.Fatalf("database should not be empty, c3 still live")
	}
	if removal, _ := db.RemoveClause(c1); removal != ClauseAlreadyRemoved {
		t.Fatalf("remove(c1) again = %v, want AlreadyRemoved", removal)
	}
	if removal, _ := db.RemoveClause(c2); removal != ClauseAlreadyRemoved {
		t.Fatalf("remove(c2) again = %v, want AlreadyRemoved", removal)
	}

	type remap struct{ from, into ClauseRef }
	var remaps []remap
	freed := db.GC(func(from, into ClauseRef) {
		remaps = append(remaps, remap{from, into})
	})
	if freed != 10 {
		t.Fatalf("gc freed = %d, want 10", freed)
	}
	if len(remaps) != 1 || remaps[0].from != (ClauseRef{offset: 10}) || remaps[0].into != (ClauseRef{offset: 0}) {
		t.Fatalf("remaps = %+v", remaps)
	}
	if _, ok := db.Resolve(ClauseRef{offset: 10}); ok {
		t.Fatalf("old ref should no longer resolve")
	}
	rc3, ok = db.Resolve(ClauseRef{offset: 0})
	if !ok || !literalsEqual(rc3.Literals, clause(4, 5, 6, 7)) {
		t.Fatalf("resolve at relocated ref = %+v, %v", rc3, ok)
	}

	remaps = nil
	if freed := db.GC(func(from, into ClauseRef) {
		remaps = append(remaps, remap{from, into})
	}); freed != 0 {
		t.Fatalf("second gc freed = %d, want 0", freed)
	}
	if len(remaps) != 0 {
		t.Fatalf("second gc remaps = %+v, want none", remaps)
	}
}
