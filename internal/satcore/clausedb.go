package satcore

import "fmt"

// ClauseRef is an opaque reference to a clause stored in a ClauseDatabase. It
// is a word offset into the database's buffer and is only valid until the
// next garbage collection sweep, which may relocate the clause it refers to.
type ClauseRef struct {
	offset uint32
}

// deletedBit marks a clause header word as belonging to a removed clause.
const deletedBit = uint32(1)

// ClauseDatabase stores clauses of two or more literals in one contiguous
// []uint32 buffer: each clause is a header word, a length word, then one
// word per literal. Allocation always appends; removal only marks a clause
// deleted, and GC compacts the buffer and reports the old-to-new ClauseRef
// remap for every clause it relocates.
type ClauseDatabase struct {
	words      []uint32
	freedWords int
	lenClauses int
}

// Alloc appends a new clause with the given literals (at least two) and
// returns a reference to it.
func (db *ClauseDatabase) Alloc(literals []Literal) ClauseRef {
	if len(literals) < 2 {
		panic("satcore: can only allocate clauses with 2 or more literals")
	}
	current := len(db.words)
	db.words = append(db.words, 0) // header, not deleted
	db.words = append(db.words, uint32(len(literals)))
	for _, lit := range literals {
		db.words = append(db.words, lit.packedWord())
	}
	db.lenClauses++
	return ClauseRef{offset: uint32(current)}
}

// ClauseLen returns the number of literals in the referenced clause.
func (db *ClauseDatabase) ClauseLen(ref ClauseRef) int {
	return int(db.words[int(ref.offset)+1])
}

// LiteralAt returns the i-th literal of the referenced clause.
func (db *ClauseDatabase) LiteralAt(ref ClauseRef, i int) Literal {
	return literalFromPackedWord(db.words[int(ref.offset)+2+i])
}

// SetLiteralAt overwrites the i-th literal of the referenced clause in
// place. Used by watch-list propagation to keep the two watched literals
// at positions 0 and 1.
func (db *ClauseDatabase) SetLiteralAt(ref ClauseRef, i int, lit Literal) {
	db.words[int(ref.offset)+2+i] = lit.packedWord()
}

// ResolvedClause is a read-only view of a clause stored in the database.
type ResolvedClause struct {
	Deleted  bool
	Literals []Literal
}

// Resolve returns the clause ref points to, or ok=false if it has been
// removed.
func (db *ClauseDatabase) Resolve(ref ClauseRef) (ResolvedClause, bool) {
	offset := int(ref.offset)
	if offset >= len(db.words) {
		return ResolvedClause{}, false
	}
	header := db.words[offset]
	if header&deletedBit != 0 {
		return ResolvedClause{}, false
	}
	length := int(db.words[offset+1])
	if offset+2+length > len(db.words) {
		panic("satcore: not enough clause words in clause database")
	}
	lits := make([]Literal, length)
	for i := 0; i < length; i++ {
		lits[i] = literalFromPackedWord(db.words[offset+2+i])
	}
	return ResolvedClause{Literals: lits}, true
}

// ClauseRemoval reports the outcome of removing a clause.
type ClauseRemoval int

const (
	// ClauseRemoved means the clause was marked deleted; the words it
	// occupies (RemoveClause's second result) are freed at the next GC
	// sweep.
	ClauseRemoved ClauseRemoval = iota
	// ClauseAlreadyRemoved means the clause had already been marked deleted.
	ClauseAlreadyRemoved
	// ClauseNotFound means the reference does not point into the database.
	ClauseNotFound
)

// RemoveClause marks the referenced clause as deleted. It is not
// immediately reclaimed: that happens on the next call to GC.
func (db *ClauseDatabase) RemoveClause(ref ClauseRef) (ClauseRemoval, int) {
	offset := int(ref.offset)
	if offset >= len(db.words) {
		return ClauseNotFound, 0
	}
	if db.words[offset]&deletedBit != 0 {
		return ClauseAlreadyRemoved, 0
	}
	db.words[offset] |= deletedBit
	length := int(db.words[offset+1])
	freed := length + 2
	db.freedWords += freed
	db.lenClauses--
	return ClauseRemoved, freed
}

// GC compacts the database, discarding every clause marked deleted. report
// is called once per surviving clause that moves, with its old and new
// references; callers use it to fix up any ClauseRef they have cached (e.g.
// watch list entries). GC returns the number of words reclaimed.
func (db *ClauseDatabase) GC(report func(old, new ClauseRef)) int {
	current, alive := 0, 0
	wordsLen := len(db.words)
	for current != len(db.words) {
		header := db.words[current]
		length := int(db.words[current+1])
		clauseLen := length + 2
		if header&deletedBit == 0 {
			if alive != current {
				for n := 0; n < clauseLen; n++ {
					db.words[alive+n] = db.words[current+n]
				}
				report(ClauseRef{offset: uint32(current)}, ClauseRef{offset: uint32(alive)})
			}
			alive += clauseLen
		}
		current += clauseLen
	}
	db.words = db.words[:wordsLen-db.freedWords]
	freed := db.freedWords
	db.freedWords = 0
	return freed
}

// Len returns the number of live (non-deleted) clauses.
func (db *ClauseDatabase) Len() int {
	return db.lenClauses
}

// IsEmpty reports whether the database holds no live clauses.
func (db *ClauseDatabase) IsEmpty() bool {
	return db.lenClauses == 0
}

// Iterate calls fn once per live clause in storage order.
func (db *ClauseDatabase) Iterate(fn func(ClauseRef, ResolvedClause)) {
	offset := 0
	for offset < len(db.words) {
		header := db.words[offset]
		length := int(db.words[offset+1])
		clauseLen := length + 2
		if header&deletedBit == 0 {
			lits := make([]Literal, length)
			for i := 0; i < length; i++ {
				lits[i] = literalFromPackedWord(db.words[offset+2+i])
			}
			fn(ClauseRef{offset: uint32(offset)}, ResolvedClause{Literals: lits})
		}
		offset += clauseLen
	}
}

func (r ClauseRef) String() string {
	return fmt.Sprintf("ClauseRef(%d)", r.offset)
}

// Clone returns a database holding a copy of the same clauses, backed by
// its own storage.
func (db *ClauseDatabase) Clone() ClauseDatabase {
	return ClauseDatabase{
		words:      append([]uint32(nil), db.words...),
		freedWords: db.freedWords,
		lenClauses: db.lenClauses,
	}
}
