package satcore

import "sort"

// SanitizedKind classifies the outcome of sanitizing a clause's literals.
type SanitizedKind int

const (
	// KindEmptyClause means the input had no literals: the unsatisfiable
	// empty clause.
	KindEmptyClause SanitizedKind = iota
	// KindTautologicalClause means the clause is always true, e.g. (a OR !a).
	KindTautologicalClause
	// KindUnitClause means exactly one literal survived sanitation.
	KindUnitClause
	// KindLiterals means two or more literals survived sanitation.
	KindLiterals
)

// SanitizedClause is the result of sanitizing a clause's literals.
type SanitizedClause struct {
	Kind     SanitizedKind
	Unit     Literal   // valid when Kind == KindUnitClause
	Literals []Literal // valid when Kind == KindLiterals, sorted and deduplicated
}

// Sanitizer removes duplicate literals and detects tautological or empty
// clauses. A single Sanitizer instance reuses its scratch buffers across
// calls to avoid per-clause allocation.
type Sanitizer struct {
	literals    []Literal
	tautologies map[Variable]struct{}
}

// Sanitize normalizes the given literals: it sorts and deduplicates them,
// drops any variable that appears with both polarities, and classifies the
// result. The clause is classified tautological only when no literal
// remains after those variables are dropped.
func (s *Sanitizer) Sanitize(literals []Literal) SanitizedClause {
	if len(literals) == 0 {
		return SanitizedClause{Kind: KindEmptyClause}
	}
	if s.tautologies == nil {
		s.tautologies = make(map[Variable]struct{})
	}
	s.literals = append(s.literals[:0], literals...)
	for k := range s.tautologies {
		delete(s.tautologies, k)
	}

	sort.Slice(s.literals, func(i, j int) bool {
		return s.literals[i].packedWord() < s.literals[j].packedWord()
	})

	deduped := s.literals[:0]
	for _, lit := range s.literals {
		if len(deduped) > 0 && deduped[len(deduped)-1].Variable() == lit.Variable() {
			if deduped[len(deduped)-1] != lit {
				s.tautologies[lit.Variable()] = struct{}{}
			}
			continue
		}
		deduped = append(deduped, lit)
	}
	s.literals = deduped

	kept := s.literals[:0]
	for _, lit := range s.literals {
		if _, tautological := s.tautologies[lit.Variable()]; tautological {
			continue
		}
		kept = append(kept, lit)
	}
	s.literals = kept

	switch len(s.literals) {
	case 0:
		return SanitizedClause{Kind: KindTautologicalClause}
	case 1:
		return SanitizedClause{Kind: KindUnitClause, Unit: s.literals[0]}
	default:
		out := make([]Literal, len(s.literals))
		copy(out, s.literals)
		return SanitizedClause{Kind: KindLiterals, Literals: out}
	}
}

// Clone returns a sanitizer with its own scratch buffers. Since those
// buffers hold no state across calls to Sanitize, a fresh zero-value
// Sanitizer would behave identically; Clone exists so callers that clone a
// larger structure embedding a Sanitizer don't need a special case.
func (s *Sanitizer) Clone() Sanitizer {
	return Sanitizer{}
}
