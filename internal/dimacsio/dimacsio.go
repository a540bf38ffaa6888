// Package dimacsio adapts the github.com/rhartert/dimacs parser to
// gosat's Solver: it is a dumb event-to-call adapter, with no sanitation or
// solving logic of its own.
package dimacsio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"
	"github.com/rhartert/gosat/sat"
)

// SATSolver is the subset of sat.Solver's API the loader needs. Accepting an
// interface rather than *sat.Solver keeps this package testable without a
// real solver.
type SATSolver interface {
	NewLiteralChunk(amount int) sat.LiteralChunk
	ConsumeClause(literals []sat.Literal)
}

func openReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadFile parses the named DIMACS CNF file and feeds its formula into
// solver. gzipped controls whether the file is first passed through
// gzip decompression.
func LoadFile(filename string, gzipped bool, solver SATSolver) error {
	r, err := openReader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()
	return Load(r, solver)
}

// Load parses a DIMACS CNF stream and feeds its formula into solver.
func Load(r io.Reader, solver SATSolver) error {
	b := &builder{solver: solver}
	return dimacs.ReadBuilder(r, b)
}

// builder wraps a SATSolver to implement dimacs.Builder: exactly one
// Problem call allocates the instance's whole variable range up front (one
// NewLiteralChunk call), after which every Clause call is forwarded to
// ConsumeClause.
type builder struct {
	solver SATSolver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacsio: unsupported problem type %q", problem)
	}
	b.solver.NewLiteralChunk(nVars)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, x := range tmpClause {
		clause[i] = sat.FromDIMACS(x)
	}
	b.solver.ConsumeClause(clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModelsFile reads a models file: one satisfying assignment per line,
// encoded the same way as a DIMACS clause line (signed literals terminated
// by 0), with no preceding problem line. Each returned model is a slice of
// per-variable booleans in positional order.
func ReadModelsFile(filename string) ([][]bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer f.Close()

	b := &modelsBuilder{}
	if err := dimacs.ReadBuilder(f, b); err != nil {
		return nil, fmt.Errorf("dimacsio: reading models from %q: %w", filename, err)
	}
	return b.models, nil
}

type modelsBuilder struct {
	models [][]bool
}

func (b *modelsBuilder) Problem(_ string, _ int, _ int) error {
	return fmt.Errorf("dimacsio: a models file must not contain a problem line")
}

func (b *modelsBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, x := range tmpClause {
		model[i] = x > 0
	}
	b.models = append(b.models, model)
	return nil
}

func (b *modelsBuilder) Comment(_ string) error {
	return nil
}
