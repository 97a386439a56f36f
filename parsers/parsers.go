// Package parsers loads DIMACS CNF instances and their fixture models
// through github.com/rhartert/dimacs's Builder API, on top of which it
// adds gzip transparency and wires the result directly into a
// sat.Solver.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/gocdcl/gocdcl/internal/sat"
)

// gzipFile closes both the gzip stream and the underlying file; gzip.Reader
// alone only closes the former.
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	gzErr := g.Reader.Close()
	if fileErr := g.file.Close(); fileErr != nil {
		return fileErr
	}
	return gzErr
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !gzipped {
		return file, nil
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &gzipFile{Reader: gr, file: file}, nil
}

// LoadDIMACS parses the DIMACS CNF file and returns a Solver sized and
// loaded for it, plus the clause count announced by the file's problem
// line. A non-nil Solver is returned even when the instance is trivially
// unsatisfiable (an empty or directly conflicting unit clause); callers
// should check Solver.RootUnsat before calling Solve.
func LoadDIMACS(filename string, gzipped bool, opts sat.Options) (*sat.Solver, int, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{opts: opts}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, 0, err
	}
	if b.solver == nil {
		return nil, 0, fmt.Errorf("%q has no problem line", filename)
	}
	return b.solver, b.nClauses, nil
}

// builder wraps a Solver to implement dimacs.Builder. The solver itself
// cannot be constructed until the problem line is seen, since its arena
// is sized for a fixed variable count at construction.
type builder struct {
	opts     sat.Options
	solver   *sat.Solver
	nClauses int
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	b.solver = sat.NewSolver(nVars, b.opts)
	b.nClauses = nClauses
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if b.solver == nil {
		return fmt.Errorf("clause line before problem line")
	}
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.Lit(sat.Var(-l), false)
		} else {
			clause[i] = sat.Lit(sat.Var(l), true)
		}
	}
	_, err := b.solver.AddClause(clause)
	return err
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models (if any) contained in the given
// fixture file, used by the module's root integration test to check a
// solver's SAT verdict against a known satisfying assignment.
func ReadModels(filename string) ([][]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

// modelBuilder wraps a slice of models to implement dimacs.Builder.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
