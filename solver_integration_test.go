package main

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocdcl/gocdcl/internal/sat"
	"github.com/gocdcl/gocdcl/parsers"
)

// This suite checks the solver end to end: for each DIMACS instance under
// testdataDir it runs a single Solve and checks the verdict against a
// fixture of hand-verified satisfying assignments. Every fixture model was
// checked by exhaustive enumeration against the instance's clauses, so an
// instance with an empty fixture is expected to be UNSAT.
//
// A single Solve call per instance, rather than an enumerate-all-models
// loop, matches the one-shot contract this solver exposes: adding a clause
// after a model has been found would require backtracking to the root
// decision level first, which this package's Solve deliberately does not
// do (incremental solving under assumptions is out of scope).
//
// Each test case is a pair of files sharing a basename:
//
//   - an instance file with the ".cnf" extension holding a DIMACS CNF
//     formula;
//   - a models file with the ".cnf.models" extension holding one line per
//     satisfying assignment, using the same literal syntax as the instance.
var testdataDir = "testdata"

type testCase struct {
	instanceName string
	instanceFile string
	modelsFile   string
}

func listTestCases(dir string) ([]testCase, error) {
	var cases []testCase
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		cases = append(cases, testCase{
			instanceName: d.Name(),
			instanceFile: path,
			modelsFile:   path + ".models",
		})
		return nil
	})
	return cases, err
}

// toString renders a model as a binary string so it can be looked up in a
// set regardless of which equivalent slice representation produced it.
func toString(model []bool) string {
	s := make([]byte, len(model))
	for i, b := range model {
		if b {
			s[i] = 1
		}
	}
	return string(s)
}

func toSet(models [][]bool) map[string]struct{} {
	set := make(map[string]struct{}, len(models))
	for _, m := range models {
		set[toString(m)] = struct{}{}
	}
	return set
}

func TestSolve(t *testing.T) {
	cases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("error listing test cases: %s", err)
	}
	if len(cases) == 0 {
		t.Fatal("no test cases found under testdata")
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.instanceName, func(t *testing.T) {
			t.Parallel()

			want, err := parsers.ReadModels(tc.modelsFile)
			if err != nil {
				t.Fatalf("model parsing error: %s", err)
			}

			s, _, err := parsers.LoadDIMACS(tc.instanceFile, false, sat.DefaultOptions)
			if err != nil {
				t.Fatalf("instance parsing error: %s", err)
			}

			status := s.Solve(nil)
			if err := s.Err(); err != nil {
				t.Fatalf("solve error: %s", err)
			}

			if len(want) == 0 {
				if status != sat.Unsat {
					t.Fatalf("got %s, want UNSATISFIABLE", status)
				}
				return
			}

			if status != sat.Sat {
				t.Fatalf("got %s, want SATISFIABLE", status)
			}
			got := s.Model()[1:] // model[0] is the unused Var(0) slot
			wantSet := toSet(want)
			if _, ok := wantSet[toString(got)]; !ok {
				t.Errorf("model %v is not among the expected models %v", got, want)
			}
		})
	}
}
