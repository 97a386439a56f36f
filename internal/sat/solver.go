// Package sat implements the core of a conflict-driven clause-learning
// (CDCL) propositional satisfiability solver: watched-literal unit
// propagation over a flat integer clause arena, first-UIP conflict
// analysis with recursive self-subsumption, a variable-move-to-front
// decision heuristic, and a glue-based (LBD EMA) restart and
// learned-clause reduction policy.
//
// The package does not parse DIMACS or print results -- see the parsers
// package for the producer that feeds Solver.AddClause, and the
// command-line driver at the module root for the caller that runs
// Solver.Solve and reports its result.
package sat

// Options configures a Solver at construction time.
type Options struct {
	// MaxArenaInts bounds the size of the clause database. microsat's
	// own default is 1<<30 (roughly 4 GiB of int32s); tests use a much
	// smaller value.
	MaxArenaInts int32

	// InitialMaxLemmas is the learned-clause count above which reduceDB
	// starts trimming.
	InitialMaxLemmas int32

	// MaxConflicts caps the number of conflicts Solve will process before
	// returning Interrupted, or -1 for no cap. This is a driver-level
	// extension: the core itself has no notion of a budget, the same way
	// microsat's solve() runs to completion unless the caller wraps it.
	MaxConflicts int64
}

// DefaultOptions mirrors the constants initCDCL hard-codes in the
// original source (mem_max = 1<<30, maxLemmas = 2000).
var DefaultOptions = Options{
	MaxArenaInts:     1 << 30,
	InitialMaxLemmas: 2000,
	MaxConflicts:     -1,
}

// Solver is the CDCL core microsat implements as a handful of global
// arrays and a couple hundred lines of control flow. All its state lives
// either in the flat arena or in slices indexed by Var/Literal; nothing
// is heap-allocated per clause, the same flat-array discipline
// microsat uses throughout.
type Solver struct {
	nVars int32
	db    arena

	// Per-literal arrays, indexed via s.lidx(l) = int32(l) + nVars.
	fals  []int8  // 0 unassigned, 1 false
	first []int32 // head of the watch list for this literal, or END

	// Per-variable arrays, indexed directly by Var (1..nVars).
	reason []int32 // arena offset of the reason clause, or 0
	model  []int8  // last truth value cached for phase saving: -1/0/1

	order vmtfOrder

	// Trail: microsat's falseStack. trail[:forced] is fixed at the root,
	// trail[forced:processed] is propagated, trail[processed:] is
	// falsified but not yet propagated. len(trail) is microsat's "assigned" pointer.
	trail     []Literal
	forced    int32
	processed int32

	marks   markSet
	implied impliedCache
	buffer  []Literal // scratch output buffer for analyze's learned clause

	ema          restartEMA
	maxLemmas    int32
	nLemmas      int32
	maxConflicts int64

	rootConflict bool  // true once addClause/propagate finds a root-level conflict
	lastErr      error // set once the arena is exhausted; sticky

	// Search statistics, safe to read after Solve returns.
	Conflicts int64
	Restarts  int64
	Decisions int64
}

// NewSolver allocates a Solver for a formula over nVars variables
// (clamped to >= 1, since every array below is sized off it), with the
// arena capacity, lemma limit and conflict budget taken from opts.
func NewSolver(nVars int, opts Options) *Solver {
	if nVars < 1 {
		nVars = 1
	}
	n := int32(nVars)

	s := &Solver{
		nVars:        n,
		db:           newArena(opts.MaxArenaInts),
		fals:         make([]int8, 2*n+1),
		first:        make([]int32, 2*n+1),
		reason:       make([]int32, n+1),
		model:        make([]int8, n+1),
		order:        newVMTFOrder(n),
		trail:        make([]Literal, 0, n),
		marks:        newMarkSet(n),
		implied:      newImpliedCache(n),
		buffer:       make([]Literal, 0, n),
		ema:          newRestartEMA(),
		maxLemmas:    opts.InitialMaxLemmas,
		maxConflicts: opts.MaxConflicts,
	}
	for i := range s.first {
		s.first[i] = END
	}
	// The arena always has a 0 just before the first clause so the
	// watch-position detection trick in propagate (clauseBody's
	// mem-to-body recovery, mirroring microsat) works uniformly for
	// the very first clause ever allocated.
	s.db.db[0] = 0
	s.db.memUsed = 1

	return s
}

// NVars returns the number of variables the solver was built for.
func (s *Solver) NVars() int32 { return s.nVars }

// lidx maps a signed literal to its index in fals/first.
func (s *Solver) lidx(l Literal) int32 { return int32(l) + s.nVars }

// isFalse reports whether literal l is currently false.
func (s *Solver) isFalse(l Literal) bool { return s.fals[s.lidx(l)] != 0 }

// isTrue reports whether literal l is currently true (i.e. its negation
// is false).
func (s *Solver) isTrue(l Literal) bool { return s.isFalse(l.Negate()) }

// isUnassigned reports whether neither polarity of l's variable has been
// assigned.
func (s *Solver) isUnassigned(l Literal) bool {
	return !s.isFalse(l) && !s.isTrue(l)
}

// assigned returns the current size of the trail, microsat's
// "assigned" pointer.
func (s *Solver) assigned() int32 { return int32(len(s.trail)) }

// RootUnsat reports whether a root-level conflict (an empty clause or two
// contradictory units) has been detected, either during AddClause or
// during a previous Solve call.
func (s *Solver) RootUnsat() bool { return s.rootConflict }

// Value reports the current truth value of variable v: true, false, or
// (unassigned) via ok == false.
func (s *Solver) Value(v Var) (value bool, ok bool) {
	if s.fals[s.lidx(Literal(v))] != 0 {
		return false, true
	}
	if s.fals[s.lidx(Literal(-v))] != 0 {
		return true, true
	}
	return false, false
}

// Model returns the cached last-assigned polarity for every variable
// (1..NVars), valid after Solve returns Sat. model[v] reflects the last
// assigned polarity, the same phase-saving array microsat calls
// model[].
func (s *Solver) Model() []bool {
	m := make([]bool, s.nVars+1)
	for v := Var(1); v <= Var(s.nVars); v++ {
		m[v] = s.model[v] > 0
	}
	return m
}

// unassign reverts literal l to unassigned.
func (s *Solver) unassign(l Literal) {
	s.fals[s.lidx(l)] = 0
}

// assign makes the reason clause's first literal true, microsat's
// assign. reasonOff is the arena offset of the clause whose unit
// propagation forces this assignment, or 0 for a decision.
func (s *Solver) assign(lit Literal, reasonOff int32) {
	s.fals[s.lidx(lit.Negate())] = 1
	s.trail = append(s.trail, lit.Negate())
	s.reason[lit.Var()] = reasonOff
	if lit.IsPositive() {
		s.model[lit.Var()] = 1
	} else {
		s.model[lit.Var()] = -1
	}
}

// restart unwinds every assignment above the forced prefix, microsat's
// restart.
func (s *Solver) restart() {
	for s.assigned() > s.forced {
		top := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		s.unassign(top)
	}
	s.processed = s.forced
	s.Restarts++
}

// Solve runs microsat's solve() loop to completion, or until
// shouldStop reports true -- a driver-level extension for an external
// tick callback, polled only here and never inside propagate or
// analyze. shouldStop may be nil.
func (s *Solver) Solve(shouldStop func() bool) Status {
	if s.rootConflict {
		return Unsat
	}

	decision := s.order.head
	for {
		oldLemmas := s.nLemmas
		status, hasConflict, err := s.propagate()
		if err != nil {
			s.lastErr = err
			return Interrupted // arena exhausted; caller must check Err()
		}
		if hasConflict {
			return status
		}

		if s.maxConflicts >= 0 && s.Conflicts >= s.maxConflicts {
			return Interrupted
		}

		if s.nLemmas > oldLemmas {
			decision = s.order.head
			if s.ema.shouldRestart() {
				s.ema.clampFast()
				s.restart()
				if s.nLemmas > s.maxLemmas {
					if err := s.reduceDB(6); err != nil {
						s.lastErr = err
						return Interrupted
					}
				}
			}
		}

		for s.fals[s.lidx(Literal(decision))] != 0 || s.fals[s.lidx(Literal(-decision))] != 0 {
			decision = s.order.prev[decision]
			if decision == 0 {
				break
			}
		}
		if decision == 0 {
			return Sat
		}

		if shouldStop != nil && shouldStop() {
			return Interrupted
		}

		lit := Literal(decision)
		if s.model[decision] <= 0 {
			// Never assigned before or last seen false: this preserves
			// microsat's full phase saving, including its implicit
			// default (model[] starts at 0, which C treats as falsy
			// and picks the negative literal).
			lit = -lit
		}
		s.fals[s.lidx(lit.Negate())] = 1
		s.trail = append(s.trail, lit.Negate())
		s.reason[decision] = 0
		s.Decisions++
	}
}

// Err returns the fatal arena-exhaustion error, if Solve or AddClause
// ever hit one. A non-nil Err means the solver's state must not be used
// further: microsat calls exit(0) on out-of-memory, with no attempt
// at partial recovery, and this core offers none either.
func (s *Solver) Err() error { return s.lastErr }
