package search

import (
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// failureSignal is the tagged control-flow value threaded through the
// driver via panic/recover, standing in for the original's exception-based
// Fail() (spec §9: "best realized as a tagged result type... rather than
// language-specific exceptions"). restartSignal is a second, distinct tag
// that deliberately bubbles past every decision frame's recovery point,
// since a restart must unwind all the way to the search root.
type failureSignal struct{ reason error }
type restartSignal struct{}

// Solver is the engine boundary the driver depends on (spec §6.1): trail,
// variable registry, constraint store, counters, RNG, and the driver loop
// itself. Grounded on the teacher's general "solver owns mutable state"
// shape; the copy-on-write SolverState chain in pkg/minikanren/solver.go
// was not reused (see DESIGN.md) in favor of the simpler trail model.
type Solver struct {
	trail  Trail
	vars   []*IntVar
	nextID int

	constraints     []Constraint
	constraintCount int

	rng    *rng
	logger *zap.Logger
	RunID  uuid.UUID
	config Config

	wallStart time.Time
	branches  int64
	failures  int64
	solutions int64

	neighbors         int64
	filteredNeighbors int64
	acceptedNeighbors int64

	searchDepth int
	solveDepth  int

	solutionFound bool
	failureReason error
}

// NewSolver constructs a Solver. A nil logger defaults to zap.NewNop(),
// matching the teacher's optional-monitor-field convention.
func NewSolver(cfg Config, logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{
		rng:       newRNG(cfg.RandSeed),
		logger:    logger,
		RunID:     uuid.New(),
		config:    cfg,
		wallStart: time.Now(),
	}
}

// Logger returns the Solver's zap logger, for constructing SearchLog/
// SearchTrace monitors that share the engine's sink.
func (s *Solver) Logger() *zap.Logger { return s.logger }

// MakeIntVar creates a new IntVar with domain [lo, hi]. Derived variables
// created mid-search (MakeSum's total, MakeElement's result, and so on via
// a Refute or metaheuristic ApplyDecision hook) have their registration
// trailed, so the var registry shrinks back on backtrack along with the
// constraint it was built for.
func (s *Solver) MakeIntVar(lo, hi int, name string) *IntVar {
	s.nextID++
	v := &IntVar{id: s.nextID, name: name, solver: s, dom: newBitsetDomain(lo, hi)}
	n := len(s.vars)
	s.vars = append(s.vars, v)
	s.trail.RevAlloc(func() { s.vars = s.vars[:n] })
	return v
}

// MakeBoolVar creates a new boolean IntVar (domain {0,1}).
func (s *Solver) MakeBoolVar(name string) *IntVar { return s.MakeIntVar(0, 1, name) }

// Fail is the control + trail primitive of spec §6.1: it aborts the
// current branch by panicking with failureSignal, recovered at the
// nearest choice point in the driver loop.
func (s *Solver) Fail() { s.FailWithReason(nil) }

// FailWithReason is Fail with an attached sentinel (ErrDomainEmpty,
// ErrInconsistent, ErrLimitExceeded, ...) describing why the branch died,
// readable from a BeginFail monitor via LastFailureReason.
func (s *Solver) FailWithReason(reason error) {
	s.failureReason = reason
	panic(failureSignal{reason: reason})
}

// LastFailureReason returns the sentinel passed to the most recent
// FailWithReason call, or nil if the last failure came from a plain Fail
// (or none has happened yet).
func (s *Solver) LastFailureReason() error { return s.failureReason }

// RestartCurrentSearch requests that the driver abandon the current
// search tree and re-enter it from the root, used by restart monitors
// (spec §4.9). Implemented as a distinct panic tag that bubbles past
// every decision frame's local recovery, unlike Fail.
func (s *Solver) RestartCurrentSearch() { panic(restartSignal{}) }

// RevAlloc is the arena-allocator primitive of spec §6.1. Go's garbage
// collector already reclaims search-scoped objects once unreferenced, so
// this is the identity function: the arena-index translation spec §9
// describes collapses to ordinary GC-managed references in Go, and is
// documented here rather than silently reinvented as a real arena.
func RevAlloc[T any](p T) T { return p }

// Rand32 returns a uniform deterministic value in [0, n).
func (s *Solver) Rand32(n uint32) uint32 { return s.rng.Rand32(n) }

// Rand64 returns a uniform deterministic value in [0, n).
func (s *Solver) Rand64(n uint64) uint64 { return s.rng.Rand64(n) }

// RandFloat64 returns a uniform deterministic value in [0, 1), used by
// SimulatedAnnealing's energy computation.
func (s *Solver) RandFloat64() float64 { return s.rng.Float64() }

// Counters consumed by monitors and limits (spec §6.1).
func (s *Solver) WallTime() time.Duration { return time.Since(s.wallStart) }
func (s *Solver) Branches() int64         { return s.branches }
func (s *Solver) Failures() int64         { return s.failures }
func (s *Solver) Solutions() int64        { return s.solutions }
func (s *Solver) Neighbors() int64        { return s.neighbors }
func (s *Solver) FilteredNeighbors() int64 { return s.filteredNeighbors }
func (s *Solver) AcceptedNeighbors() int64 { return s.acceptedNeighbors }
func (s *Solver) Constraints() int         { return s.constraintCount }
func (s *Solver) SearchDepth() int        { return s.searchDepth }
func (s *Solver) SolveDepth() int         { return s.solveDepth }

// MemoryUsage reports the process's current heap allocation, the closest
// Go analog of the original's process memory counter used by SearchLog.
func (s *Solver) MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// protect runs f, recovering failureSignal (and returning failed=true).
// Any other panic value — including restartSignal — is re-raised so it
// bubbles to whichever frame is prepared to catch it.
func (s *Solver) protect(f func()) (failed bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(failureSignal); ok {
				failed = true
				return
			}
			panic(r)
		}
	}()
	f()
	return false
}

// Solve runs db to completion against monitors, returning whether at
// least one solution was accepted (spec §4.1).
func (s *Solver) Solve(db DecisionBuilder, monitors ...SearchMonitor) bool {
	return s.runSearch(db, monitors, 0)
}

// NestedSolve implements spec §4.10: an independent top-level driver loop
// reusing this engine's reversible store. restore=false means mutations
// persist into the caller on success; restore=true always rewinds.
func (s *Solver) NestedSolve(db DecisionBuilder, restore bool, monitors ...SearchMonitor) bool {
	mark := s.trail.Mark()
	s.solveDepth++
	found := s.runSearch(db, monitors, s.solveDepth)
	s.solveDepth--
	if restore || !found {
		s.trail.Undo(mark)
	}
	return found
}

func (s *Solver) runSearch(db DecisionBuilder, monitors []SearchMonitor, depth int) bool {
	bc := &broadcaster{monitors: monitors}
	prevDepth := s.searchDepth
	s.searchDepth = depth
	s.solutionFound = false

	bc.enterSearch(s)
	bc.beginInitialPropagation(s)
	s.protect(func() { s.propagate() })
	bc.endInitialPropagation(s)

	for {
		rootMark := s.trail.Mark()
		restarted := s.runRootOnce(bc, db)
		if restarted {
			s.trail.Undo(rootMark)
			bc.restartSearch(s)
			continue
		}
		break
	}

	bc.noMoreSolutions(s)
	bc.exitSearch(s)
	s.searchDepth = prevDepth
	return s.solutionFound
}

// runRootOnce drives one attempt at the search tree from the current
// position, catching a RestartCurrentSearch request at the root (it must
// bubble past every intermediate decision frame, which only catches
// failureSignal).
func (s *Solver) runRootOnce(bc *broadcaster, db DecisionBuilder) (restarted bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(restartSignal); ok {
				restarted = true
				return
			}
			if _, ok := r.(failureSignal); ok {
				return // exhausted with no (further) solution; not a restart
			}
			panic(r)
		}
	}()
	s.dfs(bc, db)
	return false
}

// dfs is the recursive core of the driver loop (spec §4.1). Each call
// explores exactly one more decision: apply-then-recurse, and on failure,
// refute-then-recurse. A normal return means the search (or this subtree,
// for a nested nil-continuation) is done; a failureSignal panic unwinds to
// the nearest enclosing dfs frame, which is this function's own protect
// wrapping its own Apply/Refute recursion.
func (s *Solver) dfs(bc *broadcaster, db DecisionBuilder) {
	bc.beginNextDecision(s, db)
	d := db.Next(s)
	bc.endNextDecision(s, db, d)

	if d == nil {
		if !bc.acceptSolution(s) {
			s.Fail()
		}
		s.solutionFound = true
		s.solutions++
		s.acceptedNeighbors++
		if bc.atSolution(s) {
			// Monitors want more solutions: treat as a failure to force
			// backtrack into the remaining search space.
			s.Fail()
		}
		return
	}

	mark := s.trail.Mark()
	applyFailed := s.protect(func() {
		bc.applyDecision(s, d)
		s.branches++
		s.neighbors++
		d.Apply(s)
		s.propagate()
		s.dfs(bc, db)
	})
	if !applyFailed {
		return
	}

	s.failures++
	bc.beginFail(s)
	s.trail.Undo(mark)
	bc.refuteDecision(s, d)
	s.filteredNeighbors++
	refuteFailed := s.protect(func() {
		d.Refute(s)
		s.propagate()
		s.dfs(bc, db)
	})
	bc.endFail(s)
	if refuteFailed {
		s.Fail()
	}
}
