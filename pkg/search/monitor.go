package search

// SearchMonitor is the observer protocol broadcast at each control-flow
// event of the driver (spec §3, §4.7). Every hook receives the live
// Solver so it can read counters or call Fail/SaveAndSetValue/RevAlloc —
// the Go rendering of spec §6.1's "driver depends only on Solver
// capabilities" into explicit dependency passing, rather than an implicit
// ambient pointer as the C++ original's member-function style allows.
// All hooks default to no-op / a neutral fold value via BaseMonitor
// embedding, per spec §9's "trait/interface with default no-op methods".
type SearchMonitor interface {
	EnterSearch(s *Solver)
	RestartSearch(s *Solver)
	ExitSearch(s *Solver)
	BeginNextDecision(s *Solver, db DecisionBuilder)
	EndNextDecision(s *Solver, db DecisionBuilder, d Decision)
	ApplyDecision(s *Solver, d Decision)
	RefuteDecision(s *Solver, d Decision)
	BeginFail(s *Solver)
	EndFail(s *Solver)
	BeginInitialPropagation(s *Solver)
	EndInitialPropagation(s *Solver)
	AtSolution(s *Solver) bool
	AcceptSolution(s *Solver) bool
	NoMoreSolutions(s *Solver)
	LocalOptimum(s *Solver) bool
	AcceptNeighbor(s *Solver)
	AcceptDelta(s *Solver, delta, deltadelta any) bool
}

// BaseMonitor implements SearchMonitor with every hook a no-op / neutral
// value for its fold (true for AND-folded hooks, false for OR-folded
// AtSolution so a silent monitor never manufactures a spurious
// continuation request).
type BaseMonitor struct{}

func (BaseMonitor) EnterSearch(s *Solver)                                {}
func (BaseMonitor) RestartSearch(s *Solver)                              {}
func (BaseMonitor) ExitSearch(s *Solver)                                 {}
func (BaseMonitor) BeginNextDecision(s *Solver, db DecisionBuilder)      {}
func (BaseMonitor) EndNextDecision(s *Solver, db DecisionBuilder, d Decision) {}
func (BaseMonitor) ApplyDecision(s *Solver, d Decision)                  {}
func (BaseMonitor) RefuteDecision(s *Solver, d Decision)                 {}
func (BaseMonitor) BeginFail(s *Solver)                                  {}
func (BaseMonitor) EndFail(s *Solver)                                    {}
func (BaseMonitor) BeginInitialPropagation(s *Solver)                    {}
func (BaseMonitor) EndInitialPropagation(s *Solver)                      {}
func (BaseMonitor) AtSolution(s *Solver) bool                            { return false }
func (BaseMonitor) AcceptSolution(s *Solver) bool                        { return true }
func (BaseMonitor) NoMoreSolutions(s *Solver)                            {}
func (BaseMonitor) LocalOptimum(s *Solver) bool                          { return true }
func (BaseMonitor) AcceptNeighbor(s *Solver)                             {}
func (BaseMonitor) AcceptDelta(s *Solver, delta, deltadelta any) bool    { return true }

// broadcaster fans driver events out to registered monitors, honoring the
// ordering rule in spec §4.1: registration order for begin/enter events,
// reverse registration order for end/exit events.
type broadcaster struct {
	monitors []SearchMonitor
}

func (b *broadcaster) add(m SearchMonitor) { b.monitors = append(b.monitors, m) }

func (b *broadcaster) enterSearch(s *Solver) {
	for _, m := range b.monitors {
		m.EnterSearch(s)
	}
}
func (b *broadcaster) restartSearch(s *Solver) {
	for _, m := range b.monitors {
		m.RestartSearch(s)
	}
}
func (b *broadcaster) exitSearch(s *Solver) {
	for i := len(b.monitors) - 1; i >= 0; i-- {
		b.monitors[i].ExitSearch(s)
	}
}
func (b *broadcaster) beginNextDecision(s *Solver, db DecisionBuilder) {
	for _, m := range b.monitors {
		m.BeginNextDecision(s, db)
	}
}
func (b *broadcaster) endNextDecision(s *Solver, db DecisionBuilder, d Decision) {
	for i := len(b.monitors) - 1; i >= 0; i-- {
		b.monitors[i].EndNextDecision(s, db, d)
	}
}
func (b *broadcaster) applyDecision(s *Solver, d Decision) {
	for _, m := range b.monitors {
		m.ApplyDecision(s, d)
	}
}
func (b *broadcaster) refuteDecision(s *Solver, d Decision) {
	for _, m := range b.monitors {
		m.RefuteDecision(s, d)
	}
}
func (b *broadcaster) beginFail(s *Solver) {
	for _, m := range b.monitors {
		m.BeginFail(s)
	}
}
func (b *broadcaster) endFail(s *Solver) {
	for i := len(b.monitors) - 1; i >= 0; i-- {
		b.monitors[i].EndFail(s)
	}
}
func (b *broadcaster) beginInitialPropagation(s *Solver) {
	for _, m := range b.monitors {
		m.BeginInitialPropagation(s)
	}
}
func (b *broadcaster) endInitialPropagation(s *Solver) {
	for i := len(b.monitors) - 1; i >= 0; i-- {
		b.monitors[i].EndInitialPropagation(s)
	}
}

// atSolution folds by OR: any monitor requesting continuation is enough.
// Monitors that capture a solution (the solution collectors) implement
// SolverAwareMonitor; others use AtSolution.
func (b *broadcaster) atSolution(s *Solver) bool {
	any := false
	for _, m := range b.monitors {
		if aware, ok := m.(SolverAwareMonitor); ok {
			if aware.CaptureAtSolution(s) {
				any = true
			}
			continue
		}
		if m.AtSolution(s) {
			any = true
		}
	}
	return any
}

// acceptSolution folds by AND: every monitor must accept.
func (b *broadcaster) acceptSolution(s *Solver) bool {
	for _, m := range b.monitors {
		if !m.AcceptSolution(s) {
			return false
		}
	}
	return true
}

func (b *broadcaster) noMoreSolutions(s *Solver) {
	for _, m := range b.monitors {
		m.NoMoreSolutions(s)
	}
}

// localOptimum folds by AND: every monitor must agree to continue the
// local-search loop rather than abort it.
func (b *broadcaster) localOptimum(s *Solver) bool {
	for _, m := range b.monitors {
		if !m.LocalOptimum(s) {
			return false
		}
	}
	return true
}

func (b *broadcaster) acceptNeighbor(s *Solver) {
	for _, m := range b.monitors {
		m.AcceptNeighbor(s)
	}
}

// acceptDelta folds by AND (spec §4.7).
func (b *broadcaster) acceptDelta(s *Solver, delta, deltadelta any) bool {
	for _, m := range b.monitors {
		if !m.AcceptDelta(s, delta, deltadelta) {
			return false
		}
	}
	return true
}
