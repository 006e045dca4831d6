package search

import "math"

// SimulatedAnnealing is a Cauchy-schedule metaheuristic monitor
// (spec §4.6.2): T(i) = T0/i, i starting at 1 on the first LocalOptimum
// and incrementing on each further one.
//
// iteration_ is incremented from two places — LocalOptimum always
// advances it, and AcceptNeighbor also advances it whenever it is
// already nonzero. A neighbor accepted between two LocalOptimum events
// therefore increments iteration_ twice for what is conceptually a
// single annealing step; this accounting is preserved deliberately
// rather than silently corrected.
type SimulatedAnnealing struct {
	BaseMonitor
	Objective   *IntVar
	Maximize    bool
	Step        int
	T0          float64

	iteration int64
	best      int
	current   int
	haveBest  bool
}

// NewSimulatedAnnealing constructs a SimulatedAnnealing over the given
// objective with initial temperature t0.
func NewSimulatedAnnealing(objective *IntVar, maximize bool, step int, t0 float64) *SimulatedAnnealing {
	return &SimulatedAnnealing{Objective: objective, Maximize: maximize, Step: step, T0: t0}
}

func (a *SimulatedAnnealing) EnterSearch(s *Solver) {
	a.iteration = 0
	a.haveBest = false
	if a.Maximize {
		a.current = -1 << 62
	} else {
		a.current = 1 << 62
	}
}

func (a *SimulatedAnnealing) temperature() float64 {
	if a.iteration <= 0 {
		return a.T0
	}
	return a.T0 / float64(a.iteration)
}

// ApplyDecision computes energy = T * log(U(0,1)) (negative with
// probability 1, since U(0,1) < 1) and bounds the objective relative to
// current_ by step plus that energy (spec §4.6.2).
func (a *SimulatedAnnealing) ApplyDecision(s *Solver, d Decision) {
	if d == BalancingDecision() || !a.haveBest {
		return
	}
	u := s.RandFloat64()
	if u <= 0 {
		u = 1e-12
	}
	energy := a.temperature() * math.Log(u)
	delta := int(math.Round(energy))
	if a.Maximize {
		a.Objective.SetMin(a.current + a.Step + delta)
	} else {
		a.Objective.SetMax(a.current - a.Step - delta)
	}
}

// AtSolution records the new current/best objective values (spec §4.6.2).
func (a *SimulatedAnnealing) AtSolution(s *Solver) bool {
	v := a.Objective.Value()
	a.current = v
	if !a.haveBest || (a.Maximize && v > a.best) || (!a.Maximize && v < a.best) {
		a.best = v
	}
	a.haveBest = true
	return false
}

// LocalOptimum advances iteration_ (first call sets it to 1, thereafter
// increments), resets current_ to the worst side, and returns whether
// T(iteration_) is still positive — a temperature-ran-out signal aborts
// the local search (spec §4.6.2).
func (a *SimulatedAnnealing) LocalOptimum(s *Solver) bool {
	if a.iteration == 0 {
		a.iteration = 1
	} else {
		a.iteration++
	}
	if a.Maximize {
		a.current = -1 << 62
	} else {
		a.current = 1 << 62
	}
	return a.temperature() > 0
}

// AcceptNeighbor increments iteration_ only when it is already nonzero —
// i.e. only after the first LocalOptimum has primed the schedule. This is
// the second, independent increment site (see the type-level comment on
// the double-counting it permits).
func (a *SimulatedAnnealing) AcceptNeighbor(s *Solver) {
	if a.iteration != 0 {
		a.iteration++
	}
}
