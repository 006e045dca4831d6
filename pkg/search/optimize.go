package search

import "math"

// OptimizeVar implements branch-and-bound objective optimization
// (spec §4.5). Grounded on pkg/minikanren/optimize.go's OptimizeVar shape
// and direction handling, stripped of its precomputed structural-bound
// search (out of scope here; see DESIGN.md).
type OptimizeVar struct {
	BaseMonitor
	Maximize  bool
	Objective *IntVar
	Step      int

	best int
	have bool
}

// NewOptimizeVar constructs an OptimizeVar. step must be >= 1
// (spec §7 misuse category).
func NewOptimizeVar(maximize bool, objective *IntVar, step int) (*OptimizeVar, error) {
	if step < 1 {
		return nil, wrapMisuse(ErrNonPositiveStep, "OptimizeVar step=%d", step)
	}
	return &OptimizeVar{Maximize: maximize, Objective: objective, Step: step}, nil
}

func (o *OptimizeVar) EnterSearch(s *Solver) {
	o.have = false
	if o.Maximize {
		o.best = math.MinInt64 >> 1
	} else {
		o.best = math.MaxInt64 >> 1
	}
}

// Best returns the best objective value seen so far, or ok=false if no
// solution has been accepted yet.
func (o *OptimizeVar) Best() (value int, ok bool) { return o.best, o.have }

func (o *OptimizeVar) AtSolution(s *Solver) bool {
	v := o.Objective.Value()
	if o.have {
		if o.Maximize && v <= o.best {
			panic("search: OptimizeVar.AtSolution: objective did not strictly improve")
		}
		if !o.Maximize && v >= o.best {
			panic("search: OptimizeVar.AtSolution: objective did not strictly improve")
		}
	}
	o.best = v
	o.have = true
	return false
}

// applyBound posts objective >= best+step (maximize) or
// objective <= best-step (minimize): the refute-time bound that makes
// branch-and-bound prune (spec §4.5).
func (o *OptimizeVar) applyBound() {
	if !o.have {
		return
	}
	if o.Maximize {
		o.Objective.SetMin(o.best + o.Step)
	} else {
		o.Objective.SetMax(o.best - o.Step)
	}
}

func (o *OptimizeVar) RestartSearch(s *Solver) { o.applyBound() }
func (o *OptimizeVar) RefuteDecision(s *Solver, d Decision) { o.applyBound() }
