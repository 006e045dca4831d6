package search

// CostFunc is the application-supplied assignment cost used by
// GuidedLocalSearch's utility computation: cost of tracked index i taking
// value v (spec §4.6.3). Typically a distance/weight matrix lookup.
type CostFunc func(i, value int) int

// GuidedLocalSearch is a penalty-augmented metaheuristic monitor
// (spec §4.6.3). Penalties are indexed by (tracked-index, value) pairs;
// storage is selectable between a dense 2D table and a sparse map set,
// per Config.UseSparseGLSPenalties.
type GuidedLocalSearch struct {
	BaseMonitor
	Vars          []*IntVar
	SecondaryVars []*IntVar // optional: non-nil selects the ternary Element form
	Objective     *IntVar
	Maximize      bool
	Step          int
	PenaltyFactor float64
	Cost          CostFunc

	sparse bool
	dense  [][]int
	sparseTable []map[int]int
	domainSize  int

	best     int
	current  int
	haveBest bool

	lastDelta      int
	haveLastDelta  bool
}

// NewGuidedLocalSearch constructs a GuidedLocalSearch. domainSize bounds
// every tracked variable's value range to [0, domainSize) for the dense
// penalty table and the Element-expression index space.
func NewGuidedLocalSearch(vars []*IntVar, secondary []*IntVar, objective *IntVar, maximize bool, step int, penaltyFactor float64, cost CostFunc, domainSize int, sparse bool) *GuidedLocalSearch {
	g := &GuidedLocalSearch{
		Vars: vars, SecondaryVars: secondary, Objective: objective, Maximize: maximize,
		Step: step, PenaltyFactor: penaltyFactor, Cost: cost, domainSize: domainSize, sparse: sparse,
	}
	if sparse {
		g.sparseTable = make([]map[int]int, len(vars))
		for i := range g.sparseTable {
			g.sparseTable[i] = make(map[int]int)
		}
	} else {
		g.dense = make([][]int, len(vars))
		for i := range g.dense {
			g.dense[i] = make([]int, domainSize)
		}
	}
	return g
}

// NewGuidedLocalSearch constructs a GuidedLocalSearch whose penalty table
// representation is chosen by s's Config.UseSparseGLSPenalties, the
// construction-time knob spec §6.2 describes, rather than by a per-call
// argument. Prefer this over the package-level constructor unless a test
// needs to force one representation independent of the solver's config.
func (s *Solver) NewGuidedLocalSearch(vars []*IntVar, secondary []*IntVar, objective *IntVar, maximize bool, step int, penaltyFactor float64, cost CostFunc, domainSize int) *GuidedLocalSearch {
	return NewGuidedLocalSearch(vars, secondary, objective, maximize, step, penaltyFactor, cost, domainSize, s.config.UseSparseGLSPenalties)
}

func (g *GuidedLocalSearch) penalty(i, v int) int {
	if v < 0 || v >= g.domainSize {
		return 0
	}
	if g.sparse {
		return g.sparseTable[i][v]
	}
	return g.dense[i][v]
}

func (g *GuidedLocalSearch) incrementPenalty(i, v int) {
	if g.sparse {
		g.sparseTable[i][v]++
		return
	}
	if v >= 0 && v < g.domainSize {
		g.dense[i][v]++
	}
}

func (g *GuidedLocalSearch) penaltyRow(i int) []int {
	row := make([]int, g.domainSize)
	if g.sparse {
		for v, p := range g.sparseTable[i] {
			if v >= 0 && v < g.domainSize {
				row[v] = p
			}
		}
		return row
	}
	copy(row, g.dense[i])
	return row
}

func (g *GuidedLocalSearch) EnterSearch(s *Solver) {
	g.haveBest = false
	g.haveLastDelta = false
	if g.Maximize {
		g.current = -1 << 62
	} else {
		g.current = 1 << 62
	}
}

// ApplyDecision builds, for each tracked index, an Element(penalty_i,
// vars_i) expression (or Element(penalty_i, flattened-index) when
// SecondaryVars is set), sums penalty_factor * objective_function(i, v)
// across them, and posts the aspiration-or-descent bound (spec §4.6.3).
func (g *GuidedLocalSearch) ApplyDecision(s *Solver, d Decision) {
	if d == BalancingDecision() || !g.haveBest || len(g.Vars) == 0 {
		return
	}

	penalizedTerms := make([]*IntVar, 0, len(g.Vars))
	for i, v := range g.Vars {
		row := g.penaltyRow(i)
		weighted := make([]int, len(row))
		for vv, p := range row {
			weighted[vv] = p * g.Cost(i, vv)
		}
		var index *IntVar
		if g.SecondaryVars != nil && i < len(g.SecondaryVars) {
			secondarySize := g.domainSize
			combined := s.MakeSum([]*IntVar{v, g.SecondaryVars[i]}, []int{secondarySize, 1})
			flat := make([]int, g.domainSize*secondarySize)
			for vv := 0; vv < g.domainSize; vv++ {
				for sv := 0; sv < secondarySize; sv++ {
					flat[vv*secondarySize+sv] = weighted[vv]
				}
			}
			penalizedTerms = append(penalizedTerms, s.MakeElement(flat, combined))
		} else {
			index = v
			penalizedTerms = append(penalizedTerms, s.MakeElement(weighted, index))
		}
	}
	penalized := s.MakeSum(penalizedTerms, nil)

	penalizedScale := int(g.PenaltyFactor)
	if penalizedScale < 1 {
		penalizedScale = 1
	}

	if g.Maximize {
		aspiration := g.best + g.Step
		descentArm := g.current + g.Step - penalizedScale*penalized.Min()
		bound := descentArm
		if aspiration < bound {
			bound = aspiration
		}
		g.Objective.SetMin(bound)
	} else {
		aspiration := g.best - g.Step
		descentArm := g.current - g.Step + penalizedScale*penalized.Min()
		bound := descentArm
		if aspiration > bound {
			bound = aspiration
		}
		g.Objective.SetMax(bound)
	}
}

func (g *GuidedLocalSearch) AtSolution(s *Solver) bool {
	v := g.Objective.Value()
	g.current = v
	if !g.haveBest || (g.Maximize && v > g.best) || (!g.Maximize && v < g.best) {
		g.best = v
	}
	g.haveBest = true
	return false
}

// LocalOptimum computes per-index utility utility(i) = cost_i /
// (1 + penalty(i, vars_i.Value())), where cost_i is Cost(i, value) unless
// value == i (self-arc, cost 0), then increments the
// penalty of every index attaining the maximum utility. Ties are
// inclusive: if every index ties for the maximum, every one of them is
// incremented, even though that degenerates to a uniform shift that does
// not change relative utility ordering on the next round. This case is
// not special-cased away (spec §9).
func (g *GuidedLocalSearch) LocalOptimum(s *Solver) bool {
	if len(g.Vars) == 0 {
		return true
	}
	utilities := make([]float64, len(g.Vars))
	maxUtil := -1.0
	for i, v := range g.Vars {
		if !v.Bound() {
			continue
		}
		value := v.Value()
		cost := 0
		if value != i && g.Cost != nil {
			cost = g.Cost(i, value)
		}
		u := float64(cost) / float64(1+g.penalty(i, value))
		utilities[i] = u
		if u > maxUtil {
			maxUtil = u
		}
	}
	for i, v := range g.Vars {
		if !v.Bound() {
			continue
		}
		if utilities[i] == maxUtil {
			g.incrementPenalty(i, v.Value())
		}
	}
	return true
}

// AcceptDelta incrementally recomputes the penalized cost: if deltadelta
// is non-empty and the previous delta was incremental, it is applied to
// the cached value; otherwise the cost is recomputed from delta
// (spec §4.6.3). delta/deltadelta are raw objective deltas since this
// driver has no generic "Delta" change-set type of its own.
func (g *GuidedLocalSearch) AcceptDelta(s *Solver, delta, deltadelta any) bool {
	dd, ddOK := deltadelta.(int)
	if g.haveLastDelta && ddOK && dd != 0 {
		g.lastDelta += dd
	} else if d, ok := delta.(int); ok {
		g.lastDelta = d
	}
	g.haveLastDelta = true
	return true
}
