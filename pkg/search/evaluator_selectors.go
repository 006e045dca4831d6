package search

import "sort"

// Evaluator is the combined variable+value cost function the global
// evaluator selectors minimize (spec §4.2.2).
type Evaluator func(varIndex, value int) int64

type evalPair struct {
	i, j int // variable index, value
	cost int64
}

// staticEvaluatorSelector implements §4.2.2's Static selector: on first
// call, enumerates all (i, j) with vars_[i] unbound, sorts lexicographically
// by (eval(i,j), i), then advances a reversible cursor skipping entries
// whose variable is bound or whose value no longer lies in the domain.
//
// Open question (spec §9, do not silently fix): element_size_ sums domain
// sizes over only the initially-unbound variables; later filtering is by
// Contains(value). This is correct but wasteful, and is reproduced as-is.
type staticEvaluatorSelector struct {
	vars        []*IntVar
	eval        Evaluator
	pairs       []evalPair
	first       int
	initialized bool
	elementSize int
}

// NewStaticEvaluatorSelector returns the Static global evaluator selector.
func NewStaticEvaluatorSelector(vars []*IntVar, eval Evaluator) DecisionBuilder {
	return &staticEvaluatorSelector{vars: vars, eval: eval}
}

func (sel *staticEvaluatorSelector) init(s *Solver) {
	if sel.initialized {
		return
	}
	sel.initialized = true
	size := 0
	for i, v := range sel.vars {
		if v.Bound() {
			continue
		}
		for _, val := range v.MakeDomainIterator() {
			sel.pairs = append(sel.pairs, evalPair{i: i, j: val, cost: sel.eval(i, val)})
			size++
		}
	}
	sel.elementSize = size // reproduces the wasteful-but-correct sizing (spec §9)
	sort.SliceStable(sel.pairs, func(a, b int) bool {
		if sel.pairs[a].cost != sel.pairs[b].cost {
			return sel.pairs[a].cost < sel.pairs[b].cost
		}
		return sel.pairs[a].i < sel.pairs[b].i
	})
}

func (sel *staticEvaluatorSelector) Next(s *Solver) Decision {
	sel.init(s)
	i := sel.first
	for i < len(sel.pairs) {
		p := sel.pairs[i]
		v := sel.vars[p.i]
		if v.Bound() || !v.Contains(p.j) {
			i++
			continue
		}
		SaveAndSetValue(&s.trail, &sel.first, i)
		return AssignOneVariableValue(v, p.j)
	}
	SaveAndSetValue(&s.trail, &sel.first, i)
	return nil
}

func (sel *staticEvaluatorSelector) String() string { return "StaticEvaluatorSelector" }

// dynamicEvaluatorSelector implements §4.2.2's Dynamic selector: on every
// call, re-scans all unbound variables x their domains, records all (i,j)
// attaining the minimum eval, optionally applies a tie breaker.
type dynamicEvaluatorSelector struct {
	vars       []*IntVar
	eval       Evaluator
	tieBreaker func(tieCount int) int
}

// NewDynamicEvaluatorSelector returns the Dynamic global evaluator selector.
func NewDynamicEvaluatorSelector(vars []*IntVar, eval Evaluator, tieBreaker func(tieCount int) int) DecisionBuilder {
	return &dynamicEvaluatorSelector{vars: vars, eval: eval, tieBreaker: tieBreaker}
}

func (sel *dynamicEvaluatorSelector) Next(s *Solver) Decision {
	var best []evalPair
	var bestCost int64
	haveBest := false
	for i, v := range sel.vars {
		if v.Bound() {
			continue
		}
		for _, val := range v.MakeDomainIterator() {
			c := sel.eval(i, val)
			if !haveBest || c < bestCost {
				haveBest = true
				bestCost = c
				best = best[:0]
				best = append(best, evalPair{i: i, j: val, cost: c})
			} else if c == bestCost {
				best = append(best, evalPair{i: i, j: val, cost: c})
			}
		}
	}
	if !haveBest {
		return nil
	}
	pick := 0
	if len(best) > 1 && sel.tieBreaker != nil {
		if p := sel.tieBreaker(len(best)); p >= 0 && p < len(best) {
			pick = p
		}
	}
	chosen := best[pick]
	return AssignOneVariableValue(sel.vars[chosen.i], chosen.j)
}

func (sel *dynamicEvaluatorSelector) String() string { return "DynamicEvaluatorSelector" }
