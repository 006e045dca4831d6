package search

import "math"

// tabuEntry is one FIFO entry: (variable, value, stamp). Entries with
// stamp <= current_stamp - tenure (age >= tenure) are discarded.
type tabuEntry struct {
	v     *IntVar
	value int
	stamp int64
}

// TabuSearch is a SearchMonitor metaheuristic (spec §4.6.1). Keeps two
// stamped FIFO lists (keep: variable must retain value; forbid: variable
// must not take value), posts aspiration/tabu/descent constraints on
// ApplyDecision, and ages the lists on LocalOptimum/AcceptNeighbor.
type TabuSearch struct {
	BaseMonitor
	Vars         []*IntVar
	Objective    *IntVar
	Maximize     bool
	Step         int
	KeepTenure   int64
	ForbidTenure int64
	TabuFactor   float64

	keep   []tabuEntry
	forbid []tabuEntry
	stamp  int64

	best    int
	haveBest bool
	current int
	last    int
	haveLast bool

	prevValues map[int]int
}

// NewTabuSearch constructs a TabuSearch over the given tracked variables.
func NewTabuSearch(vars []*IntVar, objective *IntVar, maximize bool, step int, keepTenure, forbidTenure int64, tabuFactor float64) *TabuSearch {
	return &TabuSearch{
		Vars: vars, Objective: objective, Maximize: maximize, Step: step,
		KeepTenure: keepTenure, ForbidTenure: forbidTenure, TabuFactor: tabuFactor,
		prevValues: make(map[int]int, len(vars)),
	}
}

func (t *TabuSearch) EnterSearch(s *Solver) {
	t.stamp = 0
	t.keep = nil
	t.forbid = nil
	t.haveBest = false
	t.haveLast = false
	if t.Maximize {
		t.current = -1 << 62
	} else {
		t.current = 1 << 62
	}
}

// AtSolution diffs the new assignment against the previously stored one:
// for each changed (var, old, new) it pushes (var, new) into keep and
// (var, old) into forbid, stamped with stamp_. The first solution
// (stamp_ == 0) does not update the lists (spec §4.6.1).
func (t *TabuSearch) AtSolution(s *Solver) bool {
	v := t.Objective.Value()
	if !t.haveBest || (t.Maximize && v > t.best) || (!t.Maximize && v < t.best) {
		t.best = v
		t.haveBest = true
	}
	t.last = v
	t.haveLast = true
	t.current = v

	if t.stamp != 0 {
		for _, variable := range t.Vars {
			if !variable.Bound() {
				continue
			}
			newVal := variable.Value()
			oldVal, had := t.prevValues[variable.ID()]
			if had && oldVal != newVal {
				t.keep = append(t.keep, tabuEntry{v: variable, value: newVal, stamp: t.stamp})
				t.forbid = append(t.forbid, tabuEntry{v: variable, value: oldVal, stamp: t.stamp})
			}
		}
	}
	for _, variable := range t.Vars {
		if variable.Bound() {
			t.prevValues[variable.ID()] = variable.Value()
		}
	}
	return false
}

// ApplyDecision posts the aspiration literal, one boolean per tabu entry,
// the tabu-factor threshold OR aspiration, strict descent from current_,
// and forbids the last objective value (spec §4.6.1).
func (t *TabuSearch) ApplyDecision(s *Solver, d Decision) {
	if d == BalancingDecision() || !t.haveBest {
		return
	}

	var aspiration *IntVar
	if t.Maximize {
		aspiration = s.MakeIsGreaterCst(t.Objective, t.best+t.Step-1)
	} else {
		aspiration = s.MakeIsLessCst(t.Objective, t.best-t.Step+1)
	}

	literals := []*IntVar{aspiration}
	total := 1
	for _, e := range t.keep {
		if t.stamp-e.stamp >= t.KeepTenure {
			continue
		}
		literals = append(literals, s.MakeIsEqualCstVar(e.v, e.value))
		total++
	}
	for _, e := range t.forbid {
		if t.stamp-e.stamp >= t.ForbidTenure {
			continue
		}
		literals = append(literals, s.MakeIsDifferentCst(e.v, e.value))
		total++
	}
	threshold := int(math.Ceil(float64(total-1) * t.TabuFactor))
	// sum(tabu_literals) >= threshold OR aspiration: reify the threshold
	// test into a boolean and require it or the aspiration literal to hold.
	tabuSum := s.MakeSum(literals[1:], nil)
	reached := s.MakeIsGreaterCst(tabuSum, threshold-1)
	s.MakeSum([]*IntVar{reached, aspiration}, nil).SetMin(1)

	// Strict descent from current_.
	if t.Maximize {
		t.Objective.SetMin(t.current + t.Step)
	} else {
		t.Objective.SetMax(t.current - t.Step)
	}
	// Forbid the last objective value to avoid plateau cycles.
	if t.haveLast {
		t.Objective.RemoveValue(t.last)
	}
}

// LocalOptimum ages both lists (drops entries with stamp <= stamp_ -
// tenure) and resets current_ to the worst side. Always requests
// continuation (spec §4.6.1).
func (t *TabuSearch) LocalOptimum(s *Solver) bool {
	t.ageLists()
	if t.Maximize {
		t.current = -1 << 62
	} else {
		t.current = 1 << 62
	}
	return true
}

// AcceptNeighbor ages lists and increments stamp_ (spec §4.6.1).
func (t *TabuSearch) AcceptNeighbor(s *Solver) {
	t.ageLists()
	t.stamp++
}

func (t *TabuSearch) ageLists() {
	t.keep = filterTabu(t.keep, t.stamp, t.KeepTenure)
	t.forbid = filterTabu(t.forbid, t.stamp, t.ForbidTenure)
}

func filterTabu(entries []tabuEntry, stamp, tenure int64) []tabuEntry {
	out := entries[:0]
	for _, e := range entries {
		if stamp-e.stamp < tenure {
			out = append(out, e)
		}
	}
	return out
}
