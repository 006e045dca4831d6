package search

// VariableSelector turns an array of variables into the next unbound one
// to branch on, or nil if all are bound (spec §4.2). Grounded on
// search.cc's BaseVariableAssignmentSelector family.
type VariableSelector interface {
	SelectVariable(s *Solver, vars []*IntVar) *IntVar
}

// firstUnboundSelector implements FirstUnbound: smallest index, with a
// reversible cursor that never revisits indices known bound on the
// current path (spec §4.2, invariant 2 in spec §8).
type firstUnboundSelector struct {
	first int
}

// NewFirstUnboundSelector returns the FirstUnbound variable selector.
func NewFirstUnboundSelector() VariableSelector { return &firstUnboundSelector{} }

func (sel *firstUnboundSelector) SelectVariable(s *Solver, vars []*IntVar) *IntVar {
	i := sel.first
	for i < len(vars) && vars[i].Bound() {
		i++
	}
	if i >= len(vars) {
		SaveAndSetValue(&s.trail, &sel.first, i)
		return nil
	}
	SaveAndSetValue(&s.trail, &sel.first, i)
	return vars[i]
}

// randomSelector implements Random: uniform random shift, first unbound
// encountered cyclically (spec §4.2).
type randomSelector struct{}

func NewRandomSelector() VariableSelector { return &randomSelector{} }

func (sel *randomSelector) SelectVariable(s *Solver, vars []*IntVar) *IntVar {
	n := len(vars)
	if n == 0 {
		return nil
	}
	start := int(s.Rand32(uint32(n)))
	for k := 0; k < n; k++ {
		i := (start + k) % n
		if !vars[i].Bound() {
			return vars[i]
		}
	}
	return nil
}

// minSizeTiebreak selects which bound to optimize on ties of Size().
type minSizeTiebreak int

const (
	tieLowestMin minSizeTiebreak = iota
	tieHighestMin
	tieLowestMax
	tieHighestMax
)

type minSizeSelector struct {
	tie minSizeTiebreak
}

func newMinSizeSelector(t minSizeTiebreak) VariableSelector { return &minSizeSelector{tie: t} }

// NewMinSizeLowestMinSelector: minimize Size(), tiebreak minimize Min().
func NewMinSizeLowestMinSelector() VariableSelector { return newMinSizeSelector(tieLowestMin) }

// NewMinSizeHighestMinSelector: minimize Size(), tiebreak maximize Min().
func NewMinSizeHighestMinSelector() VariableSelector { return newMinSizeSelector(tieHighestMin) }

// NewMinSizeLowestMaxSelector: minimize Size(), tiebreak minimize Max().
func NewMinSizeLowestMaxSelector() VariableSelector { return newMinSizeSelector(tieLowestMax) }

// NewMinSizeHighestMaxSelector: minimize Size(), tiebreak maximize Max().
func NewMinSizeHighestMaxSelector() VariableSelector { return newMinSizeSelector(tieHighestMax) }

func (sel *minSizeSelector) SelectVariable(s *Solver, vars []*IntVar) *IntVar {
	var best *IntVar
	for _, v := range vars {
		if v.Bound() {
			continue
		}
		if best == nil {
			best = v
			continue
		}
		if v.Size() < best.Size() {
			best = v
			continue
		}
		if v.Size() > best.Size() {
			continue
		}
		switch sel.tie {
		case tieLowestMin:
			if v.Min() < best.Min() {
				best = v
			}
		case tieHighestMin:
			if v.Min() > best.Min() {
				best = v
			}
		case tieLowestMax:
			if v.Max() < best.Max() {
				best = v
			}
		case tieHighestMax:
			if v.Max() > best.Max() {
				best = v
			}
		}
	}
	return best
}

// cheapestVarSelector implements CheapestVar: minimize a user callback
// f(index) over unbound variables (spec §4.2).
type cheapestVarSelector struct {
	f func(index int) int
}

// NewCheapestVarSelector wraps the repeatable callback f.
func NewCheapestVarSelector(f func(index int) int) VariableSelector {
	return &cheapestVarSelector{f: f}
}

func (sel *cheapestVarSelector) SelectVariable(s *Solver, vars []*IntVar) *IntVar {
	var best *IntVar
	bestCost := 0
	for i, v := range vars {
		if v.Bound() {
			continue
		}
		c := sel.f(i)
		if best == nil || c < bestCost {
			best, bestCost = v, c
		}
	}
	return best
}

// pathSelector implements §4.2.1: variables are interpreted as
// "successor-of-i". Maintains a reversible first_ cursor; follows bound
// successors until an unbound variable is reached, or reports a cycle by
// returning nil once the followed chain exceeds the array length.
type pathSelector struct {
	first int
}

func NewPathSelector() VariableSelector { return &pathSelector{} }

func (sel *pathSelector) SelectVariable(s *Solver, vars []*IntVar) *IntVar {
	n := len(vars)
	if n == 0 {
		return nil
	}
	if sel.first >= n || vars[sel.first].Bound() {
		start := sel.findPathStart(vars)
		if start < 0 {
			return nil
		}
		SaveAndSetValue(&s.trail, &sel.first, start)
	}
	i := sel.first
	for steps := 0; steps <= n; steps++ {
		v := vars[i]
		if !v.Bound() {
			return v
		}
		next := v.Value()
		if next < 0 || next >= n {
			// Out of range: reset to path start.
			start := sel.findPathStart(vars)
			if start < 0 {
				return nil
			}
			i = start
			continue
		}
		i = next
	}
	// Followed chain exceeded array size without reaching an unbound
	// variable: a cycle. Report by yielding nil (spec §4.2.1).
	return nil
}

// findPathStart seeks an unbound index with no predecessor
// (no vars_[j].Contains(i)); otherwise the first unbound index.
func (sel *pathSelector) findPathStart(vars []*IntVar) int {
	n := len(vars)
	hasPredecessor := make([]bool, n)
	for _, v := range vars {
		for _, val := range v.MakeDomainIterator() {
			if val >= 0 && val < n {
				hasPredecessor[val] = true
			}
		}
	}
	firstUnbound := -1
	for i, v := range vars {
		if v.Bound() {
			continue
		}
		if firstUnbound < 0 {
			firstUnbound = i
		}
		if !hasPredecessor[i] {
			return i
		}
	}
	return firstUnbound
}
