package search

// ValueSelector picks the value to assign a chosen variable (spec §4.2).
type ValueSelector interface {
	SelectValue(s *Solver, v *IntVar) int
}

type minValueSelector struct{}

func NewMinValueSelector() ValueSelector { return minValueSelector{} }
func (minValueSelector) SelectValue(s *Solver, v *IntVar) int { return v.Min() }

type maxValueSelector struct{}

func NewMaxValueSelector() ValueSelector { return maxValueSelector{} }
func (maxValueSelector) SelectValue(s *Solver, v *IntVar) int { return v.Max() }

// randomValueSelector: reject-sample when domain density > 25% of the
// span, else count the k-th contained value from the smaller side
// (spec §4.2).
type randomValueSelector struct{}

func NewRandomValueSelector() ValueSelector { return randomValueSelector{} }

func (randomValueSelector) SelectValue(s *Solver, v *IntVar) int {
	lo, hi := v.Min(), v.Max()
	span := hi - lo + 1
	size := v.Size()
	if size*4 > span { // density > 25%
		for {
			cand := lo + int(s.Rand32(uint32(span)))
			if v.Contains(cand) {
				return cand
			}
		}
	}
	vals := v.MakeDomainIterator()
	k := int(s.Rand32(uint32(len(vals))))
	return vals[k]
}

// centerValueSelector: midpoint of [Min,Max] if present, otherwise
// nearest-to-midpoint bidirectional scan (spec §4.2).
type centerValueSelector struct{}

func NewCenterValueSelector() ValueSelector { return centerValueSelector{} }

func (centerValueSelector) SelectValue(s *Solver, v *IntVar) int {
	lo, hi := v.Min(), v.Max()
	mid := (lo + hi) / 2
	if v.Contains(mid) {
		return mid
	}
	for d := 1; d <= hi-lo; d++ {
		if v.Contains(mid - d) {
			return mid - d
		}
		if v.Contains(mid + d) {
			return mid + d
		}
	}
	return lo
}

// cheapestValueSelector implements CheapestValue(g, tie_breaker):
// minimize g over the domain; on ties, call tie_breaker with the tie
// count to pick among them (spec §4.2).
type cheapestValueSelector struct {
	index      int
	g          func(index, value int) int
	tieBreaker func(tieCount int) int
}

// NewCheapestValueSelector wraps g (and optionally tieBreaker, which may
// be nil to mean "first tie wins"). index is the variable's position in
// the array passed to the owning Phase, matching g(index, value).
func NewCheapestValueSelector(index int, g func(index, value int) int, tieBreaker func(tieCount int) int) ValueSelector {
	return &cheapestValueSelector{index: index, g: g, tieBreaker: tieBreaker}
}

func (sel *cheapestValueSelector) SelectValue(s *Solver, v *IntVar) int {
	vals := v.MakeDomainIterator()
	best := vals[0]
	bestCost := sel.g(sel.index, best)
	ties := []int{best}
	for _, val := range vals[1:] {
		c := sel.g(sel.index, val)
		if c < bestCost {
			best, bestCost = val, c
			ties = ties[:0]
			ties = append(ties, val)
		} else if c == bestCost {
			ties = append(ties, val)
		}
	}
	if len(ties) > 1 && sel.tieBreaker != nil {
		pick := sel.tieBreaker(len(ties))
		if pick >= 0 && pick < len(ties) {
			return ties[pick]
		}
	}
	return ties[0]
}
