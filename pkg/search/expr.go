package search

// expr.go implements the small expression-factory surface the driver
// consumes from the propagation engine per spec §6.1: MakeSum, MakeMin,
// MakeMax, MakeDifference, MakeElement, and the MakeIs{Equal,Different,
// Greater,Less}Cst boolean-reifying family, plus AddConstraint. The
// propagation engine proper is out of scope (spec §1); this file is the
// minimal bounds-consistency engine needed to exercise OptimizeVar, the
// metaheuristics, and AssignVariablesValues.Refute. Grounded on
// pkg/minikanren/sum.go's bounds-consistency algorithm (sign-aware
// ceil/floor division) and fd_ineq.go's trail-then-mutate propagation
// shape.

// Constraint is the propagation engine's unit of work: narrow domains
// until no further inference is possible, or call Fail via an IntVar
// mutation if an inconsistency is found.
type Constraint interface {
	Propagate(s *Solver)
}

// AddConstraint registers c and propagates it (and everything already
// registered) to a fixed point (spec §6.1). The registration itself is
// trailed: a constraint posted mid-search (AssignVariablesValues.Refute,
// the metaheuristics' ApplyDecision hooks) must stop propagating once the
// driver backtracks past the point it was posted, or a tuple excluded in
// one branch stays excluded in sibling branches that never saw it.
func (s *Solver) AddConstraint(c Constraint) {
	n := len(s.constraints)
	s.constraints = append(s.constraints, c)
	s.constraintCount++
	s.trail.RevAlloc(func() { s.constraints = s.constraints[:n] })
	s.propagate()
}

// propagate runs every registered constraint repeatedly until a full pass
// makes no further trail entries, or a safety cap is hit. Fixed-point
// detection via trail growth avoids coupling to each constraint's
// internal change bookkeeping.
func (s *Solver) propagate() {
	for pass := 0; pass < 10000; pass++ {
		mark := s.trail.Mark()
		for _, c := range s.constraints {
			c.Propagate(s)
		}
		if s.trail.Mark() == mark {
			return
		}
	}
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// linearSum enforces sum_i coeff[i]*vars[i] == total via bounds
// consistency, grounded on sum.go.
type linearSum struct {
	vars   []*IntVar
	coeffs []int
	total  *IntVar
}

func (c *linearSum) Propagate(s *Solver) {
	n := len(c.vars)
	sumMin, sumMax := 0, 0
	for i := 0; i < n; i++ {
		a := c.coeffs[i]
		if a == 0 {
			continue
		}
		mn, mx := c.vars[i].Min(), c.vars[i].Max()
		if a > 0 {
			sumMin += a * mn
			sumMax += a * mx
		} else {
			sumMin += a * mx
			sumMax += a * mn
		}
	}
	if c.total.Min() < sumMin {
		c.total.SetMin(sumMin)
	}
	if c.total.Max() > sumMax {
		c.total.SetMax(sumMax)
	}

	tMin, tMax := c.total.Min(), c.total.Max()
	for i := 0; i < n; i++ {
		a := c.coeffs[i]
		if a == 0 {
			continue
		}
		otherMin, otherMax := 0, 0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			b := c.coeffs[j]
			if b == 0 {
				continue
			}
			mn, mx := c.vars[j].Min(), c.vars[j].Max()
			if b > 0 {
				otherMin += b * mn
				otherMax += b * mx
			} else {
				otherMin += b * mx
				otherMax += b * mn
			}
		}
		contribMin := tMin - otherMax
		contribMax := tMax - otherMin
		if a > 0 {
			c.vars[i].SetMin(ceilDiv(contribMin, a))
			c.vars[i].SetMax(floorDiv(contribMax, a))
		} else {
			// a<0: dividing reverses the bound direction.
			c.vars[i].SetMin(ceilDiv(contribMax, a))
			c.vars[i].SetMax(floorDiv(contribMin, a))
		}
	}
}

// MakeSum returns a derived IntVar constrained to equal sum(coeffs[i]*vars[i]).
// A nil coeffs defaults every coefficient to 1.
func (s *Solver) MakeSum(vars []*IntVar, coeffs []int) *IntVar {
	if coeffs == nil {
		coeffs = make([]int, len(vars))
		for i := range coeffs {
			coeffs[i] = 1
		}
	}
	lo, hi := 0, 0
	for i, v := range vars {
		a := coeffs[i]
		if a > 0 {
			lo += a * v.Min()
			hi += a * v.Max()
		} else {
			lo += a * v.Max()
			hi += a * v.Min()
		}
	}
	total := s.MakeIntVar(lo, hi, "sum")
	s.AddConstraint(&linearSum{vars: vars, coeffs: coeffs, total: total})
	return total
}

// MakeDifference returns x - y as a derived IntVar.
func (s *Solver) MakeDifference(x, y *IntVar) *IntVar {
	return s.MakeSum([]*IntVar{x, y}, []int{1, -1})
}

// allDifferentConstraint enforces pairwise distinctness: whenever one of a
// pair is bound, its value is removed from the other's domain; two bound
// vars with equal values fail. A pairwise scheme rather than a full
// Hall-interval algorithm, matching the minimal bounds-consistency scope
// the rest of this file targets (spec §1 keeps the propagation engine
// itself out of scope; this is only enough to exercise the driver).
type allDifferentConstraint struct {
	vars []*IntVar
}

func (c *allDifferentConstraint) Propagate(s *Solver) {
	for i := 0; i < len(c.vars); i++ {
		for j := i + 1; j < len(c.vars); j++ {
			a, b := c.vars[i], c.vars[j]
			if a.Bound() && b.Bound() {
				if a.Value() == b.Value() {
					s.FailWithReason(ErrInconsistent)
				}
				continue
			}
			if a.Bound() {
				b.RemoveValue(a.Value())
			}
			if b.Bound() {
				a.RemoveValue(b.Value())
			}
		}
	}
}

// MakeAllDifferent posts a pairwise all-different constraint over vars.
func (s *Solver) MakeAllDifferent(vars []*IntVar) {
	s.AddConstraint(&allDifferentConstraint{vars: vars})
}

type minConstraint struct {
	vars   []*IntVar
	result *IntVar
}

func (c *minConstraint) Propagate(s *Solver) {
	lo, hi := c.vars[0].Min(), c.vars[0].Max()
	for _, v := range c.vars[1:] {
		if v.Min() < lo {
			lo = v.Min()
		}
		if v.Max() < hi {
			hi = v.Max()
		}
	}
	c.result.SetMin(lo)
	c.result.SetMax(hi)
	rMin := c.result.Min()
	for _, v := range c.vars {
		v.SetMin(rMin)
	}
}

// MakeMin returns a derived IntVar equal to the minimum of vars.
func (s *Solver) MakeMin(vars []*IntVar) *IntVar {
	lo, hi := vars[0].Min(), vars[0].Max()
	for _, v := range vars[1:] {
		if v.Min() < lo {
			lo = v.Min()
		}
		if v.Max() < hi {
			hi = v.Max()
		}
	}
	result := s.MakeIntVar(lo, hi, "min")
	s.AddConstraint(&minConstraint{vars: vars, result: result})
	return result
}

type maxConstraint struct {
	vars   []*IntVar
	result *IntVar
}

func (c *maxConstraint) Propagate(s *Solver) {
	lo, hi := c.vars[0].Min(), c.vars[0].Max()
	for _, v := range c.vars[1:] {
		if v.Min() > lo {
			lo = v.Min()
		}
		if v.Max() > hi {
			hi = v.Max()
		}
	}
	c.result.SetMin(lo)
	c.result.SetMax(hi)
	rMax := c.result.Max()
	for _, v := range c.vars {
		v.SetMax(rMax)
	}
}

// MakeMax returns a derived IntVar equal to the maximum of vars.
func (s *Solver) MakeMax(vars []*IntVar) *IntVar {
	lo, hi := vars[0].Min(), vars[0].Max()
	for _, v := range vars[1:] {
		if v.Min() > lo {
			lo = v.Min()
		}
		if v.Max() > hi {
			hi = v.Max()
		}
	}
	result := s.MakeIntVar(lo, hi, "max")
	s.AddConstraint(&maxConstraint{vars: vars, result: result})
	return result
}

// elementConstraint enforces result == array[index] for a constant array
// and an IntVar index, the binary form used by GLS penalty lookups.
type elementConstraint struct {
	array  []int
	index  *IntVar
	result *IntVar
}

func (c *elementConstraint) Propagate(s *Solver) {
	for _, i := range c.index.MakeDomainIterator() {
		if i < 0 || i >= len(c.array) {
			c.index.RemoveValue(i)
			continue
		}
		if !c.result.Contains(c.array[i]) {
			c.index.RemoveValue(i)
		}
	}
	if c.index.Bound() {
		c.result.SetValue(c.array[c.index.Value()])
	}
}

// MakeElement returns a derived IntVar equal to array[index.Value()].
func (s *Solver) MakeElement(array []int, index *IntVar) *IntVar {
	lo, hi := array[0], array[0]
	for _, idx := range index.MakeDomainIterator() {
		if idx < 0 || idx >= len(array) {
			continue
		}
		v := array[idx]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	result := s.MakeIntVar(lo, hi, "element")
	s.AddConstraint(&elementConstraint{array: array, index: index, result: result})
	return result
}

// reifyEqualCst links a boolean IntVar b to v == k.
type reifyEqualCst struct {
	v *IntVar
	k int
	b *IntVar
}

func (c *reifyEqualCst) Propagate(s *Solver) {
	if c.v.Bound() {
		if c.v.Value() == c.k {
			c.b.SetValue(1)
		} else {
			c.b.SetValue(0)
		}
		return
	}
	if !c.v.Contains(c.k) {
		c.b.SetValue(0)
		return
	}
	if c.b.Bound() {
		if c.b.Value() == 1 {
			c.v.SetValue(c.k)
		} else {
			c.v.RemoveValue(c.k)
		}
	}
}

// MakeIsEqualCstVar returns a boolean IntVar b with b == 1 iff v == k.
func (s *Solver) MakeIsEqualCstVar(v *IntVar, k int) *IntVar {
	b := s.MakeBoolVar("isEq")
	s.AddConstraint(&reifyEqualCst{v: v, k: k, b: b})
	return b
}

// reifyDifferentCst links a boolean IntVar b to v != k.
type reifyDifferentCst struct {
	v *IntVar
	k int
	b *IntVar
}

func (c *reifyDifferentCst) Propagate(s *Solver) {
	if c.v.Bound() {
		if c.v.Value() != c.k {
			c.b.SetValue(1)
		} else {
			c.b.SetValue(0)
		}
		return
	}
	if !c.v.Contains(c.k) {
		c.b.SetValue(1)
		return
	}
	if c.b.Bound() {
		if c.b.Value() == 1 {
			c.v.RemoveValue(c.k)
		} else {
			c.v.SetValue(c.k)
		}
	}
}

// MakeIsDifferentCst returns a boolean IntVar b with b == 1 iff v != k.
func (s *Solver) MakeIsDifferentCst(v *IntVar, k int) *IntVar {
	b := s.MakeBoolVar("isNe")
	s.AddConstraint(&reifyDifferentCst{v: v, k: k, b: b})
	return b
}

// reifyGreaterCst links a boolean IntVar b to v > k.
type reifyGreaterCst struct {
	v *IntVar
	k int
	b *IntVar
}

func (c *reifyGreaterCst) Propagate(s *Solver) {
	if c.v.Min() > c.k {
		c.b.SetValue(1)
		return
	}
	if c.v.Max() <= c.k {
		c.b.SetValue(0)
		return
	}
	if c.b.Bound() {
		if c.b.Value() == 1 {
			c.v.SetMin(c.k + 1)
		} else {
			c.v.SetMax(c.k)
		}
	}
}

// MakeIsGreaterCst returns a boolean IntVar b with b == 1 iff v > k.
func (s *Solver) MakeIsGreaterCst(v *IntVar, k int) *IntVar {
	b := s.MakeBoolVar("isGt")
	s.AddConstraint(&reifyGreaterCst{v: v, k: k, b: b})
	return b
}

// reifyLessCst links a boolean IntVar b to v < k.
type reifyLessCst struct {
	v *IntVar
	k int
	b *IntVar
}

func (c *reifyLessCst) Propagate(s *Solver) {
	if c.v.Max() < c.k {
		c.b.SetValue(1)
		return
	}
	if c.v.Min() >= c.k {
		c.b.SetValue(0)
		return
	}
	if c.b.Bound() {
		if c.b.Value() == 1 {
			c.v.SetMax(c.k - 1)
		} else {
			c.v.SetMin(c.k)
		}
	}
}

// MakeIsLessCst returns a boolean IntVar b with b == 1 iff v < k.
func (s *Solver) MakeIsLessCst(v *IntVar, k int) *IntVar {
	b := s.MakeBoolVar("isLt")
	s.AddConstraint(&reifyLessCst{v: v, k: k, b: b})
	return b
}
