package search

import "fmt"

// IntVar is a finite-integer decision variable (spec §3). Capabilities
// consumed by the driver are Min/Max/Size/Bound/Value/Contains/SetValue/
// SetMin/SetMax/RemoveValue/MakeDomainIterator. Grounded on
// pkg/minikanren/variable.go's Variable/FDVariable split: ID+name identity
// separated from the mutable domain, here backed by the Solver's trail
// instead of a copy-on-write SolverState chain.
type IntVar struct {
	id     int
	name   string
	solver *Solver
	dom    *bitsetDomain
}

func (v *IntVar) ID() int     { return v.id }
func (v *IntVar) Name() string { return v.name }

func (v *IntVar) Min() int  { return v.dom.Min() }
func (v *IntVar) Max() int  { return v.dom.Max() }
func (v *IntVar) Size() int { return v.dom.Size() }

func (v *IntVar) Bound() bool { return v.dom.Singleton() }

// Value returns the bound value. Panics if the variable is not bound,
// matching the teacher's FDVariable.Value() contract.
func (v *IntVar) Value() int {
	if !v.Bound() {
		panic(fmt.Sprintf("search: IntVar %s is not bound (size=%d)", v.name, v.dom.Size()))
	}
	return v.dom.Min()
}

func (v *IntVar) Contains(k int) bool { return v.dom.Contains(k) }

// Domain exposes v's current domain through the read-only Domain
// interface, for callers (logging, symmetry breakers, CLI inspection)
// that only need the query surface and shouldn't see the mutation
// methods bitsetDomain carries internally.
func (v *IntVar) Domain() Domain { return v.dom }

// MakeDomainIterator returns the current domain values, ascending, a
// finite one-shot snapshot (spec §3).
func (v *IntVar) MakeDomainIterator() []int { return v.dom.Values() }

func (v *IntVar) String() string {
	if v.Bound() {
		return fmt.Sprintf("%s=%d", v.name, v.Value())
	}
	return fmt.Sprintf("%s∈[%d..%d]", v.name, v.Min(), v.Max())
}

// replaceDomain trails the old domain pointer and installs nd, failing if
// the new domain is empty. This is the single mutation point every
// SetValue/SetMin/SetMax/RemoveValue funnels through, so trailing stays
// centralized.
func (v *IntVar) replaceDomain(nd *bitsetDomain) {
	SaveAndSetValue(&v.solver.trail, &v.dom, nd)
	if nd.Size() == 0 {
		v.solver.FailWithReason(ErrDomainEmpty)
	}
}

func (v *IntVar) SetValue(k int) {
	if !v.dom.Contains(k) {
		v.solver.FailWithReason(ErrDomainEmpty)
		return
	}
	nd := newBitsetDomain(k, k)
	v.replaceDomain(nd)
}

func (v *IntVar) SetMin(k int) {
	if v.Min() >= k {
		return
	}
	nd := v.dom.clone()
	nd.removeBelow(k)
	v.replaceDomain(nd)
}

func (v *IntVar) SetMax(k int) {
	if v.Max() <= k {
		return
	}
	nd := v.dom.clone()
	nd.removeAbove(k)
	v.replaceDomain(nd)
}

func (v *IntVar) RemoveValue(k int) {
	if !v.dom.Contains(k) {
		return
	}
	nd := v.dom.clone()
	nd.set(k, false)
	v.replaceDomain(nd)
}
