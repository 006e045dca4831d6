package search

// IntVarElement is one entry of an Assignment's IntVarContainer (spec §3).
type IntVarElement struct {
	Var       *IntVar
	Value     int
	Activated bool
}

// Assignment is a snapshot container binding a set of IntVars to specific
// values, plus activation bits (spec §3). The driver never owns variables
// through Assignment; ownership remains with the Solver.
type Assignment struct {
	vars []*IntVar
	vals map[int]IntVarElement // keyed by IntVar.ID()
}

// NewAssignment creates an empty Assignment tracking the given variables.
func NewAssignment(vars ...*IntVar) *Assignment {
	a := &Assignment{vars: append([]*IntVar(nil), vars...), vals: make(map[int]IntVarElement, len(vars))}
	for _, v := range vars {
		a.vals[v.ID()] = IntVarElement{Var: v, Activated: false}
	}
	return a
}

// Store captures the current value of every tracked, bound variable.
func (a *Assignment) Store() {
	for _, v := range a.vars {
		if v.Bound() {
			a.vals[v.ID()] = IntVarElement{Var: v, Value: v.Value(), Activated: true}
		} else {
			a.vals[v.ID()] = IntVarElement{Var: v, Activated: false}
		}
	}
}

// Value returns the stored value for v. Panics if v was not captured or
// not activated, mirroring the teacher's panic-on-contract-violation style
// for programmer errors rather than returning a silently wrong zero value.
func (a *Assignment) Value(v *IntVar) int {
	e, ok := a.vals[v.ID()]
	if !ok || !e.Activated {
		panic("search: Assignment.Value on unbound or untracked variable " + v.Name())
	}
	return e.Value
}

// Empty reports whether no variable has been captured yet.
func (a *Assignment) Empty() bool {
	for _, e := range a.vals {
		if e.Activated {
			return false
		}
	}
	return true
}

// IntVarContainer exposes an ordered sequence of IntVarElement, in the
// order the variables were registered.
func (a *Assignment) IntVarContainer() []IntVarElement {
	out := make([]IntVarElement, 0, len(a.vars))
	for _, v := range a.vars {
		out = append(out, a.vals[v.ID()])
	}
	return out
}

// Clone returns a deep copy, used by solution collectors to keep a
// captured solution's contents independent of further search mutation.
func (a *Assignment) Clone() *Assignment {
	cp := &Assignment{vars: append([]*IntVar(nil), a.vars...), vals: make(map[int]IntVarElement, len(a.vals))}
	for k, v := range a.vals {
		cp.vals[k] = v
	}
	return cp
}
