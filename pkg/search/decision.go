package search

import "strconv"

// Decision carries a branching action with two sides: Apply (left branch)
// and Refute (right branch), plus a structural Accept hook for symmetry
// breaker visitors (spec §3). Invariant: a decision is visited at most
// twice per path (once applied, once refuted), enforced by the driver
// loop in solver.go, not by Decision implementations themselves.
type Decision interface {
	Apply(s *Solver)
	Refute(s *Solver)
	Accept(v DecisionVisitor)
	String() string
}

// DecisionVisitor is the structural visitor hook symmetry breakers use
// (spec §4.11) to recognize "assign variable to value" branches and push
// guard terms onto their clauses. Decision kinds that are not variable
// assignments call VisitUnknown so breakers can ignore them.
type DecisionVisitor interface {
	VisitSetVariableValue(v *IntVar, value int)
	VisitUnknown(d Decision)
}

// assignOneVariableValue implements spec §4.3's AssignOneVariableValue:
// Apply sets the value, Refute removes it from the domain (the standard
// binary-branching decision a Phase produces).
type assignOneVariableValue struct {
	v     *IntVar
	value int
}

// AssignOneVariableValue constructs the decision "v := value / v != value".
func AssignOneVariableValue(v *IntVar, value int) Decision {
	return &assignOneVariableValue{v: v, value: value}
}

func (d *assignOneVariableValue) Apply(s *Solver)  { d.v.SetValue(d.value) }
func (d *assignOneVariableValue) Refute(s *Solver) { d.v.RemoveValue(d.value) }
func (d *assignOneVariableValue) Accept(v DecisionVisitor) {
	v.VisitSetVariableValue(d.v, d.value)
}
func (d *assignOneVariableValue) String() string {
	return "[" + d.v.Name() + " == " + strconv.Itoa(d.value) + "]"
}

// assignOneVariableValueOrFail implements spec §4.3's
// AssignOneVariableValueOrFail: the right branch is not "v != value", it
// is unconditional failure. Used when a decision builder has proven the
// left branch is the only viable one and wants backtrack-on-miss rather
// than domain narrowing.
type assignOneVariableValueOrFail struct {
	v     *IntVar
	value int
}

func AssignOneVariableValueOrFail(v *IntVar, value int) Decision {
	return &assignOneVariableValueOrFail{v: v, value: value}
}

func (d *assignOneVariableValueOrFail) Apply(s *Solver)  { d.v.SetValue(d.value) }
func (d *assignOneVariableValueOrFail) Refute(s *Solver) { s.Fail() }
func (d *assignOneVariableValueOrFail) Accept(v DecisionVisitor) {
	v.VisitSetVariableValue(d.v, d.value)
}
func (d *assignOneVariableValueOrFail) String() string {
	return "[" + d.v.Name() + " == " + strconv.Itoa(d.value) + " or fail]"
}

// VarValue pairs a variable with a value for AssignVariablesValues.
type VarValue struct {
	Var   *IntVar
	Value int
}

// assignVariablesValues implements spec §4.3's AssignVariablesValues:
// Apply sets every pair; Refute posts sum_i [v_i != k_i] >= 1, i.e. at
// least one assignment must differ (a disjunction-of-exclusions decision).
type assignVariablesValues struct {
	pairs []VarValue
}

func AssignVariablesValues(pairs []VarValue) Decision {
	cp := make([]VarValue, len(pairs))
	copy(cp, pairs)
	return &assignVariablesValues{pairs: cp}
}

func (d *assignVariablesValues) Apply(s *Solver) {
	for _, p := range d.pairs {
		p.Var.SetValue(p.Value)
	}
}

// Refute posts a literal disjunction by reifying each "var != value" into
// a boolean and requiring their sum >= 1 (spec §8's round-trip property:
// "exactly one term per variable").
func (d *assignVariablesValues) Refute(s *Solver) {
	bools := make([]*IntVar, 0, len(d.pairs))
	for _, p := range d.pairs {
		b := s.MakeIsDifferentCst(p.Var, p.Value)
		bools = append(bools, b)
	}
	sumVar := s.MakeSum(bools, nil)
	sumVar.SetMin(1)
}

func (d *assignVariablesValues) Accept(v DecisionVisitor) { v.VisitUnknown(d) }
func (d *assignVariablesValues) String() string           { return "AssignVariablesValues" }

// balancingDecision is the sentinel singleton metaheuristics compare
// against by identity to skip constraint-posting on driver-internal
// balancing nodes (spec §6.1, grounded on search.cc's BalancingDecision).
type balancingDecision struct{}

func (balancingDecision) Apply(s *Solver)          {}
func (balancingDecision) Refute(s *Solver)         {}
func (balancingDecision) Accept(v DecisionVisitor) { v.VisitUnknown(balancingDecisionInstance) }
func (balancingDecision) String() string           { return "BalancingDecision" }

var balancingDecisionInstance Decision = balancingDecision{}

// BalancingDecision returns the package-wide balancing sentinel.
func BalancingDecision() Decision { return balancingDecisionInstance }

