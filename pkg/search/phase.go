package search

// phase pairs a variable selector with a value selector into a
// DecisionBuilder producing "assign v = k" decisions (spec §4.2).
type phase struct {
	vars    []*IntVar
	varSel  VariableSelector
	valSel  ValueSelector
	varIdx  func([]*IntVar, *IntVar) int // position lookup for value selectors needing an index
}

// NewPhase builds the standard Phase decision builder: Next asks the
// variable selector for an unbound variable (nil vars means done, an
// immediately-exhausted builder per spec §8's boundary behavior for an
// empty array), then asks the value selector for a value.
func NewPhase(vars []*IntVar, varSel VariableSelector, valSel ValueSelector) DecisionBuilder {
	return &phase{vars: vars, varSel: varSel, valSel: valSel}
}

func (p *phase) Next(s *Solver) Decision {
	if len(p.vars) == 0 {
		return nil
	}
	v := p.varSel.SelectVariable(s, p.vars)
	if v == nil {
		return nil
	}
	val := p.valSel.SelectValue(s, v)
	return AssignOneVariableValue(v, val)
}

func (p *phase) String() string { return "Phase" }

// MakePhase builds a Phase from the strategy enumerations of spec §6.2,
// covering the full VariableStrategy × ValueStrategy product named there
// (SUPPLEMENTED FEATURES), not only the subset spec.md's worked examples
// exercise.
func MakePhase(vars []*IntVar, varStrat VariableStrategy, valStrat ValueStrategy) (DecisionBuilder, error) {
	vs, err := variableSelectorFor(varStrat)
	if err != nil {
		return nil, err
	}
	vl, err := valueSelectorFor(valStrat)
	if err != nil {
		return nil, err
	}
	return NewPhase(vars, vs, vl), nil
}

func variableSelectorFor(strat VariableStrategy) (VariableSelector, error) {
	switch strat {
	case VariableDefault, VariableSimple, ChooseFirstUnbound:
		return NewFirstUnboundSelector(), nil
	case ChooseRandom:
		return NewRandomSelector(), nil
	case ChooseMinSizeLowestMin:
		return NewMinSizeLowestMinSelector(), nil
	case ChooseMinSizeHighestMin:
		return NewMinSizeHighestMinSelector(), nil
	case ChooseMinSizeLowestMax:
		return NewMinSizeLowestMaxSelector(), nil
	case ChooseMinSizeHighestMax:
		return NewMinSizeHighestMaxSelector(), nil
	case ChoosePath:
		return NewPathSelector(), nil
	default:
		return nil, wrapMisuse(ErrUnknownStrategy, "variable strategy %d", strat)
	}
}

func valueSelectorFor(strat ValueStrategy) (ValueSelector, error) {
	switch strat {
	case ValueDefault, ValueSimple, AssignMinValue:
		return NewMinValueSelector(), nil
	case AssignMaxValue:
		return NewMaxValueSelector(), nil
	case AssignRandomValue:
		return NewRandomValueSelector(), nil
	case AssignCenterValue:
		return NewCenterValueSelector(), nil
	default:
		return nil, wrapMisuse(ErrUnknownStrategy, "value strategy %d", strat)
	}
}
