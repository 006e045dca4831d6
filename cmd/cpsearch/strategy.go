package main

import (
	"fmt"

	"github.com/gitrdm/cpsearch/pkg/search"
)

var variableStrategies = map[string]search.VariableStrategy{
	"first-unbound":       search.ChooseFirstUnbound,
	"random":              search.ChooseRandom,
	"min-size-lowest-min": search.ChooseMinSizeLowestMin,
	"min-size-highest-min": search.ChooseMinSizeHighestMin,
	"min-size-lowest-max": search.ChooseMinSizeLowestMax,
	"min-size-highest-max": search.ChooseMinSizeHighestMax,
	"path":                search.ChoosePath,
}

var valueStrategies = map[string]search.ValueStrategy{
	"min":    search.AssignMinValue,
	"max":    search.AssignMaxValue,
	"random": search.AssignRandomValue,
	"center": search.AssignCenterValue,
}

func parseVariableStrategy(name string) (search.VariableStrategy, error) {
	v, ok := variableStrategies[name]
	if !ok {
		return 0, fmt.Errorf("unknown variable strategy %q", name)
	}
	return v, nil
}

func parseValueStrategy(name string) (search.ValueStrategy, error) {
	v, ok := valueStrategies[name]
	if !ok {
		return 0, fmt.Errorf("unknown value strategy %q", name)
	}
	return v, nil
}
