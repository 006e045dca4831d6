package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticEvaluatorSelectorOrdersByCost(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	a := s.MakeIntVar(0, 1, "a")
	b := s.MakeIntVar(0, 1, "b")
	cost := map[[2]int]int64{
		{0, 0}: 5, {0, 1}: 1,
		{1, 0}: 3, {1, 1}: 2,
	}
	sel := NewStaticEvaluatorSelector([]*IntVar{a, b}, func(i, v int) int64 {
		return cost[[2]int{i, v}]
	})

	d := sel.Next(s)
	require.NotNil(t, d)
	require.Equal(t, "[a == 1]", d.String())
}

// elementSize_ sums domain sizes over only the initially-unbound
// variables, reproducing the wasteful-but-correct computation rather
// than recomputing against the current (narrower) domain on later calls
// (spec §9 open question, preserved deliberately).
func TestStaticEvaluatorSelectorElementSizeWaste(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	a := s.MakeIntVar(0, 3, "a")
	b := s.MakeIntVar(0, 3, "b")
	sel := NewStaticEvaluatorSelector([]*IntVar{a, b}, func(i, v int) int64 { return int64(v) }).(*staticEvaluatorSelector)

	sel.init(s)
	require.Equal(t, 8, sel.elementSize) // 4 values x 2 variables, computed once

	a.SetValue(0) // narrows a's domain after init; elementSize_ is not recomputed
	sel.init(s)   // init is a no-op once initialized
	require.Equal(t, 8, sel.elementSize)
}

func TestDynamicEvaluatorSelectorTieBreaker(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	a := s.MakeIntVar(0, 1, "a")
	b := s.MakeIntVar(0, 1, "b")
	sel := NewDynamicEvaluatorSelector([]*IntVar{a, b}, func(i, v int) int64 { return 0 }, func(tieCount int) int {
		return tieCount - 1 // always pick the last tied entry
	})
	d := sel.Next(s)
	require.NotNil(t, d)
}
