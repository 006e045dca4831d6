package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// GLS: after LocalOptimum, the penalty of every arc that attained the
// utility maximum increased by exactly 1, including when every tracked
// index ties for the maximum (spec §8 invariant 9, spec §9 open question
// preserved deliberately).
func TestGuidedLocalSearchTieInclusivePenaltyIncrement(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v0 := s.MakeIntVar(0, 3, "v0")
	v1 := s.MakeIntVar(0, 3, "v1")
	v0.SetValue(1)
	v1.SetValue(2)

	cost := func(i, value int) int { return 10 } // identical cost: every index ties
	g := NewGuidedLocalSearch([]*IntVar{v0, v1}, nil, v0, false, 1, 1.0, cost, 4, false)
	g.EnterSearch(s)

	before0 := g.penalty(0, 1)
	before1 := g.penalty(1, 2)

	g.LocalOptimum(s)

	require.Equal(t, before0+1, g.penalty(0, 1))
	require.Equal(t, before1+1, g.penalty(1, 2))
}

func TestGuidedLocalSearchOnlyMaxUtilityIncremented(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v0 := s.MakeIntVar(0, 3, "v0")
	v1 := s.MakeIntVar(0, 3, "v1")
	v0.SetValue(1)
	v1.SetValue(2)

	cost := func(i, value int) int {
		if i == 0 {
			return 100
		}
		return 1
	}
	g := NewGuidedLocalSearch([]*IntVar{v0, v1}, nil, v0, false, 1, 1.0, cost, 4, false)
	g.EnterSearch(s)

	g.LocalOptimum(s)

	require.Equal(t, 1, g.penalty(0, 1)) // highest utility: incremented
	require.Equal(t, 0, g.penalty(1, 2)) // lower utility: untouched
}

func TestGuidedLocalSearchSparseTableEquivalence(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v0 := s.MakeIntVar(0, 3, "v0")
	v0.SetValue(2)
	cost := func(i, value int) int { return 7 }

	g := NewGuidedLocalSearch([]*IntVar{v0}, nil, v0, false, 1, 1.0, cost, 4, true)
	g.EnterSearch(s)
	g.LocalOptimum(s)
	require.Equal(t, 1, g.penalty(0, 2))
}
