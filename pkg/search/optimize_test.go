package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimizeVarRejectsNonPositiveStep(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	obj := s.MakeIntVar(0, 10, "obj")
	_, err := NewOptimizeVar(true, obj, 0)
	require.Error(t, err)
}

// best_ is monotone across AtSolution events: increasing for maximize,
// decreasing for minimize (spec §8 invariant 3).
func TestOptimizeVarMonotoneMaximize(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	obj := s.MakeIntVar(0, 100, "obj")
	opt, err := NewOptimizeVar(true, obj, 1)
	require.NoError(t, err)
	opt.EnterSearch(s)

	for _, v := range []int{5, 10, 20} {
		obj.replaceDomain(newBitsetDomain(0, 100)) // reopen the var for the next synthetic solution
		obj.SetValue(v)
		opt.AtSolution(s)
		best, ok := opt.Best()
		require.True(t, ok)
		require.Equal(t, v, best)
	}
}

func TestOptimizeVarPanicsOnNonImprovement(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	obj := s.MakeIntVar(0, 100, "obj")
	opt, err := NewOptimizeVar(true, obj, 1)
	require.NoError(t, err)
	opt.EnterSearch(s)

	obj.SetValue(10)
	opt.AtSolution(s)

	nd := newBitsetDomain(0, 100)
	obj.replaceDomain(nd)
	obj.SetValue(5) // worse than best=10 while maximizing

	require.Panics(t, func() { opt.AtSolution(s) })
}

func TestOptimizeVarApplyBound(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	obj := s.MakeIntVar(0, 100, "obj")
	opt, err := NewOptimizeVar(true, obj, 2)
	require.NoError(t, err)
	opt.EnterSearch(s)
	obj.SetValue(10)
	opt.AtSolution(s)

	nd := newBitsetDomain(0, 100)
	obj.replaceDomain(nd)
	opt.RefuteDecision(s, nil)
	require.Equal(t, 12, obj.Min())
}
