package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// FirstSolutionCollector: after search, solution_count() in {0,1}
// (spec §8 invariant 4).
func TestFirstSolutionCollectorCapturesOnce(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 3, "x")
	c := NewFirstSolutionCollector(NewAssignment(x), nil)

	x.SetValue(1)
	require.False(t, c.CaptureAtSolution(s))
	require.Equal(t, 1, c.SolutionCount())

	x.replaceDomain(newBitsetDomain(0, 3))
	x.SetValue(2)
	c.CaptureAtSolution(s)
	require.Equal(t, 1, c.SolutionCount())
	require.Equal(t, 1, c.Solution(0).Value(x))
}

// AllSolutionCollector: solution_count() equals the number of
// AtSolution events (spec §8 invariant 6).
func TestAllSolutionCollectorCapturesEvery(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 3, "x")
	c := NewAllSolutionCollector(NewAssignment(x), nil)

	for _, v := range []int{0, 1, 2} {
		x.replaceDomain(newBitsetDomain(0, 3))
		x.SetValue(v)
		require.True(t, c.CaptureAtSolution(s))
	}
	require.Equal(t, 3, c.SolutionCount())
}

// BestValueSolutionCollector: the single stored solution has the best
// objective among all AtSolution-reached solutions under the configured
// direction (spec §8 invariant 5).
func TestBestValueSolutionCollectorMaximize(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 100, "x")
	c := NewBestValueSolutionCollector(NewAssignment(x), x, true)

	for _, v := range []int{5, 20, 8} {
		x.replaceDomain(newBitsetDomain(0, 100))
		x.SetValue(v)
		c.CaptureAtSolution(s)
	}
	require.Equal(t, 1, c.SolutionCount())
	require.Equal(t, 20, c.ObjectiveValue(0))
}
