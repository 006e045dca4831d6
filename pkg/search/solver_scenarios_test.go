package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Pigeonhole: three IntVars in [0,1], all-different — unsatisfiable
// (spec §8 scenario 1).
func TestScenarioPigeonholeUnsat(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	vars := []*IntVar{
		s.MakeIntVar(0, 1, "p0"),
		s.MakeIntVar(0, 1, "p1"),
		s.MakeIntVar(0, 1, "p2"),
	}
	s.MakeAllDifferent(vars)

	db, err := MakePhase(vars, ChooseFirstUnbound, AssignMinValue)
	require.NoError(t, err)
	collector := NewAllSolutionCollector(NewAssignment(vars...), nil)

	found := s.Solve(db, collector)
	require.False(t, found)
	require.Equal(t, 0, collector.SolutionCount())
	require.Greater(t, s.Failures(), int64(0))
}

// N-queens N=4: Phase(FIRST_UNBOUND, ASSIGN_MIN) + AllSolutionCollector
// finds exactly 2 solutions (spec §8 scenario 2).
func TestScenarioNQueensFour(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	n := 4
	queens := make([]*IntVar, n)
	for i := range queens {
		queens[i] = s.MakeIntVar(0, n-1, "q")
	}
	s.MakeAllDifferent(queens)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ci := s.MakeIntVar(i, i, "ci")
			cj := s.MakeIntVar(j, j, "cj")
			diagUp := s.MakeSum([]*IntVar{queens[i], ci}, nil)
			diagUpJ := s.MakeSum([]*IntVar{queens[j], cj}, nil)
			s.AddConstraint(&notEqualConstraint{a: diagUp, b: diagUpJ})
			diagDown := s.MakeDifference(queens[i], ci)
			diagDownJ := s.MakeDifference(queens[j], cj)
			s.AddConstraint(&notEqualConstraint{a: diagDown, b: diagDownJ})
		}
	}

	db, err := MakePhase(queens, ChooseFirstUnbound, AssignMinValue)
	require.NoError(t, err)
	collector := NewAllSolutionCollector(NewAssignment(queens...), nil)

	s.Solve(db, collector)
	require.Equal(t, 2, collector.SolutionCount())
}

// notEqualConstraint enforces a != b via mutual value removal once one
// side is bound, a minimal helper for the diagonal-distinctness checks
// the n-queens scenario needs beyond MakeAllDifferent's column coverage.
type notEqualConstraint struct {
	a, b *IntVar
}

func (c *notEqualConstraint) Propagate(s *Solver) {
	if c.a.Bound() && c.b.Bound() {
		if c.a.Value() == c.b.Value() {
			s.Fail()
		}
		return
	}
	if c.a.Bound() {
		c.b.RemoveValue(c.a.Value())
	}
	if c.b.Bound() {
		c.a.RemoveValue(c.b.Value())
	}
}

// Minimize x+y over x,y ∈ [0,5], x+y ≥ 3: OptimizeVar(min, step=1) +
// LastSolutionCollector converges on objective 3 (spec §8 scenario 3).
func TestScenarioMinimizeSum(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	y := s.MakeIntVar(0, 5, "y")
	sum := s.MakeSum([]*IntVar{x, y}, nil)
	sum.SetMin(3)

	opt, err := NewOptimizeVar(false, sum, 1)
	require.NoError(t, err)

	db, err := MakePhase([]*IntVar{x, y}, ChooseFirstUnbound, AssignMinValue)
	require.NoError(t, err)
	collector := NewLastSolutionCollector(NewAssignment(x, y), sum)

	s.Solve(db, opt, collector)
	require.Equal(t, 1, collector.SolutionCount())
	require.Equal(t, 3, collector.ObjectiveValue(0))
}

// Path selector cycle detection: four variables domains {0..3} forced
// into a full cycle 0->1->2->3->0 must report nil (spec §8 scenario 5).
func TestScenarioPathSelectorCycle(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	vars := []*IntVar{
		s.MakeIntVar(0, 3, "v0"),
		s.MakeIntVar(0, 3, "v1"),
		s.MakeIntVar(0, 3, "v2"),
		s.MakeIntVar(0, 3, "v3"),
	}
	vars[0].SetValue(1)
	vars[1].SetValue(2)
	vars[2].SetValue(3)
	vars[3].SetValue(0)

	sel := NewPathSelector()
	require.Nil(t, sel.SelectVariable(s, vars))
}
