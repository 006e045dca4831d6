package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Compose exhausts each inner builder in order, moving on only once the
// current one returns nil (spec §4.10).
func TestComposeExhaustsBuildersInOrder(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 3, "x")
	y := s.MakeIntVar(0, 3, "y")

	dbx, err := MakePhase([]*IntVar{x}, ChooseFirstUnbound, AssignMinValue)
	require.NoError(t, err)
	dby, err := MakePhase([]*IntVar{y}, ChooseFirstUnbound, AssignMinValue)
	require.NoError(t, err)

	db := Compose(dbx, dby)
	found := s.Solve(db)
	require.True(t, found)
	require.True(t, x.Bound())
	require.True(t, y.Bound())
}

func TestComposeWithEmptyListSolvesImmediately(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	db := Compose()
	found := s.Solve(db)
	require.True(t, found)
}

// SolveOnce delegates to a nested, independent solve and fails the caller
// if the nested search finds nothing (spec §4.10).
func TestSolveOnceFailsCallerWhenNestedSearchFails(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	vars := []*IntVar{
		s.MakeIntVar(0, 1, "p0"),
		s.MakeIntVar(0, 1, "p1"),
		s.MakeIntVar(0, 1, "p2"),
	}
	s.MakeAllDifferent(vars) // 3 vars, 2 values: unsatisfiable

	failingInner, err := MakePhase(vars, ChooseFirstUnbound, AssignMinValue)
	require.NoError(t, err)

	outer := SolveOnce(failingInner)
	found := s.Solve(outer)
	require.False(t, found)
}

func TestSolveOnceSucceedsAndPersistsIntoCaller(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(0, 5, "v")
	inner, err := MakePhase([]*IntVar{v}, ChooseFirstUnbound, AssignMinValue)
	require.NoError(t, err)

	outer := SolveOnce(inner)
	found := s.Solve(outer)
	require.True(t, found)
	require.True(t, v.Bound())
	require.Equal(t, 0, v.Value())
}

// DecisionBuilderFromAssignment produces exactly one decision, then nil
// (spec §3).
func TestFromAssignmentBuilderYieldsSingleDecision(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	x.SetValue(3)
	a := NewAssignment(x)
	a.Store()
	x.replaceDomain(newBitsetDomain(0, 5))

	b := DecisionBuilderFromAssignment(a)
	d := b.Next(s)
	require.NotNil(t, d)
	require.Nil(t, b.Next(s))
}
