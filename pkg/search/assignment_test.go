package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignmentEmptyBeforeStore(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	a := NewAssignment(x)
	require.True(t, a.Empty())
}

func TestAssignmentStoreCapturesOnlyBoundVars(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	y := s.MakeIntVar(0, 5, "y")
	x.SetValue(3)
	a := NewAssignment(x, y)
	a.Store()

	require.False(t, a.Empty())
	require.Equal(t, 3, a.Value(x))
	require.Panics(t, func() { a.Value(y) })
}

func TestAssignmentValuePanicsOnUntrackedVar(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	other := s.MakeIntVar(0, 5, "other")
	a := NewAssignment(x)
	a.Store()
	require.Panics(t, func() { a.Value(other) })
}

// Store -> DecisionBuilderFromAssignment -> Solve replays the captured
// values onto the same variables after their domains are reset, the round trip the assignment
// container exists to support (spec §3).
func TestAssignmentReplayRoundTrip(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	y := s.MakeIntVar(0, 5, "y")
	x.SetValue(2)
	y.SetValue(4)

	a := NewAssignment(x, y)
	a.Store()

	x.replaceDomain(newBitsetDomain(0, 5))
	y.replaceDomain(newBitsetDomain(0, 5))
	require.False(t, x.Bound())
	require.False(t, y.Bound())

	db := DecisionBuilderFromAssignment(a)
	found := s.Solve(db)
	require.True(t, found)
	require.Equal(t, 2, x.Value())
	require.Equal(t, 4, y.Value())
}

func TestAssignmentCloneIsIndependent(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	x.SetValue(1)
	a := NewAssignment(x)
	a.Store()

	cp := a.Clone()
	x.replaceDomain(newBitsetDomain(0, 5))
	x.SetValue(9)
	a.Store() // mutates the original only

	require.Equal(t, 9, a.Value(x))
	require.Equal(t, 1, cp.Value(x))
}

func TestAssignmentIntVarContainerPreservesOrder(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	y := s.MakeIntVar(0, 5, "y")
	a := NewAssignment(x, y)
	elems := a.IntVarContainer()
	require.Len(t, elems, 2)
	require.Equal(t, x, elems[0].Var)
	require.Equal(t, y, elems[1].Var)
}
