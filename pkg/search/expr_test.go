package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeSumBinds(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	y := s.MakeIntVar(0, 5, "y")
	sum := s.MakeSum([]*IntVar{x, y}, nil)

	x.SetValue(2)
	y.SetValue(3)
	s.propagate()
	require.True(t, sum.Bound())
	require.Equal(t, 5, sum.Value())
}

func TestMakeSumPropagatesBoundsBackward(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	y := s.MakeIntVar(0, 5, "y")
	sum := s.MakeSum([]*IntVar{x, y}, nil)
	sum.SetValue(10)
	s.propagate()
	require.Equal(t, 5, x.Min())
	require.Equal(t, 5, y.Min())
}

func TestMakeElementLooksUpArray(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	idx := s.MakeIntVar(0, 3, "idx")
	elem := s.MakeElement([]int{10, 20, 30, 40}, idx)
	idx.SetValue(2)
	s.propagate()
	require.True(t, elem.Bound())
	require.Equal(t, 30, elem.Value())
}

func TestMakeIsDifferentCst(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(0, 3, "v")
	b := s.MakeIsDifferentCst(v, 2)
	v.SetValue(2)
	s.propagate()
	require.True(t, b.Bound())
	require.Equal(t, 0, b.Value())
}

// AddConstraint's registration (and the derived IntVar MakeSum creates for
// it) must undo on backtrack: a constraint posted inside one search
// subtree must not keep propagating once the driver backtracks above the
// point it was posted.
func TestAddConstraintRegistrationIsTrailed(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	x := s.MakeIntVar(0, 5, "x")
	y := s.MakeIntVar(0, 5, "y")

	constraintsBefore := len(s.constraints)
	varsBefore := len(s.vars)
	mark := s.trail.Mark()

	sum := s.MakeSum([]*IntVar{x, y}, nil)
	require.Equal(t, constraintsBefore+1, len(s.constraints))
	require.Equal(t, varsBefore+1, len(s.vars))
	require.NotNil(t, sum)

	s.trail.Undo(mark)
	require.Equal(t, constraintsBefore, len(s.constraints))
	require.Equal(t, varsBefore, len(s.vars))
}

// Mirrors AssignVariablesValues.Refute's exclusion-constraint shape: once
// the driver backtracks past the Refute call, the excluded tuple must be
// reachable again in a sibling branch, not forbidden globally.
func TestRefuteExclusionConstraintDoesNotOutliveItsSubtree(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	a := s.MakeIntVar(0, 1, "a")
	b := s.MakeIntVar(0, 1, "b")

	d := AssignVariablesValues([]VarValue{{Var: a, Value: 0}, {Var: b, Value: 0}})

	mark := s.trail.Mark()
	d.Refute(s) // posts [a!=0]+[b!=0] >= 1, forbidding (0,0) in this subtree
	failed := s.protect(func() {
		a.SetValue(0)
		b.SetValue(0)
		s.propagate()
	})
	require.True(t, failed, "tuple (0,0) should be excluded while the Refute constraint is live")

	s.trail.Undo(mark) // backtrack above the Refute node

	failed = s.protect(func() {
		a.SetValue(0)
		b.SetValue(0)
		s.propagate()
	})
	require.False(t, failed, "tuple (0,0) must be reachable again once the exclusion constraint is undone")
}

func TestMakeAllDifferentFailsOnCollision(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	a := s.MakeIntVar(0, 1, "a")
	b := s.MakeIntVar(0, 1, "b")
	c := s.MakeIntVar(0, 1, "c")
	s.MakeAllDifferent([]*IntVar{a, b, c})

	failed := s.protect(func() {
		a.SetValue(0)
		b.SetValue(1)
		s.propagate() // c's domain [0,1] has both values excluded by the pairwise checks
	})
	require.True(t, failed)
}
