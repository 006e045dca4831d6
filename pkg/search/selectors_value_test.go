package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Center value selector on a singleton domain returns the sole value
// (spec §8 boundary behavior).
func TestCenterValueSelectorSingleton(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(4, 4, "v")
	sel := NewCenterValueSelector()
	require.Equal(t, 4, sel.SelectValue(s, v))
}

func TestCenterValueSelectorMidpoint(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(0, 4, "v")
	sel := NewCenterValueSelector()
	require.Equal(t, 2, sel.SelectValue(s, v))
}

func TestMinMaxValueSelectors(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(3, 9, "v")
	require.Equal(t, 3, NewMinValueSelector().SelectValue(s, v))
	require.Equal(t, 9, NewMaxValueSelector().SelectValue(s, v))
}

// Empty variable array to any Phase returns a builder that immediately
// yields null (spec §8 boundary behavior).
func TestPhaseEmptyVarsYieldsNilDecision(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	db, err := MakePhase(nil, ChooseFirstUnbound, AssignMinValue)
	require.NoError(t, err)
	require.Nil(t, db.Next(s))
}

// Zero-size domain at time of SetValue triggers failure caught by the
// driver (spec §8 boundary behavior).
func TestSetValueOutsideDomainFails(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(0, 3, "v")
	failed := s.protect(func() { v.SetValue(9) })
	require.True(t, failed)
}
