package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrailUndoRestoresValue(t *testing.T) {
	var tr Trail
	x := 1
	mark := tr.Mark()
	SaveAndSetValue(&tr, &x, 2)
	require.Equal(t, 2, x)
	tr.Undo(mark)
	require.Equal(t, 1, x)
}

func TestTrailNestedMarks(t *testing.T) {
	var tr Trail
	x := 0
	outer := tr.Mark()
	SaveAndSetValue(&tr, &x, 1)
	inner := tr.Mark()
	SaveAndSetValue(&tr, &x, 2)
	tr.Undo(inner)
	require.Equal(t, 1, x)
	tr.Undo(outer)
	require.Equal(t, 0, x)
}

// Reversible cursors (FirstUnboundSelector.first_) return to their
// pre-choice value whenever the engine backtracks through that choice
// (spec §8 invariant 2).
func TestFirstUnboundSelectorCursorReversible(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	a := s.MakeIntVar(0, 1, "a")
	b := s.MakeIntVar(0, 1, "b")
	vars := []*IntVar{a, b}
	sel := NewFirstUnboundSelector().(*firstUnboundSelector)

	mark := s.trail.Mark()
	require.Equal(t, a, sel.SelectVariable(s, vars))
	a.SetValue(0)
	require.Equal(t, 0, sel.first) // still 0: a was unbound when selected

	require.Equal(t, b, sel.SelectVariable(s, vars))
	require.Equal(t, 1, sel.first)

	s.trail.Undo(mark)
	require.Equal(t, 0, sel.first)
}
