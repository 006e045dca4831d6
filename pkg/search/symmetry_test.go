package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testBreaker pushes an is-equal-cst boolean term onto the manager's
// clause for every variable assignment it visits.
type testBreaker struct {
	mgr *SymmetryManager
}

func (b *testBreaker) VisitSetVariableValue(v *IntVar, value int) {
	term := v.solver.MakeIsEqualCstVar(v, value)
	b.mgr.AddToClause(term)
}
func (b *testBreaker) VisitUnknown(d Decision) {}

// The clause is trailed so it unwinds with the search tree; each visitor
// carries an independent clause (spec §4.11 invariant).
func TestSymmetryManagerClauseIsTrailed(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(0, 3, "v")
	breaker := &testBreaker{}
	mgr := NewSymmetryManager(breaker)
	breaker.mgr = mgr

	mark := s.trail.Mark()
	d := AssignOneVariableValue(v, 1)
	mgr.EndNextDecision(s, nil, d)
	require.Len(t, mgr.states[0].clause, 1)

	s.trail.Undo(mark)
	require.Len(t, mgr.states[0].clause, 0)
}

func TestSymmetryManagerRefuteEmitsOnce(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(0, 3, "v")
	breaker := &testBreaker{}
	mgr := NewSymmetryManager(breaker)
	breaker.mgr = mgr

	d := AssignOneVariableValue(v, 1)
	mgr.EndNextDecision(s, nil, d)
	require.False(t, mgr.states[0].clause[0].done)

	mgr.RefuteDecision(s, d)
	require.True(t, mgr.states[0].clause[0].done)

	before := len(s.constraints)
	mgr.RefuteDecision(s, d) // already done: must not re-emit
	require.Equal(t, before, len(s.constraints))
}
