package search

// DecisionBuilder lazily produces the next Decision, or nil when the
// subtree rooted at this builder is solved (spec §3).
type DecisionBuilder interface {
	Next(s *Solver) Decision
	String() string
}

// composeDecisionBuilder sequences several DecisionBuilders, moving to the
// next once the current returns nil. Grounded on search.cc's
// ComposeDecisionBuilder (SUPPLEMENTED FEATURES).
type composeDecisionBuilder struct {
	dbs []DecisionBuilder
	cur int
}

// Compose returns a DecisionBuilder that exhausts each db in order.
func Compose(dbs ...DecisionBuilder) DecisionBuilder {
	return &composeDecisionBuilder{dbs: dbs}
}

func (c *composeDecisionBuilder) Next(s *Solver) Decision {
	for c.cur < len(c.dbs) {
		if d := c.dbs[c.cur].Next(s); d != nil {
			return d
		}
		SaveAndSetValue(&s.trail, &c.cur, c.cur+1)
	}
	return nil
}

func (c *composeDecisionBuilder) String() string { return "ComposeDecisionBuilder" }

// solveOnceBuilder implements spec §4.10: SolveOnce(db, monitors) is a
// DecisionBuilder whose Next invokes a nested solve. If the nested search
// finds no solution, it fails the caller; otherwise returns nil so the
// outer driver considers this subtree solved.
type solveOnceBuilder struct {
	inner    DecisionBuilder
	monitors []SearchMonitor
	done     bool
}

// SolveOnce returns a DecisionBuilder wrapping a nested, independent solve
// of inner with the given monitors. restore=false: the nested solve's
// mutations persist into the caller (spec §4.10).
func SolveOnce(inner DecisionBuilder, monitors ...SearchMonitor) DecisionBuilder {
	return &solveOnceBuilder{inner: inner, monitors: monitors}
}

func (b *solveOnceBuilder) Next(s *Solver) Decision {
	if b.done {
		return nil
	}
	SaveAndSetValue(&s.trail, &b.done, true)
	found := s.NestedSolve(b.inner, false, b.monitors...)
	if !found {
		s.Fail()
		return nil
	}
	return nil
}

func (b *solveOnceBuilder) String() string { return "SolveOnce" }

// fromAssignmentBuilder implements DecisionBuilderFromAssignment / the
// "RestoreAssignment" behavior from search.cc: Apply sets every active
// IntVarElement from a captured Assignment; Refute fails unconditionally.
// This is a DecisionBuilder, not a single Decision, because it must
// produce one assignment-replay Decision then signal done.
type fromAssignmentBuilder struct {
	assignment *Assignment
	done       bool
}

// DecisionBuilderFromAssignment replays a previously captured Assignment.
func DecisionBuilderFromAssignment(a *Assignment) DecisionBuilder {
	return &fromAssignmentBuilder{assignment: a}
}

func (b *fromAssignmentBuilder) Next(s *Solver) Decision {
	if b.done {
		return nil
	}
	b.done = true
	return &restoreAssignmentDecision{a: b.assignment}
}

func (b *fromAssignmentBuilder) String() string { return "DecisionBuilderFromAssignment" }

type restoreAssignmentDecision struct {
	a *Assignment
}

func (d *restoreAssignmentDecision) Apply(s *Solver) {
	for _, e := range d.a.IntVarContainer() {
		if e.Activated {
			e.Var.SetValue(e.Value)
		}
	}
}
func (d *restoreAssignmentDecision) Refute(s *Solver) { s.Fail() }
func (d *restoreAssignmentDecision) Accept(v DecisionVisitor) { v.VisitUnknown(d) }
func (d *restoreAssignmentDecision) String() string { return "RestoreAssignment" }
