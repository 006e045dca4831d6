package search

// clauseEntry is one trailed term in a SymmetryBreaker's clause: a
// boolean IntVar pushed by AddToClause plus whether the decision that
// pushed it was the left (Apply) branch, and whether it has already been
// turned into a forbidding constraint (spec §4.11).
type clauseEntry struct {
	term *IntVar
	left bool
	done bool
}

// SymmetryBreaker is implemented by application code wanting to forbid
// symmetric search states. It is also a DecisionVisitor: the manager
// calls Accept(breaker) on each decision, and the breaker's visit methods
// call AddToClause to record the boolean terms that define the current
// branch's symmetric counterpart.
type SymmetryBreaker interface {
	DecisionVisitor
}

// symmetryBreakerState tracks one breaker's clause plus which decision
// last extended it, so RefuteDecision can tell whether this breaker has
// anything to emit for the decision being refuted.
type symmetryBreakerState struct {
	breaker      SymmetryBreaker
	clause       []clauseEntry
	lastDecision Decision
}

// SymmetryManager is a SearchMonitor that drives a set of SymmetryBreaker
// visitors per spec §4.11: on EndNextDecision it visits every breaker
// with the new decision, and on RefuteDecision it emits the
// symmetry-forbidding constraint for any breaker whose clause the
// refuted decision extended.
type SymmetryManager struct {
	BaseMonitor
	states []*symmetryBreakerState
	s      *Solver
	active *symmetryBreakerState // set while visiting, so AddToClause knows its target
}

// NewSymmetryManager constructs a SymmetryManager over the given breakers
// (spec §4.11; manager owns the visitors, each visitor keeps a weak
// back-reference via its index in states, avoiding a reference cycle —
// spec §7's cyclic-reference note).
func NewSymmetryManager(breakers ...SymmetryBreaker) *SymmetryManager {
	m := &SymmetryManager{}
	for _, b := range breakers {
		m.states = append(m.states, &symmetryBreakerState{breaker: b})
	}
	return m
}

// AddToClause pushes term onto the currently-visited breaker's clause,
// trailed so it unwinds with the search tree, and records the current
// decision as a left-branch marker — AddToClause is only callable from
// within a breaker's Visit method during EndNextDecision, which fires
// after the left (Apply) branch of a decision, so every pushed entry is
// a left entry (spec §4.11).
func (m *SymmetryManager) AddToClause(term *IntVar) {
	if m.active == nil {
		return
	}
	st := m.active
	idx := len(st.clause)
	SaveAndSetValue(&m.s.trail, &st.clause, append(st.clause[:idx:idx], clauseEntry{term: term, left: true}))
}

func (m *SymmetryManager) EndNextDecision(s *Solver, db DecisionBuilder, d Decision) {
	if d == nil {
		return
	}
	m.s = s
	for _, st := range m.states {
		m.active = st
		d.Accept(st.breaker)
		st.lastDecision = d
		m.active = nil
	}
}

// RefuteDecision scans each breaker whose clause the refuted decision
// extended, oldest to newest: any past left entry with Min==0,Max==1
// joins the "guard" set; a past left entry with Max==0 makes the clause
// vacuous (nothing to emit). The newest entry is the refuted term itself;
// the manager requires min(guards ∪ {newest}) == 0 — if every prior left
// branch held, the symmetric counterpart of the current decision is
// forbidden — then marks the newest entry done so it is not re-emitted
// (spec §4.11).
func (m *SymmetryManager) RefuteDecision(s *Solver, d Decision) {
	for _, st := range m.states {
		if st.lastDecision != d || len(st.clause) == 0 {
			continue
		}
		last := len(st.clause) - 1
		if st.clause[last].done {
			continue
		}

		guards := make([]*IntVar, 0, len(st.clause))
		vacuous := false
		for i := 0; i < last; i++ {
			e := st.clause[i]
			if !e.left {
				continue
			}
			if e.term.Max() == 0 {
				vacuous = true
				break
			}
			if e.term.Min() == 0 && e.term.Max() == 1 {
				guards = append(guards, e.term)
			}
		}
		if vacuous {
			continue
		}

		literals := append(guards, st.clause[last].term)
		sum := s.MakeSum(literals, nil)
		sum.SetMax(len(literals) - 1)

		st.clause[last].done = true
	}
}
