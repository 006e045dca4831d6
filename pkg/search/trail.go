package search

// Trail is the reversible-memory primitive the driver and its selectors
// share: every mutation made during search is recorded here so it can be
// undone on backtrack. Grounded on pkg/minikanren/fd.go's
// `trail []FDChange` + snapshot()/undo() pattern, generalized from one
// concrete change type to an arbitrary restore-thunk per entry via a small
// closure, which is what lets SaveAndSetValue work over any T.
type Trail struct {
	entries []func()
}

// Mark returns the current trail length, a restore point for Undo.
func (t *Trail) Mark() int {
	return len(t.entries)
}

// Undo rewinds the trail to the given mark, running restore thunks in
// reverse order (most recent change first), then truncates.
func (t *Trail) Undo(mark int) {
	for i := len(t.entries) - 1; i >= mark; i-- {
		t.entries[i]()
	}
	t.entries = t.entries[:mark]
}

// SaveAndSetValue records the current value of *slot on the trail, then
// sets *slot = val. On a later Undo past this point, *slot reverts to the
// value it held when SaveAndSetValue was called. This is the engine
// primitive spec §3 and §9 describe: IntVar domains, selector cursors,
// Compose/SolveOnce builder state, and symmetry clauses are all restored
// this way rather than through a persistent/copy-on-write chain. Tabu
// lists and stamps and GLS penalty tables are not trailed.
func SaveAndSetValue[T any](t *Trail, slot *T, val T) {
	old := *slot
	t.entries = append(t.entries, func() { *slot = old })
	*slot = val
}

// RevAlloc records an arbitrary undo thunk without an associated slot,
// used by constructs (the Solver's constraint and variable registries,
// shrunk back by AddConstraint and MakeIntVar) whose "slot" is really a
// composite structure rather than a single value.
func (t *Trail) RevAlloc(undo func()) {
	t.entries = append(t.entries, undo)
}
