package search

import (
	"fmt"

	"go.uber.org/zap"
)

// formatMemory renders bytes using threshold-based units: KB/MB/GB once
// the value reaches 2x that unit, otherwise raw bytes (spec §6.2).
func formatMemory(bytes uint64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case bytes >= 2*gb:
		return fmt.Sprintf("%.2fGB", float64(bytes)/gb)
	case bytes >= 2*mb:
		return fmt.Sprintf("%.2fMB", float64(bytes)/mb)
	case bytes >= 2*kb:
		return fmt.Sprintf("%.2fKB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// SearchLog is a passive SearchMonitor that prints the free-form
// start/per-solution/periodic/root-propagation/end-of-search lines in the
// field order spec §6.2 describes, via a *zap.SugaredLogger (the
// printf-style sink for this unstructured log format; see SPEC_FULL.md's
// ambient-stack rationale — structured zap fields would force every
// reader to special-case this one free-text format).
type SearchLog struct {
	BaseMonitor
	Objective    *IntVar
	BranchPeriod int64
	log          *zap.SugaredLogger

	lastPeriodBranches int64
}

// NewSearchLog constructs a SearchLog. objective may be nil for
// satisfaction searches with no tracked objective. branchPeriod <= 0
// disables periodic branch lines.
func NewSearchLog(logger *zap.Logger, objective *IntVar, branchPeriod int64) *SearchLog {
	return &SearchLog{Objective: objective, BranchPeriod: branchPeriod, log: logger.Sugar()}
}

func (l *SearchLog) EnterSearch(s *Solver) {
	l.lastPeriodBranches = 0
	l.log.Infof("[run_id=%s] Start search, memory used = %s", s.RunID, formatMemory(s.MemoryUsage()))
}

func (l *SearchLog) EndInitialPropagation(s *Solver) {
	l.log.Infof("[run_id=%s] Root node processed (time = %dms, branches = %d, failures = %d, memory used = %s)",
		s.RunID, s.WallTime().Milliseconds(), s.Branches(), s.Failures(), formatMemory(s.MemoryUsage()))
}

func (l *SearchLog) BeginNextDecision(s *Solver, db DecisionBuilder) {
	if l.BranchPeriod <= 0 {
		return
	}
	if s.Branches()-l.lastPeriodBranches >= l.BranchPeriod {
		l.lastPeriodBranches = s.Branches()
		l.log.Infof("[run_id=%s] %d branches, %d failures, %d neighbors, memory used = %s",
			s.RunID, s.Branches(), s.Failures(), s.Neighbors(), formatMemory(s.MemoryUsage()))
	}
}

func (l *SearchLog) AtSolution(s *Solver) bool {
	if l.Objective != nil && l.Objective.Bound() {
		l.log.Infof("[run_id=%s] Solution #%d (objective value = %d, time = %dms, branches = %d, failures = %d, depth = %d, neighbors = %d, memory used = %s)",
			s.RunID, s.Solutions(), l.Objective.Value(), s.WallTime().Milliseconds(), s.Branches(), s.Failures(),
			s.SearchDepth(), s.Neighbors(), formatMemory(s.MemoryUsage()))
	} else {
		l.log.Infof("[run_id=%s] Solution #%d (time = %dms, branches = %d, failures = %d, depth = %d, memory used = %s)",
			s.RunID, s.Solutions(), s.WallTime().Milliseconds(), s.Branches(), s.Failures(), s.SearchDepth(), formatMemory(s.MemoryUsage()))
	}
	return false
}

func (l *SearchLog) ExitSearch(s *Solver) {
	l.log.Infof("[run_id=%s] End search (time = %dms, branches = %d, failures = %d, solutions = %d, memory used = %s)",
		s.RunID, s.WallTime().Milliseconds(), s.Branches(), s.Failures(), s.Solutions(), formatMemory(s.MemoryUsage()))
}

// SearchTrace is a lighter sibling of SearchLog (spec §6.2's public
// surface list names both): it emits only the start/solution/end lines,
// skipping periodic branch and root-propagation noise, for callers that
// want a terser transcript.
type SearchTrace struct {
	BaseMonitor
	Objective *IntVar
	log       *zap.SugaredLogger
}

func NewSearchTrace(logger *zap.Logger, objective *IntVar) *SearchTrace {
	return &SearchTrace{Objective: objective, log: logger.Sugar()}
}

func (t *SearchTrace) EnterSearch(s *Solver) {
	t.log.Infof("run_id=%s search start", s.RunID)
}

func (t *SearchTrace) AtSolution(s *Solver) bool {
	if t.Objective != nil && t.Objective.Bound() {
		t.log.Infof("run_id=%s solution #%d objective=%d branches=%d", s.RunID, s.Solutions(), t.Objective.Value(), s.Branches())
	} else {
		t.log.Infof("run_id=%s solution #%d branches=%d", s.RunID, s.Solutions(), s.Branches())
	}
	return false
}

func (t *SearchTrace) ExitSearch(s *Solver) {
	t.log.Infof("run_id=%s search end solutions=%d branches=%d failures=%d", s.RunID, s.Solutions(), s.Branches(), s.Failures())
}
