package search

import "time"

// SearchLimit is the generic contract of spec §4.8: on EnterSearch,
// initialize offsets; on each BeginNextDecision and RefuteDecision call
// PeriodicCheck — if Check() returns true (or was previously tripped),
// mark crossed and fail.
type SearchLimit interface {
	SearchMonitor
	Check(s *Solver) bool
	Crossed() bool
}

// RegularLimit tracks wall-time, branches, failures, solutions; each is a
// cap that, when exceeded relative to EnterSearch offsets, triggers a
// cross (spec §4.8). SmartTimeCheck amortizes the time poll: after 100
// warmup checks, estimate the rate and skip up to 100 future checks
// proportional to remaining budget.
type RegularLimit struct {
	BaseMonitor
	MaxTime        time.Duration
	MaxBranches    int64
	MaxFailures    int64
	MaxSolutions   int64
	SmartTimeCheck bool

	crossed bool

	startTime      time.Time
	startBranches  int64
	startFailures  int64
	startSolutions int64

	checks      int64
	skipUntil   int64
	lastElapsed time.Duration
}

// NewRegularLimit constructs a RegularLimit. A zero field means "no cap"
// on that dimension (spec §8's "all budgets set to maximum behaves as an
// unbounded search" boundary behavior).
func NewRegularLimit(maxTime time.Duration, maxBranches, maxFailures, maxSolutions int64, smartTimeCheck bool) *RegularLimit {
	return &RegularLimit{
		MaxTime: maxTime, MaxBranches: maxBranches, MaxFailures: maxFailures,
		MaxSolutions: maxSolutions, SmartTimeCheck: smartTimeCheck,
	}
}

func (l *RegularLimit) EnterSearch(s *Solver) {
	l.crossed = false
	l.startTime = time.Now()
	l.startBranches = s.Branches()
	l.startFailures = s.Failures()
	l.startSolutions = s.Solutions()
	l.checks = 0
	l.skipUntil = 0
}

func (l *RegularLimit) Crossed() bool { return l.crossed }

// Check implements SearchLimit.Check (spec §8 invariant 7: returns true
// iff any of the four budgets has been exceeded since EnterSearch).
func (l *RegularLimit) Check(s *Solver) bool {
	if l.crossed {
		return true
	}
	if l.MaxBranches > 0 && s.Branches()-l.startBranches > l.MaxBranches {
		l.crossed = true
		return true
	}
	if l.MaxFailures > 0 && s.Failures()-l.startFailures > l.MaxFailures {
		l.crossed = true
		return true
	}
	if l.MaxSolutions > 0 && s.Solutions()-l.startSolutions > l.MaxSolutions {
		l.crossed = true
		return true
	}
	if l.MaxTime > 0 {
		l.checks++
		if l.SmartTimeCheck && l.checks < l.skipUntil {
			return false
		}
		elapsed := time.Since(l.startTime)
		if elapsed >= l.MaxTime {
			l.crossed = true
			return true
		}
		if l.SmartTimeCheck && l.checks >= 100 {
			rate := elapsed - l.lastElapsed
			if rate > 0 {
				remaining := l.MaxTime - elapsed
				skip := int64(remaining / rate)
				if skip > 100 {
					skip = 100
				}
				l.skipUntil = l.checks + skip
			}
			l.lastElapsed = elapsed
		}
	}
	return false
}

func (l *RegularLimit) periodicCheck(s *Solver) {
	if l.Check(s) {
		s.FailWithReason(ErrLimitExceeded)
	}
}

func (l *RegularLimit) BeginNextDecision(s *Solver, db DecisionBuilder) { l.periodicCheck(s) }
func (l *RegularLimit) RefuteDecision(s *Solver, d Decision)            { l.periodicCheck(s) }

// MakeClone returns a fresh RegularLimit with the same budgets but reset
// counters, used by nested solves (spec §4.8).
func (l *RegularLimit) MakeClone() *RegularLimit {
	return NewRegularLimit(l.MaxTime, l.MaxBranches, l.MaxFailures, l.MaxSolutions, l.SmartTimeCheck)
}

// Copy lets a limit snapshot another's configuration (spec §4.8).
func (l *RegularLimit) Copy(other *RegularLimit) {
	l.MaxTime = other.MaxTime
	l.MaxBranches = other.MaxBranches
	l.MaxFailures = other.MaxFailures
	l.MaxSolutions = other.MaxSolutions
	l.SmartTimeCheck = other.SmartTimeCheck
}

// CustomLimit delegates Check() to a user-supplied predicate (spec §4.8).
type CustomLimit struct {
	BaseMonitor
	Predicate func(s *Solver) bool
	crossed   bool
}

func NewCustomLimit(predicate func(s *Solver) bool) *CustomLimit {
	return &CustomLimit{Predicate: predicate}
}

func (l *CustomLimit) EnterSearch(s *Solver) { l.crossed = false }
func (l *CustomLimit) Crossed() bool         { return l.crossed }
func (l *CustomLimit) Check(s *Solver) bool {
	if l.crossed || l.Predicate(s) {
		l.crossed = true
		return true
	}
	return false
}
func (l *CustomLimit) periodicCheck(s *Solver) {
	if l.Check(s) {
		s.FailWithReason(ErrLimitExceeded)
	}
}
func (l *CustomLimit) BeginNextDecision(s *Solver, db DecisionBuilder) { l.periodicCheck(s) }
func (l *CustomLimit) RefuteDecision(s *Solver, d Decision)            { l.periodicCheck(s) }
