// Package search implements the search driver of a finite-domain
// constraint programming solver: decisions, decision builders, variable
// and value selectors, the SearchMonitor broadcast protocol, solution
// collectors, objective optimization, metaheuristics, search limits,
// restarts, and symmetry breaking.
package search

import "github.com/pkg/errors"

// Sentinel errors for the recoverable "Failure" category. These are never
// returned to a caller across a Solve boundary; they are attached to a
// failureSignal panic via FailWithReason and observed by monitors through
// Solver.LastFailureReason from a BeginFail/EndFail hook.
var (
	ErrDomainEmpty   = errors.New("search: domain became empty")
	ErrInconsistent  = errors.New("search: inconsistent assignment")
	ErrLimitExceeded = errors.New("search: limit exceeded")
)

// Misuse errors are fatal: they are returned directly from constructors and
// must never be caught by the driver's failure-recovery mechanism.
var (
	ErrUnknownStrategy  = errors.New("search: unknown strategy enum value")
	ErrNonPositiveStep  = errors.New("search: step must be >= 1")
	ErrNonPositiveScale = errors.New("search: scale_factor must be >= 1")
)

// wrapMisuse annotates a construction-time misuse error with context,
// following the teacher's convention of wrapping sentinels with pkg/errors
// rather than inventing new error types per call site.
func wrapMisuse(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}
