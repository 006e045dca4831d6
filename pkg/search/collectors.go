package search

import "time"

// CapturedSolution is one entry a SolutionCollector records: the captured
// Assignment plus the driver counters at the moment of capture (spec §4.4).
type CapturedSolution struct {
	Assignment    *Assignment
	WallTime      time.Duration
	Branches      int64
	Failures      int64
	ObjectiveValue int
	HasObjective   bool
}

// baseCollector holds the common shape every collector variant shares: a
// prototype Assignment and a list of captured solutions (spec §4.4). Each
// capture clones the prototype into a new Assignment; solution slots are
// not recycled.
type baseCollector struct {
	BaseMonitor
	prototype *Assignment
	objective *IntVar
	captured  []CapturedSolution
}

func newBaseCollector(prototype *Assignment, objective *IntVar) baseCollector {
	return baseCollector{prototype: prototype, objective: objective}
}

func (c *baseCollector) capture(s *Solver) CapturedSolution {
	c.prototype.Store()
	cs := CapturedSolution{
		Assignment: c.prototype.Clone(),
		WallTime:   s.WallTime(),
		Branches:   s.Branches(),
		Failures:   s.Failures(),
	}
	if c.objective != nil && c.objective.Bound() {
		cs.ObjectiveValue = c.objective.Value()
		cs.HasObjective = true
	}
	return cs
}

// SolutionCount returns the number of captured solutions.
func (c *baseCollector) SolutionCount() int { return len(c.captured) }

// Solution returns the n-th captured solution's Assignment.
func (c *baseCollector) Solution(n int) *Assignment { return c.captured[n].Assignment }

// ObjectiveValue returns the n-th captured solution's objective value.
func (c *baseCollector) ObjectiveValue(n int) int { return c.captured[n].ObjectiveValue }

// FirstSolutionCollector captures on the first AtSolution, then ignores
// every subsequent one (spec §4.4; invariant in spec §8: solution_count()
// in {0,1}).
type FirstSolutionCollector struct {
	baseCollector
}

func NewFirstSolutionCollector(prototype *Assignment, objective *IntVar) *FirstSolutionCollector {
	return &FirstSolutionCollector{baseCollector: newBaseCollector(prototype, objective)}
}

// SolverAwareMonitor is implemented by monitors that must capture state
// through the live Solver at the AtSolution event rather than through the
// plain boolean AtSolution hook (the solution collectors, which need
// Solver counters to populate a CapturedSolution).
type SolverAwareMonitor interface {
	CaptureAtSolution(s *Solver) bool
}

func (c *FirstSolutionCollector) CaptureAtSolution(s *Solver) bool {
	if len(c.captured) == 0 {
		c.captured = append(c.captured, c.capture(s))
	}
	return false
}

// LastSolutionCollector replaces the single stored solution on each
// AtSolution (spec §4.4).
type LastSolutionCollector struct {
	baseCollector
}

func NewLastSolutionCollector(prototype *Assignment, objective *IntVar) *LastSolutionCollector {
	return &LastSolutionCollector{baseCollector: newBaseCollector(prototype, objective)}
}

func (c *LastSolutionCollector) CaptureAtSolution(s *Solver) bool {
	cs := c.capture(s)
	if len(c.captured) == 0 {
		c.captured = append(c.captured, cs)
	} else {
		c.captured[0] = cs
	}
	return true
}

// BestValueSolutionCollector stores initially, then replaces only on
// strict improvement against the objective, in the configured direction
// (spec §4.4; invariant in spec §8).
type BestValueSolutionCollector struct {
	baseCollector
	maximize bool
}

func NewBestValueSolutionCollector(prototype *Assignment, objective *IntVar, maximize bool) *BestValueSolutionCollector {
	return &BestValueSolutionCollector{baseCollector: newBaseCollector(prototype, objective), maximize: maximize}
}

func (c *BestValueSolutionCollector) CaptureAtSolution(s *Solver) bool {
	cs := c.capture(s)
	if len(c.captured) == 0 {
		c.captured = append(c.captured, cs)
		return false
	}
	cur := c.captured[0]
	improved := false
	if c.maximize {
		improved = cs.ObjectiveValue > cur.ObjectiveValue
	} else {
		improved = cs.ObjectiveValue < cur.ObjectiveValue
	}
	if improved {
		c.captured[0] = cs
	}
	return true
}

// AllSolutionCollector pushes every solution (spec §4.4; invariant in
// spec §8: solution_count() equals the number of AtSolution events).
type AllSolutionCollector struct {
	baseCollector
}

func NewAllSolutionCollector(prototype *Assignment, objective *IntVar) *AllSolutionCollector {
	return &AllSolutionCollector{baseCollector: newBaseCollector(prototype, objective)}
}

func (c *AllSolutionCollector) CaptureAtSolution(s *Solver) bool {
	c.captured = append(c.captured, c.capture(s))
	return true
}
