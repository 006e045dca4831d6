package main

import (
	"fmt"

	"github.com/gitrdm/cpsearch/pkg/search"
)

// problem bundles a named scenario's variable construction with an
// optional objective, letting solve and bench share the same catalogue
// (spec §8's worked scenarios: pigeonhole, n-queens, min-sum).
type problem struct {
	name      string
	build     func(s *search.Solver, size int) (vars []*search.IntVar, objective *search.IntVar, maximize bool)
	sizeUsage string
}

var problems = map[string]problem{
	"nqueens":    {name: "nqueens", build: buildNQueens, sizeUsage: "board size (number of queens)"},
	"pigeonhole": {name: "pigeonhole", build: buildPigeonhole, sizeUsage: "number of pigeons (holes = size-1)"},
	"minsum":     {name: "minsum", build: buildMinSum, sizeUsage: "upper bound on each of the two variables' domains"},
}

func lookupProblem(name string) (problem, error) {
	p, ok := problems[name]
	if !ok {
		return problem{}, fmt.Errorf("unknown problem %q (want one of: nqueens, pigeonhole, minsum)", name)
	}
	return p, nil
}

// buildNQueens posts column all-differentness via MakeAllDifferent and
// diagonal distinctness via a pairwise not-equal constraint over shifted
// sums/differences, mirroring solver_scenarios_test.go's scenario.
func buildNQueens(s *search.Solver, n int) ([]*search.IntVar, *search.IntVar, bool) {
	queens := make([]*search.IntVar, n)
	for i := range queens {
		queens[i] = s.MakeIntVar(0, n-1, fmt.Sprintf("q%d", i))
	}
	s.MakeAllDifferent(queens)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ci := s.MakeIntVar(i, i, fmt.Sprintf("c%d", i))
			cj := s.MakeIntVar(j, j, fmt.Sprintf("c%d", j))
			diagUp := s.MakeSum([]*search.IntVar{queens[i], ci}, nil)
			diagUpJ := s.MakeSum([]*search.IntVar{queens[j], cj}, nil)
			s.AddConstraint(notEqual(diagUp, diagUpJ))
			diagDown := s.MakeDifference(queens[i], ci)
			diagDownJ := s.MakeDifference(queens[j], cj)
			s.AddConstraint(notEqual(diagDown, diagDownJ))
		}
	}
	return queens, nil, false
}

// buildPigeonhole posts size pigeons into size-1 holes, a classic
// unsatisfiable instance used to exercise AllSolutionCollector's zero-
// solution path (spec §8 scenario 1).
func buildPigeonhole(s *search.Solver, size int) ([]*search.IntVar, *search.IntVar, bool) {
	holes := size - 1
	if holes < 1 {
		holes = 1
	}
	vars := make([]*search.IntVar, size)
	for i := range vars {
		vars[i] = s.MakeIntVar(0, holes-1, fmt.Sprintf("p%d", i))
	}
	s.MakeAllDifferent(vars)
	return vars, nil, false
}

// buildMinSum posts x+y >= 3 over x,y in [0,size] and returns the sum as
// the objective to minimize (spec §8 scenario 3).
func buildMinSum(s *search.Solver, size int) ([]*search.IntVar, *search.IntVar, bool) {
	x := s.MakeIntVar(0, size, "x")
	y := s.MakeIntVar(0, size, "y")
	sum := s.MakeSum([]*search.IntVar{x, y}, nil)
	sum.SetMin(3)
	return []*search.IntVar{x, y}, sum, false
}

// notEqualConstraint enforces a != b via mutual value removal once one
// side is bound; there is no dedicated factory for it in pkg/search, so
// the CLI posts it directly the way solver_scenarios_test.go does.
type notEqualConstraint struct {
	a, b *search.IntVar
}

func notEqual(a, b *search.IntVar) search.Constraint {
	return &notEqualConstraint{a: a, b: b}
}

func (c *notEqualConstraint) Propagate(s *search.Solver) {
	if c.a.Bound() && c.b.Bound() {
		if c.a.Value() == c.b.Value() {
			s.Fail()
		}
		return
	}
	if c.a.Bound() {
		c.b.RemoveValue(c.a.Value())
	}
	if c.b.Bound() {
		c.a.RemoveValue(c.b.Value())
	}
}
