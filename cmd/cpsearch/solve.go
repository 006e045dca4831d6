package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/cpsearch/pkg/search"
)

type solveOptions struct {
	problem       string
	size          int
	varStrategy   string
	valStrategy   string
	collector     string
	metaheuristic string
	restart       string
	restartScale  int64
	maxBranches   int64
	maxFailures   int64
	trace         bool
}

func newSolveCmd() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "solve one of the canned search-driver scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts)
		},
	}
	cmd.Flags().StringVar(&opts.problem, "problem", "nqueens", "problem: nqueens, pigeonhole, minsum")
	cmd.Flags().IntVar(&opts.size, "size", 8, "problem size, meaning depends on --problem")
	cmd.Flags().StringVar(&opts.varStrategy, "var-strategy", "first-unbound", "variable selection strategy")
	cmd.Flags().StringVar(&opts.valStrategy, "val-strategy", "min", "value selection strategy")
	cmd.Flags().StringVar(&opts.collector, "collector", "first", "solution collector: first, all, last, best")
	cmd.Flags().StringVar(&opts.metaheuristic, "metaheuristic", "", "optional metaheuristic: tabu, annealing, gls")
	cmd.Flags().StringVar(&opts.restart, "restart", "", "optional restart policy: luby, constant")
	cmd.Flags().Int64Var(&opts.restartScale, "restart-scale", 50, "restart scale/period, in failures")
	cmd.Flags().Int64Var(&opts.maxBranches, "max-branches", 0, "branch budget, 0 means unbounded")
	cmd.Flags().Int64Var(&opts.maxFailures, "max-failures", 0, "failure budget, 0 means unbounded")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "attach a SearchLog monitor")
	return cmd
}

func runSolve(opts *solveOptions) error {
	p, err := lookupProblem(opts.problem)
	if err != nil {
		return err
	}
	varStrat, err := parseVariableStrategy(opts.varStrategy)
	if err != nil {
		return err
	}
	valStrat, err := parseValueStrategy(opts.valStrategy)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s := search.NewSolver(search.DefaultConfig(), logger)
	vars, objective, maximize := p.build(s, opts.size)
	for _, v := range vars {
		logger.Debug("initial domain", zap.String("var", v.Name()), zap.Int("min", v.Domain().Min()), zap.Int("max", v.Domain().Max()), zap.Int("size", v.Domain().Size()))
	}

	db, err := search.MakePhase(vars, varStrat, valStrat)
	if err != nil {
		return err
	}

	monitors := []search.SearchMonitor{}

	collector, err := makeCollector(opts.collector, vars, objective, maximize)
	if err != nil {
		return err
	}
	monitors = append(monitors, collector)

	if objective != nil {
		opt, err := search.NewOptimizeVar(maximize, objective, 1)
		if err != nil {
			return err
		}
		monitors = append(monitors, opt)
	}

	mh, err := makeMetaheuristic(s, opts.metaheuristic, vars, objective, maximize)
	if err != nil {
		return err
	}
	if mh != nil {
		monitors = append(monitors, mh)
	}

	restart, err := makeRestart(opts.restart, opts.restartScale)
	if err != nil {
		return err
	}
	if restart != nil {
		monitors = append(monitors, restart)
	}

	if opts.maxBranches > 0 || opts.maxFailures > 0 {
		monitors = append(monitors, search.NewRegularLimit(0, opts.maxBranches, opts.maxFailures, 0, false))
	}
	if opts.trace {
		monitors = append(monitors, search.NewSearchLog(logger, objective, 1000))
	}

	found := s.Solve(db, monitors...)

	fmt.Printf("run_id=%s problem=%s size=%d found=%v solutions=%d branches=%d failures=%d time=%s\n",
		s.RunID, opts.problem, opts.size, found, collectorSolutionCount(collector), s.Branches(), s.Failures(), s.WallTime())
	for i := 0; i < collectorSolutionCount(collector); i++ {
		fmt.Printf("  solution #%d: %s\n", i, formatSolution(collector, vars, i))
	}
	return nil
}

// collectorInterface is the minimal surface the solve command needs out
// of any of the four collector types, letting runSolve stay collector-
// agnostic past construction time.
type collectorInterface interface {
	search.SearchMonitor
	SolutionCount() int
	Solution(n int) *search.Assignment
}

func collectorSolutionCount(c collectorInterface) int { return c.SolutionCount() }

func formatSolution(c collectorInterface, vars []*search.IntVar, n int) string {
	sol := c.Solution(n)
	out := ""
	for i, v := range vars {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", v.Name(), sol.Value(v))
	}
	return out
}

func makeCollector(kind string, vars []*search.IntVar, objective *search.IntVar, maximize bool) (collectorInterface, error) {
	prototype := search.NewAssignment(vars...)
	switch kind {
	case "first":
		return search.NewFirstSolutionCollector(prototype, objective), nil
	case "all":
		return search.NewAllSolutionCollector(prototype, objective), nil
	case "last":
		return search.NewLastSolutionCollector(prototype, objective), nil
	case "best":
		if objective == nil {
			return nil, fmt.Errorf("--collector=best requires a problem with an objective")
		}
		return search.NewBestValueSolutionCollector(prototype, objective, maximize), nil
	default:
		return nil, fmt.Errorf("unknown collector %q (want one of: first, all, last, best)", kind)
	}
}

func makeMetaheuristic(s *search.Solver, kind string, vars []*search.IntVar, objective *search.IntVar, maximize bool) (search.SearchMonitor, error) {
	if kind == "" {
		return nil, nil
	}
	if objective == nil {
		return nil, fmt.Errorf("--metaheuristic=%s requires a problem with an objective (try --problem=minsum)", kind)
	}
	switch kind {
	case "tabu":
		return search.NewTabuSearch(vars, objective, maximize, 1, 10, 5, 1.0), nil
	case "annealing":
		return search.NewSimulatedAnnealing(objective, maximize, 1, 100.0), nil
	case "gls":
		cost := func(i, value int) int { return 1 }
		return s.NewGuidedLocalSearch(vars, nil, objective, maximize, 1, 1.0, cost, 16), nil
	default:
		return nil, fmt.Errorf("unknown metaheuristic %q (want one of: tabu, annealing, gls)", kind)
	}
}

func makeRestart(kind string, scale int64) (search.SearchMonitor, error) {
	if kind == "" {
		return nil, nil
	}
	switch kind {
	case "luby":
		return search.NewLubyRestart(scale)
	case "constant":
		return search.NewConstantRestart(scale), nil
	default:
		return nil, fmt.Errorf("unknown restart policy %q (want one of: luby, constant)", kind)
	}
}
