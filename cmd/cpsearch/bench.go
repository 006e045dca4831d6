package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/cpsearch/pkg/search"
)

type benchOptions struct {
	problem     string
	size        int
	varStrategy string
	valStrategy string
	trials      int
}

func newBenchCmd() *cobra.Command {
	opts := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "run a scenario repeatedly and report branch/failure statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts)
		},
	}
	cmd.Flags().StringVar(&opts.problem, "problem", "nqueens", "problem: nqueens, pigeonhole, minsum")
	cmd.Flags().IntVar(&opts.size, "size", 8, "problem size, meaning depends on --problem")
	cmd.Flags().StringVar(&opts.varStrategy, "var-strategy", "first-unbound", "variable selection strategy")
	cmd.Flags().StringVar(&opts.valStrategy, "val-strategy", "min", "value selection strategy")
	cmd.Flags().IntVar(&opts.trials, "trials", 10, "number of fresh-solver trials to run")
	return cmd
}

func runBench(opts *benchOptions) error {
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
	if opts.trials < 1 {
		return fmt.Errorf("--trials must be >= 1")
	}

	var totalBranches, totalFailures int64
	var totalTime time.Duration
	found := 0

	for i := 0; i < opts.trials; i++ {
		s := search.NewSolver(search.Config{RandSeed: uint64(i + 1)}, nil)
		vars, _, _ := p.build(s, opts.size)
		db, err := search.MakePhase(vars, varStrat, valStrat)
		if err != nil {
			return err
		}
		collector := search.NewFirstSolutionCollector(search.NewAssignment(vars...), nil)
		ok := s.Solve(db, collector)
		if ok {
			found++
		}
		totalBranches += s.Branches()
		totalFailures += s.Failures()
		totalTime += s.WallTime()
	}

	fmt.Printf("problem=%s size=%d trials=%d found=%d/%d avg-branches=%.1f avg-failures=%.1f avg-time=%s\n",
		opts.problem, opts.size, opts.trials, found, opts.trials,
		float64(totalBranches)/float64(opts.trials), float64(totalFailures)/float64(opts.trials),
		totalTime/time.Duration(opts.trials))
	return nil
}
