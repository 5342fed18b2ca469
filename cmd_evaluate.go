package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/mdpeval/config"
	"github.com/samuelfneumann/mdpeval/mdp"
	"github.com/samuelfneumann/mdpeval/utils/matutils"
)

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	instance, err := mdp.Load(instancePath)
	if err != nil {
		return err
	}
	policy, err := instance.Policy()
	if err != nil {
		return err
	}

	v, q, err := evaluate(cmd, instance.MDP, policy, cfg)
	if err != nil {
		return err
	}
	log.Printf("Evaluated policy %v for %d sweeps with discount %v",
		instance.PolicyIndices, cfg.Iterations, cfg.Discount)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "V:\n%v\n", matutils.Format(v.T()))
	fmt.Fprintln(out, "Q:")
	for s := range q {
		row := mat.NewVecDense(len(q[s]), q[s])
		fmt.Fprintf(out, "%v\t(greedy: %d)\n", matutils.Format(row.T()),
			matutils.MaxVec(row))
	}

	if exact {
		solved, err := mdp.Solve(policy, cfg.Discount)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Exact V:\n%v\n", matutils.Format(solved.T()))
		fmt.Fprintf(out, "Max error: %v\n", matutils.MaxAbsDiff(v, solved))
	}
	return nil
}

// evaluate computes the values and extrapolated Q values of policy,
// concurrently when more than one worker is configured
func evaluate(cmd *cobra.Command, m mdp.MDP, policy mdp.Policy,
	cfg config.Config) (*mat.VecDense, mdp.QMatrix, error) {
	if cfg.Workers == 1 {
		v := mdp.Evaluate(policy, cfg.Discount, cfg.Iterations)
		q := mdp.Extrapolate(m, policy, cfg.Discount, cfg.Iterations)
		return v, q, nil
	}

	v, err := mdp.EvaluateConcurrent(cmd.Context(), policy, cfg.Discount,
		cfg.Iterations, cfg.Workers)
	if err != nil {
		return nil, nil, err
	}
	q, err := mdp.ExtrapolateConcurrent(cmd.Context(), m, policy,
		cfg.Discount, cfg.Iterations, cfg.Workers)
	if err != nil {
		return nil, nil, err
	}
	return v, q, nil
}
