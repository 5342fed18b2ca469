package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/mdpeval/agent/tabular"
	"github.com/samuelfneumann/mdpeval/environment"
	"github.com/samuelfneumann/mdpeval/environment/finitemdp"
	"github.com/samuelfneumann/mdpeval/experiment"
	"github.com/samuelfneumann/mdpeval/experiment/tracker"
	"github.com/samuelfneumann/mdpeval/mdp"
	"github.com/samuelfneumann/mdpeval/utils/matutils"
	"github.com/samuelfneumann/mdpeval/utils/progressbar"
)

func runSimulate(cmd *cobra.Command, args []string) error {
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

	starter, err := environment.NewUniformCategoricalStarter(len(instance.MDP),
		instance.Seed)
	if err != nil {
		return err
	}
	env, _, err := finitemdp.New(instance.MDP, starter,
		environment.NewStepLimit(cfg.EpisodeCutoff), cfg.Discount,
		instance.Seed)
	if err != nil {
		return err
	}
	agent, err := tabular.NewFixed(instance.PolicyIndices)
	if err != nil {
		return err
	}

	returns := tracker.NewStartReturn(returnsPath)
	e := experiment.NewOnline(env, agent,
		uint(cfg.Episodes*cfg.EpisodeCutoff), returns)

	bar := progressbar.NewManualProgressBar(cmd.ErrOrStderr(), 50,
		cfg.Episodes)
	for done := false; !done; {
		if done, err = e.RunEpisode(); err != nil {
			return err
		}
		bar.Increment()
		bar.Display()
	}
	bar.Done()
	log.Printf("Simulated %d steps on %v", e.Steps(), env)

	if returnsPath != "" {
		if err := e.Save(); err != nil {
			return err
		}
		log.Printf("Saved returns to %s", returnsPath)
	}

	estimates, counts := returns.Estimates(len(instance.MDP))

	// An episode truncated after cutoff steps has the expected return of
	// cutoff sweeps
	want := mdp.Evaluate(policy, cfg.Discount, cfg.EpisodeCutoff)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Monte-Carlo V:\n%v\n", matutils.Format(estimates.T()))
	fmt.Fprintf(out, "Episodes:\n%v\n", counts)
	fmt.Fprintf(out, "Evaluated V:\n%v\n", matutils.Format(want.T()))
	fmt.Fprintf(out, "Max error: %v\n", matutils.MaxAbsDiff(estimates, want))
	return nil
}
