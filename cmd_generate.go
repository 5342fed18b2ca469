package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/mdpeval/mdp"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	instance := mdp.NewInstance(cfg.NStates, cfg.NActions, cfg.NOutcomes,
		cfg.Seed)
	if err := instance.Save(outPath); err != nil {
		return err
	}

	log.Printf("Generated MDP with %d states, %d actions, %d outcomes "+
		"(seed %d) to %s", cfg.NStates, cfg.NActions, cfg.NOutcomes,
		cfg.Seed, outPath)
	return nil
}
