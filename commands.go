package main

import (
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/mdpeval/config"
)

var (
	configPath   string
	instancePath string
	outPath      string
	discount     float64
	iterations   int
	workers      int
	episodes     int
	cutoff       int
	returnsPath  string
	exact        bool

	rootCmd = &cobra.Command{
		Use:   "mdpeval",
		Short: "Generate random finite MDPs and evaluate deterministic policies on them",
		Long: `mdpeval generates random finite MDPs together with a random
deterministic policy, evaluates the policy by iterated Bellman backups,
and extrapolates the resulting values to state-action values.`,
		SilenceUsage: true,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a random MDP and policy and save them to disk",
		RunE:  runGenerate, // Defined in cmd_generate.go
	}

	evaluateCmd = &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a saved policy and print its state and state-action values",
		RunE:  runEvaluate, // Defined in cmd_evaluate.go
	}

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Estimate a saved policy's values by Monte-Carlo simulation",
		RunE:  runSimulate, // Defined in cmd_simulate.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"JSON or YAML configuration file")

	generateCmd.Flags().StringVarP(&outPath, "out", "o", "instance.gob",
		"file to save the generated instance to")

	for _, cmd := range []*cobra.Command{evaluateCmd, simulateCmd} {
		cmd.Flags().StringVarP(&instancePath, "in", "i", "instance.gob",
			"instance file created by generate")
		cmd.Flags().Float64Var(&discount, "discount", config.Default().Discount,
			"discount factor in [0, 1)")
	}

	evaluateCmd.Flags().IntVar(&iterations, "iterations",
		config.Default().Iterations, "number of Bellman backup sweeps")
	evaluateCmd.Flags().IntVar(&workers, "workers", config.Default().Workers,
		"goroutines used per sweep")
	evaluateCmd.Flags().BoolVar(&exact, "exact", false,
		"also solve the Bellman equations exactly")

	simulateCmd.Flags().IntVar(&episodes, "episodes", config.Default().Episodes,
		"number of episodes to simulate")
	simulateCmd.Flags().IntVar(&cutoff, "cutoff",
		config.Default().EpisodeCutoff, "number of steps per episode")
	simulateCmd.Flags().StringVar(&returnsPath, "returns", "",
		"file to save the simulated returns to")

	rootCmd.AddCommand(generateCmd, evaluateCmd, simulateCmd)
}

// loadConfig loads the configuration file if one was given and
// overrides its fields with the flags set on cmd
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("discount") {
		cfg.Discount = discount
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("episodes") {
		cfg.Episodes = episodes
	}
	if flags.Changed("cutoff") {
		cfg.EpisodeCutoff = cutoff
	}

	return cfg, cfg.Validate()
}
