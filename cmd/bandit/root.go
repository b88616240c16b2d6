package main

import (
	"flag"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	configPath string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var g globalOptions
	root := &cobra.Command{
		Use:   "bandit",
		Short: "Run multi-armed bandit experiments",
		Long: `bandit runs learning-automaton and confidence-bound policies against many
randomly generated multi-armed bandits and plots the averaged learning curves.

Examples:
  bandit automaton --trials 100 --rounds 5000      # L_R-I vs L_R-P
  bandit ucb --confidence-rate 0.5                 # upper confidence bound
  bandit run --policy ucb,reward-penalty --store results.ldb
  bandit show <run-id> --store results.ldb         # re-plot a stored run`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML experiment config; flags override its values")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newExperimentCmd(&g, "automaton", "Compare linear reward-inaction and reward-penalty automata",
			[]string{"reward-inaction", "reward-penalty"}),
		newExperimentCmd(&g, "ucb", "Run upper-confidence-bound action selection",
			[]string{"ucb"}),
		newExperimentCmd(&g, "run", "Run any combination of policies",
			[]string{"reward-inaction", "reward-penalty", "ucb"}),
		newShowCmd(&g),
	)

	return root
}

// addExperimentFlags binds the experiment flags to cfg, using its current
// values as defaults.
func addExperimentFlags(fs *pflag.FlagSet, cfg *config) {
	fs.IntVar(&cfg.Arms, "arms", cfg.Arms, "number of arms per bandit")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "rounds per trial")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of independent trials")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "master random seed (0 = time based)")
	fs.Float64Var(&cfg.RewardRate, "reward-rate", cfg.RewardRate, "automaton reward step")
	fs.Float64Var(&cfg.PenaltyRate, "penalty-rate", cfg.PenaltyRate, "automaton penalty step")
	fs.Float64Var(&cfg.ConfidenceRate, "confidence-rate", cfg.ConfidenceRate, "confidence-bound exploration coefficient")
	fs.BoolVar(&cfg.Binary, "binary", cfg.Binary, "every arm pays 1 (otherwise 1-10)")
	fs.IntVar(&cfg.LogEvery, "log-every", cfg.LogEvery, "log progress every N rounds at -v=1 (0 = never)")
	fs.StringVar(&cfg.Weighting, "weighting", cfg.Weighting, "cross-trial weighting: linearized or per-trial")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "HTML file to write charts to")
	fs.BoolVar(&cfg.ShowTrialPlots, "show-trial-plots", cfg.ShowTrialPlots, "also chart every individual trial")
	addStoreFlags(fs, cfg)
}

func addStoreFlags(fs *pflag.FlagSet, cfg *config) {
	fs.StringVar(&cfg.Store, "store", cfg.Store, "database path for saving results")
	fs.StringVar(&cfg.StoreBackend, "store-backend", cfg.StoreBackend, "result database: leveldb or rocksdb")
}

// resolveConfig layers the defaults, the config file, and the flags that
// were explicitly set on cmd, in that order.
func resolveConfig(cmd *cobra.Command, g *globalOptions, flagged config) (config, error) {
	cfg := defaultConfig()
	cfg.Policies = flagged.Policies
	if g.configPath != "" {
		if err := loadConfig(g.configPath, &cfg); err != nil {
			return config{}, err
		}
	}

	cmd.Flags().Visit(func(f *pflag.Flag) {
		applyFlag(&cfg, flagged, f.Name)
	})

	return cfg, nil
}

func applyFlag(cfg *config, flagged config, name string) {
	switch name {
	case "arms":
		cfg.Arms = flagged.Arms
	case "rounds":
		cfg.Rounds = flagged.Rounds
	case "trials":
		cfg.Trials = flagged.Trials
	case "seed":
		cfg.Seed = flagged.Seed
	case "reward-rate":
		cfg.RewardRate = flagged.RewardRate
	case "penalty-rate":
		cfg.PenaltyRate = flagged.PenaltyRate
	case "confidence-rate":
		cfg.ConfidenceRate = flagged.ConfidenceRate
	case "binary":
		cfg.Binary = flagged.Binary
	case "log-every":
		cfg.LogEvery = flagged.LogEvery
	case "weighting":
		cfg.Weighting = flagged.Weighting
	case "policy":
		cfg.Policies = flagged.Policies
	case "output":
		cfg.Output = flagged.Output
	case "show-trial-plots":
		cfg.ShowTrialPlots = flagged.ShowTrialPlots
	case "store":
		cfg.Store = flagged.Store
	case "store-backend":
		cfg.StoreBackend = flagged.StoreBackend
	}
}
