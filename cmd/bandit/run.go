package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/timpalpant/go-bandit"
	"github.com/timpalpant/go-bandit/plot"
)

// newExperimentCmd returns a subcommand that runs the given policies.
// Only the "run" command lets the policy set be chosen.
func newExperimentCmd(g *globalOptions, name, short string, policies []string) *cobra.Command {
	flagged := defaultConfig()
	flagged.Policies = policies
	selectable := name == "run"

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, g, flagged)
			if err != nil {
				return err
			}

			if !selectable {
				cfg.Policies = policies
			}

			au := aurora.NewAurora(!g.noColor)
			return runExperiment(cmd.OutOrStdout(), au, cfg)
		},
	}

	addExperimentFlags(cmd.Flags(), &flagged)
	if selectable {
		cmd.Flags().StringSliceVar(&flagged.Policies, "policy", flagged.Policies, "policies to run")
	}

	return cmd
}

func runExperiment(w io.Writer, au aurora.Aurora, cfg config) error {
	params, err := cfg.params()
	if err != nil {
		return err
	}

	kinds, err := cfg.policyKinds()
	if err != nil {
		return err
	}

	exp, err := bandit.NewExperiment(params, kinds...)
	if err != nil {
		return err
	}

	var trialCharts []plot.Chart
	if cfg.ShowTrialPlots {
		exp.OnTrial(func(trial int, env *bandit.Environment, traces []bandit.Trace) {
			trialCharts = append(trialCharts, plot.TrialChart(trial, env, traces))
		})
	}

	if err := exp.Run(); err != nil {
		return err
	}

	aggs := exp.Aggregators()
	printSummary(w, au, aggs)

	if cfg.Store != "" {
		runID := uuid.New().String()
		if err := saveResults(cfg, runID, aggs); err != nil {
			return err
		}

		fmt.Fprintf(w, "Saved run %s to %s\n", au.Bold(runID), cfg.Store)
	}

	if cfg.Output == "" {
		return nil
	}

	charts := append(plot.ExperimentCharts(aggs), trialCharts...)
	if err := plot.RenderFile(cfg.Output, charts...); err != nil {
		return errors.Wrapf(err, "writing %s", cfg.Output)
	}

	fmt.Fprintf(w, "Wrote %d charts to %s\n", len(charts), au.Cyan(cfg.Output))
	return nil
}

func saveResults(cfg config, runID string, aggs []*bandit.Aggregator) error {
	store, err := openStore(cfg.StoreBackend, cfg.Store)
	if err != nil {
		return err
	}

	for _, agg := range aggs {
		if err := store.Put(runID, agg); err != nil {
			store.Close()
			return errors.Wrapf(err, "saving %s", agg.Name())
		}
	}

	return store.Close()
}

// printSummary reports, for each policy, the final normalized value and
// the final fraction of optimal pulls.
func printSummary(w io.Writer, au aurora.Aurora, aggs []*bandit.Aggregator) {
	for _, agg := range aggs {
		value := last(agg.ValueCurve().Values)
		optimal := last(agg.PullCurves()[0].Values)
		fmt.Fprintf(w, "%s trials=%d  value=%s  optimal pulls=%s\n",
			au.Bold(fmt.Sprintf("%-16s", agg.Name())), agg.NumTrials(),
			colorFraction(au, value), colorFraction(au, optimal))
	}
}

func colorFraction(au aurora.Aurora, x float64) aurora.Value {
	s := fmt.Sprintf("%6.2f%%", 100*x)
	switch {
	case x >= 0.9:
		return au.Green(s)
	case x >= 0.5:
		return au.Yellow(s)
	default:
		return au.Red(s)
	}
}

func last(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return v[len(v)-1]
}
