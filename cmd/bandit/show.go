package main

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/timpalpant/go-bandit"
	"github.com/timpalpant/go-bandit/plot"
)

func newShowCmd(g *globalOptions) *cobra.Command {
	flagged := defaultConfig()
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Summarize and re-plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, g, flagged)
			if err != nil {
				return err
			}

			if cfg.Store == "" {
				return &bandit.ConfigError{Field: "store", Value: "", Reason: "a result database is required"}
			}

			aggs, err := loadResults(cfg, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			au := aurora.NewAurora(!g.noColor)
			printSummary(w, au, aggs)
			if cfg.Output == "" {
				return nil
			}

			if err := plot.RenderFile(cfg.Output, plot.ExperimentCharts(aggs)...); err != nil {
				return errors.Wrapf(err, "writing %s", cfg.Output)
			}

			fmt.Fprintf(w, "Wrote charts to %s\n", au.Cyan(cfg.Output))
			return nil
		},
	}

	addStoreFlags(cmd.Flags(), &flagged)
	cmd.Flags().StringVarP(&flagged.Output, "output", "o", flagged.Output, "HTML file to write charts to")
	return cmd
}

func loadResults(cfg config, runID string) ([]*bandit.Aggregator, error) {
	store, err := openStore(cfg.StoreBackend, cfg.Store)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	policies, err := store.Policies(runID)
	if err != nil {
		return nil, err
	}

	if len(policies) == 0 {
		return nil, errors.Wrapf(bandit.ErrResultNotFound, "run %s", runID)
	}

	aggs := make([]*bandit.Aggregator, len(policies))
	for i, policy := range policies {
		aggs[i], err = store.Get(runID, policy)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s/%s", runID, policy)
		}
	}

	return aggs, nil
}
