package plot

import (
	"fmt"

	"github.com/timpalpant/go-bandit"
)

// ExperimentCharts builds the summary charts for the given aggregators:
// normalized value, optimal pull fraction, pull fraction by rank for each
// policy, and average expected value by rank.
func ExperimentCharts(aggs []*bandit.Aggregator) []Chart {
	if len(aggs) == 0 {
		return nil
	}

	value := Chart{
		Title:  "Normalized Optimal Value",
		XLabel: "Round",
		YLabel: "Optimal Value as Percentage",
	}

	optimalPulls := Chart{
		Title:  "Normalized Optimal Pulls",
		XLabel: "Round",
		YLabel: "Optimal Pull Percentage",
	}

	rankValues := Chart{
		Title:  "Average Value by Rank",
		XLabel: "Rank",
		YLabel: "Expected Value",
	}

	var byRank []Chart
	for i, agg := range aggs {
		curve := agg.ValueCurve()
		if i == 0 {
			value.Curves = append(value.Curves, constant("optimal", 1.0, len(curve.Values)))
		}

		value.Curves = append(value.Curves, curve)

		pulls := agg.PullCurves()
		optimalPulls.Curves = append(optimalPulls.Curves, bandit.Curve{
			Label:  agg.Name(),
			Values: pulls[0].Values,
		})

		byRank = append(byRank, Chart{
			Title:  fmt.Sprintf("Pull Fraction by Rank (%s)", agg.Name()),
			XLabel: "Round",
			YLabel: "Pull Percentage",
			Curves: pulls,
		})

		rankValues.Curves = append(rankValues.Curves, agg.RankValues())
	}

	result := []Chart{value, optimalPulls}
	result = append(result, byRank...)
	return append(result, rankValues)
}

// TrialChart builds the per-trial chart of each policy's running-average
// reward against the optimal expected value of env.
func TrialChart(trial int, env *bandit.Environment, traces []bandit.Trace) Chart {
	n := 0
	if len(traces) > 0 {
		n = len(traces[0].Rounds)
	}

	chart := Chart{
		Title:  fmt.Sprintf("Trial %d", trial+1),
		XLabel: "Round",
		YLabel: "Average Reward",
		Curves: []bandit.Curve{constant("optimal", env.OptimalValue(), n)},
	}

	for _, t := range traces {
		chart.Curves = append(chart.Curves, bandit.Curve{
			Label:  t.Policy,
			Values: t.AverageRewards(),
		})
	}

	return chart
}

func constant(label string, v float64, n int) bandit.Curve {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}

	return bandit.Curve{Label: label, Values: values}
}
