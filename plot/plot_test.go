package plot

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/go-bandit"
)

func runExperiment(t *testing.T) *bandit.Experiment {
	params := bandit.DefaultParams()
	params.ArmCount = 3
	params.RoundCount = 20
	params.TrialCount = 2
	params.Seed = 3
	params.LogEvery = 0

	exp, err := bandit.NewExperiment(params, bandit.RewardInaction, bandit.UCB)
	require.NoError(t, err)
	require.NoError(t, exp.Run())
	return exp
}

func TestExperimentCharts(t *testing.T) {
	exp := runExperiment(t)
	charts := ExperimentCharts(exp.Aggregators())

	// Value, optimal pulls, one by-rank chart per policy, and rank values.
	require.Len(t, charts, 5)
	assert.Equal(t, "Normalized Optimal Value", charts[0].Title)
	assert.Equal(t, "Pull Fraction by Rank (ucb)", charts[3].Title)
	assert.Equal(t, "Average Value by Rank", charts[4].Title)

	value := charts[0]
	require.Len(t, value.Curves, 3)
	assert.Equal(t, "optimal", value.Curves[0].Label)
	for _, v := range value.Curves[0].Values {
		assert.Equal(t, 1.0, v)
	}

	assert.Len(t, charts[1].Curves, 2)
	assert.Len(t, charts[2].Curves, 3)
	assert.Nil(t, ExperimentCharts(nil))
}

func TestTrialChart(t *testing.T) {
	env, err := bandit.NewEnvironment(3, true, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	traces := []bandit.Trace{{Policy: "ucb", Rounds: []bandit.Round{
		{AverageReward: 1}, {AverageReward: 0.5},
	}}}

	chart := TrialChart(4, env, traces)
	assert.Equal(t, "Trial 5", chart.Title)
	require.Len(t, chart.Curves, 2)
	assert.Equal(t, []float64{env.OptimalValue(), env.OptimalValue()}, chart.Curves[0].Values)
	assert.Equal(t, []float64{1, 0.5}, chart.Curves[1].Values)
}

func TestRender(t *testing.T) {
	exp := runExperiment(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ExperimentCharts(exp.Aggregators())...))
	assert.Contains(t, buf.String(), "Normalized Optimal Pulls")

	assert.Error(t, Render(&buf))
	assert.Error(t, Render(&buf, Chart{Title: "empty"}))

	path := filepath.Join(t.TempDir(), "nested", "bandit.html")
	require.NoError(t, RenderFile(path, ExperimentCharts(exp.Aggregators())...))
	assert.FileExists(t, path)
}
