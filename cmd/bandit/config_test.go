package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/go-bandit"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bandit.yaml", `
arms: 4
rounds: 200
penalty_rate: 0.05
weighting: per-trial
policies: [ucb, reward-penalty]
`)

	cfg := defaultConfig()
	require.NoError(t, loadConfig(path, &cfg))
	assert.Equal(t, 4, cfg.Arms)
	assert.Equal(t, 200, cfg.Rounds)
	assert.Equal(t, 0.05, cfg.PenaltyRate)
	assert.Equal(t, []string{"ucb", "reward-penalty"}, cfg.Policies)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, bandit.DefaultParams().TrialCount, cfg.Trials)
	assert.Equal(t, "leveldb", cfg.StoreBackend)

	params, err := cfg.params()
	require.NoError(t, err)
	assert.Equal(t, bandit.WeightPerTrial, params.Weighting)

	kinds, err := cfg.policyKinds()
	require.NoError(t, err)
	assert.Equal(t, []bandit.PolicyKind{bandit.UCB, bandit.RewardPenalty}, kinds)
}

func TestLoadConfig_UnknownField(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bandit.yaml", "armz: 4\n")
	cfg := defaultConfig()
	assert.Error(t, loadConfig(path, &cfg))
}

func TestConfig_Invalid(t *testing.T) {
	cfg := defaultConfig()
	cfg.Weighting = "geometric"
	_, err := cfg.params()
	assert.Error(t, err)

	cfg = defaultConfig()
	cfg.Arms = 0
	_, err = cfg.params()
	assert.IsType(t, &bandit.ConfigError{}, err)

	cfg = defaultConfig()
	cfg.Policies = []string{"thompson"}
	_, err = cfg.policyKinds()
	assert.Error(t, err)

	_, err = openStore("bolt", filepath.Join(t.TempDir(), "db"))
	assert.IsType(t, &bandit.ConfigError{}, err)
}

var savedRun = regexp.MustCompile(`Saved run (\S+) to`)

func TestRunAndShow(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "results.ldb")
	cfgPath := writeFile(t, dir, "bandit.yaml", "arms: 3\nrounds: 500\ntrials: 4\nseed: 5\n")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{
		"run", "--no-color", "--config", cfgPath,
		"--rounds", "30", "--policy", "ucb,reward-inaction",
		"--store", store, "-o", filepath.Join(dir, "charts", "run.html"),
		"--show-trial-plots",
	})
	require.NoError(t, root.Execute())
	assert.FileExists(t, filepath.Join(dir, "charts", "run.html"))

	m := savedRun.FindStringSubmatch(out.String())
	require.Len(t, m, 2, out.String())
	runID := m[1]

	cfg := defaultConfig()
	cfg.Store = store
	aggs, err := loadResults(cfg, runID)
	require.NoError(t, err)
	require.Len(t, aggs, 2)

	// Results are listed in key order.
	assert.Equal(t, "reward-inaction", aggs[0].Name())
	assert.Equal(t, "ucb", aggs[1].Name())
	for _, agg := range aggs {
		assert.Equal(t, 4, agg.NumTrials())
		// --rounds overrides the config file.
		assert.Len(t, agg.ValueCurve().Values, 30)
	}

	out.Reset()
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{
		"show", runID, "--no-color", "--store", store,
		"-o", filepath.Join(dir, "charts", "show.html"),
	})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "reward-inaction")
	assert.FileExists(t, filepath.Join(dir, "charts", "show.html"))

	_, err = loadResults(cfg, "no-such-run")
	assert.Equal(t, bandit.ErrResultNotFound, errors.Cause(err))
}

func TestAutomatonCommandIgnoresConfiguredPolicies(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "bandit.yaml", "policies: [ucb]\n")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{
		"automaton", "--no-color", "--config", cfgPath,
		"--arms", "2", "--rounds", "10", "--trials", "1", "--seed", "1", "-o", "",
	})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "reward-inaction")
	assert.Contains(t, out.String(), "reward-penalty")
	assert.NotContains(t, out.String(), "ucb")
}
