package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/go-bandit"
)

// config is the on-disk and command-line form of an experiment.
type config struct {
	Arms           int      `yaml:"arms"`
	Rounds         int      `yaml:"rounds"`
	Trials         int      `yaml:"trials"`
	Seed           int64    `yaml:"seed"`
	RewardRate     float64  `yaml:"reward_rate"`
	PenaltyRate    float64  `yaml:"penalty_rate"`
	ConfidenceRate float64  `yaml:"confidence_rate"`
	Binary         bool     `yaml:"binary"`
	LogEvery       int      `yaml:"log_every"`
	Weighting      string   `yaml:"weighting"`
	Policies       []string `yaml:"policies"`

	Output         string `yaml:"output"`
	ShowTrialPlots bool   `yaml:"show_trial_plots"`
	Store          string `yaml:"store"`
	StoreBackend   string `yaml:"store_backend"`
}

func defaultConfig() config {
	p := bandit.DefaultParams()
	return config{
		Arms:           p.ArmCount,
		Rounds:         p.RoundCount,
		Trials:         p.TrialCount,
		Seed:           p.Seed,
		RewardRate:     p.RewardRate,
		PenaltyRate:    p.PenaltyRate,
		ConfidenceRate: p.ConfidenceRate,
		Binary:         p.BinaryReward,
		LogEvery:       p.LogEvery,
		Weighting:      p.Weighting.String(),
		Output:         "charts/bandit.html",
		StoreBackend:   "leveldb",
	}
}

// loadConfig decodes the YAML file at path over cfg. Keys missing from the
// file keep their current values.
func loadConfig(path string, cfg *config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	return nil
}

func (c config) params() (bandit.Params, error) {
	weighting, err := bandit.ParseWeighting(c.Weighting)
	if err != nil {
		return bandit.Params{}, err
	}

	p := bandit.Params{
		ArmCount:       c.Arms,
		RoundCount:     c.Rounds,
		TrialCount:     c.Trials,
		Seed:           c.Seed,
		RewardRate:     c.RewardRate,
		PenaltyRate:    c.PenaltyRate,
		ConfidenceRate: c.ConfidenceRate,
		BinaryReward:   c.Binary,
		LogEvery:       c.LogEvery,
		Weighting:      weighting,
	}

	return p, p.Validate()
}

func (c config) policyKinds() ([]bandit.PolicyKind, error) {
	kinds := make([]bandit.PolicyKind, len(c.Policies))
	for i, name := range c.Policies {
		kind, err := bandit.ParsePolicyKind(name)
		if err != nil {
			return nil, err
		}

		kinds[i] = kind
	}

	return kinds, nil
}
