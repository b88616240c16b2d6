package bandit

// Weighting selects the count argument used when folding one trial's
// round-j value into the cross-trial curve at position j.
type Weighting int

const (
	// WeightLinearized treats round j of trial i as sample number
	// roundCount*i + j + 1 of one long running sequence.
	WeightLinearized Weighting = iota
	// WeightPerTrial treats round j of trial i as sample number i + 1,
	// which yields the plain per-round mean across trials.
	WeightPerTrial
)

func (w Weighting) String() string {
	switch w {
	case WeightLinearized:
		return "linearized"
	case WeightPerTrial:
		return "per-trial"
	default:
		return "unknown"
	}
}

// ParseWeighting returns the Weighting with the given name.
func ParseWeighting(s string) (Weighting, error) {
	switch s {
	case "", "linearized":
		return WeightLinearized, nil
	case "per-trial":
		return WeightPerTrial, nil
	}

	return 0, &ConfigError{Field: "weighting", Value: s, Reason: "expected linearized or per-trial"}
}

// Params are the configuration options for a bandit experiment.
// DefaultParams returns the values used by the CLI when nothing is set.
type Params struct {
	ArmCount   int   // Number of actions in each Environment.
	RoundCount int   // Rounds per trial.
	TrialCount int   // Independent trials, each with a fresh Environment.
	Seed       int64 // Master seed. 0 draws one from process entropy.

	RewardRate     float64 // Learning automaton step toward a rewarded action.
	PenaltyRate    float64 // Learning automaton step away from a failed action.
	ConfidenceRate float64 // Exploration coefficient for confidence-bound selection.

	BinaryReward bool // Every arm pays 1 instead of a value in [1, 10].
	LogEvery     int  // Progress logging interval in rounds. 0 disables.
	Weighting    Weighting
}

// DefaultParams returns the defaults of the original simulation scripts.
func DefaultParams() Params {
	return Params{
		ArmCount:       10,
		RoundCount:     5000,
		TrialCount:     100,
		RewardRate:     0.01,
		PenaltyRate:    0.01,
		ConfidenceRate: 0.01,
		BinaryReward:   true,
		LogEvery:       100,
		Weighting:      WeightLinearized,
	}
}

// Validate checks that p describes a runnable experiment.
func (p Params) Validate() error {
	if p.ArmCount < 1 {
		return &ConfigError{Field: "arm count", Value: p.ArmCount, Reason: "must be positive"}
	}

	if p.RoundCount < 1 {
		return &ConfigError{Field: "round count", Value: p.RoundCount, Reason: "must be positive"}
	}

	if p.TrialCount < 1 {
		return &ConfigError{Field: "trial count", Value: p.TrialCount, Reason: "must be positive"}
	}

	if err := checkRate("reward rate", p.RewardRate); err != nil {
		return err
	}

	if err := checkRate("penalty rate", p.PenaltyRate); err != nil {
		return err
	}

	if p.ConfidenceRate < 0 {
		return &ConfigError{Field: "confidence rate", Value: p.ConfidenceRate, Reason: "must not be negative"}
	}

	if p.LogEvery < 0 {
		return &ConfigError{Field: "log interval", Value: p.LogEvery, Reason: "must not be negative"}
	}

	if p.Weighting != WeightLinearized && p.Weighting != WeightPerTrial {
		return &ConfigError{Field: "weighting", Value: int(p.Weighting), Reason: "unknown weighting"}
	}

	return nil
}

func checkRate(field string, rate float64) error {
	if rate < 0 || rate > 1 {
		return &ConfigError{Field: field, Value: rate, Reason: "must be in [0, 1]"}
	}

	return nil
}
