package bandit

import (
	"math/rand"
	"testing"
)

func TestParsePolicyKind(t *testing.T) {
	testCases := []struct {
		input    string
		expected PolicyKind
		ok       bool
	}{
		{"reward-inaction", RewardInaction, true},
		{" Reward-Penalty ", RewardPenalty, true},
		{"UCB", UCB, true},
		{"greedy", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		kind, err := ParsePolicyKind(tc.input)
		if (err == nil) != tc.ok {
			t.Errorf("%q: expected ok=%v, got error %v", tc.input, tc.ok, err)
			continue
		}

		if kind != tc.expected {
			t.Errorf("%q: expected %q, got %q", tc.input, tc.expected, kind)
		}
	}
}

func TestNewPolicy(t *testing.T) {
	params := DefaultParams()
	for _, kind := range PolicyKinds {
		p, err := NewPolicy(kind, params, 6, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}

		if p.Name() != string(kind) {
			t.Errorf("expected name %s, got %s", kind, p.Name())
		}

		if p.NumActions() != 6 {
			t.Errorf("%s: expected 6 actions, got %d", kind, p.NumActions())
		}

		if a := p.ChooseAction(); a < 0 || a >= 6 {
			t.Errorf("%s: action %d out of range", kind, a)
		}
	}

	params.PenaltyRate = 0
	if _, err := NewPolicy(RewardPenalty, params, 6, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for reward-penalty without a penalty rate")
	}

	if _, err := NewPolicy(PolicyKind("softmax"), params, 6, nil); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestParams_Validate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("expected defaults to be valid, got %v", err)
	}

	mutations := map[string]func(*Params){
		"zero arms":          func(p *Params) { p.ArmCount = 0 },
		"zero rounds":        func(p *Params) { p.RoundCount = 0 },
		"reward rate > 1":    func(p *Params) { p.RewardRate = 1.1 },
		"negative penalty":   func(p *Params) { p.PenaltyRate = -0.1 },
		"negative ucb rate":  func(p *Params) { p.ConfidenceRate = -1 },
		"negative log every": func(p *Params) { p.LogEvery = -1 },
		"unknown weighting":  func(p *Params) { p.Weighting = Weighting(9) },
	}

	for name, mutate := range mutations {
		p := DefaultParams()
		mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		} else if _, ok := err.(*ConfigError); !ok {
			t.Errorf("%s: expected *ConfigError, got %T", name, err)
		}
	}
}

func TestParseWeighting(t *testing.T) {
	for _, w := range []Weighting{WeightLinearized, WeightPerTrial} {
		parsed, err := ParseWeighting(w.String())
		if err != nil || parsed != w {
			t.Errorf("expected %v, got %v (%v)", w, parsed, err)
		}
	}

	if _, err := ParseWeighting("geometric"); err == nil {
		t.Error("expected error for unknown weighting")
	}
}
