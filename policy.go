package bandit

import (
	"math/rand"
	"strings"
)

// PolicyKind names one of the supported policy variants.
type PolicyKind string

const (
	RewardInaction PolicyKind = "reward-inaction"
	RewardPenalty  PolicyKind = "reward-penalty"
	UCB            PolicyKind = "ucb"
)

// PolicyKinds lists every supported variant.
var PolicyKinds = []PolicyKind{RewardInaction, RewardPenalty, UCB}

// ParsePolicyKind returns the PolicyKind with the given name.
func ParsePolicyKind(s string) (PolicyKind, error) {
	kind := PolicyKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range PolicyKinds {
		if kind == k {
			return k, nil
		}
	}

	return "", &ConfigError{Field: "policy", Value: s, Reason: "unrecognized policy variant"}
}

// NewPolicy constructs a fresh policy of the given kind for an environment
// with nActions actions. Stochastic policies draw from rng.
func NewPolicy(kind PolicyKind, params Params, nActions int, rng *rand.Rand) (Policy, error) {
	switch kind {
	case RewardInaction:
		return NewLinearAutomaton(nActions, params.RewardRate, 0, rng)
	case RewardPenalty:
		if params.PenaltyRate == 0 {
			return nil, &ConfigError{Field: "penalty rate", Value: params.PenaltyRate,
				Reason: "reward-penalty requires a positive penalty rate"}
		}

		return NewLinearAutomaton(nActions, params.RewardRate, params.PenaltyRate, rng)
	case UCB:
		return NewConfidenceBound(nActions, params.ConfidenceRate)
	}

	return nil, &ConfigError{Field: "policy", Value: string(kind), Reason: "unrecognized policy variant"}
}
