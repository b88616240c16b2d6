package bandit

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Round is the outcome of one round for one policy.
type Round struct {
	Reward        float64 // Reward returned by the Environment.
	AverageReward float64 // Policy's running-average reward after the update.
	Rank          int     // Rank of the chosen action.
}

// Trace is the round-by-round history of one policy in one trial.
type Trace struct {
	Policy string
	Rounds []Round
}

// OptimalPulls returns how many of the first n rounds chose the rank 0 action.
func (t *Trace) OptimalPulls(n int) int {
	count := 0
	for _, r := range t.Rounds[:n] {
		if r.Rank == 0 {
			count++
		}
	}

	return count
}

// AverageRewards returns the running-average reward after each round.
func (t *Trace) AverageRewards() []float64 {
	result := make([]float64, len(t.Rounds))
	for i, r := range t.Rounds {
		result[i] = r.AverageReward
	}

	return result
}

// RunTrial plays every policy against env for nRounds rounds.
//
// In each round every policy first chooses an action, then the Environment is
// pulled once per policy in order, and finally each policy is updated with its
// own reward. Policies share the Environment but never a reward draw.
// Progress is logged every logEvery rounds (0 disables logging).
func RunTrial(env *Environment, policies []Policy, nRounds, logEvery int) ([]Trace, error) {
	if nRounds < 1 {
		return nil, &ConfigError{Field: "round count", Value: nRounds, Reason: "must be positive"}
	}

	if len(policies) == 0 {
		return nil, &ConfigError{Field: "policies", Value: 0, Reason: "at least one policy is required"}
	}

	for _, p := range policies {
		if p.NumActions() != env.NumArms() {
			return nil, &ConfigError{Field: "policy actions", Value: p.NumActions(),
				Reason: "must match environment arm count"}
		}
	}

	traces := make([]Trace, len(policies))
	for i, p := range policies {
		traces[i] = Trace{Policy: p.Name(), Rounds: make([]Round, 0, nRounds)}
	}

	optimalPulls := make([]int, len(policies))
	actions := make([]int, len(policies))
	rewards := make([]float64, len(policies))
	ranks := make([]int, len(policies))
	for j := 0; j < nRounds; j++ {
		for i, p := range policies {
			actions[i] = p.ChooseAction()
		}

		for i, p := range policies {
			reward, rank, err := env.Pull(actions[i])
			if err != nil {
				return nil, errors.Wrapf(err, "round %d: %s pulled invalid action", j, p.Name())
			}

			rewards[i], ranks[i] = reward, rank
		}

		for i, p := range policies {
			if err := p.Update(actions[i], rewards[i], ranks[i]); err != nil {
				return nil, errors.Wrapf(err, "round %d: updating %s", j, p.Name())
			}

			if ranks[i] == 0 {
				optimalPulls[i]++
			}

			traces[i].Rounds = append(traces[i].Rounds, Round{
				Reward:        rewards[i],
				AverageReward: p.AverageReward(),
				Rank:          ranks[i],
			})
		}

		if logEvery > 0 && j%logEvery == 0 {
			for i, p := range policies {
				glog.V(1).Infof("[round=%d] %s: average reward %.4f, optimal pulls %d",
					j, p.Name(), p.AverageReward(), optimalPulls[i])
			}
		}
	}

	return traces, nil
}
