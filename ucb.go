package bandit

import (
	"math"
)

type armEstimate struct {
	observedReward float64
	pulls          int
}

// ConfidenceBound selects actions by an upper confidence bound on their
// observed reward: observed + c*sqrt(log(N)/n), where N is the total number of
// pulls and n the pulls of that action.
//
// Reward averages are folded in with the total pull count from before the
// current pull, so the first two pulls both count as sample 1.
type ConfidenceBound struct {
	record

	confidenceRate float64
	arms           []armEstimate
	totalPulls     int
}

// NewConfidenceBound returns a ConfidenceBound over nActions actions.
// The selection rule is deterministic so no random source is needed.
func NewConfidenceBound(nActions int, confidenceRate float64) (*ConfidenceBound, error) {
	if nActions < 1 {
		return nil, &ConfigError{Field: "arm count", Value: nActions, Reason: "must be positive"}
	}

	if confidenceRate < 0 {
		return nil, &ConfigError{Field: "confidence rate", Value: confidenceRate, Reason: "must not be negative"}
	}

	return &ConfidenceBound{
		record:         newRecord(nActions),
		confidenceRate: confidenceRate,
		arms:           make([]armEstimate, nActions),
	}, nil
}

// Name implements Policy.
func (cb *ConfidenceBound) Name() string {
	return string(UCB)
}

// NumActions implements Policy.
func (cb *ConfidenceBound) NumActions() int {
	return len(cb.arms)
}

// Score returns the optimistic value estimate of action i.
func (cb *ConfidenceBound) Score(i int) float64 {
	arm := cb.arms[i]
	n := arm.pulls
	if n < 1 {
		n = 1
	}

	bonus := math.Sqrt(adjustedLog(cb.totalPulls) / float64(n))
	return arm.observedReward + cb.confidenceRate*bonus
}

// ChooseAction implements Policy. Ties go to the lowest index.
func (cb *ConfidenceBound) ChooseAction() int {
	best := 0
	bestScore := math.Inf(-1)
	for i := range cb.arms {
		if score := cb.Score(i); score > bestScore {
			best = i
			bestScore = score
		}
	}

	return best
}

// Update implements Policy.
func (cb *ConfidenceBound) Update(action int, reward float64, rank int) error {
	if err := checkIndex(action, len(cb.arms)); err != nil {
		return err
	}

	if err := checkIndex(rank, len(cb.arms)); err != nil {
		return err
	}

	arm := &cb.arms[action]
	arm.observedReward = RunningAverage(arm.observedReward, reward, cb.totalPulls)
	arm.pulls++
	cb.observe(reward, cb.totalPulls, rank)
	cb.totalPulls++
	return nil
}

// ObservedReward returns the reward estimate and pull count of action i.
func (cb *ConfidenceBound) ObservedReward(i int) (float64, int) {
	return cb.arms[i].observedReward, cb.arms[i].pulls
}

// adjustedLog is the natural log, with log(0) defined as 1 so that the
// exploration bonus is non-zero before the first pull.
func adjustedLog(n int) float64 {
	if n == 0 {
		return 1
	}

	return math.Log(float64(n))
}
