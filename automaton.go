package bandit

import (
	"math"
	"math/rand"

	"github.com/timpalpant/go-bandit/internal/f64"
	"github.com/timpalpant/go-bandit/internal/sampling"
)

// Tolerance on the sum of a probability vector after an update.
const simplexTol = 1e-9

// LinearAutomaton is a learning automaton that plays actions according to a
// probability vector and shifts probability mass linearly after each reward.
//
// With a zero penalty rate it is the linear reward-inaction scheme (L_R-I):
// failures leave the vector unchanged. With a positive penalty rate it is the
// linear reward-penalty scheme (L_R-P).
type LinearAutomaton struct {
	record

	rng         *rand.Rand
	p           []float64
	rewardRate  float64
	penaltyRate float64
	totalPulls  int
}

// NewLinearAutomaton returns a LinearAutomaton over nActions actions with a
// uniform initial distribution. Actions are sampled with rng.
func NewLinearAutomaton(nActions int, rewardRate, penaltyRate float64, rng *rand.Rand) (*LinearAutomaton, error) {
	if nActions < 1 {
		return nil, &ConfigError{Field: "arm count", Value: nActions, Reason: "must be positive"}
	}

	if err := checkRate("reward rate", rewardRate); err != nil {
		return nil, err
	}

	if err := checkRate("penalty rate", penaltyRate); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = NewRand(0)
	}

	return &LinearAutomaton{
		record:      newRecord(nActions),
		rng:         rng,
		p:           f64.Uniform(nActions),
		rewardRate:  rewardRate,
		penaltyRate: penaltyRate,
	}, nil
}

// Name implements Policy.
func (la *LinearAutomaton) Name() string {
	if la.penaltyRate > 0 {
		return string(RewardPenalty)
	}

	return string(RewardInaction)
}

// NumActions implements Policy.
func (la *LinearAutomaton) NumActions() int {
	return len(la.p)
}

// Probabilities returns a copy of the current action probabilities.
func (la *LinearAutomaton) Probabilities() []float64 {
	return append([]float64(nil), la.p...)
}

// ChooseAction implements Policy by sampling from the probability vector.
func (la *LinearAutomaton) ChooseAction() int {
	return sampling.SampleOne(la.p, la.rng.Float64())
}

// Update implements Policy. Any positive reward counts as a success.
func (la *LinearAutomaton) Update(action int, reward float64, rank int) error {
	if err := checkIndex(action, len(la.p)); err != nil {
		return err
	}

	if err := checkIndex(rank, len(la.p)); err != nil {
		return err
	}

	la.totalPulls++
	success := 0.0
	if reward > 0 {
		success = 1.0
	}

	la.observe(success, la.totalPulls, rank)
	if reward > 0 {
		la.reward(action)
	} else if la.penaltyRate > 0 {
		la.penalize(action)
	}

	if total := f64.Sum(la.p); math.Abs(total-1.0) > simplexTol {
		return &DegenerateProbabilityError{Sum: total}
	}

	return nil
}

func (la *LinearAutomaton) reward(action int) {
	a := la.rewardRate
	pChosen := la.p[action]
	f64.ScalUnitary(1-a, la.p)
	la.p[action] = pChosen + a*(1-pChosen)
}

func (la *LinearAutomaton) penalize(action int) {
	n := len(la.p)
	if n < 2 {
		return // All mass must stay on the only action.
	}

	b := la.penaltyRate
	pChosen := la.p[action]
	f64.AxpyConst(b/float64(n-1), 1-b, la.p)
	la.p[action] = (1 - b) * pChosen
}
