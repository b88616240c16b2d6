package bandit

import (
	"math/rand"
	"sort"
	"time"
)

const maxArmValue = 10

// Arm is one action of an Environment. Arms are fixed once the
// Environment is constructed.
type Arm struct {
	Value         float64 // Payout on success.
	Probability   float64 // Success probability in [0, 1).
	ExpectedValue float64 // Value * Probability.
	// Rank is the position of this arm when all arms of the Environment
	// are sorted by descending ExpectedValue. Rank 0 is optimal.
	Rank int
}

// ArmSpec fixes the payout and success probability of one arm.
type ArmSpec struct {
	Value       float64
	Probability float64
}

// Environment is a multi-armed bandit with hidden success probabilities.
type Environment struct {
	rng  *rand.Rand
	arms []Arm

	optimalIndex int
}

// NewRand returns a random source seeded with seed, or with the current
// time if seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// NewEnvironment creates an Environment with armCount random arms drawn from rng.
// If binaryReward is true every arm pays 1, otherwise each arm pays an integer
// drawn uniformly from [1, 10]. A nil rng is seeded from the current time.
func NewEnvironment(armCount int, binaryReward bool, rng *rand.Rand) (*Environment, error) {
	if armCount < 1 {
		return nil, &ConfigError{Field: "arm count", Value: armCount, Reason: "must be positive"}
	}

	if rng == nil {
		rng = NewRand(0)
	}

	specs := make([]ArmSpec, armCount)
	for i := range specs {
		value := 1.0
		if !binaryReward {
			value = float64(rng.Intn(maxArmValue) + 1)
		}

		specs[i] = ArmSpec{Value: value, Probability: rng.Float64()}
	}

	return newEnvironment(specs, rng), nil
}

// NewEnvironmentFromArms creates an Environment with the given fixed arms.
// Only the per-pull reward draws come from rng.
func NewEnvironmentFromArms(specs []ArmSpec, rng *rand.Rand) (*Environment, error) {
	if len(specs) < 1 {
		return nil, &ConfigError{Field: "arm count", Value: len(specs), Reason: "must be positive"}
	}

	for _, s := range specs {
		if s.Value <= 0 {
			return nil, &ConfigError{Field: "arm value", Value: s.Value, Reason: "must be positive"}
		}

		if s.Probability < 0 || s.Probability > 1 {
			return nil, &ConfigError{Field: "arm probability", Value: s.Probability, Reason: "must be in [0, 1]"}
		}
	}

	if rng == nil {
		rng = NewRand(0)
	}

	return newEnvironment(specs, rng), nil
}

func newEnvironment(specs []ArmSpec, rng *rand.Rand) *Environment {
	arms := make([]Arm, len(specs))
	for i, s := range specs {
		arms[i] = Arm{
			Value:         s.Value,
			Probability:   s.Probability,
			ExpectedValue: s.Value * s.Probability,
		}
	}

	order := make([]int, len(arms))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return arms[order[i]].ExpectedValue > arms[order[j]].ExpectedValue
	})

	for rank, i := range order {
		arms[i].Rank = rank
	}

	return &Environment{
		rng:          rng,
		arms:         arms,
		optimalIndex: order[0],
	}
}

// NumArms returns the number of actions in the Environment.
func (e *Environment) NumArms() int {
	return len(e.arms)
}

// Arm returns the ground truth for action i.
func (e *Environment) Arm(i int) (Arm, error) {
	if err := checkIndex(i, len(e.arms)); err != nil {
		return Arm{}, err
	}

	return e.arms[i], nil
}

// OptimalAction returns the index of the rank 0 arm.
func (e *Environment) OptimalAction() int {
	return e.optimalIndex
}

// OptimalValue returns the expected value of the rank 0 arm.
func (e *Environment) OptimalValue() float64 {
	return e.arms[e.optimalIndex].ExpectedValue
}

// RankedExpectedValues returns the arms' expected values ordered by rank.
func (e *Environment) RankedExpectedValues() []float64 {
	result := make([]float64, len(e.arms))
	for _, arm := range e.arms {
		result[arm.Rank] = arm.ExpectedValue
	}

	return result
}

// Pull samples one reward from action i. The reward is the arm's value with
// its success probability and 0 otherwise. Each pull consumes exactly one
// draw from the Environment's random source.
func (e *Environment) Pull(i int) (reward float64, rank int, err error) {
	if err := checkIndex(i, len(e.arms)); err != nil {
		return 0, 0, err
	}

	arm := &e.arms[i]
	if e.rng.Float64() < arm.Probability {
		reward = arm.Value
	}

	return reward, arm.Rank, nil
}
