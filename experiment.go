package bandit

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Maximum base seed drawn from the master random source.
const maxBaseSeed = 100

// TrialFunc is called after each trial has been committed to the aggregators.
type TrialFunc func(trial int, env *Environment, traces []Trace)

// Experiment runs a set of policy variants against many freshly-constructed
// environments and aggregates their learning curves.
//
// A master random source seeded with Params.Seed draws one base seed. Trial i
// uses seed base+i for its Environment and, through separate random sources,
// for each of its policies.
type Experiment struct {
	params      Params
	kinds       []PolicyKind
	aggregators []*Aggregator
	onTrial     TrialFunc
	trialsRun   int
}

// NewExperiment returns an Experiment that runs the given policy kinds side by
// side within each trial.
func NewExperiment(params Params, kinds ...PolicyKind) (*Experiment, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if len(kinds) == 0 {
		return nil, &ConfigError{Field: "policies", Value: 0, Reason: "at least one policy is required"}
	}

	seen := make(map[PolicyKind]struct{}, len(kinds))
	aggregators := make([]*Aggregator, len(kinds))
	for i, kind := range kinds {
		if _, err := ParsePolicyKind(string(kind)); err != nil {
			return nil, err
		}

		if _, ok := seen[kind]; ok {
			return nil, &ConfigError{Field: "policy", Value: string(kind), Reason: "listed more than once"}
		}
		seen[kind] = struct{}{}

		agg, err := NewAggregator(string(kind), params.ArmCount, params.RoundCount, params.Weighting)
		if err != nil {
			return nil, err
		}

		aggregators[i] = agg
	}

	return &Experiment{
		params:      params,
		kinds:       kinds,
		aggregators: aggregators,
	}, nil
}

// OnTrial registers fn to be called after every committed trial.
func (e *Experiment) OnTrial(fn TrialFunc) {
	e.onTrial = fn
}

// Params returns the experiment configuration.
func (e *Experiment) Params() Params {
	return e.params
}

// Aggregators returns one Aggregator per policy kind, in the order given
// to NewExperiment.
func (e *Experiment) Aggregators() []*Aggregator {
	return e.aggregators
}

// TrialsRun returns the number of trials committed so far.
func (e *Experiment) TrialsRun() int {
	return e.trialsRun
}

// Run executes all trials sequentially. If a trial fails, Run returns the
// error and the aggregators hold only the trials completed before it.
func (e *Experiment) Run() error {
	master := NewRand(e.params.Seed)
	base := int64(master.Intn(maxBaseSeed) + 1)

	for i := 0; i < e.params.TrialCount; i++ {
		seed := base + int64(i)
		glog.Infof("Trial %d/%d (seed=%d)", i+1, e.params.TrialCount, seed)
		if err := e.runTrial(i, seed); err != nil {
			return errors.Wrapf(err, "trial %d", i)
		}
	}

	return nil
}

func (e *Experiment) runTrial(trial int, seed int64) error {
	env, err := NewEnvironment(e.params.ArmCount, e.params.BinaryReward, newSeededRand(seed))
	if err != nil {
		return err
	}

	policies := make([]Policy, len(e.kinds))
	for i, kind := range e.kinds {
		policies[i], err = NewPolicy(kind, e.params, env.NumArms(), newSeededRand(seed))
		if err != nil {
			return err
		}
	}

	traces, err := RunTrial(env, policies, e.params.RoundCount, e.params.LogEvery)
	if err != nil {
		return err
	}

	for i, agg := range e.aggregators {
		if err := agg.AddTrial(env, traces[i]); err != nil {
			return errors.Wrapf(err, "aggregating %s", agg.Name())
		}
	}

	e.trialsRun++
	glog.Infof("Trial %d: optimal action %d, optimal expected value %.4f",
		trial+1, env.OptimalAction(), env.OptimalValue())
	if e.onTrial != nil {
		e.onTrial(trial, env, traces)
	}

	return nil
}

// newSeededRand returns a random source with exactly the given seed.
// Unlike NewRand, seed 0 is not replaced by entropy.
func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
