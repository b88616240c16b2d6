package bandit

import (
	"fmt"

	"github.com/pkg/errors"
)

// Curve is a named sequence of values, one per round or per rank.
type Curve struct {
	Label  string
	Values []float64
}

// Aggregator folds the traces of many independent trials of one policy into
// running-average learning curves, using constant memory in the number of trials.
//
// Three statistics are kept:
//   - the average reward at each round, normalized by the trial's optimal value;
//   - for each rank, the fraction of rounds so far that chose the action of that rank;
//   - for each rank, the expected value of the action with that rank.
//
// The first trial to reach a round position seeds it. Later trials are folded
// in with RunningAverage, using the count given by the Weighting.
type Aggregator struct {
	name      string
	nArms     int
	nRounds   int
	weighting Weighting

	trial        int
	optimalValue float64
	nTrials      int

	valueRecord []float64   // [round]
	pullRecord  [][]float64 // [rank][round]
	rankValues  []float64   // [rank]
}

// NewAggregator returns an empty Aggregator for trials of nRounds rounds
// in environments with nArms actions.
func NewAggregator(name string, nArms, nRounds int, weighting Weighting) (*Aggregator, error) {
	if nArms < 1 {
		return nil, &ConfigError{Field: "arm count", Value: nArms, Reason: "must be positive"}
	}

	if nRounds < 1 {
		return nil, &ConfigError{Field: "round count", Value: nRounds, Reason: "must be positive"}
	}

	if weighting != WeightLinearized && weighting != WeightPerTrial {
		return nil, &ConfigError{Field: "weighting", Value: int(weighting), Reason: "unknown weighting"}
	}

	return &Aggregator{
		name:        name,
		nArms:       nArms,
		nRounds:     nRounds,
		weighting:   weighting,
		valueRecord: make([]float64, 0, nRounds),
		pullRecord:  make([][]float64, nArms),
		rankValues:  make([]float64, 0, nArms),
	}, nil
}

// Name returns the label of the aggregated policy.
func (a *Aggregator) Name() string {
	return a.name
}

// NumTrials returns the number of trials committed with AddTrial.
func (a *Aggregator) NumTrials() int {
	return a.nTrials
}

// StartTrial sets the trial index and optimal expected value used by
// subsequent calls to UpdateValue and UpdatePullRecord.
func (a *Aggregator) StartTrial(trial int, optimalValue float64) error {
	if trial < 0 {
		return &ConfigError{Field: "trial index", Value: trial, Reason: "must not be negative"}
	}

	if optimalValue <= 0 {
		return &ConfigError{Field: "optimal value", Value: optimalValue, Reason: "must be positive"}
	}

	a.trial = trial
	a.optimalValue = optimalValue
	return nil
}

// count returns the 1-indexed sample number of round j of the current trial.
func (a *Aggregator) count(j int) int {
	if a.weighting == WeightPerTrial {
		return a.trial + 1
	}

	return a.nRounds*a.trial + j + 1
}

// UpdateValue folds value/optimalValue into the normalized value curve at round j.
func (a *Aggregator) UpdateValue(value float64, j int) error {
	if j < 0 || j >= a.nRounds || j > len(a.valueRecord) {
		return &RangeError{Index: j, Len: len(a.valueRecord) + 1}
	}

	normalized := value / a.optimalValue
	a.valueRecord = fold(a.valueRecord, normalized, j, a.count(j))
	return nil
}

// UpdatePullRecord folds the cumulative per-rank pull counts after round j,
// normalized by j+1, into the pull-fraction curves.
func (a *Aggregator) UpdatePullRecord(pulls []int, j int) error {
	if len(pulls) != a.nArms {
		return &ConfigError{Field: "rank pulls", Value: len(pulls), Reason: "must have one entry per rank"}
	}

	for rank, n := range pulls {
		record := a.pullRecord[rank]
		if j < 0 || j >= a.nRounds || j > len(record) {
			return &RangeError{Index: j, Len: len(record) + 1}
		}

		fraction := float64(n) / float64(j+1)
		a.pullRecord[rank] = fold(record, fraction, j, a.count(j))
	}

	return nil
}

// UpdateRankValues folds the expected value of each rank's action in the
// given trial into the per-rank averages. Values are averaged across trials,
// not rounds.
func (a *Aggregator) UpdateRankValues(values []float64, trial int) error {
	if len(values) != a.nArms {
		return &ConfigError{Field: "rank values", Value: len(values), Reason: "must have one entry per rank"}
	}

	for rank, v := range values {
		if rank > len(a.rankValues) {
			return &RangeError{Index: rank, Len: len(a.rankValues) + 1}
		}

		a.rankValues = fold(a.rankValues, v, rank, trial+1)
	}

	return nil
}

// fold seeds record[i] with sample if position i is new, and otherwise
// folds sample into the running average stored there.
func fold(record []float64, sample float64, i, count int) []float64 {
	if i == len(record) {
		return append(record, sample)
	}

	record[i] = RunningAverage(record[i], sample, count)
	return record
}

// AddTrial commits one complete trial. The trace is checked before any
// statistic is touched, so a rejected trial leaves the Aggregator unchanged.
func (a *Aggregator) AddTrial(env *Environment, trace Trace) error {
	if env.NumArms() != a.nArms {
		return &ConfigError{Field: "arm count", Value: env.NumArms(),
			Reason: fmt.Sprintf("aggregator expects %d", a.nArms)}
	}

	if len(trace.Rounds) != a.nRounds {
		return &ConfigError{Field: "trace length", Value: len(trace.Rounds),
			Reason: fmt.Sprintf("aggregator expects %d rounds", a.nRounds)}
	}

	for j, r := range trace.Rounds {
		if err := checkIndex(r.Rank, a.nArms); err != nil {
			return errors.Wrapf(err, "round %d", j)
		}
	}

	trial := a.nTrials
	if err := a.StartTrial(trial, env.OptimalValue()); err != nil {
		return err
	}

	pulls := make([]int, a.nArms)
	for j, r := range trace.Rounds {
		pulls[r.Rank]++
		if err := a.UpdateValue(r.AverageReward, j); err != nil {
			panic(err)
		}

		if err := a.UpdatePullRecord(pulls, j); err != nil {
			panic(err)
		}
	}

	if err := a.UpdateRankValues(env.RankedExpectedValues(), trial); err != nil {
		panic(err)
	}

	a.nTrials++
	return nil
}

// ValueCurve returns the average normalized reward at each round.
func (a *Aggregator) ValueCurve() Curve {
	return Curve{
		Label:  a.name,
		Values: append([]float64(nil), a.valueRecord...),
	}
}

// PullCurves returns, for each rank, the average fraction of rounds so far
// that chose the action of that rank.
func (a *Aggregator) PullCurves() []Curve {
	result := make([]Curve, a.nArms)
	for rank, record := range a.pullRecord {
		result[rank] = Curve{
			Label:  fmt.Sprintf("%s rank %d", a.name, rank),
			Values: append([]float64(nil), record...),
		}
	}

	return result
}

// RankValues returns the average expected value of the action of each rank.
func (a *Aggregator) RankValues() Curve {
	return Curve{
		Label:  a.name,
		Values: append([]float64(nil), a.rankValues...),
	}
}
