package bandit

// Policy learns which action of an Environment to play.
type Policy interface {
	// Name identifies the policy in logs and plots.
	Name() string
	// NumActions returns the number of actions the policy chooses among.
	NumActions() int
	// ChooseAction returns the index of the action to play next.
	ChooseAction() int
	// Update provides the reward observed for playing action, along with
	// that action's rank in the Environment.
	Update(action int, reward float64, rank int) error
	// AverageReward returns the running average reward over all updates.
	AverageReward() float64
	// RankPulls returns how many times the action of each rank was played.
	RankPulls() []int
}

// record is the bookkeeping shared by all policies: a running-average reward,
// the sequence of observed samples, and a per-rank pull tally.
type record struct {
	averageReward float64
	samples       []float64
	rankPulls     []int
}

func newRecord(nActions int) record {
	return record{rankPulls: make([]int, nActions)}
}

func (r *record) observe(sample float64, count, rank int) {
	r.averageReward = RunningAverage(r.averageReward, sample, count)
	r.samples = append(r.samples, sample)
	r.rankPulls[rank]++
}

func (r *record) AverageReward() float64 {
	return r.averageReward
}

// Samples returns every sample folded into the average reward, in order.
func (r *record) Samples() []float64 {
	return r.samples
}

func (r *record) RankPulls() []int {
	return r.rankPulls
}

// ResultStore persists the aggregated results of finished experiments.
// Results are keyed by a run id and the aggregated policy's name.
type ResultStore interface {
	// Put saves agg under runID and agg.Name(), replacing any previous result.
	Put(runID string, agg *Aggregator) error
	// Get reloads the result saved for policy in runID.
	// It returns ErrResultNotFound if there is none.
	Get(runID, policy string) (*Aggregator, error)
	// Policies lists the names of all policies saved for runID, in key order.
	Policies(runID string) ([]string, error)
	// Close releases the underlying database.
	Close() error
}
