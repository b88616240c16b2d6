package bandit

import (
	"math"
	"math/rand"
	"testing"
)

func TestConfidenceBound_TieBreakLowestIndex(t *testing.T) {
	cb, err := NewConfidenceBound(5, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if a := cb.ChooseAction(); a != 0 {
		t.Errorf("expected action 0, got %d", a)
	}

	// After one pull log(1) = 0, so every unexplored arm ties with the pulled one.
	if err := cb.Update(0, 0, 0); err != nil {
		t.Fatal(err)
	}

	if a := cb.ChooseAction(); a != 0 {
		t.Errorf("expected action 0, got %d", a)
	}
}

func TestConfidenceBound_Score(t *testing.T) {
	cb, err := NewConfidenceBound(3, 2)
	if err != nil {
		t.Fatal(err)
	}

	if s := cb.Score(1); s != 2 {
		t.Errorf("expected initial score 2 (log(0) = 1), got %v", s)
	}

	for _, a := range []int{0, 0, 1} {
		if err := cb.Update(a, 1, a); err != nil {
			t.Fatal(err)
		}
	}

	observed, n := cb.ObservedReward(0)
	expected := observed + 2*math.Sqrt(math.Log(3)/float64(n))
	if s := cb.Score(0); math.Abs(s-expected) > 1e-12 {
		t.Errorf("expected score %v, got %v", expected, s)
	}

	expected = 2 * math.Sqrt(math.Log(3))
	if s := cb.Score(2); math.Abs(s-expected) > 1e-12 {
		t.Errorf("expected unpulled score %v, got %v", expected, s)
	}
}

func TestConfidenceBound_AveragesUsePreviousTotal(t *testing.T) {
	cb, err := NewConfidenceBound(2, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		action         int
		reward         float64
		observed       float64
		average        float64
		actionPulls    int
	}{
		// Count 0 is guarded to 1: the first sample replaces the estimate.
		{action: 0, reward: 1, observed: 1, average: 1, actionPulls: 1},
		// Count 1 again: the second sample also replaces the global average.
		{action: 1, reward: 0, observed: 0, average: 0, actionPulls: 1},
		{action: 0, reward: 0, observed: 0.5, average: 0, actionPulls: 2},
	}

	for i, s := range steps {
		if err := cb.Update(s.action, s.reward, s.action); err != nil {
			t.Fatal(err)
		}

		observed, n := cb.ObservedReward(s.action)
		if observed != s.observed || n != s.actionPulls {
			t.Errorf("step %d: expected (%v, %d), got (%v, %d)", i, s.observed, s.actionPulls, observed, n)
		}

		if cb.AverageReward() != s.average {
			t.Errorf("step %d: expected average %v, got %v", i, s.average, cb.AverageReward())
		}
	}

	if pulls := cb.RankPulls(); pulls[0] != 2 || pulls[1] != 1 {
		t.Errorf("expected rank pulls [2 1], got %v", pulls)
	}

	if samples := cb.Samples(); len(samples) != 3 || samples[0] != 1 {
		t.Errorf("expected samples [1 0 0], got %v", samples)
	}
}

func TestConfidenceBound_FindsPayingArm(t *testing.T) {
	env, err := NewEnvironmentFromArms([]ArmSpec{
		{Value: 1, Probability: 0},
		{Value: 1, Probability: 1},
		{Value: 1, Probability: 0},
	}, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}

	cb, err := NewConfidenceBound(3, 0.01)
	if err != nil {
		t.Fatal(err)
	}

	for j := 0; j < 200; j++ {
		a := cb.ChooseAction()
		reward, rank, _ := env.Pull(a)
		if err := cb.Update(a, reward, rank); err != nil {
			t.Fatal(err)
		}
	}

	pulls := cb.RankPulls()
	if pulls[0] < 190 {
		t.Errorf("expected the paying arm to dominate, got rank pulls %v", pulls)
	}
}

func TestConfidenceBound_InvalidInput(t *testing.T) {
	if _, err := NewConfidenceBound(0, 1); err == nil {
		t.Error("expected error for zero actions")
	}

	if _, err := NewConfidenceBound(2, -1); err == nil {
		t.Error("expected error for negative confidence rate")
	}

	cb, _ := NewConfidenceBound(2, 1)
	if _, ok := cb.Update(2, 1, 0).(*RangeError); !ok {
		t.Error("expected *RangeError")
	}
}

func TestAdjustedLog(t *testing.T) {
	if adjustedLog(0) != 1 {
		t.Errorf("expected log(0) = 1, got %v", adjustedLog(0))
	}

	if adjustedLog(1) != 0 {
		t.Errorf("expected log(1) = 0, got %v", adjustedLog(1))
	}

	if got := adjustedLog(10); got != math.Log(10) {
		t.Errorf("expected %v, got %v", math.Log(10), got)
	}
}
