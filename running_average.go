package bandit

// RunningAverage folds sample into prev, the mean of the first count-1
// samples, and returns the mean of all count samples.
//
// count is 1-indexed (it includes sample). Counts below 1 are treated as 1,
// in which case the result is sample.
func RunningAverage(prev, sample float64, count int) float64 {
	if count < 1 {
		count = 1
	}

	return prev + (1.0/float64(count))*(sample-prev)
}
