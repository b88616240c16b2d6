package bandit

import (
	"fmt"
)

// ConfigError is returned when an Environment, policy, or experiment is
// constructed with invalid parameters.
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s=%v: %s", e.Field, e.Value, e.Reason)
}

// RangeError is returned when an action index falls outside [0, Len).
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("action index %d out of range [0, %d)", e.Index, e.Len)
}

// DegenerateProbabilityError is returned when a probability vector no longer
// sums to 1 after an update. It indicates a broken update rule.
type DegenerateProbabilityError struct {
	Sum float64
}

func (e *DegenerateProbabilityError) Error() string {
	return fmt.Sprintf("probability distribution sums to %v != 1", e.Sum)
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &RangeError{Index: i, Len: n}
	}

	return nil
}
