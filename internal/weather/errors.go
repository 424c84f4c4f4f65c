package weather

import "fmt"

// ValidationError is returned by New when an input violates a Reading
// invariant. Its message names the violated rule.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// RangeError is returned by RelativeHumidity when the computed percentage
// falls outside [0, 100].
type RangeError struct {
	// Value is the rounded humidity percentage that failed the bounds check.
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("relative humidity out of bounds: %g (must be between 0%% and 100%%)", e.Value)
}
