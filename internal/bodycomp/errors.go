package bodycomp

import (
	"fmt"
	"strings"
)

// ValidationError reports an input outside its declared range.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

// MissingMeasurementError reports the fields a method requires but did not get.
type MissingMeasurementError struct {
	Method Method
	Fields []string
}

func (e *MissingMeasurementError) Error() string {
	return fmt.Sprintf("missing required measurements for %s: %s", e.Method, strings.Join(e.Fields, ", "))
}

type UnsupportedMethodError struct {
	Method Method
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported measurement method: %q", string(e.Method))
}

// OutOfRangeResultError means a formula produced a body-fat percentage
// outside [MinBodyFat, MaxBodyFat].
type OutOfRangeResultError struct {
	Method   Method
	BodyFat  float64
	Min, Max float64
}

func (e *OutOfRangeResultError) Error() string {
	return fmt.Sprintf("calculated body fat percentage out of range for %s: %.2f%% (allowed %g-%g)", e.Method, e.BodyFat, e.Min, e.Max)
}
