package pstate

import "fmt"

// IndexError reports a P-state index outside 0-9.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("p-state index out of range: %d (valid: 0-9)", e.Index)
}

// UnsupportedDivisorError reports a divisor code in the reserved range
// 9-15, for which no ratio is defined.
type UnsupportedDivisorError struct {
	Code uint32
}

func (e *UnsupportedDivisorError) Error() string {
	return fmt.Sprintf("unsupported divisor code: %d", e.Code)
}

// RangeError reports an encode-time validation failure. Field names the
// offending Settings field.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %g (valid: %g to %g)", e.Field, e.Value, e.Min, e.Max)
}
