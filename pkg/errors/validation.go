package errors

import "math"

// ValidatePositive checks that v is a finite number greater than zero.
// The name identifies the quantity in the returned message (e.g. "width").
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidArgument, "%s must be a finite number, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidArgument, "%s must be greater than zero, got %v", name, v)
	}
	return nil
}

// ValidateCount checks that n is at least one.
func ValidateCount(name string, n int) error {
	if n < 1 {
		return New(ErrCodeInvalidArgument, "%s must be at least 1, got %d", name, n)
	}
	return nil
}
