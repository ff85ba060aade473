package errors

import "math"

// ValidateDimension checks that a width, height or cut amount is a finite,
// non-negative number. name is used in the message ("width", "amount", ...).
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidGeometry, "%s must be finite, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidGeometry, "%s must not be negative, got %v", name, v)
	}
	return nil
}

// ValidateAmount checks that a cut amount lies in [0, limit].
func ValidateAmount(amount, limit float64) error {
	if err := ValidateDimension("amount", amount); err != nil {
		return err
	}
	if amount > limit {
		return New(ErrCodeInvalidGeometry, "amount %v exceeds available extent %v", amount, limit)
	}
	return nil
}

// ValidateCount checks that a division count is at least one.
func ValidateCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidDivision, "division count must be at least 1, got %d", n)
	}
	return nil
}
