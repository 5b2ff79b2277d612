package engine

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is wrapped by every input validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func requireNonNegative(name string, v float64) error {
	if !finite(v) || v < 0 {
		return invalid("%s must be a non-negative number, got %v", name, v)
	}
	return nil
}

func requirePercent(name string, v float64) error {
	if !finite(v) || v < 0 || v > 100 {
		return invalid("%s must be between 0 and 100, got %v", name, v)
	}
	return nil
}

func requirePositiveYears(name string, years int) error {
	if years <= 0 {
		return invalid("%s must be positive, got %d", name, years)
	}
	return nil
}

func requireNonNegativeYears(name string, years int) error {
	if years < 0 {
		return invalid("%s must not be negative, got %d", name, years)
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ratio returns num/den*100, or 0 when den is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}
