package service

import (
	"errors"
	"fmt"
)

// ErrLimitExceeded is returned when an input is outside what the service
// accepts, before any calculation runs.
var ErrLimitExceeded = errors.New("input exceeds allowed range")

type check func() error

func amount(name string, v float64) check {
	return func() error {
		if v > MaxAmount {
			return fmt.Errorf("%w: %s exceeds the maximum of $%.2f", ErrLimitExceeded, name, MaxAmount)
		}
		return nil
	}
}

func rate(name string, v float64) check {
	return func() error {
		if v > MaxRatePercent {
			return fmt.Errorf("%w: %s exceeds the maximum of %.2f%%", ErrLimitExceeded, name, MaxRatePercent)
		}
		return nil
	}
}

func years(name string, v int) check {
	return func() error {
		if v > MaxYears {
			return fmt.Errorf("%w: %s exceeds the maximum of %d years", ErrLimitExceeded, name, MaxYears)
		}
		return nil
	}
}

func runChecks(checks ...check) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}
