package engine

import (
	"math"

	"homecalc/domain"
)

// MonthlyPayment returns the fixed monthly principal-and-interest payment that
// retires principal over termYears at annualRatePercent. A zero rate divides
// the principal evenly across the payments.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) (float64, error) {
	terms := domain.LoanTerms{Principal: principal, AnnualRatePercent: annualRatePercent, TermYears: termYears}
	if err := validateTerms(terms); err != nil {
		return 0, err
	}
	return payment(terms.Principal, terms.MonthlyRate(), terms.Months()), nil
}

// SimulatePayoff runs the loan month by month with extraMonthlyPayment added
// to every scheduled payment. The simulation stops when the balance reaches
// zero or the scheduled term ends, whichever comes first; the reported balance
// never goes below zero.
func SimulatePayoff(principal, annualRatePercent float64, termYears int, extraMonthlyPayment float64) (domain.PayoffResult, error) {
	terms := domain.LoanTerms{Principal: principal, AnnualRatePercent: annualRatePercent, TermYears: termYears}
	if err := firstErr(
		validateTerms(terms),
		requireNonNegative("extra monthly payment", extraMonthlyPayment),
	); err != nil {
		return domain.PayoffResult{}, err
	}

	r := terms.MonthlyRate()
	n := terms.Months()
	base := payment(principal, r, n)
	monthly := base + extraMonthlyPayment

	result := domain.PayoffResult{
		BasePayment: base,
		Schedule:    make([]domain.SchedulePoint, 0, n),
	}

	balance := principal
	month := 0
	for balance > 0 && month < n {
		interest := balance * r
		principalPortion := monthly - interest
		if principalPortion > balance {
			principalPortion = balance
		}

		balance -= principalPortion
		if balance < 0 {
			balance = 0
		}
		month++

		result.TotalInterestPaid += interest
		result.Schedule = append(result.Schedule, domain.SchedulePoint{
			Month:            month,
			RemainingBalance: balance,
			InterestPaid:     interest,
			PrincipalPaid:    principalPortion,
		})
	}
	result.MonthsToPayoff = month

	return result, nil
}

// RemainingBalance is the closed-form balance of a loan after months payments
// of monthlyPayment at annualRatePercent. It is floored at zero.
func RemainingBalance(principal, annualRatePercent, monthlyPayment float64, months int) (float64, error) {
	if err := firstErr(
		requireNonNegative("principal", principal),
		requireNonNegative("annual rate", annualRatePercent),
		requireNonNegative("monthly payment", monthlyPayment),
		requireNonNegativeYears("months", months),
	); err != nil {
		return 0, err
	}
	return remainingBalance(principal, annualRatePercent/1200, monthlyPayment, months), nil
}

func validateTerms(t domain.LoanTerms) error {
	return firstErr(
		requireNonNegative("principal", t.Principal),
		requireNonNegative("annual rate", t.AnnualRatePercent),
		requirePositiveYears("term", t.TermYears),
	)
}

// payment is P·r·(1+r)^n / ((1+r)^n - 1), linear when the rate vanishes.
func payment(principal, r float64, n int) float64 {
	if r == 0 {
		return principal / float64(n)
	}
	growth := math.Pow(1+r, float64(n))
	if growth == 1 {
		return principal / float64(n)
	}
	return principal * r * growth / (growth - 1)
}

func remainingBalance(principal, r, monthlyPayment float64, months int) float64 {
	var balance float64
	if r == 0 {
		balance = principal - monthlyPayment*float64(months)
	} else {
		growth := math.Pow(1+r, float64(months))
		balance = principal*growth - monthlyPayment*(growth-1)/r
	}
	return math.Max(balance, 0)
}
