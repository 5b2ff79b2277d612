package engine

import (
	"math"

	"homecalc/domain"
)

const (
	// FrontEndRatio caps housing cost as a share of gross monthly income.
	FrontEndRatio = 0.28
	// BackEndRatio caps all debt service as a share of gross monthly income.
	BackEndRatio = 0.36
	// AssumedTermYears is the loan term used wherever a calculator does not
	// ask for one.
	AssumedTermYears = 30
)

// MaxAffordablePrice applies the 28/36 rule and inverts the payment formula
// over a 30-year term to find the largest loan the budget carries. Insurance
// comes out of the budget before principal and interest; the property tax on
// the resulting price is reported alongside.
func MaxAffordablePrice(in domain.AffordabilityInput) (domain.AffordabilityResult, error) {
	if err := firstErr(
		requireNonNegative("annual income", in.AnnualIncome),
		requireNonNegative("monthly debts", in.MonthlyDebts),
		requireNonNegative("down payment", in.DownPayment),
		requireNonNegative("annual rate", in.AnnualRatePercent),
		requireNonNegative("property tax rate", in.PropertyTaxRatePercent),
		requireNonNegative("insurance", in.AnnualInsurance),
	); err != nil {
		return domain.AffordabilityResult{}, err
	}

	monthlyIncome := in.AnnualIncome / 12
	frontEnd := FrontEndRatio * monthlyIncome
	backEnd := BackEndRatio*monthlyIncome - in.MonthlyDebts
	maxMonthly := math.Min(frontEnd, backEnd)
	insurance := in.AnnualInsurance / 12

	result := domain.AffordabilityResult{
		MaxMonthlyPayment: maxMonthly,
		Insurance:         insurance,
	}

	budget := maxMonthly - insurance
	if budget <= 0 {
		return result, nil
	}

	r := in.AnnualRatePercent / 1200
	n := AssumedTermYears * 12
	loan := budget / payment(1, r, n)

	result.Affordable = true
	result.MaxLoanAmount = loan
	result.MaxHomePrice = loan + in.DownPayment
	result.PrincipalAndInterest = payment(loan, r, n)
	result.PropertyTax = result.MaxHomePrice * in.PropertyTaxRatePercent / 100 / 12
	return result, nil
}
