package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"homecalc/domain"
)

func TestCurrency(t *testing.T) {
	testCases := []struct {
		in       float64
		expected string
	}{
		{0, "$0"},
		{1896.204, "$1,896"},
		{1234567.5, "$1,234,568"},
		{-154.46, "-$154"},
		{-0.4, "$0"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Currency(tc.in), "in=%v", tc.in)
	}
}

func TestCents(t *testing.T) {
	assert.Equal(t, "$1,896.20", Cents(1896.204070478896))
	assert.Equal(t, "$120.00", Cents(120))
	assert.Equal(t, "-$1,853.56", Cents(-1853.559))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.48%", Percent(0.48, 2))
	assert.Equal(t, "83.2%", Percent(83.1623, 1))
	assert.Equal(t, "0.0%", Percent(-0.01, 1))
}

func TestDisplay_FlatResult(t *testing.T) {
	got := Display(domain.TaxResult{
		AssessedValue: 120000,
		TaxableValue:  120000,
		AnnualTax:     1440,
		MonthlyTax:    120,
		EffectiveRate: 0.48,
	})

	assert.Equal(t, map[string]string{
		"assessedValue": "$120,000",
		"taxableValue":  "$120,000",
		"annualTax":     "$1,440",
		"monthlyTax":    "$120",
		"effectiveRate": "0.48%",
	}, got)
}

func TestDisplay_NestedAndSlices(t *testing.T) {
	got := Display(&domain.HomeEquityResult{
		Current: domain.EquityPosition{EquityAmount: 150000, EquityPercentage: 37.5, LoanToValue: 62.5},
	})
	assert.Equal(t, "$150,000", got["current.equityAmount"])
	assert.Equal(t, "62.5%", got["current.loanToValue"])
	assert.Equal(t, "$0", got["projected.futureEquity"])

	got = Display(domain.ValuationResult{
		EstimatedValue: 357840.39,
		Breakdown: []domain.AdjustmentContribution{
			{Kind: domain.AdjustImprovement, Amount: 20000},
			{Kind: domain.AdjustMarket, Amount: 15490.93},
		},
	})
	assert.Equal(t, "$357,840", got["estimatedValue"])
	assert.Equal(t, "$15,491", got["breakdown[1].amount"])
	assert.NotContains(t, got, "breakdown[0].kind")
}

func TestDisplay_CountsAndYears(t *testing.T) {
	got := Display(domain.PaymentPlanResult{MonthsToPayoff: 252, YearsToPayoff: 21, MonthsSaved: 108})

	assert.Equal(t, "252", got["monthsToPayoff"])
	assert.Equal(t, "21.0", got["yearsToPayoff"])
	assert.Equal(t, "108", got["monthsSaved"])
}

func TestDisplay_NonStruct(t *testing.T) {
	assert.Empty(t, Display(42))
	assert.Empty(t, Display(nil))
}

func TestFields_DeclarationOrder(t *testing.T) {
	got := Fields(domain.MortgageResult{
		DownPaymentAmount: 60000,
		LoanAmount:        240000,
		MonthlyPayment:    1516.96,
		TotalPayment:      546105.6,
		TotalInterest:     306105.6,
	})

	assert.Equal(t, []Field{
		{Key: "downPaymentAmount", Value: "$60,000"},
		{Key: "loanAmount", Value: "$240,000"},
		{Key: "monthlyPayment", Value: "$1,516.96"},
		{Key: "totalPayment", Value: "$546,105.60"},
		{Key: "totalInterest", Value: "$306,105.60"},
	}, got)
}
