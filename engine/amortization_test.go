package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment_KnownValues(t *testing.T) {
	testCases := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		expected  float64
	}{
		{"300k at 6.5% over 30 years", 300000, 6.5, 30, 1896.20},
		{"240k at 6.5% over 30 years", 240000, 6.5, 30, 1516.96},
		{"zero rate is linear", 1200, 0, 1, 100},
		{"zero principal", 0, 5, 15, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MonthlyPayment(tc.principal, tc.rate, tc.years)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 0.01)
		})
	}
}

func TestMonthlyPayment_TotalCoversPrincipal(t *testing.T) {
	for _, rate := range []float64{0, 0.001, 1, 3.75, 6.5, 12, 25} {
		for _, years := range []int{1, 5, 15, 30, 50} {
			p, err := MonthlyPayment(250000, rate, years)
			require.NoError(t, err)
			total := p * float64(years*12)
			assert.GreaterOrEqual(t, total, 250000-1e-6, "rate=%v years=%d", rate, years)
		}
	}

	p, err := MonthlyPayment(250000, 0, 30)
	require.NoError(t, err)
	assert.InDelta(t, 250000, p*360, 1e-6)
}

func TestMonthlyPayment_RejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name      string
		principal float64
		rate      float64
		years     int
	}{
		{"negative principal", -1, 5, 30},
		{"negative rate", 1000, -0.5, 30},
		{"zero term", 1000, 5, 0},
		{"NaN principal", math.NaN(), 5, 30},
		{"infinite rate", 1000, math.Inf(1), 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MonthlyPayment(tc.principal, tc.rate, tc.years)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestSimulatePayoff_NoExtraMatchesClosedForm(t *testing.T) {
	payment, err := MonthlyPayment(200000, 6, 30)
	require.NoError(t, err)

	result, err := SimulatePayoff(200000, 6, 30, 0)
	require.NoError(t, err)

	assert.Equal(t, 360, result.MonthsToPayoff)
	assert.InDelta(t, payment*360-200000, result.TotalInterestPaid, 0.01)
	assert.InDelta(t, payment, result.BasePayment, 1e-9)
	require.Len(t, result.Schedule, 360)
	assert.InDelta(t, 0, result.Schedule[359].RemainingBalance, 0.01)
}

func TestSimulatePayoff_ExtraPaymentShortensLoan(t *testing.T) {
	base, err := SimulatePayoff(200000, 6, 30, 0)
	require.NoError(t, err)

	extra, err := SimulatePayoff(200000, 6, 30, 200)
	require.NoError(t, err)

	assert.Less(t, extra.MonthsToPayoff, base.MonthsToPayoff)
	assert.Equal(t, 252, extra.MonthsToPayoff)
	assert.Less(t, extra.TotalInterestPaid, base.TotalInterestPaid)
	assert.InDelta(t, 151875.87, extra.TotalInterestPaid, 0.01)
}

func TestSimulatePayoff_ExtraNeverLengthensLoan(t *testing.T) {
	for _, rate := range []float64{0, 2.5, 7} {
		base, err := SimulatePayoff(150000, rate, 20, 0)
		require.NoError(t, err)
		for _, extra := range []float64{1, 50, 500, 5000} {
			got, err := SimulatePayoff(150000, rate, 20, extra)
			require.NoError(t, err)
			assert.LessOrEqual(t, got.MonthsToPayoff, base.MonthsToPayoff, "rate=%v extra=%v", rate, extra)
		}
	}
}

func TestSimulatePayoff_BalanceNeverNegative(t *testing.T) {
	result, err := SimulatePayoff(10000, 5, 5, 3000)
	require.NoError(t, err)

	var principal float64
	for _, point := range result.Schedule {
		assert.GreaterOrEqual(t, point.RemainingBalance, 0.0)
		principal += point.PrincipalPaid
	}
	assert.InDelta(t, 10000, principal, 1e-6)
	assert.Equal(t, 0.0, result.Schedule[len(result.Schedule)-1].RemainingBalance)
}

func TestSimulatePayoff_RejectsNegativeExtra(t *testing.T) {
	_, err := SimulatePayoff(10000, 5, 5, -10)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestRemainingBalance(t *testing.T) {
	payment, err := MonthlyPayment(100000, 5, 10)
	require.NoError(t, err)

	full, err := RemainingBalance(100000, 5, payment, 120)
	require.NoError(t, err)
	assert.InDelta(t, 0, full, 1e-6)

	none, err := RemainingBalance(100000, 5, payment, 0)
	require.NoError(t, err)
	assert.InDelta(t, 100000, none, 1e-9)

	sim, err := SimulatePayoff(100000, 5, 10, 0)
	require.NoError(t, err)
	mid, err := RemainingBalance(100000, 5, payment, 60)
	require.NoError(t, err)
	assert.InDelta(t, sim.Schedule[59].RemainingBalance, mid, 1e-6)

	linear, err := RemainingBalance(1200, 0, 100, 15)
	require.NoError(t, err)
	assert.Equal(t, 0.0, linear)
}
