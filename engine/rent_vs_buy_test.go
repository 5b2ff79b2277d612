package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecalc/domain"
)

func TestCompareRentVsBuy_Golden(t *testing.T) {
	result, err := CompareRentVsBuy(domain.RentVsBuyScenario{
		HomePrice:                 300000,
		DownPaymentPercent:        20,
		AnnualRatePercent:         6.5,
		TermYears:                 30,
		PropertyTaxRatePercent:    1.2,
		AnnualInsurance:           1200,
		MaintenancePercent:        1,
		MonthlyRent:               2000,
		AnnualRentIncreasePercent: 3,
		AnnualAppreciationPercent: 3,
		TimeframeYears:            5,
	})
	require.NoError(t, err)

	assert.InDelta(t, 2166.96, result.MonthlyBuyingCost, 0.01)
	assert.InDelta(t, 127419.26, result.TotalRentingCost, 0.01)
	assert.InDelta(t, 347782.22, result.FinalHomeValue, 0.01)
	assert.InDelta(t, 47782.22, result.EquityBuilt, 0.01)
	assert.InDelta(t, 142235.57, result.TotalBuyingCost, 0.01)
	assert.InDelta(t, result.TotalBuyingCost/60, result.AvgMonthlyBuying, 1e-9)
	assert.InDelta(t, result.TotalRentingCost/60, result.AvgMonthlyRenting, 1e-9)
}

func TestCompareRentVsBuy_NoGrowthIsLinear(t *testing.T) {
	for _, years := range []int{1, 7, 30} {
		result, err := CompareRentVsBuy(domain.RentVsBuyScenario{
			HomePrice:          250000,
			DownPaymentPercent: 10,
			AnnualRatePercent:  5,
			TermYears:          30,
			MonthlyRent:        1800,
			TimeframeYears:     years,
		})
		require.NoError(t, err)

		assert.InDelta(t, 1800*12*float64(years), result.TotalRentingCost, 1e-6)
		assert.Equal(t, 250000.0, result.FinalHomeValue)
		assert.Equal(t, 0.0, result.EquityBuilt)
		assert.InDelta(t, result.MonthlyBuyingCost*12*float64(years)+25000, result.TotalBuyingCost, 1e-6)
	}
}

func TestCompareRentVsBuy_GrowthAppliesToFollowingYear(t *testing.T) {
	result, err := CompareRentVsBuy(domain.RentVsBuyScenario{
		HomePrice:                 100000,
		TermYears:                 30,
		MonthlyRent:               1000,
		AnnualRentIncreasePercent: 10,
		TimeframeYears:            1,
	})
	require.NoError(t, err)

	assert.InDelta(t, 12000, result.TotalRentingCost, 1e-9)
}

func TestCompareRentVsBuy_RejectsZeroTimeframe(t *testing.T) {
	_, err := CompareRentVsBuy(domain.RentVsBuyScenario{HomePrice: 1, TermYears: 30})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
