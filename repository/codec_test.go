package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecalc/domain"
)

func TestCacheKey_StableAndDistinct(t *testing.T) {
	in := domain.MortgageInput{HomePrice: 300000, DownPaymentPercent: 20, AnnualRatePercent: 6.5, TermYears: 30}

	a, err := CacheKey(domain.KindMortgage, in)
	require.NoError(t, err)
	b, err := CacheKey(domain.KindMortgage, in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "calc:mortgage:")

	in.TermYears = 15
	c, err := CacheKey(domain.KindMortgage, in)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	d, err := CacheKey(domain.KindHomeLoan, domain.MortgageInput{HomePrice: 300000, DownPaymentPercent: 20, AnnualRatePercent: 6.5, TermYears: 30})
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}

func TestEncodeDecode_ValuationResult(t *testing.T) {
	want := domain.ValuationResult{
		EstimatedValue:   357840.38895412505,
		AppreciatedValue: 289818.518575,
		AppreciationGain: 39818.518575,
		Breakdown: []domain.AdjustmentContribution{
			{Kind: domain.AdjustImprovement, Amount: 20000},
			{Kind: domain.AdjustLocation, Amount: 32530.944450375042},
		},
	}

	data, err := Encode(want)
	require.NoError(t, err)

	var got domain.ValuationResult
	require.NoError(t, Decode(data, &got))
	assert.Equal(t, want, got)
}

func TestDecode_IntoGenericMapUsesJSONNames(t *testing.T) {
	data, err := Encode(domain.TaxResult{AnnualTax: 1440})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, Decode(data, &got))
	assert.EqualValues(t, 1440, got["annualTax"])
}
