package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecalc/domain"
)

func TestPropertyTax_GeorgiaAssessment(t *testing.T) {
	result, err := PropertyTax(300000, 1.2, 0, 40)
	require.NoError(t, err)

	assert.InDelta(t, 120000, result.AssessedValue, 1e-9)
	assert.InDelta(t, 120000, result.TaxableValue, 1e-9)
	assert.InDelta(t, 1440, result.AnnualTax, 1e-9)
	assert.InDelta(t, 120, result.MonthlyTax, 1e-9)
	assert.InDelta(t, 0.48, result.EffectiveRate, 1e-9)
}

func TestPropertyTax_ExemptionFloorsAtZero(t *testing.T) {
	result, err := PropertyTaxFor(domain.PropertyTaxInput{
		HomeValue:              100000,
		TaxRatePercent:         2,
		ExemptionAmount:        50000,
		AssessmentRatioPercent: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.TaxableValue)
	assert.Equal(t, 0.0, result.AnnualTax)
	assert.Equal(t, 0.0, result.EffectiveRate)
}

func TestPropertyTax_ZeroHomeValue(t *testing.T) {
	result, err := PropertyTax(0, 1.2, 0, 40)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.EffectiveRate)
}

func TestPropertyTax_RejectsNegativeRate(t *testing.T) {
	_, err := PropertyTax(100000, -1, 0, 40)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
