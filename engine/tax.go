package engine

import (
	"math"

	"homecalc/domain"
)

// PropertyTax computes tax on the assessed value less exemptions. The taxable
// value is floored at zero so exemptions never produce a negative tax.
func PropertyTax(homeValue, taxRatePercent, exemptionAmount, assessmentRatioPercent float64) (domain.TaxResult, error) {
	if err := firstErr(
		requireNonNegative("home value", homeValue),
		requireNonNegative("tax rate", taxRatePercent),
		requireNonNegative("exemption", exemptionAmount),
		requireNonNegative("assessment ratio", assessmentRatioPercent),
	); err != nil {
		return domain.TaxResult{}, err
	}

	assessed := homeValue * assessmentRatioPercent / 100
	taxable := math.Max(assessed-exemptionAmount, 0)
	annual := taxable * taxRatePercent / 100

	return domain.TaxResult{
		AssessedValue: assessed,
		TaxableValue:  taxable,
		AnnualTax:     annual,
		MonthlyTax:    annual / 12,
		EffectiveRate: ratio(annual, homeValue),
	}, nil
}

// PropertyTaxFor is PropertyTax over an input struct.
func PropertyTaxFor(in domain.PropertyTaxInput) (domain.TaxResult, error) {
	return PropertyTax(in.HomeValue, in.TaxRatePercent, in.ExemptionAmount, in.AssessmentRatioPercent)
}
