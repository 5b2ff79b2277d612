package domain

type PropertyTaxInput struct {
	HomeValue              float64 `json:"homeValue" yaml:"homeValue"`
	TaxRatePercent         float64 `json:"taxRatePercent" yaml:"taxRatePercent"`
	ExemptionAmount        float64 `json:"exemptionAmount" yaml:"exemptionAmount"`
	AssessmentRatioPercent float64 `json:"assessmentRatioPercent" yaml:"assessmentRatioPercent"`
}

type TaxResult struct {
	AssessedValue float64 `json:"assessedValue" display:"currency"`
	TaxableValue  float64 `json:"taxableValue" display:"currency"`
	AnnualTax     float64 `json:"annualTax" display:"currency"`
	MonthlyTax    float64 `json:"monthlyTax" display:"currency"`
	EffectiveRate float64 `json:"effectiveRate" display:"percent2"`
}
