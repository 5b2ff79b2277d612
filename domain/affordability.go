package domain

type AffordabilityInput struct {
	AnnualIncome           float64 `json:"annualIncome" yaml:"annualIncome"`
	MonthlyDebts           float64 `json:"monthlyDebts" yaml:"monthlyDebts"`
	DownPayment            float64 `json:"downPayment" yaml:"downPayment"`
	AnnualRatePercent      float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	PropertyTaxRatePercent float64 `json:"propertyTaxRatePercent" yaml:"propertyTaxRatePercent"`
	AnnualInsurance        float64 `json:"annualInsurance" yaml:"annualInsurance"`
}

// AffordabilityResult is the 28/36 rule outcome. When debts or insurance
// consume the whole housing budget, Affordable is false, MaxLoanAmount and
// MaxHomePrice are zero and MaxMonthlyPayment keeps its (possibly negative)
// value.
type AffordabilityResult struct {
	Affordable           bool    `json:"affordable"`
	MaxHomePrice         float64 `json:"maxHomePrice" display:"currency"`
	MaxLoanAmount        float64 `json:"maxLoanAmount" display:"currency"`
	MaxMonthlyPayment    float64 `json:"maxMonthlyPayment" display:"currency"`
	PrincipalAndInterest float64 `json:"principalAndInterest" display:"currency"`
	PropertyTax          float64 `json:"propertyTax" display:"currency"`
	Insurance            float64 `json:"insurance" display:"currency"`
}
