package domain

type EquityPosition struct {
	EquityAmount     float64 `json:"equityAmount" display:"currency"`
	EquityPercentage float64 `json:"equityPercentage" display:"percent1"`
	LoanToValue      float64 `json:"loanToValue" display:"percent1"`
}

// EquityState is a snapshot of a property and its debts. AmortizingBalance is
// the part of TotalDebt that is paid down by the scheduled payment (usually
// the first mortgage).
type EquityState struct {
	HomeValue         float64 `json:"homeValue"`
	TotalDebt         float64 `json:"totalDebt"`
	AmortizingBalance float64 `json:"amortizingBalance"`
}

type EquityProjection struct {
	FutureValue            float64 `json:"futureValue" display:"currency"`
	AppreciationGain       float64 `json:"appreciationGain" display:"currency"`
	PrincipalReduction     float64 `json:"principalReduction" display:"currency"`
	FutureDebt             float64 `json:"futureDebt" display:"currency"`
	FutureEquity           float64 `json:"futureEquity" display:"currency"`
	FutureEquityPercentage float64 `json:"futureEquityPercentage" display:"percent1"`
}

type HomeEquityInput struct {
	HomeValue           float64 `json:"homeValue" yaml:"homeValue"`
	MortgageBalance     float64 `json:"mortgageBalance" yaml:"mortgageBalance"`
	SecondMortgage      float64 `json:"secondMortgage" yaml:"secondMortgage"`
	HELOCBalance        float64 `json:"helocBalance" yaml:"helocBalance"`
	MonthlyPayment      float64 `json:"monthlyPayment" yaml:"monthlyPayment"`
	AnnualRatePercent   float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	AppreciationPercent float64 `json:"appreciationPercent" yaml:"appreciationPercent"`
}

// TotalDebt sums every balance secured by the home.
func (in HomeEquityInput) TotalDebt() float64 {
	return in.MortgageBalance + in.SecondMortgage + in.HELOCBalance
}

type HomeEquityResult struct {
	Current   EquityPosition   `json:"current"`
	Projected EquityProjection `json:"projected"`
}
