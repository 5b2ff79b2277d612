package domain

type RentVsBuyScenario struct {
	HomePrice                 float64 `json:"homePrice" yaml:"homePrice"`
	DownPaymentPercent        float64 `json:"downPaymentPercent" yaml:"downPaymentPercent"`
	AnnualRatePercent         float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	TermYears                 int     `json:"termYears" yaml:"termYears"`
	PropertyTaxRatePercent    float64 `json:"propertyTaxRatePercent" yaml:"propertyTaxRatePercent"`
	AnnualInsurance           float64 `json:"annualInsurance" yaml:"annualInsurance"`
	MaintenancePercent        float64 `json:"maintenancePercent" yaml:"maintenancePercent"`
	MonthlyRent               float64 `json:"monthlyRent" yaml:"monthlyRent"`
	AnnualRentIncreasePercent float64 `json:"annualRentIncreasePercent" yaml:"annualRentIncreasePercent"`
	AnnualAppreciationPercent float64 `json:"annualAppreciationPercent" yaml:"annualAppreciationPercent"`
	TimeframeYears            int     `json:"timeframeYears" yaml:"timeframeYears"`
}

// RentVsBuyResult nets appreciation against the cost of owning:
// TotalBuyingCost already includes the down payment and has EquityBuilt
// subtracted.
type RentVsBuyResult struct {
	TotalBuyingCost   float64 `json:"totalBuyingCost" display:"currency"`
	TotalRentingCost  float64 `json:"totalRentingCost" display:"currency"`
	MonthlyBuyingCost float64 `json:"monthlyBuyingCost" display:"currency"`
	AvgMonthlyBuying  float64 `json:"avgMonthlyBuying" display:"currency"`
	AvgMonthlyRenting float64 `json:"avgMonthlyRenting" display:"currency"`
	EquityBuilt       float64 `json:"equityBuilt" display:"currency"`
	FinalHomeValue    float64 `json:"finalHomeValue" display:"currency"`
}
