package domain

type InvestmentScenario struct {
	PurchasePrice          float64 `json:"purchasePrice" yaml:"purchasePrice"`
	DownPaymentPercent     float64 `json:"downPaymentPercent" yaml:"downPaymentPercent"`
	ClosingCosts           float64 `json:"closingCosts" yaml:"closingCosts"`
	RepairCosts            float64 `json:"repairCosts" yaml:"repairCosts"`
	MonthlyRent            float64 `json:"monthlyRent" yaml:"monthlyRent"`
	VacancyPercent         float64 `json:"vacancyPercent" yaml:"vacancyPercent"`
	PropertyTaxRatePercent float64 `json:"propertyTaxRatePercent" yaml:"propertyTaxRatePercent"`
	AnnualInsurance        float64 `json:"annualInsurance" yaml:"annualInsurance"`
	MaintenancePercent     float64 `json:"maintenancePercent" yaml:"maintenancePercent"`
	ManagementFeePercent   float64 `json:"managementFeePercent" yaml:"managementFeePercent"`
	AppreciationPercent    float64 `json:"appreciationPercent" yaml:"appreciationPercent"`
	HoldingYears           int     `json:"holdingYears" yaml:"holdingYears"`
	AnnualRatePercent      float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
}

// InvestmentResult reports rental returns. CapRate is
// (annual effective rent - annual non-mortgage expenses) / price, in percent.
type InvestmentResult struct {
	MonthlyRentIncome float64 `json:"monthlyRentIncome" display:"currency"`
	MonthlyMortgage   float64 `json:"monthlyMortgage" display:"currency"`
	MonthlyExpenses   float64 `json:"monthlyExpenses" display:"currency"`
	MonthlyCashFlow   float64 `json:"monthlyCashFlow" display:"currency"`
	AnnualCashFlow    float64 `json:"annualCashFlow" display:"currency"`
	TotalInvestment   float64 `json:"totalInvestment" display:"currency"`
	ProjectedValue    float64 `json:"projectedValue" display:"currency"`
	PrincipalPaid     float64 `json:"principalPaid" display:"currency"`
	TotalReturn       float64 `json:"totalReturn" display:"currency"`
	ROI               float64 `json:"roi" display:"percent1"`
	CashOnCash        float64 `json:"cashOnCash" display:"percent1"`
	CapRate           float64 `json:"capRate" display:"percent1"`
}
