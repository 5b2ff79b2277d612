package domain

// LoanTerms describes a fixed-rate, fully amortizing loan.
type LoanTerms struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	TermYears         int     `json:"termYears" yaml:"termYears"`
}

// Months is the number of scheduled monthly payments.
func (t LoanTerms) Months() int {
	return t.TermYears * 12
}

// MonthlyRate is the periodic rate as a fraction.
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRatePercent / 1200
}

type SchedulePoint struct {
	Month            int     `json:"month"`
	RemainingBalance float64 `json:"remainingBalance"`
	InterestPaid     float64 `json:"interestPaid"`
	PrincipalPaid    float64 `json:"principalPaid"`
}

type PayoffResult struct {
	BasePayment       float64         `json:"basePayment" display:"currency"`
	MonthsToPayoff    int             `json:"monthsToPayoff" display:"count"`
	TotalInterestPaid float64         `json:"totalInterestPaid" display:"currency"`
	Schedule          []SchedulePoint `json:"schedule,omitempty"`
}

type MortgageInput struct {
	HomePrice          float64 `json:"homePrice" yaml:"homePrice"`
	DownPaymentPercent float64 `json:"downPaymentPercent" yaml:"downPaymentPercent"`
	AnnualRatePercent  float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	TermYears          int     `json:"termYears" yaml:"termYears"`
}

type MortgageResult struct {
	DownPaymentAmount float64 `json:"downPaymentAmount" display:"currency"`
	LoanAmount        float64 `json:"loanAmount" display:"currency"`
	MonthlyPayment    float64 `json:"monthlyPayment" display:"cents"`
	TotalPayment      float64 `json:"totalPayment" display:"cents"`
	TotalInterest     float64 `json:"totalInterest" display:"cents"`
}

// HomeLoanInput adds escrow items and PMI to a mortgage. PMIRatePercent is an
// annual rate charged on the loan amount while the down payment is below 20%.
type HomeLoanInput struct {
	HomePrice              float64 `json:"homePrice" yaml:"homePrice"`
	DownPaymentPercent     float64 `json:"downPaymentPercent" yaml:"downPaymentPercent"`
	AnnualRatePercent      float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	TermYears              int     `json:"termYears" yaml:"termYears"`
	PropertyTaxRatePercent float64 `json:"propertyTaxRatePercent" yaml:"propertyTaxRatePercent"`
	AnnualInsurance        float64 `json:"annualInsurance" yaml:"annualInsurance"`
	PMIRatePercent         float64 `json:"pmiRatePercent" yaml:"pmiRatePercent"`
}

type HomeLoanResult struct {
	LoanAmount           float64 `json:"loanAmount" display:"currency"`
	PrincipalAndInterest float64 `json:"principalAndInterest" display:"cents"`
	PropertyTax          float64 `json:"propertyTax" display:"cents"`
	Insurance            float64 `json:"insurance" display:"cents"`
	PMI                  float64 `json:"pmi" display:"cents"`
	TotalMonthly         float64 `json:"totalMonthly" display:"cents"`
	TotalPayment         float64 `json:"totalPayment" display:"cents"`
	TotalInterest        float64 `json:"totalInterest" display:"cents"`
}

type PaymentPlanInput struct {
	LoanAmount             float64 `json:"loanAmount" yaml:"loanAmount"`
	AnnualRatePercent      float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	TermYears              int     `json:"termYears" yaml:"termYears"`
	ExtraMonthlyPayment    float64 `json:"extraMonthlyPayment" yaml:"extraMonthlyPayment"`
	PropertyTaxRatePercent float64 `json:"propertyTaxRatePercent" yaml:"propertyTaxRatePercent"`
	AnnualInsurance        float64 `json:"annualInsurance" yaml:"annualInsurance"`
}

type PaymentPlanResult struct {
	PrincipalAndInterest float64 `json:"principalAndInterest" display:"cents"`
	MonthlyTax           float64 `json:"monthlyTax" display:"cents"`
	MonthlyInsurance     float64 `json:"monthlyInsurance" display:"cents"`
	TotalMonthly         float64 `json:"totalMonthly" display:"cents"`
	TotalWithExtra       float64 `json:"totalWithExtra" display:"cents"`
	MonthsToPayoff       int     `json:"monthsToPayoff" display:"count"`
	YearsToPayoff        float64 `json:"yearsToPayoff" display:"years"`
	MonthsSaved          int     `json:"monthsSaved" display:"count"`
	InterestSaved        float64 `json:"interestSaved" display:"currency"`
	TotalInterest        float64 `json:"totalInterest" display:"currency"`
}
