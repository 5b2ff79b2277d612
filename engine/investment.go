package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"homecalc/domain"
)

// AnalyzeInvestment runs the rental pipeline: cash invested, effective rent
// after vacancy, a 30-year mortgage on the financed part, operating expenses,
// cash flow, appreciation over the holding period and the principal paid down
// by the mortgage over the same period.
//
// CapRate divides annual effective rent less annual operating expenses
// (everything but the mortgage) by the purchase price.
func AnalyzeInvestment(s domain.InvestmentScenario) (domain.InvestmentResult, error) {
	if err := firstErr(
		requireNonNegative("purchase price", s.PurchasePrice),
		requirePercent("down payment", s.DownPaymentPercent),
		requireNonNegative("closing costs", s.ClosingCosts),
		requireNonNegative("repair costs", s.RepairCosts),
		requireNonNegative("monthly rent", s.MonthlyRent),
		requirePercent("vacancy", s.VacancyPercent),
		requireNonNegative("property tax rate", s.PropertyTaxRatePercent),
		requireNonNegative("insurance", s.AnnualInsurance),
		requireNonNegative("maintenance", s.MaintenancePercent),
		requireNonNegative("management fee", s.ManagementFeePercent),
		requireNonNegative("appreciation", s.AppreciationPercent),
		requireNonNegativeYears("holding period", s.HoldingYears),
	); err != nil {
		return domain.InvestmentResult{}, err
	}

	price := s.PurchasePrice
	down := price * s.DownPaymentPercent / 100
	totalInvestment := down + s.ClosingCosts + s.RepairCosts

	effectiveRent := s.MonthlyRent * (1 - s.VacancyPercent/100)

	loan := price - down
	mortgage, err := MonthlyPayment(loan, s.AnnualRatePercent, AssumedTermYears)
	if err != nil {
		return domain.InvestmentResult{}, err
	}

	operating := floats.Sum([]float64{
		price * s.PropertyTaxRatePercent / 100 / 12,
		s.AnnualInsurance / 12,
		price * s.MaintenancePercent / 100 / 12,
		effectiveRent * s.ManagementFeePercent / 100,
	})
	expenses := mortgage + operating

	monthlyCashFlow := effectiveRent - expenses
	annualCashFlow := monthlyCashFlow * 12

	years := float64(s.HoldingYears)
	projected := price * math.Pow(1+s.AppreciationPercent/100, years)
	equityGain := projected - price

	paidMonths := min(s.HoldingYears*12, AssumedTermYears*12)
	balance := remainingBalance(loan, s.AnnualRatePercent/1200, mortgage, paidMonths)
	principalPaid := loan - balance

	totalReturn := annualCashFlow*years + equityGain + principalPaid

	return domain.InvestmentResult{
		MonthlyRentIncome: effectiveRent,
		MonthlyMortgage:   mortgage,
		MonthlyExpenses:   expenses,
		MonthlyCashFlow:   monthlyCashFlow,
		AnnualCashFlow:    annualCashFlow,
		TotalInvestment:   totalInvestment,
		ProjectedValue:    projected,
		PrincipalPaid:     principalPaid,
		TotalReturn:       totalReturn,
		ROI:               ratio(totalReturn, totalInvestment),
		CashOnCash:        ratio(annualCashFlow, totalInvestment),
		CapRate:           ratio(effectiveRent*12-(expenses-mortgage)*12, price),
	}, nil
}
