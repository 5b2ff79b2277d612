package engine

import "homecalc/domain"

// PMIThresholdPercent is the down payment below which PMI is charged.
const PMIThresholdPercent = 20.0

// Mortgage splits a purchase into down payment and loan and prices the loan.
func Mortgage(in domain.MortgageInput) (domain.MortgageResult, error) {
	if err := firstErr(
		requireNonNegative("home price", in.HomePrice),
		requirePercent("down payment", in.DownPaymentPercent),
	); err != nil {
		return domain.MortgageResult{}, err
	}

	down := in.HomePrice * in.DownPaymentPercent / 100
	loan := in.HomePrice - down

	monthly, err := MonthlyPayment(loan, in.AnnualRatePercent, in.TermYears)
	if err != nil {
		return domain.MortgageResult{}, err
	}

	total := monthly * float64(in.TermYears*12)
	return domain.MortgageResult{
		DownPaymentAmount: down,
		LoanAmount:        loan,
		MonthlyPayment:    monthly,
		TotalPayment:      total,
		TotalInterest:     total - loan,
	}, nil
}

// HomeLoan adds property tax, insurance and PMI to the principal-and-interest
// payment. Property tax is charged on the home price, PMI on the loan amount.
func HomeLoan(in domain.HomeLoanInput) (domain.HomeLoanResult, error) {
	if err := firstErr(
		requireNonNegative("home price", in.HomePrice),
		requirePercent("down payment", in.DownPaymentPercent),
		requireNonNegative("property tax rate", in.PropertyTaxRatePercent),
		requireNonNegative("insurance", in.AnnualInsurance),
		requireNonNegative("PMI rate", in.PMIRatePercent),
	); err != nil {
		return domain.HomeLoanResult{}, err
	}

	loan := in.HomePrice * (1 - in.DownPaymentPercent/100)
	pi, err := MonthlyPayment(loan, in.AnnualRatePercent, in.TermYears)
	if err != nil {
		return domain.HomeLoanResult{}, err
	}

	n := float64(in.TermYears * 12)
	tax := in.HomePrice * in.PropertyTaxRatePercent / 100 / 12
	insurance := in.AnnualInsurance / 12
	var pmi float64
	if in.DownPaymentPercent < PMIThresholdPercent {
		pmi = loan * in.PMIRatePercent / 100 / 12
	}
	totalMonthly := pi + tax + insurance + pmi

	return domain.HomeLoanResult{
		LoanAmount:           loan,
		PrincipalAndInterest: pi,
		PropertyTax:          tax,
		Insurance:            insurance,
		PMI:                  pmi,
		TotalMonthly:         totalMonthly,
		TotalPayment:         totalMonthly * n,
		TotalInterest:        pi*n - loan,
	}, nil
}

// PaymentPlan shows the effect of a recurring extra payment on a loan.
// Monthly property tax is estimated on the loan amount.
func PaymentPlan(in domain.PaymentPlanInput) (domain.PaymentPlanResult, error) {
	if err := firstErr(
		requireNonNegative("property tax rate", in.PropertyTaxRatePercent),
		requireNonNegative("insurance", in.AnnualInsurance),
	); err != nil {
		return domain.PaymentPlanResult{}, err
	}

	payoff, err := SimulatePayoff(in.LoanAmount, in.AnnualRatePercent, in.TermYears, in.ExtraMonthlyPayment)
	if err != nil {
		return domain.PaymentPlanResult{}, err
	}

	n := in.TermYears * 12
	tax := in.LoanAmount * in.PropertyTaxRatePercent / 100 / 12
	insurance := in.AnnualInsurance / 12
	totalMonthly := payoff.BasePayment + tax + insurance

	return domain.PaymentPlanResult{
		PrincipalAndInterest: payoff.BasePayment,
		MonthlyTax:           tax,
		MonthlyInsurance:     insurance,
		TotalMonthly:         totalMonthly,
		TotalWithExtra:       totalMonthly + in.ExtraMonthlyPayment,
		MonthsToPayoff:       payoff.MonthsToPayoff,
		YearsToPayoff:        float64(payoff.MonthsToPayoff) / 12,
		MonthsSaved:          n - payoff.MonthsToPayoff,
		InterestSaved:        payoff.BasePayment*float64(n) - (in.LoanAmount + payoff.TotalInterestPaid),
		TotalInterest:        payoff.TotalInterestPaid,
	}, nil
}
