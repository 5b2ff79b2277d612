package engine

import (
	"math"

	"homecalc/domain"
)

// CurrentEquity reports equity and loan-to-value. LoanToValue and
// EquityPercentage always sum to 100 for a positive home value; a zero home
// value reports both as 0.
func CurrentEquity(homeValue, totalDebt float64) (domain.EquityPosition, error) {
	if err := firstErr(
		requireNonNegative("home value", homeValue),
		requireNonNegative("total debt", totalDebt),
	); err != nil {
		return domain.EquityPosition{}, err
	}

	pos := domain.EquityPosition{EquityAmount: homeValue - totalDebt}
	if homeValue == 0 {
		return pos, nil
	}
	pos.LoanToValue = totalDebt / homeValue * 100
	pos.EquityPercentage = 100 - pos.LoanToValue
	return pos, nil
}

// ProjectedEquity rolls state forward by months: the amortizing balance is
// reduced by months scheduled payments and the home value compounds at
// appreciationPercent per year for months/12 years.
func ProjectedEquity(state domain.EquityState, appreciationPercent, monthlyPayment, annualRatePercent float64, months int) (domain.EquityProjection, error) {
	if err := firstErr(
		requireNonNegative("home value", state.HomeValue),
		requireNonNegative("total debt", state.TotalDebt),
		requireNonNegative("amortizing balance", state.AmortizingBalance),
		requireNonNegative("appreciation", appreciationPercent),
	); err != nil {
		return domain.EquityProjection{}, err
	}
	if state.AmortizingBalance > state.TotalDebt {
		return domain.EquityProjection{}, invalid("amortizing balance %v exceeds total debt %v", state.AmortizingBalance, state.TotalDebt)
	}

	futureBalance, err := RemainingBalance(state.AmortizingBalance, annualRatePercent, monthlyPayment, months)
	if err != nil {
		return domain.EquityProjection{}, err
	}

	futureValue := state.HomeValue * math.Pow(1+appreciationPercent/100, float64(months)/12)
	reduction := state.AmortizingBalance - futureBalance
	futureDebt := state.TotalDebt - reduction
	futureEquity := futureValue - futureDebt

	return domain.EquityProjection{
		FutureValue:            futureValue,
		AppreciationGain:       futureValue - state.HomeValue,
		PrincipalReduction:     reduction,
		FutureDebt:             futureDebt,
		FutureEquity:           futureEquity,
		FutureEquityPercentage: ratio(futureEquity, futureValue),
	}, nil
}

// HomeEquity combines current equity with a one-year projection in which
// only the first mortgage amortizes.
func HomeEquity(in domain.HomeEquityInput) (domain.HomeEquityResult, error) {
	if err := firstErr(
		requireNonNegative("mortgage balance", in.MortgageBalance),
		requireNonNegative("second mortgage", in.SecondMortgage),
		requireNonNegative("HELOC balance", in.HELOCBalance),
	); err != nil {
		return domain.HomeEquityResult{}, err
	}

	totalDebt := in.TotalDebt()
	current, err := CurrentEquity(in.HomeValue, totalDebt)
	if err != nil {
		return domain.HomeEquityResult{}, err
	}

	projected, err := ProjectedEquity(domain.EquityState{
		HomeValue:         in.HomeValue,
		TotalDebt:         totalDebt,
		AmortizingBalance: in.MortgageBalance,
	}, in.AppreciationPercent, in.MonthlyPayment, in.AnnualRatePercent, 12)
	if err != nil {
		return domain.HomeEquityResult{}, err
	}

	return domain.HomeEquityResult{Current: current, Projected: projected}, nil
}
