package engine

import "homecalc/domain"

// CompareRentVsBuy simulates timeframeYears one year at a time. Each year's
// costs are accumulated before rent and home value grow, so growth first
// affects the following year. The down payment is then added to the buying
// cost and the appreciation (final value less price) is subtracted from it.
func CompareRentVsBuy(s domain.RentVsBuyScenario) (domain.RentVsBuyResult, error) {
	if err := firstErr(
		requireNonNegative("home price", s.HomePrice),
		requirePercent("down payment", s.DownPaymentPercent),
		requireNonNegative("property tax rate", s.PropertyTaxRatePercent),
		requireNonNegative("insurance", s.AnnualInsurance),
		requireNonNegative("maintenance", s.MaintenancePercent),
		requireNonNegative("monthly rent", s.MonthlyRent),
		requireNonNegative("rent increase", s.AnnualRentIncreasePercent),
		requireNonNegative("appreciation", s.AnnualAppreciationPercent),
		requirePositiveYears("timeframe", s.TimeframeYears),
	); err != nil {
		return domain.RentVsBuyResult{}, err
	}

	down := s.HomePrice * s.DownPaymentPercent / 100
	mortgage, err := MonthlyPayment(s.HomePrice-down, s.AnnualRatePercent, s.TermYears)
	if err != nil {
		return domain.RentVsBuyResult{}, err
	}

	monthlyOwnership := mortgage +
		s.HomePrice*s.PropertyTaxRatePercent/100/12 +
		s.AnnualInsurance/12 +
		s.HomePrice*s.MaintenancePercent/100/12

	var buying, renting float64
	rent := s.MonthlyRent
	value := s.HomePrice
	for year := 1; year <= s.TimeframeYears; year++ {
		buying += monthlyOwnership * 12
		renting += rent * 12

		rent *= 1 + s.AnnualRentIncreasePercent/100
		value *= 1 + s.AnnualAppreciationPercent/100
	}

	equity := value - s.HomePrice
	buying += down
	buying -= equity

	months := float64(s.TimeframeYears * 12)
	return domain.RentVsBuyResult{
		TotalBuyingCost:   buying,
		TotalRentingCost:  renting,
		MonthlyBuyingCost: monthlyOwnership,
		AvgMonthlyBuying:  buying / months,
		AvgMonthlyRenting: renting / months,
		EquityBuilt:       equity,
		FinalHomeValue:    value,
	}, nil
}
