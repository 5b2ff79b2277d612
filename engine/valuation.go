package engine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"homecalc/domain"
)

// ProjectValue compounds appreciation on the base value and then applies the
// adjustments ordered by kind: improvements, market, location, condition.
// Adjustments of the same kind keep their input order. Each breakdown entry is
// the change that adjustment made to the running subtotal.
func ProjectValue(v domain.PropertyValuation) (domain.ValuationResult, error) {
	if err := firstErr(
		requireNonNegative("base value", v.BaseValue),
		requireNonNegative("appreciation", v.AnnualAppreciationPercent),
		requireNonNegativeYears("years elapsed", v.YearsElapsed),
	); err != nil {
		return domain.ValuationResult{}, err
	}
	for _, adj := range v.Adjustments {
		if err := validateAdjustment(adj); err != nil {
			return domain.ValuationResult{}, err
		}
	}

	appreciated := v.BaseValue * math.Pow(1+v.AnnualAppreciationPercent/100, float64(v.YearsElapsed))

	ordered := make([]domain.Adjustment, len(v.Adjustments))
	copy(ordered, v.Adjustments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Kind < ordered[j].Kind
	})

	breakdown := make([]domain.AdjustmentContribution, 0, len(ordered))
	amounts := make([]float64, 0, len(ordered))
	running := appreciated
	for _, adj := range ordered {
		before := running
		switch adj.Kind {
		case domain.AdjustImprovement:
			running += adj.Value
		case domain.AdjustMarket:
			running *= 1 + adj.Value/100
		case domain.AdjustLocation, domain.AdjustCondition:
			running *= adj.Value / 100
		}
		amount := running - before
		amounts = append(amounts, amount)
		breakdown = append(breakdown, domain.AdjustmentContribution{Kind: adj.Kind, Amount: amount})
	}

	return domain.ValuationResult{
		EstimatedValue:   appreciated + floats.Sum(amounts),
		AppreciatedValue: appreciated,
		AppreciationGain: appreciated - v.BaseValue,
		Breakdown:        breakdown,
	}, nil
}

func validateAdjustment(adj domain.Adjustment) error {
	if !adj.Kind.Valid() {
		return invalid("unknown adjustment kind %d", int(adj.Kind))
	}
	if !finite(adj.Value) {
		return invalid("%s adjustment must be a finite number", adj.Kind)
	}
	switch adj.Kind {
	case domain.AdjustMarket:
		if adj.Value < -100 {
			return invalid("market adjustment cannot be below -100%%, got %v", adj.Value)
		}
	default:
		if adj.Value < 0 {
			return invalid("%s adjustment must not be negative, got %v", adj.Kind, adj.Value)
		}
	}
	return nil
}

// EstimateHomePrice prices a home from its structure, land and upgrades. The
// condition percentage scales the structure only.
func EstimateHomePrice(in domain.HomePriceInput) (domain.HomePriceResult, error) {
	if err := firstErr(
		requireNonNegative("square footage", in.SquareFootage),
		requireNonNegative("price per square foot", in.PricePerSqFt),
		requireNonNegative("lot size", in.LotSizeAcres),
		requireNonNegative("land value per acre", in.LandValuePerAcre),
		requireNonNegative("condition", in.ConditionPercent),
		requireNonNegative("upgrades", in.Upgrades),
	); err != nil {
		return domain.HomePriceResult{}, err
	}

	structure := in.SquareFootage * in.PricePerSqFt * in.ConditionPercent / 100
	land := in.LotSizeAcres * in.LandValuePerAcre

	return domain.HomePriceResult{
		TotalPrice:     structure + land + in.Upgrades,
		StructureValue: structure,
		LandValue:      land,
		UpgradesValue:  in.Upgrades,
		PricePerAcre:   in.LandValuePerAcre,
	}, nil
}
