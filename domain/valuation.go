package domain

import "fmt"

// AdjustmentKind orders valuation adjustments. Kinds apply in ascending order.
type AdjustmentKind int

const (
	// AdjustImprovement adds Value as a currency amount.
	AdjustImprovement AdjustmentKind = iota
	// AdjustMarket scales by 1 + Value/100.
	AdjustMarket
	// AdjustLocation scales by Value/100 (100 is neutral).
	AdjustLocation
	// AdjustCondition scales by Value/100 (100 is neutral).
	AdjustCondition
)

var adjustmentKindNames = [...]string{
	AdjustImprovement: "improvement",
	AdjustMarket:      "market",
	AdjustLocation:    "location",
	AdjustCondition:   "condition",
}

func (k AdjustmentKind) String() string {
	if k < 0 || int(k) >= len(adjustmentKindNames) {
		return fmt.Sprintf("adjustment(%d)", int(k))
	}
	return adjustmentKindNames[k]
}

// Valid reports whether k is a known kind.
func (k AdjustmentKind) Valid() bool {
	return k >= 0 && int(k) < len(adjustmentKindNames)
}

func (k AdjustmentKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown adjustment kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *AdjustmentKind) UnmarshalText(text []byte) error {
	for i, name := range adjustmentKindNames {
		if name == string(text) {
			*k = AdjustmentKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown adjustment kind %q", string(text))
}

type Adjustment struct {
	Kind  AdjustmentKind `json:"kind" yaml:"kind"`
	Value float64        `json:"value" yaml:"value"`
}

type PropertyValuation struct {
	BaseValue                 float64      `json:"baseValue" yaml:"baseValue"`
	AnnualAppreciationPercent float64      `json:"annualAppreciationPercent" yaml:"annualAppreciationPercent"`
	YearsElapsed              int          `json:"yearsElapsed" yaml:"yearsElapsed"`
	Adjustments               []Adjustment `json:"adjustments" yaml:"adjustments"`
}

// AdjustmentContribution is the value one adjustment added on top of the
// running subtotal of everything applied before it.
type AdjustmentContribution struct {
	Kind   AdjustmentKind `json:"kind"`
	Amount float64        `json:"amount" display:"currency"`
}

type ValuationResult struct {
	EstimatedValue   float64                  `json:"estimatedValue" display:"currency"`
	AppreciatedValue float64                  `json:"appreciatedValue" display:"currency"`
	AppreciationGain float64                  `json:"appreciationGain" display:"currency"`
	Breakdown        []AdjustmentContribution `json:"breakdown"`
}

// HomePriceInput estimates a price from structure size, land and upgrades.
// ConditionPercent of 100 is average condition.
type HomePriceInput struct {
	SquareFootage    float64 `json:"squareFootage" yaml:"squareFootage"`
	PricePerSqFt     float64 `json:"pricePerSqFt" yaml:"pricePerSqFt"`
	LotSizeAcres     float64 `json:"lotSizeAcres" yaml:"lotSizeAcres"`
	LandValuePerAcre float64 `json:"landValuePerAcre" yaml:"landValuePerAcre"`
	ConditionPercent float64 `json:"conditionPercent" yaml:"conditionPercent"`
	Upgrades         float64 `json:"upgrades" yaml:"upgrades"`
}

type HomePriceResult struct {
	TotalPrice     float64 `json:"totalPrice" display:"currency"`
	StructureValue float64 `json:"structureValue" display:"currency"`
	LandValue      float64 `json:"landValue" display:"currency"`
	UpgradesValue  float64 `json:"upgradesValue" display:"currency"`
	PricePerAcre   float64 `json:"pricePerAcre" display:"currency"`
}
