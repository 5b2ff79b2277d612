package domain

import "fmt"

// TermPreference weights the term recommendation.
type TermPreference string

const (
	PreferLowestInterest TermPreference = "minimize_interest"
	PreferLowestPayment  TermPreference = "minimize_payment"
	PreferBalanced       TermPreference = "balanced"
)

func (p TermPreference) Validate() error {
	switch p {
	case PreferLowestInterest, PreferLowestPayment, PreferBalanced:
		return nil
	}
	return fmt.Errorf("unknown term preference %q", string(p))
}

type TermRecommendationInput struct {
	LoanAmount        float64        `json:"loanAmount" yaml:"loanAmount"`
	AnnualRatePercent float64        `json:"annualRatePercent" yaml:"annualRatePercent"`
	MinTermYears      int            `json:"minTermYears" yaml:"minTermYears"`
	MaxTermYears      int            `json:"maxTermYears" yaml:"maxTermYears"`
	MaxMonthlyPayment float64        `json:"maxMonthlyPayment" yaml:"maxMonthlyPayment"`
	Preference        TermPreference `json:"preference" yaml:"preference"`
}

type TermRecommendation struct {
	TermYears      int     `json:"termYears"`
	MonthlyPayment float64 `json:"monthlyPayment" display:"cents"`
	TotalInterest  float64 `json:"totalInterest" display:"currency"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TermRecommendationResult struct {
	RecommendedTermYears int                  `json:"recommendedTermYears"`
	Recommendations      []TermRecommendation `json:"recommendations"`
}
