package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"homecalc/domain"
	"homecalc/engine"
)

// MaxTermRangeYears bounds how many terms one recommendation evaluates.
const MaxTermRangeYears = 40

// ErrNoEligibleTerm is returned when every term exceeds the payment ceiling.
var ErrNoEligibleTerm = errors.New("no term fits the maximum monthly payment")

// RecommendTerm evaluates every whole-year term in the requested range and
// ranks those whose payment fits under the ceiling.
func (s *CalculatorService) RecommendTerm(in domain.TermRecommendationInput) (domain.TermRecommendationResult, error) {
	if err := in.Preference.Validate(); err != nil {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: %v", engine.ErrInvalidParameter, err)
	}
	if in.MinTermYears <= 0 || in.MaxTermYears < in.MinTermYears {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: term range %d-%d", engine.ErrInvalidParameter, in.MinTermYears, in.MaxTermYears)
	}
	if in.MaxMonthlyPayment <= 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: maximum monthly payment must be positive", engine.ErrInvalidParameter)
	}
	if err := runChecks(
		amount("loan amount", in.LoanAmount),
		amount("maximum monthly payment", in.MaxMonthlyPayment),
		rate("interest rate", in.AnnualRatePercent),
		years("maximum term", in.MaxTermYears),
	); err != nil {
		return domain.TermRecommendationResult{}, err
	}
	if in.MaxTermYears-in.MinTermYears > MaxTermRangeYears {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: term range exceeds %d years", ErrLimitExceeded, MaxTermRangeYears)
	}

	var candidates []domain.TermRecommendation
	for term := in.MinTermYears; term <= in.MaxTermYears; term++ {
		payment, err := engine.MonthlyPayment(in.LoanAmount, in.AnnualRatePercent, term)
		if err != nil {
			return domain.TermRecommendationResult{}, err
		}
		if payment > in.MaxMonthlyPayment {
			continue
		}
		candidates = append(candidates, domain.TermRecommendation{
			TermYears:      term,
			MonthlyPayment: payment,
			TotalInterest:  payment*float64(term*12) - in.LoanAmount,
			Reason:         termReason(in.Preference),
		})
	}
	if len(candidates) == 0 {
		return domain.TermRecommendationResult{}, ErrNoEligibleTerm
	}

	scoreTerms(candidates, in)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	s.log.Debug().
		Int("candidates", len(candidates)).
		Int("recommended", candidates[0].TermYears).
		Str("preference", string(in.Preference)).
		Msg("term recommendation")

	return domain.TermRecommendationResult{
		RecommendedTermYears: candidates[0].TermYears,
		Recommendations:      candidates,
	}, nil
}

// scoreTerms assigns each candidate a 0-10 score. Interest and payment are
// normalized across the candidates; shorter terms earn a small bonus.
func scoreTerms(candidates []domain.TermRecommendation, in domain.TermRecommendationInput) {
	minInterest, maxInterest := math.Inf(1), math.Inf(-1)
	minPayment, maxPayment := math.Inf(1), math.Inf(-1)
	for _, c := range candidates {
		minInterest = math.Min(minInterest, c.TotalInterest)
		maxInterest = math.Max(maxInterest, c.TotalInterest)
		minPayment = math.Min(minPayment, c.MonthlyPayment)
		maxPayment = math.Max(maxPayment, c.MonthlyPayment)
	}
	termSpan := float64(in.MaxTermYears - in.MinTermYears)

	for i := range candidates {
		c := &candidates[i]
		interestScore := normalizedLow(c.TotalInterest, minInterest, maxInterest)
		paymentScore := normalizedLow(c.MonthlyPayment, minPayment, maxPayment)
		termScore := 10.0
		if termSpan > 0 {
			termScore = 10 * (1 - float64(c.TermYears-in.MinTermYears)/termSpan)
		}

		var score float64
		switch in.Preference {
		case domain.PreferLowestInterest:
			score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
		case domain.PreferLowestPayment:
			score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
		default:
			score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
		}
		c.Score = math.Round(score*100) / 100
	}
}

// normalizedLow maps v in [lo, hi] to 10 at lo and 0 at hi.
func normalizedLow(v, lo, hi float64) float64 {
	if hi <= lo {
		return 10
	}
	return 10 * (1 - (v-lo)/(hi-lo))
}

func termReason(p domain.TermPreference) string {
	switch p {
	case domain.PreferLowestInterest:
		return "Keeps total interest as low as the payment ceiling allows"
	case domain.PreferLowestPayment:
		return "Keeps the monthly payment as low as possible"
	}
	return "Balances the monthly payment against total interest"
}
