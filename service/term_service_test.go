package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecalc/domain"
	"homecalc/engine"
)

func termInput(pref domain.TermPreference) domain.TermRecommendationInput {
	return domain.TermRecommendationInput{
		LoanAmount:        200000,
		AnnualRatePercent: 6,
		MinTermYears:      10,
		MaxTermYears:      30,
		MaxMonthlyPayment: 2000,
		Preference:        pref,
	}
}

func TestRecommendTerm_Preferences(t *testing.T) {
	tests := []struct {
		pref domain.TermPreference
		want int
	}{
		{domain.PreferLowestInterest, 12},
		{domain.PreferLowestPayment, 23},
		{domain.PreferBalanced, 16},
	}

	for _, tt := range tests {
		t.Run(string(tt.pref), func(t *testing.T) {
			svc, _, _ := newTestService(t)

			res, err := svc.RecommendTerm(termInput(tt.pref))
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.RecommendedTermYears)
			assert.Equal(t, res.RecommendedTermYears, res.Recommendations[0].TermYears)
		})
	}
}

func TestRecommendTerm_FiltersAndSorts(t *testing.T) {
	svc, history, _ := newTestService(t)

	res, err := svc.RecommendTerm(termInput(domain.PreferBalanced))
	require.NoError(t, err)

	// 10 and 11 years exceed the $2,000 ceiling.
	assert.Len(t, res.Recommendations, 19)
	for i, rec := range res.Recommendations {
		assert.LessOrEqual(t, rec.MonthlyPayment, 2000.0)
		assert.GreaterOrEqual(t, rec.TermYears, 12)
		assert.NotEmpty(t, rec.Reason)
		if i > 0 {
			assert.LessOrEqual(t, rec.Score, res.Recommendations[i-1].Score)
		}
	}
	assert.Empty(t, history.Saved)
}

func TestRecommendTerm_NoEligibleTerm(t *testing.T) {
	svc, _, _ := newTestService(t)
	in := termInput(domain.PreferBalanced)
	in.MaxMonthlyPayment = 500

	_, err := svc.RecommendTerm(in)

	assert.ErrorIs(t, err, ErrNoEligibleTerm)
}

func TestRecommendTerm_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.TermRecommendationInput)
		want   error
	}{
		{"unknown preference", func(in *domain.TermRecommendationInput) { in.Preference = "fastest" }, engine.ErrInvalidParameter},
		{"inverted range", func(in *domain.TermRecommendationInput) { in.MinTermYears = 31 }, engine.ErrInvalidParameter},
		{"zero ceiling", func(in *domain.TermRecommendationInput) { in.MaxMonthlyPayment = 0 }, engine.ErrInvalidParameter},
		{"term over limit", func(in *domain.TermRecommendationInput) { in.MaxTermYears = 60 }, ErrLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			in := termInput(domain.PreferBalanced)
			tt.mutate(&in)

			_, err := svc.RecommendTerm(in)

			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsInvalidInput(err))
		})
	}
}
