package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"homecalc/domain"
	"homecalc/engine"
	"homecalc/repository"
)

// Recorder receives calculation and cache events. *metrics.Metrics satisfies it.
type Recorder interface {
	ObserveCalculation(calculator, outcome string)
	CacheHit()
	CacheMiss()
}

type nopRecorder struct{}

func (nopRecorder) ObserveCalculation(string, string) {}
func (nopRecorder) CacheHit()                         {}
func (nopRecorder) CacheMiss()                        {}

const (
	outcomeOK       = "ok"
	outcomeCached   = "cached"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// Outcome is a finished calculation together with the history record it
// was stored under.
type Outcome[R any] struct {
	ID     string
	Kind   domain.CalculatorKind
	Result R
	Cached bool
}

type CalculatorService struct {
	history repository.HistoryRepository
	cache   repository.CacheRepository
	metrics Recorder
	log     zerolog.Logger

	maxHistory int

	now   func() time.Time
	newID func() string
}

// NewCalculatorService wires the engine to storage. A nil recorder disables metrics.
func NewCalculatorService(
	history repository.HistoryRepository,
	cache repository.CacheRepository,
	metrics Recorder,
	log zerolog.Logger,
) *CalculatorService {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &CalculatorService{
		history: history,
		cache:   cache,
		metrics: metrics,
		log:     log.With().Str("component", "calculator_service").Logger(),
		now:     time.Now,
		newID:   uuid.NewString,

		maxHistory: MaxHistoryLimit,
	}
}

// WithHistoryLimit caps how many records one history listing may return.
func (s *CalculatorService) WithHistoryLimit(n int) *CalculatorService {
	if n > 0 {
		s.maxHistory = n
	}
	return s
}

// IsInvalidInput reports whether err was caused by the caller's input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrLimitExceeded) || errors.Is(err, engine.ErrInvalidParameter)
}

// calculate runs one calculator: limit checks, cache lookup, engine call,
// then caching and history. Storage failures are logged, never returned.
func calculate[In, Out any](
	s *CalculatorService,
	kind domain.CalculatorKind,
	in In,
	limits []check,
	compute func(In) (Out, error),
) (Outcome[Out], error) {
	log := s.log.With().Str("calculator", kind.String()).Logger()

	if err := runChecks(limits...); err != nil {
		s.metrics.ObserveCalculation(kind.String(), outcomeRejected)
		return Outcome[Out]{}, err
	}

	key, keyErr := repository.CacheKey(kind, in)
	if keyErr != nil {
		log.Warn().Err(keyErr).Msg("failed to derive cache key")
	}

	var (
		result Out
		cached bool
	)
	if keyErr == nil {
		if raw, ok := s.cache.Get(key); ok {
			if err := repository.Decode([]byte(raw), &result); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
			} else {
				cached = true
			}
		}
	}

	if cached {
		s.metrics.CacheHit()
	} else {
		s.metrics.CacheMiss()
		var err error
		result, err = compute(in)
		if err != nil {
			outcome := outcomeFailed
			if IsInvalidInput(err) {
				outcome = outcomeRejected
			}
			s.metrics.ObserveCalculation(kind.String(), outcome)
			return Outcome[Out]{}, err
		}
	}

	encodedIn, err := repository.Encode(in)
	if err != nil {
		s.metrics.ObserveCalculation(kind.String(), outcomeFailed)
		return Outcome[Out]{}, err
	}
	encodedOut, err := repository.Encode(result)
	if err != nil {
		s.metrics.ObserveCalculation(kind.String(), outcomeFailed)
		return Outcome[Out]{}, err
	}

	if !cached && keyErr == nil {
		if err := s.cache.Set(key, string(encodedOut)); err != nil {
			log.Warn().Err(err).Msg("failed to cache result")
		}
	}

	record := domain.CalculationRecord{
		ID:        s.newID(),
		Kind:      kind,
		Input:     encodedIn,
		Result:    encodedOut,
		CreatedAt: s.now().UTC(),
	}
	if err := s.history.Save(record); err != nil {
		log.Warn().Err(err).Msg("failed to save calculation")
	}

	outcome := outcomeOK
	if cached {
		outcome = outcomeCached
	}
	s.metrics.ObserveCalculation(kind.String(), outcome)
	log.Debug().Str("id", record.ID).Bool("cached", cached).Msg("calculation completed")

	return Outcome[Out]{ID: record.ID, Kind: kind, Result: result, Cached: cached}, nil
}

func (s *CalculatorService) Mortgage(in domain.MortgageInput) (Outcome[domain.MortgageResult], error) {
	return calculate(s, domain.KindMortgage, in, []check{
		amount("home price", in.HomePrice),
		rate("interest rate", in.AnnualRatePercent),
		years("loan term", in.TermYears),
	}, engine.Mortgage)
}

func (s *CalculatorService) HomeLoan(in domain.HomeLoanInput) (Outcome[domain.HomeLoanResult], error) {
	return calculate(s, domain.KindHomeLoan, in, []check{
		amount("home price", in.HomePrice),
		amount("annual insurance", in.AnnualInsurance),
		rate("interest rate", in.AnnualRatePercent),
		rate("property tax rate", in.PropertyTaxRatePercent),
		rate("PMI rate", in.PMIRatePercent),
		years("loan term", in.TermYears),
	}, engine.HomeLoan)
}

func (s *CalculatorService) Affordability(in domain.AffordabilityInput) (Outcome[domain.AffordabilityResult], error) {
	return calculate(s, domain.KindAffordability, in, []check{
		amount("annual income", in.AnnualIncome),
		amount("monthly debts", in.MonthlyDebts),
		amount("down payment", in.DownPayment),
		amount("annual insurance", in.AnnualInsurance),
		rate("interest rate", in.AnnualRatePercent),
		rate("property tax rate", in.PropertyTaxRatePercent),
	}, engine.MaxAffordablePrice)
}

func (s *CalculatorService) HomePrice(in domain.HomePriceInput) (Outcome[domain.HomePriceResult], error) {
	return calculate(s, domain.KindHomePrice, in, []check{
		amount("square footage", in.SquareFootage),
		amount("price per square foot", in.PricePerSqFt),
		amount("lot size", in.LotSizeAcres),
		amount("land value per acre", in.LandValuePerAcre),
		amount("upgrades", in.Upgrades),
	}, engine.EstimateHomePrice)
}

func (s *CalculatorService) RentVsBuy(in domain.RentVsBuyScenario) (Outcome[domain.RentVsBuyResult], error) {
	return calculate(s, domain.KindRentVsBuy, in, []check{
		amount("home price", in.HomePrice),
		amount("monthly rent", in.MonthlyRent),
		amount("annual insurance", in.AnnualInsurance),
		rate("interest rate", in.AnnualRatePercent),
		rate("property tax rate", in.PropertyTaxRatePercent),
		rate("rent increase", in.AnnualRentIncreasePercent),
		rate("appreciation", in.AnnualAppreciationPercent),
		years("loan term", in.TermYears),
		years("timeframe", in.TimeframeYears),
	}, engine.CompareRentVsBuy)
}

func (s *CalculatorService) HomeEquity(in domain.HomeEquityInput) (Outcome[domain.HomeEquityResult], error) {
	return calculate(s, domain.KindHomeEquity, in, []check{
		amount("home value", in.HomeValue),
		amount("total debt", in.TotalDebt()),
		amount("monthly payment", in.MonthlyPayment),
		rate("interest rate", in.AnnualRatePercent),
		rate("appreciation", in.AppreciationPercent),
	}, engine.HomeEquity)
}

func (s *CalculatorService) PaymentPlan(in domain.PaymentPlanInput) (Outcome[domain.PaymentPlanResult], error) {
	return calculate(s, domain.KindMortgagePayment, in, []check{
		amount("loan amount", in.LoanAmount),
		amount("extra payment", in.ExtraMonthlyPayment),
		amount("annual insurance", in.AnnualInsurance),
		rate("interest rate", in.AnnualRatePercent),
		rate("property tax rate", in.PropertyTaxRatePercent),
		years("loan term", in.TermYears),
	}, engine.PaymentPlan)
}

func (s *CalculatorService) HomeValue(in domain.PropertyValuation) (Outcome[domain.ValuationResult], error) {
	limits := []check{
		amount("base value", in.BaseValue),
		rate("appreciation", in.AnnualAppreciationPercent),
		years("years elapsed", in.YearsElapsed),
	}
	for _, adj := range in.Adjustments {
		limits = append(limits, amount(adj.Kind.String()+" adjustment", adj.Value))
	}
	return calculate(s, domain.KindHomeValue, in, limits, engine.ProjectValue)
}

func (s *CalculatorService) PropertyTax(in domain.PropertyTaxInput) (Outcome[domain.TaxResult], error) {
	return calculate(s, domain.KindPropertyTax, in, []check{
		amount("home value", in.HomeValue),
		amount("exemption", in.ExemptionAmount),
		rate("tax rate", in.TaxRatePercent),
	}, engine.PropertyTaxFor)
}

func (s *CalculatorService) ROI(in domain.InvestmentScenario) (Outcome[domain.InvestmentResult], error) {
	return calculate(s, domain.KindROI, in, []check{
		amount("purchase price", in.PurchasePrice),
		amount("closing costs", in.ClosingCosts),
		amount("repair costs", in.RepairCosts),
		amount("monthly rent", in.MonthlyRent),
		amount("annual insurance", in.AnnualInsurance),
		rate("interest rate", in.AnnualRatePercent),
		rate("property tax rate", in.PropertyTaxRatePercent),
		rate("appreciation", in.AppreciationPercent),
		years("holding period", in.HoldingYears),
	}, engine.AnalyzeInvestment)
}

// Schedule returns the month-by-month payoff of a loan. It is neither
// cached nor recorded.
func (s *CalculatorService) Schedule(terms domain.LoanTerms, extraMonthlyPayment float64) (domain.PayoffResult, error) {
	if err := runChecks(
		amount("principal", terms.Principal),
		amount("extra payment", extraMonthlyPayment),
		rate("interest rate", terms.AnnualRatePercent),
		years("loan term", terms.TermYears),
	); err != nil {
		return domain.PayoffResult{}, err
	}
	return engine.SimulatePayoff(terms.Principal, terms.AnnualRatePercent, terms.TermYears, extraMonthlyPayment)
}
