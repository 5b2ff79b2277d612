package service

import (
	"fmt"
	"time"

	"homecalc/domain"
	"homecalc/repository"
)

// HistoryEntry is a stored calculation with its input and result decoded
// into the calculator's own types.
type HistoryEntry struct {
	ID        string                `json:"id"`
	Kind      domain.CalculatorKind `json:"kind"`
	Input     any                   `json:"input"`
	Result    any                   `json:"result"`
	CreatedAt time.Time             `json:"createdAt"`
}

// History returns the most recent calculations, newest first.
func (s *CalculatorService) History(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > s.maxHistory {
		limit = s.maxHistory
	}
	records, err := s.history.List(limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		entry, err := decodeRecord(rec)
		if err != nil {
			s.log.Warn().Err(err).Str("id", rec.ID).Msg("skipping undecodable history record")
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Calculation returns one stored calculation. It wraps repository.ErrNotFound
// when id is unknown.
func (s *CalculatorService) Calculation(id string) (HistoryEntry, error) {
	rec, err := s.history.Get(id)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("get calculation %s: %w", id, err)
	}
	return decodeRecord(rec)
}

// recordTypes returns fresh input and result values for a calculator kind.
func recordTypes(kind domain.CalculatorKind) (in, out any, err error) {
	switch kind {
	case domain.KindMortgage:
		return &domain.MortgageInput{}, &domain.MortgageResult{}, nil
	case domain.KindHomeLoan:
		return &domain.HomeLoanInput{}, &domain.HomeLoanResult{}, nil
	case domain.KindAffordability:
		return &domain.AffordabilityInput{}, &domain.AffordabilityResult{}, nil
	case domain.KindHomePrice:
		return &domain.HomePriceInput{}, &domain.HomePriceResult{}, nil
	case domain.KindRentVsBuy:
		return &domain.RentVsBuyScenario{}, &domain.RentVsBuyResult{}, nil
	case domain.KindHomeEquity:
		return &domain.HomeEquityInput{}, &domain.HomeEquityResult{}, nil
	case domain.KindMortgagePayment:
		return &domain.PaymentPlanInput{}, &domain.PaymentPlanResult{}, nil
	case domain.KindHomeValue:
		return &domain.PropertyValuation{}, &domain.ValuationResult{}, nil
	case domain.KindPropertyTax:
		return &domain.PropertyTaxInput{}, &domain.TaxResult{}, nil
	case domain.KindROI:
		return &domain.InvestmentScenario{}, &domain.InvestmentResult{}, nil
	default:
		return nil, nil, fmt.Errorf("no record types for calculator %s", kind)
	}
}

func decodeRecord(rec domain.CalculationRecord) (HistoryEntry, error) {
	in, out, err := recordTypes(rec.Kind)
	if err != nil {
		return HistoryEntry{}, err
	}
	if err := repository.Decode(rec.Input, in); err != nil {
		return HistoryEntry{}, fmt.Errorf("decode input: %w", err)
	}
	if err := repository.Decode(rec.Result, out); err != nil {
		return HistoryEntry{}, fmt.Errorf("decode result: %w", err)
	}
	return HistoryEntry{ID: rec.ID, Kind: rec.Kind, Input: in, Result: out, CreatedAt: rec.CreatedAt}, nil
}
