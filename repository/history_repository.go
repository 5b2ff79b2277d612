package repository

import (
	"errors"

	"homecalc/domain"
)

// ErrNotFound is returned when a history record does not exist.
var ErrNotFound = errors.New("record not found")

// HistoryRepository stores completed calculations.
type HistoryRepository interface {
	Save(record domain.CalculationRecord) error
	Get(id string) (domain.CalculationRecord, error)
	// List returns up to limit records, newest first.
	List(limit int) ([]domain.CalculationRecord, error)
}
