package repository

import (
	"sync"

	"homecalc/domain"
)

// HistoryRepositoryMemory is an in-memory implementation of HistoryRepository
// that keeps at most capacity records, dropping the oldest.
type HistoryRepositoryMemory struct {
	mu       sync.RWMutex
	data     []domain.CalculationRecord
	capacity int
}

// NewHistoryRepositoryMemory creates a new in-memory history repository.
func NewHistoryRepositoryMemory(capacity int) *HistoryRepositoryMemory {
	return &HistoryRepositoryMemory{
		data:     []domain.CalculationRecord{},
		capacity: capacity,
	}
}

// Save stores the record in memory.
func (r *HistoryRepositoryMemory) Save(record domain.CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if r.capacity > 0 && len(r.data) > r.capacity {
		r.data = append([]domain.CalculationRecord(nil), r.data[len(r.data)-r.capacity:]...)
	}
	return nil
}

func (r *HistoryRepositoryMemory) Get(id string) (domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.data {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.CalculationRecord{}, ErrNotFound
}

func (r *HistoryRepositoryMemory) List(limit int) ([]domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.data)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.CalculationRecord, 0, n)
	for i := len(r.data) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
