package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecalc/domain"
)

func record(id string, kind domain.CalculatorKind, at time.Time) domain.CalculationRecord {
	return domain.CalculationRecord{
		ID:        id,
		Kind:      kind,
		Input:     []byte{0x80},
		Result:    []byte{0x81, 0xa1, 'x', 0x01},
		CreatedAt: at,
	}
}

func historyRepositories(t *testing.T) map[string]HistoryRepository {
	sqliteRepo, err := NewHistoryRepositorySQLite(filepath.Join(t.TempDir(), "history.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqliteRepo.Close() })

	return map[string]HistoryRepository{
		"memory": NewHistoryRepositoryMemory(0),
		"sqlite": sqliteRepo,
	}
}

func TestHistoryRepository_SaveGetList(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for name, repo := range historyRepositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Save(record("a", domain.KindMortgage, base)))
			require.NoError(t, repo.Save(record("b", domain.KindPropertyTax, base.Add(time.Minute))))
			require.NoError(t, repo.Save(record("c", domain.KindROI, base.Add(2*time.Minute))))

			got, err := repo.Get("b")
			require.NoError(t, err)
			assert.Equal(t, domain.KindPropertyTax, got.Kind)
			assert.Equal(t, []byte{0x81, 0xa1, 'x', 0x01}, got.Result)
			assert.True(t, got.CreatedAt.Equal(base.Add(time.Minute)))

			_, err = repo.Get("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			list, err := repo.List(2)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "c", list[0].ID)
			assert.Equal(t, "b", list[1].ID)

			all, err := repo.List(0)
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestHistoryRepositoryMemory_Capacity(t *testing.T) {
	repo := NewHistoryRepositoryMemory(2)
	now := time.Now()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(record(id, domain.KindMortgage, now)))
	}

	_, err := repo.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].ID)
}
