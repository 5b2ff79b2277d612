package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"homecalc/domain"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS calculations (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	input      BLOB NOT NULL,
	result     BLOB NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at);
`

// HistoryRepositorySQLite persists calculations in a SQLite database.
type HistoryRepositorySQLite struct {
	conn *sql.DB
	log  zerolog.Logger
}

// NewHistoryRepositorySQLite opens (creating if needed) the database at path
// and applies the schema. A "file:" URI is passed to the driver unchanged.
func NewHistoryRepositorySQLite(path string, log zerolog.Logger) (*HistoryRepositorySQLite, error) {
	if !strings.HasPrefix(path, "file:") {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		path = absPath
	}

	conn, err := sql.Open("sqlite", path+connParams(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}
	if _, err := conn.ExecContext(ctx, historySchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to apply history schema: %w", err)
	}

	return &HistoryRepositorySQLite{
		conn: conn,
		log:  log.With().Str("repository", "history_sqlite").Logger(),
	}, nil
}

func connParams(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return sep + "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

func (r *HistoryRepositorySQLite) Save(record domain.CalculationRecord) error {
	_, err := r.conn.Exec(
		`INSERT INTO calculations (id, kind, input, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		record.ID, record.Kind.String(), record.Input, record.Result, record.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert calculation %s: %w", record.ID, err)
	}
	return nil
}

func (r *HistoryRepositorySQLite) Get(id string) (domain.CalculationRecord, error) {
	row := r.conn.QueryRow(
		`SELECT id, kind, input, result, created_at FROM calculations WHERE id = ?`, id,
	)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CalculationRecord{}, ErrNotFound
	}
	if err != nil {
		return domain.CalculationRecord{}, fmt.Errorf("failed to load calculation %s: %w", id, err)
	}
	return rec, nil
}

func (r *HistoryRepositorySQLite) List(limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.conn.Query(
		`SELECT id, kind, input, result, created_at FROM calculations ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var out []domain.CalculationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			r.log.Warn().Err(err).Msg("skipping unreadable calculation row")
			continue
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepositorySQLite) Close() error {
	return r.conn.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (domain.CalculationRecord, error) {
	var (
		rec     domain.CalculationRecord
		kind    string
		created int64
	)
	if err := s.Scan(&rec.ID, &kind, &rec.Input, &rec.Result, &created); err != nil {
		return domain.CalculationRecord{}, err
	}
	if err := rec.Kind.UnmarshalText([]byte(kind)); err != nil {
		return domain.CalculationRecord{}, err
	}
	rec.CreatedAt = time.UnixMilli(created).UTC()
	return rec, nil
}
