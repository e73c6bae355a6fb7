package sqlite

import (
	"context"

	"kbase"
)

// Compile-time interface verification.
var _ kbase.CounterService = (*CounterService)(nil)

// CounterService implements kbase.CounterService using SQLite.
type CounterService struct {
	db *DB
}

// NewCounterService creates a new CounterService.
func NewCounterService(db *DB) *CounterService {
	return &CounterService{db: db}
}

// NextValue atomically increments the named counter and returns the
// post-increment value, creating the counter on first use.
//
// The upsert-with-RETURNING form is a single indivisible statement:
// concurrent callers are serialized by the database and can never
// observe the same value. Reading the current value and writing value+1
// as two statements would allow two callers to mint the same identifier.
func (s *CounterService) NextValue(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, kbase.Errorf(kbase.EINVALID, "counter name required")
	}

	var value int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO counters (name, value) VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = value + 1
		RETURNING value
	`, name).Scan(&value)
	if err != nil {
		return 0, err
	}
	return value, nil
}

// SeedCounter raises the named counter to at least floor. The MAX upsert
// guarantees the value never decreases, so seeding below the current
// value is a no-op.
func (s *CounterService) SeedCounter(ctx context.Context, name string, floor int64) error {
	if name == "" {
		return kbase.Errorf(kbase.EINVALID, "counter name required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO counters (name, value) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = MAX(value, excluded.value)
	`, name, floor)
	return err
}
