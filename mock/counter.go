package mock

import (
	"context"

	"kbase"
)

var _ kbase.CounterService = (*CounterService)(nil)

// CounterService is a mock implementation of kbase.CounterService.
type CounterService struct {
	NextValueFn   func(ctx context.Context, name string) (int64, error)
	SeedCounterFn func(ctx context.Context, name string, floor int64) error
}

func (s *CounterService) NextValue(ctx context.Context, name string) (int64, error) {
	return s.NextValueFn(ctx, name)
}

func (s *CounterService) SeedCounter(ctx context.Context, name string, floor int64) error {
	return s.SeedCounterFn(ctx, name, floor)
}
