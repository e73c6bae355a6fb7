package kbase_test

import (
	"context"
	"testing"

	"kbase"
	"kbase/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIdentifier(t *testing.T) {
	t.Parallel()

	t.Run("pads value with zeros", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "KB-001001", kbase.FormatIdentifier("KB", 1001, 6))
	})

	t.Run("applies defaults for empty prefix and pad", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "KB-000007", kbase.FormatIdentifier("", 7, 0))
	})

	t.Run("does not truncate wide values", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "FAQ-1234567", kbase.FormatIdentifier("FAQ", 1234567, 6))
	})
}

func TestAllocator_Allocate(t *testing.T) {
	t.Parallel()

	t.Run("formats counter values", func(t *testing.T) {
		t.Parallel()

		var gotName string
		counters := &mock.CounterService{
			NextValueFn: func(ctx context.Context, name string) (int64, error) {
				gotName = name
				return 42, nil
			},
		}

		alloc := &kbase.Allocator{Counters: counters, Counter: "faq", Prefix: "FAQ", Pad: 4}
		id, err := alloc.Allocate(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "FAQ-0042", id)
		assert.Equal(t, "faq", gotName)
	})

	t.Run("defaults counter name", func(t *testing.T) {
		t.Parallel()

		counters := &mock.CounterService{
			NextValueFn: func(ctx context.Context, name string) (int64, error) {
				assert.Equal(t, kbase.DefaultCounterName, name)
				return 1, nil
			},
		}

		alloc := &kbase.Allocator{Counters: counters}
		id, err := alloc.Allocate(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "KB-000001", id)
	})

	t.Run("propagates counter errors", func(t *testing.T) {
		t.Parallel()

		counters := &mock.CounterService{
			NextValueFn: func(ctx context.Context, name string) (int64, error) {
				return 0, kbase.Errorf(kbase.EUNAVAILABLE, "database unreachable")
			},
		}

		alloc := &kbase.Allocator{Counters: counters}
		_, err := alloc.Allocate(context.Background())

		require.Error(t, err)
		assert.Equal(t, kbase.EUNAVAILABLE, kbase.ErrorCode(err))
	})
}
