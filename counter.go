package kbase

import (
	"context"
	"fmt"
)

// Defaults for article identifier allocation.
const (
	DefaultCounterName      = "kb"
	DefaultIdentifierPrefix = "KB"
	DefaultPadWidth         = 6
)

// Counter is a named, monotonically non-decreasing integer. It is the
// uniqueness root for article identifiers: no two successful allocations
// against the same name ever observe the same value.
type Counter struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// CounterService represents the atomically-incrementable cell backing
// identifier allocation. Implementations must perform NextValue as a
// single indivisible read-modify-write in the store; a separate read
// followed by a write is not an acceptable implementation.
type CounterService interface {
	// NextValue atomically increments the named counter and returns the
	// post-increment value. The counter is created lazily on first use.
	NextValue(ctx context.Context, name string) (int64, error)

	// SeedCounter raises the named counter to at least floor, creating
	// it if needed. The counter value never decreases.
	SeedCounter(ctx context.Context, name string, floor int64) error
}

// FormatIdentifier renders an identifier as prefix, a dash, and the value
// left-padded with zeros to pad digits (e.g. "KB-001001"). A pad of zero
// or less uses DefaultPadWidth.
func FormatIdentifier(prefix string, value int64, pad int) string {
	if prefix == "" {
		prefix = DefaultIdentifierPrefix
	}
	if pad <= 0 {
		pad = DefaultPadWidth
	}
	return fmt.Sprintf("%s-%0*d", prefix, pad, value)
}

// Allocator mints unique, strictly increasing article identifiers from a
// named counter. It is safe for concurrent use: each Allocate call maps
// to one atomic increment in the store.
type Allocator struct {
	Counters CounterService

	// Counter name, identifier prefix, and zero-pad width.
	// Zero values fall back to the package defaults.
	Counter string
	Prefix  string
	Pad     int
}

// Allocate returns the next identifier for the allocator's counter.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	name := a.Counter
	if name == "" {
		name = DefaultCounterName
	}
	value, err := a.Counters.NextValue(ctx, name)
	if err != nil {
		return "", err
	}
	return FormatIdentifier(a.Prefix, value, a.Pad), nil
}
