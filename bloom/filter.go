// Package bloom provides probabilistic dedup of imported content.
package bloom

import (
	"kbase"

	"github.com/bits-and-blooms/bloom/v3"
)

// Ensure Filter implements kbase.SeenFilter at compile time.
var _ kbase.SeenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter keyed by content hash.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a content hash to the filter.
func (f *Filter) Add(hash string) {
	f.f.AddString(hash)
}

// Test returns true if the hash might have been seen before.
// False positives are possible; false negatives are not.
func (f *Filter) Test(hash string) bool {
	return f.f.TestString(hash)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
