// Package bloom detects repeated article content across a batch using a
// Bloom filter.
package bloom

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter records article texts already seen. It is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected articles
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// key normalizes whitespace so that reformatted copies of the same text
// collide.
func key(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Seen records text and reports whether it had already been seen.
func (f *Filter) Seen(text string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(key(text))
}
