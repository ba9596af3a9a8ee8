// Package bloom provides probabilistic path deduplication for sitemap
// discovery.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Dedup tracks documentation paths seen across multiple sitemaps.
// False positives are possible (a new path very rarely reported as seen);
// false negatives are not.
type Dedup struct {
	f *bloom.BloomFilter
}

// NewDedup creates a Dedup sized for n expected paths with the given false
// positive rate.
func NewDedup(n uint, fpRate float64) *Dedup {
	return &Dedup{f: bloom.NewWithEstimates(n, fpRate)}
}

// Seen records path and reports whether it was already present.
func (d *Dedup) Seen(path string) bool {
	return d.f.TestAndAddString(path)
}
