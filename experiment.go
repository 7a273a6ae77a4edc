package bloomlab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"k8s.io/klog/v2"
)

// Point is one measurement of a parameter sweep.
type Point struct {
	Size           uint32 // Filter size in bits
	K              int    // Hash functions used for Add and Exists
	FalsePositives int    // Non-members reported present
	Total          int    // Keys evaluated: members and non-members
	// Ratio is FalsePositives / Total. The denominator is the whole
	// dataset, not just the non-members, so with a balanced dataset it is
	// half the false positive rate.
	Ratio float64
	// Expected is the theoretical false positive rate under the same
	// normalisation as Ratio.
	Expected float64
}

// HashCountSweep measures false positives while varying the number of
// hash functions on a fixed-size filter.
type HashCountSweep struct {
	Size      uint32 // Filter size in bits
	Positives int    // Keys added to each filter
	Negatives int    // Keys never added
	// SeedCount is the number of seeds generated. k runs from 1 to
	// SeedCount-1, so the last seed is never used.
	SeedCount int
}

// DefaultHashCountSweep returns a 10,000-bit sweep over k = 1..99 with
// 500 members and 500 non-members.
func DefaultHashCountSweep() HashCountSweep {
	return HashCountSweep{
		Size:      10_000,
		Positives: 500,
		Negatives: 500,
		SeedCount: 100,
	}
}

// Validate reports whether the sweep has at least one point.
func (s HashCountSweep) Validate() error {
	if s.Size == 0 {
		return fmt.Errorf("%w: filter size must be positive", ErrInvalidSweep)
	}
	if s.SeedCount < 2 {
		return fmt.Errorf("%w: need at least 2 seeds, got %d", ErrInvalidSweep, s.SeedCount)
	}
	return validateCounts(s.Positives, s.Negatives)
}

// Run generates the seeds and the dataset, then measures one point per k.
//
// TODO: k stops at SeedCount-1. Decide with the existing result sets
// whether the final seed should be swept too before changing the bound.
func (s HashCountSweep) Run(seeds *SeedGenerator, data *DatasetGenerator) ([]Point, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cfg := seeds.Generate(s.SeedCount)
	logSeeds(cfg)

	d, err := data.Generate(s.Positives, s.Negatives)
	if err != nil {
		return nil, err
	}

	klog.V(2).Infof("hash count sweep: size=%d k=1..%d keys=%d", s.Size, cfg.Len()-1, d.Len())

	points := make([]Point, 0, cfg.Len()-1)
	for k := 1; k < cfg.Len(); k++ {
		points = append(points, measure(d, s.Size, k, cfg))
	}
	return points, nil
}

// FilterSizeSweep measures false positives while varying the filter size
// with a fixed number of hash functions.
type FilterSizeSweep struct {
	MinSize   uint32 // First size, inclusive
	MaxSize   uint32 // Upper bound, exclusive
	Step      uint32 // Size increment
	K         int    // Hash functions per operation
	Positives int
	Negatives int
}

// DefaultFilterSizeSweep returns a single-hash sweep over sizes
// 1000, 1200, ..., 9800 with 500 members and 500 non-members.
func DefaultFilterSizeSweep() FilterSizeSweep {
	return FilterSizeSweep{
		MinSize:   1_000,
		MaxSize:   10_000,
		Step:      200,
		K:         1,
		Positives: 500,
		Negatives: 500,
	}
}

// Sizes returns the filter sizes the sweep visits, in order.
func (s FilterSizeSweep) Sizes() []uint32 {
	if s.Step == 0 {
		return nil
	}

	var sizes []uint32
	for size := uint64(s.MinSize); size < uint64(s.MaxSize); size += uint64(s.Step) {
		sizes = append(sizes, uint32(size))
	}
	return sizes
}

// Validate reports whether the sweep has at least one point.
func (s FilterSizeSweep) Validate() error {
	switch {
	case s.MinSize == 0:
		return fmt.Errorf("%w: filter size must be positive", ErrInvalidSweep)
	case s.Step == 0:
		return fmt.Errorf("%w: step must be positive", ErrInvalidSweep)
	case s.MinSize >= s.MaxSize:
		return fmt.Errorf("%w: empty size range [%d, %d)", ErrInvalidSweep, s.MinSize, s.MaxSize)
	case s.K < 1:
		return fmt.Errorf("%w: need at least 1 hash function, got %d", ErrInvalidSweep, s.K)
	}
	return validateCounts(s.Positives, s.Negatives)
}

// Run generates K seeds and the dataset, then measures one point per size.
func (s FilterSizeSweep) Run(seeds *SeedGenerator, data *DatasetGenerator) ([]Point, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cfg := seeds.Generate(s.K)
	logSeeds(cfg)

	d, err := data.Generate(s.Positives, s.Negatives)
	if err != nil {
		return nil, err
	}

	sizes := s.Sizes()
	klog.V(2).Infof("filter size sweep: k=%d sizes=%d..%d step=%d keys=%d", s.K, s.MinSize, sizes[len(sizes)-1], s.Step, d.Len())

	points := make([]Point, 0, len(sizes))
	for _, size := range sizes {
		points = append(points, measure(d, size, s.K, cfg))
	}
	return points, nil
}

// measure builds a fresh filter, adds the dataset's members and counts
// how many non-members it reports present.
func measure(d *Dataset, size uint32, k int, cfg SeedConfig) Point {
	f := New(size)
	for _, key := range d.Inserted {
		f.AddString(key, k, cfg)
	}

	var fp int
	for _, key := range d.All {
		if f.ExistsString(key, k, cfg).IsPresent() && d.IsNegative(key) {
			fp++
		}
	}

	p := Point{
		Size:           size,
		K:              k,
		FalsePositives: fp,
		Total:          d.Len(),
	}
	if p.Total > 0 {
		p.Ratio = float64(fp) / float64(p.Total)
		p.Expected = f.EstimatedFalsePositiveRate(k) * float64(len(d.NotInserted)) / float64(p.Total)
	}

	klog.V(1).Infof("size=%d k=%d false_positives=%d ratio=%.4f expected=%.4f fill=%.4f",
		p.Size, p.K, p.FalsePositives, p.Ratio, p.Expected, f.EstimatedFillRatio())
	return p
}

func validateCounts(positives, negatives int) error {
	if positives < 0 || negatives < 0 {
		return fmt.Errorf("%w: negative key count (positives=%d, negatives=%d)", ErrInvalidSweep, positives, negatives)
	}
	if positives+negatives == 0 {
		return fmt.Errorf("%w: empty dataset", ErrInvalidSweep)
	}
	return nil
}

func logSeeds(cfg SeedConfig) {
	if dups := cfg.Duplicates(); dups > 0 {
		klog.V(1).Infof("%d of %d hash seeds are duplicates", dups, cfg.Len())
	}
	klog.V(2).Infof("hash seeds: %v", cfg.Seeds())
}

// Report writes one ratio per line, in sweep order.
func Report(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		bw.WriteString(strconv.FormatFloat(p.Ratio, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
