package bloomlab

import (
	"fmt"
	"math/bits"
)

// Membership is the outcome of a filter probe: either Present, or absent
// with the index of the first hash function whose bit was unset.
type Membership int

// Present reports that every probed bit was set: the key was added, or
// this is a false positive.
const Present Membership = -1

// AbsentAt returns the outcome for a key whose probe stopped at hash
// function i. It certifies the key was never added.
func AbsentAt(i int) Membership {
	return Membership(i)
}

// IsPresent reports whether the key may be in the filter.
func (m Membership) IsPresent() bool {
	return m == Present
}

// FailedHash returns the index of the hash function that found an unset
// bit. ok is false when the key is present.
func (m Membership) FailedHash() (idx int, ok bool) {
	if m == Present {
		return 0, false
	}
	return int(m), true
}

func (m Membership) String() string {
	if m == Present {
		return "present"
	}
	return fmt.Sprintf("absent at hash %d", int(m))
}

// Filter is a bloom filter over a byte-packed bit array of exactly size
// bits. Hash functions are not fixed at construction: every call names how
// many of a SeedConfig's seeds to use, so one filter can be probed with
// fewer hash functions than it was populated with.
//
// Filter is not safe for concurrent use.
type Filter struct {
	bits  []byte // ceil(size/8) bytes; bit i lives at bits[i/8] & (1 << (i%8))
	size  uint32 // Number of addressable bits
	count uint64 // Number of Add calls
}

// New creates an empty filter of size bits. A zero size is treated as 1.
func New(size uint32) *Filter {
	if size == 0 {
		size = 1
	}

	return &Filter{
		bits: make([]byte, (uint64(size)+7)/8),
		size: size,
	}
}

// Add sets the bits of the first k hash functions in seeds for key.
// k is clamped to seeds.Len().
func (f *Filter) Add(key []byte, k int, seeds SeedConfig) {
	k = clampK(k, seeds)
	for i := range k {
		f.set(Hash(key, seeds.Seed(i), f.size))
	}

	f.count++
}

// AddString adds a string key.
func (f *Filter) AddString(key string, k int, seeds SeedConfig) {
	f.Add([]byte(key), k, seeds)
}

// Exists probes the first k hash functions in seeds for key, in order,
// and stops at the first unset bit.
func (f *Filter) Exists(key []byte, k int, seeds SeedConfig) Membership {
	k = clampK(k, seeds)
	for i := range k {
		if !f.test(Hash(key, seeds.Seed(i), f.size)) {
			return AbsentAt(i)
		}
	}

	return Present
}

// ExistsString probes a string key.
func (f *Filter) ExistsString(key string, k int, seeds SeedConfig) Membership {
	return f.Exists([]byte(key), k, seeds)
}

func (f *Filter) set(idx uint32) {
	f.bits[idx/8] |= 1 << (idx % 8)
}

func (f *Filter) test(idx uint32) bool {
	return f.bits[idx/8]&(1<<(idx%8)) != 0
}

func clampK(k int, seeds SeedConfig) int {
	return max(0, min(k, seeds.Len()))
}

// Size returns the number of addressable bits.
func (f *Filter) Size() uint32 {
	return f.size
}

// Count returns the number of Add calls.
func (f *Filter) Count() uint64 {
	return f.count
}

// Bytes returns the backing bit array. It is meant for diagnostics and
// must not be modified.
func (f *Filter) Bytes() []byte {
	return f.bits
}

// String renders the raw bit array.
func (f *Filter) String() string {
	return fmt.Sprintf("%v", f.bits)
}

// EstimatedFillRatio returns the proportion of the size bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	var setBits int
	for _, b := range f.bits {
		setBits += bits.OnesCount8(b)
	}
	return float64(setBits) / float64(f.size)
}

// EstimatedFalsePositiveRate estimates the false positive rate of probing
// with k hash functions, assuming every Add used at least k.
func (f *Filter) EstimatedFalsePositiveRate(k int) float64 {
	return EstimateFalsePositiveRate(f.size, k, f.count)
}
