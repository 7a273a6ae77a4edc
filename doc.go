// Package bloomlab provides a seeded bloom filter and a harness for
// measuring its false positive rate across parameter sweeps.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Hashing
//
// Each hash function is MurmurHash3 (x86, 32-bit) initialised with its own
// seed. A [SeedConfig] holds the ordered seeds; hash function i uses seed i.
// Only the low 16 bits of each digest are reduced modulo the filter size,
// which caps useful filter sizes at 65536 bits. Larger filters alias into
// their first 65536 bits rather than failing.
//
// Seeds are drawn by a [SeedGenerator] from [MinSeed, MaxSeed). Duplicate
// seeds are allowed; [SeedConfig.Duplicates] reports them.
//
// # Filters
//
// [Filter] does not fix k at construction. [Filter.Add] and [Filter.Exists]
// take the number of hash functions to use, so a filter populated with k
// hash functions can be probed with any k' <= k without false negatives.
// [Filter.Exists] returns a [Membership]: [Present], or [AbsentAt] the
// first hash function whose bit was unset.
//
//	seeds := bloomlab.NewSeedGenerator(nil).Generate(3)
//	f := bloomlab.New(10_000)
//	f.AddString("alpha", 3, seeds)
//	f.ExistsString("alpha", 3, seeds).IsPresent() // true
//
// # Experiments
//
// [HashCountSweep] varies k over a fixed 10,000-bit filter and
// [FilterSizeSweep] varies the size with k=1. Both add 500 random UUID
// keys, evaluate those plus 500 keys that were never added, and report
// false positives divided by the full 1,000-key dataset. [Report] writes
// one ratio per line.
//
// Random state is injected: pass a seeded *rand.Rand to [NewSeedGenerator]
// and a deterministic io.Reader to [NewDatasetGenerator] to reproduce a run.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use.
package bloomlab
