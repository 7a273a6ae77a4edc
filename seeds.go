package bloomlab

import "math/rand/v2"

const (
	// MinSeed is the smallest seed handed out by a SeedGenerator. Tiny
	// seeds give weak murmur3 initial states, so they are skipped.
	MinSeed = 100
	// MaxSeed is the exclusive upper bound for generated seeds.
	MaxSeed = 1<<16 - 1
)

// SeedConfig is an immutable, ordered set of hash seeds. The i-th seed
// names the i-th hash function of a filter.
type SeedConfig struct {
	seeds []uint16
}

// NewSeedConfig builds a SeedConfig from explicit seeds, e.g. to replay
// a previous run.
func NewSeedConfig(seeds ...uint16) SeedConfig {
	return SeedConfig{seeds: append([]uint16(nil), seeds...)}
}

// Len returns the number of hash functions the config can drive.
func (c SeedConfig) Len() int {
	return len(c.seeds)
}

// Seed returns the seed of hash function i.
func (c SeedConfig) Seed(i int) uint16 {
	return c.seeds[i]
}

// Seeds returns a copy of the seeds in order.
func (c SeedConfig) Seeds() []uint16 {
	return append([]uint16(nil), c.seeds...)
}

// Duplicates returns how many seeds repeat an earlier seed. Two equal
// seeds make two hash functions probe the same bit.
func (c SeedConfig) Duplicates() int {
	seen := make(map[uint16]struct{}, len(c.seeds))
	var dups int
	for _, s := range c.seeds {
		if _, ok := seen[s]; ok {
			dups++
			continue
		}
		seen[s] = struct{}{}
	}
	return dups
}

// SeedGenerator draws hash seeds uniformly from [MinSeed, MaxSeed).
type SeedGenerator struct {
	rng *rand.Rand
}

// NewSeedGenerator returns a generator backed by rng. A nil rng uses the
// process-wide source, so runs are not reproducible.
func NewSeedGenerator(rng *rand.Rand) *SeedGenerator {
	return &SeedGenerator{rng: rng}
}

// Generate returns count independently drawn seeds. Seeds are not
// guaranteed to be unique.
func (g *SeedGenerator) Generate(count int) SeedConfig {
	if count <= 0 {
		return SeedConfig{}
	}

	seeds := make([]uint16, count)
	for i := range seeds {
		seeds[i] = uint16(MinSeed + g.intN(MaxSeed-MinSeed))
	}
	return SeedConfig{seeds: seeds}
}

func (g *SeedGenerator) intN(n int) int {
	if g == nil || g.rng == nil {
		return rand.IntN(n)
	}
	return g.rng.IntN(n)
}
