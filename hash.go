package bloomlab

import (
	"github.com/spaolacci/murmur3"
	"k8s.io/klog/v2"
)

// Hash maps key to a bit index in [0, modulus) using MurmurHash3 (x86,
// 32-bit) initialised with seed. Only the low 16 bits of the digest are
// reduced, so indices never exceed 65535: filters wider than 65536 bits
// alias into their first 65536 bits, and moduli that do not divide 65536
// carry a small modulo bias. modulus must be non-zero.
//
// A failing hash write is fatal.
func Hash(key []byte, seed uint16, modulus uint32) uint32 {
	h := murmur3.New32WithSeed(uint32(seed))
	if _, err := h.Write(key); err != nil {
		klog.Fatalf("bloomlab: murmur3 with seed %d failed: %v", seed, err)
	}
	return uint32(uint16(h.Sum32())) % modulus
}

// HashString is Hash for string keys.
func HashString(key string, seed uint16, modulus uint32) uint32 {
	return Hash([]byte(key), seed, modulus)
}
