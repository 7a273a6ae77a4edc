package bloomlab

import "math"

// ln2 is the natural logarithm of 2.
const ln2 = 0.6931471805599453

// EstimateFalsePositiveRate estimates the false positive rate of an m-bit
// filter holding n items probed with k hash functions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m uint32, k int, n uint64) float64 {
	if m == 0 || n == 0 || k <= 0 {
		return 0
	}

	mf := float64(m)
	nf := float64(n)
	kf := float64(k)

	return math.Pow(1-math.Exp(-kf*nf/mf), kf)
}

// OptimalK returns the number of hash functions minimising the false
// positive rate of an m-bit filter holding n items: (m/n) * ln2, at least 1.
func OptimalK(m uint32, n uint64) int {
	if n == 0 {
		n = 1
	}

	k := int(math.Round(float64(m) / float64(n) * ln2))
	return max(k, 1)
}
