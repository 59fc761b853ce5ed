package circular

import "math/bits"

// CeilPow2 returns the smallest power of two greater than or equal to x.
// x must be positive. Adapted from this package's original NextExp2 (which
// returned the next power of 2 strictly greater than x, for sizing circular
// buffers); package wave reuses the same leading-zero-count trick to size
// its position modulus, where the exact target itself is an acceptable
// modulus and need not be rounded up past itself.
func CeilPow2(x int64) int64 {
	if x <= 1 {
		return 1
	}
	log2 := 63 - bits.LeadingZeros64(uint64(x-1))
	return int64(1) << uint(log2+1)
}
