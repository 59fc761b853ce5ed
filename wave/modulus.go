package wave

import (
	"math"
	"math/bits"

	"github.com/fooinha/wave/circular"
)

// moduloCap bounds the modulus at 2^62 rather than letting it grow all the
// way to MaxInt64, leaving headroom for the pos/z arithmetic performed on
// stored triples (§4.5).
const moduloCap = int64(1) << 62

// computeModulo returns the smallest power of two >= 2*N*R, saturating at
// moduloCap if N*R would overflow (§4.5).
func computeModulo(n, r int64) int64 {
	if n <= 0 || r <= 0 {
		return moduloCap
	}
	if r > (math.MaxInt64/2)/n {
		return moduloCap
	}
	target := 2 * n * r
	if target <= 0 {
		return moduloCap
	}
	m := circular.CeilPow2(target)
	if m <= 0 || m > moduloCap {
		return moduloCap
	}
	return m
}

// computeNumLevels returns L = 1 + |ceil(log2(2*E*N*R))|, capped at 63
// (§2). The absolute value around the ceiling matches the source's
// waveNumLevels: without it, a window/value-bound product smaller than 1
// would drive L below 1.
func computeNumLevels(n int64, e float64, r int64) int {
	prod := 2 * e * float64(n) * float64(r)
	l := math.Ceil(math.Log2(prod))
	f := int64(math.Abs(l))
	if f > 62 {
		return 63
	}
	return int(1 + f)
}

// levelMaxPositions returns ceil(1/E + 1), the maximum number of triples
// any single level queue may hold (§3, I6).
func levelMaxPositions(e float64) int {
	return int(math.Ceil(1/e + 1))
}

// level returns j(total, v): the position of the highest bit at which
// total and total+v differ, clamped to [0, numLevels-1] (§4.1).
func level(total, v int64, numLevels int) int {
	if numLevels <= 1 {
		return 0
	}
	f := ^uint64(total)
	g := ^uint64(total + v)
	h := f ^ g
	j := 63 - bits.LeadingZeros64(h)
	if j >= numLevels {
		j = numLevels - 1
	}
	if j < 0 {
		j = 0
	}
	return j
}

// modM reduces x modulo m using truncating division, the same convention
// C's % applies and the one the source's WAVE_MODULO_OBJ/WAVE_MODULO_N
// macros rely on: the result keeps the sign of x rather than being folded
// into [0, m). Get's future-query branch depends on this — a ts short of
// start+N yields a small negative limit, not a wraparound to near-M — so
// this must stay a thin alias for Go's native %, not a Euclidean fixup.
func modM(x, m int64) int64 {
	return x % m
}

// floorDiv returns floor(a/b), used by the fast estimator's midpoint
// (§4.3); unlike Go's native / this rounds toward -infinity rather than 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
