package wave

import (
	"math"

	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/base/log"
)

// Verify checks invariants I1, I2, I4 and I6 and panics (via log.Panicf)
// on the first violation found. It does not check the newest-to-oldest
// order inside each level queue (I3) or the monotonicity of z (I5).
// It is meant for tests and debug-mode hosts, not production hot paths.
func (w *Wave) Verify(tag string) {
	seen := make(map[itemRef]bool, w.l.length)
	count := 0
	prevPos := int64(math.MinInt64)
	first := true
	for cur := w.l.head; cur != nilRef; cur = w.a.next(linkL, cur) {
		it := w.a.at(cur)
		if !first && it.pos < prevPos {
			log.Panicf("wave: L not position-sorted ascending, tag %s", tag)
		}
		prevPos = it.pos
		first = false
		seen[cur] = true
		count++
	}
	if count != w.l.length {
		log.Panicf("wave: L length %d does not match recorded %d, tag %s", count, w.l.length, tag)
	}

	total := 0
	for j, lv := range w.levels {
		if lv.length > w.levelMax {
			log.Panicf("wave: level %d length %d exceeds max %d, tag %s", j, lv.length, w.levelMax, tag)
		}
		n := 0
		for cur := lv.head; cur != nilRef; cur = w.a.next(linkLevel, cur) {
			if !seen[cur] {
				log.Panicf("wave: level %d holds an item absent from L, tag %s", j, tag)
			}
			if w.a.at(cur).level != j {
				log.Panicf("wave: item's back-link disagrees with its queue (level %d), tag %s", j, tag)
			}
			n++
		}
		if n != lv.length {
			log.Panicf("wave: level %d length %d does not match recorded %d, tag %s", j, n, lv.length, tag)
		}
		total += n
	}
	if total != count {
		log.Panicf("wave: sum of level lengths %d does not match |L|=%d, tag %s", total, count, tag)
	}
	if w.l.head != nilRef && w.a.at(w.l.head).pos <= w.pos-w.params.N {
		log.Panicf("wave: head of L has already fallen out of the window, tag %s", tag)
	}
}

// Stats summarizes a Wave for introspection (§6, wvdebug).
type Stats struct {
	NumLevels   int
	LevelMax    int
	Modulus     int64
	LengthL     int
	Total       int64
	Z           int64
	Fingerprint uint64
}

// Debug returns introspection stats plus a farm-hash fingerprint over the
// ordered (pos, v, z) triples currently linked in L, so two wave instances
// with identical observable history produce the same fingerprint — a
// cheap consistency check for wvdebug's verbose form, grounded in the same
// github.com/dgryski/go-farm fingerprinting the teacher applies to k-mers
// in fusion/kmer_index.go.
func (w *Wave) Debug() Stats {
	var buf []byte
	for cur := w.l.head; cur != nilRef; cur = w.a.next(linkL, cur) {
		it := w.a.at(cur)
		buf = appendInt64(buf, it.pos)
		buf = appendInt64(buf, it.v)
		buf = appendInt64(buf, it.z)
	}
	return Stats{
		NumLevels:   w.numLevels,
		LevelMax:    w.levelMax,
		Modulus:     w.m,
		LengthL:     w.l.length,
		Total:       w.total,
		Z:           w.z,
		Fingerprint: farm.Hash64WithSeed(buf, uint64(waveVersion)),
	}
}

func appendInt64(buf []byte, v int64) []byte {
	u := uint64(v)
	var tmp [8]byte
	for i := 0; i < 8; i++ {
		tmp[i] = byte(u >> (8 * uint(i)))
	}
	return append(buf, tmp[:]...)
}
