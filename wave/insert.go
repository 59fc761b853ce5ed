package wave

import "github.com/pkg/errors"

// Set admits one increment v with timestamp ts (§4.2). It returns nil on
// success. Per §7, v < 0, ts < 0, and v > R are input-domain violations
// and are rejected with a descriptive error without touching the wave;
// v == 0, an unset (zero) ts, and ts older than start are silently
// absorbed no-ops that also return nil. ErrOOM is returned, with the wave
// left exactly as it was, if the new triple cannot be allocated.
func (w *Wave) Set(v, ts int64) error {
	if v < 0 {
		return errors.Errorf("wave: v must be >= 0, got %d", v)
	}
	if ts < 0 {
		return errors.Errorf("wave: ts must be >= 0, got %d", ts)
	}
	if v > w.params.R {
		return errors.Errorf("wave: v must be <= R (%d), got %d", w.params.R, v)
	}
	if v == 0 || ts == 0 {
		return nil
	}
	if ts < w.start {
		return nil
	}

	// 1. Timestamp step: advance pos only on a strictly newer timestamp.
	pos, last := w.pos, w.last
	if ts > w.last && ts > w.start {
		pos = modM(ts-w.start, w.m)
		last = ts
	}

	// Reserve the new triple before anything else changes, so that ErrOOM
	// leaves the wave exactly as it was.
	j := level(w.total, v, w.numLevels)
	ref, err := w.a.alloc(pos, v, modM(w.total+v, w.m), j)
	if err != nil {
		return err
	}
	w.pos, w.last = pos, last

	// 2. Expire old: pop every head of L whose position has fallen out of
	// the window, using its stored back-link to find its level queue in
	// O(1) rather than recomputing a level from its partial sum (Design
	// Notes #1 / Open Question #1).
	for w.l.head != nilRef {
		h := w.a.at(w.l.head)
		if h.pos > w.pos-w.params.N {
			break
		}
		w.z = h.z
		lvl := h.level
		w.a.remove(&w.levels[lvl], linkLevel, w.l.head)
		ref := w.a.popHead(&w.l, linkL)
		w.a.release(ref)
	}

	// 3. Admit: fold v into the running total. total is never reduced
	// modulo M; only the triple's stored z is (§4.5).
	w.total += v

	w.a.pushHead(&w.levels[j], linkLevel, ref)
	w.a.pushTail(&w.l, linkL, ref)

	// 4. Level capacity: if admitting this triple pushed l[j] past
	// capacity, discard its oldest member. Its value is already folded
	// into total and into every newer item's z, so no further bookkeeping
	// is needed.
	if w.levels[j].length > w.levelMax {
		tail := w.a.popTail(&w.levels[j], linkLevel)
		w.a.remove(&w.l, linkL, tail)
		w.a.release(tail)
	}

	return nil
}
