package wave

// Resize purges every triple and adopts new parameters, leaving total, z,
// pos, start, and last untouched (§4.4). This mismatch between a drained
// history and unreset scalar counters is the source's documented
// semantics (Design Notes, Open Question #2), not an oversight — callers
// wanting a clean slate must call Reset instead.
func (w *Wave) Resize(opts ...Opt) error {
	p := w.params
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.validate(); err != nil {
		return err
	}
	w.params = p
	w.rebuildTopology()
	return nil
}

// Reset purges every triple and zeroes pos, total, and z, restarting start
// and last at ts (§4.4).
func (w *Wave) Reset(ts int64) {
	w.start = ts
	w.last = ts
	w.pos = 0
	w.total = 0
	w.z = 0
	w.rebuildTopology()
}
