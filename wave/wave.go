package wave

import (
	"math"

	"github.com/pkg/errors"
)

// waveVersion tags the fingerprint format Debug produces (§4, "supplemented
// features": the original keeps an encoding tag on the structure even
// though persistence itself is a non-goal). It has no bearing on how
// triples are interpreted.
const waveVersion = 1

// Params configures a Wave's window length, relative error, and per-item
// value bound (§3).
type Params struct {
	N      int64
	E      float64
	R      int64
	Expire bool
}

// Opt customizes Params away from their defaults, in the shape of the
// teacher's fasta.Opt/opts pair.
type Opt func(*Params)

// OptWindow sets the sliding window length N (> 0). Default 60.
func OptWindow(n int64) Opt { return func(p *Params) { p.N = n } }

// OptError sets the relative error ε ∈ (0,1). Default 0.05.
func OptError(e float64) Opt { return func(p *Params) { p.E = e } }

// OptValueBound sets the per-item value bound R (> 0). Pass -1 (the
// default) to derive R from N as floor(MaxInt64/N).
func OptValueBound(r int64) Opt { return func(p *Params) { p.R = r } }

// OptAutoExpire toggles the auto-expire flag surfaced through ExpireAt.
// Default true.
func OptAutoExpire(on bool) Opt { return func(p *Params) { p.Expire = on } }

func defaultParams() Params {
	return Params{N: 60, E: 0.05, R: -1, Expire: true}
}

func (p *Params) validate() error {
	if p.N <= 0 {
		return errors.Errorf("wave: N must be > 0, got %d", p.N)
	}
	if p.E <= 0 || p.E >= 1 {
		return errors.Errorf("wave: E must be in (0,1), got %v", p.E)
	}
	if p.R < -1 {
		return errors.Errorf("wave: R must be >= -1, got %d", p.R)
	}
	if p.R == -1 || p.R == 0 {
		p.R = int64(math.Floor(float64(math.MaxInt64) / float64(p.N)))
	}
	return nil
}

// Wave is a sliding-window approximate-sum summary over a stream of
// timestamped, non-negative integer increments, parameterised by
// (N, ε, R) (§2-§3).
type Wave struct {
	params Params

	m         int64
	start     int64
	last      int64
	pos       int64
	total     int64
	z         int64
	numLevels int
	levelMax  int

	a      arena
	levels []chain
	l      chain
}

// New creates a Wave (§6, create). ts is the construction timestamp
// (monotonic seconds); the core takes no clock of its own (§1: a monotonic
// clock is one of the host's responsibilities), so ts must be supplied by
// the caller.
func New(ts int64, opts ...Opt) (*Wave, error) {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if ts < 0 {
		return nil, errors.Errorf("wave: ts must be >= 0, got %d", ts)
	}

	w := &Wave{
		params: p,
		start:  ts,
		last:   ts,
	}
	w.rebuildTopology()
	return w, nil
}

// rebuildTopology (re)derives M, the level count, and the level capacity
// from the current params, and starts every level queue and L empty. It is
// shared by New, Resize, and Reset.
func (w *Wave) rebuildTopology() {
	w.m = computeModulo(w.params.N, w.params.R)
	w.numLevels = computeNumLevels(w.params.N, w.params.E, w.params.R)
	w.levelMax = levelMaxPositions(w.params.E)
	w.levels = make([]chain, w.numLevels)
	for i := range w.levels {
		w.levels[i] = newChain()
	}
	w.l = newChain()
	w.a = arena{}
}

// Total returns the raw running sum of every increment ever admitted,
// unreduced by the modulus (§6, wvtotal).
func (w *Wave) Total() int64 { return w.total }

// ExpireAt returns the timestamp one unit past the end of the window as of
// the last accepted insert — the value a host would arm a key-expiry with
// (§6, wvincrby's re-arming behavior) — or 0 if auto-expire is disabled.
func (w *Wave) ExpireAt() int64 {
	if !w.params.Expire {
		return 0
	}
	return w.last + w.params.N + 1
}

// Params returns the Wave's current (N, ε, R, expire) configuration.
func (w *Wave) Params() Params { return w.params }

// Destroy releases every triple reachable from this Wave (§5). The Wave
// must not be used afterwards.
func (w *Wave) Destroy() {
	w.levels = nil
	w.l = newChain()
	w.a = arena{}
}
