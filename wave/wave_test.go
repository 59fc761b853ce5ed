package wave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fooinha/wave/wave"
)

// Scenario 1: an empty wave reports zero everywhere inside its window.
func TestScenarioEmpty(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptValueBound(1024))
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.Get(1000, false))
	assert.Equal(t, int64(0), w.Get(1050, false))
	w.Verify("empty")
}

// Scenario 2: a single insert is exact at its own timestamp and is still
// counted at ts=1059, the last timestamp inside its window.
func TestScenarioSingleInsertExact(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptError(0.05), wave.OptValueBound(1024))
	require.NoError(t, err)
	require.NoError(t, w.Set(10, 1000))
	assert.Equal(t, int64(10), w.Get(1000, false))
	assert.Equal(t, int64(10), w.Get(1059, false))
	w.Verify("single-insert")
}

// Scenario 3: two inserts in the same instant both land in total with z
// still at zero.
func TestScenarioTwoInsertsSameSecond(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptError(0.05), wave.OptValueBound(1024))
	require.NoError(t, err)
	require.NoError(t, w.Set(5, 1000))
	require.NoError(t, w.Set(7, 1000))
	assert.Equal(t, int64(12), w.Total())
	assert.Equal(t, int64(12), w.Get(1000, false))
	w.Verify("two-inserts")
}

// Scenario 4: with ceil(1/E)+1 == 3, no level queue is ever allowed to
// grow past 3 items, however many land on it (I6); Verify enforces this
// after every insert, and |L| stays bounded by levelMax * numLevels.
func TestScenarioLevelCapEviction(t *testing.T) {
	// ceil(1/E)+1 == 3 for E == 0.5.
	w, err := wave.New(1000, wave.OptWindow(3600), wave.OptError(0.5), wave.OptValueBound(1024))
	require.NoError(t, err)
	for i := int64(0); i < 200; i++ {
		require.NoErrorf(t, w.Set(1, 1000+i), "insert %d", i)
		w.Verify("level-cap")
	}
	stats := w.Debug()
	assert.LessOrEqual(t, stats.LengthL, stats.NumLevels*stats.LevelMax)
}

// Scenario 5: an insert whose position has advanced the window expires
// the oldest item and advances z; subsequent queries stay within the
// error bound of the true window sum.
func TestScenarioExpirationAdvancesZ(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(5), wave.OptError(0.05), wave.OptValueBound(1024))
	require.NoError(t, err)
	require.NoError(t, w.Set(10, 1000))
	require.NoError(t, w.Set(20, 1002))
	require.NoError(t, w.Set(5, 1005)) // pos=5, pos-N=0: expires the pos=0 item, z becomes 10.
	w.Verify("expiration")
	assert.Equal(t, int64(10), w.Debug().Z)

	got := w.Get(1006, true)
	// True window sum over (1001,1006]: the ts=1002 (v=20) and ts=1005 (v=5) inserts.
	const n, e, r = int64(5), 0.05, int64(1024)
	errBound := int64(e*float64(n)*float64(r)) + 1
	assert.InDelta(t, 25, got, float64(errBound))
}

// Scenario 6: out-of-band queries at exactly start-N and start+N return 0.
func TestScenarioOutOfBandQueries(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptValueBound(1024))
	require.NoError(t, err)
	require.NoError(t, w.Set(10, 1000))
	assert.Equal(t, int64(0), w.Get(1000-60, false))
	assert.Equal(t, int64(0), w.Get(1000+60, false))
}

// P6: Get(last, *) always equals total - z exactly, fast or not.
func TestGetAtLastExact(t *testing.T) {
	w, err := wave.New(0, wave.OptWindow(10), wave.OptValueBound(64))
	require.NoError(t, err)
	require.NoError(t, w.Set(3, 1))
	require.NoError(t, w.Set(4, 5))
	require.NoError(t, w.Set(9, 12)) // forces an expiration of the ts=1 item.
	assert.Equal(t, w.Total()-w.Debug().Z, w.Get(12, false))
	assert.Equal(t, w.Total()-w.Debug().Z, w.Get(12, true))
}

// P7: reset is idempotent and a reset wave answers every query with 0.
func TestResetIdempotent(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptValueBound(1024))
	require.NoError(t, err)
	require.NoError(t, w.Set(42, 1000))
	w.Reset(2000)
	w.Reset(2000)
	assert.Equal(t, int64(0), w.Total())
	assert.Equal(t, int64(0), w.Get(2000, false))
	assert.Equal(t, int64(0), w.Get(2000, true))
	w.Verify("reset")
}

// Resize purges the lists but leaves the running scalars untouched, per
// the source's documented (if surprising) semantics.
func TestResizePreservesScalars(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptValueBound(1024))
	require.NoError(t, err)
	require.NoError(t, w.Set(42, 1000))
	totalBefore := w.Total()

	require.NoError(t, w.Resize(wave.OptWindow(120), wave.OptValueBound(2048)))
	assert.Equal(t, totalBefore, w.Total())
	assert.Equal(t, 0, w.Debug().LengthL)
	w.Verify("resize")
}

// Destroy leaves no triple reachable.
func TestDestroy(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptValueBound(1024))
	require.NoError(t, err)
	require.NoError(t, w.Set(42, 1000))
	w.Destroy()
	assert.Equal(t, 0, w.Debug().LengthL)
}

// Input-domain violations are surfaced as errors and never mutate state.
func TestValidationErrors(t *testing.T) {
	_, err := wave.New(1000, wave.OptWindow(0))
	assert.Error(t, err)

	_, err = wave.New(1000, wave.OptError(1.5))
	assert.Error(t, err)

	_, err = wave.New(1000, wave.OptValueBound(-2))
	assert.Error(t, err)
}

// Silent no-ops never alter total.
func TestSilentNoOps(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptValueBound(1024))
	require.NoError(t, err)
	require.NoError(t, w.Set(0, 1000))  // v == 0
	require.NoError(t, w.Set(10, 500))  // ts < start
	assert.Equal(t, int64(0), w.Total())
}

// v < 0, ts < 0, and v > R are input-domain violations (§7), not silent
// no-ops: Set rejects them with an error and leaves the wave untouched.
func TestInputDomainViolationsOnSet(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptValueBound(1024))
	require.NoError(t, err)
	assert.Error(t, w.Set(-5, 1000))
	assert.Error(t, w.Set(10, -1))
	assert.Error(t, w.Set(2048, 1000))
	assert.Equal(t, int64(0), w.Total())
}

// ExpireAt surfaces last+N+1 only when auto-expire is enabled.
func TestExpireAt(t *testing.T) {
	w, err := wave.New(1000, wave.OptWindow(60), wave.OptAutoExpire(true))
	require.NoError(t, err)
	require.NoError(t, w.Set(1, 1000))
	assert.Equal(t, int64(1061), w.ExpireAt())

	w2, err := wave.New(1000, wave.OptWindow(60), wave.OptAutoExpire(false))
	require.NoError(t, err)
	assert.Equal(t, int64(0), w2.ExpireAt())
}
