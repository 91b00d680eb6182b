package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsed(t *testing.T) {
	start := time.Now()
	w := New(start, 600, 30)

	assert.Equal(t, int64(0), w.Elapsed(start))
	assert.Equal(t, int64(120), w.Elapsed(start.Add(2*time.Minute)))

	// A clock before the start reads as zero, not negative.
	assert.Equal(t, int64(0), w.Elapsed(start.Add(-time.Hour)))
}

func TestTotalDuration(t *testing.T) {
	w := New(time.Now(), 600, 30)
	assert.Equal(t, int64(600), w.TotalDuration())

	w.Extend(120)
	assert.Equal(t, int64(720), w.TotalDuration())
}

func TestState(t *testing.T) {
	start := time.Now()
	w := New(start, 600, 30)

	assert.Equal(t, StateNotStarted, w.State(start.Add(-time.Minute)))
	assert.Equal(t, StateOpen, w.State(start))
	assert.Equal(t, StateOpen, w.State(start.Add(600*time.Second)))
	assert.Equal(t, StateGracePeriod, w.State(start.Add(601*time.Second)))
	assert.Equal(t, StateGracePeriod, w.State(start.Add(630*time.Second)))
	assert.Equal(t, StateExpired, w.State(start.Add(631*time.Second)))

	w.Extend(60)
	assert.Equal(t, StateExtended, w.State(start.Add(300*time.Second)))
	assert.Equal(t, StateExtended, w.State(start.Add(660*time.Second)))
	assert.Equal(t, StateGracePeriod, w.State(start.Add(661*time.Second)))
}

func TestExtendAccumulates(t *testing.T) {
	w := New(time.Now(), 600, 30)

	w.Extend(30)
	w.Extend(30)
	w.Extend(30)
	assert.Equal(t, int64(90), w.ExtendedBy)
}

func TestExtendCap(t *testing.T) {
	w := New(time.Now(), 600, 30)
	w.MaxExtension = 100

	w.Extend(60)
	assert.Equal(t, int64(60), w.ExtendedBy)

	w.Extend(60)
	assert.Equal(t, int64(100), w.ExtendedBy)
}

func TestPhase(t *testing.T) {
	start := time.Now()
	w := New(start, 900, 30)

	assert.Equal(t, PhaseEarly, w.Phase(start))
	assert.Equal(t, PhaseEarly, w.Phase(start.Add(300*time.Second)))
	assert.Equal(t, PhaseMid, w.Phase(start.Add(301*time.Second)))
	assert.Equal(t, PhaseMid, w.Phase(start.Add(600*time.Second)))
	assert.Equal(t, PhaseLate, w.Phase(start.Add(601*time.Second)))
	assert.Equal(t, PhaseLate, w.Phase(start.Add(2000*time.Second)))
}
