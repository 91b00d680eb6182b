// Package window tracks the timing state of a voting period: the base
// duration, any accumulated extensions and the grace period that follows.
package window

import "time"

// State is a coarse lifecycle classification, recomputed on every call.
// It is informational only; proposal evaluation works from the raw cutoffs.
type State string

const (
	StateNotStarted  State = "not_started"
	StateOpen        State = "open"
	StateExtended    State = "extended"
	StateGracePeriod State = "grace_period"
	StateExpired     State = "expired"
)

// Phase is the third of the voting period we are currently in.
type Phase string

const (
	PhaseEarly Phase = "early"
	PhaseMid   Phase = "mid"
	PhaseLate  Phase = "late"
)

// VotingWindow holds the timing configuration and accumulated extension of a
// voting period. All durations are whole seconds. The window only ever grows:
// Extend is the single mutation and it never shrinks or resets.
type VotingWindow struct {
	StartTime   time.Time `json:"startTime"`
	Duration    int64     `json:"duration"`
	GracePeriod int64     `json:"gracePeriod"`
	ExtendedBy  int64     `json:"extendedBy"`
	// MaxExtension caps accumulated extension when non-zero. Zero means
	// unlimited, matching the historical behavior.
	MaxExtension int64 `json:"maxExtension,omitempty"`
}

func New(start time.Time, duration, gracePeriod int64) VotingWindow {
	return VotingWindow{
		StartTime:   start,
		Duration:    duration,
		GracePeriod: gracePeriod,
	}
}

// Elapsed returns whole seconds since the window opened, never negative: a
// clock before StartTime reads as zero elapsed.
func (w VotingWindow) Elapsed(now time.Time) int64 {
	secs := int64(now.Sub(w.StartTime) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// TotalDuration is the base duration plus any accumulated extension.
func (w VotingWindow) TotalDuration() int64 {
	return w.Duration + w.ExtendedBy
}

// State classifies the window at the given instant.
func (w VotingWindow) State(now time.Time) State {
	elapsed := w.Elapsed(now)

	switch {
	case now.Before(w.StartTime):
		return StateNotStarted
	case elapsed <= w.TotalDuration():
		if w.ExtendedBy > 0 {
			return StateExtended
		}
		return StateOpen
	case elapsed <= w.TotalDuration()+w.GracePeriod:
		return StateGracePeriod
	default:
		return StateExpired
	}
}

// Extend adds seconds to the accumulated extension, honoring MaxExtension
// when one is configured.
func (w *VotingWindow) Extend(seconds int64) {
	w.ExtendedBy += seconds
	if w.MaxExtension > 0 && w.ExtendedBy > w.MaxExtension {
		w.ExtendedBy = w.MaxExtension
	}
}

// Phase reports which third of the (possibly extended) period now falls in.
// Tier boundaries are inclusive on the lower tier.
func (w VotingWindow) Phase(now time.Time) Phase {
	elapsed := w.Elapsed(now)
	total := w.TotalDuration()

	switch {
	case elapsed <= total/3:
		return PhaseEarly
	case elapsed <= 2*total/3:
		return PhaseMid
	default:
		return PhaseLate
	}
}
