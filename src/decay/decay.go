// Package decay implements the vote weight decay models. A vote cast late in
// the voting window carries less weight than one cast early, which rewards
// prompt participation.
package decay

import (
	"fmt"
	"math"
)

// Kind selects one of the supported decay curves.
type Kind string

const (
	// KindLinear decays steadily from 1.0 down to the floor over the window.
	KindLinear Kind = "linear"
	// KindExponential decays as e^(-rate*t); never reaches zero.
	KindExponential Kind = "exponential"
	// KindStepped uses discrete weight tiers (1.0, 0.5, 0.1) per window third.
	KindStepped Kind = "stepped"
)

// Floor is the minimum weight any vote can carry. Every curve bottoms out
// here so that even the latest vote retains some influence.
const Floor = 0.1

// Model is a decay curve plus its parameters, stored inline so a proposal
// round-trips losslessly through JSON.
type Model struct {
	Kind Kind `json:"kind"`
	// Rate is only meaningful for KindExponential. Must be non-negative;
	// a negative rate grows instead of decaying and is not clamped.
	Rate float64 `json:"rate,omitempty"`
}

func Linear() Model { return Model{Kind: KindLinear} }

func Exponential(rate float64) Model { return Model{Kind: KindExponential, Rate: rate} }

func Stepped() Model { return Model{Kind: KindStepped} }

// ParseKind maps a user-supplied model name to a Kind. Input validation
// belongs at the boundary; the curve functions assume a valid Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLinear, KindExponential, KindStepped:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown decay model %q (use: linear | exponential | stepped)", s)
}

// Weight returns the weight multiplier for a vote cast at elapsed seconds
// into a window of total seconds. Result is always within [Floor, 1.0].
//
// Precondition: total > 0 for KindLinear (division by zero otherwise).
func Weight(m Model, elapsed, total int64) float64 {
	switch m.Kind {
	case KindExponential:
		return math.Max(Floor, math.Exp(-m.Rate*float64(elapsed)))
	case KindStepped:
		switch {
		case elapsed <= total/3:
			return 1.0
		case elapsed <= 2*total/3:
			return 0.5
		default:
			return Floor
		}
	default: // KindLinear
		return math.Max(Floor, 1.0-float64(elapsed)/float64(total))
	}
}
