// Package threshold implements the approval threshold models. The bar a
// proposal must clear rises as the voting window ages, so early consensus is
// cheap and late consensus requires broader agreement.
package threshold

import (
	"fmt"
	"math"
)

// Kind selects one of the supported threshold curves.
type Kind string

const (
	KindLinear      Kind = "linear"
	KindExponential Kind = "exponential"
	KindSigmoid     Kind = "sigmoid"
)

// Hard rails applied to every model regardless of parameters.
const (
	Min = 0.35
	Max = 0.9
)

// Model is a threshold curve plus its parameters. Start doubles as the
// starting value (linear), base (exponential) or floor (sigmoid).
type Model struct {
	Kind  Kind    `json:"kind"`
	Rate  float64 `json:"rate"`
	Start float64 `json:"start"`
}

func Linear(rate, start float64) Model { return Model{Kind: KindLinear, Rate: rate, Start: start} }

func Exponential(rate, base float64) Model {
	return Model{Kind: KindExponential, Rate: rate, Start: base}
}

func Sigmoid(rate, floor float64) Model {
	return Model{Kind: KindSigmoid, Rate: rate, Start: floor}
}

// ParseKind maps a user-supplied model name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLinear, KindExponential, KindSigmoid:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown threshold model %q (use: linear | exponential | sigmoid)", s)
}

// Value returns the approval ratio required at elapsed seconds into a window
// of total seconds. Result is always within [Min, Max].
//
// Precondition: total > 0 for KindSigmoid.
func Value(m Model, elapsed, total int64) float64 {
	switch m.Kind {
	case KindExponential:
		growth := 1.0 - math.Exp(-m.Rate*float64(elapsed))
		return clamp(m.Start + (1.0-m.Start)*growth)
	case KindSigmoid:
		x := float64(elapsed) / float64(total)
		sigmoid := 1.0 / (1.0 + math.Exp(-m.Rate*(x-0.5)))
		return clamp(m.Start + (1.0-m.Start)*sigmoid)
	default: // KindLinear
		return clamp(float64(elapsed)*m.Rate + m.Start)
	}
}

func clamp(v float64) float64 {
	return math.Min(Max, math.Max(Min, v))
}
