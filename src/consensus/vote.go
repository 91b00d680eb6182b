// Package consensus ties the decay, threshold and window components together
// into proposals, weighted votes and the engine that manages them.
package consensus

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Yuvraj-cyborg/Verdyce/src/decay"
)

// Choice is the position taken by a vote.
type Choice string

const (
	ChoiceYes     Choice = "yes"
	ChoiceNo      Choice = "no"
	ChoiceAbstain Choice = "abstain"
)

// ParseChoice validates a user-supplied choice string.
func ParseChoice(s string) (Choice, error) {
	switch Choice(s) {
	case ChoiceYes, ChoiceNo, ChoiceAbstain:
		return Choice(s), nil
	}
	return "", fmt.Errorf("invalid vote choice %q (use: yes | no | abstain)", s)
}

// Vote is a single ballot cast by a validator. Votes are immutable once
// appended to a proposal; a changed vote is a new record with a higher
// revision, not an update of the old one.
type Vote struct {
	ValidatorID uuid.UUID `json:"validatorId"`
	Choice      Choice    `json:"choice"`
	Timestamp   time.Time `json:"timestamp"`
	// Revision counts how many times this validator changed their vote.
	// Zero means first cast.
	Revision int64  `json:"revision"`
	Reason   string `json:"reason,omitempty"`
}

// EffectiveWeight computes the influence a vote carries: the decay curve
// value for when it was cast, divided by a quadratic revision penalty, with
// the same 0.1 floor as the decay curve itself.
//
// A vote timestamped before the proposal start counts as cast at elapsed
// zero and gets full decay weight. No upper bound on the timestamp is
// enforced here; window checks belong to the caller.
func EffectiveWeight(v Vote, proposalStart time.Time, totalDuration int64, model decay.Model) float64 {
	elapsed := int64(v.Timestamp.Sub(proposalStart) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}

	base := decay.Weight(model, elapsed, totalDuration)
	penalty := float64((1 + v.Revision) * (1 + v.Revision))
	return math.Max(decay.Floor, base/penalty)
}
