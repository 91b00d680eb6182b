package consensus

import (
	"time"

	"github.com/google/uuid"

	"github.com/Yuvraj-cyborg/Verdyce/src/decay"
	"github.com/Yuvraj-cyborg/Verdyce/src/threshold"
	"github.com/Yuvraj-cyborg/Verdyce/src/window"
)

// Status of a proposal. Pending is the only non-terminal state: once a
// proposal is accepted, rejected or expired it never transitions again.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// DefaultGracePeriod is the number of seconds after the voting window closes
// during which a late evaluation still resolves the proposal (to expired)
// instead of leaving it stuck pending.
const DefaultGracePeriod int64 = 30

// Proposal is one governance question under the time-decay voting model.
type Proposal struct {
	ID             uuid.UUID           `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	CreatedAt      time.Time           `json:"createdAt"`
	Votes          []Vote              `json:"votes"`
	Status         Status              `json:"status"`
	Window         window.VotingWindow `json:"votingWindow"`
	DecayModel     decay.Model         `json:"decayModel"`
	ThresholdModel threshold.Model     `json:"thresholdModel"`
}

// NewProposal creates a pending proposal whose voting window opens at
// creation time, with the default grace period. Duration is in seconds.
func NewProposal(title, description string, duration int64, dm decay.Model, tm threshold.Model) *Proposal {
	now := time.Now().UTC()
	return &Proposal{
		ID:             uuid.New(),
		Title:          title,
		Description:    description,
		CreatedAt:      now,
		Votes:          []Vote{},
		Status:         StatusPending,
		Window:         window.New(now, duration, DefaultGracePeriod),
		DecayModel:     dm,
		ThresholdModel: tm,
	}
}

// AddVote appends a vote. No deduplication: every entry counts toward the
// approval ratio, including multiple entries from the same validator.
func (p *Proposal) AddVote(v Vote) {
	p.Votes = append(p.Votes, v)
}

// Finalized reports whether the proposal has reached a terminal status.
func (p *Proposal) Finalized() bool {
	return p.Status != StatusPending
}

// ApprovalRatio is weighted yes over weighted yes plus no. Abstain votes
// contribute to neither side. Zero when no yes/no votes exist.
func (p *Proposal) ApprovalRatio() float64 {
	var yesWeight, totalWeight float64

	for _, v := range p.Votes {
		w := EffectiveWeight(v, p.Window.StartTime, p.Window.TotalDuration(), p.DecayModel)
		switch v.Choice {
		case ChoiceYes:
			yesWeight += w
			totalWeight += w
		case ChoiceNo:
			totalWeight += w
		}
	}

	if totalWeight == 0 {
		return 0.0
	}
	return yesWeight / totalWeight
}

// Evaluate advances the status state machine at the given instant. No-op on
// finalized proposals. Expiry beyond the grace cutoff wins over everything;
// acceptance requires the window to still be strictly open, so a proposal
// reaching exactly the end of its window with an unmet threshold is rejected.
func (p *Proposal) Evaluate(now time.Time) {
	if p.Status != StatusPending {
		return
	}

	elapsed := p.Window.Elapsed(now)
	total := p.Window.TotalDuration()
	graceCutoff := total + p.Window.GracePeriod

	if elapsed >= graceCutoff {
		p.Status = StatusExpired
		return
	}

	required := threshold.Value(p.ThresholdModel, elapsed, total)
	ratio := p.ApprovalRatio()

	if elapsed < total && ratio >= required {
		p.Status = StatusAccepted
	} else if elapsed >= total {
		p.Status = StatusRejected
	}
}

// ExtendWindow grants extra voting time when the proposal is close to both
// the approval threshold and the window end. Both proximity factors are
// ratios in [0,1]; smaller values widen eligibility. The extension itself
// does not change status, a later Evaluate call observes the longer window.
func (p *Proposal) ExtendWindow(now time.Time, extensionSeconds int64, thresholdProximity, timeProximity float64) {
	if p.Status != StatusPending {
		return
	}

	elapsed := p.Window.Elapsed(now)
	total := p.Window.TotalDuration()
	required := threshold.Value(p.ThresholdModel, elapsed, total)
	ratio := p.ApprovalRatio()

	nearThreshold := ratio >= required*thresholdProximity
	nearExpiry := float64(elapsed) >= float64(total)*timeProximity

	if nearThreshold && nearExpiry {
		p.Window.Extend(extensionSeconds)
	}
}
