package consensus

import (
	"time"

	"github.com/google/uuid"
)

// VoteOutcome is the result of casting a vote through the engine. A plain
// boolean would conflate an unknown proposal with one that already reached a
// terminal status.
type VoteOutcome int

const (
	VoteRecorded VoteOutcome = iota
	VoteProposalNotFound
	VoteProposalNotPending
)

func (o VoteOutcome) String() string {
	switch o {
	case VoteRecorded:
		return "recorded"
	case VoteProposalNotFound:
		return "proposal not found"
	case VoteProposalNotPending:
		return "proposal not pending"
	}
	return "unknown"
}

// Engine is the registry of proposals: an insertion-ordered collection with
// id-indexed lookup. It assumes a single writer; callers embedding it in a
// concurrent host must serialize access themselves.
type Engine struct {
	proposals []*Proposal
	byID      map[uuid.UUID]*Proposal
}

func NewEngine() *Engine {
	return &Engine{byID: make(map[uuid.UUID]*Proposal)}
}

// Add registers a proposal. Identifiers are assumed globally unique; if a
// duplicate does show up, the first registration wins lookups.
func (e *Engine) Add(p *Proposal) {
	e.proposals = append(e.proposals, p)
	if _, ok := e.byID[p.ID]; !ok {
		e.byID[p.ID] = p
	}
}

// Get retrieves a proposal by id.
func (e *Engine) Get(id uuid.UUID) (*Proposal, bool) {
	p, ok := e.byID[id]
	return p, ok
}

// All returns the proposals in insertion order.
func (e *Engine) All() []*Proposal {
	return e.proposals
}

// CastVote records a vote on a pending proposal. The vote is silently
// dropped (not queued) when the proposal is unknown or already finalized.
func (e *Engine) CastVote(id uuid.UUID, v Vote) VoteOutcome {
	p, ok := e.byID[id]
	if !ok {
		return VoteProposalNotFound
	}
	if p.Status != StatusPending {
		return VoteProposalNotPending
	}
	p.AddVote(v)
	return VoteRecorded
}

// EvaluateAll runs the status state machine on every proposal.
func (e *Engine) EvaluateAll(now time.Time) {
	for _, p := range e.proposals {
		p.Evaluate(now)
	}
}

// MaybeExtendAll offers a window extension to every proposal that is near
// both its threshold and its expiry.
func (e *Engine) MaybeExtendAll(now time.Time, extensionSeconds int64, thresholdProximity, timeProximity float64) {
	for _, p := range e.proposals {
		p.ExtendWindow(now, extensionSeconds, thresholdProximity, timeProximity)
	}
}

// Active returns the proposals still accepting votes.
func (e *Engine) Active() []*Proposal {
	var out []*Proposal
	for _, p := range e.proposals {
		if p.Status == StatusPending {
			out = append(out, p)
		}
	}
	return out
}

// Finalized returns the proposals that reached a terminal status.
func (e *Engine) Finalized() []*Proposal {
	var out []*Proposal
	for _, p := range e.proposals {
		if p.Finalized() {
			out = append(out, p)
		}
	}
	return out
}
