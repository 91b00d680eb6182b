package consensus

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuvraj-cyborg/Verdyce/src/decay"
	"github.com/Yuvraj-cyborg/Verdyce/src/threshold"
)

func sampleProposal() *Proposal {
	return NewProposal("Test Proposal", "Description", 60, decay.Linear(), threshold.Linear(0.5, 0.0))
}

func TestEngineAddAndGet(t *testing.T) {
	e := NewEngine()
	p := sampleProposal()
	e.Add(p)

	got, ok := e.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, p.ID, got.ID)

	_, ok = e.Get(uuid.New())
	assert.False(t, ok)
}

func TestEngineCastVote(t *testing.T) {
	e := NewEngine()
	p := sampleProposal()
	e.Add(p)

	t.Run("recorded", func(t *testing.T) {
		out := e.CastVote(p.ID, voteAt(ChoiceYes, time.Now(), 0))
		assert.Equal(t, VoteRecorded, out)
		assert.Len(t, p.Votes, 1)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		out := e.CastVote(uuid.New(), voteAt(ChoiceYes, time.Now(), 0))
		assert.Equal(t, VoteProposalNotFound, out)
	})

	t.Run("finalized proposal", func(t *testing.T) {
		p.Status = StatusRejected
		out := e.CastVote(p.ID, voteAt(ChoiceNo, time.Now(), 0))
		assert.Equal(t, VoteProposalNotPending, out)
		assert.Len(t, p.Votes, 1)
	})
}

func TestEngineEvaluateAll(t *testing.T) {
	e := NewEngine()

	accept := sampleProposal()
	accept.AddVote(voteAt(ChoiceYes, time.Now(), 0))
	e.Add(accept)

	expire := sampleProposal()
	expire.Window.StartTime = time.Now().Add(-120 * time.Second)
	e.Add(expire)

	e.EvaluateAll(time.Now())

	assert.Equal(t, StatusAccepted, accept.Status)
	assert.Equal(t, StatusExpired, expire.Status)
}

func TestEngineMaybeExtendAll(t *testing.T) {
	e := NewEngine()
	now := time.Now()

	p := NewProposal("Test", "Should Extend", 100, decay.Linear(), threshold.Linear(0.0, 0.6))
	p.Window.StartTime = now.Add(-91 * time.Second)
	p.AddVote(voteAt(ChoiceYes, now, 0))
	e.Add(p)

	e.MaybeExtendAll(now, 30, 0.9, 0.9)
	assert.Equal(t, int64(30), p.Window.ExtendedBy)
}

func TestEngineFilters(t *testing.T) {
	e := NewEngine()

	pending := sampleProposal()
	e.Add(pending)

	done := sampleProposal()
	done.Status = StatusAccepted
	e.Add(done)

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, pending.ID, active[0].ID)

	finalized := e.Finalized()
	require.Len(t, finalized, 1)
	assert.Equal(t, done.ID, finalized[0].ID)

	assert.Len(t, e.All(), 2)
}
