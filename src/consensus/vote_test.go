package consensus

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Yuvraj-cyborg/Verdyce/src/decay"
)

func voteAt(choice Choice, ts time.Time, revision int64) Vote {
	return Vote{
		ValidatorID: uuid.New(),
		Choice:      choice,
		Timestamp:   ts,
		Revision:    revision,
	}
}

func TestEffectiveWeightAtStart(t *testing.T) {
	start := time.Now()
	v := voteAt(ChoiceYes, start, 0)

	w := EffectiveWeight(v, start, 1800, decay.Linear())
	assert.InDelta(t, 1.0, w, 0.01)
}

func TestEffectiveWeightRevisionZeroMatchesDecay(t *testing.T) {
	start := time.Now()
	m := decay.Linear()

	for _, offset := range []int64{0, 300, 900, 1500} {
		v := voteAt(ChoiceNo, start.Add(time.Duration(offset)*time.Second), 0)
		assert.InDelta(t, decay.Weight(m, offset, 1800), EffectiveWeight(v, start, 1800, m), 0.001)
	}
}

func TestEffectiveWeightHalfwayWithRevision(t *testing.T) {
	now := time.Now()
	start := now.Add(-900 * time.Second)
	v := voteAt(ChoiceNo, now, 1)
	v.Reason = "changed mind"

	// Linear halfway gives 0.5; one revision divides by four.
	w := EffectiveWeight(v, start, 1800, decay.Linear())
	assert.InDelta(t, 0.125, w, 0.01)
}

func TestEffectiveWeightRevisionPenaltyFloors(t *testing.T) {
	start := time.Now()

	// Linear at 200/1800 gives ~0.889; three revisions divide by 16,
	// which lands under the floor and comes back as 0.1.
	v := voteAt(ChoiceYes, start.Add(200*time.Second), 3)
	w := EffectiveWeight(v, start, 1800, decay.Linear())
	assert.InDelta(t, 0.1, w, 0.001)
}

func TestEffectiveWeightBeforeStart(t *testing.T) {
	start := time.Now()
	v := voteAt(ChoiceYes, start.Add(-time.Hour), 0)

	// Timestamps before the window start collapse to elapsed zero.
	w := EffectiveWeight(v, start, 1800, decay.Linear())
	assert.InDelta(t, 1.0, w, 0.001)
}

func TestParseChoice(t *testing.T) {
	for _, s := range []string{"yes", "no", "abstain"} {
		c, err := ParseChoice(s)
		assert.NoError(t, err)
		assert.Equal(t, Choice(s), c)
	}

	_, err := ParseChoice("maybe")
	assert.Error(t, err)
}
