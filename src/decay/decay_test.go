package decay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearWeight(t *testing.T) {
	m := Linear()

	assert.InDelta(t, 1.0, Weight(m, 0, 3600), 0.001)
	assert.InDelta(t, 0.5, Weight(m, 1800, 3600), 0.001)
	assert.InDelta(t, Floor, Weight(m, 3600, 3600), 0.001)
	assert.InDelta(t, Floor, Weight(m, 7200, 3600), 0.001)
}

func TestExponentialWeight(t *testing.T) {
	t.Run("zero rate never decays", func(t *testing.T) {
		m := Exponential(0)
		for _, elapsed := range []int64{0, 100, 3600, 100000} {
			assert.InDelta(t, 1.0, Weight(m, elapsed, 3600), 0.001)
		}
	})

	t.Run("decreases monotonically", func(t *testing.T) {
		m := Exponential(0.001)
		prev := Weight(m, 0, 3600)
		assert.InDelta(t, 1.0, prev, 0.001)
		for elapsed := int64(100); elapsed <= 3600; elapsed += 100 {
			w := Weight(m, elapsed, 3600)
			assert.LessOrEqual(t, w, prev)
			prev = w
		}
	})

	t.Run("floors at 0.1", func(t *testing.T) {
		m := Exponential(1.0)
		assert.InDelta(t, Floor, Weight(m, 3600, 3600), 0.001)
	})
}

func TestSteppedWeight(t *testing.T) {
	m := Stepped()

	assert.Equal(t, 1.0, Weight(m, 200, 1800))
	assert.Equal(t, 0.5, Weight(m, 800, 1800))
	assert.Equal(t, Floor, Weight(m, 1400, 1800))

	// Tier boundaries are inclusive on the lower tier.
	assert.Equal(t, 1.0, Weight(m, 600, 1800))
	assert.Equal(t, 0.5, Weight(m, 601, 1800))
	assert.Equal(t, 0.5, Weight(m, 1200, 1800))
	assert.Equal(t, Floor, Weight(m, 1201, 1800))
}

func TestWeightBounds(t *testing.T) {
	models := []Model{Linear(), Exponential(0.05), Exponential(2.0), Stepped()}
	for _, m := range models {
		for _, elapsed := range []int64{0, 1, 500, 1799, 1800, 5000} {
			w := Weight(m, elapsed, 1800)
			assert.GreaterOrEqual(t, w, Floor, "model %s elapsed %d", m.Kind, elapsed)
			assert.LessOrEqual(t, w, 1.0, "model %s elapsed %d", m.Kind, elapsed)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"linear", "exponential", "stepped"} {
		k, err := ParseKind(name)
		assert.NoError(t, err)
		assert.Equal(t, Kind(name), k)
	}

	_, err := ParseKind("quadratic")
	assert.Error(t, err)
}
