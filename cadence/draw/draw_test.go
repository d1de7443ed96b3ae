package draw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/commit_cadence/cadence/draw"
)

func TestNew_deterministic_with_seed(t *testing.T) {
	t.Parallel()

	a := draw.New(42)
	b := draw.New(42)

	for range 100 {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestBetween_inclusive_bounds(t *testing.T) {
	t.Parallel()

	src := draw.New(7)

	for range 1000 {
		v := draw.Between(src, 3, 8)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 8)
	}
}

func TestBetween_degenerate_range(t *testing.T) {
	t.Parallel()

	src := draw.New(7)

	assert.Equal(t, 5, draw.Between(src, 5, 5))
	assert.Equal(t, 5, draw.Between(src, 5, 2))
}

func TestSequence_replays_values(t *testing.T) {
	t.Parallel()

	seq := &draw.Sequence{
		Ints:   []int{3, 12},
		Floats: []float64{0.5},
	}

	assert.Equal(t, 3, seq.IntN(10))
	assert.Equal(t, 2, seq.IntN(10))
	assert.InDelta(t, 0.5, seq.Float64(), 0)
}

func TestSequence_exhausted_returns_zero(t *testing.T) {
	t.Parallel()

	seq := &draw.Sequence{}

	assert.Equal(t, 0, seq.IntN(10))
	assert.InDelta(t, 0.0, seq.Float64(), 0)
}
