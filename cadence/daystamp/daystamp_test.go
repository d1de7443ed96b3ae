package daystamp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/commit_cadence/cadence/daystamp"
	"github.com/byte4ever/commit_cadence/cadence/draw"
)

func TestGenerate_stays_in_window(t *testing.T) {
	t.Parallel()

	now := time.Date(
		2025, 6, 18, 3, 12, 44, 0, time.UTC,
	)
	win := daystamp.DefaultWindow()
	src := draw.New(5)

	for range 2000 {
		ts := win.Generate(now, src)

		assert.GreaterOrEqual(t, ts.Hour(), 9)
		assert.LessOrEqual(t, ts.Hour(), 17)
		assert.GreaterOrEqual(t, ts.Minute(), 0)
		assert.LessOrEqual(t, ts.Minute(), 59)
		assert.GreaterOrEqual(t, ts.Second(), 0)
		assert.LessOrEqual(t, ts.Second(), 59)

		// Same calendar day as the input.
		y, m, d := ts.Date()
		assert.Equal(t, 2025, y)
		assert.Equal(t, time.June, m)
		assert.Equal(t, 18, d)
	}
}

func TestGenerate_scripted_extremes(t *testing.T) {
	t.Parallel()

	now := time.Date(
		2025, 6, 18, 23, 59, 59, 0, time.UTC,
	)
	win := daystamp.DefaultWindow()

	low := &draw.Sequence{Ints: []int{0, 0, 0}}
	ts := win.Generate(now, low)
	assert.Equal(t, 9, ts.Hour())
	assert.Equal(t, 0, ts.Minute())
	assert.Equal(t, 0, ts.Second())

	high := &draw.Sequence{Ints: []int{8, 59, 59}}
	ts = win.Generate(now, high)
	assert.Equal(t, 17, ts.Hour())
	assert.Equal(t, 59, ts.Minute())
	assert.Equal(t, 59, ts.Second())
}

func TestGenerate_custom_window(t *testing.T) {
	t.Parallel()

	now := time.Date(
		2025, 6, 18, 12, 0, 0, 0, time.UTC,
	)
	win := daystamp.Window{StartHour: 22, EndHour: 23}
	src := draw.New(11)

	for range 200 {
		ts := win.Generate(now, src)

		assert.GreaterOrEqual(t, ts.Hour(), 22)
		assert.LessOrEqual(t, ts.Hour(), 23)
	}
}
