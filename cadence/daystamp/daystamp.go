// Package daystamp produces plausible commit timestamps
// constrained to a working-hours window. Timestamps within
// one run are independent draws and therefore not
// monotonic, matching how developers actually commit.
package daystamp

import (
	"time"

	"github.com/byte4ever/commit_cadence/cadence/draw"
)

// Window bounds the hour of generated timestamps. Hours are
// inclusive on both ends.
type Window struct {
	StartHour int
	EndHour   int
}

// DefaultWindow is the standard 9-to-17 working day.
func DefaultWindow() Window {
	return Window{StartHour: 9, EndHour: 17}
}

// Generate returns a timestamp on the same calendar day as
// now with a uniformly random time of day inside the
// window. Minute and second are unconstrained in [0,59].
func (w Window) Generate(
	now time.Time,
	src draw.Source,
) time.Time {
	hour := draw.Between(src, w.StartHour, w.EndHour)

	return time.Date(
		now.Year(), now.Month(), now.Day(),
		hour,
		src.IntN(60),
		src.IntN(60),
		0,
		now.Location(),
	)
}
