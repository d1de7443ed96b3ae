// Package activity decides whether a scheduled run is an
// active day and how many commits it should produce. The
// decision is conditioned on the day of week with a random
// skip chance and busy/quiet day modifiers, so that the
// fabricated history looks like a human work rhythm rather
// than a metronome.
package activity

import (
	"log/slog"
	"time"

	"github.com/byte4ever/commit_cadence/cadence/draw"
)

// skipDie is the size of the skip draw: one face in ten
// means roughly a 10% chance of an inactive weekday.
const skipDie = 10

// Override carries the manual trigger parameters. Count is
// the explicit commit count, -1 when unset; Force guarantees
// an active decision regardless of the random draws.
type Override struct {
	Count int
	Force bool
}

// NoOverride is the Override used by scheduled runs.
func NoOverride() Override {
	return Override{Count: -1}
}

// Decide returns the number of commits for a run happening
// on the given weekday. Zero means the run should do
// nothing further. An explicit Override.Count is returned
// verbatim and bypasses all random computation; a forced
// run is never inactive.
func Decide(
	day time.Weekday,
	ov Override,
	src draw.Source,
) int {
	if ov.Count >= 0 {
		slog.Info(
			"using explicit commit count",
			"count", ov.Count,
		)

		return ov.Count
	}

	if !ov.Force && src.IntN(skipDie) == 0 {
		slog.Info("skipping today", "day", day.String())

		return 0
	}

	count := baseCount(day, src)

	if isWeekday(day) {
		count = applyModifier(count, src)
	}

	// A forced run is always active, even when the
	// weekend zero-branch or a quiet day landed on zero.
	if ov.Force && count == 0 {
		count = 1
	}

	slog.Info(
		"decided commit count",
		"day", day.String(),
		"count", count,
	)

	return count
}

// baseCount draws the raw commit count for the weekday
// bucket: midweek days are the busiest, Monday and Friday
// are lighter, weekends are mostly quiet.
func baseCount(day time.Weekday, src draw.Source) int {
	switch day {
	case time.Tuesday, time.Wednesday, time.Thursday:
		return draw.Between(src, 3, 8)
	case time.Monday, time.Friday:
		return draw.Between(src, 1, 6)
	default:
		return weekendCount(src)
	}
}

// weekendCount draws the weekend bucket: 60% nothing, 30%
// a couple of commits, 10% a real working session.
func weekendCount(src draw.Source) int {
	roll := src.Float64()

	switch {
	case roll < 0.6:
		return 0
	case roll < 0.9:
		return draw.Between(src, 1, 3)
	default:
		return draw.Between(src, 2, 6)
	}
}

// applyModifier adjusts a weekday count: 20% chance of a
// busy day bonus, otherwise 10% chance of a quiet day
// reduction floored at zero.
func applyModifier(count int, src draw.Source) int {
	if src.Float64() < 0.2 {
		bonus := draw.Between(src, 5, 15)

		slog.Info("busy day", "bonus", bonus)

		return count + bonus
	}

	if src.Float64() < 0.1 {
		malus := draw.Between(src, 0, 2)

		slog.Info("quiet day", "malus", malus)

		count -= malus
		if count < 0 {
			count = 0
		}
	}

	return count
}

// isWeekday reports whether day is Monday through Friday.
func isWeekday(day time.Weekday) bool {
	return day != time.Saturday && day != time.Sunday
}
