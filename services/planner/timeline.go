package planner

import (
	"fmt"

	"dayplanner/clock"
	"dayplanner/models"
)

// Window bounds a free-slot search. End <= Start means the window crosses midnight.
type Window struct {
	Start clock.TimeOfDay `json:"start"`
	End   clock.TimeOfDay `json:"end"`
}

var (
	// FullDay is [00:00, 24:00).
	FullDay = Window{Start: clock.Midnight, End: clock.EndOfDay}
	// WorkoutWindow is the default workout search window, [00:00, 23:59).
	WorkoutWindow = Window{Start: clock.Midnight, End: clock.New(23, 59)}
)

func (w Window) validate() error {
	if !w.Start.Valid() {
		return fmt.Errorf("%w: start %d", ErrInvalidWindow, int(w.Start))
	}
	if w.End < 0 || w.End > clock.EndOfDay {
		return fmt.Errorf("%w: end %d", ErrInvalidWindow, int(w.End))
	}
	return nil
}

// span is a half-open range on an extended two-day minute timeline [0, 2880).
type span struct {
	start, end int
}

func (s span) length() int { return s.end - s.start }

func (w Window) span() span {
	s, e := int(w.Start), int(w.End)
	if e <= s {
		e += clock.MinutesPerDay
	}
	return span{s, e}
}

// unwrap places a clock range on the timeline; a range whose end is not after its start
// runs into the next day.
func unwrap(start, end clock.TimeOfDay) span {
	s, e := int(start), int(end)
	if e <= s {
		e += clock.MinutesPerDay
	}
	return span{s, e}
}

// occupy returns the copies of an obligation that fall on the timeline of a window. A
// day repeats, so an obligation also occupies the same clock range one day earlier and
// later; an overnight block therefore covers both the late evening and the early morning
// of its day. FindConflict uses the same model.
func occupy(o models.Obligation, win span) []span {
	sp := unwrap(o.Start, o.End)
	var out []span
	for _, shift := range dayShifts {
		c := span{sp.start + shift, sp.end + shift}
		if overlaps(c, win) {
			out = append(out, c)
		}
	}
	return out
}

var dayShifts = [...]int{-clock.MinutesPerDay, 0, clock.MinutesPerDay}

// boundary folds a timeline minute back to a clock value, keeping a closing midnight as
// "24:00" so that [07:00, 24:00) does not read as [07:00, 00:00).
func boundary(m int) clock.TimeOfDay {
	if m > 0 && m%clock.MinutesPerDay == 0 {
		return clock.EndOfDay
	}
	return clock.Wrap(m)
}

func (s span) interval() models.FreeInterval {
	return models.FreeInterval{Start: clock.Wrap(s.start), End: boundary(s.end)}
}

// ForDay keeps the obligations of one weekday in insertion order.
func ForDay(obligations []models.Obligation, day models.DayOfWeek) []models.Obligation {
	out := make([]models.Obligation, 0, len(obligations))
	for _, o := range obligations {
		if o.Day == day {
			out = append(out, o)
		}
	}
	return out
}
