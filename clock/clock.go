// File: clock/clock.go
package clock

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinutesPerDay is 24 hours * 60 minutes.
	MinutesPerDay = 1440
	// EndOfDay is the "24:00" window boundary. It is never a valid clock reading.
	EndOfDay TimeOfDay = MinutesPerDay
	// Midnight is "00:00".
	Midnight TimeOfDay = 0
)

var (
	ErrInvalidFormat = errors.New("invalid time format, expected HH:MM")
	ErrOutOfRange    = errors.New("time out of range")
)

// TimeOfDay is a point in the 24-hour cycle, in minutes from midnight (e.g., 420 for 7:00 AM).
type TimeOfDay int

// New builds a TimeOfDay from an hour and minute without range checks.
func New(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Hours returns the fractional hour value, e.g. 7.5 for 07:30.
func (t TimeOfDay) Hours() float64 {
	return float64(t) / 60.0
}

// Valid reports whether t is a clock reading (00:00..23:59).
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time of day must be a string: %w", err)
	}
	parsed, err := ParseBoundary(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse reads an "HH:MM" string with hour in [0,24) and minute in [0,60).
func Parse(s string) (TimeOfDay, error) {
	h, m, err := split(s)
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return New(h, m), nil
}

// ParseBoundary is Parse that also accepts "24:00" as an end-of-day window bound.
func ParseBoundary(s string) (TimeOfDay, error) {
	h, m, err := split(s)
	if err != nil {
		return 0, err
	}
	if h == 24 && m == 0 {
		return EndOfDay, nil
	}
	return Parse(s)
}

// ParseHours converts "HH:MM" into fractional hours (h + m/60).
func ParseHours(s string) (float64, error) {
	t, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return t.Hours(), nil
}

// ParseOrZero substitutes midnight for an unparsable value and returns a warning the
// caller should show. The warning is empty on success.
func ParseOrZero(s string) (TimeOfDay, string) {
	t, err := Parse(s)
	if err != nil {
		return Midnight, fmt.Sprintf("could not read time %q (%v); using 00:00", s, err)
	}
	return t, ""
}

// ParseHoursOrZero is ParseOrZero in fractional hours.
func ParseHoursOrZero(s string) (float64, string) {
	t, warning := ParseOrZero(s)
	return t.Hours(), warning
}

func split(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return h, m, nil
}

// DurationMinutes is end-start, or (24h-start)+end when end is not after start.
// start == end therefore counts as a full 24 hours.
func DurationMinutes(start, end TimeOfDay) int {
	if end > start {
		return int(end - start)
	}
	return MinutesPerDay - int(start) + int(end)
}

// DurationHours is DurationMinutes in fractional hours.
func DurationHours(start, end TimeOfDay) float64 {
	return float64(DurationMinutes(start, end)) / 60.0
}

// Add moves t forward by minutes, wrapping around midnight.
func Add(t TimeOfDay, minutes int) TimeOfDay {
	return Wrap(int(t) + minutes)
}

// Sub moves t backward by minutes, wrapping around midnight.
func Sub(t TimeOfDay, minutes int) TimeOfDay {
	return Wrap(int(t) - minutes)
}

// Wrap folds any minute offset onto the 00:00..23:59 cycle.
func Wrap(minutes int) TimeOfDay {
	m := minutes % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return TimeOfDay(m)
}

// FormatHours renders a fractional hour count with one decimal, e.g. "1.5h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64) + "h"
}
