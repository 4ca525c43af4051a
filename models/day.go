package models

import (
	"fmt"
	"strings"
)

// DayOfWeek is a weekday name as the schedule UI shows it.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "Sunday"
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
)

// Week lists the days in display order.
var Week = []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseDayOfWeek matches a day name case-insensitively ("monday", "MONDAY", "Mon").
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", fmt.Errorf("day is required")
	}
	for _, d := range Week {
		name := strings.ToLower(string(d))
		if v == name || (len(v) >= 3 && strings.HasPrefix(name, v)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown day %q", s)
}

func (d DayOfWeek) Valid() bool {
	for _, w := range Week {
		if d == w {
			return true
		}
	}
	return false
}
