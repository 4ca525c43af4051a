package models

import (
	"dayplanner/clock"
)

// BlockKind tells user-entered obligations apart from derived recommendations.
type BlockKind string

const (
	KindFixed    BlockKind = "fixed"
	KindSleep    BlockKind = "sleep"
	KindMeal     BlockKind = "meal"
	KindWorkout  BlockKind = "workout"
	KindPersonal BlockKind = "personal"
)

// Obligation is one fixed commitment on a weekday. End < Start means it crosses midnight.
type Obligation struct {
	ID    string          `bson:"id" json:"id"`
	Day   DayOfWeek       `bson:"day" json:"day"`
	Start clock.TimeOfDay `bson:"start" json:"start"` // minutes from midnight
	End   clock.TimeOfDay `bson:"end" json:"end"`     // minutes from midnight
	Label string          `bson:"label" json:"label"`
	Kind  BlockKind       `bson:"kind,omitempty" json:"kind,omitempty"`
}

// DurationHours applies the 24-hour wraparound rule.
func (o Obligation) DurationHours() float64 {
	return clock.DurationHours(o.Start, o.End)
}

// FreeInterval is a half-open gap [Start, End) produced by the free-slot calculator.
type FreeInterval struct {
	Start clock.TimeOfDay `json:"start"`
	End   clock.TimeOfDay `json:"end"`
}

func (f FreeInterval) Minutes() int {
	return clock.DurationMinutes(f.Start, f.End)
}

// RecommendedBlock is a derived allocation. It is appended without overlap validation.
type RecommendedBlock struct {
	Day   DayOfWeek       `json:"day"`
	Start clock.TimeOfDay `json:"start"`
	End   clock.TimeOfDay `json:"end"`
	Label string          `json:"label"`
	Kind  BlockKind       `json:"kind"`
}

// ObligationInput is the wire form of an obligation; times stay raw so that unreadable
// values degrade to 00:00 with a warning instead of failing the request.
type ObligationInput struct {
	Day   string `json:"day" yaml:"day" binding:"required"`
	Start string `json:"start" yaml:"start" binding:"required"`
	End   string `json:"end" yaml:"end" binding:"required"`
	Label string `json:"label" yaml:"label" binding:"required"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}
