package models

import (
	"time"

	"dayplanner/clock"
)

// DefaultActivityColors is the built-in activity taxonomy.
var DefaultActivityColors = map[string]string{
	"At Work":       "red",
	"HomeXBusiness": "green",
	"Trans.2.W":     "#B61515",
	"Trans.2.H":     "#288057",
	"Sleep":         "#AB10B4",
}

// FallbackColor is used for labels with neither a custom nor a default color.
const FallbackColor = "blue"

// Schedule is one planning session: a week of obligations plus custom activity colors.
type Schedule struct {
	ID           string            `bson:"id" json:"id"`
	Obligations  []Obligation      `bson:"obligations" json:"obligations"`
	CustomColors map[string]string `bson:"customColors" json:"customColors"`
	Version      int               `bson:"version" json:"version"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// Clone returns a deep copy so that callers never share slices or maps with a store.
func (s *Schedule) Clone() *Schedule {
	c := *s
	c.Obligations = append([]Obligation(nil), s.Obligations...)
	c.CustomColors = make(map[string]string, len(s.CustomColors))
	for k, v := range s.CustomColors {
		c.CustomColors[k] = v
	}
	return &c
}

// ColorFor resolves a label's color: custom first, then the default taxonomy.
func (s *Schedule) ColorFor(label string) string {
	if c, ok := s.CustomColors[label]; ok && c != "" {
		return c
	}
	if c, ok := DefaultActivityColors[label]; ok {
		return c
	}
	return FallbackColor
}

// ScheduleEntry is a listing row for display.
type ScheduleEntry struct {
	Obligation
	Color    string  `json:"color"`
	Hours    float64 `json:"hours"`
	Duration string  `json:"duration"` // e.g. "1.5h"
}

// ScheduleView is the schedule snapshot returned to clients.
type ScheduleView struct {
	ID           string            `json:"id"`
	Entries      []ScheduleEntry   `json:"entries"`
	CustomColors map[string]string `json:"customColors"`
	Version      int               `json:"version"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// View builds the display listing in insertion order.
func (s *Schedule) View() ScheduleView {
	entries := make([]ScheduleEntry, 0, len(s.Obligations))
	for _, o := range s.Obligations {
		h := o.DurationHours()
		entries = append(entries, ScheduleEntry{
			Obligation: o,
			Color:      s.ColorFor(o.Label),
			Hours:      h,
			Duration:   clock.FormatHours(h),
		})
	}
	colors := make(map[string]string, len(s.CustomColors))
	for k, v := range s.CustomColors {
		colors[k] = v
	}
	return ScheduleView{
		ID:           s.ID,
		Entries:      entries,
		CustomColors: colors,
		Version:      s.Version,
		UpdatedAt:    s.UpdatedAt,
	}
}
