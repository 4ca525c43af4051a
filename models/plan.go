package models

import "dayplanner/clock"

// SleepWindow is a recommended contiguous sleep block from Bedtime to Wake.
type SleepWindow struct {
	Bedtime clock.TimeOfDay `json:"bedtime"`
	Wake    clock.TimeOfDay `json:"wake"`
}

// DayPlan is the full recommendation for one weekday.
type DayPlan struct {
	Day       DayOfWeek          `json:"day"`
	Sleep     *SleepWindow       `json:"sleep,omitempty"`
	Meals     []clock.TimeOfDay  `json:"meals"`
	Workout   *FreeInterval      `json:"workout,omitempty"`
	FreeSlots []FreeInterval     `json:"freeSlots"`
	Blocks    []RecommendedBlock `json:"blocks"`
	Warnings  []string           `json:"warnings,omitempty"`
}
