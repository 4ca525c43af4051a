package main

import (
	"testing"

	"dayplanner/config"
	"dayplanner/services/planner"

	"github.com/stretchr/testify/assert"
)

func TestPlannerOptions(t *testing.T) {
	opts := plannerOptions(config.Config{SleepHours: 7.5, DefaultMeals: 4, WorkoutMinutes: 45})
	assert.Equal(t, planner.LatestEndPolicy{Minutes: 450}, opts.Sleep)
	assert.Equal(t, 4, opts.Meals)
	assert.Equal(t, 45, opts.WorkoutMinutes)
	assert.Equal(t, planner.DefaultOptions().MealMinutes, opts.MealMinutes)

	assert.Equal(t, planner.DefaultOptions(), plannerOptions(config.Config{}))
}
