package planner

import (
	"fmt"

	"dayplanner/clock"
	"dayplanner/models"
)

// RecommendMeals spreads n meals evenly over the total free time in [wake, bedtime).
// Meal i sits at wake + i*interval with interval = free/(n+1); the offset is measured from
// wake, not placed inside the gaps, so a meal may fall within an obligation.
// n must be in [1, MaxMeals].
func RecommendMeals(obligations []models.Obligation, wake, bedtime clock.TimeOfDay, n int) ([]clock.TimeOfDay, error) {
	if err := validateMealCount(n); err != nil {
		return nil, err
	}
	spans, err := freeSpans(obligations, Window{Start: wake, End: bedtime})
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return []clock.TimeOfDay{}, ErrNoFreeTime
	}

	totalSeconds := float64(totalMinutes(spans) * 60)
	interval := totalSeconds / float64(n+1)

	meals := make([]clock.TimeOfDay, 0, n)
	for i := 1; i <= n; i++ {
		offset := int(float64(i) * interval / 60)
		meals = append(meals, clock.Add(wake, offset))
	}
	return meals, nil
}

// MaxMeals caps the meal count at one per minute of the day.
const MaxMeals = clock.MinutesPerDay

func validateMealCount(n int) error {
	if n < 1 || n > MaxMeals {
		return fmt.Errorf("%w: got %d, want 1-%d", ErrInvalidMealCount, n, MaxMeals)
	}
	return nil
}
