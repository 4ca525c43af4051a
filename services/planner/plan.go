package planner

import (
	"errors"
	"fmt"

	"dayplanner/clock"
	"dayplanner/models"
)

// Options tunes PlanDay.
type Options struct {
	Sleep              SleepPolicy
	Meals              int
	MealMinutes        int
	WorkoutMinutes     int
	PersonalMinMinutes int

	// Awake window used when no sleep window can be derived at all.
	FallbackWake    clock.TimeOfDay
	FallbackBedtime clock.TimeOfDay
}

// DefaultOptions: 8h sleep, 3 meals of 30 minutes, a 60 minute workout and personal time
// blocks of at least 30 minutes.
func DefaultOptions() Options {
	return Options{
		Sleep:              LatestEndPolicy{Minutes: DefaultSleepMinutes},
		Meals:              3,
		MealMinutes:        30,
		WorkoutMinutes:     60,
		PersonalMinMinutes: 30,
		FallbackWake:       clock.New(7, 0),
		FallbackBedtime:    clock.New(23, 0),
	}
}

// PlanDay assembles sleep, meals, workout and personal time for one weekday. Any part that
// has nothing to recommend adds a warning instead of failing the plan.
func PlanDay(week []models.Obligation, day models.DayOfWeek, opts Options) (models.DayPlan, error) {
	if !day.Valid() {
		return models.DayPlan{}, fmt.Errorf("unknown day %q", day)
	}
	if opts.Meals > 0 {
		if err := validateMealCount(opts.Meals); err != nil {
			return models.DayPlan{}, err
		}
	}
	plan := models.DayPlan{
		Day:       day,
		Meals:     []clock.TimeOfDay{},
		FreeSlots: []models.FreeInterval{},
		Blocks:    []models.RecommendedBlock{},
	}
	todays := ForDay(week, day)

	awake, sleep, warnings, err := AwakeWindow(week, day, opts)
	if err != nil {
		return models.DayPlan{}, err
	}
	plan.Warnings = append(plan.Warnings, warnings...)
	if sleep != nil {
		plan.Sleep = sleep
		plan.Blocks = append(plan.Blocks, models.RecommendedBlock{
			Day: day, Start: sleep.Bedtime, End: sleep.Wake, Label: "Sleep", Kind: models.KindSleep,
		})
	}

	free, err := ComputeFreeSlots(todays, awake)
	if err != nil {
		return models.DayPlan{}, fmt.Errorf("free slots: %w", err)
	}
	plan.FreeSlots = free

	if opts.Meals > 0 {
		meals, err := RecommendMeals(todays, awake.Start, awake.End, opts.Meals)
		switch {
		case err == nil:
			plan.Meals = meals
			for i, m := range meals {
				plan.Blocks = append(plan.Blocks, models.RecommendedBlock{
					Day:   day,
					Start: m,
					End:   clock.Add(m, opts.MealMinutes),
					Label: fmt.Sprintf("Meal %d", i+1),
					Kind:  models.KindMeal,
				})
			}
		case IsNoResult(err):
			plan.Warnings = append(plan.Warnings, fmt.Sprintf("meals: %v", err))
		default:
			return models.DayPlan{}, fmt.Errorf("meal recommendation: %w", err)
		}
	}

	reserved := todays
	if opts.WorkoutMinutes > 0 {
		workout, err := RecommendWorkout(todays, opts.WorkoutMinutes, awake)
		switch {
		case err == nil:
			plan.Workout = &workout
			block := models.RecommendedBlock{
				Day: day, Start: workout.Start, End: workout.End, Label: "Workout", Kind: models.KindWorkout,
			}
			plan.Blocks = append(plan.Blocks, block)
			reserved = append(append([]models.Obligation{}, todays...), models.Obligation{
				Day: day, Start: block.Start, End: block.End, Label: block.Label, Kind: block.Kind,
			})
		case IsNoResult(err):
			plan.Warnings = append(plan.Warnings, fmt.Sprintf("workout: %v", err))
		default:
			return models.DayPlan{}, fmt.Errorf("workout recommendation: %w", err)
		}
	}

	personal, err := freeSpans(reserved, awake)
	if err != nil {
		return models.DayPlan{}, fmt.Errorf("personal time: %w", err)
	}
	for _, s := range personal {
		if s.length() < opts.PersonalMinMinutes {
			continue
		}
		iv := s.interval()
		plan.Blocks = append(plan.Blocks, models.RecommendedBlock{
			Day: day, Start: iv.Start, End: iv.End, Label: "Personal Time", Kind: models.KindPersonal,
		})
	}
	return plan, nil
}

// AwakeWindow returns [wake, bedtime) for day. Sleep is derived from the day's obligations
// first and from the whole week when the day has none; without any obligations the
// fallback window is used and sleep is nil.
func AwakeWindow(week []models.Obligation, day models.DayOfWeek, opts Options) (Window, *models.SleepWindow, []string, error) {
	policy := opts.Sleep
	if policy == nil {
		policy = LatestEndPolicy{Minutes: DefaultSleepMinutes}
	}
	var warnings []string

	sleep, err := policy.Recommend(ForDay(week, day))
	if errors.Is(err, ErrNoRecommendation) && len(week) > 0 {
		sleep, err = policy.Recommend(week)
		if err == nil {
			warnings = append(warnings, fmt.Sprintf("no obligations on %s; sleep is based on the whole week", day))
		}
	}
	switch {
	case err == nil:
		return Window{Start: sleep.Wake, End: sleep.Bedtime}, &sleep, warnings, nil
	case IsNoResult(err):
		awake := Window{Start: opts.FallbackWake, End: opts.FallbackBedtime}
		warnings = append(warnings, fmt.Sprintf("sleep: %v; assuming awake %s-%s", err, awake.Start, awake.End))
		return awake, nil, warnings, nil
	default:
		return Window{}, nil, nil, fmt.Errorf("sleep recommendation: %w", err)
	}
}
