package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayplanner/clock"
	"dayplanner/models"
)

func at(s string) clock.TimeOfDay {
	t, err := clock.ParseBoundary(s)
	if err != nil {
		panic(err)
	}
	return t
}

func ob(day models.DayOfWeek, start, end, label string) models.Obligation {
	return models.Obligation{Day: day, Start: at(start), End: at(end), Label: label, Kind: models.KindFixed}
}

func iv(start, end string) models.FreeInterval {
	return models.FreeInterval{Start: at(start), End: at(end)}
}

func TestComputeFreeSlotsEmpty(t *testing.T) {
	got, err := ComputeFreeSlots(nil, Window{Start: at("07:00"), End: at("23:00")})
	require.NoError(t, err)
	assert.Equal(t, []models.FreeInterval{iv("07:00", "23:00")}, got)
}

func TestComputeFreeSlotsGaps(t *testing.T) {
	obs := []models.Obligation{
		ob(models.Monday, "13:00", "14:00", "Lunch meeting"),
		ob(models.Monday, "09:00", "12:00", "At Work"),
		ob(models.Monday, "12:00", "12:30", "Trans.2.H"),
	}
	got, err := ComputeFreeSlots(obs, Window{Start: at("07:00"), End: at("23:00")})
	require.NoError(t, err)
	assert.Equal(t, []models.FreeInterval{
		iv("07:00", "09:00"),
		iv("12:30", "13:00"),
		iv("14:00", "23:00"),
	}, got)
}

func TestComputeFreeSlotsBlanketed(t *testing.T) {
	obs := []models.Obligation{
		ob(models.Monday, "06:00", "15:00", "At Work"),
		ob(models.Monday, "15:00", "23:30", "HomeXBusiness"),
	}
	got, err := ComputeFreeSlots(obs, Window{Start: at("07:00"), End: at("23:00")})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComputeFreeSlotsNestedObligationKeepsCursor(t *testing.T) {
	obs := []models.Obligation{
		ob(models.Monday, "09:00", "17:00", "At Work"),
		ob(models.Monday, "10:00", "11:00", "Standup"),
	}
	got, err := ComputeFreeSlots(obs, FullDay)
	require.NoError(t, err)
	assert.Equal(t, []models.FreeInterval{iv("00:00", "09:00"), iv("17:00", "24:00")}, got)
}

func TestComputeFreeSlotsOvernightWindow(t *testing.T) {
	obs := []models.Obligation{
		ob(models.Friday, "23:00", "01:00", "Night shift"),
		ob(models.Friday, "05:00", "06:00", "Trans.2.H"),
	}
	got, err := ComputeFreeSlots(obs, Window{Start: at("22:00"), End: at("07:00")})
	require.NoError(t, err)
	assert.Equal(t, []models.FreeInterval{
		iv("22:00", "23:00"),
		iv("01:00", "05:00"),
		iv("06:00", "07:00"),
	}, got)
}

func TestComputeFreeSlotsOvernightObligationCoversMorning(t *testing.T) {
	obs := []models.Obligation{ob(models.Monday, "23:30", "08:00", "Sleep")}
	got, err := ComputeFreeSlots(obs, FullDay)
	require.NoError(t, err)
	assert.Equal(t, []models.FreeInterval{iv("08:00", "23:30")}, got)

	got, err = ComputeFreeSlots(obs, Window{Start: at("06:00"), End: at("12:00")})
	require.NoError(t, err)
	assert.Equal(t, []models.FreeInterval{iv("08:00", "12:00")}, got)
}

func TestComputeFreeSlotsClipsToWindow(t *testing.T) {
	obs := []models.Obligation{ob(models.Monday, "20:00", "21:00", "Class")}
	got, err := ComputeFreeSlots(obs, Window{Start: at("07:00"), End: at("18:00")})
	require.NoError(t, err)
	assert.Equal(t, []models.FreeInterval{iv("07:00", "18:00")}, got)
}

func TestComputeFreeSlotsInvalidWindow(t *testing.T) {
	_, err := ComputeFreeSlots(nil, Window{Start: clock.EndOfDay, End: at("07:00")})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestRecommendSleep(t *testing.T) {
	obs := []models.Obligation{
		ob(models.Monday, "09:00", "17:00", "At Work"),
		ob(models.Tuesday, "20:00", "23:30", "HomeXBusiness"),
		ob(models.Wednesday, "07:00", "08:00", "Trans.2.W"),
	}
	got, err := RecommendSleep(obs)
	require.NoError(t, err)
	assert.Equal(t, at("15:30"), got.Bedtime)
	assert.Equal(t, at("23:30"), got.Wake)
}

func TestRecommendSleepWrapsBedtime(t *testing.T) {
	got, err := RecommendSleep([]models.Obligation{ob(models.Monday, "06:00", "07:00", "Gym")})
	require.NoError(t, err)
	assert.Equal(t, at("23:00"), got.Bedtime)
	assert.Equal(t, at("07:00"), got.Wake)
}

func TestRecommendSleepEmpty(t *testing.T) {
	_, err := RecommendSleep(nil)
	assert.ErrorIs(t, err, ErrNoRecommendation)
	assert.True(t, IsNoResult(err))
}

func TestFreeWindowPolicy(t *testing.T) {
	obs := []models.Obligation{
		ob(models.Monday, "09:00", "17:00", "At Work"),
		ob(models.Monday, "18:00", "20:00", "Class"),
		ob(models.Monday, "21:00", "22:00", "Chores"),
	}
	got, err := FreeWindowPolicy{Minutes: 8 * 60}.Recommend(obs)
	require.NoError(t, err)
	assert.Equal(t, at("22:00"), got.Bedtime)
	assert.Equal(t, at("06:00"), got.Wake)

	_, err = FreeWindowPolicy{Minutes: 20 * 60}.Recommend(obs)
	assert.ErrorIs(t, err, ErrNoRecommendation)
}

func TestRecommendMeals(t *testing.T) {
	got, err := RecommendMeals(nil, at("07:00"), at("23:00"), 3)
	require.NoError(t, err)
	assert.Equal(t, []clock.TimeOfDay{at("11:00"), at("15:00"), at("19:00")}, got)
}

func TestRecommendMealsUsesFreeTimeOnly(t *testing.T) {
	// 8h of free time in a 16h window: meals every 2h from wake, even inside work.
	obs := []models.Obligation{ob(models.Monday, "09:00", "17:00", "At Work")}
	got, err := RecommendMeals(obs, at("07:00"), at("23:00"), 3)
	require.NoError(t, err)
	assert.Equal(t, []clock.TimeOfDay{at("09:00"), at("11:00"), at("13:00")}, got)
}

func TestRecommendMealsNoFreeTime(t *testing.T) {
	obs := []models.Obligation{ob(models.Monday, "06:00", "23:30", "Marathon")}
	got, err := RecommendMeals(obs, at("07:00"), at("23:00"), 3)
	assert.ErrorIs(t, err, ErrNoFreeTime)
	assert.Empty(t, got)
}

func TestRecommendMealsInvalidCount(t *testing.T) {
	_, err := RecommendMeals(nil, at("07:00"), at("23:00"), 0)
	assert.ErrorIs(t, err, ErrInvalidMealCount)
}

func TestRecommendMealsRejectsOversizedCount(t *testing.T) {
	for _, n := range []int{MaxMeals + 1, 1_000_000_000, math.MaxInt} {
		got, err := RecommendMeals(nil, at("07:00"), at("23:00"), n)
		assert.ErrorIs(t, err, ErrInvalidMealCount, "n=%d", n)
		assert.Nil(t, got)
	}

	got, err := RecommendMeals(nil, clock.Midnight, clock.EndOfDay, MaxMeals)
	require.NoError(t, err)
	assert.Len(t, got, MaxMeals)
}

func TestRecommendMealsTruncatesToMinute(t *testing.T) {
	// 100 minutes / 3 = 33m20s
	got, err := RecommendMeals(nil, at("10:00"), at("11:40"), 2)
	require.NoError(t, err)
	assert.Equal(t, []clock.TimeOfDay{at("10:33"), at("11:06")}, got)
}

func TestFirstFit(t *testing.T) {
	got, err := FirstFit([]models.FreeInterval{iv("09:00", "10:00"), iv("14:00", "16:00")}, 90)
	require.NoError(t, err)
	assert.Equal(t, iv("14:00", "15:30"), got)

	_, err = FirstFit([]models.FreeInterval{iv("09:00", "10:00")}, 90)
	assert.ErrorIs(t, err, ErrNoSlotAvailable)
}

func TestFirstFitSkipsEmptyIntervals(t *testing.T) {
	_, err := FirstFit([]models.FreeInterval{iv("10:00", "10:00")}, 60)
	assert.ErrorIs(t, err, ErrNoSlotAvailable)

	got, err := FirstFit([]models.FreeInterval{iv("10:00", "10:00"), iv("12:00", "13:30")}, 60)
	require.NoError(t, err)
	assert.Equal(t, iv("12:00", "13:00"), got)
}

func TestRecommendWorkout(t *testing.T) {
	obs := []models.Obligation{
		ob(models.Monday, "00:00", "09:00", "Sleep"),
		ob(models.Monday, "10:00", "14:00", "At Work"),
		ob(models.Monday, "16:00", "23:59", "HomeXBusiness"),
	}
	got, err := RecommendWorkout(obs, 90, WorkoutWindow)
	require.NoError(t, err)
	assert.Equal(t, iv("14:00", "15:30"), got)
}

func TestRecommendWorkoutAfterOvernightObligation(t *testing.T) {
	obs := []models.Obligation{ob(models.Monday, "23:30", "08:00", "Sleep")}
	got, err := RecommendWorkout(obs, 60, FullDay)
	require.NoError(t, err)
	assert.Equal(t, iv("08:00", "09:00"), got)

	workout := models.Obligation{Day: models.Monday, Start: got.Start, End: got.End, Label: "Workout"}
	assert.True(t, ValidateNoOverlap(workout, obs))
}

func TestRecommendWorkoutNoSlot(t *testing.T) {
	obs := []models.Obligation{ob(models.Monday, "00:30", "23:30", "Marathon")}
	_, err := RecommendWorkout(obs, 60, WorkoutWindow)
	assert.ErrorIs(t, err, ErrNoSlotAvailable)

	_, err = RecommendWorkout(nil, 0, WorkoutWindow)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestValidateNoOverlap(t *testing.T) {
	existing := []models.Obligation{ob(models.Monday, "10:30", "11:30", "At Work")}
	assert.False(t, ValidateNoOverlap(ob(models.Monday, "10:00", "11:00", "Call"), existing))

	existing = []models.Obligation{ob(models.Monday, "11:00", "12:00", "At Work")}
	assert.True(t, ValidateNoOverlap(ob(models.Monday, "10:00", "11:00", "Call"), existing))
}

func TestValidateNoOverlapOtherDay(t *testing.T) {
	existing := []models.Obligation{ob(models.Tuesday, "10:30", "11:30", "At Work")}
	assert.True(t, ValidateNoOverlap(ob(models.Monday, "10:00", "11:00", "Call"), existing))
}

func TestValidateNoOverlapAcrossMidnight(t *testing.T) {
	existing := []models.Obligation{ob(models.Monday, "23:00", "01:00", "Night shift")}
	assert.False(t, ValidateNoOverlap(ob(models.Monday, "00:30", "02:00", "Delivery"), existing))
	assert.False(t, ValidateNoOverlap(ob(models.Monday, "23:30", "23:45", "Break"), existing))
	assert.True(t, ValidateNoOverlap(ob(models.Monday, "01:00", "02:00", "Trans.2.H"), existing))
	assert.True(t, ValidateNoOverlap(ob(models.Monday, "22:00", "23:00", "Trans.2.W"), existing))
}

func TestFindConflictSkipsSelf(t *testing.T) {
	existing := []models.Obligation{
		{ID: "a", Day: models.Monday, Start: at("09:00"), End: at("10:00")},
		{ID: "b", Day: models.Monday, Start: at("12:00"), End: at("13:00")},
	}
	edited := models.Obligation{ID: "a", Day: models.Monday, Start: at("09:30"), End: at("10:30")}
	_, conflict := FindConflict(edited, existing)
	assert.False(t, conflict)

	edited.End = at("12:30")
	got, conflict := FindConflict(edited, existing)
	assert.True(t, conflict)
	assert.Equal(t, "b", got.ID)
}

func TestPlanDay(t *testing.T) {
	week := []models.Obligation{
		ob(models.Monday, "07:00", "09:00", "Class"),
		ob(models.Monday, "10:00", "15:00", "At Work"),
		ob(models.Tuesday, "09:00", "17:00", "At Work"),
	}
	opts := DefaultOptions()
	opts.Sleep = FreeWindowPolicy{Minutes: 8 * 60}

	plan, err := PlanDay(week, models.Monday, opts)
	require.NoError(t, err)

	require.NotNil(t, plan.Sleep)
	assert.Equal(t, at("15:00"), plan.Sleep.Bedtime)
	assert.Equal(t, at("23:00"), plan.Sleep.Wake)
	require.NotNil(t, plan.Workout)
	assert.Equal(t, iv("23:00", "24:00"), *plan.Workout)
	assert.Len(t, plan.Meals, 3)
	assert.Empty(t, plan.Warnings)

	kinds := map[models.BlockKind]int{}
	for _, b := range plan.Blocks {
		kinds[b.Kind]++
		assert.Equal(t, models.Monday, b.Day)
	}
	assert.Equal(t, 1, kinds[models.KindSleep])
	assert.Equal(t, 3, kinds[models.KindMeal])
	assert.Equal(t, 1, kinds[models.KindWorkout])
	assert.Equal(t, 2, kinds[models.KindPersonal])
}

func TestPlanDayFallsBackToWeek(t *testing.T) {
	week := []models.Obligation{ob(models.Tuesday, "09:00", "17:00", "At Work")}
	plan, err := PlanDay(week, models.Sunday, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, plan.Sleep)
	assert.Equal(t, at("17:00"), plan.Sleep.Wake)
	require.Len(t, plan.Warnings, 1)
	assert.Contains(t, plan.Warnings[0], "whole week")
}

func TestPlanDayWithoutObligations(t *testing.T) {
	plan, err := PlanDay(nil, models.Monday, DefaultOptions())
	require.NoError(t, err)
	assert.Nil(t, plan.Sleep)
	assert.Equal(t, []clock.TimeOfDay{at("11:00"), at("15:00"), at("19:00")}, plan.Meals)
	require.NotNil(t, plan.Workout)
	assert.Equal(t, iv("07:00", "08:00"), *plan.Workout)
	assert.Len(t, plan.Warnings, 1)
}

func TestPlanDayRejectsOversizedMealCount(t *testing.T) {
	opts := DefaultOptions()
	opts.Meals = math.MaxInt
	_, err := PlanDay(nil, models.Monday, opts)
	assert.ErrorIs(t, err, ErrInvalidMealCount)
}

func TestPlanDayUnknownDay(t *testing.T) {
	_, err := PlanDay(nil, models.DayOfWeek("Funday"), DefaultOptions())
	assert.Error(t, err)
}

func TestAwakeWindow(t *testing.T) {
	win, sleep, warnings, err := AwakeWindow(nil, models.Monday, Options{FallbackWake: at("06:30"), FallbackBedtime: at("22:00")})
	require.NoError(t, err)
	assert.Nil(t, sleep)
	assert.Equal(t, Window{Start: at("06:30"), End: at("22:00")}, win)
	assert.Len(t, warnings, 1)

	week := []models.Obligation{ob(models.Monday, "09:00", "17:00", "At Work")}
	win, sleep, warnings, err = AwakeWindow(week, models.Monday, Options{})
	require.NoError(t, err)
	require.NotNil(t, sleep)
	assert.Equal(t, Window{Start: at("17:00"), End: at("09:00")}, win)
	assert.Empty(t, warnings)
}
