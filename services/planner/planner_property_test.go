package planner

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"dayplanner/clock"
	"dayplanner/models"
)

var dayWindow = Window{Start: clock.New(7, 0), End: clock.New(23, 0)}

// genDay builds disjoint obligations inside [07:00, 23:00) on a 15 minute grid.
func genDay() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 64)).Map(func(raw []int) []models.Obligation {
		cuts := append([]int(nil), raw...)
		sort.Ints(cuts)
		uniq := cuts[:0]
		for i, c := range cuts {
			if i == 0 || c != cuts[i-1] {
				uniq = append(uniq, c)
			}
		}
		var obs []models.Obligation
		for i := 0; i+1 < len(uniq); i += 2 {
			obs = append(obs, models.Obligation{
				Day:   models.Monday,
				Start: dayWindow.Start + clock.TimeOfDay(uniq[i]*15),
				End:   dayWindow.Start + clock.TimeOfDay(uniq[i+1]*15),
				Label: "At Work",
			})
		}
		return obs
	})
}

// genAnyDay builds obligations anywhere in the day on a 15 minute grid. They may overlap
// each other and may cross midnight.
func genAnyDay() gopter.Gen {
	return gen.SliceOfN(6, gen.IntRange(0, 96*48-1)).Map(func(raw []int) []models.Obligation {
		obs := make([]models.Obligation, 0, len(raw))
		for _, r := range raw {
			start := (r % 96) * 15
			length := (r/96 + 1) * 15
			obs = append(obs, models.Obligation{
				Day:   models.Monday,
				Start: clock.TimeOfDay(start),
				End:   clock.Wrap(start + length),
				Label: "At Work",
			})
		}
		return obs
	})
}

func genWindow() gopter.Gen {
	return gopter.CombineGens(gen.IntRange(0, 95), gen.IntRange(0, 96)).Map(func(v []any) Window {
		return Window{Start: clock.TimeOfDay(v[0].(int) * 15), End: clock.TimeOfDay(v[1].(int) * 15)}
	})
}

func TestRecommendationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("a recommended workout passes the overlap check", prop.ForAll(
		func(obs []models.Obligation, window Window, minutes int) bool {
			workout, err := RecommendWorkout(obs, minutes, window)
			if IsNoResult(err) {
				return true
			}
			if err != nil {
				return false
			}
			return ValidateNoOverlap(models.Obligation{
				Day: models.Monday, Start: workout.Start, End: workout.End, Label: "Workout",
			}, obs)
		},
		genAnyDay(),
		genWindow(),
		gen.IntRange(15, 240),
	))

	properties.Property("free slots pass the overlap check", prop.ForAll(
		func(obs []models.Obligation, window Window) bool {
			free, err := ComputeFreeSlots(obs, window)
			if err != nil {
				return false
			}
			for _, f := range free {
				if !ValidateNoOverlap(models.Obligation{Day: models.Monday, Start: f.Start, End: clock.Wrap(int(f.End))}, obs) {
					return false
				}
			}
			return true
		},
		genAnyDay(),
		genWindow(),
	))

	properties.TestingRun(t)
}

func TestFreeSlotsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("free slots do not depend on input order", prop.ForAll(
		func(obs []models.Obligation, seed int64) bool {
			want, err := ComputeFreeSlots(obs, dayWindow)
			if err != nil {
				return false
			}
			shuffled := append([]models.Obligation(nil), obs...)
			rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			got, err := ComputeFreeSlots(shuffled, dayWindow)
			return err == nil && reflect.DeepEqual(want, got)
		},
		genDay(),
		gen.Int64(),
	))

	properties.Property("free time plus obligations fills the window", prop.ForAll(
		func(obs []models.Obligation) bool {
			free, err := ComputeFreeSlots(obs, dayWindow)
			if err != nil {
				return false
			}
			total := 0
			for _, f := range free {
				total += f.Minutes()
			}
			for _, o := range obs {
				total += clock.DurationMinutes(o.Start, o.End)
			}
			return total == clock.DurationMinutes(dayWindow.Start, dayWindow.End)
		},
		genDay(),
	))

	properties.Property("free slots are ordered, disjoint and never touch", prop.ForAll(
		func(obs []models.Obligation) bool {
			free, err := ComputeFreeSlots(obs, dayWindow)
			if err != nil {
				return false
			}
			for i, f := range free {
				if f.End <= f.Start {
					return false
				}
				if i > 0 && f.Start <= free[i-1].End {
					return false
				}
			}
			return true
		},
		genDay(),
	))

	properties.Property("free slots are idempotent", prop.ForAll(
		func(obs []models.Obligation) bool {
			a, errA := ComputeFreeSlots(obs, dayWindow)
			b, errB := ComputeFreeSlots(obs, dayWindow)
			return errA == nil && errB == nil && reflect.DeepEqual(a, b)
		},
		genDay(),
	))

	properties.Property("accepted obligations never overlap existing ones", prop.ForAll(
		func(obs []models.Obligation, start, length int) bool {
			candidate := models.Obligation{
				Day:   models.Monday,
				Start: dayWindow.Start + clock.TimeOfDay(start*15),
				End:   dayWindow.Start + clock.TimeOfDay((start+length)*15),
			}
			if !ValidateNoOverlap(candidate, obs) {
				return true
			}
			for _, o := range obs {
				if candidate.Start < o.End && o.Start < candidate.End {
					return false
				}
			}
			return true
		},
		genDay(),
		gen.IntRange(0, 60),
		gen.IntRange(1, 4),
	))

	properties.TestingRun(t)
}
