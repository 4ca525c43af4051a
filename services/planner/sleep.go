package planner

import (
	"dayplanner/clock"
	"dayplanner/models"
)

// DefaultSleepMinutes is the fixed eight-hour sleep target.
const DefaultSleepMinutes = 8 * 60

// SleepPolicy derives a sleep window from a set of obligations.
type SleepPolicy interface {
	Recommend(obligations []models.Obligation) (models.SleepWindow, error)
}

// LatestEndPolicy ends sleep at the latest obligation end: bedtime is that end minus the
// target and wake restores the end exactly. It does not look for a free slot.
type LatestEndPolicy struct {
	Minutes int
}

func (p LatestEndPolicy) Recommend(obligations []models.Obligation) (models.SleepWindow, error) {
	latest, ok := latestEnd(obligations)
	if !ok {
		return models.SleepWindow{}, ErrNoRecommendation
	}
	target := p.target()
	bedtime := clock.Sub(latest, target)
	return models.SleepWindow{
		Bedtime: bedtime,
		Wake:    clock.Add(bedtime, target),
	}, nil
}

func (p LatestEndPolicy) target() int {
	if p.Minutes <= 0 {
		return DefaultSleepMinutes
	}
	return p.Minutes
}

// FreeWindowPolicy starts sleep in the first free interval long enough for the target,
// searching the 24 hours that follow the latest obligation end.
type FreeWindowPolicy struct {
	Minutes int
}

func (p FreeWindowPolicy) Recommend(obligations []models.Obligation) (models.SleepWindow, error) {
	latest, ok := latestEnd(obligations)
	if !ok {
		return models.SleepWindow{}, ErrNoRecommendation
	}
	target := LatestEndPolicy(p).target()
	spans, err := freeSpans(obligations, Window{Start: latest, End: latest})
	if err != nil {
		return models.SleepWindow{}, err
	}
	for _, s := range spans {
		if s.length() >= target {
			return models.SleepWindow{
				Bedtime: clock.Wrap(s.start),
				Wake:    clock.Wrap(s.start + target),
			}, nil
		}
	}
	return models.SleepWindow{}, ErrNoRecommendation
}

// RecommendSleep applies the default eight-hour LatestEndPolicy.
func RecommendSleep(obligations []models.Obligation) (models.SleepWindow, error) {
	return LatestEndPolicy{Minutes: DefaultSleepMinutes}.Recommend(obligations)
}

func latestEnd(obligations []models.Obligation) (clock.TimeOfDay, bool) {
	if len(obligations) == 0 {
		return 0, false
	}
	latest := obligations[0].End
	for _, o := range obligations[1:] {
		if o.End > latest {
			latest = o.End
		}
	}
	return latest, true
}
