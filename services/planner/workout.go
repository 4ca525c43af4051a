package planner

import (
	"dayplanner/models"
)

// RecommendWorkout returns the first free interval in window that fits minutes, trimmed to
// exactly that length. First fit: it does not prefer any time of day.
func RecommendWorkout(obligations []models.Obligation, minutes int, window Window) (models.FreeInterval, error) {
	if minutes <= 0 {
		return models.FreeInterval{}, ErrInvalidDuration
	}
	spans, err := freeSpans(obligations, window)
	if err != nil {
		return models.FreeInterval{}, err
	}
	s, ok := firstFit(spans, minutes)
	if !ok {
		return models.FreeInterval{}, ErrNoSlotAvailable
	}
	return s.interval(), nil
}

// FirstFit scans precomputed free intervals in order. Empty intervals (Start == End) are
// skipped rather than read as a whole day.
func FirstFit(intervals []models.FreeInterval, minutes int) (models.FreeInterval, error) {
	if minutes <= 0 {
		return models.FreeInterval{}, ErrInvalidDuration
	}
	spans := make([]span, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Start == iv.End {
			continue
		}
		spans = append(spans, unwrap(iv.Start, iv.End))
	}
	s, ok := firstFit(spans, minutes)
	if !ok {
		return models.FreeInterval{}, ErrNoSlotAvailable
	}
	return s.interval(), nil
}

func firstFit(spans []span, minutes int) (span, bool) {
	for _, s := range spans {
		if s.length() >= minutes {
			return span{s.start, s.start + minutes}, true
		}
	}
	return span{}, false
}
