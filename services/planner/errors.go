package planner

import "errors"

// Recommendation errors mean "nothing to recommend" and are an expected outcome.
var (
	ErrNoRecommendation = errors.New("no recommendation: no obligations to base it on")
	ErrNoFreeTime       = errors.New("no free time in the requested window")
	ErrNoSlotAvailable  = errors.New("no free interval is long enough")
)

// Input errors.
var (
	ErrInvalidWindow    = errors.New("invalid window")
	ErrInvalidMealCount = errors.New("invalid number of meals")
	ErrInvalidDuration  = errors.New("duration must be positive")
)

// IsNoResult reports whether err only means that no recommendation could be made.
func IsNoResult(err error) bool {
	return errors.Is(err, ErrNoRecommendation) ||
		errors.Is(err, ErrNoFreeTime) ||
		errors.Is(err, ErrNoSlotAvailable)
}
