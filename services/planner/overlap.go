package planner

import (
	"dayplanner/models"
)

// FindConflict returns the first obligation on the candidate's day that overlaps it.
// Intervals are half-open, so touching blocks do not conflict. Blocks that cross midnight
// are unwrapped and also compared one day earlier and later, the same occupancy the free
// slot calculation uses. An existing entry with the candidate's ID is skipped, which is
// what an edit needs.
func FindConflict(candidate models.Obligation, existing []models.Obligation) (models.Obligation, bool) {
	c := unwrap(candidate.Start, candidate.End)
	for _, ex := range existing {
		if ex.Day != candidate.Day {
			continue
		}
		if candidate.ID != "" && ex.ID == candidate.ID {
			continue
		}
		e := unwrap(ex.Start, ex.End)
		for _, shift := range dayShifts {
			if overlaps(span{c.start + shift, c.end + shift}, e) {
				return ex, true
			}
		}
	}
	return models.Obligation{}, false
}

// ValidateNoOverlap reports whether candidate can be inserted next to existing.
func ValidateNoOverlap(candidate models.Obligation, existing []models.Obligation) bool {
	_, conflict := FindConflict(candidate, existing)
	return !conflict
}

func overlaps(a, b span) bool {
	return !(a.end <= b.start || a.start >= b.end)
}
