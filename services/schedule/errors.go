package schedule

import (
	"errors"
	"fmt"

	"dayplanner/models"
)

var (
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrObligationNotFound = errors.New("obligation not found")
	ErrInvalidObligation  = errors.New("invalid obligation")
	// ErrConcurrentUpdate means the schedule kept changing underneath a write.
	ErrConcurrentUpdate = errors.New("schedule was modified concurrently")
)

// OverlapError rejects an obligation that overlaps another one on the same day.
type OverlapError struct {
	Code     string
	Message  string
	Conflict models.Obligation
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewOverlapError(candidate, conflict models.Obligation) error {
	return &OverlapError{
		Code: "overlapConflict",
		Message: fmt.Sprintf("%s %s-%s overlaps %q (%s-%s)",
			candidate.Day, candidate.Start, candidate.End,
			conflict.Label, conflict.Start, conflict.End),
		Conflict: conflict,
	}
}
