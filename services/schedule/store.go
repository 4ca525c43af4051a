package schedule

import (
	"strings"

	"github.com/google/uuid"

	"dayplanner/clock"
	"dayplanner/models"
	"dayplanner/services/planner"
)

// Store applies obligation mutations to one loaded schedule. Every validated mutation
// checks before it writes, so a rejected call leaves the schedule as it was.
type Store struct {
	s *models.Schedule
}

func NewStore(s *models.Schedule) *Store {
	if s.CustomColors == nil {
		s.CustomColors = map[string]string{}
	}
	return &Store{s: s}
}

// Add appends o after checking it against the other obligations of its day.
func (st *Store) Add(o models.Obligation) (models.Obligation, error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Kind == "" {
		o.Kind = models.KindFixed
	}
	if conflict, ok := planner.FindConflict(o, st.s.Obligations); ok {
		return models.Obligation{}, NewOverlapError(o, conflict)
	}
	st.s.Obligations = append(st.s.Obligations, o)
	return o, nil
}

// Edit replaces the obligation with the given ID, keeping its position and ID.
func (st *Store) Edit(id string, o models.Obligation) (models.Obligation, error) {
	i := st.index(id)
	if i < 0 {
		return models.Obligation{}, ErrObligationNotFound
	}
	o.ID = id
	if o.Kind == "" {
		o.Kind = st.s.Obligations[i].Kind
	}
	if conflict, ok := planner.FindConflict(o, st.s.Obligations); ok {
		return models.Obligation{}, NewOverlapError(o, conflict)
	}
	st.s.Obligations[i] = o
	return o, nil
}

func (st *Store) Delete(id string) error {
	i := st.index(id)
	if i < 0 {
		return ErrObligationNotFound
	}
	st.s.Obligations = append(st.s.Obligations[:i], st.s.Obligations[i+1:]...)
	return nil
}

// Clear empties the week and the custom color map.
func (st *Store) Clear() {
	st.s.Obligations = []models.Obligation{}
	st.s.CustomColors = map[string]string{}
}

// SetColor records a custom activity color; setting it again overwrites the old one.
func (st *Store) SetColor(label, color string) {
	label, color = strings.TrimSpace(label), strings.TrimSpace(color)
	if label == "" || color == "" {
		return
	}
	st.s.CustomColors[label] = color
}

// AppendRecommended stores derived blocks as obligations without overlap validation.
// A block ending at 24:00 is stored as ending at 00:00.
func (st *Store) AppendRecommended(blocks []models.RecommendedBlock) []models.Obligation {
	added := make([]models.Obligation, 0, len(blocks))
	for _, b := range blocks {
		o := models.Obligation{
			ID:    uuid.New().String(),
			Day:   b.Day,
			Start: clock.Wrap(int(b.Start)),
			End:   clock.Wrap(int(b.End)),
			Label: b.Label,
			Kind:  b.Kind,
		}
		st.s.Obligations = append(st.s.Obligations, o)
		added = append(added, o)
	}
	return added
}

// ForDay returns the obligations of one weekday in insertion order. An empty day means
// the whole week.
func (st *Store) ForDay(day models.DayOfWeek) []models.Obligation {
	if day == "" {
		return append([]models.Obligation(nil), st.s.Obligations...)
	}
	return planner.ForDay(st.s.Obligations, day)
}

func (st *Store) index(id string) int {
	for i, o := range st.s.Obligations {
		if o.ID == id {
			return i
		}
	}
	return -1
}
