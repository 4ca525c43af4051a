package scheduleRepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"dayplanner/models"
)

// MemoryScheduleRepo keeps schedules in process memory. Sessions are lost on restart.
type MemoryScheduleRepo struct {
	mu        sync.RWMutex
	schedules map[string]*models.Schedule
	now       func() time.Time
}

func NewMemoryScheduleRepo() *MemoryScheduleRepo {
	return &MemoryScheduleRepo{
		schedules: make(map[string]*models.Schedule),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryScheduleRepo) Create(_ context.Context, s *models.Schedule) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Obligations == nil {
		s.Obligations = []models.Obligation{}
	}
	if s.CustomColors == nil {
		s.CustomColors = map[string]string{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules[s.ID] = s.Clone()
	return nil
}

func (r *MemoryScheduleRepo) GetByID(_ context.Context, id string) (*models.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schedules[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

// Update runs fn under the write lock on a copy; the copy replaces the stored schedule
// only when fn succeeds.
func (r *MemoryScheduleRepo) Update(_ context.Context, id string, fn MutateFunc) (*models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.schedules[id]
	if !ok {
		return nil, ErrNotFound
	}
	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.Version = cur.Version + 1
	next.UpdatedAt = r.now()
	r.schedules[id] = next
	return next.Clone(), nil
}

func (r *MemoryScheduleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schedules[id]; !ok {
		return ErrNotFound
	}
	delete(r.schedules, id)
	return nil
}

func (r *MemoryScheduleRepo) DeleteIdle(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.schedules {
		if s.UpdatedAt.Before(before) {
			delete(r.schedules, id)
			n++
		}
	}
	return n, nil
}
