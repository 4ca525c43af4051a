package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"dayplanner/clock"
	scheduleRepo "dayplanner/database/repository/schedule"
	"dayplanner/models"
	"dayplanner/services/planner"
	"dayplanner/utils"
)

// ScheduleService manages planning sessions and runs the planner over their obligations.
// An empty day means the whole week wherever a day filter is accepted.
type ScheduleService interface {
	CreateSchedule(ctx context.Context) (*models.Schedule, error)
	GetSchedule(ctx context.Context, id string) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error

	AddObligation(ctx context.Context, id string, in models.ObligationInput) (models.Obligation, []string, error)
	EditObligation(ctx context.Context, id, obligationID string, in models.ObligationInput) (models.Obligation, []string, error)
	DeleteObligation(ctx context.Context, id, obligationID string) error
	ClearObligations(ctx context.Context, id string) error
	SetColor(ctx context.Context, id, label, color string) (*models.Schedule, error)

	FreeSlots(ctx context.Context, id string, day models.DayOfWeek, window planner.Window) ([]models.FreeInterval, error)
	Sleep(ctx context.Context, id string, day models.DayOfWeek, policy planner.SleepPolicy) (models.SleepWindow, error)
	Meals(ctx context.Context, id string, day models.DayOfWeek, awake *planner.Window, n int) ([]clock.TimeOfDay, error)
	Workout(ctx context.Context, id string, day models.DayOfWeek, minutes int, window planner.Window) (models.FreeInterval, error)
	Plan(ctx context.Context, id string, day models.DayOfWeek, opts planner.Options) (*models.DayPlan, error)
	ApplyPlan(ctx context.Context, id string, blocks []models.RecommendedBlock) ([]models.Obligation, error)

	// Options returns the configured planner defaults.
	Options() planner.Options
	PurgeIdle(ctx context.Context, idle time.Duration) (int64, error)
}

type DefaultScheduleService struct {
	Repo     scheduleRepo.ScheduleRepository
	Cache    PlanCache // optional
	Defaults planner.Options
	Now      func() time.Time
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DefaultScheduleService) Options() planner.Options {
	return s.Defaults
}

func (s *DefaultScheduleService) CreateSchedule(ctx context.Context) (*models.Schedule, error) {
	now := s.now()
	sch := &models.Schedule{
		Obligations:  []models.Obligation{},
		CustomColors: map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, sch); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return sch, nil
}

func (s *DefaultScheduleService) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	sch, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return sch, nil
}

func (s *DefaultScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	return mapRepoError(s.Repo.Delete(ctx, id))
}

func (s *DefaultScheduleService) AddObligation(ctx context.Context, id string, in models.ObligationInput) (models.Obligation, []string, error) {
	ob, warnings, err := ToObligation(in)
	if err != nil {
		return models.Obligation{}, nil, err
	}
	var added models.Obligation
	_, err = s.Repo.Update(ctx, id, func(sch *models.Schedule) error {
		st := NewStore(sch)
		o, err := st.Add(ob)
		if err != nil {
			return err
		}
		st.SetColor(o.Label, in.Color)
		added = o
		return nil
	})
	if err != nil {
		return models.Obligation{}, nil, mapRepoError(err)
	}
	return added, warnings, nil
}

// EditObligation replaces the obligation entirely; the new value is validated against the
// rest of its day.
func (s *DefaultScheduleService) EditObligation(ctx context.Context, id, obligationID string, in models.ObligationInput) (models.Obligation, []string, error) {
	ob, warnings, err := ToObligation(in)
	if err != nil {
		return models.Obligation{}, nil, err
	}
	var edited models.Obligation
	_, err = s.Repo.Update(ctx, id, func(sch *models.Schedule) error {
		st := NewStore(sch)
		o, err := st.Edit(obligationID, ob)
		if err != nil {
			return err
		}
		st.SetColor(o.Label, in.Color)
		edited = o
		return nil
	})
	if err != nil {
		return models.Obligation{}, nil, mapRepoError(err)
	}
	return edited, warnings, nil
}

func (s *DefaultScheduleService) DeleteObligation(ctx context.Context, id, obligationID string) error {
	_, err := s.Repo.Update(ctx, id, func(sch *models.Schedule) error {
		return NewStore(sch).Delete(obligationID)
	})
	return mapRepoError(err)
}

func (s *DefaultScheduleService) ClearObligations(ctx context.Context, id string) error {
	_, err := s.Repo.Update(ctx, id, func(sch *models.Schedule) error {
		NewStore(sch).Clear()
		return nil
	})
	return mapRepoError(err)
}

func (s *DefaultScheduleService) SetColor(ctx context.Context, id, label, color string) (*models.Schedule, error) {
	if strings.TrimSpace(label) == "" || strings.TrimSpace(color) == "" {
		return nil, fmt.Errorf("%w: label and color are required", ErrInvalidObligation)
	}
	sch, err := s.Repo.Update(ctx, id, func(sch *models.Schedule) error {
		NewStore(sch).SetColor(label, color)
		return nil
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return sch, nil
}

func (s *DefaultScheduleService) FreeSlots(ctx context.Context, id string, day models.DayOfWeek, window planner.Window) ([]models.FreeInterval, error) {
	obs, err := s.obligations(ctx, id, day)
	if err != nil {
		return nil, err
	}
	return planner.ComputeFreeSlots(obs, window)
}

func (s *DefaultScheduleService) Sleep(ctx context.Context, id string, day models.DayOfWeek, policy planner.SleepPolicy) (models.SleepWindow, error) {
	obs, err := s.obligations(ctx, id, day)
	if err != nil {
		return models.SleepWindow{}, err
	}
	if policy == nil {
		policy = s.sleepPolicy()
	}
	return policy.Recommend(obs)
}

// Meals spreads n meals over the awake window. Without an explicit window it is derived
// from the sleep recommendation the same way a day plan does it.
func (s *DefaultScheduleService) Meals(ctx context.Context, id string, day models.DayOfWeek, awake *planner.Window, n int) ([]clock.TimeOfDay, error) {
	sch, err := s.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	win := planner.Window{}
	if awake != nil {
		win = *awake
	} else {
		opts := s.Defaults
		opts.Sleep = s.sleepPolicy()
		win, _, _, err = planner.AwakeWindow(sch.Obligations, day, opts)
		if err != nil {
			return nil, err
		}
	}
	return planner.RecommendMeals(NewStore(sch).ForDay(day), win.Start, win.End, n)
}

func (s *DefaultScheduleService) Workout(ctx context.Context, id string, day models.DayOfWeek, minutes int, window planner.Window) (models.FreeInterval, error) {
	obs, err := s.obligations(ctx, id, day)
	if err != nil {
		return models.FreeInterval{}, err
	}
	return planner.RecommendWorkout(obs, minutes, window)
}

// Plan builds the day plan, serving it from the cache when the schedule version and the
// options match a stored plan.
func (s *DefaultScheduleService) Plan(ctx context.Context, id string, day models.DayOfWeek, opts planner.Options) (*models.DayPlan, error) {
	sch, err := s.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	if opts.Sleep == nil {
		opts.Sleep = s.sleepPolicy()
	}
	key := planKey(sch, day, opts)
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key)
		if err != nil {
			logger.Warn("plan cache read failed", zap.String("key", key), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	plan, err := planner.PlanDay(sch.Obligations, day, opts)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, &plan); err != nil {
			logger.Warn("plan cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return &plan, nil
}

// ApplyPlan appends recommended blocks to the schedule without overlap validation.
func (s *DefaultScheduleService) ApplyPlan(ctx context.Context, id string, blocks []models.RecommendedBlock) ([]models.Obligation, error) {
	for _, b := range blocks {
		if !b.Day.Valid() {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidObligation, b.Day)
		}
	}
	var added []models.Obligation
	_, err := s.Repo.Update(ctx, id, func(sch *models.Schedule) error {
		added = NewStore(sch).AppendRecommended(blocks)
		return nil
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return added, nil
}

func (s *DefaultScheduleService) PurgeIdle(ctx context.Context, idle time.Duration) (int64, error) {
	return s.Repo.DeleteIdle(ctx, s.now().Add(-idle))
}

func (s *DefaultScheduleService) obligations(ctx context.Context, id string, day models.DayOfWeek) ([]models.Obligation, error) {
	sch, err := s.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewStore(sch).ForDay(day), nil
}

func (s *DefaultScheduleService) sleepPolicy() planner.SleepPolicy {
	if s.Defaults.Sleep != nil {
		return s.Defaults.Sleep
	}
	return planner.LatestEndPolicy{Minutes: planner.DefaultSleepMinutes}
}

// ToObligation converts wire input. Unreadable times become 00:00 and are reported as
// warnings; an unknown day or a blank label is an error.
func ToObligation(in models.ObligationInput) (models.Obligation, []string, error) {
	day, err := models.ParseDayOfWeek(in.Day)
	if err != nil {
		return models.Obligation{}, nil, fmt.Errorf("%w: %v", ErrInvalidObligation, err)
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return models.Obligation{}, nil, fmt.Errorf("%w: label is required", ErrInvalidObligation)
	}
	var warnings []string
	start, warn := clock.ParseOrZero(in.Start)
	if warn != "" {
		warnings = append(warnings, "start: "+warn)
	}
	end, warn := clock.ParseOrZero(in.End)
	if warn != "" {
		warnings = append(warnings, "end: "+warn)
	}
	return models.Obligation{
		Day:   day,
		Start: start,
		End:   end,
		Label: label,
		Kind:  models.KindFixed,
	}, warnings, nil
}

func planKey(sch *models.Schedule, day models.DayOfWeek, opts planner.Options) string {
	return fmt.Sprintf("%s:%s:v%d:%T%+v:%d:%d:%d:%d:%s:%s",
		sch.ID, day, sch.Version,
		opts.Sleep, opts.Sleep,
		opts.Meals, opts.MealMinutes, opts.WorkoutMinutes, opts.PersonalMinMinutes,
		opts.FallbackWake, opts.FallbackBedtime)
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, scheduleRepo.ErrNotFound):
		return ErrScheduleNotFound
	case errors.Is(err, scheduleRepo.ErrVersionConflict):
		return fmt.Errorf("%w: %w", ErrConcurrentUpdate, err)
	}
	return err
}
