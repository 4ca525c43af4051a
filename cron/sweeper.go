package cron

import (
	"context"
	"fmt"
	"time"

	"dayplanner/utils"

	robfig "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdlePurger removes sessions that have not changed for longer than idle.
type IdlePurger interface {
	PurgeIdle(ctx context.Context, idle time.Duration) (int64, error)
}

// Sweeper periodically purges idle planning sessions.
type Sweeper struct {
	cron   *robfig.Cron
	purger IdlePurger
	idle   time.Duration
}

// NewSweeper schedules the purge with a standard cron spec or a descriptor such as
// "@every 15m".
func NewSweeper(purger IdlePurger, spec string, idle time.Duration) (*Sweeper, error) {
	s := &Sweeper{
		cron:   robfig.New(),
		purger: purger,
		idle:   idle,
	}
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", spec, err)
	}
	return s, nil
}

// RunOnce performs a single sweep.
func (s *Sweeper) RunOnce() {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.purger.PurgeIdle(ctx, s.idle)
	if err != nil {
		logger.Error("[Sweeper] failed to purge idle schedules", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("[Sweeper] purged idle schedules", zap.Int64("count", n), zap.Duration("idle", s.idle))
	}
}

func (s *Sweeper) Start() {
	utils.GetLogger().Info("[Sweeper] starting", zap.Duration("idle", s.idle))
	s.cron.Start()
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}
