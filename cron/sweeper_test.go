package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"dayplanner/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

type mockPurger struct {
	mock.Mock
}

func (m *mockPurger) PurgeIdle(ctx context.Context, idle time.Duration) (int64, error) {
	args := m.Called(ctx, idle)
	return args.Get(0).(int64), args.Error(1)
}

func TestSweeperRunOnce(t *testing.T) {
	purger := &mockPurger{}
	purger.On("PurgeIdle", mock.Anything, 24*time.Hour).Return(int64(2), nil).Once()
	purger.On("PurgeIdle", mock.Anything, 24*time.Hour).Return(int64(0), errors.New("db down")).Once()

	s, err := NewSweeper(purger, "@every 15m", 24*time.Hour)
	require.NoError(t, err)
	s.RunOnce()
	s.RunOnce()
	purger.AssertExpectations(t)
}

func TestSweeperRejectsBadSpec(t *testing.T) {
	_, err := NewSweeper(&mockPurger{}, "every now and then", time.Hour)
	assert.Error(t, err)
}

func TestSweeperRunsOnSchedule(t *testing.T) {
	purger := &mockPurger{}
	done := make(chan struct{}, 1)
	purger.On("PurgeIdle", mock.Anything, time.Hour).Return(int64(1), nil).Run(func(mock.Arguments) {
		select {
		case done <- struct{}{}:
		default:
		}
	})

	s, err := NewSweeper(purger, "@every 1s", time.Hour)
	require.NoError(t, err)
	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep did not run")
	}
}
