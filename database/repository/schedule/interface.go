// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"dayplanner/config"
	"dayplanner/database"
	"dayplanner/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("schedule not found")
	// ErrVersionConflict is returned when a concurrent writer saved the schedule first.
	ErrVersionConflict = errors.New("schedule was modified concurrently")
)

// MutateFunc edits a loaded schedule in place. Returning an error aborts the write.
type MutateFunc func(s *models.Schedule) error

type ScheduleRepository interface {
	Create(ctx context.Context, s *models.Schedule) error
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	// Update loads the schedule, applies fn and saves the result only if fn succeeds.
	Update(ctx context.Context, id string, fn MutateFunc) (*models.Schedule, error)
	Delete(ctx context.Context, id string) error
	// DeleteIdle removes schedules not updated since before and reports how many went.
	DeleteIdle(ctx context.Context, before time.Time) (int64, error)
}

// MongoScheduleRepo stores one document per schedule in the "schedules" collection.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() *MongoScheduleRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
}

var (
	_ ScheduleRepository = (*MongoScheduleRepo)(nil)
	_ ScheduleRepository = (*MemoryScheduleRepo)(nil)
)
