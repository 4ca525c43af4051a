// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"dayplanner/models"
)

const maxUpdateAttempts = 3

func (r *MongoScheduleRepo) Create(ctx context.Context, s *models.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Obligations == nil {
		s.Obligations = []models.Obligation{}
	}
	if s.CustomColors == nil {
		s.CustomColors = map[string]string{}
	}
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Schedule
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.CustomColors == nil {
		s.CustomColors = map[string]string{}
	}
	return &s, nil
}

// Update replaces the document only when its version still matches the one that was
// loaded, and retries the whole load-mutate-save cycle a few times on a mismatch.
func (r *MongoScheduleRepo) Update(ctx context.Context, id string, fn MutateFunc) (*models.Schedule, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		s, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		loaded := s.Version
		if err := fn(s); err != nil {
			return nil, err
		}
		s.Version = loaded + 1
		s.UpdatedAt = time.Now().UTC()

		err = r.replace(ctx, id, loaded, s)
		if errors.Is(err, ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, ErrVersionConflict
}

func (r *MongoScheduleRepo) replace(ctx context.Context, id string, version int, s *models.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id, "version": version}, s)
	if err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *MongoScheduleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoScheduleRepo) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"updatedAt": bson.M{"$lt": before}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete idle schedules: %w", err)
	}
	return res.DeletedCount, nil
}
