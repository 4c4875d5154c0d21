package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/internal/validators"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type workoutService struct {
	workouts  *resource[models.Workout]
	ids       utils.IDGenerator
	clock     utils.Clock
	validator validators.Validator

	logger *logger.Logger
}

func NewWorkoutService(workouts store.Map[models.Workout], ids utils.IDGenerator, clock utils.Clock, validator validators.Validator, logger *logger.Logger) WorkoutService {
	return &workoutService{
		workouts:  newResource("workout", workouts),
		ids:       ids,
		clock:     clock,
		validator: validator,
		logger:    logger,
	}
}

// AddWorkout logs a new workout. Missing reps and distance are stored as "0".
func (s *workoutService) AddWorkout(ctx context.Context, payload models.WorkoutPayload) (models.Workout, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.Workout{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	id := s.ids.Generate()
	return s.workouts.create(ctx, id, func() (models.Workout, error) {
		payload.NumberOfReps = models.OrDefault(payload.NumberOfReps)
		payload.DistanceCovered = models.OrDefault(payload.DistanceCovered)

		return payload.Apply(models.Workout{
			ID:        id,
			CreatedAt: s.clock.Now(),
		}), nil
	})
}

func (s *workoutService) UpdateWorkout(ctx context.Context, id string, payload models.WorkoutPayload) (models.Workout, error) {
	return s.workouts.update(ctx, id, func(w models.Workout) models.Workout {
		w = payload.Apply(w)
		w.UpdatedAt = stamp(s.clock, w.CreatedAt)
		return w
	})
}

func (s *workoutService) GetAllWorkouts(ctx context.Context) ([]models.Workout, error) {
	return s.workouts.filter(ctx, nil)
}

func (s *workoutService) GetWorkoutByID(ctx context.Context, id string) (models.Workout, error) {
	return s.workouts.get(ctx, id)
}

func (s *workoutService) SearchWorkoutByName(ctx context.Context, name string) ([]models.Workout, error) {
	query := strings.ToLower(name)
	return s.workouts.filter(ctx, func(w models.Workout) bool {
		return strings.Contains(strings.ToLower(w.WorkoutType), query)
	})
}

func (s *workoutService) DeleteWorkout(ctx context.Context, id string) (models.Workout, error) {
	deleted, err := s.workouts.remove(ctx, id)
	if err != nil {
		return models.Workout{}, err
	}

	s.logger.Debug().Str("workout_id", id).Msg("workout deleted")
	return deleted, nil
}
