package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/internal/validators"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type foodIntakeService struct {
	intakes   *resource[models.FoodIntake]
	ids       utils.IDGenerator
	clock     utils.Clock
	validator validators.Validator

	logger *logger.Logger
}

func NewFoodIntakeService(intakes store.Map[models.FoodIntake], ids utils.IDGenerator, clock utils.Clock, validator validators.Validator, logger *logger.Logger) FoodIntakeService {
	return &foodIntakeService{
		intakes:   newResource("food intake", intakes),
		ids:       ids,
		clock:     clock,
		validator: validator,
		logger:    logger,
	}
}

// AddFoodIntake logs a new food intake. Missing water intake is stored as "0".
func (s *foodIntakeService) AddFoodIntake(ctx context.Context, payload models.FoodIntakePayload) (models.FoodIntake, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.FoodIntake{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	id := s.ids.Generate()
	return s.intakes.create(ctx, id, func() (models.FoodIntake, error) {
		payload.WaterIntake = models.OrDefault(payload.WaterIntake)

		return payload.Apply(models.FoodIntake{
			ID:          id,
			CreatedDate: s.clock.Now(),
		}), nil
	})
}

func (s *foodIntakeService) UpdateFoodIntake(ctx context.Context, id string, payload models.FoodIntakePayload) (models.FoodIntake, error) {
	return s.intakes.update(ctx, id, func(f models.FoodIntake) models.FoodIntake {
		f = payload.Apply(f)
		f.UpdatedAt = stamp(s.clock, f.CreatedDate)
		return f
	})
}

func (s *foodIntakeService) GetAllFoodIntake(ctx context.Context) ([]models.FoodIntake, error) {
	return s.intakes.filter(ctx, nil)
}

func (s *foodIntakeService) GetFoodIntakeByID(ctx context.Context, id string) (models.FoodIntake, error) {
	return s.intakes.get(ctx, id)
}

func (s *foodIntakeService) DeleteFoodIntake(ctx context.Context, id string) (models.FoodIntake, error) {
	deleted, err := s.intakes.remove(ctx, id)
	if err != nil {
		return models.FoodIntake{}, err
	}

	s.logger.Debug().Str("food_intake_id", id).Msg("food intake deleted")
	return deleted, nil
}
