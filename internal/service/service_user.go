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

type userService struct {
	users     *resource[models.User]
	ids       utils.IDGenerator
	clock     utils.Clock
	validator validators.Validator

	logger *logger.Logger
}

func NewUserService(users store.Map[models.User], ids utils.IDGenerator, clock utils.Clock, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		users:     newResource("user", users),
		ids:       ids,
		clock:     clock,
		validator: validator,
		logger:    logger,
	}
}

func (s *userService) InitializeUser(ctx context.Context, name string) (models.User, error) {
	request := models.InitializeUserRequest{Name: name}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	id := s.ids.Generate()
	user, err := s.users.create(ctx, id, func() (models.User, error) {
		return models.User{
			ID:          id,
			Name:        name,
			CreatedDate: s.clock.Now(),
		}, nil
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Debug().Str("user_id", user.ID).Msg("user initialized")
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.users.get(ctx, id)
}
