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

type userInfoService struct {
	infos     *resource[models.UserInfo]
	users     UserService
	clock     utils.Clock
	validator validators.Validator

	logger *logger.Logger
}

func NewUserInfoService(infos store.Map[models.UserInfo], users UserService, clock utils.Clock, validator validators.Validator, logger *logger.Logger) UserInfoService {
	return &userInfoService{
		infos:     newResource("user info", infos),
		users:     users,
		clock:     clock,
		validator: validator,
		logger:    logger,
	}
}

// AddUserInfo stores the snapshot of the user with the given id. A second
// call for the same user replaces the previous snapshot.
func (s *userInfoService) AddUserInfo(ctx context.Context, id string, payload models.UserInfoPayload) (models.UserInfo, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.UserInfo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.infos.create(ctx, id, func() (models.UserInfo, error) {
		user, err := s.users.GetUser(ctx, id)
		if err != nil {
			return models.UserInfo{}, err
		}

		return payload.Apply(models.UserInfo{
			ID:        user.ID,
			CreatedAt: s.clock.Now(),
		}), nil
	})
}

func (s *userInfoService) GetUserInfo(ctx context.Context, id string) (models.UserInfo, error) {
	return s.infos.get(ctx, id)
}

func (s *userInfoService) UpdateUserInfo(ctx context.Context, id string, payload models.UserInfoPayload) (models.UserInfo, error) {
	return s.infos.update(ctx, id, func(info models.UserInfo) models.UserInfo {
		info = payload.Apply(info)
		info.UpdatedAt = stamp(s.clock, info.CreatedAt)
		return info
	})
}

// stamp reads the clock for an update. The result never precedes created,
// which may come from an earlier process whose clock ran ahead.
func stamp(clock utils.Clock, created uint64) *uint64 {
	now := max(clock.Now(), created)
	return &now
}
