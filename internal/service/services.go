package service

import (
	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/internal/validators"
)

type Services struct {
	UserService       UserService
	UserInfoService   UserInfoService
	WorkoutService    WorkoutService
	FoodIntakeService FoodIntakeService
	AppInfoService    AppInfoService
}

// NewServices wires every service over storages. All services share one id
// generator, one clock and one validator.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	return newServices(storages, cfg, utils.NewUUIDGenerator(), utils.NewMonotonicClock(), logger)
}

func newServices(storages *store.Storages, cfg config.StructuredConfig, ids utils.IDGenerator, clock utils.Clock, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewFitnessValidator()
	users := NewUserService(storages.Users, ids, clock, validator, logger)

	return &Services{
		UserService:       users,
		UserInfoService:   NewUserInfoService(storages.UserInfos, users, clock, validator, logger),
		WorkoutService:    NewWorkoutService(storages.Workouts, ids, clock, validator, logger),
		FoodIntakeService: NewFoodIntakeService(storages.FoodIntakes, ids, clock, validator, logger),
		AppInfoService:    appInfo,
	}, nil
}
