package service

import (
	"context"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// UserService creates and reads user accounts.
type UserService interface {
	InitializeUser(ctx context.Context, name string) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
}

// UserInfoService manages the body-metric snapshot of a user. The snapshot
// shares its id with the user.
type UserInfoService interface {
	AddUserInfo(ctx context.Context, id string, payload models.UserInfoPayload) (models.UserInfo, error)
	GetUserInfo(ctx context.Context, id string) (models.UserInfo, error)
	UpdateUserInfo(ctx context.Context, id string, payload models.UserInfoPayload) (models.UserInfo, error)
}

type WorkoutService interface {
	AddWorkout(ctx context.Context, payload models.WorkoutPayload) (models.Workout, error)
	UpdateWorkout(ctx context.Context, id string, payload models.WorkoutPayload) (models.Workout, error)
	GetAllWorkouts(ctx context.Context) ([]models.Workout, error)
	GetWorkoutByID(ctx context.Context, id string) (models.Workout, error)
	// SearchWorkoutByName returns the workouts whose type contains name,
	// ignoring case. An empty name matches every workout.
	SearchWorkoutByName(ctx context.Context, name string) ([]models.Workout, error)
	DeleteWorkout(ctx context.Context, id string) (models.Workout, error)
}

type FoodIntakeService interface {
	AddFoodIntake(ctx context.Context, payload models.FoodIntakePayload) (models.FoodIntake, error)
	UpdateFoodIntake(ctx context.Context, id string, payload models.FoodIntakePayload) (models.FoodIntake, error)
	GetAllFoodIntake(ctx context.Context) ([]models.FoodIntake, error)
	GetFoodIntakeByID(ctx context.Context, id string) (models.FoodIntake, error)
	DeleteFoodIntake(ctx context.Context, id string) (models.FoodIntake, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
