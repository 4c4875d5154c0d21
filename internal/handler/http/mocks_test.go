package http

import (
	"context"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// The mocks below implement the service interfaces for unit tests.
// Each method field can be overridden per test case.

type mockUserService struct {
	initializeUserFn func(ctx context.Context, name string) (models.User, error)
	getUserFn        func(ctx context.Context, id string) (models.User, error)
}

func (m *mockUserService) InitializeUser(ctx context.Context, name string) (models.User, error) {
	return m.initializeUserFn(ctx, name)
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	return m.getUserFn(ctx, id)
}

type mockUserInfoService struct {
	addFn    func(ctx context.Context, id string, payload models.UserInfoPayload) (models.UserInfo, error)
	getFn    func(ctx context.Context, id string) (models.UserInfo, error)
	updateFn func(ctx context.Context, id string, payload models.UserInfoPayload) (models.UserInfo, error)
}

func (m *mockUserInfoService) AddUserInfo(ctx context.Context, id string, payload models.UserInfoPayload) (models.UserInfo, error) {
	return m.addFn(ctx, id, payload)
}

func (m *mockUserInfoService) GetUserInfo(ctx context.Context, id string) (models.UserInfo, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserInfoService) UpdateUserInfo(ctx context.Context, id string, payload models.UserInfoPayload) (models.UserInfo, error) {
	return m.updateFn(ctx, id, payload)
}

type mockWorkoutService struct {
	addFn    func(ctx context.Context, payload models.WorkoutPayload) (models.Workout, error)
	updateFn func(ctx context.Context, id string, payload models.WorkoutPayload) (models.Workout, error)
	getAllFn func(ctx context.Context) ([]models.Workout, error)
	getFn    func(ctx context.Context, id string) (models.Workout, error)
	searchFn func(ctx context.Context, name string) ([]models.Workout, error)
	deleteFn func(ctx context.Context, id string) (models.Workout, error)
}

func (m *mockWorkoutService) AddWorkout(ctx context.Context, payload models.WorkoutPayload) (models.Workout, error) {
	return m.addFn(ctx, payload)
}

func (m *mockWorkoutService) UpdateWorkout(ctx context.Context, id string, payload models.WorkoutPayload) (models.Workout, error) {
	return m.updateFn(ctx, id, payload)
}

func (m *mockWorkoutService) GetAllWorkouts(ctx context.Context) ([]models.Workout, error) {
	return m.getAllFn(ctx)
}

func (m *mockWorkoutService) GetWorkoutByID(ctx context.Context, id string) (models.Workout, error) {
	return m.getFn(ctx, id)
}

func (m *mockWorkoutService) SearchWorkoutByName(ctx context.Context, name string) ([]models.Workout, error) {
	return m.searchFn(ctx, name)
}

func (m *mockWorkoutService) DeleteWorkout(ctx context.Context, id string) (models.Workout, error) {
	return m.deleteFn(ctx, id)
}

type mockFoodIntakeService struct {
	addFn    func(ctx context.Context, payload models.FoodIntakePayload) (models.FoodIntake, error)
	updateFn func(ctx context.Context, id string, payload models.FoodIntakePayload) (models.FoodIntake, error)
	getAllFn func(ctx context.Context) ([]models.FoodIntake, error)
	getFn    func(ctx context.Context, id string) (models.FoodIntake, error)
	deleteFn func(ctx context.Context, id string) (models.FoodIntake, error)
}

func (m *mockFoodIntakeService) AddFoodIntake(ctx context.Context, payload models.FoodIntakePayload) (models.FoodIntake, error) {
	return m.addFn(ctx, payload)
}

func (m *mockFoodIntakeService) UpdateFoodIntake(ctx context.Context, id string, payload models.FoodIntakePayload) (models.FoodIntake, error) {
	return m.updateFn(ctx, id, payload)
}

func (m *mockFoodIntakeService) GetAllFoodIntake(ctx context.Context) ([]models.FoodIntake, error) {
	return m.getAllFn(ctx)
}

func (m *mockFoodIntakeService) GetFoodIntakeByID(ctx context.Context, id string) (models.FoodIntake, error) {
	return m.getFn(ctx, id)
}

func (m *mockFoodIntakeService) DeleteFoodIntake(ctx context.Context, id string) (models.FoodIntake, error) {
	return m.deleteFn(ctx, id)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
