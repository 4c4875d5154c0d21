package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/metrics"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// Handler is the root gRPC transport handler. It implements
// [FitnessTrackerServer] on top of the service layer.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services
	metrics  *metrics.Metrics

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container,
// metrics and logger.
func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}

// Register installs the FitnessTracker service on s.
func (h *Handler) Register(s *grpc.Server) {
	s.RegisterService(&ServiceDesc, h)
}

func (h *Handler) InitializeUser(ctx context.Context, in *models.InitializeUserRequest) (*models.User, error) {
	user, err := h.services.UserService.InitializeUser(ctx, in.Name)
	return reply(&user, err)
}

func (h *Handler) GetUser(ctx context.Context, in *models.IDRequest) (*models.User, error) {
	user, err := h.services.UserService.GetUser(ctx, in.ID)
	return reply(&user, err)
}

func (h *Handler) AddUserInfo(ctx context.Context, in *models.UserInfoRequest) (*models.UserInfo, error) {
	info, err := h.services.UserInfoService.AddUserInfo(ctx, in.ID, in.Payload)
	return reply(&info, err)
}

func (h *Handler) GetUserInfo(ctx context.Context, in *models.IDRequest) (*models.UserInfo, error) {
	info, err := h.services.UserInfoService.GetUserInfo(ctx, in.ID)
	return reply(&info, err)
}

func (h *Handler) UpdateUserInfo(ctx context.Context, in *models.UserInfoRequest) (*models.UserInfo, error) {
	info, err := h.services.UserInfoService.UpdateUserInfo(ctx, in.ID, in.Payload)
	return reply(&info, err)
}

func (h *Handler) AddWorkout(ctx context.Context, in *models.WorkoutPayload) (*models.Workout, error) {
	workout, err := h.services.WorkoutService.AddWorkout(ctx, *in)
	return reply(&workout, err)
}

func (h *Handler) UpdateWorkout(ctx context.Context, in *models.UpdateWorkoutRequest) (*models.Workout, error) {
	workout, err := h.services.WorkoutService.UpdateWorkout(ctx, in.ID, in.Payload)
	return reply(&workout, err)
}

func (h *Handler) GetAllWorkouts(ctx context.Context, _ *models.Empty) (*models.WorkoutList, error) {
	workouts, err := h.services.WorkoutService.GetAllWorkouts(ctx)
	return reply(&models.WorkoutList{Workouts: workouts}, err)
}

func (h *Handler) GetWorkoutByID(ctx context.Context, in *models.IDRequest) (*models.Workout, error) {
	workout, err := h.services.WorkoutService.GetWorkoutByID(ctx, in.ID)
	return reply(&workout, err)
}

func (h *Handler) SearchWorkoutByName(ctx context.Context, in *models.SearchWorkoutRequest) (*models.WorkoutList, error) {
	workouts, err := h.services.WorkoutService.SearchWorkoutByName(ctx, in.Name)
	return reply(&models.WorkoutList{Workouts: workouts}, err)
}

func (h *Handler) DeleteWorkout(ctx context.Context, in *models.IDRequest) (*models.Workout, error) {
	workout, err := h.services.WorkoutService.DeleteWorkout(ctx, in.ID)
	return reply(&workout, err)
}

func (h *Handler) AddFoodIntake(ctx context.Context, in *models.FoodIntakePayload) (*models.FoodIntake, error) {
	intake, err := h.services.FoodIntakeService.AddFoodIntake(ctx, *in)
	return reply(&intake, err)
}

func (h *Handler) UpdateFoodIntake(ctx context.Context, in *models.UpdateFoodIntakeRequest) (*models.FoodIntake, error) {
	intake, err := h.services.FoodIntakeService.UpdateFoodIntake(ctx, in.ID, in.Payload)
	return reply(&intake, err)
}

func (h *Handler) GetAllFoodIntake(ctx context.Context, _ *models.Empty) (*models.FoodIntakeList, error) {
	intakes, err := h.services.FoodIntakeService.GetAllFoodIntake(ctx)
	return reply(&models.FoodIntakeList{FoodIntakes: intakes}, err)
}

func (h *Handler) GetFoodIntakeByID(ctx context.Context, in *models.IDRequest) (*models.FoodIntake, error) {
	intake, err := h.services.FoodIntakeService.GetFoodIntakeByID(ctx, in.ID)
	return reply(&intake, err)
}

func (h *Handler) DeleteFoodIntake(ctx context.Context, in *models.IDRequest) (*models.FoodIntake, error) {
	intake, err := h.services.FoodIntakeService.DeleteFoodIntake(ctx, in.ID)
	return reply(&intake, err)
}

func reply[T any](out *T, err error) (*T, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}
