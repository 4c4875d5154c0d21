package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// Client calls the FitnessTracker service over a gRPC connection using the
// JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InitializeUser(ctx context.Context, in *models.InitializeUserRequest, opts ...grpc.CallOption) (*models.User, error) {
	return invoke[models.User](ctx, c, MethodInitializeUser, in, opts...)
}

func (c *Client) GetUser(ctx context.Context, in *models.IDRequest, opts ...grpc.CallOption) (*models.User, error) {
	return invoke[models.User](ctx, c, MethodGetUser, in, opts...)
}

func (c *Client) AddUserInfo(ctx context.Context, in *models.UserInfoRequest, opts ...grpc.CallOption) (*models.UserInfo, error) {
	return invoke[models.UserInfo](ctx, c, MethodAddUserInfo, in, opts...)
}

func (c *Client) GetUserInfo(ctx context.Context, in *models.IDRequest, opts ...grpc.CallOption) (*models.UserInfo, error) {
	return invoke[models.UserInfo](ctx, c, MethodGetUserInfo, in, opts...)
}

func (c *Client) UpdateUserInfo(ctx context.Context, in *models.UserInfoRequest, opts ...grpc.CallOption) (*models.UserInfo, error) {
	return invoke[models.UserInfo](ctx, c, MethodUpdateUserInfo, in, opts...)
}

func (c *Client) AddWorkout(ctx context.Context, in *models.WorkoutPayload, opts ...grpc.CallOption) (*models.Workout, error) {
	return invoke[models.Workout](ctx, c, MethodAddWorkout, in, opts...)
}

func (c *Client) UpdateWorkout(ctx context.Context, in *models.UpdateWorkoutRequest, opts ...grpc.CallOption) (*models.Workout, error) {
	return invoke[models.Workout](ctx, c, MethodUpdateWorkout, in, opts...)
}

func (c *Client) GetAllWorkouts(ctx context.Context, opts ...grpc.CallOption) (*models.WorkoutList, error) {
	return invoke[models.WorkoutList](ctx, c, MethodGetAllWorkouts, &models.Empty{}, opts...)
}

func (c *Client) GetWorkoutByID(ctx context.Context, in *models.IDRequest, opts ...grpc.CallOption) (*models.Workout, error) {
	return invoke[models.Workout](ctx, c, MethodGetWorkoutByID, in, opts...)
}

func (c *Client) SearchWorkoutByName(ctx context.Context, in *models.SearchWorkoutRequest, opts ...grpc.CallOption) (*models.WorkoutList, error) {
	return invoke[models.WorkoutList](ctx, c, MethodSearchWorkoutByName, in, opts...)
}

func (c *Client) DeleteWorkout(ctx context.Context, in *models.IDRequest, opts ...grpc.CallOption) (*models.Workout, error) {
	return invoke[models.Workout](ctx, c, MethodDeleteWorkout, in, opts...)
}

func (c *Client) AddFoodIntake(ctx context.Context, in *models.FoodIntakePayload, opts ...grpc.CallOption) (*models.FoodIntake, error) {
	return invoke[models.FoodIntake](ctx, c, MethodAddFoodIntake, in, opts...)
}

func (c *Client) UpdateFoodIntake(ctx context.Context, in *models.UpdateFoodIntakeRequest, opts ...grpc.CallOption) (*models.FoodIntake, error) {
	return invoke[models.FoodIntake](ctx, c, MethodUpdateFoodIntake, in, opts...)
}

func (c *Client) GetAllFoodIntake(ctx context.Context, opts ...grpc.CallOption) (*models.FoodIntakeList, error) {
	return invoke[models.FoodIntakeList](ctx, c, MethodGetAllFoodIntake, &models.Empty{}, opts...)
}

func (c *Client) GetFoodIntakeByID(ctx context.Context, in *models.IDRequest, opts ...grpc.CallOption) (*models.FoodIntake, error) {
	return invoke[models.FoodIntake](ctx, c, MethodGetFoodIntakeByID, in, opts...)
}

func (c *Client) DeleteFoodIntake(ctx context.Context, in *models.IDRequest, opts ...grpc.CallOption) (*models.FoodIntake, error) {
	return invoke[models.FoodIntake](ctx, c, MethodDeleteFoodIntake, in, opts...)
}
