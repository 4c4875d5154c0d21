package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "fitkeeper.v1.FitnessTracker"

// Wire names of the FitnessTracker methods.
const (
	MethodInitializeUser      = "InitializeUser"
	MethodGetUser             = "GetUser"
	MethodAddUserInfo         = "AddUserInfo"
	MethodGetUserInfo         = "GetUserInfo"
	MethodUpdateUserInfo      = "UpdateUserInfo"
	MethodAddWorkout          = "AddWorkout"
	MethodUpdateWorkout       = "UpdateWorkout"
	MethodGetAllWorkouts      = "GetAllWorkouts"
	MethodGetWorkoutByID      = "GetWorkoutById"
	MethodSearchWorkoutByName = "SearchWorkoutByName"
	MethodDeleteWorkout       = "DeleteWorkout"
	MethodAddFoodIntake       = "AddFoodIntake"
	MethodUpdateFoodIntake    = "UpdateFoodIntake"
	MethodGetAllFoodIntake    = "GetAllFoodtake"
	MethodGetFoodIntakeByID   = "GetFoodIntakeById"
	MethodDeleteFoodIntake    = "DeleteFoodIntake"
)

// FitnessTrackerServer is the server API of the FitnessTracker service.
type FitnessTrackerServer interface {
	InitializeUser(context.Context, *models.InitializeUserRequest) (*models.User, error)
	GetUser(context.Context, *models.IDRequest) (*models.User, error)

	AddUserInfo(context.Context, *models.UserInfoRequest) (*models.UserInfo, error)
	GetUserInfo(context.Context, *models.IDRequest) (*models.UserInfo, error)
	UpdateUserInfo(context.Context, *models.UserInfoRequest) (*models.UserInfo, error)

	AddWorkout(context.Context, *models.WorkoutPayload) (*models.Workout, error)
	UpdateWorkout(context.Context, *models.UpdateWorkoutRequest) (*models.Workout, error)
	GetAllWorkouts(context.Context, *models.Empty) (*models.WorkoutList, error)
	GetWorkoutByID(context.Context, *models.IDRequest) (*models.Workout, error)
	SearchWorkoutByName(context.Context, *models.SearchWorkoutRequest) (*models.WorkoutList, error)
	DeleteWorkout(context.Context, *models.IDRequest) (*models.Workout, error)

	AddFoodIntake(context.Context, *models.FoodIntakePayload) (*models.FoodIntake, error)
	UpdateFoodIntake(context.Context, *models.UpdateFoodIntakeRequest) (*models.FoodIntake, error)
	GetAllFoodIntake(context.Context, *models.Empty) (*models.FoodIntakeList, error)
	GetFoodIntakeByID(context.Context, *models.IDRequest) (*models.FoodIntake, error)
	DeleteFoodIntake(context.Context, *models.IDRequest) (*models.FoodIntake, error)
}

// ServiceDesc describes the FitnessTracker service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FitnessTrackerServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodInitializeUser, FitnessTrackerServer.InitializeUser),
		unary(MethodGetUser, FitnessTrackerServer.GetUser),
		unary(MethodAddUserInfo, FitnessTrackerServer.AddUserInfo),
		unary(MethodGetUserInfo, FitnessTrackerServer.GetUserInfo),
		unary(MethodUpdateUserInfo, FitnessTrackerServer.UpdateUserInfo),
		unary(MethodAddWorkout, FitnessTrackerServer.AddWorkout),
		unary(MethodUpdateWorkout, FitnessTrackerServer.UpdateWorkout),
		unary(MethodGetAllWorkouts, FitnessTrackerServer.GetAllWorkouts),
		unary(MethodGetWorkoutByID, FitnessTrackerServer.GetWorkoutByID),
		unary(MethodSearchWorkoutByName, FitnessTrackerServer.SearchWorkoutByName),
		unary(MethodDeleteWorkout, FitnessTrackerServer.DeleteWorkout),
		unary(MethodAddFoodIntake, FitnessTrackerServer.AddFoodIntake),
		unary(MethodUpdateFoodIntake, FitnessTrackerServer.UpdateFoodIntake),
		unary(MethodGetAllFoodIntake, FitnessTrackerServer.GetAllFoodIntake),
		unary(MethodGetFoodIntakeByID, FitnessTrackerServer.GetFoodIntakeByID),
		unary(MethodDeleteFoodIntake, FitnessTrackerServer.DeleteFoodIntake),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fitkeeper/v1/fitness_tracker",
}

// FullMethod returns the "/service/method" path of a FitnessTracker method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary builds the method descriptor of a unary call, decoding the request
// into a fresh Req and running it through the server's interceptor chain.
func unary[Req, Resp any](name string, call func(FitnessTrackerServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}

			server := srv.(FitnessTrackerServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
