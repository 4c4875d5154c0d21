// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-fit-keeper REST API.
//
// [FitnessClient] mirrors the resource operations of the server one method
// per route. The REST implementation ([NewHTTPFitnessClient]) is built on
// go-resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrBadRequest] for 400). The wrapped message is the server's
// "error" field.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// FitnessClient defines communication with the go-fit-keeper server.
type FitnessClient interface {
	// InitializeUser creates a user with the given display name.
	InitializeUser(ctx context.Context, name string) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)

	// AddUserInfo stores the body-metric snapshot of an existing user.
	AddUserInfo(ctx context.Context, userID string, payload models.UserInfoPayload) (models.UserInfo, error)
	GetUserInfo(ctx context.Context, userID string) (models.UserInfo, error)
	UpdateUserInfo(ctx context.Context, userID string, payload models.UserInfoPayload) (models.UserInfo, error)

	AddWorkout(ctx context.Context, payload models.WorkoutPayload) (models.Workout, error)
	UpdateWorkout(ctx context.Context, id string, payload models.WorkoutPayload) (models.Workout, error)
	GetAllWorkouts(ctx context.Context) ([]models.Workout, error)
	GetWorkoutByID(ctx context.Context, id string) (models.Workout, error)
	// SearchWorkoutByName returns the workouts whose type contains name,
	// ignoring case.
	SearchWorkoutByName(ctx context.Context, name string) ([]models.Workout, error)
	// DeleteWorkout returns the removed workout.
	DeleteWorkout(ctx context.Context, id string) (models.Workout, error)

	AddFoodIntake(ctx context.Context, payload models.FoodIntakePayload) (models.FoodIntake, error)
	UpdateFoodIntake(ctx context.Context, id string, payload models.FoodIntakePayload) (models.FoodIntake, error)
	GetAllFoodIntake(ctx context.Context) ([]models.FoodIntake, error)
	GetFoodIntakeByID(ctx context.Context, id string) (models.FoodIntake, error)
	DeleteFoodIntake(ctx context.Context, id string) (models.FoodIntake, error)

	// Version returns the server's build version.
	Version(ctx context.Context) (string, error)
}
