package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type httpFitnessClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPFitnessClient constructs the REST implementation of [FitnessClient].
// address may omit the scheme, in which case http is assumed.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPFitnessClient(address string, timeout time.Duration, logger *logger.Logger) (FitnessClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpFitnessClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// send performs method on path with an optional JSON body and decodes a
// successful response into a value of type T.
func send[T any](ctx context.Context, h *httpFitnessClient, method, path string, body any, pathParams map[string]string) (T, error) {
	var result T

	req := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetPathParams(pathParams)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return result, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request rejected")
		return result, err
	}

	return result, nil
}

func byID(id string) map[string]string {
	return map[string]string{"id": id}
}

func (h *httpFitnessClient) InitializeUser(ctx context.Context, name string) (models.User, error) {
	return send[models.User](ctx, h, "POST", "/api/users", models.InitializeUserRequest{Name: name}, nil)
}

func (h *httpFitnessClient) GetUser(ctx context.Context, id string) (models.User, error) {
	return send[models.User](ctx, h, "GET", "/api/users/{id}", nil, byID(id))
}

func (h *httpFitnessClient) AddUserInfo(ctx context.Context, userID string, payload models.UserInfoPayload) (models.UserInfo, error) {
	return send[models.UserInfo](ctx, h, "POST", "/api/users/{id}/info", payload, byID(userID))
}

func (h *httpFitnessClient) GetUserInfo(ctx context.Context, userID string) (models.UserInfo, error) {
	return send[models.UserInfo](ctx, h, "GET", "/api/users/{id}/info", nil, byID(userID))
}

func (h *httpFitnessClient) UpdateUserInfo(ctx context.Context, userID string, payload models.UserInfoPayload) (models.UserInfo, error) {
	return send[models.UserInfo](ctx, h, "PUT", "/api/users/{id}/info", payload, byID(userID))
}

func (h *httpFitnessClient) AddWorkout(ctx context.Context, payload models.WorkoutPayload) (models.Workout, error) {
	return send[models.Workout](ctx, h, "POST", "/api/workouts", payload, nil)
}

func (h *httpFitnessClient) UpdateWorkout(ctx context.Context, id string, payload models.WorkoutPayload) (models.Workout, error) {
	return send[models.Workout](ctx, h, "PUT", "/api/workouts/{id}", payload, byID(id))
}

func (h *httpFitnessClient) GetAllWorkouts(ctx context.Context) ([]models.Workout, error) {
	return send[[]models.Workout](ctx, h, "GET", "/api/workouts", nil, nil)
}

func (h *httpFitnessClient) GetWorkoutByID(ctx context.Context, id string) (models.Workout, error) {
	return send[models.Workout](ctx, h, "GET", "/api/workouts/{id}", nil, byID(id))
}

func (h *httpFitnessClient) SearchWorkoutByName(ctx context.Context, name string) ([]models.Workout, error) {
	return send[[]models.Workout](ctx, h, "GET", "/api/workouts/search?name="+url.QueryEscape(name), nil, nil)
}

func (h *httpFitnessClient) DeleteWorkout(ctx context.Context, id string) (models.Workout, error) {
	return send[models.Workout](ctx, h, "DELETE", "/api/workouts/{id}", nil, byID(id))
}

func (h *httpFitnessClient) AddFoodIntake(ctx context.Context, payload models.FoodIntakePayload) (models.FoodIntake, error) {
	return send[models.FoodIntake](ctx, h, "POST", "/api/food-intakes", payload, nil)
}

func (h *httpFitnessClient) UpdateFoodIntake(ctx context.Context, id string, payload models.FoodIntakePayload) (models.FoodIntake, error) {
	return send[models.FoodIntake](ctx, h, "PUT", "/api/food-intakes/{id}", payload, byID(id))
}

func (h *httpFitnessClient) GetAllFoodIntake(ctx context.Context) ([]models.FoodIntake, error) {
	return send[[]models.FoodIntake](ctx, h, "GET", "/api/food-intakes", nil, nil)
}

func (h *httpFitnessClient) GetFoodIntakeByID(ctx context.Context, id string) (models.FoodIntake, error) {
	return send[models.FoodIntake](ctx, h, "GET", "/api/food-intakes/{id}", nil, byID(id))
}

func (h *httpFitnessClient) DeleteFoodIntake(ctx context.Context, id string) (models.FoodIntake, error) {
	return send[models.FoodIntake](ctx, h, "DELETE", "/api/food-intakes/{id}", nil, byID(id))
}

func (h *httpFitnessClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
