package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
// The names equal the JSON names of the validated fields.
const (
	// FieldName targets the display name of a new user.
	FieldName = "name"

	// FieldWorkoutType targets the free-text kind of a workout.
	FieldWorkoutType = "workoutType"

	// FieldTypeOfFood targets the kind of food of an intake.
	FieldTypeOfFood = "type_of_food"

	// FieldPortionSize targets the portion size of an intake.
	FieldPortionSize = "portion_size"

	// FieldNumberOfCalories targets the calories of an intake.
	FieldNumberOfCalories = "number_of_calories"
)

// FitnessValidator implements the Validator interface for the payloads of
// the fitness tracker: InitializeUserRequest, UserInfoPayload,
// WorkoutPayload and FoodIntakePayload.
//
// A required field holding only whitespace is treated as empty.
type FitnessValidator struct{}

// NewFitnessValidator constructs a new FitnessValidator and returns it as
// the Validator interface.
func NewFitnessValidator() Validator {
	return &FitnessValidator{}
}

// Validate dispatches validation on the dynamic type of obj. Both value and
// pointer forms are accepted. When fields is empty, every required field of
// the type is checked.
//
// Returns ErrUnsupportedType if obj does not match any known payload and
// ErrUnknownField if a field name does not belong to the payload.
func (v *FitnessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InitializeUserRequest:
		return v.validateInitializeUser(ctx, value, fields...)
	case *models.InitializeUserRequest:
		return v.validateInitializeUser(ctx, *value, fields...)

	case models.UserInfoPayload, *models.UserInfoPayload:
		if len(fields) > 0 {
			return ErrUnknownField
		}
		return nil

	case models.WorkoutPayload:
		return v.validateWorkout(ctx, value, fields...)
	case *models.WorkoutPayload:
		return v.validateWorkout(ctx, *value, fields...)

	case models.FoodIntakePayload:
		return v.validateFoodIntake(ctx, value, fields...)
	case *models.FoodIntakePayload:
		return v.validateFoodIntake(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FitnessValidator) validateInitializeUser(_ context.Context, req models.InitializeUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(req.Name) {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FitnessValidator) validateWorkout(_ context.Context, payload models.WorkoutPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWorkoutType}
	}

	for _, f := range fields {
		switch f {
		case FieldWorkoutType:
			if isBlank(payload.WorkoutType) {
				return ErrEmptyWorkoutType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FitnessValidator) validateFoodIntake(_ context.Context, payload models.FoodIntakePayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTypeOfFood, FieldPortionSize, FieldNumberOfCalories}
	}

	for _, f := range fields {
		switch f {
		case FieldTypeOfFood:
			if isBlank(payload.TypeOfFood) {
				return ErrEmptyTypeOfFood
			}
		case FieldPortionSize:
			if isBlank(payload.PortionSize) {
				return ErrEmptyPortionSize
			}
		case FieldNumberOfCalories:
			if isBlank(payload.NumberOfCalories) {
				return ErrEmptyNumberOfCalories
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
