package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName             = errors.New("name is required")
	ErrEmptyWorkoutType      = errors.New("workoutType is required")
	ErrEmptyTypeOfFood       = errors.New("type_of_food is required")
	ErrEmptyPortionSize      = errors.New("portion_size is required")
	ErrEmptyNumberOfCalories = errors.New("number_of_calories is required")
)
