package models

// The types below are the envelopes of RPC transports, where path
// parameters and bodies travel in a single message.

// IDRequest addresses a single record by id.
type IDRequest struct {
	ID string `json:"id"`
}

// SearchWorkoutRequest is the workout search by name.
type SearchWorkoutRequest struct {
	Name string `json:"name"`
}

// UserInfoRequest addresses a UserInfo by its user's id and carries the payload.
type UserInfoRequest struct {
	ID      string          `json:"id"`
	Payload UserInfoPayload `json:"payload"`
}

// UpdateWorkoutRequest carries the target id and the replacement fields.
type UpdateWorkoutRequest struct {
	ID      string         `json:"id"`
	Payload WorkoutPayload `json:"payload"`
}

// UpdateFoodIntakeRequest carries the target id and the replacement fields.
type UpdateFoodIntakeRequest struct {
	ID      string            `json:"id"`
	Payload FoodIntakePayload `json:"payload"`
}

// Empty is the request of parameterless RPCs.
type Empty struct{}

// WorkoutList wraps a workout listing.
type WorkoutList struct {
	Workouts []Workout `json:"workouts"`
}

// FoodIntakeList wraps a food intake listing.
type FoodIntakeList struct {
	FoodIntakes []FoodIntake `json:"food_intakes"`
}
