package models

// Workout is a single logged training session.
type Workout struct {
	ID string `json:"id"`

	// WorkoutType is the free-text kind of workout ("Morning Run", "Cycling").
	// It is the field searched by name.
	WorkoutType string `json:"workoutType"`

	NumberOfReps    string `json:"number_of_reps"`
	CaloriesBurned  string `json:"calories_burned"`
	DistanceCovered string `json:"distance_covered"`
	Date            string `json:"date"`

	CreatedAt uint64  `json:"createdAt"`
	UpdatedAt *uint64 `json:"updatedAt"`
}

// WorkoutPayload is the body of workout creation and update.
type WorkoutPayload struct {
	WorkoutType     string `json:"workoutType"`
	NumberOfReps    string `json:"number_of_reps"`
	CaloriesBurned  string `json:"calories_burned"`
	DistanceCovered string `json:"distance_covered"`
	Date            string `json:"date"`
}

// Apply returns a copy of w with every payload field overwritten.
func (p WorkoutPayload) Apply(w Workout) Workout {
	w.WorkoutType = p.WorkoutType
	w.NumberOfReps = p.NumberOfReps
	w.CaloriesBurned = p.CaloriesBurned
	w.DistanceCovered = p.DistanceCovered
	w.Date = p.Date
	return w
}
