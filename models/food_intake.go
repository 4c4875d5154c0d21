package models

// FoodIntake is a single food diary entry.
type FoodIntake struct {
	ID string `json:"id"`

	TypeOfFood       string `json:"type_of_food"`
	PortionSize      string `json:"portion_size"`
	NumberOfCalories string `json:"number_of_calories"`
	WaterIntake      string `json:"water_intake"`

	CreatedDate uint64  `json:"created_date"`
	UpdatedAt   *uint64 `json:"updated_at"`
}

// FoodIntakePayload is the body of food intake creation and update.
type FoodIntakePayload struct {
	TypeOfFood       string `json:"type_of_food"`
	PortionSize      string `json:"portion_size"`
	NumberOfCalories string `json:"number_of_calories"`
	WaterIntake      string `json:"water_intake"`
}

// Apply returns a copy of f with every payload field overwritten.
func (p FoodIntakePayload) Apply(f FoodIntake) FoodIntake {
	f.TypeOfFood = p.TypeOfFood
	f.PortionSize = p.PortionSize
	f.NumberOfCalories = p.NumberOfCalories
	f.WaterIntake = p.WaterIntake
	return f
}
