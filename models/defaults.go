package models

// DefaultNumericText is stored in optional numeric-text fields
// (reps, distance, water intake) omitted at creation.
const DefaultNumericText = "0"

// OrDefault returns value, or [DefaultNumericText] when value is empty.
func OrDefault(value string) string {
	if value == "" {
		return DefaultNumericText
	}
	return value
}
