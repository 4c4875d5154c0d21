package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.True(t, info.HasVersion())
}

func TestNewAppBuildInfo_MissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, NotAvailable, info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
	assert.False(t, info.HasVersion())
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, DefaultNumericText, OrDefault(""))
	assert.Equal(t, "12", OrDefault("12"))
}

func TestPayloadApply_PreservesIdentity(t *testing.T) {
	updatedAt := uint64(7)
	w := Workout{ID: "w-1", WorkoutType: "Run", CreatedAt: 5, UpdatedAt: &updatedAt}

	got := WorkoutPayload{WorkoutType: "Swim", Date: "2024-01-02"}.Apply(w)

	assert.Equal(t, "w-1", got.ID)
	assert.Equal(t, uint64(5), got.CreatedAt)
	assert.Equal(t, "Swim", got.WorkoutType)
	assert.Equal(t, "2024-01-02", got.Date)
	assert.Equal(t, "Run", w.WorkoutType)
}
