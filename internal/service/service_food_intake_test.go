package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fit-keeper/internal/validators"
	"github.com/MKhiriev/go-fit-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salad() models.FoodIntakePayload {
	return models.FoodIntakePayload{
		TypeOfFood:       "Salad",
		PortionSize:      "1 bowl",
		NumberOfCalories: "150",
	}
}

func TestFoodIntakeService_AddFoodIntake(t *testing.T) {
	services, _ := newTestServices(t)

	f, err := services.FoodIntakeService.AddFoodIntake(context.Background(), salad())
	require.NoError(t, err)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "Salad", f.TypeOfFood)
	assert.Equal(t, "1 bowl", f.PortionSize)
	assert.Equal(t, "150", f.NumberOfCalories)
	assert.Equal(t, "0", f.WaterIntake)
	assert.NotZero(t, f.CreatedDate)
	assert.Nil(t, f.UpdatedAt)
}

func TestFoodIntakeService_AddFoodIntake_KeepsWaterIntake(t *testing.T) {
	services, _ := newTestServices(t)

	p := salad()
	p.WaterIntake = "500ml"

	f, err := services.FoodIntakeService.AddFoodIntake(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "500ml", f.WaterIntake)
}

func TestFoodIntakeService_AddFoodIntake_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.FoodIntakePayload)
		wantErr error
	}{
		{name: "no type of food", mutate: func(p *models.FoodIntakePayload) { p.TypeOfFood = "" }, wantErr: validators.ErrEmptyTypeOfFood},
		{name: "no portion size", mutate: func(p *models.FoodIntakePayload) { p.PortionSize = "" }, wantErr: validators.ErrEmptyPortionSize},
		{name: "no calories", mutate: func(p *models.FoodIntakePayload) { p.NumberOfCalories = "\t" }, wantErr: validators.ErrEmptyNumberOfCalories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, storages := newTestServices(t)
			ctx := context.Background()

			p := salad()
			tt.mutate(&p)

			_, err := services.FoodIntakeService.AddFoodIntake(ctx, p)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)

			n, _ := storages.FoodIntakes.Len(ctx)
			assert.Zero(t, n)
		})
	}
}

func TestFoodIntakeService_UpdateFoodIntake(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	created, err := services.FoodIntakeService.AddFoodIntake(ctx, salad())
	require.NoError(t, err)

	updated, err := services.FoodIntakeService.UpdateFoodIntake(ctx, created.ID, models.FoodIntakePayload{
		TypeOfFood:       "Soup",
		PortionSize:      "2 cups",
		NumberOfCalories: "200",
		WaterIntake:      "250ml",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedDate, updated.CreatedDate)
	assert.Equal(t, "Soup", updated.TypeOfFood)
	assert.Equal(t, "250ml", updated.WaterIntake)
	require.NotNil(t, updated.UpdatedAt)
	assert.GreaterOrEqual(t, *updated.UpdatedAt, created.CreatedDate)
}

func TestFoodIntakeService_UpdateFoodIntake_NotFound(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.FoodIntakeService.UpdateFoodIntake(context.Background(), "x", salad())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, `food intake with id "x" does not exist`)
}

func TestFoodIntakeService_Reads(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	all, err := services.FoodIntakeService.GetAllFoodIntake(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	created, err := services.FoodIntakeService.AddFoodIntake(ctx, salad())
	require.NoError(t, err)

	got, err := services.FoodIntakeService.GetFoodIntakeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	all, err = services.FoodIntakeService.GetAllFoodIntake(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.FoodIntake{created}, all)

	_, err = services.FoodIntakeService.GetFoodIntakeByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFoodIntakeService_DeleteFoodIntake(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	created, err := services.FoodIntakeService.AddFoodIntake(ctx, salad())
	require.NoError(t, err)

	deleted, err := services.FoodIntakeService.DeleteFoodIntake(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = services.FoodIntakeService.GetFoodIntakeByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = services.FoodIntakeService.DeleteFoodIntake(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFoodIntakeService_DeleteFoodIntake_MissingKeepsOthers(t *testing.T) {
	services, storages := newTestServices(t)
	ctx := context.Background()

	first, err := services.FoodIntakeService.AddFoodIntake(ctx, salad())
	require.NoError(t, err)
	second, err := services.FoodIntakeService.AddFoodIntake(ctx, models.FoodIntakePayload{
		TypeOfFood:       "Soup",
		PortionSize:      "1 cup",
		NumberOfCalories: "90",
	})
	require.NoError(t, err)

	before, err := storages.FoodIntakes.Values(ctx)
	require.NoError(t, err)

	_, err = services.FoodIntakeService.DeleteFoodIntake(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := storages.FoodIntakes.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	after, err := storages.FoodIntakes.Values(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []models.FoodIntake{first, second}, after)
}
