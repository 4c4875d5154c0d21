package http

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// newIntegrationRouter serves the real services over in-memory storages.
func newIntegrationRouter(t *testing.T) http.Handler {
	t.Helper()
	svcs, err := service.NewServices(store.NewMemoryStorages(), config.StructuredConfig{
		App: config.App{Version: "1.0.0"},
	}, logger.Nop())
	require.NoError(t, err)
	return newTestRouter(t, svcs)
}

func TestRoutes_WorkoutLifecycle(t *testing.T) {
	router := newIntegrationRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/workouts", `{"workoutType":"Morning Run","calories_burned":"300","date":"2024-01-02"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Workout](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "0", created.NumberOfReps)
	assert.Equal(t, "0", created.DistanceCovered)
	assert.Nil(t, created.UpdatedAt)

	rec = serve(t, router, http.MethodPost, "/api/workouts", `{"workoutType":"Cycling"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, router, http.MethodGet, "/api/workouts/search?name=RUN", "")
	require.Equal(t, http.StatusOK, rec.Code)
	found := decodeBody[[]models.Workout](t, rec)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	rec = serve(t, router, http.MethodPut, "/api/workouts/"+created.ID, `{"workoutType":"Evening Run","number_of_reps":"1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Workout](t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.GreaterOrEqual(t, *updated.UpdatedAt, updated.CreatedAt)

	rec = serve(t, router, http.MethodDelete, "/api/workouts/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Evening Run", decodeBody[models.Workout](t, rec).WorkoutType)

	rec = serve(t, router, http.MethodGet, "/api/workouts/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, errorMessage(t, rec), created.ID)

	rec = serve(t, router, http.MethodGet, "/api/workouts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Workout](t, rec), 1)
}

func TestRoutes_UserAndInfo(t *testing.T) {
	router := newIntegrationRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/users/ghost/info", `{"age":"30"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/users", `{"name":"Ann"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decodeBody[models.User](t, rec)

	rec = serve(t, router, http.MethodGet, "/api/users/"+user.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, decodeBody[models.User](t, rec))

	rec = serve(t, router, http.MethodPost, "/api/users/"+user.ID+"/info", `{"age":"30","weight":"70","height":"180"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, user.ID, decodeBody[models.UserInfo](t, rec).ID)

	rec = serve(t, router, http.MethodGet, "/api/users/"+user.ID+"/info", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "70", decodeBody[models.UserInfo](t, rec).Weight)
}

func TestRoutes_FoodIntakeValidationLeavesNoRecord(t *testing.T) {
	router := newIntegrationRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/food-intakes", `{"type_of_food":"Oatmeal","portion_size":"200g"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, http.MethodGet, "/api/food-intakes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	router := newIntegrationRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPatch, "/api/workouts"},
		{http.MethodDelete, "/api/users/u-1"},
		{http.MethodPost, "/api/food-intakes/f-1"},
		{http.MethodPost, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	rec := serve(t, newIntegrationRouter(t), http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_Version(t *testing.T) {
	rec := serve(t, newIntegrationRouter(t), http.MethodGet, "/api/version/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.0.0", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestRoutes_Metrics(t *testing.T) {
	router := newIntegrationRouter(t)

	serve(t, router, http.MethodGet, "/api/workouts", "")
	rec := serve(t, router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `fitkeeper_http_requests_total{method="GET",route="/api/workouts`)
	assert.Contains(t, body, "fitkeeper_http_request_duration_seconds")
}

func TestRoutes_OversizedBodyIsRejected(t *testing.T) {
	router := newIntegrationRouter(t)
	body := `{"workoutType":"` + strings.Repeat("a", maxBodyBytes) + `","calories_burned":"300"}`

	rec := serve(t, router, http.MethodPost, "/api/workouts", body)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, errorMessage(t, rec), ErrBodyTooLarge.Error())

	rec = serve(t, router, http.MethodGet, "/api/workouts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.Workout](t, rec))
}

func TestRoutes_OversizedGzipBodyIsRejected(t *testing.T) {
	router := newIntegrationRouter(t)

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"typeOfFood":"` + strings.Repeat("a", 2*maxBodyBytes) + `"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.Less(t, compressed.Len(), maxBodyBytes)

	req := httptest.NewRequest(http.MethodPost, "/api/food-intakes", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
