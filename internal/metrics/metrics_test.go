package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsolatedRegistries(t *testing.T) {
	a := New()
	b := New()

	a.SetRecords("workouts", 3)

	assert.Equal(t, 3.0, testutil.ToFloat64(a.Records.WithLabelValues("workouts")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Records.WithLabelValues("workouts")))
}

func TestObserveHTTP(t *testing.T) {
	m := New()

	m.ObserveHTTP(http.MethodGet, "/api/workouts", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/workouts", http.StatusOK, 30*time.Millisecond)
	m.ObserveHTTP(http.MethodPost, "/api/workouts", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/workouts", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/api/workouts", "400")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestObserveGRPC(t *testing.T) {
	m := New()
	m.ObserveGRPC("/fitkeeper.v1.FitnessTracker/AddWorkout", "OK")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GRPCRequests.WithLabelValues("/fitkeeper.v1.FitnessTracker/AddWorkout", "OK")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.SetRecords("users", 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `fitkeeper_records{resource="users"} 2`)
	assert.Contains(t, string(body), "go_goroutines")
}
