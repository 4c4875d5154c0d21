package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/metrics"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the background workers of the server.
func NewWorkers(storages *store.Storages, m *metrics.Metrics, cfg config.Workers, logger *logger.Logger) *Workers {
	counters := map[string]Counter{
		store.TableUsers:       storages.Users,
		store.TableUserInfos:   storages.UserInfos,
		store.TableWorkouts:    storages.Workouts,
		store.TableFoodIntakes: storages.FoodIntakes,
	}

	return &Workers{
		workers: []Worker{
			NewRecordCounter(counters, m, cfg.StatsInterval, logger),
		},
	}
}

// Run starts every worker in its own goroutine and returns immediately.
// Workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
