package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/metrics"
)

// RecordCounter periodically publishes the number of stored records of every
// resource to the fitkeeper_records gauge.
type RecordCounter struct {
	counters map[string]Counter
	metrics  *metrics.Metrics
	interval time.Duration

	logger *logger.Logger
}

func NewRecordCounter(counters map[string]Counter, m *metrics.Metrics, interval time.Duration, logger *logger.Logger) *RecordCounter {
	return &RecordCounter{
		counters: counters,
		metrics:  m,
		interval: interval,
		logger:   logger,
	}
}

// Run refreshes the gauge at once and then on every tick until ctx is done.
func (c *RecordCounter) Run(ctx context.Context) {
	c.logger.Info().Str("func", "*RecordCounter.Run").Dur("interval", c.interval).Msg("record counter started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Str("func", "*RecordCounter.Run").Msg("record counter stopped")
			return
		case <-ticker.C:
			c.refresh(ctx)
		}
	}
}

func (c *RecordCounter) refresh(ctx context.Context) {
	for resource, counter := range c.counters {
		n, err := counter.Len(ctx)
		if err != nil {
			c.logger.Err(err).Str("func", "*RecordCounter.refresh").Str("resource", resource).Msg("error counting records")
			continue
		}
		c.metrics.SetRecords(resource, n)
	}
}
