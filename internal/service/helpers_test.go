package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/mock"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// sequentialIDs returns an id generator issuing id-001, id-002, ...
func sequentialIDs(ctrl *gomock.Controller) *mock.MockIDGenerator {
	var n atomic.Int64
	ids := mock.NewMockIDGenerator(ctrl)
	ids.EXPECT().Generate().DoAndReturn(func() string {
		return fmt.Sprintf("id-%03d", n.Add(1))
	}).AnyTimes()
	return ids
}

// steppingClock returns a clock starting at start and advancing by 10 on
// every read.
func steppingClock(ctrl *gomock.Controller, start uint64) *mock.MockClock {
	var now atomic.Uint64
	now.Store(start)
	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(func() uint64 {
		return now.Add(10) - 10
	}).AnyTimes()
	return clock
}

// fixedClock returns a clock that always reads now.
func fixedClock(ctrl *gomock.Controller, now uint64) *mock.MockClock {
	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	return clock
}

// newTestServices wires all services over in-memory storages.
func newTestServices(t *testing.T) (*Services, *store.Storages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	storages := store.NewMemoryStorages()
	cfg := config.StructuredConfig{App: config.App{Version: "test"}}

	services, err := newServices(storages, cfg, sequentialIDs(ctrl), steppingClock(ctrl, 1000), logger.Nop())
	require.NoError(t, err)
	return services, storages
}
