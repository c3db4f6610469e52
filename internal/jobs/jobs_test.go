package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLowStockHandler struct{ mock.Mock }

func (m *MockLowStockHandler) Handle(ctx context.Context, query queries.GetLowStockCartonsQuery) ([]queries.CartonTypeView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.CartonTypeView), args.Error(1)
}

type MockStalePacksHandler struct{ mock.Mock }

func (m *MockStalePacksHandler) Handle(ctx context.Context, query queries.ListStalePacksQuery) ([]queries.StalePack, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.StalePack), args.Error(1)
}

func TestLowStockJob_Run(t *testing.T) {
	handler := &MockLowStockHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.CartonTypeView{
		{ID: kernel.NewUUID(), Name: "Medium", QuantityOnHand: 1, MinimumStock: 5},
		{ID: kernel.NewUUID(), Name: "Flat", QuantityOnHand: -2, MinimumStock: 3},
	}, nil).Once()

	job := NewLowStockJob(handler, "0 7 * * *")

	assert.Equal(t, 2, job.Run(context.Background()))
	handler.AssertExpectations(t)
}

func TestLowStockJob_RunFailure(t *testing.T) {
	handler := &MockLowStockHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	job := NewLowStockJob(handler, "0 7 * * *")

	assert.Equal(t, 0, job.Run(context.Background()))
}

func TestStalePackJob_RunUsesThreshold(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	startedBy := int64(7)

	handler := &MockStalePacksHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListStalePacksQuery) bool {
		return q.StartedBefore().Equal(now.Add(-8 * time.Hour))
	})).Return([]queries.StalePack{
		{PackID: kernel.NewUUID(), OrderNo: "48213", StartedAt: now.Add(-30 * time.Hour), StartedBy: &startedBy, BoxCount: 2},
	}, nil).Once()

	job := NewStalePackJob(handler, "*/30 * * * *", 8*time.Hour)
	job.now = func() time.Time { return now }

	assert.Equal(t, 1, job.Run(context.Background()))
	handler.AssertExpectations(t)
}

func TestJob_StartRejectsBadSchedule(t *testing.T) {
	job := NewLowStockJob(&MockLowStockHandler{}, "every morning")

	require.Error(t, job.Start())
}

func TestJobManager_SkipsUnscheduledJobs(t *testing.T) {
	jm := NewJobManager(Config{StalePackSchedule: "*/30 * * * *", StalePackAfter: time.Hour},
		&MockLowStockHandler{}, &MockStalePacksHandler{})

	require.Len(t, jm.jobs, 1)
	require.NoError(t, jm.StartAll())
	assert.Len(t, jm.started, 1)

	jm.StopAll()
	assert.Empty(t, jm.started)
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	jm := NewJobManager(Config{
		LowStockSchedule:  "0 7 * * *",
		StalePackSchedule: "not a schedule",
		StalePackAfter:    time.Hour,
	}, &MockLowStockHandler{}, &MockStalePacksHandler{})

	require.Error(t, jm.StartAll())
	assert.Empty(t, jm.started)
}
