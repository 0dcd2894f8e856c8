package commands_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/core/application/notifications"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) UpdateGuarded(ctx context.Context, aggregate *job.Job, expected job.Status) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}

func (m *MockJobRepository) GetOpenStartedBefore(ctx context.Context, deadline time.Time) ([]*job.Job, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAssignedStartingBetween(ctx context.Context, from, to time.Time) ([]*job.Job, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockDistanceRepository struct{ mock.Mock }

func (m *MockDistanceRepository) Upsert(ctx context.Context, record job.DistanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDistanceRepository) Get(ctx context.Context, jobID kernel.UUID) (job.DistanceRecord, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(job.DistanceRecord), args.Error(1)
}

type MockJobUoW struct{ mock.Mock }

func (m *MockJobUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockMetadataUoW struct{ mock.Mock }

func (m *MockMetadataUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMetadataUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMetadataUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMetadataUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockMetadataUoW) DistanceRepository() ports.DistanceRepository {
	args := m.Called()
	return args.Get(0).(ports.DistanceRepository)
}

type MockMetadataUoWFactory struct{ mock.Mock }

func (m *MockMetadataUoWFactory) Create() commands.MetadataUoW {
	args := m.Called()
	return args.Get(0).(commands.MetadataUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Dispatch(
	ctx context.Context,
	event notification.Event,
	j *job.Job,
	translatorID *kernel.UUID,
) []notifications.DeliveryFailure {
	args := m.Called(ctx, event, j, translatorID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]notifications.DeliveryFailure)
}

func (m *MockNotifier) DispatchSMSToAssigned(ctx context.Context, j *job.Job) []notifications.DeliveryFailure {
	args := m.Called(ctx, j)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]notifications.DeliveryFailure)
}

func testActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	acting, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return acting
}

func testActorWithID(t *testing.T, id kernel.UUID, role actor.Role) actor.Actor {
	t.Helper()
	acting, err := actor.NewActor(id, role)
	require.NoError(t, err)
	return acting
}

func futureDetails(t *testing.T) job.Details {
	t.Helper()
	start := time.Now().Add(2 * time.Hour)
	window, err := kernel.NewTimeWindow(start, start.Add(time.Hour))
	require.NoError(t, err)

	return job.Details{
		LanguageFrom: "sv",
		LanguageTo:   "ar",
		City:         "Stockholm",
		Window:       window,
		Duration:     time.Hour,
	}
}

func newOpenJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), futureDetails(t), time.Now())
	require.NoError(t, err)
	return j
}

func newAssignedJob(t *testing.T, translatorID kernel.UUID) *job.Job {
	t.Helper()
	j := newOpenJob(t)
	require.NoError(t, j.Accept(translatorID))
	return j
}

func newInProgressJob(t *testing.T, translatorID kernel.UUID) *job.Job {
	t.Helper()
	j := newAssignedJob(t, translatorID)
	require.NoError(t, j.Start())
	return j
}
