package commands_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newExpireJobsHandler(factory *MockJobUoWFactory, notifier *MockNotifier) commands.ExpireJobsCommandHandler {
	return commands.NewExpireJobsCommandHandler(factory, services.NewAudiencePlanner(), notifier)
}

func TestNewExpireJobsCommand_DeadlineIsRequired(t *testing.T) {
	_, err := commands.NewExpireJobsCommand(time.Time{})
	require.ErrorIs(t, err, commands.ErrDeadlineIsRequired)
}

func TestExpireJobsCommandHandler_Handle_ExpiresStaleJobs(t *testing.T) {
	ctx := context.Background()
	deadline := time.Now()
	cmd, err := commands.NewExpireJobsCommand(deadline)
	require.NoError(t, err)

	staleA := newOpenJob(t)
	staleB := newOpenJob(t)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetOpenStartedBefore", ctx, deadline).Return([]*job.Job{staleA, staleB}, nil).Once(),
		jobRepo.On("UpdateGuarded", ctx, staleA, job.Open).Return(nil).Once(),
		jobRepo.On("UpdateGuarded", ctx, staleB, job.Open).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Dispatch", ctx, mock.AnythingOfType("notification.Event"),
			staleA, (*kernel.UUID)(nil)).Return(nil).Once(),
		notifier.On("Dispatch", ctx, mock.AnythingOfType("notification.Event"),
			staleB, (*kernel.UUID)(nil)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newExpireJobsHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.ExpiredJobs, 2)
	assert.Equal(t, job.Expired, staleA.Status())
	assert.Equal(t, job.Expired, staleB.Status())
	assert.Empty(t, result.NotificationFailures)
}

func TestExpireJobsCommandHandler_Handle_SkipsConcurrentlyAcceptedJob(t *testing.T) {
	ctx := context.Background()
	deadline := time.Now()
	cmd, err := commands.NewExpireJobsCommand(deadline)
	require.NoError(t, err)

	staleA := newOpenJob(t)
	racedB := newOpenJob(t)
	conflict := errs.NewStatusConflictError("job", racedB.ID().String())

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetOpenStartedBefore", ctx, deadline).Return([]*job.Job{staleA, racedB}, nil).Once(),
		jobRepo.On("UpdateGuarded", ctx, staleA, job.Open).Return(nil).Once(),
		jobRepo.On("UpdateGuarded", ctx, racedB, job.Open).Return(conflict).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Dispatch", ctx, mock.AnythingOfType("notification.Event"),
			staleA, (*kernel.UUID)(nil)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newExpireJobsHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.ExpiredJobs, 1)
	assert.True(t, result.ExpiredJobs[0].IsEqual(staleA))
}

func TestExpireJobsCommandHandler_Handle_NothingToExpire(t *testing.T) {
	ctx := context.Background()
	deadline := time.Now()
	cmd, err := commands.NewExpireJobsCommand(deadline)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetOpenStartedBefore", ctx, deadline).Return([]*job.Job{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	handler := newExpireJobsHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.ExpiredJobs)
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
