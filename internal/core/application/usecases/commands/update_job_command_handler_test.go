package commands_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateJobCommandHandler_Handle_CustomerEditsOwnJob(t *testing.T) {
	ctx := context.Background()
	openJob := newOpenJob(t)
	acting := testActorWithID(t, openJob.CustomerID(), actor.Customer)

	details := futureDetails(t)
	details.LanguageTo = "fi"
	details.Duration = 2 * time.Hour
	cmd, err := commands.NewUpdateJobCommand(openJob.ID(), acting, details)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, openJob.ID()).Return(openJob, nil).Once(),
		jobRepo.On("UpdateGuarded", ctx, mock.AnythingOfType("*job.Job"), job.Open).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateJobCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "fi", result.Job.LanguageTo())
	assert.Equal(t, 2*time.Hour, result.Job.Duration())
	assert.Equal(t, job.Open, result.Job.Status())
}

func TestUpdateJobCommandHandler_Handle_ForeignCustomerIsUnauthorized(t *testing.T) {
	ctx := context.Background()
	openJob := newOpenJob(t)
	acting := testActor(t, actor.Customer)
	cmd, err := commands.NewUpdateJobCommand(openJob.ID(), acting, futureDetails(t))
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, openJob.ID()).Return(openJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	jobRepo.AssertNotCalled(t, "UpdateGuarded", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateJobCommandHandler_Handle_InProgressJobIsFrozen(t *testing.T) {
	ctx := context.Background()
	runningJob := newInProgressJob(t, kernel.NewUUID())
	acting := testActor(t, actor.Admin)
	cmd, err := commands.NewUpdateJobCommand(runningJob.ID(), acting, futureDetails(t))
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, runningJob.ID()).Return(runningJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, job.ErrInvalidTransition)
	jobRepo.AssertNotCalled(t, "UpdateGuarded", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateJobCommandHandler_Handle_ConcurrentAcceptanceWinsOverEdit(t *testing.T) {
	ctx := context.Background()
	openJob := newOpenJob(t)
	acting := testActorWithID(t, openJob.CustomerID(), actor.Customer)
	cmd, err := commands.NewUpdateJobCommand(openJob.ID(), acting, futureDetails(t))
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, openJob.ID()).Return(openJob, nil).Once(),
		jobRepo.On("UpdateGuarded", ctx, mock.AnythingOfType("*job.Job"), job.Open).
			Return(errs.NewStatusConflictError("job", openJob.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStatusConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewUpdateJobCommand_RejectsBadDetails(t *testing.T) {
	acting := testActor(t, actor.Customer)

	details := futureDetails(t)
	details.LanguageFrom = ""
	_, err := commands.NewUpdateJobCommand(kernel.NewUUID(), acting, details)
	require.ErrorIs(t, err, commands.ErrLanguagesAreRequired)

	details = futureDetails(t)
	details.Duration = 0
	_, err = commands.NewUpdateJobCommand(kernel.NewUUID(), acting, details)
	require.ErrorIs(t, err, commands.ErrDurationIsInvalid)
}
