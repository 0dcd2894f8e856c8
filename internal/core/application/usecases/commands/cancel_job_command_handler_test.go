package commands_test

import (
	"context"
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCancelJobHandler(factory *MockJobUoWFactory, notifier *MockNotifier) commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(factory, services.NewAudiencePlanner(), notifier)
}

func expectCancelFlow(ctx context.Context, uow *MockJobUoW, jobRepo *MockJobRepository,
	notifier *MockNotifier, cancelledJob *job.Job, expected job.Status,
) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, cancelledJob.ID()).Return(cancelledJob, nil).Once(),
		jobRepo.On("UpdateGuarded", ctx, mock.AnythingOfType("*job.Job"), expected).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Dispatch", ctx, mock.AnythingOfType("notification.Event"),
			mock.AnythingOfType("*job.Job"), mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestCancelJobCommandHandler_Handle_CustomerWithdrawsOpenJob(t *testing.T) {
	ctx := context.Background()
	openJob := newOpenJob(t)
	acting := testActorWithID(t, openJob.CustomerID(), actor.Customer)
	cmd, err := commands.NewCancelJobCommand(openJob.ID(), acting)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)
	notifier := new(MockNotifier)
	expectCancelFlow(ctx, uow, jobRepo, notifier, openJob, job.Open)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCancelJobHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.Cancelled, result.Job.Status())
	assert.Equal(t, job.ReasonWithdrawn, result.Job.CancelReason())
	assert.Nil(t, result.Job.Translator())
}

func TestCancelJobCommandHandler_Handle_CustomerCancelsAssignedJob(t *testing.T) {
	ctx := context.Background()
	assignedJob := newAssignedJob(t, kernel.NewUUID())
	acting := testActorWithID(t, assignedJob.CustomerID(), actor.Customer)
	cmd, err := commands.NewCancelJobCommand(assignedJob.ID(), acting)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)
	notifier := new(MockNotifier)
	expectCancelFlow(ctx, uow, jobRepo, notifier, assignedJob, job.Assigned)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCancelJobHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.ReasonCancelledByCustomer, result.Job.CancelReason())
}

func TestCancelJobCommandHandler_Handle_TranslatorHandsBackOwnJob(t *testing.T) {
	ctx := context.Background()
	translatorID := kernel.NewUUID()
	assignedJob := newAssignedJob(t, translatorID)
	acting := testActorWithID(t, translatorID, actor.Translator)
	cmd, err := commands.NewCancelJobCommand(assignedJob.ID(), acting)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)
	notifier := new(MockNotifier)
	expectCancelFlow(ctx, uow, jobRepo, notifier, assignedJob, job.Assigned)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCancelJobHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.ReasonCancelledByTranslator, result.Job.CancelReason())
}

func TestCancelJobCommandHandler_Handle_StrangerTranslatorIsUnauthorized(t *testing.T) {
	ctx := context.Background()
	assignedJob := newAssignedJob(t, kernel.NewUUID())
	acting := testActor(t, actor.Translator)
	cmd, err := commands.NewCancelJobCommand(assignedJob.ID(), acting)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, assignedJob.ID()).Return(assignedJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCancelJobHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	jobRepo.AssertNotCalled(t, "UpdateGuarded", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelJobCommandHandler_Handle_AdminCancelsAnyJob(t *testing.T) {
	ctx := context.Background()
	translatorID := kernel.NewUUID()
	inProgressJob := newInProgressJob(t, translatorID)
	acting := testActor(t, actor.Admin)
	cmd, err := commands.NewCancelJobCommand(inProgressJob.ID(), acting)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)
	notifier := new(MockNotifier)
	expectCancelFlow(ctx, uow, jobRepo, notifier, inProgressJob, job.InProgress)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCancelJobHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.ReasonCancelledByAdmin, result.Job.CancelReason())
}

func TestCancelJobCommandHandler_Handle_TerminalJobCannotBeCancelled(t *testing.T) {
	ctx := context.Background()
	translatorID := kernel.NewUUID()
	doneJob := newInProgressJob(t, translatorID)
	require.NoError(t, doneJob.Complete(doneJob.Duration()))

	acting := testActor(t, actor.Admin)
	cmd, err := commands.NewCancelJobCommand(doneJob.ID(), acting)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, doneJob.ID()).Return(doneJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCancelJobHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, job.ErrInvalidTransition)
}
