package commands_test

import (
	"context"
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartJobCommandHandler_Handle_AssignedTranslatorStarts(t *testing.T) {
	ctx := context.Background()
	translatorID := kernel.NewUUID()
	assignedJob := newAssignedJob(t, translatorID)
	acting := testActorWithID(t, translatorID, actor.Translator)
	cmd, err := commands.NewStartJobCommand(assignedJob.ID(), acting)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, assignedJob.ID()).Return(assignedJob, nil).Once(),
		jobRepo.On("UpdateGuarded", ctx, mock.AnythingOfType("*job.Job"), job.Assigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartJobCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.InProgress, result.Job.Status())
}

func TestStartJobCommandHandler_Handle_OtherTranslatorIsUnauthorized(t *testing.T) {
	ctx := context.Background()
	assignedJob := newAssignedJob(t, kernel.NewUUID())
	acting := testActor(t, actor.Translator)
	cmd, err := commands.NewStartJobCommand(assignedJob.ID(), acting)
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

	handler := commands.NewStartJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	jobRepo.AssertNotCalled(t, "UpdateGuarded", mock.Anything, mock.Anything, mock.Anything)
}

func TestStartJobCommandHandler_Handle_OpenJobCannotStart(t *testing.T) {
	ctx := context.Background()
	openJob := newOpenJob(t)
	acting := testActor(t, actor.Admin)
	cmd, err := commands.NewStartJobCommand(openJob.ID(), acting)
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

	handler := commands.NewStartJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, job.ErrInvalidTransition)
}
