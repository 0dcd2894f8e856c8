package commands

import (
	"context"

	"booking/internal/core/domain/model/actor"
	"booking/internal/pkg/errs"
)

// StartJobCommandHandler moves an assigned job to in-progress when the
// session begins. Only the assigned translator or an admin may start a job.
// Starting has no notification fan-out.
type StartJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewStartJobCommandHandler creates a handler for session start operations.
func NewStartJobCommandHandler(uowFactory JobUoWFactory) StartJobCommandHandler {
	return StartJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the session start command.
// The write is status-guarded so a concurrent cancellation cannot be
// overwritten by a late start.
func (h *StartJobCommandHandler) Handle(ctx context.Context, cmd StartJobCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	startedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return TransitionResult{}, err
	}

	acting := cmd.Actor()
	isAssigned := acting.Role() == actor.Translator &&
		startedJob.Translator() != nil &&
		startedJob.Translator().IsEqual(acting.ID())
	if !acting.Role().IsAdmin() && !isAssigned {
		return TransitionResult{}, errs.NewUnauthorizedError(acting.ID().String(), "start job")
	}

	expected := startedJob.Status()
	if err = startedJob.Start(); err != nil {
		return TransitionResult{}, err
	}

	if err = jobRepo.UpdateGuarded(ctx, startedJob, expected); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{Job: startedJob}, nil
}
