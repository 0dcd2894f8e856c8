package commands

import (
	"context"

	"booking/internal/pkg/errs"
)

// UpdateJobCommandHandler edits the booking details of a job that has not
// started yet. Only the booking customer or an admin may edit a job; details
// freeze once the session is in progress or the job is closed.
// Editing has no notification fan-out.
type UpdateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewUpdateJobCommandHandler creates a handler for booking detail edits.
func NewUpdateJobCommandHandler(uowFactory JobUoWFactory) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detail edit command.
// The write is status-guarded so an edit cannot overwrite a concurrent
// acceptance or cancellation.
func (h *UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) (TransitionResult, error) {
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
	editedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return TransitionResult{}, err
	}

	acting := cmd.Actor()
	if !acting.Role().IsAdmin() && !acting.ID().IsEqual(editedJob.CustomerID()) {
		return TransitionResult{}, errs.NewUnauthorizedError(acting.ID().String(), "update job")
	}

	expected := editedJob.Status()
	if err = editedJob.UpdateDetails(cmd.Details()); err != nil {
		return TransitionResult{}, err
	}

	if err = jobRepo.UpdateGuarded(ctx, editedJob, expected); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{Job: editedJob}, nil
}
