package commands

import (
	"context"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// ReopenJobCommandHandler puts a cancelled or expired job back on the market.
// The booking customer or an admin may reopen; the previous translator
// binding and cancel reason are cleared, and eligible translators are
// notified that the job is available again.
type ReopenJobCommandHandler struct {
	uowFactory JobUoWFactory
	planner    services.AudiencePlanner
	notifier   Notifier
}

// NewReopenJobCommandHandler creates a handler for reopen operations.
func NewReopenJobCommandHandler(
	uowFactory JobUoWFactory,
	planner services.AudiencePlanner,
	notifier Notifier,
) ReopenJobCommandHandler {
	return ReopenJobCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes the reopen command.
func (h *ReopenJobCommandHandler) Handle(ctx context.Context, cmd ReopenJobCommand) (TransitionResult, error) {
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
	reopenedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return TransitionResult{}, err
	}

	acting := cmd.Actor()
	isCustomer := acting.Role() == actor.Customer && acting.ID().IsEqual(reopenedJob.CustomerID())
	if !acting.Role().IsAdmin() && !isCustomer {
		return TransitionResult{}, errs.NewUnauthorizedError(acting.ID().String(), "reopen job")
	}

	expected := reopenedJob.Status()
	if err = reopenedJob.Reopen(); err != nil {
		return TransitionResult{}, err
	}

	if err = jobRepo.UpdateGuarded(ctx, reopenedJob, expected); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	event, err := h.planner.PlanEvent(reopenedJob, notification.JobReopened, false)
	if err != nil {
		return TransitionResult{Job: reopenedJob, NotificationFailures: planFailure(err)}, nil
	}

	failures := h.notifier.Dispatch(ctx, event, reopenedJob, nil)
	return TransitionResult{Job: reopenedJob, NotificationFailures: failures}, nil
}
