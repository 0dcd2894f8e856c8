package commands

import (
	"context"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// CustomerNotCallCommandHandler closes a job as a customer no-show.
// Only the assigned translator or an admin may report a no-show. The job is
// cancelled with the no-show reason; the record is kept, never deleted.
type CustomerNotCallCommandHandler struct {
	uowFactory JobUoWFactory
	planner    services.AudiencePlanner
	notifier   Notifier
}

// NewCustomerNotCallCommandHandler creates a handler for no-show reports.
func NewCustomerNotCallCommandHandler(
	uowFactory JobUoWFactory,
	planner services.AudiencePlanner,
	notifier Notifier,
) CustomerNotCallCommandHandler {
	return CustomerNotCallCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes the no-show report.
func (h *CustomerNotCallCommandHandler) Handle(ctx context.Context, cmd CustomerNotCallCommand) (TransitionResult, error) {
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
	closedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return TransitionResult{}, err
	}

	acting := cmd.Actor()
	isAssigned := acting.Role() == actor.Translator &&
		closedJob.Translator() != nil &&
		closedJob.Translator().IsEqual(acting.ID())
	if !acting.Role().IsAdmin() && !isAssigned {
		return TransitionResult{}, errs.NewUnauthorizedError(acting.ID().String(), "report customer no-show")
	}

	expected := closedJob.Status()
	previousTranslator := closedJob.Translator()

	if err = closedJob.MarkNoShow(); err != nil {
		return TransitionResult{}, err
	}

	if err = jobRepo.UpdateGuarded(ctx, closedJob, expected); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	event, err := h.planner.PlanEvent(closedJob, notification.JobCancelled, previousTranslator != nil)
	if err != nil {
		return TransitionResult{Job: closedJob, NotificationFailures: planFailure(err)}, nil
	}

	failures := h.notifier.Dispatch(ctx, event, closedJob, previousTranslator)
	return TransitionResult{Job: closedJob, NotificationFailures: failures}, nil
}
