package commands

import (
	"context"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// EndJobCommandHandler completes an in-progress session.
// The customer, the assigned translator and admins may end a session. The
// completion commits first; the customer notification runs afterwards and its
// failure never rolls the completion back.
type EndJobCommandHandler struct {
	uowFactory JobUoWFactory
	planner    services.AudiencePlanner
	notifier   Notifier
}

// NewEndJobCommandHandler creates a handler for session completion operations.
func NewEndJobCommandHandler(
	uowFactory JobUoWFactory,
	planner services.AudiencePlanner,
	notifier Notifier,
) EndJobCommandHandler {
	return EndJobCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
func (h *EndJobCommandHandler) Handle(ctx context.Context, cmd EndJobCommand) (TransitionResult, error) {
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
	endedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return TransitionResult{}, err
	}

	acting := cmd.Actor()
	isCustomer := acting.Role() == actor.Customer && acting.ID().IsEqual(endedJob.CustomerID())
	isAssigned := acting.Role() == actor.Translator &&
		endedJob.Translator() != nil &&
		endedJob.Translator().IsEqual(acting.ID())
	if !acting.Role().IsAdmin() && !isCustomer && !isAssigned {
		return TransitionResult{}, errs.NewUnauthorizedError(acting.ID().String(), "end job")
	}

	expected := endedJob.Status()
	translatorID := endedJob.Translator()

	if err = endedJob.Complete(cmd.SessionTime()); err != nil {
		return TransitionResult{}, err
	}

	if err = jobRepo.UpdateGuarded(ctx, endedJob, expected); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	event, err := h.planner.PlanEvent(endedJob, notification.JobCompleted, translatorID != nil)
	if err != nil {
		return TransitionResult{Job: endedJob, NotificationFailures: planFailure(err)}, nil
	}

	failures := h.notifier.Dispatch(ctx, event, endedJob, translatorID)
	return TransitionResult{Job: endedJob, NotificationFailures: failures}, nil
}
