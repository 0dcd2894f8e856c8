package commands

import (
	"context"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// CancelJobCommandHandler handles cancellation across the three caller roles.
//
// Customers cancel their own jobs: before assignment the booking is simply
// withdrawn, afterwards the record states a customer cancellation. The
// assigned translator may hand back its own job, which reopens nothing by
// itself but frees the booking for admin action. Admins cancel any
// non-terminal job. Cancelled jobs keep their history; nothing is deleted.
type CancelJobCommandHandler struct {
	uowFactory JobUoWFactory
	planner    services.AudiencePlanner
	notifier   Notifier
}

// NewCancelJobCommandHandler creates a handler for cancellation operations.
func NewCancelJobCommandHandler(
	uowFactory JobUoWFactory,
	planner services.AudiencePlanner,
	notifier Notifier,
) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
// The translator binding is captured before the transition clears it, so the
// dismissed translator is still notified after the commit.
func (h *CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) (TransitionResult, error) {
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
	cancelledJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return TransitionResult{}, err
	}

	reason, err := h.authorize(cmd.Actor(), cancelledJob)
	if err != nil {
		return TransitionResult{}, err
	}

	expected := cancelledJob.Status()
	previousTranslator := cancelledJob.Translator()

	if err = cancelledJob.Cancel(reason); err != nil {
		return TransitionResult{}, err
	}

	if err = jobRepo.UpdateGuarded(ctx, cancelledJob, expected); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	event, err := h.planner.PlanEvent(cancelledJob, notification.JobCancelled, previousTranslator != nil)
	if err != nil {
		return TransitionResult{Job: cancelledJob, NotificationFailures: planFailure(err)}, nil
	}

	failures := h.notifier.Dispatch(ctx, event, cancelledJob, previousTranslator)
	return TransitionResult{Job: cancelledJob, NotificationFailures: failures}, nil
}

// authorize resolves the role-specific cancellation rules and the reason the
// record will carry.
func (h *CancelJobCommandHandler) authorize(acting actor.Actor, cancelledJob *job.Job) (job.CancelReason, error) {
	switch {
	case acting.Role().IsAdmin():
		return job.ReasonCancelledByAdmin, nil

	case acting.Role() == actor.Customer:
		if !acting.ID().IsEqual(cancelledJob.CustomerID()) {
			return job.ReasonNone, errs.NewUnauthorizedError(acting.ID().String(), "cancel job")
		}
		if cancelledJob.Status() == job.Open {
			return job.ReasonWithdrawn, nil
		}
		return job.ReasonCancelledByCustomer, nil

	case acting.Role() == actor.Translator:
		assigned := cancelledJob.Translator()
		if assigned == nil || !assigned.IsEqual(acting.ID()) {
			return job.ReasonNone, errs.NewUnauthorizedError(acting.ID().String(), "cancel job")
		}
		return job.ReasonCancelledByTranslator, nil

	default:
		return job.ReasonNone, errs.NewUnauthorizedError(acting.ID().String(), "cancel job")
	}
}
