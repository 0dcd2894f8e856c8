package commands

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// AcceptJobCommandHandler handles the single-winner acceptance race.
//
// The domain transition only permits Open -> Assigned, and the persistence
// write is guarded by a status compare-and-set. When two translators race for
// the same job, exactly one guarded update writes a row; the loser observes a
// status conflict and receives an "already taken" result with a nil error,
// because losing the race is an expected outcome of the protocol.
type AcceptJobCommandHandler struct {
	uowFactory JobUoWFactory
	planner    services.AudiencePlanner
	notifier   Notifier
}

// NewAcceptJobCommandHandler creates a handler for job acceptance operations.
func NewAcceptJobCommandHandler(
	uowFactory JobUoWFactory,
	planner services.AudiencePlanner,
	notifier Notifier,
) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes the acceptance attempt.
// Only translators may accept. On success the customer is notified and the
// remaining candidates receive a no-longer-available notice; delivery failures
// ride along in the result.
func (h *AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) (AcceptJobResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptJobResult{}, err
	}

	acting := cmd.Actor()
	if acting.Role() != actor.Translator {
		return AcceptJobResult{}, errs.NewUnauthorizedError(acting.ID().String(), "accept job")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptJobResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	acceptedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return AcceptJobResult{}, err
	}

	expected := acceptedJob.Status()
	if err = acceptedJob.Accept(acting.ID()); err != nil {
		if errors.Is(err, job.ErrInvalidTransition) {
			return AcceptJobResult{Reason: "job is no longer open"}, nil
		}
		return AcceptJobResult{}, err
	}

	if err = jobRepo.UpdateGuarded(ctx, acceptedJob, expected); err != nil {
		if errors.Is(err, errs.ErrStatusConflict) {
			// Another translator committed first.
			return AcceptJobResult{Reason: "job was taken by another translator"}, nil
		}
		return AcceptJobResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptJobResult{}, err
	}

	translatorID := acting.ID()
	event, err := h.planner.PlanEvent(acceptedJob, notification.JobAccepted, true)
	if err != nil {
		return AcceptJobResult{
			Accepted:             true,
			Job:                  acceptedJob,
			NotificationFailures: planFailure(err),
		}, nil
	}

	failures := h.notifier.Dispatch(ctx, event, acceptedJob, &translatorID)
	return AcceptJobResult{
		Accepted:             true,
		Job:                  acceptedJob,
		NotificationFailures: failures,
	}, nil
}
