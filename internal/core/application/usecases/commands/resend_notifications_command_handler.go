package commands

import (
	"context"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// ResendNotificationsCommandHandler replays the fan-out matching a job's
// current state. Admin only. The job itself is untouched; delivery failures
// come back as data exactly as they do on first dispatch.
type ResendNotificationsCommandHandler struct {
	uowFactory JobUoWFactory
	planner    services.AudiencePlanner
	notifier   Notifier
}

// NewResendNotificationsCommandHandler creates a handler for notification replays.
func NewResendNotificationsCommandHandler(
	uowFactory JobUoWFactory,
	planner services.AudiencePlanner,
	notifier Notifier,
) ResendNotificationsCommandHandler {
	return ResendNotificationsCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes the replay request.
func (h *ResendNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd ResendNotificationsCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	acting := cmd.Actor()
	if !acting.Role().IsAdmin() {
		return TransitionResult{}, errs.NewUnauthorizedError(acting.ID().String(), "resend notifications")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	replayedJob, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	kind := eventKindForStatus(replayedJob.Status())
	hadTranslator := replayedJob.Translator() != nil

	event, err := h.planner.PlanEvent(replayedJob, kind, hadTranslator)
	if err != nil {
		return TransitionResult{Job: replayedJob, NotificationFailures: planFailure(err)}, nil
	}

	failures := h.notifier.Dispatch(ctx, event, replayedJob, replayedJob.Translator())
	return TransitionResult{Job: replayedJob, NotificationFailures: failures}, nil
}

// eventKindForStatus maps a job's current status to the event its audience
// last should have received.
func eventKindForStatus(status job.Status) notification.EventKind {
	switch status {
	case job.Assigned, job.InProgress:
		return notification.JobAccepted
	case job.Completed:
		return notification.JobCompleted
	case job.Cancelled:
		return notification.JobCancelled
	case job.Expired:
		return notification.JobExpired
	default:
		return notification.JobCreated
	}
}
