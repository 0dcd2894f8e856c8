package commands

import (
	"context"

	"booking/internal/core/application/notifications"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/domain/services"
)

// RemindUpcomingSessionsResult reports the outcome of one reminder sweep.
type RemindUpcomingSessionsResult struct {
	RemindedJobs         []*job.Job
	NotificationFailures []notifications.DeliveryFailure
}

// RemindUpcomingSessionsCommandHandler notifies the customer and the assigned
// translator of sessions starting soon. Reminders change no state; the sweep
// is a read followed by fan-out.
type RemindUpcomingSessionsCommandHandler struct {
	uowFactory JobUoWFactory
	planner    services.AudiencePlanner
	notifier   Notifier
}

// NewRemindUpcomingSessionsCommandHandler creates a handler for reminder sweeps.
func NewRemindUpcomingSessionsCommandHandler(
	uowFactory JobUoWFactory,
	planner services.AudiencePlanner,
	notifier Notifier,
) RemindUpcomingSessionsCommandHandler {
	return RemindUpcomingSessionsCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes one reminder sweep.
func (h *RemindUpcomingSessionsCommandHandler) Handle(
	ctx context.Context,
	cmd RemindUpcomingSessionsCommand,
) (RemindUpcomingSessionsResult, error) {
	if err := cmd.Validate(); err != nil {
		return RemindUpcomingSessionsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RemindUpcomingSessionsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	upcomingJobs, err := uow.JobRepository().GetAssignedStartingBetween(ctx, cmd.From(), cmd.To())
	if err != nil {
		return RemindUpcomingSessionsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RemindUpcomingSessionsResult{}, err
	}

	var failures []notifications.DeliveryFailure
	for _, upcomingJob := range upcomingJobs {
		event, planErr := h.planner.PlanEvent(upcomingJob, notification.UpcomingSession, true)
		if planErr != nil {
			failures = append(failures, planFailure(planErr)...)
			continue
		}

		failures = append(failures, h.notifier.Dispatch(ctx, event, upcomingJob, upcomingJob.Translator())...)
	}

	return RemindUpcomingSessionsResult{RemindedJobs: upcomingJobs, NotificationFailures: failures}, nil
}
