package commands

import (
	"context"
	"errors"

	"booking/internal/core/application/notifications"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// ExpireJobsResult reports the outcome of one expiry sweep.
type ExpireJobsResult struct {
	ExpiredJobs          []*job.Job
	NotificationFailures []notifications.DeliveryFailure
}

// ExpireJobsCommandHandler expires open jobs whose window started before the
// deadline. Each expiry is status-guarded: a job accepted between the read
// and the write loses nothing, the guarded update simply finds it non-open
// and the sweep skips it. Customers of expired jobs are notified after the
// commit.
type ExpireJobsCommandHandler struct {
	uowFactory JobUoWFactory
	planner    services.AudiencePlanner
	notifier   Notifier
}

// NewExpireJobsCommandHandler creates a handler for the expiry sweep.
func NewExpireJobsCommandHandler(
	uowFactory JobUoWFactory,
	planner services.AudiencePlanner,
	notifier Notifier,
) ExpireJobsCommandHandler {
	return ExpireJobsCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes one expiry sweep.
func (h *ExpireJobsCommandHandler) Handle(ctx context.Context, cmd ExpireJobsCommand) (ExpireJobsResult, error) {
	if err := cmd.Validate(); err != nil {
		return ExpireJobsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ExpireJobsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	staleJobs, err := jobRepo.GetOpenStartedBefore(ctx, cmd.Deadline())
	if err != nil {
		return ExpireJobsResult{}, err
	}

	var expired []*job.Job
	for _, staleJob := range staleJobs {
		expected := staleJob.Status()
		if err = staleJob.Expire(); err != nil {
			return ExpireJobsResult{}, err
		}

		if err = jobRepo.UpdateGuarded(ctx, staleJob, expected); err != nil {
			if errors.Is(err, errs.ErrStatusConflict) {
				// Accepted while the sweep was running; leave it alone.
				continue
			}
			return ExpireJobsResult{}, err
		}

		expired = append(expired, staleJob)
	}

	if err = uow.Commit(ctx); err != nil {
		return ExpireJobsResult{}, err
	}

	var failures []notifications.DeliveryFailure
	for _, expiredJob := range expired {
		event, planErr := h.planner.PlanEvent(expiredJob, notification.JobExpired, false)
		if planErr != nil {
			failures = append(failures, planFailure(planErr)...)
			continue
		}

		failures = append(failures, h.notifier.Dispatch(ctx, event, expiredJob, nil)...)
	}

	return ExpireJobsResult{ExpiredJobs: expired, NotificationFailures: failures}, nil
}
