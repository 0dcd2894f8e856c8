package commands

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// CreateJobCommandHandler handles the business logic for opening a new job.
// Customers create their own jobs; admins may create jobs on behalf of any
// customer. After the commit, eligible translators are notified that a new
// job is available.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
	planner    services.AudiencePlanner
	notifier   Notifier
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
func NewCreateJobCommandHandler(
	uowFactory JobUoWFactory,
	planner services.AudiencePlanner,
	notifier Notifier,
) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes the job creation command.
// Scheduled jobs must start in the future; immediate jobs skip the window
// check. Notification failures are returned in the result, never as an error.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	if err := h.authorize(cmd); err != nil {
		return TransitionResult{}, err
	}

	now := time.Now()
	details := cmd.Details()
	if !details.Immediate && details.Window.Validate() == nil && details.Window.Start().Before(now) {
		return TransitionResult{}, errs.NewValueIsInvalidErrorWithCause(
			"scheduling window",
			errors.New("window starts in the past"),
		)
	}

	newJob, err := job.NewJob(cmd.JobID(), cmd.CustomerID(), details, now)
	if err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	event, err := h.planner.PlanEvent(newJob, notification.JobCreated, false)
	if err != nil {
		return TransitionResult{Job: newJob, NotificationFailures: planFailure(err)}, nil
	}

	failures := h.notifier.Dispatch(ctx, event, newJob, nil)
	return TransitionResult{Job: newJob, NotificationFailures: failures}, nil
}

func (h *CreateJobCommandHandler) authorize(cmd CreateJobCommand) error {
	acting := cmd.Actor()
	switch {
	case acting.Role().IsAdmin():
		return nil
	case acting.Role() == actor.Customer && acting.ID().IsEqual(cmd.CustomerID()):
		return nil
	default:
		return errs.NewUnauthorizedError(acting.ID().String(), "create job")
	}
}
