package commands

import (
	"context"

	"booking/internal/pkg/errs"
)

// ResendSMSCommandHandler resends the session SMS to the assigned translator.
// Admin only. A job without a translator, a translator without a phone number
// and a provider rejection all surface as delivery failure data with a nil
// error, matching the rest of the notification contract.
type ResendSMSCommandHandler struct {
	uowFactory JobUoWFactory
	notifier   Notifier
}

// NewResendSMSCommandHandler creates a handler for SMS resend operations.
func NewResendSMSCommandHandler(uowFactory JobUoWFactory, notifier Notifier) ResendSMSCommandHandler {
	return ResendSMSCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the SMS resend request.
func (h *ResendSMSCommandHandler) Handle(ctx context.Context, cmd ResendSMSCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	acting := cmd.Actor()
	if !acting.Role().IsAdmin() {
		return TransitionResult{}, errs.NewUnauthorizedError(acting.ID().String(), "resend sms")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	targetJob, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	failures := h.notifier.DispatchSMSToAssigned(ctx, targetJob)
	return TransitionResult{Job: targetJob, NotificationFailures: failures}, nil
}
