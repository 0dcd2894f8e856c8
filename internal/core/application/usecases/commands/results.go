package commands

import (
	"booking/internal/core/application/notifications"
	"booking/internal/core/domain/model/job"
)

// TransitionResult is the outcome of a committed lifecycle transition.
// NotificationFailures lists deliveries that failed after the commit; the
// transition itself already succeeded when failures are present.
type TransitionResult struct {
	Job                  *job.Job
	NotificationFailures []notifications.DeliveryFailure
}

// AcceptJobResult is the outcome of an acceptance attempt. Losing the
// acceptance race is an expected outcome, not an error: Accepted is false and
// Reason explains why, while the handler returns a nil error.
type AcceptJobResult struct {
	Accepted             bool
	Reason               string
	Job                  *job.Job
	NotificationFailures []notifications.DeliveryFailure
}

func planFailure(err error) []notifications.DeliveryFailure {
	return []notifications.DeliveryFailure{{
		Channel: "plan",
		Reason:  err.Error(),
	}}
}
