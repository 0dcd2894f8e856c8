// Package notifications orchestrates the delivery of lifecycle events to
// concrete recipients over the push and SMS channels.
//
// Dispatch is best-effort and isolated: a failure delivering to one recipient
// or one channel never aborts delivery to the others, never rolls back the
// already-committed transition, and is surfaced as structured data in the
// operation response instead of an error.
package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/ports"
)

// DeliveryFailure reports a single failed delivery attempt.
// Failures are data at this boundary, not control flow.
type DeliveryFailure struct {
	Recipient kernel.UUID
	Channel   string
	Reason    string
}

// Dispatcher resolves event audiences to recipients and fans the message out
// over the available channels of each recipient.
type Dispatcher struct {
	directory ports.RecipientDirectory
	gateway   ports.NotificationGateway
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher over the given directory and gateway.
func NewDispatcher(
	directory ports.RecipientDirectory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		directory: directory,
		gateway:   gateway,
		logger:    logger.With("component", "notification_dispatcher"),
	}
}

// Dispatch delivers the event to every resolved recipient.
//
// translatorID is the translator to address for AudienceAssignedTranslator.
// Cancellation clears the binding on the aggregate before dispatch runs, so
// callers pass the pre-transition binding explicitly.
//
// Dispatch never returns an error: every problem is collected as a
// DeliveryFailure and logged with the job id.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	event notification.Event,
	j *job.Job,
	translatorID *kernel.UUID,
) []DeliveryFailure {
	var failures []DeliveryFailure

	for _, audience := range event.Audiences() {
		message := d.buildMessage(event, j, audience)

		recipients, err := d.resolve(ctx, audience, j, translatorID)
		if err != nil {
			failures = append(failures, DeliveryFailure{
				Channel: "resolve",
				Reason:  fmt.Sprintf("cannot resolve %s: %s", audience, err),
			})
			d.logger.WarnContext(ctx, "Audience resolution failed",
				"job_id", event.JobID().String(),
				"event", event.Kind().String(),
				"audience", audience.String(),
				"error", err)
			continue
		}

		for _, recipient := range recipients {
			failures = append(failures, d.deliver(ctx, recipient, message)...)
		}
	}

	return failures
}

// DispatchSMSToAssigned sends the SMS channel only, to the translator bound
// to the job. Used by the resend-SMS admin operation; the delivery outcome is
// returned as data so the caller can surface why delivery failed.
func (d *Dispatcher) DispatchSMSToAssigned(ctx context.Context, j *job.Job) []DeliveryFailure {
	translatorID := j.Translator()
	if translatorID == nil {
		return []DeliveryFailure{{
			Channel: "sms",
			Reason:  "job has no assigned translator",
		}}
	}

	recipient, err := d.directory.TranslatorRecipient(ctx, *translatorID)
	if err != nil {
		return []DeliveryFailure{{
			Recipient: *translatorID,
			Channel:   "sms",
			Reason:    err.Error(),
		}}
	}

	message := ports.Message{
		JobID: j.ID(),
		Kind:  notification.JobAccepted.String(),
		Title: "Session details",
		Body: fmt.Sprintf("You are booked for a %s to %s session. Duration: %s.",
			j.LanguageFrom(), j.LanguageTo(), j.Duration()),
	}

	if recipient.Phone == "" {
		return []DeliveryFailure{{
			Recipient: recipient.UserID,
			Channel:   "sms",
			Reason:    "recipient has no phone number",
		}}
	}

	if err := d.gateway.SendSMS(ctx, recipient, message); err != nil {
		d.logger.WarnContext(ctx, "SMS delivery failed",
			"job_id", j.ID().String(),
			"recipient", recipient.UserID.String(),
			"error", err)
		return []DeliveryFailure{{
			Recipient: recipient.UserID,
			Channel:   "sms",
			Reason:    err.Error(),
		}}
	}

	return nil
}

func (d *Dispatcher) resolve(
	ctx context.Context,
	audience notification.Audience,
	j *job.Job,
	translatorID *kernel.UUID,
) ([]ports.Recipient, error) {
	switch audience {
	case notification.AudienceCustomer:
		recipient, err := d.directory.CustomerRecipient(ctx, j.CustomerID())
		if err != nil {
			return nil, err
		}
		return []ports.Recipient{recipient}, nil

	case notification.AudienceAssignedTranslator:
		if translatorID == nil {
			return nil, fmt.Errorf("no translator bound to job %s", j.ID())
		}
		recipient, err := d.directory.TranslatorRecipient(ctx, *translatorID)
		if err != nil {
			return nil, err
		}
		return []ports.Recipient{recipient}, nil

	case notification.AudienceCandidateTranslators:
		return d.directory.CandidateTranslatorRecipients(ctx, j.ID())

	default:
		return nil, fmt.Errorf("unknown audience %d", audience)
	}
}

// deliver sends the message over every channel the recipient has an endpoint
// for. Each channel fails independently.
func (d *Dispatcher) deliver(
	ctx context.Context,
	recipient ports.Recipient,
	message ports.Message,
) []DeliveryFailure {
	var failures []DeliveryFailure

	delivered := false

	if recipient.PushToken != "" {
		if err := d.gateway.SendPush(ctx, recipient, message); err != nil {
			failures = append(failures, DeliveryFailure{
				Recipient: recipient.UserID,
				Channel:   "push",
				Reason:    err.Error(),
			})
			d.logger.WarnContext(ctx, "Push delivery failed",
				"job_id", message.JobID.String(),
				"recipient", recipient.UserID.String(),
				"error", err)
		} else {
			delivered = true
		}
	}

	if recipient.Phone != "" {
		if err := d.gateway.SendSMS(ctx, recipient, message); err != nil {
			failures = append(failures, DeliveryFailure{
				Recipient: recipient.UserID,
				Channel:   "sms",
				Reason:    err.Error(),
			})
			d.logger.WarnContext(ctx, "SMS delivery failed",
				"job_id", message.JobID.String(),
				"recipient", recipient.UserID.String(),
				"error", err)
		} else {
			delivered = true
		}
	}

	if !delivered && len(failures) == 0 {
		failures = append(failures, DeliveryFailure{
			Recipient: recipient.UserID,
			Channel:   "none",
			Reason:    "recipient has no delivery endpoints",
		})
	}

	return failures
}

// buildMessage renders the event for one audience. Most events read the same
// for everyone; acceptance is the exception, where the customer learns the
// job was taken and the remaining candidates learn it is no longer available.
func (d *Dispatcher) buildMessage(
	event notification.Event,
	j *job.Job,
	audience notification.Audience,
) ports.Message {
	languages := fmt.Sprintf("%s to %s", j.LanguageFrom(), j.LanguageTo())

	var title, body string
	switch event.Kind() {
	case notification.JobCreated:
		title = "New job available"
		body = fmt.Sprintf("A new %s session is available.", languages)
	case notification.JobReopened:
		title = "Job available again"
		body = fmt.Sprintf("A %s session is available again.", languages)
	case notification.JobAccepted:
		if audience == notification.AudienceCandidateTranslators {
			title = "Job no longer available"
			body = fmt.Sprintf("The %s session has been taken by another translator.", languages)
			break
		}
		title = "Job accepted"
		body = fmt.Sprintf("The %s session has been accepted.", languages)
	case notification.JobCancelled:
		title = "Job cancelled"
		body = fmt.Sprintf("The %s session was cancelled (%s).", languages, j.CancelReason())
	case notification.JobCompleted:
		title = "Session completed"
		body = fmt.Sprintf("The %s session is completed.", languages)
	case notification.JobExpired:
		title = "Job expired"
		body = fmt.Sprintf("The %s session expired without acceptance.", languages)
	case notification.UpcomingSession:
		title = "Upcoming session"
		body = fmt.Sprintf("Your %s session starts soon.", languages)
	default:
		title = "Booking update"
		body = fmt.Sprintf("Update for your %s session.", languages)
	}

	return ports.Message{
		JobID: j.ID(),
		Kind:  event.Kind().String(),
		Title: title,
		Body:  body,
	}
}
