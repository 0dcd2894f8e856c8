package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
)

// Recipient is a concrete delivery target resolved from an abstract audience.
// Empty Phone or PushToken means the channel is unavailable for the user.
type Recipient struct {
	UserID    kernel.UUID
	Name      string
	Phone     string
	PushToken string
}

// Message is the channel-agnostic notification content. The transport
// provider formats the final payload; the core only supplies text and the
// job reference.
type Message struct {
	JobID kernel.UUID
	Kind  string
	Title string
	Body  string
}

// NotificationGateway abstracts the push and SMS transport providers.
// Both calls may fail independently; a delivery error is data for the
// dispatcher, never a reason to unwind a committed transition. Providers own
// their call timeouts.
type NotificationGateway interface {
	SendPush(ctx context.Context, recipient Recipient, message Message) error
	SendSMS(ctx context.Context, recipient Recipient, message Message) error
}

// RecipientDirectory resolves audience members to concrete recipients with
// their delivery endpoints.
type RecipientDirectory interface {
	// CustomerRecipient resolves the booking customer's contact endpoints.
	CustomerRecipient(ctx context.Context, customerID kernel.UUID) (Recipient, error)

	// TranslatorRecipient resolves a translator's contact endpoints.
	TranslatorRecipient(ctx context.Context, translatorID kernel.UUID) (Recipient, error)

	// CandidateTranslatorRecipients resolves every translator eligible for
	// the job, excluding the one bound to it.
	CandidateTranslatorRecipients(ctx context.Context, jobID kernel.UUID) ([]Recipient, error)
}
