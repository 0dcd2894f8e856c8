// Package notification defines the ephemeral events emitted by job lifecycle
// transitions. Events are produced by command handlers after a transition
// commits and consumed by the notification dispatcher; they are never
// persisted.
package notification

import (
	"fmt"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// EventKind names the lifecycle transition that triggered a notification.
type EventKind int

const (
	// KindUnknown represents an invalid or undefined event kind.
	KindUnknown EventKind = iota

	// JobCreated signals a new Open job to eligible translators.
	JobCreated

	// JobAccepted signals a successful acceptance to the customer, and a
	// "no longer available" notice to the other candidate translators.
	JobAccepted

	// JobCancelled signals a cancellation to the affected parties.
	JobCancelled

	// JobCompleted signals a finished session to the customer.
	JobCompleted

	// JobReopened signals a reopened job to eligible translators.
	JobReopened

	// JobExpired signals that an Open job passed its window unaccepted.
	JobExpired

	// UpcomingSession reminds customer and translator of a session about
	// to start.
	UpcomingSession
)

func getEventKindStrings() map[EventKind]string {
	return map[EventKind]string{
		KindUnknown:     "Unknown",
		JobCreated:      "JobCreated",
		JobAccepted:     "JobAccepted",
		JobCancelled:    "JobCancelled",
		JobCompleted:    "JobCompleted",
		JobReopened:     "JobReopened",
		JobExpired:      "JobExpired",
		UpcomingSession: "UpcomingSession",
	}
}

// String returns the human-readable name of the event kind.
func (k EventKind) String() string {
	if str, ok := getEventKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the kind is one of the defined kinds.
func (k EventKind) Validate() error {
	if _, ok := getEventKindStrings()[k]; !ok || k == KindUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"event kind",
			fmt.Errorf("%d is not a valid event kind", k),
		)
	}
	return nil
}

// Audience is an abstract recipient group of an event. The dispatcher
// resolves audiences to concrete recipients at delivery time.
type Audience int

const (
	// AudienceUnknown represents an invalid or undefined audience.
	AudienceUnknown Audience = iota

	// AudienceCustomer targets the booking customer.
	AudienceCustomer

	// AudienceAssignedTranslator targets the translator bound to the job.
	AudienceAssignedTranslator

	// AudienceCandidateTranslators targets every translator eligible for
	// the job that is not bound to it.
	AudienceCandidateTranslators
)

func getAudienceStrings() map[Audience]string {
	return map[Audience]string{
		AudienceUnknown:              "Unknown",
		AudienceCustomer:             "Customer",
		AudienceAssignedTranslator:   "AssignedTranslator",
		AudienceCandidateTranslators: "CandidateTranslators",
	}
}

// String returns the human-readable name of the audience.
func (a Audience) String() string {
	if str, ok := getAudienceStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the audience is one of the defined audiences.
func (a Audience) Validate() error {
	if _, ok := getAudienceStrings()[a]; !ok || a == AudienceUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"audience",
			fmt.Errorf("%d is not a valid audience", a),
		)
	}
	return nil
}

// Event is the ephemeral record handed from a committed transition to the
// dispatcher: which job, what happened, and who should hear about it.
type Event struct {
	jobID     kernel.UUID
	kind      EventKind
	audiences []Audience
}

// NewEvent creates a validated Event.
// At least one audience is required.
func NewEvent(jobID kernel.UUID, kind EventKind, audiences ...Audience) (Event, error) {
	if err := jobID.Validate(); err != nil {
		return Event{}, err
	}
	if err := kind.Validate(); err != nil {
		return Event{}, err
	}
	if len(audiences) == 0 {
		return Event{}, errs.NewValueIsRequiredError("audiences")
	}
	for _, audience := range audiences {
		if err := audience.Validate(); err != nil {
			return Event{}, err
		}
	}

	copied := make([]Audience, len(audiences))
	copy(copied, audiences)
	return Event{jobID: jobID, kind: kind, audiences: copied}, nil
}

// JobID returns the job the event belongs to.
func (e Event) JobID() kernel.UUID {
	return e.jobID
}

// Kind returns the lifecycle transition that produced the event.
func (e Event) Kind() EventKind {
	return e.kind
}

// Audiences returns the recipient groups of the event.
func (e Event) Audiences() []Audience {
	audiences := make([]Audience, len(e.audiences))
	copy(audiences, e.audiences)
	return audiences
}
