package services

import (
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/notification"
)

// AudiencePlanner is a domain service that decides which recipient groups a
// lifecycle transition must notify. It encodes the fan-out policy in one
// place so command handlers never hardcode audiences.
//
// Fan-out policy:
//   - JobCreated / JobReopened: eligible candidate translators
//   - JobAccepted: the customer, plus the remaining candidates as a
//     "job no longer available" notice
//   - JobCancelled: the customer and, if one was bound, the translator
//   - JobCompleted: the customer
//   - JobExpired: the customer
//   - UpcomingSession: the customer and the assigned translator
type AudiencePlanner struct{}

// NewAudiencePlanner creates a new AudiencePlanner instance.
func NewAudiencePlanner() AudiencePlanner {
	return AudiencePlanner{}
}

// PlanEvent builds the notification event for a transition of the given job.
// hadTranslator reports whether a translator was bound before the transition;
// cancellation clears the binding on the aggregate, so the caller captures
// the binding up front.
func (p AudiencePlanner) PlanEvent(
	j *job.Job,
	kind notification.EventKind,
	hadTranslator bool,
) (notification.Event, error) {
	if err := j.Validate(); err != nil {
		return notification.Event{}, err
	}

	return notification.NewEvent(j.ID(), kind, p.audiencesFor(kind, hadTranslator)...)
}

func (p AudiencePlanner) audiencesFor(kind notification.EventKind, hadTranslator bool) []notification.Audience {
	switch kind {
	case notification.JobCreated, notification.JobReopened:
		return []notification.Audience{notification.AudienceCandidateTranslators}
	case notification.JobAccepted:
		return []notification.Audience{
			notification.AudienceCustomer,
			notification.AudienceCandidateTranslators,
		}
	case notification.JobCancelled:
		if hadTranslator {
			return []notification.Audience{
				notification.AudienceCustomer,
				notification.AudienceAssignedTranslator,
			}
		}
		return []notification.Audience{notification.AudienceCustomer}
	case notification.JobCompleted, notification.JobExpired:
		return []notification.Audience{notification.AudienceCustomer}
	case notification.UpcomingSession:
		return []notification.Audience{
			notification.AudienceCustomer,
			notification.AudienceAssignedTranslator,
		}
	default:
		return nil
	}
}
