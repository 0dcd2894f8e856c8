package queries

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrGetJobHistoryQueryIsNotConstructed = errors.New(
		"GetJobHistoryQuery must be created via NewGetJobHistoryQuery constructor",
	)
	ErrHistoryRangeIsInvalid = errors.New("history range start must precede its end")
)

// GetJobHistoryQuery retrieves a user's closed jobs: completed, cancelled and
// expired bookings. The date range and the status filter are optional; a nil
// bound leaves that side open, an empty status list means all closed states.
type GetJobHistoryQuery struct {
	userID   kernel.UUID
	actor    actor.Actor
	from     *time.Time
	to       *time.Time
	statuses []job.Status

	guard guard.ConstructorGuard
}

// NewGetJobHistoryQuery creates a query over a user's booking history.
func NewGetJobHistoryQuery(
	userID kernel.UUID,
	acting actor.Actor,
	from, to *time.Time,
	statuses []job.Status,
) (GetJobHistoryQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetJobHistoryQuery{}, err
	}
	if err := acting.Validate(); err != nil {
		return GetJobHistoryQuery{}, err
	}
	if from != nil && to != nil && !from.Before(*to) {
		return GetJobHistoryQuery{}, ErrHistoryRangeIsInvalid
	}
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetJobHistoryQuery{}, err
		}
	}

	return GetJobHistoryQuery{
		userID:   userID,
		actor:    acting,
		from:     from,
		to:       to,
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetJobHistoryQueryIsNotConstructed)
}

// UserID returns the user whose history is listed.
func (q GetJobHistoryQuery) UserID() kernel.UUID {
	return q.userID
}

// Actor returns the caller the query runs on behalf of.
func (q GetJobHistoryQuery) Actor() actor.Actor {
	return q.actor
}

// From returns the inclusive lower creation-time bound, or nil.
func (q GetJobHistoryQuery) From() *time.Time {
	return q.from
}

// To returns the exclusive upper creation-time bound, or nil.
func (q GetJobHistoryQuery) To() *time.Time {
	return q.to
}

// Statuses returns the closed states to include. Empty means all of them.
func (q GetJobHistoryQuery) Statuses() []job.Status {
	return q.statuses
}
