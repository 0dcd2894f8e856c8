package queries

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetUserJobsQueryIsNotConstructed = errors.New(
	"GetUserJobsQuery must be created via NewGetUserJobsQuery constructor",
)

// GetUserJobsQuery retrieves the jobs a user participates in, either as the
// booking customer or as the assigned translator. Callers may only list their
// own jobs; admins may list anyone's.
type GetUserJobsQuery struct {
	userID kernel.UUID
	actor  actor.Actor

	guard guard.ConstructorGuard
}

// NewGetUserJobsQuery creates a query for one user's jobs.
func NewGetUserJobsQuery(userID kernel.UUID, acting actor.Actor) (GetUserJobsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserJobsQuery{}, err
	}
	if err := acting.Validate(); err != nil {
		return GetUserJobsQuery{}, err
	}

	return GetUserJobsQuery{
		userID: userID,
		actor:  acting,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserJobsQueryIsNotConstructed)
}

// UserID returns the user whose jobs are listed.
func (q GetUserJobsQuery) UserID() kernel.UUID {
	return q.userID
}

// Actor returns the caller the query runs on behalf of.
func (q GetUserJobsQuery) Actor() actor.Actor {
	return q.actor
}
