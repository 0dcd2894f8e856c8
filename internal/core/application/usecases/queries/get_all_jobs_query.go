package queries

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/pkg/guard"
)

var ErrGetAllJobsQueryIsNotConstructed = errors.New(
	"GetAllJobsQuery must be created via NewGetAllJobsQuery constructor",
)

// GetAllJobsQuery retrieves every job in the system for the admin overview.
type GetAllJobsQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetAllJobsQuery creates a query over all jobs.
func NewGetAllJobsQuery(acting actor.Actor) (GetAllJobsQuery, error) {
	if err := acting.Validate(); err != nil {
		return GetAllJobsQuery{}, err
	}

	return GetAllJobsQuery{
		actor: acting,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllJobsQueryIsNotConstructed)
}

// Actor returns the caller the query runs on behalf of.
func (q GetAllJobsQuery) Actor() actor.Actor {
	return q.actor
}
