package queries

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery retrieves a single job by its identifier. Only the booking
// customer, the assigned translator and admins may read a job.
type GetJobQuery struct {
	jobID kernel.UUID
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetJobQuery creates a query for one job.
func NewGetJobQuery(jobID kernel.UUID, acting actor.Actor) (GetJobQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobQuery{}, err
	}
	if err := acting.Validate(); err != nil {
		return GetJobQuery{}, err
	}

	return GetJobQuery{
		jobID: jobID,
		actor: acting,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

// JobID returns the requested job's identifier.
func (q GetJobQuery) JobID() kernel.UUID {
	return q.jobID
}

// Actor returns the caller the query runs on behalf of.
func (q GetJobQuery) Actor() actor.Actor {
	return q.actor
}
