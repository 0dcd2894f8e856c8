package queries

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetPotentialJobsQueryIsNotConstructed = errors.New(
	"GetPotentialJobsQuery must be created via NewGetPotentialJobsQuery constructor",
)

// GetPotentialJobsQuery retrieves the open jobs a translator is eligible to
// accept: the language pair must be in the translator's profile, and on-site
// jobs must be in the translator's city. Phone jobs carry no city and match
// regardless of location.
type GetPotentialJobsQuery struct {
	translatorID kernel.UUID
	actor        actor.Actor

	guard guard.ConstructorGuard
}

// NewGetPotentialJobsQuery creates a query for a translator's potential jobs.
func NewGetPotentialJobsQuery(translatorID kernel.UUID, acting actor.Actor) (GetPotentialJobsQuery, error) {
	if err := translatorID.Validate(); err != nil {
		return GetPotentialJobsQuery{}, err
	}
	if err := acting.Validate(); err != nil {
		return GetPotentialJobsQuery{}, err
	}

	return GetPotentialJobsQuery{
		translatorID: translatorID,
		actor:        acting,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPotentialJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetPotentialJobsQueryIsNotConstructed)
}

// TranslatorID returns the translator the listing is computed for.
func (q GetPotentialJobsQuery) TranslatorID() kernel.UUID {
	return q.translatorID
}

// Actor returns the caller the query runs on behalf of.
func (q GetPotentialJobsQuery) Actor() actor.Actor {
	return q.actor
}
