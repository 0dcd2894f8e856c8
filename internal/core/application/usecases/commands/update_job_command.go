package commands

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand represents a request to change the booking details of an
// existing job: languages, city, scheduling window and duration.
type UpdateJobCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	actor   actor.Actor
	details job.Details

	guard guard.ConstructorGuard
}

// NewUpdateJobCommand creates a command to edit a job's booking details.
// Basic detail checks run here; the full booking rules run on the aggregate.
func NewUpdateJobCommand(
	jobID kernel.UUID,
	acting actor.Actor,
	details job.Details,
) (UpdateJobCommand, error) {
	cmd := UpdateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(acting),
		cmd.setDetails(details),
	); err != nil {
		return UpdateJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to edit.
func (c UpdateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the caller the operation runs on behalf of.
func (c UpdateJobCommand) Actor() actor.Actor {
	return c.actor
}

// Details returns the replacement booking details.
func (c UpdateJobCommand) Details() job.Details {
	return c.details
}

func (c *UpdateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *UpdateJobCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}

func (c *UpdateJobCommand) setDetails(details job.Details) error {
	if details.LanguageFrom == "" || details.LanguageTo == "" {
		return ErrLanguagesAreRequired
	}
	if details.Duration <= 0 {
		return ErrDurationIsInvalid
	}

	c.details = details
	return nil
}
