package commands

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand represents a request to cancel a job. The cancel reason is
// not supplied by the caller; it is derived from the acting role so the
// record always states who withdrew the booking.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewCancelJobCommand creates a command to cancel a job.
func NewCancelJobCommand(jobID kernel.UUID, acting actor.Actor) (CancelJobCommand, error) {
	cmd := CancelJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(acting),
	); err != nil {
		return CancelJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to cancel.
func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the caller the operation runs on behalf of.
func (c CancelJobCommand) Actor() actor.Actor {
	return c.actor
}

func (c *CancelJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CancelJobCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}
