package commands

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrReopenJobCommandIsNotConstructed = errors.New(
	"ReopenJobCommand must be created via NewReopenJobCommand constructor",
)

// ReopenJobCommand represents a request to put a cancelled or expired job back
// on the market.
type ReopenJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewReopenJobCommand creates a command to reopen a closed job.
func NewReopenJobCommand(jobID kernel.UUID, acting actor.Actor) (ReopenJobCommand, error) {
	cmd := ReopenJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(acting),
	); err != nil {
		return ReopenJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReopenJobCommand) Validate() error {
	return c.guard.Validate(ErrReopenJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to reopen.
func (c ReopenJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the caller the operation runs on behalf of.
func (c ReopenJobCommand) Actor() actor.Actor {
	return c.actor
}

func (c *ReopenJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ReopenJobCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}
