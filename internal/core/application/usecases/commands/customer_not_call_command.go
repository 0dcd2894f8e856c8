package commands

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrCustomerNotCallCommandIsNotConstructed = errors.New(
	"CustomerNotCallCommand must be created via NewCustomerNotCallCommand constructor",
)

// CustomerNotCallCommand represents a translator's report that the customer
// never showed up for the session.
type CustomerNotCallCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewCustomerNotCallCommand creates a command to close a job as a customer no-show.
func NewCustomerNotCallCommand(jobID kernel.UUID, acting actor.Actor) (CustomerNotCallCommand, error) {
	cmd := CustomerNotCallCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(acting),
	); err != nil {
		return CustomerNotCallCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CustomerNotCallCommand) Validate() error {
	return c.guard.Validate(ErrCustomerNotCallCommandIsNotConstructed)
}

// JobID returns the identifier of the job to close.
func (c CustomerNotCallCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the caller the operation runs on behalf of.
func (c CustomerNotCallCommand) Actor() actor.Actor {
	return c.actor
}

func (c *CustomerNotCallCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CustomerNotCallCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}
