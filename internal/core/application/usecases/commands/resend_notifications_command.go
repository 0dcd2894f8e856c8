package commands

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrResendNotificationsCommandIsNotConstructed = errors.New(
	"ResendNotificationsCommand must be created via NewResendNotificationsCommand constructor",
)

// ResendNotificationsCommand represents an admin request to replay the
// notification fan-out matching a job's current state.
type ResendNotificationsCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewResendNotificationsCommand creates a command to replay a job's notifications.
func NewResendNotificationsCommand(jobID kernel.UUID, acting actor.Actor) (ResendNotificationsCommand, error) {
	cmd := ResendNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(acting),
	); err != nil {
		return ResendNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrResendNotificationsCommandIsNotConstructed)
}

// JobID returns the identifier of the job whose notifications to replay.
func (c ResendNotificationsCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the caller the operation runs on behalf of.
func (c ResendNotificationsCommand) Actor() actor.Actor {
	return c.actor
}

func (c *ResendNotificationsCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ResendNotificationsCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}
