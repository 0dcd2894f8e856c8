package commands

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrResendSMSCommandIsNotConstructed = errors.New(
	"ResendSMSCommand must be created via NewResendSMSCommand constructor",
)

// ResendSMSCommand represents an admin request to resend the session SMS to
// the translator assigned to a job.
type ResendSMSCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewResendSMSCommand creates a command to resend the assignment SMS.
func NewResendSMSCommand(jobID kernel.UUID, acting actor.Actor) (ResendSMSCommand, error) {
	cmd := ResendSMSCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(acting),
	); err != nil {
		return ResendSMSCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendSMSCommand) Validate() error {
	return c.guard.Validate(ErrResendSMSCommandIsNotConstructed)
}

// JobID returns the identifier of the job whose SMS to resend.
func (c ResendSMSCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the caller the operation runs on behalf of.
func (c ResendSMSCommand) Actor() actor.Actor {
	return c.actor
}

func (c *ResendSMSCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ResendSMSCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}
