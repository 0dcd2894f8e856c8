package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrEndJobCommandIsNotConstructed = errors.New(
		"EndJobCommand must be created via NewEndJobCommand constructor",
	)
	ErrSessionTimeIsInvalid = errors.New("session time must be greater than 0")
)

// EndJobCommand represents a request to complete an in-progress session and
// record how long it actually ran.
type EndJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	actor       actor.Actor
	sessionTime time.Duration

	guard guard.ConstructorGuard
}

// NewEndJobCommand creates a command to complete a session.
func NewEndJobCommand(jobID kernel.UUID, acting actor.Actor, sessionTime time.Duration) (EndJobCommand, error) {
	cmd := EndJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(acting),
		cmd.setSessionTime(sessionTime),
	); err != nil {
		return EndJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EndJobCommand) Validate() error {
	return c.guard.Validate(ErrEndJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to complete.
func (c EndJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the caller the operation runs on behalf of.
func (c EndJobCommand) Actor() actor.Actor {
	return c.actor
}

// SessionTime returns the actual session length to record.
func (c EndJobCommand) SessionTime() time.Duration {
	return c.sessionTime
}

func (c *EndJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *EndJobCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}

func (c *EndJobCommand) setSessionTime(sessionTime time.Duration) error {
	if sessionTime <= 0 {
		return ErrSessionTimeIsInvalid
	}

	c.sessionTime = sessionTime
	return nil
}
