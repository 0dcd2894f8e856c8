package commands

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand represents a translator's attempt to take an open job.
// The translator is the acting caller; there is no separate translator field.
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a command for a translator to accept a job.
func NewAcceptJobCommand(jobID kernel.UUID, acting actor.Actor) (AcceptJobCommand, error) {
	cmd := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(acting),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return cmd, nil
}

// NewAcceptJobCommandFromID creates an accept command from a raw job id as it
// arrives on the wire. A malformed id yields a validation error, not a panic,
// so the acceptance-by-id endpoint shares this path with the body variant.
func NewAcceptJobCommandFromID(rawJobID string, acting actor.Actor) (AcceptJobCommand, error) {
	jobID, err := kernel.UUIDFromString(rawJobID)
	if err != nil {
		return AcceptJobCommand{}, err
	}

	return NewAcceptJobCommand(jobID, acting)
}

// Validate ensures the command was created through the constructor.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to accept.
func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the accepting translator.
func (c AcceptJobCommand) Actor() actor.Actor {
	return c.actor
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}
