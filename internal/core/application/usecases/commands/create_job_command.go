package commands

import (
	"errors"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrLanguagesAreRequired = errors.New("both languages are required")
	ErrDurationIsInvalid    = errors.New("duration must be greater than 0")
)

// CreateJobCommand represents a request to open a new interpreting job.
// Carries the booking customer, the acting caller and the session details.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	customerID kernel.UUID
	actor      actor.Actor
	details    job.Details

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to open a new job.
// Validates identifiers, the acting caller and the basic session details.
// The full booking rules run in the Job constructor.
func NewCreateJobCommand(
	jobID, customerID kernel.UUID,
	acting actor.Actor,
	details job.Details,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setCustomerID(customerID),
		cmd.setActor(acting),
		cmd.setDetails(details),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the identifier the new job will carry.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the booking customer's identifier.
func (c CreateJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Actor returns the caller the operation runs on behalf of.
func (c CreateJobCommand) Actor() actor.Actor {
	return c.actor
}

// Details returns the session booking details.
func (c CreateJobCommand) Details() job.Details {
	return c.details
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateJobCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}

func (c *CreateJobCommand) setDetails(details job.Details) error {
	if details.LanguageFrom == "" || details.LanguageTo == "" {
		return ErrLanguagesAreRequired
	}
	if details.Duration <= 0 {
		return ErrDurationIsInvalid
	}

	c.details = details
	return nil
}
