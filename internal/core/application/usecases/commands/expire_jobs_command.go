package commands

import (
	"errors"
	"time"

	"booking/internal/pkg/guard"
)

var (
	ErrExpireJobsCommandIsNotConstructed = errors.New(
		"ExpireJobsCommand must be created via NewExpireJobsCommand constructor",
	)
	ErrDeadlineIsRequired = errors.New("deadline is required")
)

// ExpireJobsCommand represents a sweep over open jobs whose scheduled window
// started before the deadline. Issued by the background expiry job, not by a
// caller, so it carries no actor.
type ExpireJobsCommand struct { //nolint:recvcheck //using for validation
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewExpireJobsCommand creates a command to expire stale open jobs.
func NewExpireJobsCommand(deadline time.Time) (ExpireJobsCommand, error) {
	cmd := ExpireJobsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeadline(deadline); err != nil {
		return ExpireJobsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireJobsCommand) Validate() error {
	return c.guard.Validate(ErrExpireJobsCommandIsNotConstructed)
}

// Deadline returns the instant before which open jobs count as stale.
func (c ExpireJobsCommand) Deadline() time.Time {
	return c.deadline
}

func (c *ExpireJobsCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return ErrDeadlineIsRequired
	}

	c.deadline = deadline
	return nil
}
