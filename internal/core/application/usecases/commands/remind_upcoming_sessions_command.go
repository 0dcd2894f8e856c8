package commands

import (
	"errors"
	"time"

	"booking/internal/pkg/guard"
)

var (
	ErrRemindUpcomingSessionsCommandIsNotConstructed = errors.New(
		"RemindUpcomingSessionsCommand must be created via NewRemindUpcomingSessionsCommand constructor",
	)
	ErrReminderWindowIsInvalid = errors.New("reminder window start must precede its end")
)

// RemindUpcomingSessionsCommand represents a reminder sweep over assigned
// jobs whose session starts inside the half-open interval [from, to). The
// background reminder job slices time into non-overlapping intervals so a
// session is reminded exactly once.
type RemindUpcomingSessionsCommand struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewRemindUpcomingSessionsCommand creates a command for one reminder sweep.
func NewRemindUpcomingSessionsCommand(from, to time.Time) (RemindUpcomingSessionsCommand, error) {
	cmd := RemindUpcomingSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWindow(from, to); err != nil {
		return RemindUpcomingSessionsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindUpcomingSessionsCommand) Validate() error {
	return c.guard.Validate(ErrRemindUpcomingSessionsCommandIsNotConstructed)
}

// From returns the inclusive start of the sweep interval.
func (c RemindUpcomingSessionsCommand) From() time.Time {
	return c.from
}

// To returns the exclusive end of the sweep interval.
func (c RemindUpcomingSessionsCommand) To() time.Time {
	return c.to
}

func (c *RemindUpcomingSessionsCommand) setWindow(from, to time.Time) error {
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return ErrReminderWindowIsInvalid
	}

	c.from = from
	c.to = to
	return nil
}
