package kernel

import (
	"fmt"
	"time"

	"booking/internal/pkg/errs"
)

// ErrTimeWindowIsNotConstructed indicates that a TimeWindow was not created via NewTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"TimeWindow must be created via NewTimeWindow",
)

// TimeWindow is a value object describing the scheduled interval of a session:
// when the interpreting session is due to start and when it is expected to end.
//
// Invariants:
//   - Start must not be the zero time
//   - End must be strictly after Start
//
// TimeWindow is immutable. The zero value is invalid and fails Validate.
type TimeWindow struct {
	start time.Time
	end   time.Time

	isConstructed bool
}

// NewTimeWindow creates a validated TimeWindow.
// Returns an error if start is the zero time or end is not after start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	if !end.After(start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"end",
			fmt.Errorf("%s is not after %s", end, start),
		)
	}

	return TimeWindow{
		start:         start,
		end:           end,
		isConstructed: true,
	}, nil
}

// Start returns the scheduled start of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the scheduled end of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Duration returns the scheduled length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// StartsBefore reports whether the window starts strictly before t.
func (w TimeWindow) StartsBefore(t time.Time) bool {
	return w.start.Before(t)
}

// IsEqual compares two windows by their boundaries.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// Validate checks that the window was created via NewTimeWindow.
func (w TimeWindow) Validate() error {
	if !w.isConstructed {
		return ErrTimeWindowIsNotConstructed
	}
	return nil
}
