package job

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel wrapped by every rejected status
// transition. Callers classify transition failures with errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions so that jobs follow
// the booking workflow and no state is ever skipped.
//
// State transitions:
//
//	Open ──> Assigned ──> InProgress ──> Completed
//	 │  ↖        │             │
//	 │   `────┐  │             │
//	 ├──> Expired└──> Cancelled<┘
//	 └──────────────> Cancelled
//
//	Cancelled ──> Open (reopen)
//	Expired   ──> Open (reopen)
//
// Completed is the only terminal state a job cannot leave.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status: the job awaits translator acceptance.
	Open

	// Assigned indicates a translator has accepted the job.
	Assigned

	// InProgress indicates the interpreting session has started.
	InProgress

	// Completed indicates the session finished. Final state.
	Completed

	// Cancelled indicates the job was withdrawn, cancelled by a party,
	// or closed after a customer no-show. Can be reopened.
	Cancelled

	// Expired indicates the job was never accepted before its scheduled
	// start. Can be reopened.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Open:       "Open",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
		Expired:    "Expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "Open",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
		Expired:    "Expired",
	}
}

// StatusFromString parses a status display name. Unknown is not accepted.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a valid status", ErrInvalidTransition, s)
}

// Validate checks if the Status value is one of the defined job states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the job lifecycle.
// Cancelled and Expired are terminal but may still be reopened.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Expired
}

// transitionError builds the uniform rejection for a disallowed transition.
func (s Status) transitionError(operation string) error {
	return fmt.Errorf("%w: %s is not a valid status to %s", ErrInvalidTransition, s, operation)
}

// Accept transitions the status to Assigned.
//
// Valid transitions:
//   - Open -> Assigned
//
// There is no reassignment: once a job leaves Open, every further acceptance
// attempt is rejected, which is what makes acceptance single-winner.
func (s Status) Accept() (Status, error) {
	if s != Open {
		return 0, s.transitionError("accept")
	}
	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, s.transitionError("start")
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, s.transitionError("complete")
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Open -> Cancelled (customer withdrawal)
//   - Assigned -> Cancelled
//   - InProgress -> Cancelled
//
// Cancelling an already terminal job is rejected rather than treated as a
// no-op, so double cancellation is observable by the caller.
func (s Status) Cancel() (Status, error) {
	if s != Open && s != Assigned && s != InProgress {
		return 0, s.transitionError("cancel")
	}
	return Cancelled, nil
}

// MarkNoShow transitions the status to Cancelled for a customer no-show.
//
// Valid transitions:
//   - Assigned -> Cancelled
//   - InProgress -> Cancelled
func (s Status) MarkNoShow() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, s.transitionError("mark as no-show")
	}
	return Cancelled, nil
}

// Expire transitions the status to Expired.
//
// Valid transitions:
//   - Open -> Expired
func (s Status) Expire() (Status, error) {
	if s != Open {
		return 0, s.transitionError("expire")
	}
	return Expired, nil
}

// Reopen transitions the status back to Open.
//
// Valid transitions:
//   - Cancelled -> Open
//   - Expired -> Open
func (s Status) Reopen() (Status, error) {
	if s != Cancelled && s != Expired {
		return 0, s.transitionError("reopen")
	}
	return Open, nil
}

// ValidateDetailsEditable reports whether the booking details may still be
// changed.
//
// Business rules:
//   - Open and Assigned jobs accept detail edits
//   - Details freeze once the session is in progress or the job is terminal
func (s Status) ValidateDetailsEditable() error {
	if s != Open && s != Assigned {
		return fmt.Errorf("%w: details of a %s job cannot be changed", ErrInvalidTransition, s)
	}
	return nil
}

// ValidateCanHaveTranslator validates the consistency between job status and
// translator binding.
//
// Business rules:
//   - Open, Cancelled and Expired jobs must not have a translator bound
//   - Assigned, InProgress and Completed jobs must have a translator bound
func (s Status) ValidateCanHaveTranslator(translator bool) error {
	if translator && s != Assigned && s != InProgress && s != Completed {
		return fmt.Errorf("%w: %s is not a valid status to have a translator", ErrInvalidTransition, s)
	}

	if !translator && (s == Assigned || s == InProgress || s == Completed) {
		return fmt.Errorf("%w: %s is not a valid status to have no translator", ErrInvalidTransition, s)
	}

	return nil
}
