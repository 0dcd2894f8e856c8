package job

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// CancelReason distinguishes why a job ended up Cancelled.
// The reason is recorded alongside the status so that a no-show closure and a
// plain cancellation remain distinguishable in history.
type CancelReason int

const (
	// ReasonNone means the job is not cancelled.
	ReasonNone CancelReason = iota

	// ReasonWithdrawn means the customer withdrew an Open job before acceptance.
	ReasonWithdrawn

	// ReasonCancelledByCustomer means the customer cancelled after acceptance.
	ReasonCancelledByCustomer

	// ReasonCancelledByTranslator means the assigned translator backed out.
	ReasonCancelledByTranslator

	// ReasonCancelledByAdmin means an admin cancelled the job.
	ReasonCancelledByAdmin

	// ReasonCustomerNoShow means the customer did not call in for the session.
	ReasonCustomerNoShow
)

func getCancelReasonStrings() map[CancelReason]string {
	return map[CancelReason]string{
		ReasonNone:                  "None",
		ReasonWithdrawn:             "Withdrawn",
		ReasonCancelledByCustomer:   "CancelledByCustomer",
		ReasonCancelledByTranslator: "CancelledByTranslator",
		ReasonCancelledByAdmin:      "CancelledByAdmin",
		ReasonCustomerNoShow:        "CustomerNoShow",
	}
}

// String returns the human-readable name of the reason.
func (r CancelReason) String() string {
	if str, ok := getCancelReasonStrings()[r]; ok {
		return str
	}
	return "None"
}

// Validate checks that the reason is one of the defined reasons.
func (r CancelReason) Validate() error {
	if _, ok := getCancelReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"cancel reason",
			fmt.Errorf("%d is not a valid cancel reason", r),
		)
	}
	return nil
}
