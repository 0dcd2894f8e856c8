package job

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through the NewJob factory method or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")
)

// Details carries the booking parameters supplied at creation time.
// Immediate jobs start right away and may omit the scheduling window;
// scheduled jobs must carry a valid window.
type Details struct {
	LanguageFrom string
	LanguageTo   string
	City         string
	Window       kernel.TimeWindow
	Immediate    bool
	Duration     time.Duration
}

// Job represents a bookable interpreting assignment. It is the aggregate root
// that manages the job lifecycle from creation through acceptance to
// completion, cancellation or expiry.
//
// Job follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - translatorID is non-nil iff status is Assigned, InProgress or Completed
//   - Status transitions follow the state machine in Status; no state is skipped
//   - Can only be created through NewJob or restored through RestoreJob
//
// Admin annotations (comment, flagged, manually handled, by-admin markers and
// the recorded session time) are a side channel independent of the status
// machine; they are mutated through ApplyAdminUpdate only.
type Job struct {
	id           kernel.UUID
	customerID   kernel.UUID
	translatorID *kernel.UUID

	languageFrom string
	languageTo   string
	city         string
	window       kernel.TimeWindow
	immediate    bool
	duration     time.Duration

	status       Status
	cancelReason CancelReason

	sessionTime     time.Duration
	adminComment    string
	flagged         bool
	manuallyHandled bool
	byAdmin         bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewJob creates a new Job in Open status with validation.
//
// Validation rules:
//   - id and customerID must be valid UUIDs
//   - both languages are required
//   - duration must be positive
//   - a scheduling window is required unless the job is immediate
func NewJob(id, customerID kernel.UUID, details Details, now time.Time) (*Job, error) {
	j := &Job{
		status:        Open,
		cancelReason:  ReasonNone,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setDetails(details),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job from persistence without running creation-time
// rules, while still enforcing structural invariants: a valid status and a
// translator binding consistent with that status.
func RestoreJob(
	id, customerID kernel.UUID,
	details Details,
	status Status,
	cancelReason CancelReason,
	translatorID *kernel.UUID,
	sessionTime time.Duration,
	adminComment string,
	flagged, manuallyHandled, byAdmin bool,
	createdAt, updatedAt time.Time,
) (*Job, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := cancelReason.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveTranslator(translatorID != nil); err != nil {
		return nil, err
	}
	if translatorID != nil {
		if err := translatorID.Validate(); err != nil {
			return nil, err
		}
	}

	j := &Job{
		translatorID:    translatorID,
		status:          status,
		cancelReason:    cancelReason,
		sessionTime:     sessionTime,
		adminComment:    adminComment,
		flagged:         flagged,
		manuallyHandled: manuallyHandled,
		byAdmin:         byAdmin,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setDetails(details),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the Job instance was properly constructed.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// CustomerID returns the booking customer's identifier.
func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

// Translator returns the assigned translator's ID, or nil if unassigned.
func (j *Job) Translator() *kernel.UUID {
	return j.translatorID
}

// LanguageFrom returns the source language of the session.
func (j *Job) LanguageFrom() string {
	return j.languageFrom
}

// LanguageTo returns the target language of the session.
func (j *Job) LanguageTo() string {
	return j.languageTo
}

// City returns the session city. Empty for phone sessions.
func (j *Job) City() string {
	return j.city
}

// Window returns the scheduling window. For immediate jobs the window may be
// the zero value; callers must check Immediate first.
func (j *Job) Window() kernel.TimeWindow {
	return j.window
}

// Immediate reports whether the job starts right away instead of at a
// scheduled window.
func (j *Job) Immediate() bool {
	return j.immediate
}

// Duration returns the booked session length.
func (j *Job) Duration() time.Duration {
	return j.duration
}

// Status returns the current status of the job.
func (j *Job) Status() Status {
	return j.status
}

// CancelReason returns why the job was cancelled, or ReasonNone.
func (j *Job) CancelReason() CancelReason {
	return j.cancelReason
}

// SessionTime returns the recorded actual session length.
func (j *Job) SessionTime() time.Duration {
	return j.sessionTime
}

// AdminComment returns the admin annotation text.
func (j *Job) AdminComment() string {
	return j.adminComment
}

// Flagged reports whether an admin flagged the job for review.
func (j *Job) Flagged() bool {
	return j.flagged
}

// ManuallyHandled reports whether an admin marked the job as handled manually.
func (j *Job) ManuallyHandled() bool {
	return j.manuallyHandled
}

// ByAdmin reports whether the job was administered on behalf of a user.
func (j *Job) ByAdmin() bool {
	return j.byAdmin
}

// CreatedAt returns when the job was created.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// UpdatedAt returns when the job was last persisted.
func (j *Job) UpdatedAt() time.Time {
	return j.updatedAt
}

// Accept binds the translator and moves the job to Assigned.
// Only Open jobs can be accepted; there is no reassignment, which is what
// makes the acceptance race single-winner at the domain level. The storage
// layer additionally guards the commit with a status compare-and-set.
func (j *Job) Accept(translatorID kernel.UUID) error {
	if err := translatorID.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.Accept()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.translatorID = &translatorID
	return nil
}

// Start moves an Assigned job to InProgress when the session begins.
func (j *Job) Start() error {
	newStatus, err := j.status.Start()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Complete moves an InProgress job to Completed and records the actual
// session length.
func (j *Job) Complete(sessionTime time.Duration) error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.sessionTime = sessionTime
	return nil
}

// Cancel moves the job to Cancelled with the given reason and clears the
// translator binding. Rejected when the job is already terminal.
func (j *Job) Cancel(reason CancelReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.cancelReason = reason
	j.translatorID = nil
	return nil
}

// MarkNoShow closes an Assigned or InProgress job as Cancelled with the
// CustomerNoShow reason. History is preserved; nothing is deleted.
func (j *Job) MarkNoShow() error {
	newStatus, err := j.status.MarkNoShow()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.cancelReason = ReasonCustomerNoShow
	j.translatorID = nil
	return nil
}

// Expire moves an Open job whose window has started to Expired.
func (j *Job) Expire() error {
	newStatus, err := j.status.Expire()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Reopen resets a Cancelled or Expired job back to Open, clearing the
// translator binding and the cancel reason.
func (j *Job) Reopen() error {
	newStatus, err := j.status.Reopen()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.cancelReason = ReasonNone
	j.translatorID = nil
	return nil
}

// UpdateDetails replaces the booking parameters of the job. Allowed while the
// job is Open or Assigned; once the session is underway or the job is closed
// the details are frozen. The status machine and the translator binding are
// untouched.
func (j *Job) UpdateDetails(details Details) error {
	if err := j.status.ValidateDetailsEditable(); err != nil {
		return err
	}
	return j.setDetails(details)
}

// AdminUpdate carries the optional admin metadata fields of an update.
// Nil pointers mean "leave unchanged"; the boundary accepts explicit booleans,
// never string sentinels.
type AdminUpdate struct {
	SessionTime     *time.Duration
	Flagged         *bool
	ManuallyHandled *bool
	ByAdmin         *bool
	AdminComment    *string
}

// ApplyAdminUpdate applies the admin metadata side channel to the job.
// Flagging requires a non-empty comment; in that case nothing is written and
// a ValueIsRequiredError is returned, keeping the update all-or-nothing.
func (j *Job) ApplyAdminUpdate(update AdminUpdate) error {
	if update.Flagged != nil && *update.Flagged {
		comment := j.adminComment
		if update.AdminComment != nil {
			comment = *update.AdminComment
		}
		if comment == "" {
			return errs.NewValueIsRequiredError("admin comment is required when flagging a job")
		}
	}

	if update.AdminComment != nil {
		j.adminComment = *update.AdminComment
	}
	if update.SessionTime != nil {
		j.sessionTime = *update.SessionTime
	}
	if update.Flagged != nil {
		j.flagged = *update.Flagged
	}
	if update.ManuallyHandled != nil {
		j.manuallyHandled = *update.ManuallyHandled
	}
	if update.ByAdmin != nil {
		j.byAdmin = *update.ByAdmin
	}

	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	j.customerID = customerID
	return nil
}

func (j *Job) setDetails(details Details) error {
	if details.LanguageFrom == "" {
		return errs.NewValueIsRequiredError("language from")
	}
	if details.LanguageTo == "" {
		return errs.NewValueIsRequiredError("language to")
	}
	if details.Duration <= 0 {
		return errs.NewValueIsInvalidError("duration")
	}
	if !details.Immediate {
		if err := details.Window.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("scheduling window", err)
		}
	}

	j.languageFrom = details.LanguageFrom
	j.languageTo = details.LanguageTo
	j.city = details.City
	j.window = details.Window
	j.immediate = details.Immediate
	j.duration = details.Duration
	return nil
}
