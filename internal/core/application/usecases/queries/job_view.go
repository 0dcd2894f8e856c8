// Package queries contains read-only operations over the booking store.
// Query handlers bypass the aggregate layer and read projections straight
// from the database, following the CQRS split: no query ever mutates state.
package queries

import (
	"database/sql"
	"strings"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobView is the flat read model of a job returned by every listing query.
// Nullable persistence fields surface as pointers; enumerations surface as
// their display names.
type JobView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	TranslatorID *kernel.UUID

	LanguageFrom string
	LanguageTo   string
	City         string
	WindowStart  *time.Time
	WindowEnd    *time.Time
	Immediate    bool
	Duration     time.Duration

	Status       string
	CancelReason string

	SessionTime     time.Duration
	AdminComment    string
	Flagged         bool
	ManuallyHandled bool
	ByAdmin         bool

	CreatedAt time.Time
}

// jobViewColumns is the select list every job query shares; scanJobView
// depends on this exact order.
const jobViewColumns = `
	id,
	customer_id,
	translator_id,
	language_from,
	language_to,
	city,
	window_start,
	window_end,
	immediate,
	duration,
	status,
	cancel_reason,
	session_time,
	admin_comment,
	flagged,
	manually_handled,
	by_admin,
	created_at`

// jobViewColumnsPrefixed qualifies the shared select list with a table alias
// for queries that join other tables.
func jobViewColumnsPrefixed(alias string) string {
	prefixed := strings.ReplaceAll(jobViewColumns, "\n\t", "\n\t"+alias+".")
	return strings.TrimPrefix(prefixed, "\n")
}

func scanJobView(rows *sql.Rows) (JobView, error) {
	var view JobView
	var id, customerID uuid.UUID
	var translatorID uuid.NullUUID
	var windowStart, windowEnd sql.NullTime
	var duration, sessionTime int64
	var status, cancelReason int

	err := rows.Scan(
		&id,
		&customerID,
		&translatorID,
		&view.LanguageFrom,
		&view.LanguageTo,
		&view.City,
		&windowStart,
		&windowEnd,
		&view.Immediate,
		&duration,
		&status,
		&cancelReason,
		&sessionTime,
		&view.AdminComment,
		&view.Flagged,
		&view.ManuallyHandled,
		&view.ByAdmin,
		&view.CreatedAt,
	)
	if err != nil {
		return JobView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return JobView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return JobView{}, err
	}
	if translatorID.Valid {
		tid, idErr := kernel.UUIDFromBytes(translatorID.UUID[:])
		if idErr != nil {
			return JobView{}, idErr
		}
		view.TranslatorID = &tid
	}
	if windowStart.Valid {
		view.WindowStart = &windowStart.Time
	}
	if windowEnd.Valid {
		view.WindowEnd = &windowEnd.Time
	}

	view.Duration = time.Duration(duration)
	view.SessionTime = time.Duration(sessionTime)
	view.Status = job.Status(status).String()
	view.CancelReason = job.CancelReason(cancelReason).String()

	return view, nil
}
