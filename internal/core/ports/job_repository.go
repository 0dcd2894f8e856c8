// Package ports defines repository and gateway interfaces for the booking
// domain. These interfaces establish contracts between the core and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
// Status-changing writes go through UpdateGuarded, which provides the atomic
// compare-and-set semantics the acceptance race relies on.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	Add(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// Update persists changes to non-status fields of an existing job.
	// Used for the admin metadata side channel only; lifecycle transitions
	// must go through UpdateGuarded.
	Update(ctx context.Context, aggregate *job.Job) error

	// UpdateGuarded persists the aggregate only if the stored status still
	// equals expected, in a single atomic statement. When another writer
	// committed a transition first, no row is written and an
	// errs.StatusConflictError is returned. This is the storage half of the
	// single-winner acceptance guarantee.
	UpdateGuarded(ctx context.Context, aggregate *job.Job, expected job.Status) error

	// GetOpenStartedBefore retrieves Open jobs whose scheduled window starts
	// before the given instant. Used by the expiry job. Immediate jobs have
	// no window and are never returned.
	GetOpenStartedBefore(ctx context.Context, deadline time.Time) ([]*job.Job, error)

	// GetAssignedStartingBetween retrieves Assigned jobs whose window starts
	// inside the half-open interval [from, to). Used by the session
	// reminder job.
	GetAssignedStartingBetween(ctx context.Context, from, to time.Time) ([]*job.Job, error)
}

// DistanceRepository defines the persistence contract for the distance
// ledger: admin-recorded travel metrics keyed 1:1 by job id.
type DistanceRepository interface {
	// Upsert creates the record on first write and overwrites the metric
	// fields on subsequent writes.
	Upsert(ctx context.Context, record job.DistanceRecord) error

	// Get retrieves the record for a job.
	// Returns errs.ObjectNotFoundError when no metrics were recorded yet.
	Get(ctx context.Context, jobID kernel.UUID) (job.DistanceRecord, error)
}
