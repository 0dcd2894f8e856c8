// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management and persistence. Notification dispatch always runs
// after the transaction committed; delivery failures are returned as data and
// never unwind a transition.
package commands

import (
	"context"

	"booking/internal/core/application/notifications"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/notification"
	"booking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// TranslatorRepoFactory provides access to the translator repository within a transaction.
	TranslatorRepoFactory interface {
		TranslatorRepository() ports.TranslatorRepository
	}

	// DistanceRepoFactory provides access to the distance repository within a transaction.
	DistanceRepoFactory interface {
		DistanceRepository() ports.DistanceRepository
	}

	// JobUoW manages transactions for job-only operations.
	// Used by the lifecycle commands, which touch a single job aggregate.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// MetadataUoW manages transactions that span a job's admin annotations and
	// its distance record. The admin update commits both or neither.
	MetadataUoW interface {
		TxManager
		JobRepoFactory
		DistanceRepoFactory
	}

	// MetadataUoWFactory creates new metadata unit of work instances.
	MetadataUoWFactory interface {
		Create() MetadataUoW
	}

	// UoW manages transactions across every aggregate type.
	UoW interface {
		TxManager
		JobRepoFactory
		TranslatorRepoFactory
		DistanceRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Notifier fans a lifecycle event out to its recipients. Implemented by the
// notifications dispatcher; handlers call it only after Commit succeeded.
// translatorID carries the pre-transition binding because cancellation clears
// it on the aggregate before dispatch runs.
type Notifier interface {
	Dispatch(
		ctx context.Context,
		event notification.Event,
		j *job.Job,
		translatorID *kernel.UUID,
	) []notifications.DeliveryFailure

	DispatchSMSToAssigned(ctx context.Context, j *job.Job) []notifications.DeliveryFailure
}
