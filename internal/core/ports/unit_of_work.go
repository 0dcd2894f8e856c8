package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle. The transaction
// scope is deliberately narrow: it never spans notification dispatch.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// JobRepository returns a JobRepository instance bound to the current transaction.
	JobRepository() JobRepository

	// TranslatorRepository returns a TranslatorRepository instance bound to the current transaction.
	TranslatorRepository() TranslatorRepository

	// DistanceRepository returns a DistanceRepository instance bound to the current transaction.
	DistanceRepository() DistanceRepository
}
