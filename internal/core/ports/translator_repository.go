package ports

import (
	"context"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/translator"
)

// TranslatorRepository defines the persistence contract for translator
// profiles, including the eligibility lookup used for job fan-out and
// potential-job listings.
type TranslatorRepository interface {
	// Add persists a new translator profile.
	Add(ctx context.Context, aggregate *translator.Translator) error

	// Get retrieves a translator profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*translator.Translator, error)

	// GetEligibleForJob retrieves translators whose profile matches the
	// job's language pair and, for on-site jobs, its city. The translator
	// currently bound to the job, if any, is excluded.
	GetEligibleForJob(ctx context.Context, aggregate *job.Job) ([]*translator.Translator, error)
}
