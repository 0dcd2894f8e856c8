package queries

import (
	"context"

	"booking/internal/core/domain/model/job"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPotentialJobsQueryHandler lists the open jobs matching a translator's
// profile. Eligibility is computed in one join against the translator's
// language pairs and city instead of loading every open job into memory.
type GetPotentialJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetPotentialJobsQueryHandler creates a handler for potential job listings.
func NewGetPotentialJobsQueryHandler(db *gorm.DB) GetPotentialJobsQueryHandler {
	return GetPotentialJobsQueryHandler{db: db}
}

// Handle executes the query. Translators may list only their own potential
// jobs; admins may list anyone's.
func (h GetPotentialJobsQueryHandler) Handle(ctx context.Context, query GetPotentialJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	acting := query.Actor()
	if !acting.Role().IsAdmin() && !acting.ID().IsEqual(query.TranslatorID()) {
		return nil, errs.NewUnauthorizedError(acting.ID().String(), "list potential jobs")
	}

	views := make([]JobView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobViewColumnsPrefixed("j")+`
		FROM jobs j
		JOIN translator_languages tl
			ON tl.language_from = j.language_from
			AND tl.language_to = j.language_to
		JOIN translators t
			ON t.id = tl.translator_id
		WHERE tl.translator_id = @translator
			AND j.status = @open
			AND (j.city = '' OR j.city = t.city)
		ORDER BY j.created_at
	`, map[string]any{
		"translator": query.TranslatorID().String(),
		"open":       int(job.Open),
	}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanJobView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
