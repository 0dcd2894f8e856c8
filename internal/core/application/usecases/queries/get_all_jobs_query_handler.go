package queries

import (
	"context"

	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllJobsQueryHandler lists every job for the admin overview.
// Admin and superadmin only; everyone else is rejected before the database
// is touched.
type GetAllJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllJobsQueryHandler creates a handler for the admin job overview.
func NewGetAllJobsQueryHandler(db *gorm.DB) GetAllJobsQueryHandler {
	return GetAllJobsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllJobsQueryHandler) Handle(ctx context.Context, query GetAllJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	acting := query.Actor()
	if !acting.Role().IsAdmin() {
		return nil, errs.NewUnauthorizedError(acting.ID().String(), "list all jobs")
	}

	views := make([]JobView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + jobViewColumns + `
		FROM jobs
		ORDER BY created_at DESC
	`).Rows()
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
