package queries

import (
	"context"

	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserJobsQueryHandler lists the jobs a user participates in, on either
// side of the booking.
type GetUserJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserJobsQueryHandler creates a handler for user job listings.
func NewGetUserJobsQueryHandler(db *gorm.DB) GetUserJobsQueryHandler {
	return GetUserJobsQueryHandler{db: db}
}

// Handle executes the query. The authorization check runs before any
// database work: a caller may list only its own jobs unless it is an admin.
func (h GetUserJobsQueryHandler) Handle(ctx context.Context, query GetUserJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	acting := query.Actor()
	if !acting.Role().IsAdmin() && !acting.ID().IsEqual(query.UserID()) {
		return nil, errs.NewUnauthorizedError(acting.ID().String(), "list user jobs")
	}

	views := make([]JobView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobViewColumns+`
		FROM jobs
		WHERE customer_id = @user OR translator_id = @user
		ORDER BY created_at DESC
	`, map[string]any{"user": query.UserID().String()}).Rows()
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
