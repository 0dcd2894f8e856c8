package queries

import (
	"context"
	"strings"

	"booking/internal/core/domain/model/job"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobHistoryQueryHandler lists a user's closed bookings. Closed means
// Completed, Cancelled or Expired; active jobs never appear in history.
type GetJobHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetJobHistoryQueryHandler creates a handler for booking history queries.
func NewGetJobHistoryQueryHandler(db *gorm.DB) GetJobHistoryQueryHandler {
	return GetJobHistoryQueryHandler{db: db}
}

// Handle executes the query. A caller may read only its own history unless
// it is an admin; the check runs before any database work.
func (h GetJobHistoryQueryHandler) Handle(ctx context.Context, query GetJobHistoryQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	acting := query.Actor()
	if !acting.Role().IsAdmin() && !acting.ID().IsEqual(query.UserID()) {
		return nil, errs.NewUnauthorizedError(acting.ID().String(), "list job history")
	}

	statuses := query.Statuses()
	if len(statuses) == 0 {
		statuses = []job.Status{job.Completed, job.Cancelled, job.Expired}
	}

	conditions := []string{
		"(customer_id = ? OR translator_id = ?)",
		"status IN ?",
	}
	args := []any{query.UserID().String(), query.UserID().String(), statusInts(statuses)}

	if query.From() != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *query.From())
	}
	if query.To() != nil {
		conditions = append(conditions, "created_at < ?")
		args = append(args, *query.To())
	}

	views := make([]JobView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobViewColumns+`
		FROM jobs
		WHERE `+strings.Join(conditions, " AND ")+`
		ORDER BY created_at DESC
	`, args...).Rows()
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

func statusInts(statuses []job.Status) []int {
	ints := make([]int, 0, len(statuses))
	for _, status := range statuses {
		ints = append(ints, int(status))
	}
	return ints
}
