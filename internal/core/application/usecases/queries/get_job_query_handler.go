package queries

import (
	"context"

	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobQueryHandler reads a single job view.
type GetJobQueryHandler struct {
	db *gorm.DB
}

// NewGetJobQueryHandler creates a handler for single-job reads.
func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle executes the query. The participation check runs after the row is
// loaded: a non-admin caller must be the customer or the assigned translator.
// An unauthorized read of an existing job reports Unauthorized, not NotFound.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (JobView, error) {
	if err := query.Validate(); err != nil {
		return JobView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobViewColumns+`
		FROM jobs
		WHERE id = @id
	`, map[string]any{"id": query.JobID().String()}).Rows()
	if err != nil {
		return JobView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return JobView{}, err
		}
		return JobView{}, errs.NewObjectNotFoundError("job", query.JobID().String())
	}

	view, err := scanJobView(rows)
	if err != nil {
		return JobView{}, err
	}

	acting := query.Actor()
	if !acting.Role().IsAdmin() &&
		!acting.ID().IsEqual(view.CustomerID) &&
		(view.TranslatorID == nil || !acting.ID().IsEqual(*view.TranslatorID)) {
		return JobView{}, errs.NewUnauthorizedError(acting.ID().String(), "read job")
	}

	return view, nil
}
