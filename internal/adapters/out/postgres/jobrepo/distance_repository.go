package jobrepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDistanceRepository implements DistanceRepository using GORM.
type GormDistanceRepository struct {
	db *gorm.DB
}

// NewGormDistanceRepository creates a new GORM distance repository.
func NewGormDistanceRepository(db *gorm.DB) *GormDistanceRepository {
	return &GormDistanceRepository{db: db}
}

// Upsert creates the record on first write, otherwise overwrites the metric
// columns. One statement so it is safe under concurrent admin edits.
func (r *GormDistanceRepository) Upsert(ctx context.Context, record job.DistanceRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := distanceFromDomain(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"distance_km", "travel_time"}),
		}).
		Create(&dto).
		Error
}

// Get retrieves the distance record for a job.
func (r *GormDistanceRepository) Get(ctx context.Context, jobID kernel.UUID) (job.DistanceRecord, error) {
	if err := jobID.Validate(); err != nil {
		return job.DistanceRecord{}, err
	}

	var dto DistanceRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return job.DistanceRecord{}, errs.NewObjectNotFoundError("distance record", jobID.String())
		}
		return job.DistanceRecord{}, err
	}

	return distanceToDomain(dto)
}
