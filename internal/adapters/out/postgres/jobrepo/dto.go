// Package jobrepo provides data transfer objects and mapping functions for job
// persistence. This package implements the repository pattern for the job
// domain aggregate, handling the conversion between domain entities and
// database representations.
package jobrepo

import (
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// The scheduling window is nullable because immediate jobs carry none.
type JobDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	TranslatorID *uuid.UUID `gorm:"type:uuid;index"`

	LanguageFrom string `gorm:"index:idx_jobs_language_pair"`
	LanguageTo   string `gorm:"index:idx_jobs_language_pair"`
	City         string
	WindowStart  *time.Time `gorm:"index"`
	WindowEnd    *time.Time
	Immediate    bool
	Duration     int64

	Status       int `gorm:"index"`
	CancelReason int

	SessionTime     int64
	AdminComment    string
	Flagged         bool
	ManuallyHandled bool
	ByAdmin         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// DistanceRecordDTO represents the database structure for the distance
// ledger. Keyed 1:1 by job id.
type DistanceRecordDTO struct {
	JobID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	DistanceKm float64
	TravelTime int64
}

// TableName specifies the database table name for distance records.
func (DistanceRecordDTO) TableName() string {
	return "distance_records"
}

func fromDomain(aggregate *job.Job) JobDTO {
	var translatorID *uuid.UUID
	if id := aggregate.Translator(); id != nil {
		raw := id.Bytes()
		translatorID = &raw
	}

	var windowStart, windowEnd *time.Time
	if aggregate.Window().Validate() == nil {
		start := aggregate.Window().Start()
		end := aggregate.Window().End()
		windowStart = &start
		windowEnd = &end
	}

	return JobDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		TranslatorID:    translatorID,
		LanguageFrom:    aggregate.LanguageFrom(),
		LanguageTo:      aggregate.LanguageTo(),
		City:            aggregate.City(),
		WindowStart:     windowStart,
		WindowEnd:       windowEnd,
		Immediate:       aggregate.Immediate(),
		Duration:        int64(aggregate.Duration()),
		Status:          int(aggregate.Status()),
		CancelReason:    int(aggregate.CancelReason()),
		SessionTime:     int64(aggregate.SessionTime()),
		AdminComment:    aggregate.AdminComment(),
		Flagged:         aggregate.Flagged(),
		ManuallyHandled: aggregate.ManuallyHandled(),
		ByAdmin:         aggregate.ByAdmin(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var translatorID *kernel.UUID
	if dto.TranslatorID != nil {
		tID, translatorErr := kernel.UUIDFromBytes((*dto.TranslatorID)[:])
		if translatorErr != nil {
			return nil, translatorErr
		}

		translatorID = &tID
	}

	var window kernel.TimeWindow
	if dto.WindowStart != nil && dto.WindowEnd != nil {
		window, err = kernel.NewTimeWindow(*dto.WindowStart, *dto.WindowEnd)
		if err != nil {
			return nil, err
		}
	}

	return job.RestoreJob(
		id, customerID,
		job.Details{
			LanguageFrom: dto.LanguageFrom,
			LanguageTo:   dto.LanguageTo,
			City:         dto.City,
			Window:       window,
			Immediate:    dto.Immediate,
			Duration:     time.Duration(dto.Duration),
		},
		job.Status(dto.Status),
		job.CancelReason(dto.CancelReason),
		translatorID,
		time.Duration(dto.SessionTime),
		dto.AdminComment,
		dto.Flagged, dto.ManuallyHandled, dto.ByAdmin,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func distanceFromDomain(record job.DistanceRecord) DistanceRecordDTO {
	return DistanceRecordDTO{
		JobID:      record.JobID().Bytes(),
		DistanceKm: record.DistanceKm(),
		TravelTime: int64(record.TravelTime()),
	}
}

func distanceToDomain(dto DistanceRecordDTO) (job.DistanceRecord, error) {
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return job.DistanceRecord{}, err
	}

	return job.NewDistanceRecord(jobID, dto.DistanceKm, time.Duration(dto.TravelTime))
}
