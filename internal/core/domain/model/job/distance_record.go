package job

import (
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// DistanceRecord holds the travel metrics an admin records against a job:
// the distance to the session venue and the travel time. It is keyed 1:1 by
// job id, created lazily on the first update and independent of the job's
// own status fields.
type DistanceRecord struct {
	jobID      kernel.UUID
	distanceKm float64
	travelTime time.Duration

	isConstructed bool
}

// NewDistanceRecord creates a validated DistanceRecord.
// Distance and travel time must not be negative.
func NewDistanceRecord(jobID kernel.UUID, distanceKm float64, travelTime time.Duration) (DistanceRecord, error) {
	if err := jobID.Validate(); err != nil {
		return DistanceRecord{}, err
	}
	if distanceKm < 0 {
		return DistanceRecord{}, errs.NewValueIsInvalidError("distance")
	}
	if travelTime < 0 {
		return DistanceRecord{}, errs.NewValueIsInvalidError("travel time")
	}

	return DistanceRecord{
		jobID:         jobID,
		distanceKm:    distanceKm,
		travelTime:    travelTime,
		isConstructed: true,
	}, nil
}

// JobID returns the job this record belongs to.
func (r DistanceRecord) JobID() kernel.UUID {
	return r.jobID
}

// DistanceKm returns the recorded distance in kilometers.
func (r DistanceRecord) DistanceKm() float64 {
	return r.distanceKm
}

// TravelTime returns the recorded travel time.
func (r DistanceRecord) TravelTime() time.Duration {
	return r.travelTime
}

// Validate ensures the record was created via NewDistanceRecord.
func (r DistanceRecord) Validate() error {
	if !r.isConstructed {
		return errs.NewValueIsRequiredError("DistanceRecord must be created via NewDistanceRecord")
	}
	return nil
}
