package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrUpdateAdminMetadataCommandIsNotConstructed = errors.New(
		"UpdateAdminMetadataCommand must be created via NewUpdateAdminMetadataCommand constructor",
	)
	ErrDistanceIsInvalid   = errors.New("distance must not be negative")
	ErrTravelTimeIsInvalid = errors.New("travel time must not be negative")
)

// UpdateAdminMetadataCommand carries the admin side channel of a job: the
// review annotations plus the travel metrics of the distance ledger. All
// fields are optional pointers; nil means leave unchanged. Flags are explicit
// booleans, never string sentinels.
type UpdateAdminMetadataCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	actor  actor.Actor
	update job.AdminUpdate

	distanceKm *float64
	travelTime *time.Duration

	guard guard.ConstructorGuard
}

// NewUpdateAdminMetadataCommand creates a command to update a job's admin
// metadata and, optionally, its distance record.
func NewUpdateAdminMetadataCommand(
	jobID kernel.UUID,
	acting actor.Actor,
	update job.AdminUpdate,
	distanceKm *float64,
	travelTime *time.Duration,
) (UpdateAdminMetadataCommand, error) {
	cmd := UpdateAdminMetadataCommand{
		update: update,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(acting),
		cmd.setDistance(distanceKm, travelTime),
	); err != nil {
		return UpdateAdminMetadataCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAdminMetadataCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAdminMetadataCommandIsNotConstructed)
}

// JobID returns the identifier of the job to annotate.
func (c UpdateAdminMetadataCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the caller the operation runs on behalf of.
func (c UpdateAdminMetadataCommand) Actor() actor.Actor {
	return c.actor
}

// Update returns the admin annotation fields to apply.
func (c UpdateAdminMetadataCommand) Update() job.AdminUpdate {
	return c.update
}

// DistanceKm returns the distance to record, or nil to leave it unchanged.
func (c UpdateAdminMetadataCommand) DistanceKm() *float64 {
	return c.distanceKm
}

// TravelTime returns the travel time to record, or nil to leave it unchanged.
func (c UpdateAdminMetadataCommand) TravelTime() *time.Duration {
	return c.travelTime
}

// TouchesDistance reports whether the command carries any travel metric.
func (c UpdateAdminMetadataCommand) TouchesDistance() bool {
	return c.distanceKm != nil || c.travelTime != nil
}

func (c *UpdateAdminMetadataCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *UpdateAdminMetadataCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.actor = acting
	return nil
}

func (c *UpdateAdminMetadataCommand) setDistance(distanceKm *float64, travelTime *time.Duration) error {
	if distanceKm != nil && *distanceKm < 0 {
		return ErrDistanceIsInvalid
	}
	if travelTime != nil && *travelTime < 0 {
		return ErrTravelTimeIsInvalid
	}

	c.distanceKm = distanceKm
	c.travelTime = travelTime
	return nil
}
