package commands

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/pkg/errs"
)

// UpdateAdminMetadataCommandHandler applies the admin side channel of a job:
// review annotations and the distance ledger. Both live in one transaction,
// so a rejected annotation (flagging without a comment) also discards the
// travel metrics. No notifications are sent for metadata changes.
type UpdateAdminMetadataCommandHandler struct {
	uowFactory MetadataUoWFactory
}

// NewUpdateAdminMetadataCommandHandler creates a handler for admin metadata updates.
func NewUpdateAdminMetadataCommandHandler(uowFactory MetadataUoWFactory) UpdateAdminMetadataCommandHandler {
	return UpdateAdminMetadataCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the metadata update. Admin only.
// Travel metrics overlay the stored record: an absent field keeps its
// previous value, and the record is created on first write.
func (h *UpdateAdminMetadataCommandHandler) Handle(ctx context.Context, cmd UpdateAdminMetadataCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	acting := cmd.Actor()
	if !acting.Role().IsAdmin() {
		return TransitionResult{}, errs.NewUnauthorizedError(acting.ID().String(), "update admin metadata")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	annotatedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return TransitionResult{}, err
	}

	if err = annotatedJob.ApplyAdminUpdate(cmd.Update()); err != nil {
		return TransitionResult{}, err
	}

	if err = jobRepo.Update(ctx, annotatedJob); err != nil {
		return TransitionResult{}, err
	}

	if cmd.TouchesDistance() {
		if err = h.upsertDistance(ctx, uow, cmd); err != nil {
			return TransitionResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{Job: annotatedJob}, nil
}

func (h *UpdateAdminMetadataCommandHandler) upsertDistance(
	ctx context.Context,
	uow MetadataUoW,
	cmd UpdateAdminMetadataCommand,
) error {
	distanceRepo := uow.DistanceRepository()

	distanceKm := 0.0
	travelTime := time.Duration(0)
	existing, err := distanceRepo.Get(ctx, cmd.JobID())
	switch {
	case err == nil:
		distanceKm = existing.DistanceKm()
		travelTime = existing.TravelTime()
	case errors.Is(err, errs.ErrObjectNotFound):
		// First write creates the record.
	default:
		return err
	}

	if cmd.DistanceKm() != nil {
		distanceKm = *cmd.DistanceKm()
	}
	if cmd.TravelTime() != nil {
		travelTime = *cmd.TravelTime()
	}

	record, err := job.NewDistanceRecord(cmd.JobID(), distanceKm, travelTime)
	if err != nil {
		return err
	}

	return distanceRepo.Upsert(ctx, record)
}
