package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/db"
)

// AddUnavailability records a blackout date range for the volunteer.
// Dates arrive as ISO strings; both bounds are inclusive, so a single-day
// blackout passes the same date twice. The range check runs in the store,
// which fails with db.ErrInvalidRange before anything is written.
func AddUnavailability(ctx context.Context, store db.UnavailabilityStore, logger *zap.Logger, volunteerID, startDate, endDate, reason string) (*model.UnavailabilityPeriod, error) {
	start, err := model.ParseCalendarDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := model.ParseCalendarDate(endDate)
	if err != nil {
		return nil, err
	}

	period := model.UnavailabilityPeriod{
		ID:          uuid.New().String(),
		VolunteerID: volunteerID,
		Start:       start,
		End:         end,
		Reason:      reason,
	}

	if err := store.AddPeriod(ctx, period); err != nil {
		return nil, fmt.Errorf("failed to add unavailability period: %w", err)
	}

	logger.Info("Unavailability period added",
		zap.String("volunteer_id", volunteerID),
		zap.String("period_id", period.ID),
		zap.String("start", start.String()),
		zap.String("end", end.String()))

	return &period, nil
}

// RemoveUnavailability deletes a period by id. Removal is idempotent: a
// period that is already gone is a success.
func RemoveUnavailability(ctx context.Context, store db.UnavailabilityStore, logger *zap.Logger, volunteerID, periodID string) error {
	if err := store.RemovePeriod(ctx, volunteerID, periodID); err != nil {
		return fmt.Errorf("failed to remove unavailability period: %w", err)
	}

	logger.Info("Unavailability period removed",
		zap.String("volunteer_id", volunteerID),
		zap.String("period_id", periodID))

	return nil
}

// ListUnavailability returns the volunteer's blackout periods. When asOf
// is non-empty, only periods still in effect on that date are returned.
func ListUnavailability(ctx context.Context, store db.UnavailabilityStore, volunteerID, asOf string) ([]model.UnavailabilityPeriod, error) {
	if asOf == "" {
		periods, err := store.ListPeriods(ctx, volunteerID)
		if err != nil {
			return nil, fmt.Errorf("failed to list unavailability periods: %w", err)
		}
		return periods, nil
	}

	date, err := model.ParseCalendarDate(asOf)
	if err != nil {
		return nil, err
	}
	periods, err := store.ListActivePeriods(ctx, volunteerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list active unavailability periods: %w", err)
	}
	return periods, nil
}
