package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/availability"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/db"
)

// QuotaSource supplies how many pickups a volunteer already has assigned
// on a date. pkg/quota's redis counter implements it; tests use a stub.
type QuotaSource interface {
	Count(ctx context.Context, volunteerID string, date model.CalendarDate) (int, error)
}

// CheckAvailability answers the single-volunteer question: should this
// volunteer be considered for the candidate pickup slot? It loads the
// profile and active blackout periods, fetches the day's pickup count,
// and runs the composed availability check.
//
// Infrastructure failures (store, quota source) are returned as errors,
// never folded into an unavailable verdict.
func CheckAvailability(ctx context.Context, store db.Store, quota QuotaSource, logger *zap.Logger, volunteerID string, candidate model.Candidate) (model.Verdict, error) {
	rec, err := store.GetProfile(ctx, volunteerID)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("failed to load profile for volunteer %s: %w", volunteerID, err)
	}

	profile, err := rec.Profile()
	if err != nil {
		return model.Verdict{}, fmt.Errorf("stored profile for volunteer %s is malformed: %w", volunteerID, err)
	}

	periods, err := store.ListActivePeriods(ctx, volunteerID, candidate.Date)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("failed to load unavailability periods: %w", err)
	}

	count, err := quota.Count(ctx, volunteerID, candidate.Date)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("failed to read daily pickup count: %w", err)
	}

	verdict := availability.Check(profile, periods, candidate, count)

	logger.Debug("Availability checked",
		zap.String("volunteer_id", volunteerID),
		zap.String("date", candidate.Date.String()),
		zap.String("time", candidate.Time.String()),
		zap.Int("daily_pickup_count", count),
		zap.Bool("available", verdict.Available),
		zap.String("reason", string(verdict.Reason)))

	return verdict, nil
}
