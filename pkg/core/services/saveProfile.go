package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/availability"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/db"
)

// SaveProfileResult reports the outcome of a profile save attempt
type SaveProfileResult struct {
	// Validation holds every structural violation found in the document.
	// When it is not valid, the write was blocked and Version is zero.
	Validation model.ValidationResult

	// Version is the stored version after a successful replace
	Version int64
}

// SaveProfile validates the document and, if it is structurally sound,
// replaces the volunteer's profile wholesale. expectedVersion 0 creates a
// first profile; otherwise it must match the currently stored version or
// the save fails with db.ErrConflict, which callers should surface as a
// retryable conflict rather than a fatal error.
//
// An invalid document is not an error: the result carries the full list
// of violations so the caller can show all of them at once.
func SaveProfile(ctx context.Context, store db.ProfileStore, logger *zap.Logger, doc model.ProfileDocument, expectedVersion int64) (*SaveProfileResult, error) {
	if doc.VolunteerID == "" {
		return nil, fmt.Errorf("volunteer ID is required")
	}

	logger.Debug("Validating availability profile",
		zap.String("volunteer_id", doc.VolunteerID),
		zap.String("mode", doc.Mode))

	validation := availability.ValidateDocument(doc)
	if !validation.IsValid {
		logger.Info("Profile rejected by validation",
			zap.String("volunteer_id", doc.VolunteerID),
			zap.Int("error_count", len(validation.Errors)))
		return &SaveProfileResult{Validation: validation}, nil
	}

	rec := &db.ProfileRecord{
		VolunteerID: doc.VolunteerID,
		Document:    doc,
	}

	version, err := store.ReplaceProfile(ctx, rec, expectedVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to replace profile: %w", err)
	}

	logger.Info("Profile saved",
		zap.String("volunteer_id", doc.VolunteerID),
		zap.String("mode", doc.Mode),
		zap.Int64("version", version))

	return &SaveProfileResult{Validation: validation, Version: version}, nil
}

// DeleteProfile removes the volunteer's profile. Their unavailability
// periods are deliberately left in place; those have their own lifecycle.
func DeleteProfile(ctx context.Context, store db.ProfileStore, logger *zap.Logger, volunteerID string) error {
	if err := store.DeleteProfile(ctx, volunteerID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	logger.Info("Profile deleted", zap.String("volunteer_id", volunteerID))
	return nil
}
