package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/db"
)

// GetProfile retrieves the volunteer's current profile record
func (d *DB) GetProfile(ctx context.Context, volunteerID string) (*db.ProfileRecord, error) {
	var (
		rec      db.ProfileRecord
		document []byte
	)

	err := d.pool.QueryRow(ctx, `
		SELECT id, volunteer_id, version, document, updated_at
		FROM availability_profile
		WHERE volunteer_id = $1
	`, volunteerID).Scan(&rec.ID, &rec.VolunteerID, &rec.Version, &document, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	if err := json.Unmarshal(document, &rec.Document); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile document: %w", err)
	}

	return &rec, nil
}

// ReplaceProfile stores the record wholesale. expectedVersion 0 creates a
// new profile; otherwise the stored version must match or the write is
// rejected with db.ErrConflict and the old profile is retained unchanged.
func (d *DB) ReplaceProfile(ctx context.Context, rec *db.ProfileRecord, expectedVersion int64) (int64, error) {
	document, err := json.Marshal(rec.Document)
	if err != nil {
		return 0, fmt.Errorf("failed to encode profile document: %w", err)
	}

	if expectedVersion == 0 {
		id := rec.ID
		if id == "" {
			id = uuid.New().String()
		}
		tag, err := d.pool.Exec(ctx, `
			INSERT INTO availability_profile (id, volunteer_id, version, document)
			VALUES ($1, $2, 1, $3)
			ON CONFLICT (volunteer_id) DO NOTHING
		`, id, rec.VolunteerID, document)
		if err != nil {
			return 0, fmt.Errorf("failed to insert profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			// A profile already exists; the caller's view is stale
			return 0, db.ErrConflict
		}
		return 1, nil
	}

	var newVersion int64
	err = d.pool.QueryRow(ctx, `
		UPDATE availability_profile
		SET version = version + 1, document = $1, updated_at = NOW()
		WHERE volunteer_id = $2 AND version = $3
		RETURNING version
	`, document, rec.VolunteerID, expectedVersion).Scan(&newVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the profile is gone or another save won the race
		return 0, db.ErrConflict
	}
	if err != nil {
		return 0, fmt.Errorf("failed to replace profile: %w", err)
	}

	return newVersion, nil
}

// DeleteProfile removes the volunteer's profile. Deleting a missing
// profile is a no-op; the volunteer's unavailability periods survive.
func (d *DB) DeleteProfile(ctx context.Context, volunteerID string) error {
	if _, err := d.pool.Exec(ctx, `
		DELETE FROM availability_profile WHERE volunteer_id = $1
	`, volunteerID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// compile-time interface checks
var (
	_ db.ProfileStore        = (*DB)(nil)
	_ db.UnavailabilityStore = (*DB)(nil)
)
