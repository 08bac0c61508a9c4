package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/db"
)

// AddPeriod stores a blackout period. The date-order check runs before
// the database is touched, so the store is never left holding an invalid
// period.
func (d *DB) AddPeriod(ctx context.Context, period model.UnavailabilityPeriod) error {
	if period.Start.Compare(period.End) > 0 {
		return db.ErrInvalidRange
	}

	id := period.ID
	if id == "" {
		id = uuid.New().String()
	}

	if _, err := d.pool.Exec(ctx, `
		INSERT INTO unavailability_period (id, volunteer_id, start_date, end_date, reason)
		VALUES ($1, $2, $3, $4, $5)
	`, id, period.VolunteerID, period.Start.Time(), period.End.Time(), period.Reason); err != nil {
		return fmt.Errorf("failed to insert unavailability period: %w", err)
	}

	return nil
}

// RemovePeriod deletes a period by id. Deleting an id that does not exist
// is a success, so concurrent removals never surface as failures.
func (d *DB) RemovePeriod(ctx context.Context, volunteerID, periodID string) error {
	if _, err := d.pool.Exec(ctx, `
		DELETE FROM unavailability_period WHERE volunteer_id = $1 AND id = $2
	`, volunteerID, periodID); err != nil {
		return fmt.Errorf("failed to delete unavailability period: %w", err)
	}
	return nil
}

// ListPeriods returns every period for the volunteer, earliest start first
func (d *DB) ListPeriods(ctx context.Context, volunteerID string) ([]model.UnavailabilityPeriod, error) {
	return d.listPeriods(ctx, `
		SELECT id, volunteer_id, start_date, end_date, reason
		FROM unavailability_period
		WHERE volunteer_id = $1
		ORDER BY start_date
	`, volunteerID)
}

// ListActivePeriods returns periods whose end date is on or after asOf
func (d *DB) ListActivePeriods(ctx context.Context, volunteerID string, asOf model.CalendarDate) ([]model.UnavailabilityPeriod, error) {
	return d.listPeriods(ctx, `
		SELECT id, volunteer_id, start_date, end_date, reason
		FROM unavailability_period
		WHERE volunteer_id = $1 AND end_date >= $2
		ORDER BY start_date
	`, volunteerID, asOf.Time())
}

func (d *DB) listPeriods(ctx context.Context, query string, args ...any) ([]model.UnavailabilityPeriod, error) {
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query unavailability periods: %w", err)
	}
	defer rows.Close()

	var periods []model.UnavailabilityPeriod
	for rows.Next() {
		var (
			period     model.UnavailabilityPeriod
			start, end time.Time
		)
		if err := rows.Scan(&period.ID, &period.VolunteerID, &start, &end, &period.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan unavailability period: %w", err)
		}
		period.Start = model.DateOf(start)
		period.End = model.DateOf(end)
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unavailability periods: %w", err)
	}

	return periods, nil
}
