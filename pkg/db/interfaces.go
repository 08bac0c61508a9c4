package db

import (
	"context"
	"errors"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

var (
	// ErrNotFound is returned when a volunteer has no stored profile
	ErrNotFound = errors.New("profile not found")

	// ErrConflict is returned when a profile replace carries a stale
	// version. The write is rejected wholesale and the stored profile is
	// unchanged; callers should re-read and retry.
	ErrConflict = errors.New("profile version conflict")

	// ErrInvalidRange is returned when an unavailability period's start
	// date is after its end date. The store is never left holding such a
	// period.
	ErrInvalidRange = errors.New("period start date is after end date")
)

// ProfileStore defines profile persistence. Replace is atomic: either the
// new profile fully replaces the old one or the write fails and the old
// profile is retained unchanged.
type ProfileStore interface {
	// GetProfile returns the volunteer's current profile record, or
	// ErrNotFound if they have never saved one
	GetProfile(ctx context.Context, volunteerID string) (*ProfileRecord, error)

	// ReplaceProfile stores rec wholesale. expectedVersion 0 creates a new
	// profile; a non-zero value must match the stored version or the call
	// fails with ErrConflict. Returns the new version on success.
	ReplaceProfile(ctx context.Context, rec *ProfileRecord, expectedVersion int64) (int64, error)

	// DeleteProfile removes the volunteer's profile. Deleting a profile
	// that does not exist is a no-op. Unavailability periods survive.
	DeleteProfile(ctx context.Context, volunteerID string) error
}

// UnavailabilityStore defines blackout-period persistence. Periods have a
// lifecycle independent of the profile: they may exist with no profile and
// are never cleared by a profile replace.
type UnavailabilityStore interface {
	// AddPeriod stores a new period, failing with ErrInvalidRange if its
	// start date is after its end date
	AddPeriod(ctx context.Context, period model.UnavailabilityPeriod) error

	// RemovePeriod deletes a period by id. Removing an id that does not
	// exist is a success, not an error, so concurrent removal races never
	// surface as user-visible failures.
	RemovePeriod(ctx context.Context, volunteerID, periodID string) error

	// ListPeriods returns every period for the volunteer
	ListPeriods(ctx context.Context, volunteerID string) ([]model.UnavailabilityPeriod, error)

	// ListActivePeriods returns periods that are still in effect as of
	// the given date, i.e. periods whose end date is on or after it
	ListActivePeriods(ctx context.Context, volunteerID string, asOf model.CalendarDate) ([]model.UnavailabilityPeriod, error)
}

// Store combines the two interfaces for callers that hold one database
type Store interface {
	ProfileStore
	UnavailabilityStore
}
