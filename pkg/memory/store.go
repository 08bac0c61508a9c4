// Package memory provides an in-process implementation of the pkg/db store
// interfaces. It backs tests and CLI dry runs; semantics match the
// postgres implementation exactly, including the optimistic-concurrency
// replace and idempotent period removal.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/db"
)

// Store holds profiles and unavailability periods in memory.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]*db.ProfileRecord            // keyed by volunteer ID
	periods  map[string][]model.UnavailabilityPeriod // keyed by volunteer ID
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		profiles: make(map[string]*db.ProfileRecord),
		periods:  make(map[string][]model.UnavailabilityPeriod),
	}
}

// GetProfile returns a copy of the volunteer's current profile record
func (s *Store) GetProfile(ctx context.Context, volunteerID string) (*db.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.profiles[volunteerID]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

// ReplaceProfile atomically swaps in the new record. A stale
// expectedVersion leaves the stored profile untouched and returns
// db.ErrConflict.
func (s *Store) ReplaceProfile(ctx context.Context, rec *db.ProfileRecord, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.profiles[rec.VolunteerID]

	var currentVersion int64
	if exists {
		currentVersion = existing.Version
	}
	if currentVersion != expectedVersion {
		return 0, db.ErrConflict
	}

	stored := *rec
	if exists {
		stored.ID = existing.ID
	} else if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	stored.Version = currentVersion + 1
	stored.UpdatedAt = time.Now().UTC()

	s.profiles[rec.VolunteerID] = &stored
	return stored.Version, nil
}

// DeleteProfile removes the profile; deleting a missing profile is a no-op.
// The volunteer's unavailability periods are left alone.
func (s *Store) DeleteProfile(ctx context.Context, volunteerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.profiles, volunteerID)
	return nil
}

// AddPeriod stores a blackout period after checking its date order.
// Overlaps with existing periods are permitted; overlapping blackouts act
// as a union.
func (s *Store) AddPeriod(ctx context.Context, period model.UnavailabilityPeriod) error {
	if period.Start.Compare(period.End) > 0 {
		return db.ErrInvalidRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if period.ID == "" {
		period.ID = uuid.New().String()
	}
	s.periods[period.VolunteerID] = append(s.periods[period.VolunteerID], period)
	return nil
}

// RemovePeriod deletes a period by id; a missing id is a success
func (s *Store) RemovePeriod(ctx context.Context, volunteerID, periodID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	periods := s.periods[volunteerID]
	for i, p := range periods {
		if p.ID == periodID {
			s.periods[volunteerID] = append(periods[:i:i], periods[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListPeriods returns every period for the volunteer
func (s *Store) ListPeriods(ctx context.Context, volunteerID string) ([]model.UnavailabilityPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	periods := s.periods[volunteerID]
	out := make([]model.UnavailabilityPeriod, len(periods))
	copy(out, periods)
	return out, nil
}

// ListActivePeriods returns periods whose end date is on or after asOf
func (s *Store) ListActivePeriods(ctx context.Context, volunteerID string, asOf model.CalendarDate) ([]model.UnavailabilityPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.UnavailabilityPeriod
	for _, p := range s.periods[volunteerID] {
		if p.End.Compare(asOf) >= 0 {
			out = append(out, p)
		}
	}
	return out, nil
}
