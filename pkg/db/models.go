package db

import (
	"time"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

// ProfileRecord is the persisted form of an availability profile: the
// boundary document plus versioning metadata. The document must have
// passed availability.ValidateDocument before it reaches a store.
type ProfileRecord struct {
	ID          string
	VolunteerID string

	// Version increments on every successful replace; it drives the
	// optimistic-concurrency check in ReplaceProfile
	Version int64

	Document  model.ProfileDocument
	UpdatedAt time.Time
}

// Profile converts the stored document into the domain profile form
func (r *ProfileRecord) Profile() (*model.Profile, error) {
	profile, err := model.BuildProfile(r.Document)
	if err != nil {
		return nil, err
	}
	profile.ID = r.ID
	return profile, nil
}
