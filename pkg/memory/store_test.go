package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/db"
)

func testRecord(volunteerID string) *db.ProfileRecord {
	return &db.ProfileRecord{
		VolunteerID: volunteerID,
		Document: model.ProfileDocument{
			VolunteerID: volunteerID,
			Mode:        string(model.ModeAlwaysAvailable),
			ServiceArea: model.ServiceAreaDoc{Center: []float64{36.82, -1.29}, MaxRadiusKm: 15},
			Preferences: model.PreferencesDoc{MaxPickupsPerDay: 2, TransportationMode: "car"},
		},
	}
}

func TestStore_GetProfile_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.GetProfile(context.Background(), "vol-1")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestStore_ReplaceProfile_CreateAndUpdate(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	version, err := store.ReplaceProfile(ctx, testRecord("vol-1"), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	rec, err := store.GetProfile(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version)
	assert.NotEmpty(t, rec.ID)

	// Update with the version just read
	updated := testRecord("vol-1")
	updated.Document.Notes = "prefers mornings"
	version, err = store.ReplaceProfile(ctx, updated, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	rec, err = store.GetProfile(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, "prefers mornings", rec.Document.Notes)
}

func TestStore_ReplaceProfile_StaleVersionConflicts(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.ReplaceProfile(ctx, testRecord("vol-1"), 0)
	require.NoError(t, err)

	// Creating again without re-reading conflicts
	_, err = store.ReplaceProfile(ctx, testRecord("vol-1"), 0)
	assert.ErrorIs(t, err, db.ErrConflict)

	// Stale version conflicts and leaves the stored profile unchanged
	stale := testRecord("vol-1")
	stale.Document.Notes = "should not be written"
	_, err = store.ReplaceProfile(ctx, stale, 7)
	assert.ErrorIs(t, err, db.ErrConflict)

	rec, err := store.GetProfile(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version)
	assert.Empty(t, rec.Document.Notes)
}

func TestStore_DeleteProfile_IsIdempotentAndKeepsPeriods(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.ReplaceProfile(ctx, testRecord("vol-1"), 0)
	require.NoError(t, err)

	require.NoError(t, store.AddPeriod(ctx, model.UnavailabilityPeriod{
		ID:          "p1",
		VolunteerID: "vol-1",
		Start:       model.MustCalendarDate("2024-03-04"),
		End:         model.MustCalendarDate("2024-03-08"),
	}))

	require.NoError(t, store.DeleteProfile(ctx, "vol-1"))
	require.NoError(t, store.DeleteProfile(ctx, "vol-1"), "second delete is a no-op")

	_, err = store.GetProfile(ctx, "vol-1")
	assert.ErrorIs(t, err, db.ErrNotFound)

	// Periods have their own lifecycle and survive the profile
	periods, err := store.ListPeriods(ctx, "vol-1")
	require.NoError(t, err)
	assert.Len(t, periods, 1)
}

func TestStore_AddPeriod_RejectsInvertedRange(t *testing.T) {
	store := NewStore()

	err := store.AddPeriod(context.Background(), model.UnavailabilityPeriod{
		VolunteerID: "vol-1",
		Start:       model.MustCalendarDate("2024-03-08"),
		End:         model.MustCalendarDate("2024-03-04"),
	})
	assert.ErrorIs(t, err, db.ErrInvalidRange)

	periods, err := store.ListPeriods(context.Background(), "vol-1")
	require.NoError(t, err)
	assert.Empty(t, periods, "store is never left holding an invalid period")
}

func TestStore_RemovePeriod_IsIdempotent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.AddPeriod(ctx, model.UnavailabilityPeriod{
		ID:          "p1",
		VolunteerID: "vol-1",
		Start:       model.MustCalendarDate("2024-03-04"),
		End:         model.MustCalendarDate("2024-03-04"),
	}))

	require.NoError(t, store.RemovePeriod(ctx, "vol-1", "p1"))
	require.NoError(t, store.RemovePeriod(ctx, "vol-1", "p1"), "removing twice succeeds")
	require.NoError(t, store.RemovePeriod(ctx, "vol-1", "never-existed"))

	periods, err := store.ListPeriods(ctx, "vol-1")
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestStore_RemovePeriod_LeavesOthersUntouched(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, store.AddPeriod(ctx, model.UnavailabilityPeriod{
			ID:          id,
			VolunteerID: "vol-1",
			Start:       model.MustCalendarDate("2024-03-04"),
			End:         model.MustCalendarDate("2024-03-08"),
		}))
	}

	require.NoError(t, store.RemovePeriod(ctx, "vol-1", "missing-id"))

	periods, err := store.ListPeriods(ctx, "vol-1")
	require.NoError(t, err)
	assert.Len(t, periods, 3, "removing a missing id changes nothing")
}

func TestStore_ListActivePeriods(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	past := model.UnavailabilityPeriod{
		ID: "past", VolunteerID: "vol-1",
		Start: model.MustCalendarDate("2024-01-01"),
		End:   model.MustCalendarDate("2024-01-10"),
	}
	current := model.UnavailabilityPeriod{
		ID: "current", VolunteerID: "vol-1",
		Start: model.MustCalendarDate("2024-02-25"),
		End:   model.MustCalendarDate("2024-03-05"),
	}
	future := model.UnavailabilityPeriod{
		ID: "future", VolunteerID: "vol-1",
		Start: model.MustCalendarDate("2024-04-01"),
		End:   model.MustCalendarDate("2024-04-10"),
	}
	for _, p := range []model.UnavailabilityPeriod{past, current, future} {
		require.NoError(t, store.AddPeriod(ctx, p))
	}

	active, err := store.ListActivePeriods(ctx, "vol-1", model.MustCalendarDate("2024-03-01"))
	require.NoError(t, err)

	ids := make([]string, 0, len(active))
	for _, p := range active {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"current", "future"}, ids)
}
