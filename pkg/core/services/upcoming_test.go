package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

func slot(start, end string) model.TimeSlot {
	s, err := model.NewTimeSlot(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func windowDates(windows []Window) []string {
	dates := make([]string, 0, len(windows))
	for _, w := range windows {
		dates = append(dates, w.Date.String())
	}
	return dates
}

func TestUpcomingWindows_RecurringWeekly(t *testing.T) {
	profile := &model.Profile{
		VolunteerID: "vol-1",
		Schedule: model.RecurringWeekly{Days: []model.DaySchedule{
			{Day: 1, Slots: []model.TimeSlot{slot("09:00", "12:00")}},
			{Day: 4, Slots: []model.TimeSlot{slot("14:00", "18:00")}},
		}},
	}

	// 2024-03-04 is a Monday
	windows, err := UpcomingWindows(profile, nil, model.MustCalendarDate("2024-03-04"), 14)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2024-03-04", "2024-03-07",
		"2024-03-11", "2024-03-14",
		"2024-03-18",
	}, windowDates(windows))

	require.Len(t, windows[0].Slots, 1)
	assert.Equal(t, "09:00", windows[0].Slots[0].Start.String())
	assert.False(t, windows[0].AllDay)
}

func TestUpcomingWindows_SkipsDaysWithNoHours(t *testing.T) {
	profile := &model.Profile{
		VolunteerID: "vol-1",
		Schedule: model.RecurringWeekly{Days: []model.DaySchedule{
			{Day: 1, Slots: []model.TimeSlot{slot("09:00", "12:00")}},
			{Day: 2, Slots: nil},
		}},
	}

	windows, err := UpcomingWindows(profile, nil, model.MustCalendarDate("2024-03-04"), 7)
	require.NoError(t, err)

	for _, w := range windows {
		assert.Equal(t, model.DayOfWeek(1), w.Date.Weekday())
	}
}

func TestUpcomingWindows_BlackoutSubtractsDates(t *testing.T) {
	profile := &model.Profile{
		VolunteerID: "vol-1",
		Schedule: model.RecurringWeekly{Days: []model.DaySchedule{
			{Day: 1, Slots: []model.TimeSlot{slot("09:00", "12:00")}},
		}},
	}
	periods := []model.UnavailabilityPeriod{{
		ID: "p1", VolunteerID: "vol-1",
		Start: model.MustCalendarDate("2024-03-10"),
		End:   model.MustCalendarDate("2024-03-12"),
	}}

	windows, err := UpcomingWindows(profile, periods, model.MustCalendarDate("2024-03-04"), 14)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-04", "2024-03-18"}, windowDates(windows),
		"the Monday inside the blackout is dropped")
}

func TestUpcomingWindows_SpecificDatesSortedAndClamped(t *testing.T) {
	profile := &model.Profile{
		VolunteerID: "vol-1",
		Schedule: model.SpecificDates{Dates: []model.DateSchedule{
			{Date: model.MustCalendarDate("2024-03-20"), Slots: []model.TimeSlot{slot("09:00", "12:00")}},
			{Date: model.MustCalendarDate("2024-03-06"), Slots: []model.TimeSlot{slot("09:00", "12:00")}},
			{Date: model.MustCalendarDate("2024-06-01"), Slots: []model.TimeSlot{slot("09:00", "12:00")}},
			{Date: model.MustCalendarDate("2024-03-10"), Slots: nil},
		}},
	}

	windows, err := UpcomingWindows(profile, nil, model.MustCalendarDate("2024-03-04"), 28)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-06", "2024-03-20"}, windowDates(windows))
}

func TestUpcomingWindows_DateRangeClampedToHorizon(t *testing.T) {
	profile := &model.Profile{
		VolunteerID: "vol-1",
		Schedule: model.DateRange{
			Start: model.MustCalendarDate("2024-02-01"),
			End:   model.MustCalendarDate("2024-03-08"),
			Days:  []model.DayOfWeek{1, 2, 3, 4, 5},
			Slots: []model.TimeSlot{slot("09:00", "17:00")},
		},
	}

	windows, err := UpcomingWindows(profile, nil, model.MustCalendarDate("2024-03-04"), 28)
	require.NoError(t, err)

	// Only the weekdays between the horizon start and the range's own end
	assert.Equal(t, []string{
		"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08",
	}, windowDates(windows))
}

func TestUpcomingWindows_DateRangeEntirelyInPast(t *testing.T) {
	profile := &model.Profile{
		VolunteerID: "vol-1",
		Schedule: model.DateRange{
			Start: model.MustCalendarDate("2023-01-01"),
			End:   model.MustCalendarDate("2023-02-01"),
			Days:  []model.DayOfWeek{1},
			Slots: []model.TimeSlot{slot("09:00", "17:00")},
		},
	}

	windows, err := UpcomingWindows(profile, nil, model.MustCalendarDate("2024-03-04"), 28)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestUpcomingWindows_AlwaysAvailable(t *testing.T) {
	t.Run("no general hours means all day", func(t *testing.T) {
		profile := &model.Profile{VolunteerID: "vol-1", Schedule: model.AlwaysAvailable{}}

		windows, err := UpcomingWindows(profile, nil, model.MustCalendarDate("2024-03-04"), 3)
		require.NoError(t, err)

		require.Len(t, windows, 4, "both horizon endpoints are included")
		for _, w := range windows {
			assert.True(t, w.AllDay)
			assert.Empty(t, w.Slots)
		}
	})

	t.Run("general hours bound every day", func(t *testing.T) {
		profile := &model.Profile{
			VolunteerID: "vol-1",
			Schedule:    model.AlwaysAvailable{General: []model.TimeSlot{slot("08:00", "20:00")}},
		}

		windows, err := UpcomingWindows(profile, nil, model.MustCalendarDate("2024-03-04"), 3)
		require.NoError(t, err)

		require.NotEmpty(t, windows)
		for _, w := range windows {
			assert.False(t, w.AllDay)
			require.Len(t, w.Slots, 1)
		}
	})
}

func TestUpcomingWindows_RejectsNonPositiveHorizon(t *testing.T) {
	profile := &model.Profile{VolunteerID: "vol-1", Schedule: model.AlwaysAvailable{}}

	_, err := UpcomingWindows(profile, nil, model.MustCalendarDate("2024-03-04"), 0)
	assert.Error(t, err)
}
