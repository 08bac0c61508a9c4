package model

import (
	"fmt"
)

// ProfileDocument is the plain structured-data form of a profile as it
// crosses the boundary into this core: dates are ISO calendar dates, times
// are 24-hour "HH:MM" strings, coordinates are decimal-degree
// [longitude, latitude] pairs. Because every mode section is optional here,
// a document can be inconsistent in ways a Profile cannot; run it through
// availability.ValidateDocument before calling BuildProfile.
type ProfileDocument struct {
	VolunteerID string `yaml:"volunteerID" json:"volunteer_id"`
	Mode        string `yaml:"mode" json:"mode"`

	RecurringSchedule []DayScheduleDoc  `yaml:"recurringSchedule,omitempty" json:"recurring_schedule,omitempty"`
	SpecificDates     []DateScheduleDoc `yaml:"specificDates,omitempty" json:"specific_dates,omitempty"`
	DateRange         *DateRangeDoc     `yaml:"dateRange,omitempty" json:"date_range,omitempty"`
	GeneralTimeSlots  []TimeSlotDoc     `yaml:"generalTimeSlots,omitempty" json:"general_time_slots,omitempty"`

	ServiceArea ServiceAreaDoc `yaml:"serviceArea" json:"service_area"`
	Preferences PreferencesDoc `yaml:"preferences" json:"preferences"`
	Notes       string         `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// TimeSlotDoc is a time slot as boundary data
type TimeSlotDoc struct {
	StartTime string `yaml:"startTime" json:"start_time"`
	EndTime   string `yaml:"endTime" json:"end_time"`
}

// DayScheduleDoc is one weekday entry of a recurring schedule
type DayScheduleDoc struct {
	DayOfWeek int           `yaml:"dayOfWeek" json:"day_of_week"`
	TimeSlots []TimeSlotDoc `yaml:"timeSlots" json:"time_slots"`
}

// DateScheduleDoc is one explicit-date entry of a specific-dates schedule
type DateScheduleDoc struct {
	Date      string        `yaml:"date" json:"date"`
	TimeSlots []TimeSlotDoc `yaml:"timeSlots" json:"time_slots"`
}

// DateRangeDoc is a bounded date-range schedule as boundary data
type DateRangeDoc struct {
	StartDate  string        `yaml:"startDate" json:"start_date"`
	EndDate    string        `yaml:"endDate" json:"end_date"`
	DaysOfWeek []int         `yaml:"daysOfWeek" json:"days_of_week"`
	TimeSlots  []TimeSlotDoc `yaml:"timeSlots" json:"time_slots"`
}

// ServiceAreaDoc is a service area as boundary data.
// Center is [longitude, latitude].
type ServiceAreaDoc struct {
	Center      []float64 `yaml:"center" json:"center"`
	MaxRadiusKm float64   `yaml:"maxRadiusKm" json:"max_radius_km"`
}

// PreferencesDoc is volunteer preferences as boundary data
type PreferencesDoc struct {
	MaxPickupsPerDay   int    `yaml:"maxPickupsPerDay" json:"max_pickups_per_day"`
	TransportationMode string `yaml:"transportationMode" json:"transportation_mode"`
}

// BuildProfile converts a validated document into a Profile with exactly
// one schedule payload. It re-parses the primitive fields, so a document
// that never went through validation fails here rather than producing an
// inconsistent Profile.
func BuildProfile(doc ProfileDocument) (*Profile, error) {
	schedule, err := buildSchedule(doc)
	if err != nil {
		return nil, err
	}

	if len(doc.ServiceArea.Center) != 2 {
		return nil, fmt.Errorf("service area center must be a [longitude, latitude] pair, got %d values", len(doc.ServiceArea.Center))
	}

	profile := &Profile{
		VolunteerID: doc.VolunteerID,
		Schedule:    schedule,
		ServiceArea: ServiceArea{
			Center: GeoPoint{
				Longitude: doc.ServiceArea.Center[0],
				Latitude:  doc.ServiceArea.Center[1],
			},
			MaxRadiusKm: doc.ServiceArea.MaxRadiusKm,
		},
		Preferences: Preferences{
			MaxPickupsPerDay: doc.Preferences.MaxPickupsPerDay,
			Transportation:   TransportationMode(doc.Preferences.TransportationMode),
		},
		Notes: doc.Notes,
	}

	if !profile.ServiceArea.Center.InBounds() {
		return nil, fmt.Errorf("service area center (%f, %f) is out of coordinate bounds",
			profile.ServiceArea.Center.Longitude, profile.ServiceArea.Center.Latitude)
	}

	return profile, nil
}

// buildSchedule constructs the mode-specific payload for the document's
// declared mode, ignoring any sections belonging to other modes
func buildSchedule(doc ProfileDocument) (Schedule, error) {
	switch Mode(doc.Mode) {
	case ModeRecurringWeekly:
		days := make([]DaySchedule, 0, len(doc.RecurringSchedule))
		for _, entry := range doc.RecurringSchedule {
			day := DayOfWeek(entry.DayOfWeek)
			if !day.IsValid() {
				return nil, fmt.Errorf("day of week %d is out of range [0, 6]", entry.DayOfWeek)
			}
			slots, err := buildSlots(entry.TimeSlots)
			if err != nil {
				return nil, err
			}
			days = append(days, DaySchedule{Day: day, Slots: slots})
		}
		return RecurringWeekly{Days: days}, nil

	case ModeSpecificDates:
		dates := make([]DateSchedule, 0, len(doc.SpecificDates))
		for _, entry := range doc.SpecificDates {
			date, err := ParseCalendarDate(entry.Date)
			if err != nil {
				return nil, err
			}
			slots, err := buildSlots(entry.TimeSlots)
			if err != nil {
				return nil, err
			}
			dates = append(dates, DateSchedule{Date: date, Slots: slots})
		}
		return SpecificDates{Dates: dates}, nil

	case ModeDateRange:
		if doc.DateRange == nil {
			return nil, fmt.Errorf("mode %s requires a dateRange section", doc.Mode)
		}
		start, err := ParseCalendarDate(doc.DateRange.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := ParseCalendarDate(doc.DateRange.EndDate)
		if err != nil {
			return nil, err
		}
		if start.Compare(end) > 0 {
			return nil, fmt.Errorf("date range start %s is after end %s", start, end)
		}
		days := make([]DayOfWeek, 0, len(doc.DateRange.DaysOfWeek))
		for _, d := range doc.DateRange.DaysOfWeek {
			day := DayOfWeek(d)
			if !day.IsValid() {
				return nil, fmt.Errorf("day of week %d is out of range [0, 6]", d)
			}
			days = append(days, day)
		}
		slots, err := buildSlots(doc.DateRange.TimeSlots)
		if err != nil {
			return nil, err
		}
		return DateRange{Start: start, End: end, Days: days, Slots: slots}, nil

	case ModeAlwaysAvailable:
		slots, err := buildSlots(doc.GeneralTimeSlots)
		if err != nil {
			return nil, err
		}
		return AlwaysAvailable{General: slots}, nil
	}

	return nil, fmt.Errorf("unknown availability mode %q", doc.Mode)
}

func buildSlots(docs []TimeSlotDoc) ([]TimeSlot, error) {
	slots := make([]TimeSlot, 0, len(docs))
	for _, d := range docs {
		slot, err := NewTimeSlot(d.StartTime, d.EndTime)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
