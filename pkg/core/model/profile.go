package model

// Mode identifies which kind of schedule a profile declares.
// A profile carries exactly one schedule payload, matching its mode.
type Mode string

const (
	ModeRecurringWeekly Mode = "recurring_weekly"
	ModeSpecificDates   Mode = "specific_dates"
	ModeDateRange       Mode = "date_range"
	ModeAlwaysAvailable Mode = "always_available"
)

// IsValid reports whether the mode is one of the known schedule modes
func (m Mode) IsValid() bool {
	switch m {
	case ModeRecurringWeekly, ModeSpecificDates, ModeDateRange, ModeAlwaysAvailable:
		return true
	}
	return false
}

// Schedule is the mode-specific payload of an availability profile.
// Exactly one concrete variant exists per mode, so a profile can never
// carry data for a mode it did not declare.
type Schedule interface {
	Mode() Mode
}

// DaySchedule binds one day of the week to its open time slots
type DaySchedule struct {
	Day   DayOfWeek
	Slots []TimeSlot
}

// RecurringWeekly repeats the same weekly pattern indefinitely.
// At most one entry per day of the week.
type RecurringWeekly struct {
	Days []DaySchedule
}

func (RecurringWeekly) Mode() Mode { return ModeRecurringWeekly }

// SlotsFor returns the slots declared for the given weekday and whether
// the weekday has an entry at all
func (r RecurringWeekly) SlotsFor(day DayOfWeek) ([]TimeSlot, bool) {
	for _, d := range r.Days {
		if d.Day == day {
			return d.Slots, true
		}
	}
	return nil, false
}

// DateSchedule binds one explicit calendar date to its open time slots
type DateSchedule struct {
	Date  CalendarDate
	Slots []TimeSlot
}

// SpecificDates lists explicit calendar dates; dates are unique
type SpecificDates struct {
	Dates []DateSchedule
}

func (SpecificDates) Mode() Mode { return ModeSpecificDates }

// SlotsFor returns the slots declared for the given date and whether the
// date has an entry at all
func (s SpecificDates) SlotsFor(date CalendarDate) ([]TimeSlot, bool) {
	for _, d := range s.Dates {
		if d.Date.Compare(date) == 0 {
			return d.Slots, true
		}
	}
	return nil, false
}

// DateRange covers a bounded run of dates, restricted to certain weekdays
// and time slots within those days
type DateRange struct {
	Start CalendarDate
	End   CalendarDate
	Days  []DayOfWeek
	Slots []TimeSlot
}

func (DateRange) Mode() Mode { return ModeDateRange }

// IncludesDay reports whether the given weekday is part of the range
func (r DateRange) IncludesDay(day DayOfWeek) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}

// AlwaysAvailable means any date works. General, when non-empty, bounds
// the acceptable hours of the day; empty means literally any hour.
type AlwaysAvailable struct {
	General []TimeSlot
}

func (AlwaysAvailable) Mode() Mode { return ModeAlwaysAvailable }

// TransportationMode is how a volunteer travels to pickups
type TransportationMode string

const (
	TransportWalking    TransportationMode = "walking"
	TransportBicycle    TransportationMode = "bicycle"
	TransportMotorcycle TransportationMode = "motorcycle"
	TransportCar        TransportationMode = "car"
	TransportVan        TransportationMode = "van"
)

// IsValid reports whether the transportation mode is a known value
func (t TransportationMode) IsValid() bool {
	switch t {
	case TransportWalking, TransportBicycle, TransportMotorcycle, TransportCar, TransportVan:
		return true
	}
	return false
}

// GeoPoint is a WGS84 coordinate pair in decimal degrees
type GeoPoint struct {
	Longitude float64
	Latitude  float64
}

// InBounds reports whether the coordinates are within valid
// longitude/latitude ranges
func (p GeoPoint) InBounds() bool {
	return p.Longitude >= -180 && p.Longitude <= 180 &&
		p.Latitude >= -90 && p.Latitude <= 90
}

// Service-area radius bounds in kilometres
const (
	MinServiceRadiusKm = 1.0
	MaxServiceRadiusKm = 100.0
)

// ServiceArea is the geographic disc a volunteer is willing to travel within
type ServiceArea struct {
	Center      GeoPoint
	MaxRadiusKm float64
}

// Preferences are the volunteer's capacity and travel settings
type Preferences struct {
	MaxPickupsPerDay int
	Transportation   TransportationMode
}

// Profile is a volunteer's declared availability rule-set. It is owned by
// exactly one volunteer and replaced wholesale on update. Callers must
// treat it as an immutable value: queries take a snapshot and never
// mutate it, so a single profile is safe to evaluate concurrently.
type Profile struct {
	ID          string
	VolunteerID string
	Schedule    Schedule
	ServiceArea ServiceArea
	Preferences Preferences

	// Notes is advisory free text shown to dispatchers. Never evaluated.
	Notes string
}
