package model

// UnavailabilityPeriod is an explicit blackout date range that overrides a
// volunteer's base profile regardless of its mode. Periods have their own
// lifecycle: they can exist with no profile and survive a profile replace.
// Overlapping periods are permitted and act as a union of blocked dates.
type UnavailabilityPeriod struct {
	ID          string
	VolunteerID string
	Start       CalendarDate
	End         CalendarDate

	// Reason is optional free text ("on leave", "travelling"), never evaluated
	Reason string
}

// Covers reports whether the given date falls inside the period.
// Both bounds are inclusive: a one-day blackout has Start == End.
func (p UnavailabilityPeriod) Covers(date CalendarDate) bool {
	return p.Start.Compare(date) <= 0 && p.End.Compare(date) >= 0
}

// AnyPeriodCovers reports whether any of the periods cover the given date
func AnyPeriodCovers(periods []UnavailabilityPeriod, date CalendarDate) bool {
	for _, p := range periods {
		if p.Covers(date) {
			return true
		}
	}
	return false
}
