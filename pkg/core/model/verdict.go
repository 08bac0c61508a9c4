package model

import (
	"fmt"
	"time"
)

// Candidate is a hypothetical pickup slot being tested against a profile:
// an instant (split into its calendar date and time of day) plus the
// pickup location.
type Candidate struct {
	Date     CalendarDate
	Time     TimeOfDay
	Location GeoPoint
}

// CandidateAt builds a candidate from a concrete instant. The instant's
// own wall-clock date and time are used, so midnight belongs to the date
// it opens.
func CandidateAt(instant time.Time, location GeoPoint) Candidate {
	return Candidate{
		Date:     DateOf(instant),
		Time:     TimeOfDay{minutes: instant.Hour()*60 + instant.Minute()},
		Location: location,
	}
}

// ParseCandidate builds a candidate from boundary data: an ISO calendar
// date, a 24-hour "HH:MM" time and a decimal-degree coordinate pair.
// Malformed input is an error, never a false verdict.
func ParseCandidate(date, timeOfDay string, longitude, latitude float64) (Candidate, error) {
	d, err := ParseCalendarDate(date)
	if err != nil {
		return Candidate{}, err
	}
	t, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return Candidate{}, err
	}
	location := GeoPoint{Longitude: longitude, Latitude: latitude}
	if !location.InBounds() {
		return Candidate{}, fmt.Errorf("candidate location (%g, %g) is outside valid longitude/latitude bounds", longitude, latitude)
	}
	return Candidate{Date: d, Time: t, Location: location}, nil
}

// Reason is a machine-checkable verdict reason. The set is closed so
// calling code can branch on it without string matching heuristics.
type Reason string

const (
	ReasonAvailable               Reason = "available"
	ReasonBlockedByUnavailability Reason = "blocked_by_unavailability"
	ReasonOutsideSchedule         Reason = "outside_schedule"
	ReasonOutsideServiceArea      Reason = "outside_service_area"
	ReasonDailyQuotaExceeded      Reason = "daily_quota_exceeded"
)

// Verdict is the result of an availability query for one candidate slot
type Verdict struct {
	Available bool
	Reason    Reason
}

// ValidationResult collects every structural violation found in a profile
// document. Problems are reported together, not one at a time, so a user
// who breaks several rules in one edit sees all of them at once.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}
