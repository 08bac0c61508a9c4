package model

import (
	"fmt"
	"strconv"
	"time"
)

// DayOfWeek is a day of the week, 0 (Sunday) through 6 (Saturday).
// The numbering matches time.Weekday.
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// IsValid reports whether the day is within [0, 6]
func (d DayOfWeek) IsValid() bool {
	return d >= Sunday && d <= Saturday
}

func (d DayOfWeek) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d]
}

// TimeOfDay is a wall-clock time of day with minute precision.
// The zero value is midnight. Construct from strings with ParseTimeOfDay
// so an out-of-range value cannot exist.
type TimeOfDay struct {
	minutes int // minutes since midnight, [0, 1439]
}

// ParseTimeOfDay parses a 24-hour "HH:MM" string
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: expected 24-hour HH:MM", s)
	}
	h, errH := strconv.Atoi(s[:2])
	m, errM := strconv.Atoi(s[3:])
	if errH != nil || errM != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: expected 24-hour HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: hour must be 00-23 and minute 00-59", s)
	}
	return TimeOfDay{minutes: h*60 + m}, nil
}

// MustTimeOfDay is ParseTimeOfDay that panics on error, for literals in tests
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Minutes returns minutes since midnight
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// Before reports whether t is strictly earlier than other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// CalendarDate is a wall-clock calendar date with no time zone or time-of-day
// component. Construct from strings with ParseCalendarDate.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// ParseCalendarDate parses an ISO "YYYY-MM-DD" date
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD: %w", s, err)
	}
	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// MustCalendarDate is ParseCalendarDate that panics on error, for literals in tests
func MustCalendarDate(s string) CalendarDate {
	d, err := ParseCalendarDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date that the given instant falls on,
// in the instant's own location. An instant exactly at midnight belongs
// to the date it opens, not the previous day.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Time returns the date as a time.Time at midnight UTC
func (d CalendarDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week this date falls on
func (d CalendarDate) Weekday() DayOfWeek {
	return DayOfWeek(d.Time().Weekday())
}

// AddDays returns the date n days after d (n may be negative)
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Compare returns -1 if d is before other, 0 if equal, +1 if after
func (d CalendarDate) Compare(other CalendarDate) int {
	return d.Time().Compare(other.Time())
}

// IsZero reports whether d is the zero value (no date set)
func (d CalendarDate) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d CalendarDate) String() string {
	return d.Time().Format("2006-01-02")
}

// TimeSlot is a half-open window of time within a single day.
// Start is inclusive and End is exclusive so that back-to-back slots
// never both claim the shared boundary minute.
type TimeSlot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeSlot builds a slot from "HH:MM" strings, rejecting malformed
// times and slots that do not run forward within the day
func NewTimeSlot(start, end string) (TimeSlot, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeSlot{}, err
	}
	slot := TimeSlot{Start: s, End: e}
	if !s.Before(e) {
		return TimeSlot{}, fmt.Errorf("invalid time slot %s: start must be before end (no wraparound across midnight)", slot)
	}
	return slot, nil
}

// Contains reports whether t falls inside the slot.
// Inclusive of Start, exclusive of End.
func (s TimeSlot) Contains(t TimeOfDay) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
