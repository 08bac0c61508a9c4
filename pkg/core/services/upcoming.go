package services

import (
	"fmt"
	"sort"

	"github.com/teambition/rrule-go"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

// Window is one concrete dated stretch of availability produced by
// projecting a profile forward. AllDay means any hour of the date works.
type Window struct {
	Date   model.CalendarDate
	Slots  []model.TimeSlot
	AllDay bool
}

// rruleDays maps DayOfWeek (0 = Sunday) to rrule weekdays
var rruleDays = [...]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// UpcomingWindows projects the profile into the concrete dates it covers
// within [from, from+horizonDays], minus any blackout periods. Recurring
// schedules are expanded through recurrence rules; dates whose entries
// declare no open hours are skipped.
func UpcomingWindows(profile *model.Profile, periods []model.UnavailabilityPeriod, from model.CalendarDate, horizonDays int) ([]Window, error) {
	if horizonDays < 1 {
		return nil, fmt.Errorf("horizon must be at least 1 day, got %d", horizonDays)
	}
	until := from.AddDays(horizonDays)

	var windows []Window

	switch s := profile.Schedule.(type) {
	case model.RecurringWeekly:
		var byweekday []rrule.Weekday
		for _, day := range s.Days {
			if len(day.Slots) > 0 {
				byweekday = append(byweekday, rruleDays[day.Day])
			}
		}
		if len(byweekday) == 0 {
			return nil, nil
		}
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   from.Time(),
			Byweekday: byweekday,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build weekly recurrence rule: %w", err)
		}
		for _, occurrence := range rule.Between(from.Time(), until.Time(), true) {
			date := model.DateOf(occurrence)
			slots, _ := s.SlotsFor(date.Weekday())
			windows = append(windows, Window{Date: date, Slots: slots})
		}

	case model.SpecificDates:
		for _, entry := range s.Dates {
			if len(entry.Slots) == 0 {
				continue
			}
			if entry.Date.Compare(from) < 0 || entry.Date.Compare(until) > 0 {
				continue
			}
			windows = append(windows, Window{Date: entry.Date, Slots: entry.Slots})
		}
		sort.Slice(windows, func(i, j int) bool {
			return windows[i].Date.Compare(windows[j].Date) < 0
		})

	case model.DateRange:
		if len(s.Slots) == 0 || len(s.Days) == 0 {
			return nil, nil
		}
		start := s.Start
		if from.Compare(start) > 0 {
			start = from
		}
		end := s.End
		if until.Compare(end) < 0 {
			end = until
		}
		if start.Compare(end) > 0 {
			return nil, nil
		}
		var byweekday []rrule.Weekday
		for _, day := range s.Days {
			byweekday = append(byweekday, rruleDays[day])
		}
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   start.Time(),
			Until:     end.Time(),
			Byweekday: byweekday,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build date-range recurrence rule: %w", err)
		}
		for _, occurrence := range rule.Between(start.Time(), end.Time(), true) {
			windows = append(windows, Window{Date: model.DateOf(occurrence), Slots: s.Slots})
		}

	case model.AlwaysAvailable:
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:    rrule.DAILY,
			Dtstart: from.Time(),
			Until:   until.Time(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build daily recurrence rule: %w", err)
		}
		for _, occurrence := range rule.Between(from.Time(), until.Time(), true) {
			windows = append(windows, Window{
				Date:   model.DateOf(occurrence),
				Slots:  s.General,
				AllDay: len(s.General) == 0,
			})
		}

	default:
		return nil, fmt.Errorf("profile has no schedule payload")
	}

	// Blackout periods subtract whole dates from the projection
	open := windows[:0]
	for _, w := range windows {
		if !model.AnyPeriodCovers(periods, w.Date) {
			open = append(open, w)
		}
	}
	return open, nil
}
