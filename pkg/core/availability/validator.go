// Package availability implements the volunteer availability core: the
// schedule validator, the per-candidate query engine, and the capacity and
// service-area filter. Everything here is a pure function over its inputs;
// profiles and override lists are treated as immutable snapshots, so all
// of it is safe to call concurrently.
package availability

import (
	"fmt"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

// ValidateDocument checks an availability profile document against every
// structural invariant and reports all violations together. It never
// returns early on the first problem: a volunteer who breaks several rules
// in one edit needs to see every broken rule at once.
//
// Checks run in a fixed order:
//  1. mode presence and exclusivity
//  2. service area (radius bounds, coordinate bounds)
//  3. preferences (daily pickup quota, transportation mode membership)
//  4. the mode-specific payload
//
// A document with IsValid == false must never be accepted by a store;
// rejecting the write is the caller's job, this function has no side
// effects.
func ValidateDocument(doc model.ProfileDocument) model.ValidationResult {
	var errs []string

	errs = append(errs, validateMode(doc)...)
	errs = append(errs, validateServiceArea(doc.ServiceArea)...)
	errs = append(errs, validatePreferences(doc.Preferences)...)
	errs = append(errs, validateSchedulePayload(doc)...)

	return model.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// validateMode checks that the declared mode is known and that the document
// carries the payload for that mode and no other
func validateMode(doc model.ProfileDocument) []string {
	mode := model.Mode(doc.Mode)
	if doc.Mode == "" {
		return []string{"availability mode is required"}
	}
	if !mode.IsValid() {
		return []string{fmt.Sprintf("unknown availability mode %q", doc.Mode)}
	}

	var errs []string

	// Payload sections present for modes other than the declared one are
	// invariant violations, not data to be silently ignored.
	if mode != model.ModeRecurringWeekly && len(doc.RecurringSchedule) > 0 {
		errs = append(errs, fmt.Sprintf("recurringSchedule is only valid for mode %s", model.ModeRecurringWeekly))
	}
	if mode != model.ModeSpecificDates && len(doc.SpecificDates) > 0 {
		errs = append(errs, fmt.Sprintf("specificDates is only valid for mode %s", model.ModeSpecificDates))
	}
	if mode != model.ModeDateRange && doc.DateRange != nil {
		errs = append(errs, fmt.Sprintf("dateRange is only valid for mode %s", model.ModeDateRange))
	}
	if mode != model.ModeAlwaysAvailable && len(doc.GeneralTimeSlots) > 0 {
		errs = append(errs, fmt.Sprintf("generalTimeSlots is only valid for mode %s", model.ModeAlwaysAvailable))
	}

	// The declared mode must come with its payload. AlwaysAvailable is the
	// exception: its bounding slots are optional.
	switch mode {
	case model.ModeRecurringWeekly:
		if len(doc.RecurringSchedule) == 0 {
			errs = append(errs, "recurring_weekly mode requires at least one weekday entry")
		}
	case model.ModeSpecificDates:
		if len(doc.SpecificDates) == 0 {
			errs = append(errs, "specific_dates mode requires at least one date entry")
		}
	case model.ModeDateRange:
		if doc.DateRange == nil {
			errs = append(errs, "date_range mode requires a dateRange section")
		}
	}

	return errs
}

func validateServiceArea(area model.ServiceAreaDoc) []string {
	var errs []string

	if len(area.Center) != 2 {
		errs = append(errs, fmt.Sprintf("service area center must be a [longitude, latitude] pair, got %d values", len(area.Center)))
	} else {
		point := model.GeoPoint{Longitude: area.Center[0], Latitude: area.Center[1]}
		if !point.InBounds() {
			errs = append(errs, fmt.Sprintf("service area center (%g, %g) is outside valid longitude/latitude bounds", point.Longitude, point.Latitude))
		}
	}

	if area.MaxRadiusKm < model.MinServiceRadiusKm || area.MaxRadiusKm > model.MaxServiceRadiusKm {
		errs = append(errs, fmt.Sprintf("service area radius must be between %g and %g km, got %g", model.MinServiceRadiusKm, model.MaxServiceRadiusKm, area.MaxRadiusKm))
	}

	return errs
}

func validatePreferences(prefs model.PreferencesDoc) []string {
	var errs []string

	if prefs.MaxPickupsPerDay < 1 {
		errs = append(errs, fmt.Sprintf("max pickups per day must be at least 1, got %d", prefs.MaxPickupsPerDay))
	}
	if !model.TransportationMode(prefs.TransportationMode).IsValid() {
		errs = append(errs, fmt.Sprintf("unknown transportation mode %q", prefs.TransportationMode))
	}

	return errs
}

// validateSchedulePayload checks the payload for the declared mode,
// continuing past the first bad slot so every violation surfaces
func validateSchedulePayload(doc model.ProfileDocument) []string {
	var errs []string

	switch model.Mode(doc.Mode) {
	case model.ModeRecurringWeekly:
		seen := make(map[int]bool)
		for _, entry := range doc.RecurringSchedule {
			if !model.DayOfWeek(entry.DayOfWeek).IsValid() {
				errs = append(errs, fmt.Sprintf("day of week %d is out of range [0, 6]", entry.DayOfWeek))
			} else if seen[entry.DayOfWeek] {
				errs = append(errs, fmt.Sprintf("duplicate entry for %s", model.DayOfWeek(entry.DayOfWeek)))
			}
			seen[entry.DayOfWeek] = true
			errs = append(errs, validateSlots(entry.TimeSlots, model.DayOfWeek(entry.DayOfWeek).String())...)
		}

	case model.ModeSpecificDates:
		seen := make(map[string]bool)
		for _, entry := range doc.SpecificDates {
			if _, err := model.ParseCalendarDate(entry.Date); err != nil {
				errs = append(errs, err.Error())
			} else if seen[entry.Date] {
				errs = append(errs, fmt.Sprintf("duplicate entry for date %s", entry.Date))
			}
			seen[entry.Date] = true
			errs = append(errs, validateSlots(entry.TimeSlots, entry.Date)...)
		}

	case model.ModeDateRange:
		if doc.DateRange == nil {
			return nil // already reported by validateMode
		}
		start, startErr := model.ParseCalendarDate(doc.DateRange.StartDate)
		if startErr != nil {
			errs = append(errs, startErr.Error())
		}
		end, endErr := model.ParseCalendarDate(doc.DateRange.EndDate)
		if endErr != nil {
			errs = append(errs, endErr.Error())
		}
		if startErr == nil && endErr == nil && start.Compare(end) > 0 {
			errs = append(errs, fmt.Sprintf("date range start %s must not be after end %s", start, end))
		}
		for _, d := range doc.DateRange.DaysOfWeek {
			if !model.DayOfWeek(d).IsValid() {
				errs = append(errs, fmt.Sprintf("day of week %d is out of range [0, 6]", d))
			}
		}
		errs = append(errs, validateSlots(doc.DateRange.TimeSlots, "date range")...)

	case model.ModeAlwaysAvailable:
		errs = append(errs, validateSlots(doc.GeneralTimeSlots, "general availability")...)
	}

	return errs
}

// validateSlots checks every slot in the list, not just the first bad one
func validateSlots(slots []model.TimeSlotDoc, context string) []string {
	var errs []string
	for _, slot := range slots {
		if _, err := model.NewTimeSlot(slot.StartTime, slot.EndTime); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", context, err))
		}
	}
	return errs
}
