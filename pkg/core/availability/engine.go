package availability

import (
	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

// Evaluate decides whether the profile's declared schedule covers the
// candidate slot. Blackout periods are checked first and defeat every
// mode; only then is the mode-specific rule consulted.
//
// Slot containment is inclusive of a slot's start and exclusive of its
// end, so a candidate exactly at a closing time is not available and two
// back-to-back slots cannot both claim the boundary minute.
func Evaluate(profile *model.Profile, periods []model.UnavailabilityPeriod, candidate model.Candidate) model.Verdict {
	if model.AnyPeriodCovers(periods, candidate.Date) {
		return model.Verdict{Available: false, Reason: model.ReasonBlockedByUnavailability}
	}

	if scheduleCovers(profile.Schedule, candidate) {
		return model.Verdict{Available: true, Reason: model.ReasonAvailable}
	}
	return model.Verdict{Available: false, Reason: model.ReasonOutsideSchedule}
}

// scheduleCovers evaluates the mode-specific rule for the candidate.
// A day or date entry with no time slots matches the day but offers no
// open hours, so it never covers anything.
func scheduleCovers(schedule model.Schedule, candidate model.Candidate) bool {
	switch s := schedule.(type) {
	case model.RecurringWeekly:
		slots, ok := s.SlotsFor(candidate.Date.Weekday())
		if !ok {
			return false
		}
		return slotsContain(slots, candidate.Time)

	case model.SpecificDates:
		slots, ok := s.SlotsFor(candidate.Date)
		if !ok {
			return false
		}
		return slotsContain(slots, candidate.Time)

	case model.DateRange:
		if s.Start.Compare(candidate.Date) > 0 || s.End.Compare(candidate.Date) < 0 {
			return false
		}
		if !s.IncludesDay(candidate.Date.Weekday()) {
			return false
		}
		return slotsContain(s.Slots, candidate.Time)

	case model.AlwaysAvailable:
		// No bounding window means literally any hour works
		if len(s.General) == 0 {
			return true
		}
		return slotsContain(s.General, candidate.Time)
	}

	return false
}

// slotsContain reports whether t falls inside at least one slot
func slotsContain(slots []model.TimeSlot, t model.TimeOfDay) bool {
	for _, slot := range slots {
		if slot.Contains(t) {
			return true
		}
	}
	return false
}

// Check is the composed availability query: schedule evaluation first,
// then the capacity and service-area filter. dailyPickupCount is the
// number of pickups already assigned to the volunteer on the candidate's
// date; it is supplied by the caller because this core holds no state.
func Check(profile *model.Profile, periods []model.UnavailabilityPeriod, candidate model.Candidate, dailyPickupCount int) model.Verdict {
	verdict := Evaluate(profile, periods, candidate)
	if !verdict.Available {
		return verdict
	}

	if ok, reason := Filter(profile, candidate, dailyPickupCount); !ok {
		return model.Verdict{Available: false, Reason: reason}
	}

	return verdict
}
