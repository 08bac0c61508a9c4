package availability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

func validDoc() model.ProfileDocument {
	return model.ProfileDocument{
		VolunteerID: "vol-1",
		Mode:        string(model.ModeRecurringWeekly),
		RecurringSchedule: []model.DayScheduleDoc{
			{DayOfWeek: 1, TimeSlots: []model.TimeSlotDoc{{StartTime: "09:00", EndTime: "17:00"}}},
			{DayOfWeek: 3, TimeSlots: []model.TimeSlotDoc{{StartTime: "10:00", EndTime: "14:00"}}},
		},
		ServiceArea: model.ServiceAreaDoc{Center: []float64{36.82, -1.29}, MaxRadiusKm: 15},
		Preferences: model.PreferencesDoc{MaxPickupsPerDay: 2, TransportationMode: "car"},
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	result := ValidateDocument(validDoc())
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateDocument_IsIdempotentOnValidProfiles(t *testing.T) {
	doc := validDoc()
	first := ValidateDocument(doc)
	second := ValidateDocument(doc)

	assert.True(t, first.IsValid)
	assert.True(t, second.IsValid)
	assert.Empty(t, second.Errors)
}

func TestValidateDocument_MissingMode(t *testing.T) {
	doc := validDoc()
	doc.Mode = ""

	result := ValidateDocument(doc)
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], "mode is required")
}

func TestValidateDocument_UnknownMode(t *testing.T) {
	doc := validDoc()
	doc.Mode = "whenever"

	result := ValidateDocument(doc)
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], "unknown availability mode")
}

func TestValidateDocument_PayloadForWrongMode(t *testing.T) {
	doc := validDoc()
	// A recurring profile must not also carry specific dates
	doc.SpecificDates = []model.DateScheduleDoc{
		{Date: "2024-03-04", TimeSlots: []model.TimeSlotDoc{{StartTime: "09:00", EndTime: "12:00"}}},
	}

	result := ValidateDocument(doc)
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], "specificDates is only valid for mode")
}

func TestValidateDocument_AccumulatesAllErrors(t *testing.T) {
	// Several rules broken in one edit: every violation must surface at
	// once, not just the first
	doc := model.ProfileDocument{
		VolunteerID: "vol-1",
		Mode:        string(model.ModeRecurringWeekly),
		RecurringSchedule: []model.DayScheduleDoc{
			{DayOfWeek: 1, TimeSlots: []model.TimeSlotDoc{
				{StartTime: "17:00", EndTime: "09:00"}, // inverted
				{StartTime: "25:00", EndTime: "26:00"}, // malformed
			}},
			{DayOfWeek: 1, TimeSlots: []model.TimeSlotDoc{{StartTime: "09:00", EndTime: "10:00"}}}, // duplicate day
		},
		ServiceArea: model.ServiceAreaDoc{Center: []float64{36.82, -1.29}, MaxRadiusKm: 250}, // radius out of bounds
		Preferences: model.PreferencesDoc{MaxPickupsPerDay: 0, TransportationMode: "rocket"}, // both invalid
	}

	result := ValidateDocument(doc)
	require.False(t, result.IsValid)
	assert.GreaterOrEqual(t, len(result.Errors), 6)

	joined := strings.Join(result.Errors, "\n")
	assert.Contains(t, joined, "radius")
	assert.Contains(t, joined, "max pickups per day")
	assert.Contains(t, joined, "transportation mode")
	assert.Contains(t, joined, "duplicate entry for Monday")
	assert.Contains(t, joined, "start must be before end")
	assert.Contains(t, joined, "invalid time")
}

func TestValidateDocument_ServiceArea(t *testing.T) {
	tests := []struct {
		name   string
		area   model.ServiceAreaDoc
		errHas string
	}{
		{"radius below minimum", model.ServiceAreaDoc{Center: []float64{36.82, -1.29}, MaxRadiusKm: 0.5}, "radius"},
		{"radius above maximum", model.ServiceAreaDoc{Center: []float64{36.82, -1.29}, MaxRadiusKm: 101}, "radius"},
		{"latitude out of bounds", model.ServiceAreaDoc{Center: []float64{36.82, 95}, MaxRadiusKm: 15}, "bounds"},
		{"longitude out of bounds", model.ServiceAreaDoc{Center: []float64{-185, -1.29}, MaxRadiusKm: 15}, "bounds"},
		{"missing coordinate", model.ServiceAreaDoc{Center: []float64{36.82}, MaxRadiusKm: 15}, "pair"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			doc.ServiceArea = tt.area

			result := ValidateDocument(doc)
			require.False(t, result.IsValid)

			found := false
			for _, e := range result.Errors {
				if strings.Contains(e, tt.errHas) {
					found = true
				}
			}
			assert.True(t, found, "expected an error mentioning %q, got %v", tt.errHas, result.Errors)
		})
	}
}

func TestValidateDocument_DateRangePayload(t *testing.T) {
	doc := validDoc()
	doc.Mode = string(model.ModeDateRange)
	doc.RecurringSchedule = nil
	doc.DateRange = &model.DateRangeDoc{
		StartDate:  "2024-04-01",
		EndDate:    "2024-03-01", // inverted
		DaysOfWeek: []int{1, 8},  // 8 out of range
		TimeSlots:  []model.TimeSlotDoc{{StartTime: "09:00", EndTime: "12:00"}},
	}

	result := ValidateDocument(doc)
	require.False(t, result.IsValid)
	assert.Len(t, result.Errors, 2)
}

func TestValidateDocument_SpecificDatesDuplicates(t *testing.T) {
	doc := validDoc()
	doc.Mode = string(model.ModeSpecificDates)
	doc.RecurringSchedule = nil
	doc.SpecificDates = []model.DateScheduleDoc{
		{Date: "2024-03-04", TimeSlots: []model.TimeSlotDoc{{StartTime: "09:00", EndTime: "12:00"}}},
		{Date: "2024-03-04", TimeSlots: []model.TimeSlotDoc{{StartTime: "13:00", EndTime: "15:00"}}},
		{Date: "not-a-date", TimeSlots: []model.TimeSlotDoc{{StartTime: "09:00", EndTime: "12:00"}}},
	}

	result := ValidateDocument(doc)
	require.False(t, result.IsValid)
	assert.Len(t, result.Errors, 2)
}

func TestValidateDocument_AlwaysAvailableWithoutSlots(t *testing.T) {
	doc := validDoc()
	doc.Mode = string(model.ModeAlwaysAvailable)
	doc.RecurringSchedule = nil

	// No bounding window is fine: it means literally any hour
	result := ValidateDocument(doc)
	assert.True(t, result.IsValid)
}
