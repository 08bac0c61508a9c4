package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

func TestFilter_ServiceArea(t *testing.T) {
	profile := nairobiProfile(t)

	inRange := model.Candidate{
		Date:     model.MustCalendarDate("2024-03-04"),
		Time:     model.MustTimeOfDay("10:00"),
		Location: nearbyLocation,
	}
	outOfRange := inRange
	outOfRange.Location = farLocation

	ok, reason := Filter(profile, inRange, 0)
	assert.True(t, ok)
	assert.Equal(t, model.ReasonAvailable, reason)

	ok, reason = Filter(profile, outOfRange, 0)
	assert.False(t, ok)
	assert.Equal(t, model.ReasonOutsideServiceArea, reason)
}

func TestFilter_DailyQuotaBoundary(t *testing.T) {
	profile := nairobiProfile(t) // maxPickupsPerDay = 2
	candidate := model.Candidate{
		Date:     model.MustCalendarDate("2024-03-04"),
		Time:     model.MustTimeOfDay("10:00"),
		Location: nearbyLocation,
	}

	// One below quota admits; at quota rejects
	assert.True(t, AdmitCandidate(profile, candidate, 1))
	assert.False(t, AdmitCandidate(profile, candidate, 2))
	assert.False(t, AdmitCandidate(profile, candidate, 3))

	_, reason := Filter(profile, candidate, 2)
	assert.Equal(t, model.ReasonDailyQuotaExceeded, reason)
}

func TestHaversine_KnownDistances(t *testing.T) {
	// Nairobi CBD to Jomo Kenyatta International Airport is about 14 km
	distance := haversine(-1.2864, 36.8172, -1.3192, 36.9278)
	assert.InDelta(t, 13, distance, 2)

	// Same point is zero
	assert.InDelta(t, 0, haversine(-1.29, 36.82, -1.29, 36.82), 0.001)

	// One degree of latitude is about 111 km
	distance = haversine(0, 36.82, 1, 36.82)
	assert.InDelta(t, 111, distance, 1)
}

func TestFilter_BoundaryExactlyAtRadius(t *testing.T) {
	profile := nairobiProfile(t) // 15 km radius

	// About 13 km out: inside
	near := model.Candidate{
		Date:     model.MustCalendarDate("2024-03-04"),
		Time:     model.MustTimeOfDay("10:00"),
		Location: model.GeoPoint{Longitude: 36.82, Latitude: -1.29 + 0.117},
	}
	assert.True(t, AdmitCandidate(profile, near, 0))

	// About 17 km out: outside
	far := near
	far.Location = model.GeoPoint{Longitude: 36.82, Latitude: -1.29 + 0.153}
	assert.False(t, AdmitCandidate(profile, far, 0))
}
