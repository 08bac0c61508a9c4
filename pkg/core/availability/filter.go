package availability

import (
	"math"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

// Filter applies the capacity and service-area constraints to a candidate
// that is already known to be time-available. It is checked after the
// schedule: a time-available volunteer can still be rejected for being out
// of range or already at quota. Geography is checked before quota.
func Filter(profile *model.Profile, candidate model.Candidate, dailyPickupCount int) (bool, model.Reason) {
	distanceKm := haversine(
		profile.ServiceArea.Center.Latitude, profile.ServiceArea.Center.Longitude,
		candidate.Location.Latitude, candidate.Location.Longitude,
	)
	if distanceKm > profile.ServiceArea.MaxRadiusKm {
		return false, model.ReasonOutsideServiceArea
	}

	if dailyPickupCount >= profile.Preferences.MaxPickupsPerDay {
		return false, model.ReasonDailyQuotaExceeded
	}

	return true, model.ReasonAvailable
}

// AdmitCandidate is the boolean form of Filter
func AdmitCandidate(profile *model.Profile, candidate model.Candidate, dailyPickupCount int) bool {
	ok, _ := Filter(profile, candidate, dailyPickupCount)
	return ok
}

// haversine calculates the great-circle distance (in km) between two
// lat/lon points
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
