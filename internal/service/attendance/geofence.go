package attendance

import (
	"github.com/worklane/jobboard-backend-go/internal/domain/attendance"
	"github.com/worklane/jobboard-backend-go/internal/domain/location"
	"github.com/worklane/jobboard-backend-go/internal/pkg/geo"
)

// match pairs an allowed location with the user's distance from its center.
type match struct {
	Location       location.AllowedLocation
	DistanceMeters float64
}

// InRange reports whether the distance is within the location's radius.
func (m match) InRange() bool {
	return m.DistanceMeters <= m.Location.RadiusMeters
}

// findNearest returns the allowed location closest to the given point. Ties
// keep the first location in input order; the input is never re-sorted. An
// empty location set is a configuration error, distinct from being out of
// range.
func findNearest(lat, lng float64, locations []location.AllowedLocation) (match, error) {
	if len(locations) == 0 {
		return match{}, attendance.ErrNoLocationsConfigured
	}

	nearest := match{
		Location:       locations[0],
		DistanceMeters: geo.DistanceMeters(lat, lng, locations[0].Latitude, locations[0].Longitude),
	}
	for _, loc := range locations[1:] {
		d := geo.DistanceMeters(lat, lng, loc.Latitude, loc.Longitude)
		if d < nearest.DistanceMeters {
			nearest = match{Location: loc, DistanceMeters: d}
		}
	}

	return nearest, nil
}
