package location

import "time"

// AllowedLocation is a geofence center employees may mark attendance from.
type AllowedLocation struct {
	ID           string
	Name         string
	Address      *string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
