package attendance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/jobboard-backend-go/internal/domain/attendance"
	"github.com/worklane/jobboard-backend-go/internal/domain/location"
	"github.com/worklane/jobboard-backend-go/internal/pkg/geo"
)

func TestFindNearest_EmptySet(t *testing.T) {
	_, err := findNearest(0, 0, nil)
	assert.True(t, errors.Is(err, attendance.ErrNoLocationsConfigured))

	_, err = findNearest(0, 0, []location.AllowedLocation{})
	assert.True(t, errors.Is(err, attendance.ErrNoLocationsConfigured))
}

func TestFindNearest_SelectsMinimum(t *testing.T) {
	locations := []location.AllowedLocation{
		{Name: "Far Office", Latitude: 1, Longitude: 1, RadiusMeters: 100},
		{Name: "Near Office", Latitude: 0.0001, Longitude: 0, RadiusMeters: 100},
		{Name: "Mid Office", Latitude: 0.5, Longitude: 0.5, RadiusMeters: 100},
	}

	nearest, err := findNearest(0, 0, locations)
	require.NoError(t, err)
	assert.Equal(t, "Near Office", nearest.Location.Name)
}

func TestFindNearest_TieBreakKeepsInputOrder(t *testing.T) {
	// Two locations at the identical center: the first one wins.
	locations := []location.AllowedLocation{
		{Name: "First", Latitude: 10, Longitude: 10, RadiusMeters: 50},
		{Name: "Second", Latitude: 10, Longitude: 10, RadiusMeters: 500},
	}

	nearest, err := findNearest(10.001, 10, locations)
	require.NoError(t, err)
	assert.Equal(t, "First", nearest.Location.Name)
}

func TestMatch_InRangeBoundary(t *testing.T) {
	loc := location.AllowedLocation{Name: "HQ", RadiusMeters: 100}

	assert.True(t, match{Location: loc, DistanceMeters: 0}.InRange())
	assert.True(t, match{Location: loc, DistanceMeters: 100}.InRange())
	assert.False(t, match{Location: loc, DistanceMeters: 100.0001}.InRange())
}

func TestOutOfRange_DeficitIsExact(t *testing.T) {
	// A single allowed location at the origin with a 100 m radius; a user
	// roughly 150 m away must be told the exact shortfall.
	locations := []location.AllowedLocation{
		{Name: "HQ", Latitude: 0, Longitude: 0, RadiusMeters: 100},
	}
	userLat := 150.0 / 111195.0 // ~150 m north of the origin

	nearest, err := findNearest(userLat, 0, locations)
	require.NoError(t, err)
	require.False(t, nearest.InRange())

	wantDistance := geo.DistanceMeters(userLat, 0, 0, 0)
	outErr := &attendance.OutOfRangeError{
		LocationName:   nearest.Location.Name,
		DistanceMeters: nearest.DistanceMeters,
		RadiusMeters:   nearest.Location.RadiusMeters,
	}

	assert.Equal(t, wantDistance, outErr.DistanceMeters)
	assert.InDelta(t, 150, outErr.DistanceMeters, 0.5)
	assert.InDelta(t, 50, outErr.Deficit(), 0.5)
	// The deficit is derived from the unrounded values, not re-measured.
	assert.Equal(t, outErr.DistanceMeters-outErr.RadiusMeters, outErr.Deficit())
}
