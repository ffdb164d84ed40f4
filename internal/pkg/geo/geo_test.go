package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{-6.2088, 106.8456},
		{90, 0},
		{-90, 180},
	}
	for _, p := range points {
		if d := DistanceMeters(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("DistanceMeters(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	cases := [][4]float64{
		{-6.2088, 106.8456, -6.9175, 107.6191}, // Jakarta - Bandung
		{51.5074, -0.1278, 48.8566, 2.3522},    // London - Paris
		{0, 0, 0.001, 0.001},
	}
	for _, c := range cases {
		ab := DistanceMeters(c[0], c[1], c[2], c[3])
		ba := DistanceMeters(c[2], c[3], c[0], c[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("asymmetric distance: %v vs %v for %v", ab, ba, c)
		}
	}
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		{
			// One degree of latitude along the equator is ~111.19 km on a
			// 6371 km sphere.
			name: "one degree latitude",
			lat1: 0, lon1: 0, lat2: 1, lon2: 0,
			want:      111195,
			tolerance: 50,
		},
		{
			name: "one degree longitude at equator",
			lat1: 0, lon1: 0, lat2: 0, lon2: 1,
			want:      111195,
			tolerance: 50,
		},
		{
			name: "london to paris",
			lat1: 51.5074, lon1: -0.1278, lat2: 48.8566, lon2: 2.3522,
			want:      343500,
			tolerance: 1000,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DistanceMeters(c.lat1, c.lon1, c.lat2, c.lon2)
			if math.Abs(got-c.want) > c.tolerance {
				t.Errorf("DistanceMeters = %v, want %v (±%v)", got, c.want, c.tolerance)
			}
		})
	}
}

func TestDistanceMeters_NonNegative(t *testing.T) {
	cases := [][4]float64{
		{-90, -180, 90, 180},
		{10, 10, 10.0001, 10.0001},
		{0, 179.9999, 0, -179.9999},
	}
	for _, c := range cases {
		if d := DistanceMeters(c[0], c[1], c[2], c[3]); d < 0 {
			t.Errorf("negative distance %v for %v", d, c)
		}
	}
}
