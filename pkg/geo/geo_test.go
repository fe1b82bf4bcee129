package geo

import (
	"math"
	"testing"
)

// offsetNorth shifts a latitude north by roughly the given number of meters.
func offsetNorth(lat float64, meters float64) float64 {
	return lat + (meters/EarthRadiusMeters)*(180/math.Pi)
}

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{33.3152, 44.3661},
		{-45.5, 170.2},
		{89.9, -179.9},
	}
	for _, p := range points {
		if d := DistanceMeters(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("DistanceMeters(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	d1 := DistanceMeters(33.3152, 44.3661, 33.3120, 44.3700)
	d2 := DistanceMeters(33.3120, 44.3700, 33.3152, 44.3661)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// one degree of latitude on the reference sphere is ~111.19 km
	d := DistanceMeters(0, 0, 1, 0)
	want := EarthRadiusMeters * math.Pi / 180
	if math.Abs(d-want) > 1 {
		t.Errorf("DistanceMeters(0,0,1,0) = %v, want ~%v", d, want)
	}
}

func TestDistanceMeters_NonNegative(t *testing.T) {
	pairs := [][4]float64{
		{33.3152, 44.3661, 33.3152, 44.3661},
		{10, 20, -10, -20},
		{-90, 0, 90, 0},
	}
	for _, p := range pairs {
		if d := DistanceMeters(p[0], p[1], p[2], p[3]); d < 0 {
			t.Errorf("negative distance for %v: %v", p, d)
		}
	}
}

func TestWithinAny_EmptyListAdmits(t *testing.T) {
	if !WithinAny(33.3152, 44.3661, nil) {
		t.Error("empty perimeter list should admit any point")
	}
	if !WithinAny(0, 0, []Circle{}) {
		t.Error("empty perimeter slice should admit any point")
	}
}

func TestWithinAny_InsideRadius(t *testing.T) {
	fence := Circle{Latitude: 33.3152, Longitude: 44.3661, RadiusMeters: 100}

	near := offsetNorth(fence.Latitude, 50) // ~50 m away
	if !WithinAny(near, fence.Longitude, []Circle{fence}) {
		t.Error("point 50m from center should be admitted with a 100m radius")
	}

	far := offsetNorth(fence.Latitude, 150) // ~150 m away
	if WithinAny(far, fence.Longitude, []Circle{fence}) {
		t.Error("point 150m from center should be rejected with a 100m radius")
	}
}

func TestWithinAny_AnyOneFenceSuffices(t *testing.T) {
	fences := []Circle{
		{Latitude: 10, Longitude: 10, RadiusMeters: 50},
		{Latitude: 33.3152, Longitude: 44.3661, RadiusMeters: 200},
	}

	// far from the first fence, inside the second
	if !WithinAny(33.3152, 44.3661, fences) {
		t.Error("point inside the second fence should be admitted")
	}

	// outside both
	if WithinAny(-33, -44, fences) {
		t.Error("point outside every fence should be rejected")
	}
}

func TestWithinAny_OnBoundary(t *testing.T) {
	fence := Circle{Latitude: 0, Longitude: 0, RadiusMeters: DistanceMeters(0, 0, 0.001, 0)}
	if !WithinAny(0.001, 0, []Circle{fence}) {
		t.Error("point exactly on the radius should be admitted (<=)")
	}
}
