// Package geo provides great-circle distance math and circular-perimeter
// admission checks for the geofenced clock workflow.
package geo

import "math"

// EarthRadiusMeters is the spherical-earth approximation radius.
const EarthRadiusMeters = 6371000

// Circle is a named circular perimeter around a geographic point.
type Circle struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// DistanceMeters returns the haversine distance in meters between two
// latitude/longitude points given in degrees. The result is always finite and
// non-negative for numeric input; NaN inputs are the caller's problem.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// WithinAny reports whether the point falls inside at least one perimeter.
// An empty perimeter list admits unconditionally: no geofencing configured
// means an open policy, not a rejection.
func WithinAny(lat, lng float64, fences []Circle) bool {
	if len(fences) == 0 {
		return true
	}
	for _, f := range fences {
		if DistanceMeters(lat, lng, f.Latitude, f.Longitude) <= f.RadiusMeters {
			return true
		}
	}
	return false
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
