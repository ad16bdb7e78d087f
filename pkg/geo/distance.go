// Package geo provides distance math and the static metro-area tables used by discovery.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Haversine
const EarthRadiusKm = 6371.0

// metersPerDegree approximates one degree of a great circle. It is slightly below the true value
// (~111195 m for EarthRadiusKm), so angular radii derived from it are never too small.
const metersPerDegree = 111000.0

// Box holds the half-sizes of a rectangular pre-filter, in degrees.
// LngDelta of 180 or more means the whole longitude range.
type Box struct {
	LatDelta float64
	LngDelta float64
}

// BoundingBox converts a radius in meters to latitude and longitude deltas around lat.
// The longitude delta is the widest point of the circle, which lies off the center latitude.
// When the circle reaches a pole the longitude delta covers the whole circle.
func BoundingBox(lat, radiusMeters float64) Box {
	latDelta := radiusMeters / metersPerDegree
	if math.Abs(lat)+latDelta >= 90 {
		return Box{LatDelta: latDelta, LngDelta: 180}
	}
	sinLng := math.Sin(deg2rad(latDelta)) / math.Cos(deg2rad(lat))
	if sinLng >= 1 {
		return Box{LatDelta: latDelta, LngDelta: 180}
	}
	return Box{LatDelta: latDelta, LngDelta: rad2deg(math.Asin(sinLng))}
}

// Contains reports whether the point falls within the box centered at (centerLat, centerLng).
// Longitude is compared across the antimeridian.
func (b Box) Contains(centerLat, centerLng, lat, lng float64) bool {
	if lat < centerLat-b.LatDelta || lat > centerLat+b.LatDelta {
		return false
	}
	if b.LngDelta >= 180 {
		return true
	}
	return math.Abs(normalizeLng(lng-centerLng)) <= b.LngDelta
}

// LngRanges returns the longitude intervals covered by centerLng±delta within [-180, 180].
// A box crossing the antimeridian is split in two.
func LngRanges(centerLng, delta float64) [][2]float64 {
	if delta >= 180 {
		return [][2]float64{{-180, 180}}
	}
	centerLng = normalizeLng(centerLng)
	lo, hi := centerLng-delta, centerLng+delta
	switch {
	case lo < -180:
		return [][2]float64{{lo + 360, 180}, {-180, hi}}
	case hi > 180:
		return [][2]float64{{lo, 180}, {-180, hi - 360}}
	default:
		return [][2]float64{{lo, hi}}
	}
}

// normalizeLng wraps a longitude or longitude difference into [-180, 180]
func normalizeLng(lng float64) float64 {
	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return lng - 180
}

// Haversine returns the great-circle distance between two points in km
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func rad2deg(rad float64) float64 {
	return rad * (180 / math.Pi)
}
