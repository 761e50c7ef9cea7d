package geo

import (
	"fmt"
	"math"

	"github.com/ProTechPh/GeoPulse/internal/domain"
)

// Mean Earth radius in meters. Spherical model; the ~0.3% error against an
// ellipsoid is irrelevant at city-scale matching radii.
const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two points using
// the haversine formula.
func DistanceMeters(a, b domain.Location) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// FormatDistance renders meters for short distances and kilometers with two
// decimals beyond 1 km, e.g. "850m" or "3.94km".
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.2fkm", meters/1000)
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
