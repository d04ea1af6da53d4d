// Package geo contains pure geospatial math for the tracking estimator:
// haversine distance, ETA heuristic and display formatting.
package geo

import (
	"fmt"
	"math"

	"service/internal/entities"
)

const (
	earthRadiusKm = 6371.0

	// DefaultAvgSpeedKmh is the assumed runner speed for ETA estimates.
	DefaultAvgSpeedKmh = 20.0
)

// DistanceKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func DistanceKm(a, b entities.GeoPoint) float64 {
	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLon := degreesToRadians(b.Longitude - a.Longitude)

	rLat1 := degreesToRadians(a.Latitude)
	rLat2 := degreesToRadians(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// EtaMinutes converts a distance into whole minutes at the given average
// speed. Zero or negative speed falls back to DefaultAvgSpeedKmh.
func EtaMinutes(distanceKm, avgSpeedKmh float64) int {
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = DefaultAvgSpeedKmh
	}
	return int(math.Round(distanceKm / avgSpeedKmh * 60))
}

// Anchor returns the coordinate the runner is currently heading to: the
// dropoff once the package is picked up, the pickup before that.
func Anchor(errand *entities.Errand) entities.Location {
	switch errand.Status {
	case entities.ErrandPickedUp, entities.ErrandOnTheWay:
		return errand.Dropoff
	default:
		return errand.Pickup
	}
}

// FormatDistance renders distances under one kilometre as rounded metres
// and everything else in kilometres with one decimal place.
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%.0f m", distanceKm*1000)
	}
	return fmt.Sprintf("%.1f km", distanceKm)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
