// Package emergency — geo helpers for the nearest-hospital lookup.
package emergency

import (
	"math"

	"careride/internal/catalog"
	"careride/internal/types"
)

const earthRadiusMeters = 6371000.0

// haversineMeters returns the great-circle distance in meters between two
// points specified in decimal degrees.
func haversineMeters(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// nearestHospital scans the whole catalog. Strict-less comparison keeps the
// earliest entry on distance ties. Linear scan is fine at catalog size; any
// future spatial index must keep the same global-nearest semantics.
func nearestHospital(pos types.Point, hospitals []catalog.Hospital) catalog.Hospital {
	best := hospitals[0]
	bestDist := math.Inf(1)
	for _, h := range hospitals {
		if d := haversineMeters(pos, h.Location); d < bestDist {
			best = h
			bestDist = d
		}
	}
	return best
}
