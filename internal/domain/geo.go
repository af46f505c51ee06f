package domain

import "math"

type Coords struct{ Lat, Lon float64 }

const earthRadiusMeters = 6371000

// DistanceMeters is the great-circle (haversine) distance between two
// coordinates, in meters.
func (a Coords) DistanceMeters(b Coords) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	deltaPhi := (b.Lat - a.Lat) * math.Pi / 180
	deltaLambda := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
