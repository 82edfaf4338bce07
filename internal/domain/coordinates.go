package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

const (
	earthRadiusKM = 6371.0
	kmPerNM       = 1.852
)

func toRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// HaversineNM returns the great-circle distance to other in nautical miles.
func (c Coordinates) HaversineNM(other Coordinates) float64 {
	dLat := toRad(other.Lat - c.Lat)
	dLon := toRad(other.Lon - c.Lon)
	lat1 := toRad(c.Lat)
	lat2 := toRad(other.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	km := 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
	return km / kmPerNM
}
