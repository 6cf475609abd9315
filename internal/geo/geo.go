package geo

import (
	"context"
	"errors"
	"math"
)

var (
	ErrNoResults = errors.New("no geocoding results")
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Nearby is one agency within a search radius, with its distance from
// the origin.
type Nearby struct {
	AgencyID      string
	DistanceMiles float64
}

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Location, error)
}

// Locator finds agencies near an origin, sorted nearest first.
type Locator interface {
	FindNearby(ctx context.Context, origin Location, radiusMiles float64, limit int) ([]Nearby, error)
}

const earthRadiusMiles = 3958.8

// HaversineMiles returns the great-circle distance between two points.
func HaversineMiles(a, b Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}
