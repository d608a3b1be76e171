package kernel

import (
	"errors"
	"fmt"
	"math"

	"quickbasket/internal/pkg/errs"
	"quickbasket/internal/pkg/guard"
)

const (
	// GeoMinLatitude is the minimum valid latitude in degrees.
	GeoMinLatitude float64 = -90
	// GeoMaxLatitude is the maximum valid latitude in degrees.
	GeoMaxLatitude float64 = 90
	// GeoMinLongitude is the minimum valid longitude in degrees.
	GeoMinLongitude float64 = -180
	// GeoMaxLongitude is the maximum valid longitude in degrees.
	GeoMaxLongitude float64 = 180

	// earthRadiusKm is the mean Earth radius used for great-circle distances.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created using the NewGeoPoint constructor to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position as a latitude/longitude pair in degrees.
// GeoPoint is an immutable value object that ensures coordinates are always within
// valid bounds. The zero value is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(point) // Output: GeoPoint(12.971600,77.594600)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [GeoMinLatitude..GeoMaxLatitude] and longitude within
// [GeoMinLongitude..GeoMaxLongitude]. Returns an error if either coordinate is
// outside its valid bounds.
func NewGeoPoint(lat float64, lon float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(lat), point.setLongitude(lon)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lon
}

// String returns a human-readable representation in the format "GeoPoint(lat,lon)".
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

// IsEqual compares two geo points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// DistanceKm calculates the great-circle distance in kilometers between two points
// using the haversine formula. Both points must be properly constructed for the
// calculation to succeed.
//
// Example:
//
//	shop, _ := kernel.NewGeoPoint(12.9716, 77.5946)
//	partner, _ := kernel.NewGeoPoint(12.9352, 77.6245)
//	km, _ := shop.DistanceKm(partner) // ~5.2
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLon := (other.lon - p.lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (p *GeoPoint) setLatitude(lat float64) error {
	if lat < GeoMinLatitude || lat > GeoMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoMinLatitude, GeoMaxLatitude)
	}

	p.lat = lat
	return nil
}

// setLongitude sets the longitude with validation.
func (p *GeoPoint) setLongitude(lon float64) error {
	if lon < GeoMinLongitude || lon > GeoMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lon, GeoMinLongitude, GeoMaxLongitude)
	}

	p.lon = lon
	return nil
}
