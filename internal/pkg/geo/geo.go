package geo

import (
	"math"

	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/validator"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CalculateHaversineDistance returns the great-circle distance between two
// coordinates in meters, on a spherical-Earth approximation. Callers must
// not expect sub-meter accuracy.
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // mean Earth radius in meters

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// IsWithinFence reports whether p lies within radiusMeters of at least one
// zone center. An empty zone list means no restriction is configured and
// always passes; with zones present the radius must lie in [1, 1000] meters.
// The boundary is inclusive: a point at exactly radiusMeters is inside.
func IsWithinFence(p Point, zones []Point, radiusMeters float64) (bool, error) {
	if err := validatePoint("point", p); err != nil {
		return false, err
	}
	for _, zone := range zones {
		if err := validatePoint("zone", zone); err != nil {
			return false, err
		}
	}

	if len(zones) == 0 {
		return true, nil
	}

	if !validator.IsValidRadiusMeters(radiusMeters) {
		return false, validator.ValidationErrors{{
			Field:   "radius_meters",
			Message: "radius must be between 1 and 1000 meters",
		}}
	}

	for _, zone := range zones {
		distance := CalculateHaversineDistance(p.Latitude, p.Longitude, zone.Latitude, zone.Longitude)
		if distance <= radiusMeters {
			return true, nil
		}
	}

	return false, nil
}

func validatePoint(field string, p Point) error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(p.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(p.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
