// Package geo computes the bounding box around a point and radius using
// the inverse Haversine formula on a spherical Earth.
//
// The box corners are the destinations reached from the center at bearings
// of 225° (south-west) and 45° (north-east). Output values are rounded to
// seven decimal places so results are reproducible across platforms.
package geo

import (
	"fmt"
	"math"

	"github.com/1F47E/geo-bounds/pkg/models"
)

const (
	// EarthRadiusKm is the mean Earth radius of the spherical model.
	EarthRadiusKm = 6371.0

	// bearingSWCos is cos(225°). The north-east corner uses its negation.
	bearingSWCos = -math.Sqrt2 / 2

	precision = 1e7
)

// ComputeBoundingBox returns the box whose south-west and north-east
// corners lie radiusKm away from (centerLat, centerLon).
//
// The radius is not range checked. Radii large enough to wrap longitude
// more than once or to cross a pole give undefined results.
func ComputeBoundingBox(centerLat, centerLon, radiusKm float64) (models.BoundingBox, error) {
	return BoundingBoxAround(models.Location{Lat: centerLat, Lon: centerLon}, radiusKm)
}

// BoundingBoxAround is ComputeBoundingBox for a Location.
func BoundingBoxAround(center models.Location, radiusKm float64) (models.BoundingBox, error) {
	if err := center.Validate(); err != nil {
		return models.BoundingBox{}, fmt.Errorf("invalid center: %w", err)
	}

	latRad := toRadians(center.Lat)
	lonRad := toRadians(center.Lon)
	angular := radiusKm / EarthRadiusKm

	latSin := math.Sin(latRad)
	angCos := math.Cos(angular)

	latSinAngCos := latSin * angCos
	offset := math.Cos(latRad) * math.Sin(angular) * bearingSWCos

	coef1 := latSinAngCos + offset
	coef2 := latSinAngCos - offset

	south := math.Asin(coef1)
	north := math.Asin(coef2)
	west := lonRad + math.Atan2(offset, angCos-latSin*coef1)
	east := lonRad + math.Atan2(-offset, angCos-latSin*coef2)

	return models.BoundingBox{
		South: round7(toDegrees(south)),
		West:  round7(wrapLon(toDegrees(west))),
		North: round7(toDegrees(north)),
		East:  round7(wrapLon(toDegrees(east))),
	}, nil
}

// wrapLon applies a single ±360° correction.
func wrapLon(lon float64) float64 {
	switch {
	case lon < models.MinLon:
		return lon + 360
	case lon > models.MaxLon:
		return lon - 360
	}
	return lon
}

// round7 rounds half up to seven decimals. The explicit conversion keeps
// the compiler from fusing the multiply and add.
func round7(v float64) float64 {
	return math.Floor(float64(v*precision)+0.5) / precision
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func toDegrees(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}
