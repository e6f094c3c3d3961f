package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/1F47E/geo-bounds/pkg/models"
)

// Bound returns the orb bound of the box. The bound of a box crossing
// the antimeridian keeps the crossed west/east values as they are.
func Bound(box models.BoundingBox) orb.Bound {
	return orb.Bound{
		Min: orb.Point{box.West, box.South},
		Max: orb.Point{box.East, box.North},
	}
}

// Feature renders the box as a GeoJSON feature. The bbox member is
// [west, south, east, north]. The geometry is a polygon, or a multi
// polygon of both halves when the box crosses the antimeridian.
func Feature(box models.BoundingBox) *geojson.Feature {
	parts := box.Split()

	var geometry orb.Geometry
	if len(parts) == 1 {
		geometry = polygon(parts[0])
	} else {
		mp := make(orb.MultiPolygon, 0, len(parts))
		for _, part := range parts {
			mp = append(mp, polygon(part))
		}
		geometry = mp
	}

	f := geojson.NewFeature(geometry)
	f.BBox = geojson.BBox{box.West, box.South, box.East, box.North}
	return f
}

func polygon(box models.BoundingBox) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{box.West, box.South},
		{box.West, box.North},
		{box.East, box.North},
		{box.East, box.South},
		{box.West, box.South},
	}}
}
