package geo

import (
	"fmt"

	"github.com/1F47E/geo-bounds/pkg/models"
	"github.com/dhconnelly/rtreego"
)

// Rects converts a bounding box into rtreego rectangles over (lat, lon)
// suitable for Rtree.SearchIntersect. A box crossing the antimeridian
// yields two rectangles, one for each side.
//
// rtreego rejects zero-length sides, so a box computed with a zero radius
// returns an error.
func Rects(box models.BoundingBox) ([]*rtreego.Rect, error) {
	parts := box.Split()
	rects := make([]*rtreego.Rect, 0, len(parts))
	for _, part := range parts {
		bottomLeft := rtreego.Point{part.South, part.West}
		rectSize := []float64{part.North - part.South, part.East - part.West}

		rect, err := rtreego.NewRect(bottomLeft, rectSize)
		if err != nil {
			return nil, fmt.Errorf("invalid bounding box: %w", err)
		}
		rects = append(rects, rect)
	}
	return rects, nil
}
