package mask

import (
	"fmt"
	"image"

	"github.com/cvat-tools/cvatkit/internal/cvat"
)

// IgnoreLabel marks a shape as an exclusion region. Pixels it covers are
// punched out of the mask regardless of draw order.
const IgnoreLabel = "Ignore"

// Polygon is a closed contour in integer pixel coordinates. The edge from the
// last point back to the first is implicit.
type Polygon []image.Point

// Regions holds one image's shapes partitioned by label.
type Regions struct {
	Positive []Polygon
	Ignore   []Polygon
}

// BuildRegions partitions shapes into positive and ignore polygons, keeping
// input order within each list. Coordinates are parsed as floats and
// truncated toward zero. A shape with fewer than three points or unparsable
// point text yields a MalformedShapeError and no regions; the caller skips
// the whole image record.
func BuildRegions(shapes []cvat.Shape) (Regions, error) {
	var regions Regions
	for i, shape := range shapes {
		points, err := cvat.ParsePoints(shape.Points)
		if err != nil {
			return Regions{}, &cvat.MalformedShapeError{Index: i, Kind: shape.Type(), Reason: err.Error()}
		}
		if len(points) < 3 {
			return Regions{}, &cvat.MalformedShapeError{
				Index:  i,
				Kind:   shape.Type(),
				Reason: fmt.Sprintf("%d points, need at least 3", len(points)),
			}
		}

		polygon := make(Polygon, len(points))
		for j, p := range points {
			polygon[j] = image.Point{X: int(p.X), Y: int(p.Y)}
		}

		if shape.Label == IgnoreLabel {
			regions.Ignore = append(regions.Ignore, polygon)
		} else {
			regions.Positive = append(regions.Positive, polygon)
		}
	}
	return regions, nil
}
