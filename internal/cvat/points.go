package cvat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Point is a single annotation vertex in image coordinates.
type Point struct {
	X float64
	Y float64
}

// ParsePoints parses CVAT point text of the form "x,y;x,y;...". Coordinates
// are kept as floats; rounding is the rasterizer's business.
func ParsePoints(text string) ([]Point, error) {
	if text == "" {
		return nil, errors.New("empty points attribute")
	}

	pairs := strings.Split(text, ";")
	points := make([]Point, 0, len(pairs))
	for _, pair := range pairs {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("malformed point %q", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point %q: %w", pair, err)
		}
		points = append(points, Point{X: x, Y: y})
	}

	return points, nil
}
