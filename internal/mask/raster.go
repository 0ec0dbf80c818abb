package mask

import (
	"math"
	"sort"
)

// Fill rasterizes polygons onto c with col. A pixel is covered when its
// center (x+0.5, y+0.5) lies inside a polygon under the even-odd rule.
// Overlapping polygons paint the same color, so the result is their union.
// Area outside the canvas is clipped silently.
func Fill(c *Canvas, polygons []Polygon, col Color) {
	if c.W == 0 || c.H == 0 {
		return
	}
	for _, polygon := range polygons {
		fillPolygon(c, polygon, col)
	}
}

func fillPolygon(c *Canvas, polygon Polygon, col Color) {
	if len(polygon) < 3 {
		return
	}

	minY, maxY := rowRange(c, polygon)
	var xs []float64
	for y := minY; y <= maxY; y++ {
		// Sample at the pixel-center scanline.
		sy := float64(y) + 0.5

		xs = xs[:0]
		for i, p0 := range polygon {
			p1 := polygon[(i+1)%len(polygon)]
			y0, y1 := float64(p0.Y), float64(p1.Y)
			if (y0 > sy) == (y1 > sy) {
				continue
			}
			x0, x1 := float64(p0.X), float64(p1.X)
			xs = append(xs, x0+(sy-y0)/(y1-y0)*(x1-x0))
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			fillSpan(c, y, xs[i], xs[i+1], col)
		}
	}
}

// rowRange clamps the polygon's vertical extent to the canvas rows.
func rowRange(c *Canvas, polygon Polygon) (int, int) {
	minY, maxY := polygon[0].Y, polygon[0].Y
	for _, p := range polygon[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > c.H-1 {
		maxY = c.H - 1
	}
	return minY, maxY
}

// fillSpan colors the pixels of row y whose centers fall in [x0, x1).
func fillSpan(c *Canvas, y int, x0, x1 float64, col Color) {
	start := int(math.Ceil(x0 - 0.5))
	end := int(math.Ceil(x1-0.5)) - 1
	if start < 0 {
		start = 0
	}
	if end > c.W-1 {
		end = c.W - 1
	}
	for x := start; x <= end; x++ {
		c.Set(x, y, col)
	}
}
