package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cvat-tools/cvatkit/internal/cvat"
)

// Summary holds dataset-level statistics for one annotation document.
type Summary struct {
	Images            int `json:"images"`
	AnnotatedImages   int `json:"annotated_images"`
	UnannotatedImages int `json:"unannotated_images"`
	Figures           int `json:"figures"`

	LargestCount   int    `json:"largest_images"`
	LargestName    string `json:"largest_image"`
	LargestHeight  int    `json:"largest_image_height"`
	LargestWidth   int    `json:"largest_image_width"`
	SmallestCount  int    `json:"smallest_images"`
	SmallestName   string `json:"smallest_image"`
	SmallestHeight int    `json:"smallest_image_height"`
	SmallestWidth  int    `json:"smallest_image_width"`

	AreaCount  int     `json:"figure_area_count"`
	AreaMean   float64 `json:"figure_area_mean"`
	AreaMedian float64 `json:"figure_area_median"`
	AreaStdDev float64 `json:"figure_area_std_dev"`
}

// Tally pairs a key (a label or a shape type) with its occurrence count.
type Tally struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Summarize computes document statistics: record counts, figure counts, the
// extreme image sizes and polygon area moments. An image counts as annotated
// when it has at least one shape. Size extremes compare width*height; the
// reported name and dimensions come from the first record holding the
// extreme, the count says how many records share it.
func Summarize(doc *cvat.Document) Summary {
	s := Summary{Images: len(doc.Images)}
	for i := range doc.Images {
		if n := len(doc.Images[i].Shapes); n > 0 {
			s.AnnotatedImages++
			s.Figures += n
		}
	}
	s.UnannotatedImages = s.Images - s.AnnotatedImages

	if s.Images > 0 {
		largest, n := extreme(doc.Images, func(a, b int) bool { return a > b })
		s.LargestCount = n
		s.LargestName = largest.Name
		s.LargestHeight = largest.Height
		s.LargestWidth = largest.Width

		smallest, n := extreme(doc.Images, func(a, b int) bool { return a < b })
		s.SmallestCount = n
		s.SmallestName = smallest.Name
		s.SmallestHeight = smallest.Height
		s.SmallestWidth = smallest.Width
	}

	areas := Areas(doc)
	if len(areas) > 0 {
		s.AreaCount = len(areas)
		s.AreaMean = stat.Mean(areas, nil)
		// The sample deviation needs at least two figures, else it is NaN.
		if len(areas) > 1 {
			s.AreaStdDev = stat.StdDev(areas, nil)
		}

		sorted := append([]float64(nil), areas...)
		sort.Float64s(sorted)
		s.AreaMedian = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}

	return s
}

func extreme(images []cvat.Image, better func(a, b int) bool) (cvat.Image, int) {
	pick := images[0]
	for _, img := range images[1:] {
		if better(size(img), size(pick)) {
			pick = img
		}
	}
	count := 0
	for _, img := range images {
		if size(img) == size(pick) {
			count++
		}
	}
	return pick, count
}

func size(img cvat.Image) int {
	return img.Height * img.Width
}

// CountLabels tallies shapes by label over the whole document, ordered by
// count descending with ties in first-appearance order.
func CountLabels(doc *cvat.Document) []Tally {
	return countShapes(doc, func(s cvat.Shape) string { return s.Label })
}

// CountShapeTypes tallies shapes by element type (polygon, box, polyline,
// points), ordered like CountLabels.
func CountShapeTypes(doc *cvat.Document) []Tally {
	return countShapes(doc, cvat.Shape.Type)
}

func countShapes(doc *cvat.Document, key func(cvat.Shape) string) []Tally {
	counts := make(map[string]int)
	var order []string
	for i := range doc.Images {
		for _, shape := range doc.Images[i].Shapes {
			k := key(shape)
			if _, seen := counts[k]; !seen {
				order = append(order, k)
			}
			counts[k]++
		}
	}

	tallies := make([]Tally, 0, len(order))
	for _, k := range order {
		tallies = append(tallies, Tally{Key: k, Count: counts[k]})
	}
	sort.SliceStable(tallies, func(i, j int) bool { return tallies[i].Count > tallies[j].Count })
	return tallies
}

// Areas returns the shoelace area of every shape whose point text parses to
// at least three vertices. Shapes that would not rasterize contribute
// nothing.
func Areas(doc *cvat.Document) []float64 {
	var areas []float64
	for i := range doc.Images {
		for _, shape := range doc.Images[i].Shapes {
			points, err := cvat.ParsePoints(shape.Points)
			if err != nil || len(points) < 3 {
				continue
			}
			areas = append(areas, PolygonArea(points))
		}
	}
	return areas
}

// PolygonArea computes the absolute shoelace area of a closed polygon.
func PolygonArea(points []cvat.Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
