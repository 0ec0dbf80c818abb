package export

import (
	"github.com/cvat-tools/cvatkit/internal/cvat"
	"github.com/cvat-tools/cvatkit/internal/stats"
)

// ShapeRow is one annotation shape flattened for tabular output.
type ShapeRow struct {
	Image      string    `json:"image" parquet:"image"`
	ImageID    int       `json:"image_id" parquet:"image_id"`
	Width      int       `json:"width" parquet:"width"`
	Height     int       `json:"height" parquet:"height"`
	Type       string    `json:"type" parquet:"type"`
	Label      string    `json:"label" parquet:"label"`
	Points     []float64 `json:"points" parquet:"points,list"`
	PointCount int       `json:"point_count" parquet:"point_count"`
	Area       float64   `json:"area" parquet:"area"`
}

// Rows flattens every shape in the document, one row per shape in document
// order. Points are stored as x,y pairs in a flat list; shapes whose point
// text does not parse keep an empty list and a zero area.
func Rows(doc *cvat.Document) []ShapeRow {
	var rows []ShapeRow
	for i := range doc.Images {
		img := &doc.Images[i]
		for _, shape := range img.Shapes {
			row := ShapeRow{
				Image:   img.Name,
				ImageID: img.ID,
				Width:   img.Width,
				Height:  img.Height,
				Type:    shape.Type(),
				Label:   shape.Label,
			}
			if points, err := cvat.ParsePoints(shape.Points); err == nil {
				row.Points = make([]float64, 0, len(points)*2)
				for _, p := range points {
					row.Points = append(row.Points, p.X, p.Y)
				}
				row.PointCount = len(points)
				if len(points) >= 3 {
					row.Area = stats.PolygonArea(points)
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}
