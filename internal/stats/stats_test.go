package stats

import (
	"encoding/xml"
	"math"
	"testing"

	"github.com/cvat-tools/cvatkit/internal/cvat"
)

func shape(kind, label, points string) cvat.Shape {
	return cvat.Shape{
		XMLName: xml.Name{Local: kind},
		Label:   label,
		Points:  points,
	}
}

func sampleDoc() *cvat.Document {
	return &cvat.Document{
		Images: []cvat.Image{
			{ID: 0, Name: "a.jpg", Width: 100, Height: 100, Shapes: []cvat.Shape{
				shape("polygon", "Car", "10,10;50,10;50,50;10,50"),
				shape("box", "Plate", ""),
			}},
			{ID: 1, Name: "b.jpg", Width: 200, Height: 150, Shapes: []cvat.Shape{
				shape("polygon", "Car", "0,0;10,0;0,10"),
				shape("polygon", "Dog", "0,0;20,0;20,10;0,10"),
			}},
			{ID: 2, Name: "c.jpg", Width: 50, Height: 50},
		},
	}
}

func TestSummarizeCounts(t *testing.T) {
	s := Summarize(sampleDoc())

	if s.Images != 3 {
		t.Errorf("Expected 3 images, got %d", s.Images)
	}
	if s.AnnotatedImages != 2 {
		t.Errorf("Expected 2 annotated images, got %d", s.AnnotatedImages)
	}
	if s.UnannotatedImages != 1 {
		t.Errorf("Expected 1 unannotated image, got %d", s.UnannotatedImages)
	}
	if s.Figures != 4 {
		t.Errorf("Expected 4 figures, got %d", s.Figures)
	}
}

func TestSummarizeExtremes(t *testing.T) {
	s := Summarize(sampleDoc())

	if s.LargestName != "b.jpg" || s.LargestCount != 1 {
		t.Errorf("Expected largest b.jpg x1, got %s x%d", s.LargestName, s.LargestCount)
	}
	if s.LargestWidth != 200 || s.LargestHeight != 150 {
		t.Errorf("Expected largest 200x150, got %dx%d", s.LargestWidth, s.LargestHeight)
	}
	if s.SmallestName != "c.jpg" || s.SmallestCount != 1 {
		t.Errorf("Expected smallest c.jpg x1, got %s x%d", s.SmallestName, s.SmallestCount)
	}
	if s.SmallestWidth != 50 || s.SmallestHeight != 50 {
		t.Errorf("Expected smallest 50x50, got %dx%d", s.SmallestWidth, s.SmallestHeight)
	}
}

func TestSummarizeExtremeTies(t *testing.T) {
	doc := &cvat.Document{
		Images: []cvat.Image{
			{Name: "x.jpg", Width: 10, Height: 10},
			{Name: "y.jpg", Width: 10, Height: 10},
		},
	}
	s := Summarize(doc)

	if s.LargestCount != 2 || s.SmallestCount != 2 {
		t.Errorf("Expected both records to share the extreme, got %d/%d", s.LargestCount, s.SmallestCount)
	}
	if s.LargestName != "x.jpg" {
		t.Errorf("Expected the first record to be reported, got %s", s.LargestName)
	}
}

func TestSummarizeAreas(t *testing.T) {
	s := Summarize(sampleDoc())

	// Areas: 1600, 50 and 200; the box has no point text and contributes
	// nothing.
	if s.AreaCount != 3 {
		t.Fatalf("Expected 3 measured figures, got %d", s.AreaCount)
	}

	wantMean := 1850.0 / 3.0
	if math.Abs(s.AreaMean-wantMean) > 1e-9 {
		t.Errorf("Expected mean %.4f, got %.4f", wantMean, s.AreaMean)
	}
	if s.AreaMedian != 200 {
		t.Errorf("Expected median 200, got %.4f", s.AreaMedian)
	}
	wantStdDev := math.Sqrt(13155000.0 / 18.0)
	if math.Abs(s.AreaStdDev-wantStdDev) > 1e-9 {
		t.Errorf("Expected std dev %.4f, got %.4f", wantStdDev, s.AreaStdDev)
	}
}

func TestSummarizeSingleArea(t *testing.T) {
	doc := &cvat.Document{
		Images: []cvat.Image{
			{Name: "a.jpg", Width: 100, Height: 100, Shapes: []cvat.Shape{
				shape("polygon", "Car", "10,10;50,10;50,50;10,50"),
			}},
		},
	}
	s := Summarize(doc)

	if s.AreaCount != 1 || s.AreaMean != 1600 || s.AreaMedian != 1600 {
		t.Errorf("Unexpected single-figure stats: %+v", s)
	}
	if s.AreaStdDev != 0 {
		t.Errorf("Expected zero deviation for a single figure, got %f", s.AreaStdDev)
	}
}

func TestSummarizeEmptyDocument(t *testing.T) {
	s := Summarize(&cvat.Document{})

	if s.Images != 0 || s.Figures != 0 || s.AreaCount != 0 {
		t.Errorf("Expected zeroed summary, got %+v", s)
	}
	if s.LargestName != "" {
		t.Errorf("Expected no extreme for an empty document, got %s", s.LargestName)
	}
}

func TestCountLabels(t *testing.T) {
	tallies := CountLabels(sampleDoc())

	want := []Tally{
		{Key: "Car", Count: 2},
		{Key: "Plate", Count: 1},
		{Key: "Dog", Count: 1},
	}
	if len(tallies) != len(want) {
		t.Fatalf("Expected %d tallies, got %d", len(want), len(tallies))
	}
	for i := range want {
		if tallies[i] != want[i] {
			t.Errorf("Tally %d: expected %+v, got %+v", i, want[i], tallies[i])
		}
	}
}

func TestCountShapeTypes(t *testing.T) {
	tallies := CountShapeTypes(sampleDoc())

	want := []Tally{
		{Key: "polygon", Count: 3},
		{Key: "box", Count: 1},
	}
	if len(tallies) != len(want) {
		t.Fatalf("Expected %d tallies, got %d", len(want), len(tallies))
	}
	for i := range want {
		if tallies[i] != want[i] {
			t.Errorf("Tally %d: expected %+v, got %+v", i, want[i], tallies[i])
		}
	}
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name   string
		points []cvat.Point
		want   float64
	}{
		{
			name:   "rectangle",
			points: []cvat.Point{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 50, Y: 50}, {X: 10, Y: 50}},
			want:   1600,
		},
		{
			name:   "triangle",
			points: []cvat.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
			want:   50,
		},
		{
			name:   "clockwise winding",
			points: []cvat.Point{{X: 10, Y: 50}, {X: 50, Y: 50}, {X: 50, Y: 10}, {X: 10, Y: 10}},
			want:   1600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolygonArea(tt.points); got != tt.want {
				t.Errorf("Expected area %.1f, got %.1f", tt.want, got)
			}
		})
	}
}
