package mask

import (
	"bytes"
	"testing"
)

func TestCombinePunchesHole(t *testing.T) {
	positive := NewCanvas(100, 100)
	ignore := NewCanvas(100, 100)
	Fill(positive, []Polygon{rect(10, 10, 50, 50)}, green)
	Fill(ignore, []Polygon{rect(20, 20, 40, 40)}, green)

	combined := Combine(positive, ignore)

	// 40x40 block minus a 20x20 hole.
	if got := countPixels(combined, green); got != 1200 {
		t.Errorf("Expected 1200 pixels in the ring, got %d", got)
	}
	if !combined.Occupied(15, 15) {
		t.Error("Expected the ring to stay filled")
	}
	if combined.Occupied(20, 20) || combined.Occupied(30, 30) || combined.Occupied(39, 39) {
		t.Error("Expected the hole to be empty")
	}
	if !combined.Occupied(40, 40) {
		t.Error("Expected pixels past the hole to stay filled")
	}
}

func TestCombineIgnoreOnlyPixelsStayEmpty(t *testing.T) {
	positive := NewCanvas(50, 50)
	ignore := NewCanvas(50, 50)
	Fill(ignore, []Polygon{rect(5, 5, 15, 15)}, green)

	combined := Combine(positive, ignore)

	if got := countPixels(combined, green); got != 0 {
		t.Errorf("Expected ignore-only coverage to produce an empty mask, got %d pixels", got)
	}
}

func TestCombineIsIdempotent(t *testing.T) {
	positive := NewCanvas(100, 100)
	ignore := NewCanvas(100, 100)
	Fill(positive, []Polygon{rect(10, 10, 50, 50)}, green)
	Fill(ignore, []Polygon{rect(20, 20, 40, 40)}, green)

	once := Combine(positive.Clone(), ignore)
	twice := Combine(Combine(positive.Clone(), ignore), ignore)

	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Error("Expected combining twice to equal combining once")
	}

	// Combining with an empty ignore canvas changes nothing either.
	again := Combine(once.Clone(), NewCanvas(100, 100))
	if !bytes.Equal(once.Pix, again.Pix) {
		t.Error("Expected an empty ignore canvas to leave the mask unchanged")
	}
}

func TestCombineReturnsPositiveCanvas(t *testing.T) {
	positive := NewCanvas(10, 10)
	combined := Combine(positive, NewCanvas(10, 10))
	if combined != positive {
		t.Error("Expected Combine to modify the positive canvas in place")
	}
}

func TestCompositeReplacesOnlyMaskedPixels(t *testing.T) {
	background := NewCanvas(30, 30)
	for y := range background.H {
		for x := range background.W {
			background.Set(x, y, Color{R: uint8(x * 7), G: uint8(y * 5), B: uint8(x + y)})
		}
	}
	original := background.Clone()

	overlay := NewCanvas(30, 30)
	Fill(overlay, []Polygon{rect(5, 5, 15, 15)}, green)

	Composite(background, overlay)

	for y := range background.H {
		for x := range background.W {
			if overlay.Occupied(x, y) {
				if got := background.At(x, y); got != green {
					t.Fatalf("Pixel (%d,%d): expected mask color, got %+v", x, y, got)
				}
				continue
			}
			if got, want := background.At(x, y), original.At(x, y); got != want {
				t.Fatalf("Pixel (%d,%d): expected untouched background %+v, got %+v", x, y, want, got)
			}
		}
	}
}

func TestCompositeEmptyOverlayLeavesBackgroundBytes(t *testing.T) {
	background := NewCanvas(20, 20)
	for i := range background.Pix {
		background.Pix[i] = uint8(i % 251)
	}
	original := background.Clone()

	Composite(background, NewCanvas(20, 20))

	if !bytes.Equal(background.Pix, original.Pix) {
		t.Error("Expected an empty overlay to leave every background byte identical")
	}
}

func TestCompositeOntoBlack(t *testing.T) {
	overlay := NewCanvas(100, 100)
	Fill(overlay, []Polygon{rect(10, 10, 50, 50)}, green)

	black := NewCanvas(100, 100)
	Composite(black, overlay)

	if !bytes.Equal(black.Pix, overlay.Pix) {
		t.Error("Expected compositing onto black to reproduce the overlay exactly")
	}
}
