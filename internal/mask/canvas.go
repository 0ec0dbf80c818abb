package mask

import "image"

// Canvas is an interleaved 8-bit RGB raster with a stride of 3 bytes per
// pixel. The zero byte pattern is "empty"; every occupancy test in this
// package reads it that way.
type Canvas struct {
	W   int
	H   int
	Pix []uint8
}

// NewCanvas returns a zeroed canvas of the given dimensions.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{W: w, H: h, Pix: make([]uint8, w*h*3)}
}

func (c *Canvas) pixOffset(x, y int) int {
	return (y*c.W + x) * 3
}

// Set writes col at (x, y). Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	i := c.pixOffset(x, y)
	c.Pix[i+0] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
}

// At returns the color at (x, y). Coordinates outside the canvas read as zero.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return Color{}
	}
	i := c.pixOffset(x, y)
	return Color{R: c.Pix[i+0], G: c.Pix[i+1], B: c.Pix[i+2]}
}

// Occupied reports whether any channel at (x, y) is non-zero.
func (c *Canvas) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return false
	}
	i := c.pixOffset(x, y)
	return c.Pix[i+0] != 0 || c.Pix[i+1] != 0 || c.Pix[i+2] != 0
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	pix := make([]uint8, len(c.Pix))
	copy(pix, c.Pix)
	return &Canvas{W: c.W, H: c.H, Pix: pix}
}

// FromImage copies an image into a canvas, dropping any alpha channel.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy())
	for y := range c.H {
		for x := range c.W {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := c.pixOffset(x, y)
			c.Pix[i+0] = uint8(r >> 8)
			c.Pix[i+1] = uint8(g >> 8)
			c.Pix[i+2] = uint8(b >> 8)
		}
	}
	return c
}

// Image converts the canvas to an opaque RGBA image.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.W, c.H))
	for y := range c.H {
		for x := range c.W {
			i := c.pixOffset(x, y)
			o := img.PixOffset(x, y)
			img.Pix[o+0] = c.Pix[i+0]
			img.Pix[o+1] = c.Pix[i+1]
			img.Pix[o+2] = c.Pix[i+2]
			img.Pix[o+3] = 0xff
		}
	}
	return img
}
