package mask

// Combine clears every positive pixel covered by the ignore canvas, in place,
// and returns the positive canvas. A pixel covered only by an ignore shape
// stays empty, never takes the mask color.
func Combine(positive, ignore *Canvas) *Canvas {
	for y := range positive.H {
		for x := range positive.W {
			if !ignore.Occupied(x, y) {
				continue
			}
			i := positive.pixOffset(x, y)
			positive.Pix[i+0] = 0
			positive.Pix[i+1] = 0
			positive.Pix[i+2] = 0
		}
	}
	return positive
}

// Composite overwrites background pixels with the overlay's color wherever
// any overlay channel is non-zero, in place. Pixels the overlay leaves empty
// keep their background bytes untouched. The two canvases must share
// dimensions.
func Composite(background, overlay *Canvas) {
	for y := range background.H {
		for x := range background.W {
			if !overlay.Occupied(x, y) {
				continue
			}
			i := overlay.pixOffset(x, y)
			o := background.pixOffset(x, y)
			background.Pix[o+0] = overlay.Pix[i+0]
			background.Pix[o+1] = overlay.Pix[i+1]
			background.Pix[o+2] = overlay.Pix[i+2]
		}
	}
}
