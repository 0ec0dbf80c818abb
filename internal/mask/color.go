package mask

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB mask color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// ParseHexColor parses a label color of the form "#RRGGBB". The first
// character is a marker and is skipped whatever it is; the remaining six hex
// digits are decoded as two digits per channel.
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 {
		return Color{}, fmt.Errorf("invalid color %q: want a marker followed by six hex digits", s)
	}
	parsed, err := colorful.Hex("#" + s[1:])
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := parsed.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
