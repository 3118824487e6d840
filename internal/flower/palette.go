package flower

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered gradient of colors from the flower center outward.
// It is immutable after construction.
type Palette []colorful.Color

// PaletteFromHex parses an ordered list of hex colors ("#rrggbb"). At least
// two entries are required for blending to be meaningful.
func PaletteFromHex(hexes []string) (Palette, error) {
	if len(hexes) < 2 {
		return nil, fmt.Errorf("palette needs at least 2 colors, got %d", len(hexes))
	}
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}

// Blended maps position in [0,1) onto the gradient: the position selects an
// adjacent pair of palette entries and linearly interpolates between them
// per channel.
func (p Palette) Blended(position float64) colorful.Color {
	if position < 0 {
		position = 0
	}
	mapped := position * float64(len(p)-1)
	i0 := int(mapped)
	if i0 > len(p)-1 {
		i0 = len(p) - 1
	}
	i1 := i0 + 1
	if i1 > len(p)-1 {
		i1 = len(p) - 1
	}
	return p[i0].BlendRgb(p[i1], mapped-float64(i0))
}
