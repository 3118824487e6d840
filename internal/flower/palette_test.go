package flower

import (
	"math"
	"testing"
)

func TestPaletteFromHex(t *testing.T) {
	if _, err := PaletteFromHex([]string{"#ffffff"}); err == nil {
		t.Fatal("accepted single-color palette")
	}
	if _, err := PaletteFromHex([]string{"#ffffff", "not-a-color"}); err == nil {
		t.Fatal("accepted malformed hex color")
	}
	p, err := PaletteFromHex([]string{"#000000", "#ff0000", "#ffffff"})
	if err != nil {
		t.Fatalf("PaletteFromHex: %v", err)
	}
	if len(p) != 3 {
		t.Fatalf("palette length = %d, want 3", len(p))
	}
}

func TestBlendedEndpoints(t *testing.T) {
	p, err := PaletteFromHex([]string{"#000000", "#ffffff"})
	if err != nil {
		t.Fatalf("PaletteFromHex: %v", err)
	}

	// Position 0 must hit the first entry exactly.
	if got := p.Blended(0); got != p[0] {
		t.Fatalf("Blended(0) = %+v, want %+v", got, p[0])
	}

	// The builder clamps eased positions to 0.999, so the blend approaches
	// the last entry without ever reaching it.
	got := p.Blended(0.999)
	if got == p[1] {
		t.Fatal("Blended(0.999) must not equal the final palette entry")
	}
	if math.Abs(got.R-p[1].R) > 0.01 || math.Abs(got.G-p[1].G) > 0.01 || math.Abs(got.B-p[1].B) > 0.01 {
		t.Fatalf("Blended(0.999) = %+v, expected to approach %+v", got, p[1])
	}
}

func TestBlendedMidpoint(t *testing.T) {
	p, err := PaletteFromHex([]string{"#000000", "#ffffff"})
	if err != nil {
		t.Fatalf("PaletteFromHex: %v", err)
	}
	mid := p.Blended(0.5)
	for _, ch := range [...]float64{mid.R, mid.G, mid.B} {
		if math.Abs(ch-0.5) > 1e-9 {
			t.Fatalf("midpoint blend channel = %g, want 0.5", ch)
		}
	}
}
