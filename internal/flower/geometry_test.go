package flower

import (
	"math"
	"slices"
	"testing"

	"bloom/internal/config"
)

func testGrid(cols, rows int, size float64) config.Grid {
	return config.Grid{Cols: cols, Rows: rows, FlowerSize: size, AlphaValue: 255, FrameRate: 30}
}

func testPalette(t *testing.T, hexes ...string) Palette {
	t.Helper()
	if len(hexes) == 0 {
		hexes = []string{"#2b1055", "#7597de", "#d98cb3"}
	}
	p, err := PaletteFromHex(hexes)
	if err != nil {
		t.Fatalf("PaletteFromHex: %v", err)
	}
	return p
}

func TestNewBuilderRejectsDegenerateGrid(t *testing.T) {
	pal := testPalette(t)
	bad := []config.Grid{
		testGrid(0, 10, 100),
		testGrid(10, 0, 100),
		testGrid(10, 10, 0),
		testGrid(10, 10, -5),
	}
	for _, g := range bad {
		if _, err := NewBuilder(g, pal); err == nil {
			t.Fatalf("NewBuilder accepted degenerate grid %+v", g)
		}
	}
	if _, err := NewBuilder(testGrid(1, 1, 1), pal); err != nil {
		t.Fatalf("NewBuilder rejected minimal valid grid: %v", err)
	}
}

func TestRebuildCounts(t *testing.T) {
	b, err := NewBuilder(testGrid(7, 5, 150), testPalette(t))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	if err := b.Rebuild(DefaultParams()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if got, want := len(b.Faces()), 2*5*7; got != want {
		t.Fatalf("face count = %d, want %d", got, want)
	}
	if got, want := len(b.Vertices()), (5+1)*(7+1); got != want {
		t.Fatalf("vertex count = %d, want %d", got, want)
	}
}

func TestRebuildDeterministic(t *testing.T) {
	b, err := NewBuilder(testGrid(12, 8, 200), testPalette(t))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	p := DefaultParams()
	if err := b.Rebuild(p); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	faces := append([]Face(nil), b.Faces()...)
	verts := append([]Vertex(nil), b.Vertices()...)

	if err := b.Rebuild(p); err != nil {
		t.Fatalf("second Rebuild: %v", err)
	}
	if !slices.Equal(faces, b.Faces()) {
		t.Fatal("rebuild with identical parameters not bit-identical for faces")
	}
	if !slices.Equal(verts, b.Vertices()) {
		t.Fatal("rebuild with identical parameters not bit-identical for vertices")
	}
}

func TestColorChannelsInRange(t *testing.T) {
	b, err := NewBuilder(testGrid(16, 10, 250), testPalette(t))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	params := []ShapeParams{
		DefaultParams(),
		{Opening: 0.5, Density: 1, Align: 4, Curve1: 4, Curve2: 4, RotationSpeed: 0},
		{Opening: 4, Density: 12, Align: 0, Curve1: 0, Curve2: 0, RotationSpeed: 4},
	}
	for _, p := range params {
		if err := b.Rebuild(p); err != nil {
			t.Fatalf("Rebuild(%+v): %v", p, err)
		}
		for i, f := range b.Faces() {
			for _, ch := range [...]float64{f.Color.R, f.Color.G, f.Color.B} {
				if ch < 0 || ch > 1 {
					t.Fatalf("face %d color channel %g out of [0,1] for params %+v", i, ch, p)
				}
			}
		}
	}
}

func TestFlatApexScenario(t *testing.T) {
	grid := testGrid(4, 2, 100)
	b, err := NewBuilder(grid, testPalette(t))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	p := ShapeParams{Opening: 1, Density: 5, Align: 1, Curve1: 0, Curve2: 1, RotationSpeed: 0}
	if err := b.Rebuild(p); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if got, want := len(b.Faces()), 16; got != want {
		t.Fatalf("face count = %d, want %d", got, want)
	}
	for i, v := range b.Vertices() {
		for _, c := range [...]float64{v.X, v.Y, v.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				t.Fatalf("vertex %d has non-finite coordinate %g", i, c)
			}
		}
	}
	// With curve1 = 0 the droop term vanishes; the center row (normalized
	// radius 0) must collapse to the origin.
	stride := grid.Cols + 1
	for tt := 0; tt <= grid.Cols; tt++ {
		v := b.Vertices()[tt]
		if v.X != 0 || v.Y != 0 || v.Z != 0 {
			t.Fatalf("apex vertex %d = %+v, want origin", tt, v)
		}
	}
	// Sanity: the outer row must not be at the origin.
	outer := b.Vertices()[grid.Rows*stride]
	if outer.X == 0 && outer.Y == 0 && outer.Z == 0 {
		t.Fatal("outer-row vertex collapsed to origin")
	}
}

func TestRebuildRejectsNonFinite(t *testing.T) {
	b, err := NewBuilder(testGrid(6, 4, 120), testPalette(t))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	if err := b.Rebuild(DefaultParams()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	before := append([]Face(nil), b.Faces()...)

	bad := DefaultParams()
	bad.Density = math.NaN()
	if err := b.Rebuild(bad); err == nil {
		t.Fatal("Rebuild accepted NaN density")
	}
	if !slices.Equal(before, b.Faces()) {
		t.Fatal("failed rebuild must leave the previous mesh intact")
	}

	bad = DefaultParams()
	bad.Curve1 = math.Inf(1)
	if err := b.Rebuild(bad); err == nil {
		t.Fatal("Rebuild accepted infinite curve1")
	}
}

func TestEaseInOutCubic(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{0.25, 4 * 0.25 * 0.25 * 0.25},
	}
	for _, c := range cases {
		if got := easeInOutCubic(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("easeInOutCubic(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}
