package flower

import (
	"fmt"
	"math"

	"bloom/internal/config"

	"github.com/lucasb-eyer/go-colorful"
)

// Vertex is a single mesh sample point in model space.
type Vertex struct {
	X, Y, Z float64
}

// Face is one colored triangle. Vertices are copied by value, never shared
// between faces or across regenerations.
type Face struct {
	V1, V2, V3 Vertex
	Color      colorful.Color
}

// Builder maps ShapeParams onto a triangulated, colored mesh over a fixed
// radial-angular grid. The vertex grid and face list are rebuilt together
// and replace the previous ones wholesale, so a renderer never observes a
// partially updated mesh.
type Builder struct {
	grid    config.Grid
	palette Palette

	thetaDelta  float64 // degrees per angular step
	radiusDelta float64

	verts []Vertex
	faces []Face
}

// NewBuilder validates the grid and allocates the mesh buffers. The face
// count (2*rows*cols) and vertex count ((rows+1)*(cols+1)) are fixed for
// the builder's lifetime.
func NewBuilder(grid config.Grid, palette Palette) (*Builder, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if len(palette) < 2 {
		return nil, fmt.Errorf("builder needs a palette with at least 2 colors")
	}
	return &Builder{
		grid:        grid,
		palette:     palette,
		thetaDelta:  grid.ThetaDelta(),
		radiusDelta: grid.RadiusDelta(),
		verts:       make([]Vertex, (grid.Rows+1)*(grid.Cols+1)),
		faces:       make([]Face, 2*grid.Rows*grid.Cols),
	}, nil
}

// Grid returns the immutable grid the builder was constructed with.
func (b *Builder) Grid() config.Grid { return b.grid }

// Faces exposes the current face list. The slice is replaced, not patched,
// on every rebuild; callers must treat it as read-only.
func (b *Builder) Faces() []Face { return b.faces }

// Vertices exposes the current vertex grid in row-major order with stride
// cols+1. Read-only, replaced on every rebuild.
func (b *Builder) Vertices() []Vertex { return b.verts }

// SetPalette swaps the color gradient and recolors the existing mesh.
func (b *Builder) SetPalette(palette Palette, p ShapeParams) error {
	if len(palette) < 2 {
		return fmt.Errorf("palette needs at least 2 colors")
	}
	b.palette = palette
	return b.Rebuild(p)
}

// Rebuild regenerates every vertex and face from the given parameters.
// Non-finite parameters abort the rebuild and leave the previous mesh
// intact; the error is non-fatal and callers are expected to log it and
// carry on with the prior geometry.
func (b *Builder) Rebuild(p ShapeParams) error {
	if !p.Finite() {
		return fmt.Errorf("shape parameters must be finite: %+v", p)
	}

	cols, rows := b.grid.Cols, b.grid.Rows
	stride := cols + 1
	verts := make([]Vertex, (rows+1)*stride)
	for r := 0; r <= rows; r++ {
		nr := float64(r) * b.radiusDelta
		for t := 0; t <= cols; t++ {
			verts[r*stride+t] = b.vertexAt(p, nr, t)
		}
	}

	size := b.grid.FlowerSize
	faces := make([]Face, 2*rows*cols)
	fi := 0
	for r := 0; r < rows; r++ {
		rowRadius := float64(r) * b.radiusDelta
		midRadius := (float64(r) + 0.5) * b.radiusDelta
		for t := 0; t < cols; t++ {
			v1 := verts[r*stride+t]
			v2 := verts[r*stride+t+1]
			v3 := verts[(r+1)*stride+t+1]
			v4 := verts[(r+1)*stride+t]

			// Triangle A spans (v1,v2,v4), triangle B spans (v2,v3,v4).
			// Each uses its own average depth, so the two halves of a
			// quad may blend to different colors.
			faces[fi] = Face{
				V1:    v1,
				V2:    v2,
				V3:    v4,
				Color: b.blendedColor((v1.Z+v2.Z+v4.Z)/3, rowRadius, size),
			}
			faces[fi+1] = Face{
				V1:    v2,
				V2:    v3,
				V3:    v4,
				Color: b.blendedColor((v2.Z+v3.Z+v4.Z)/3, midRadius, size),
			}
			fi += 2
		}
	}

	// Swap in the finished mesh only once both passes completed, so a
	// caller holding the previous slices keeps a consistent snapshot.
	b.verts = verts
	b.faces = faces
	return nil
}

// vertexAt derives the model-space position for normalized radius nr and
// angular index t. Phi and thetaDelta are computed in degrees and converted
// to radians at the trig call sites.
func (b *Builder) vertexAt(p ShapeParams, nr float64, t int) Vertex {
	ft := float64(t)

	phiDeg := (180 / p.Opening) * math.Exp(-ft*b.thetaDelta/(p.Density*180))
	phi := phiDeg * math.Pi / 180

	progress := math.Mod(p.Align*ft*b.thetaDelta, 360) / 180
	notch := 1.25*(1-progress)*(1-progress) - 0.25
	petalCut := 1 - 0.5*notch*notch

	hang := p.Curve1 * nr * nr * (p.Curve2*nr - 1) * (p.Curve2*nr - 1) * math.Sin(phi)

	thetaRad := ft * b.thetaDelta * math.Pi / 180
	radial := nr*math.Sin(phi) + hang*math.Cos(phi)

	size := b.grid.FlowerSize
	return Vertex{
		X: size * petalCut * radial * math.Sin(thetaRad),
		Y: -size * petalCut * (nr*math.Cos(phi) - hang*math.Sin(phi)),
		Z: size * petalCut * radial * math.Cos(thetaRad),
	}
}

// blendedColor weighs the face's radial position against its depth, eases
// the result, and samples the palette gradient. The 0.999 ceiling keeps the
// blend from ever collapsing onto the final palette entry exactly.
func (b *Builder) blendedColor(avgZ, radiusFactor, size float64) colorful.Color {
	depthFactor := clamp(mapRange(avgZ, -0.8*size, 0.8*size, 0, 1), 0, 1)
	position := clamp(0.6*radiusFactor+0.4*depthFactor, 0, 1)
	position = clamp(easeInOutCubic(position), 0, 0.999)
	return b.palette.Blended(position)
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func mapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
