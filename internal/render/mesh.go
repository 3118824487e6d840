//go:build ebiten

package render

import (
	"image/color"

	"bloom/internal/flower"

	"github.com/hajimehoshi/ebiten/v2"
)

// ebiten indexes vertices with uint16, so large grids are flushed in
// batches that stay clear of the 65535 ceiling.
const maxFacesPerBatch = 16000

// MeshPainter rasterizes the projected face list with per-vertex colors.
type MeshPainter struct {
	cam   Camera
	alpha float32

	white  *ebiten.Image
	sorted []ScreenFace
	vs     []ebiten.Vertex
	is     []uint16
}

// NewMeshPainter builds a painter for a view of the given pixel size.
// alphaValue in [0,255] is the global mesh opacity.
func NewMeshPainter(viewW, viewH int, flowerSize float64, alphaValue int) *MeshPainter {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &MeshPainter{
		cam:   NewCamera(viewW, viewH, flowerSize),
		alpha: float32(alphaValue) / 255,
		white: white,
	}
}

// Draw projects, sorts and rasterizes the faces at the given rotation.
func (mp *MeshPainter) Draw(dst *ebiten.Image, faces []flower.Face, rotationDeg float64) {
	mp.sorted = ProjectFaces(mp.sorted, faces, mp.cam, rotationDeg)

	for start := 0; start < len(mp.sorted); start += maxFacesPerBatch {
		end := start + maxFacesPerBatch
		if end > len(mp.sorted) {
			end = len(mp.sorted)
		}
		mp.drawBatch(dst, mp.sorted[start:end])
	}
}

func (mp *MeshPainter) drawBatch(dst *ebiten.Image, batch []ScreenFace) {
	need := len(batch) * 3
	if cap(mp.vs) < need {
		mp.vs = make([]ebiten.Vertex, need)
		mp.is = make([]uint16, need)
		for i := range mp.is {
			mp.is[i] = uint16(i)
		}
	}
	vs := mp.vs[:need]
	for i, f := range batch {
		r, g, b := float32(f.R), float32(f.G), float32(f.B)
		for j, pt := range [3][2]float64{{f.X1, f.Y1}, {f.X2, f.Y2}, {f.X3, f.Y3}} {
			v := &vs[i*3+j]
			v.DstX = float32(pt[0])
			v.DstY = float32(pt[1])
			v.SrcX = 0.5
			v.SrcY = 0.5
			v.ColorR = r
			v.ColorG = g
			v.ColorB = b
			v.ColorA = mp.alpha
		}
	}
	op := &ebiten.DrawTrianglesOptions{}
	dst.DrawTriangles(vs, mp.is[:need], mp.white, op)
}
