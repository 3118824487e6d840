// Package render projects the flower mesh onto the screen. The projection
// and depth-sort math is plain Go so it stays testable in headless builds;
// the ebiten painter lives behind the ebiten build tag.
package render

import (
	"math"
	"sort"

	"bloom/internal/flower"
)

// Camera holds the fixed viewing transform: the mesh spins about the Y
// axis and is projected with a simple perspective divide.
type Camera struct {
	Distance float64 // eye distance from the model origin
	Focal    float64 // projection scale
	CenterX  float64 // screen center X
	CenterY  float64 // screen center Y
}

// NewCamera frames a flower of the given size inside a view of the given
// pixel dimensions.
func NewCamera(viewW, viewH int, flowerSize float64) Camera {
	return Camera{
		Distance: flowerSize * 4,
		Focal:    flowerSize * 3.2,
		CenterX:  float64(viewW) / 2,
		CenterY:  float64(viewH) / 2,
	}
}

// RotateY spins v around the Y axis by angle degrees.
func RotateY(v flower.Vertex, deg float64) flower.Vertex {
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return flower.Vertex{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Project maps a model-space vertex to screen coordinates.
func (c Camera) Project(v flower.Vertex) (x, y float64) {
	z := v.Z + c.Distance
	if z < 1 {
		z = 1
	}
	return c.CenterX + c.Focal*v.X/z, c.CenterY + c.Focal*v.Y/z
}

// ScreenFace is one projected triangle ready for rasterization, carrying
// its rotated average depth for the painter's sort.
type ScreenFace struct {
	X1, Y1  float64
	X2, Y2  float64
	X3, Y3  float64
	Depth   float64
	R, G, B float64
}

// ProjectFaces rotates, projects and depth-sorts the face list into dst,
// which is grown as needed and returned. Faces are ordered back to front
// so the painter can draw them directly.
func ProjectFaces(dst []ScreenFace, faces []flower.Face, cam Camera, rotationDeg float64) []ScreenFace {
	if cap(dst) < len(faces) {
		dst = make([]ScreenFace, len(faces))
	}
	dst = dst[:len(faces)]
	for i, f := range faces {
		v1 := RotateY(f.V1, rotationDeg)
		v2 := RotateY(f.V2, rotationDeg)
		v3 := RotateY(f.V3, rotationDeg)
		sf := &dst[i]
		sf.X1, sf.Y1 = cam.Project(v1)
		sf.X2, sf.Y2 = cam.Project(v2)
		sf.X3, sf.Y3 = cam.Project(v3)
		sf.Depth = (v1.Z + v2.Z + v3.Z) / 3
		sf.R, sf.G, sf.B = f.Color.R, f.Color.G, f.Color.B
	}
	sort.SliceStable(dst, func(i, j int) bool {
		return dst[i].Depth > dst[j].Depth
	})
	return dst
}
