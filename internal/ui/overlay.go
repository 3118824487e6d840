//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"bloom — parametric flower",
	"",
	"Space  toggle noise animation",
	"T      next color scheme",
	"M      mute / unmute audio",
	"R      reset sliders",
	"H      toggle this help",
	"Q/Esc  quit",
	"",
	"Sliders drive the mesh directly;",
	"animation takes over while enabled.",
}

// Overlay draws a dismissable help card over the flower view.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility on H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the help card when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.visible {
		return
	}
	const (
		cardW   = 280
		pad     = 14
		lineAdv = 16
	)
	cardH := pad*2 + lineAdv*len(helpLines)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cardW, float64(cardH))
	op.GeoM.Translate(pad, pad)
	op.ColorM.Scale(0.04, 0.04, 0.06, 0.88)
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	y := pad*2 + 4
	for _, line := range helpLines {
		text.Draw(screen, line, face, pad*2, y, color.RGBA{R: 224, G: 224, B: 234, A: 255})
		y += lineAdv
	}
}
