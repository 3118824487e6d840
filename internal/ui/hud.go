//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"bloom/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// ControlTarget is what the HUD drives: the slider-definition table plus
// read and write access to the live parameter values.
type ControlTarget interface {
	core.ParamSpecsProvider
	core.FloatParameterGetter
	core.FloatParameterSetter
}

// Status mirrors app state the HUD only displays.
type Status struct {
	Scheme   string
	Muted    bool
	HasAudio bool
}

// HUD renders the parameter panel to the right of the flower view.
type HUD struct {
	target   ControlTarget
	toggler  core.AnimationToggler
	width    int
	height   int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	textCol  color.RGBA
	controls []hudControlState

	animRect     image.Rectangle
	panelOffsetX int
	status       Status
}

// NewHUD constructs a HUD panel of the given pixel size. If target also
// implements core.AnimationToggler the panel gains an animation row.
func NewHUD(target ControlTarget, width, height int) *HUD {
	h := &HUD{
		target:  target,
		width:   width,
		height:  height,
		textCol: color.RGBA{R: 220, G: 220, B: 230, A: 255},
	}
	if width <= 0 || height <= 0 {
		return h
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)

	specs := target.ParamSpecs()
	h.controls = make([]hudControlState, len(specs))
	for i, spec := range specs {
		h.controls[i] = hudControlState{spec: spec, value: "--"}
	}
	h.layoutControls()
	if toggler, ok := target.(core.AnimationToggler); ok {
		h.toggler = toggler
	}
	return h
}

// SetTextColor adopts the active scheme's panel text color.
func (h *HUD) SetTextColor(c color.RGBA) {
	if h != nil {
		h.textCol = c
	}
}

// Update refreshes displayed values from the target and handles clicks.
func (h *HUD) Update(panelOffsetX int, status Status) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.status = status
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) animated() bool {
	return h.toggler != nil && h.toggler.Animated()
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		v, ok := h.target.FloatParameter(state.spec.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = v
		state.value = strconv.FormatFloat(v, 'f', state.spec.Decimals, 64)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX

	if h.toggler != nil && pointInRect(px, my, h.animRect) {
		h.toggler.SetAnimated(!h.toggler.Animated())
		return
	}
	if h.animated() {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	step := state.spec.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.spec.Clamp(state.floatValue + float64(direction)*step)
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	if h.target.SetFloatParameter(state.spec.Key, target) {
		state.floatValue = target
		state.value = strconv.FormatFloat(target, 'f', state.spec.Decimals, 64)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if !state.hasValue || h.animated() {
		return false
	}
	step := state.spec.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(direction)*step
	if direction < 0 && target < state.spec.Min {
		return false
	}
	if direction > 0 && target > state.spec.Max {
		return false
	}
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Flower Controls", face, panelPadding, headerY, h.textCol)

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.spec.Label, face, panelPadding, labelY, h.textCol)

		valueColor := h.textCol
		if !state.hasValue || h.animated() {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}

	if h.toggler != nil {
		labelY := h.animRect.Min.Y + labelBaseline - (lineHeight-buttonSize)/2
		text.Draw(h.panel, "Animate", face, panelPadding, labelY, h.textCol)
		label := "off"
		if h.animated() {
			label = "on"
		}
		h.drawButton(h.animRect, label, true)
	}

	h.drawStatus(face)
}

func (h *HUD) drawStatus(face *basicfont.Face) {
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	y := h.height - panelPadding - 4*statusLine
	text.Draw(h.panel, "Scheme: "+h.status.Scheme, face, panelPadding, y, h.textCol)
	y += statusLine
	audioLabel := "Audio: none"
	if h.status.HasAudio {
		audioLabel = "Audio: playing"
		if h.status.Muted {
			audioLabel = "Audio: muted"
		}
	}
	text.Draw(h.panel, audioLabel, face, panelPadding, y, h.textCol)
	y += statusLine
	text.Draw(h.panel, "Space anim  T scheme  M mute", face, panelPadding, y, dim)
	y += statusLine
	text.Draw(h.panel, "H help  R reset  Q quit", face, panelPadding, y, dim)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
	animTop := controlsTop + len(h.controls)*lineHeight + lineHeight/2
	buttonY := animTop + (lineHeight-buttonSize)/2
	h.animRect = image.Rect(h.width-panelPadding-2*buttonSize-buttonGap, buttonY, h.width-panelPadding, buttonY+buttonSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	spec  core.ParamSpec
	value string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusLine     = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
