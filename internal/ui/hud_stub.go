//go:build !ebiten

package ui

import (
	"image/color"

	"bloom/internal/core"
)

// ControlTarget matches the GUI build's HUD contract.
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

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(ControlTarget, int, int) *HUD { return nil }

// SetTextColor is a no-op in the headless build.
func (h *HUD) SetTextColor(color.RGBA) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int, Status) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
