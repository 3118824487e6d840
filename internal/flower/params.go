package flower

import (
	"math"

	"bloom/internal/core"
)

// Parameter keys. These match the HUD control table and the patch maps
// accepted by UpdateParams.
const (
	KeyOpening       = "opening"
	KeyDensity       = "density"
	KeyAlign         = "align"
	KeyCurve1        = "curve1"
	KeyCurve2        = "curve2"
	KeyRotationSpeed = "rotation_speed"
)

// paramSpecs is the ordered slider-definition table. The animator derives
// each parameter's noise offset from its position in this slice, so the
// order is part of the animation behavior.
var paramSpecs = []core.ParamSpec{
	{Key: KeyOpening, Label: "Opening", Min: 0.5, Max: 4, Step: 0.05, Decimals: 2},
	{Key: KeyDensity, Label: "Density", Min: 1, Max: 12, Step: 0.1, Decimals: 1},
	{Key: KeyAlign, Label: "Align", Min: 0, Max: 4, Step: 0.05, Decimals: 2},
	{Key: KeyCurve1, Label: "Curve 1", Min: 0, Max: 4, Step: 0.05, Decimals: 2},
	{Key: KeyCurve2, Label: "Curve 2", Min: 0, Max: 4, Step: 0.05, Decimals: 2},
	{Key: KeyRotationSpeed, Label: "Spin", Min: 0, Max: 4, Step: 0.05, Decimals: 2},
}

// ParamSpecs returns the slider-definition table in display order.
func ParamSpecs() []core.ParamSpec {
	out := make([]core.ParamSpec, len(paramSpecs))
	copy(out, paramSpecs)
	return out
}

func specByKey(key string) (core.ParamSpec, bool) {
	for _, s := range paramSpecs {
		if s.Key == key {
			return s, true
		}
	}
	return core.ParamSpec{}, false
}

// ShapeParams holds the six continuous controls. All but RotationSpeed
// affect geometry; RotationSpeed only feeds the per-frame rotation step.
type ShapeParams struct {
	Opening       float64
	Density       float64
	Align         float64
	Curve1        float64
	Curve2        float64
	RotationSpeed float64
}

// DefaultParams returns the initial slider values.
func DefaultParams() ShapeParams {
	return ShapeParams{
		Opening:       1.2,
		Density:       5,
		Align:         1,
		Curve1:        1.5,
		Curve2:        1.5,
		RotationSpeed: 0.5,
	}
}

// Value returns the parameter stored under key.
func (p ShapeParams) Value(key string) (float64, bool) {
	switch key {
	case KeyOpening:
		return p.Opening, true
	case KeyDensity:
		return p.Density, true
	case KeyAlign:
		return p.Align, true
	case KeyCurve1:
		return p.Curve1, true
	case KeyCurve2:
		return p.Curve2, true
	case KeyRotationSpeed:
		return p.RotationSpeed, true
	}
	return 0, false
}

// WithValue returns a copy of p with key set to v. Unknown keys return p
// unchanged.
func (p ShapeParams) WithValue(key string, v float64) ShapeParams {
	switch key {
	case KeyOpening:
		p.Opening = v
	case KeyDensity:
		p.Density = v
	case KeyAlign:
		p.Align = v
	case KeyCurve1:
		p.Curve1 = v
	case KeyCurve2:
		p.Curve2 = v
	case KeyRotationSpeed:
		p.RotationSpeed = v
	}
	return p
}

// Finite reports whether every parameter is a finite number.
func (p ShapeParams) Finite() bool {
	for _, v := range [...]float64{p.Opening, p.Density, p.Align, p.Curve1, p.Curve2, p.RotationSpeed} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
