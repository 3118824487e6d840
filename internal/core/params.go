package core

// ParamSpec describes a single continuous shape control exposed on the HUD.
// Min and Max are inclusive bounds, Step is the increment applied by the
// panel buttons, and Decimals is the display precision.
type ParamSpec struct {
	Key      string
	Label    string
	Min      float64
	Max      float64
	Step     float64
	Decimals int
}

// Clamp forces v into the spec's inclusive range.
func (s ParamSpec) Clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// ParamSpecsProvider exposes the ordered control table for the HUD.
type ParamSpecsProvider interface {
	ParamSpecs() []ParamSpec
}

// FloatParameterGetter reads the current value of a parameter by key.
type FloatParameterGetter interface {
	FloatParameter(key string) (float64, bool)
}

// FloatParameterSetter allows HUD interactions to update parameters. The
// return value reports whether the update was accepted.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// AnimationToggler is implemented by components that can hand parameter
// control over to an automatic animator.
type AnimationToggler interface {
	Animated() bool
	SetAnimated(on bool)
}
