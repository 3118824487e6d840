// Package flower implements the parametric mesh generator and the
// noise-driven parameter animator behind it. A Flower owns one mutable set
// of shape parameters; geometry is regenerated in full whenever any
// geometry-affecting parameter changes, and the face list is swapped
// atomically so a renderer never sees a torn mesh.
package flower

import (
	"log"
	"math"

	"bloom/internal/config"
	"bloom/internal/core"
)

// Mode selects which path is allowed to mutate the shape parameters.
type Mode int

const (
	// Manual accepts UpdateParams / SetFloatParameter calls.
	Manual Mode = iota
	// Animated hands control to the noise animator; manual updates are
	// ignored until the mode is switched back.
	Animated
)

// Flower is the single owner of the shape parameters, the mesh builder and
// the animator. It is frame-driven and not safe for concurrent use; the
// app calls into it from one goroutine only.
type Flower struct {
	builder  *Builder
	animator *Animator

	params ShapeParams
	mode   Mode

	// timeAcc is the animator's time input. It advances by TimeStep per
	// tick while Animated and resets to zero when animation is enabled.
	timeAcc float64

	// manualParams remembers the last manually chosen values so that
	// switching animation off restores what the sliders displayed before.
	manualParams ShapeParams

	// rotation accumulates degrees once per displayed frame. It is
	// independent of parameter changes and never triggers a rebuild.
	rotation float64
}

// New constructs a flower with default parameters and builds the initial
// mesh. Degenerate grids and palettes fail fast.
func New(grid config.Grid, palette Palette, seed int64) (*Flower, error) {
	b, err := NewBuilder(grid, palette)
	if err != nil {
		return nil, err
	}
	f := &Flower{
		builder:      b,
		animator:     NewAnimator(seed),
		params:       DefaultParams(),
		manualParams: DefaultParams(),
	}
	if err := b.Rebuild(f.params); err != nil {
		return nil, err
	}
	return f, nil
}

// Params returns the current shape parameters.
func (f *Flower) Params() ShapeParams { return f.params }

// Faces returns the current face list as a read-only snapshot.
func (f *Flower) Faces() []Face { return f.builder.Faces() }

// Grid returns the immutable grid configuration.
func (f *Flower) Grid() config.Grid { return f.builder.Grid() }

// Rotation returns the accumulated display rotation in degrees.
func (f *Flower) Rotation() float64 { return f.rotation }

// AdvanceRotation accumulates one displayed frame's worth of spin. Called
// once per frame by the render step regardless of mode.
func (f *Flower) AdvanceRotation() {
	f.rotation = math.Mod(f.rotation+f.params.RotationSpeed, 360)
}

// UpdateParams merges the patch into the shape parameters. Values are
// clamped into their slider ranges; unknown keys and non-finite values are
// dropped with a warning. A rebuild happens only when a geometry-affecting
// parameter actually changed. While Animated the patch is ignored.
func (f *Flower) UpdateParams(patch map[string]float64) {
	if f.mode == Animated {
		log.Printf("flower: ignoring manual update while animated")
		return
	}
	next := f.params
	geometryDirty := false
	for key, v := range patch {
		spec, ok := specByKey(key)
		if !ok {
			log.Printf("flower: unknown parameter %q", key)
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			log.Printf("flower: dropping non-finite value for %q", key)
			continue
		}
		v = spec.Clamp(v)
		cur, _ := next.Value(key)
		if v == cur {
			continue
		}
		next = next.WithValue(key, v)
		if key != KeyRotationSpeed {
			geometryDirty = true
		}
	}
	f.applyParams(next, geometryDirty)
	f.manualParams = f.params
}

// Tick runs one animation step: it advances the time accumulator by the
// fixed TimeStep, drifts every parameter toward its noise target, and
// rebuilds the mesh if geometry moved. The full updated parameter set is
// returned for UI display. In Manual mode it returns the current
// parameters unchanged.
func (f *Flower) Tick() ShapeParams {
	if f.mode != Animated {
		return f.params
	}
	f.timeAcc += TimeStep
	next, dirty := f.animator.Advance(f.timeAcc, f.params)
	f.applyParams(next, dirty)
	return f.params
}

// applyParams swaps in the new parameter set and regenerates geometry when
// needed. A failed rebuild keeps the previous parameters and mesh.
func (f *Flower) applyParams(next ShapeParams, geometryDirty bool) {
	if !geometryDirty {
		f.params = next
		return
	}
	prev := f.params
	f.params = next
	if err := f.builder.Rebuild(next); err != nil {
		log.Printf("flower: skipping regeneration: %v", err)
		f.params = prev
	}
}

// Animated reports whether the noise animator owns the parameters.
func (f *Flower) Animated() bool { return f.mode == Animated }

// SetAnimated switches between manual and animated control. Enabling
// animation restarts the animator clock; disabling it restores the last
// manual values and rebuilds once from them.
func (f *Flower) SetAnimated(on bool) {
	if on == (f.mode == Animated) {
		return
	}
	if on {
		f.mode = Animated
		f.timeAcc = 0
		return
	}
	f.mode = Manual
	restored := f.manualParams
	f.params = restored
	if err := f.builder.Rebuild(restored); err != nil {
		log.Printf("flower: skipping regeneration: %v", err)
	}
}

// SetPalette swaps the color scheme and recolors the mesh.
func (f *Flower) SetPalette(p Palette) error {
	return f.builder.SetPalette(p, f.params)
}

// ParamSpecs implements core.ParamSpecsProvider for the HUD.
func (f *Flower) ParamSpecs() []core.ParamSpec { return ParamSpecs() }

// FloatParameter implements core.FloatParameterGetter.
func (f *Flower) FloatParameter(key string) (float64, bool) {
	return f.params.Value(key)
}

// SetFloatParameter implements core.FloatParameterSetter. It reports false
// while the animator owns the parameters.
func (f *Flower) SetFloatParameter(key string, value float64) bool {
	if f.mode == Animated {
		return false
	}
	if _, ok := specByKey(key); !ok {
		return false
	}
	f.UpdateParams(map[string]float64{key: value})
	return true
}
