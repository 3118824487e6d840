package flower

import (
	"github.com/aquilax/go-perlin"
)

// Animator constants. Each parameter samples the noise field at a large
// per-index offset so the trajectories stay decorrelated; the lerp factor
// acts as a first-order low-pass toward the noise target.
const (
	offsetMultiplier = 100.0
	lerpFactor       = 0.02
	changeEpsilon    = 1e-4

	// TimeStep is the fixed accumulator increment per animation tick,
	// independent of wall-clock frame duration.
	TimeStep = 0.005
)

// Animator drifts the shape parameters over time using smoothed coherent
// noise. It is deterministic for a given seed and time sequence.
type Animator struct {
	noise *perlin.Perlin
}

// NewAnimator constructs an animator seeded for reproducible drift.
func NewAnimator(seed int64) *Animator {
	return &Animator{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// sample returns smooth deterministic noise in [0,1] at time x.
func (a *Animator) sample(x float64) float64 {
	return clamp((1+a.noise.Noise1D(x))/2, 0, 1)
}

// Advance computes one animation step at the given time accumulator. For
// every entry in the slider-definition table it maps a noise sample into
// the parameter's [min,max] range, moves the current value a fixed fraction
// toward that target, and clamps the result. The returned flag reports
// whether any geometry-affecting parameter moved by more than a small
// epsilon and a rebuild is due.
func (a *Animator) Advance(timeAcc float64, current ShapeParams) (ShapeParams, bool) {
	next := current
	dirty := false
	for i, spec := range paramSpecs {
		cur, _ := next.Value(spec.Key)
		noiseVal := a.sample(timeAcc + float64(i)*offsetMultiplier)
		target := spec.Min + noiseVal*(spec.Max-spec.Min)
		v := spec.Clamp(lerpToward(cur, target))
		next = next.WithValue(spec.Key, v)
		if spec.Key != KeyRotationSpeed && !closeEnough(cur, v) {
			dirty = true
		}
	}
	return next, dirty
}

// lerpToward moves cur a fixed fraction of the remaining distance to
// target, a first-order low-pass filter over successive ticks.
func lerpToward(cur, target float64) float64 {
	return cur + (target-cur)*lerpFactor
}

func closeEnough(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= changeEpsilon
}
