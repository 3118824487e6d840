package core

import "time"

// FrameTicker paces the logical frame ticks (parameter updates, rotation)
// at a steady frames-per-second rate independent of the host loop rate.
type FrameTicker struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFrameTicker constructs a FrameTicker targeting the given FPS.
func NewFrameTicker(fps int) *FrameTicker {
	if fps <= 0 {
		fps = 30
	}
	ft := &FrameTicker{}
	ft.SetFPS(fps)
	ft.accumulator = ft.step
	return ft
}

// SetFPS changes the tick rate. It is safe to call from the main loop.
func (f *FrameTicker) SetFPS(fps int) {
	if fps <= 0 {
		fps = 30
	}
	f.step = time.Second / time.Duration(fps)
}

// ShouldTick reports whether one logical frame tick is due.
func (f *FrameTicker) ShouldTick() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
