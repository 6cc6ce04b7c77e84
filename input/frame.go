// Package input turns device state into the per-tick Frame the simulation
// consumes.
package input

// Frame is one tick's worth of logical intent. Axes are in [-1, 1] with
// Vertical positive up. Edge flags are true only on the tick the underlying
// button changed. Frames are values; nothing mutates one after NewFrame.
type Frame struct {
	Horizontal float64
	Vertical   float64

	JumpPressed        bool
	JumpReleased       bool
	DashPressed        bool
	DashReleased       bool
	PossessPressed     bool
	PowerReleased      bool
	DisplayInfoPressed bool
}

// Neutral is the no-control frame fed while controls are disabled.
var Neutral = Frame{}

// NewFrame returns f with its axes clamped into [-1, 1].
func NewFrame(f Frame) Frame {
	f.Horizontal = clampAxis(f.Horizontal)
	f.Vertical = clampAxis(f.Vertical)
	return f
}

// Held keeps the axes and drops every edge, for frames repeated across ticks.
func (f Frame) Held() Frame {
	return Frame{Horizontal: f.Horizontal, Vertical: f.Vertical}
}

// IsNeutral reports whether f carries no intent at all.
func (f Frame) IsNeutral() bool {
	return f == Neutral
}

// Down reports whether the vertical axis points down past the deadzone.
func (f Frame) Down() bool {
	return f.Vertical < -0.5
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
