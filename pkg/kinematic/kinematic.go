package kinematic

// This package includes the per-frame motion equations for floating balloons:
// linear vertical drift with a sinusoidal horizontal sway layered on top.

import (
	"math"
)

// Drift returns the vertical position after the given number of frames
// at a constant per-frame speed.
func Drift(initialY float64, speed float64, frames int) float64 {
	return initialY + float64(frames)*speed
}

// Phase returns the sway phase after the given number of frames.
func Phase(initialPhase float64, swaySpeed float64, frames int) float64 {
	return initialPhase + float64(frames)*swaySpeed
}

// Sway returns the horizontal position for an anchor at the given phase.
func Sway(origin float64, phase float64, amount float64) float64 {
	return origin + math.Sin(phase)*amount
}

// Uniform maps r in [0, 1) onto [min, max).
func Uniform(r float64, min float64, max float64) float64 {
	return min + r*(max-min)
}
