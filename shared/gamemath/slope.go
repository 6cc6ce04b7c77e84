package gamemath

import "math"

// SlopeSurfaceY returns the surface height of a ramp tile at x. The ramp
// occupies the box (rx, ry, rw, rh); upRight ramps rise toward +x.
// x is clamped to the tile, so past the high end the surface is the tile top.
func SlopeSurfaceY(x, rx, ry, rw, rh float64, upRight bool) float64 {
	slope := Clamp(x-rx, 0, rw) / rw
	if upRight {
		return ry + rh*(1-slope)
	}
	return ry + rh*slope
}

// SlopeNormal returns the unit surface normal of a ramp tile, pointing up.
func SlopeNormal(rw, rh float64, upRight bool) (nx, ny float64) {
	l := math.Hypot(rw, rh)
	if upRight {
		return -rh / l, -rw / l
	}
	return rh / l, -rw / l
}
