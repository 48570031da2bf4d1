// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package gpsutil

import (
	"math"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func SQ(x float64) float64 {
	return x * x
}

func CB(x float64) float64 {
	return x * x * x
}

// Degrees to radians with the platform Pi (great circle formulas)
func ToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// Radians to degrees with the platform Pi (great circle formulas)
func ToDeg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// Radians to degrees with GpsPi (ECEF conversion)
func gpsDeg(rad float64) float64 {
	return rad * 180 / GpsPi
}

// Degrees to radians with GpsPi (ECEF conversion)
func gpsRad(deg float64) float64 {
	return deg * GpsPi / 180
}

// Clamp x into [lo, hi]
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
