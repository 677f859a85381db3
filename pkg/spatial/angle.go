// Package spatial provides the vector, matrix and transform math used to
// position solids. Angles cross the package boundary in degrees, matching
// the script format; radians stay internal to the trig helpers.
package spatial

import "math"

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Sind returns the sine of an angle given in degrees.
func Sind(degrees float64) float64 {
	return math.Sin(Radians(degrees))
}

// Cosd returns the cosine of an angle given in degrees.
func Cosd(degrees float64) float64 {
	return math.Cos(Radians(degrees))
}

// Tand returns the tangent of an angle given in degrees.
func Tand(degrees float64) float64 {
	return math.Tan(Radians(degrees))
}

// ApproxEq reports whether a and b differ by less than eps.
func ApproxEq(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
