// Package pipe builds straight, curved and tapered pipe runs as scene
// trees. Hollow builders subtract an over-length bore so the cut clears
// both ends, and each has a solid twin for cutting pipe-shaped holes.
package pipe

import (
	"fmt"

	"github.com/chazu/treen/pkg/scad"
	"github.com/chazu/treen/pkg/spatial"
)

// Bore overruns. A straight bore keeps its diameter, so it can poke a
// full unit past each rim. A tapered bore keeps its end diameters while
// growing, which flattens its slope; the overrun stays at a thousandth
// so the wall thickness holds at the rims.
const (
	straightOverrun = 1.0
	taperedOverrun  = 0.001
)

// Straight builds a hollow pipe of outside diameter od running up the Z
// axis, from z=0 or centered on the origin.
func Straight(od, wall, length float64, center bool, segments int) (*scad.Node, error) {
	if err := checkWall("straight pipe", "od", od, wall); err != nil {
		return nil, err
	}
	if err := checkLength("straight pipe", length); err != nil {
		return nil, err
	}
	outer, err := cylinder(length, od, od, center, segments)
	if err != nil {
		return nil, err
	}
	bore, err := cylinder(length+2*straightOverrun, od-2*wall, od-2*wall, center, segments)
	if err != nil {
		return nil, err
	}
	return scad.Difference(outer, sinkBore(bore, straightOverrun, center)), nil
}

// StraightSolid builds the matching solid rod.
func StraightSolid(od, length float64, center bool, segments int) (*scad.Node, error) {
	if od <= 0 {
		return nil, invalidf("straight solid", "od", "outside diameter is %.4f, must be positive", od)
	}
	if err := checkLength("straight solid", length); err != nil {
		return nil, err
	}
	return cylinder(length, od, od, center, segments)
}

// Curved builds a hollow bend. The pipe enters at the origin heading up
// the Z axis and sweeps through degrees around an axis radius away from
// its inner surface, so the centerline bends at radius+od/2 toward -X.
func Curved(od, wall, degrees, radius float64, segments int) (*scad.Node, error) {
	if err := checkWall("curved pipe", "od", od, wall); err != nil {
		return nil, err
	}
	if err := checkBend("curved pipe", degrees, radius); err != nil {
		return nil, err
	}
	outer, err := scad.Circle(od / 2)
	if err != nil {
		return nil, err
	}
	inner, err := scad.Circle(od/2 - wall)
	if err != nil {
		return nil, err
	}
	section := scad.Difference(outer.Fn(segments), inner.Fn(segments))
	return bend(section, od, degrees, radius, segments)
}

// CurvedSolid builds the matching solid bend.
func CurvedSolid(od, degrees, radius float64, segments int) (*scad.Node, error) {
	if od <= 0 {
		return nil, invalidf("curved solid", "od", "outside diameter is %.4f, must be positive", od)
	}
	if err := checkBend("curved solid", degrees, radius); err != nil {
		return nil, err
	}
	section, err := scad.Circle(od / 2)
	if err != nil {
		return nil, err
	}
	return bend(section.Fn(segments), od, degrees, radius, segments)
}

// Tapered builds a hollow reducer running from outside diameter od1 at
// the bottom to od2 at the top with a constant wall thickness.
func Tapered(od1, od2, wall, length float64, center bool, segments int) (*scad.Node, error) {
	if err := checkWall("tapered pipe", "od1", od1, wall); err != nil {
		return nil, err
	}
	if err := checkWall("tapered pipe", "od2", od2, wall); err != nil {
		return nil, err
	}
	if err := checkLength("tapered pipe", length); err != nil {
		return nil, err
	}
	outer, err := cylinder(length, od1, od2, center, segments)
	if err != nil {
		return nil, err
	}
	bore, err := cylinder(length+2*taperedOverrun, od1-2*wall, od2-2*wall, center, segments)
	if err != nil {
		return nil, err
	}
	return scad.Difference(outer, sinkBore(bore, taperedOverrun, center)), nil
}

// TaperedSolid builds the matching solid cone section.
func TaperedSolid(od1, od2, length float64, center bool, segments int) (*scad.Node, error) {
	if od1 <= 0 {
		return nil, invalidf("tapered solid", "od1", "outside diameter is %.4f, must be positive", od1)
	}
	if od2 <= 0 {
		return nil, invalidf("tapered solid", "od2", "outside diameter is %.4f, must be positive", od2)
	}
	if err := checkLength("tapered solid", length); err != nil {
		return nil, err
	}
	return cylinder(length, od1, od2, center, segments)
}

// bend revolves a cross section around the Z axis at the bend radius,
// stands the result up, and moves the entry cross section back to the
// origin.
func bend(section *scad.Node, od, degrees, radius float64, segments int) (*scad.Node, error) {
	ring, err := scad.RotateExtrude(degrees, 4,
		scad.Translate(spatial.P3(od/2+radius, 0, 0), section))
	if err != nil {
		return nil, err
	}
	return scad.Translate(spatial.P3(-od/2-radius, 0, 0),
		scad.RotateXYZ(spatial.P3(90, 0, 0), ring.Fn(segments))), nil
}

// cylinder wraps scad.Cylinder for callers that think in diameters.
func cylinder(h, d1, d2 float64, center bool, segments int) (*scad.Node, error) {
	c, err := scad.Cylinder(h, d1/2, d2/2, center)
	if err != nil {
		return nil, err
	}
	return c.Fn(segments), nil
}

// sinkBore drops an over-length bore so it pokes out both ends of an
// uncentered body. A centered bore already overruns symmetrically and
// stays put.
func sinkBore(bore *scad.Node, overrun float64, center bool) *scad.Node {
	if center {
		return bore
	}
	return scad.Translate(spatial.P3(0, 0, -overrun), bore)
}

func checkWall(op, field string, od, wall float64) error {
	if wall <= 0 {
		return invalidf(op, "wall", "wall is %.4f, must be positive", wall)
	}
	if od-2*wall <= 0 {
		return invalidf(op, field, "outside diameter %.4f leaves no bore with a %.4f wall", od, wall)
	}
	return nil
}

func checkBend(op string, degrees, radius float64) error {
	if degrees <= 0 || degrees > 360 {
		return invalidf(op, "degrees", "bend is %.4f degrees, must be in (0, 360]", degrees)
	}
	if radius <= 0 {
		return invalidf(op, "radius", "bend radius is %.4f, must be positive", radius)
	}
	return nil
}

func checkLength(op string, length float64) error {
	if length <= 0 {
		return invalidf(op, "length", "length is %.4f, must be positive", length)
	}
	return nil
}

func invalidf(op, field, format string, args ...any) scad.ValidationError {
	return scad.ValidationError{
		Op:       op,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
		Severity: scad.SeverityError,
	}
}
