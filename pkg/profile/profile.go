// Package profile generates 2D outlines for polygons, extrusions,
// revolutions and sweeps. Closed outlines wind clockwise so the solids
// built from them face outward.
package profile

import (
	"fmt"

	"github.com/chazu/treen/pkg/scad"
	"github.com/chazu/treen/pkg/spatial"
)

func invalidf(op, field, format string, args ...any) scad.ValidationError {
	return scad.ValidationError{
		Op:       op,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
		Severity: scad.SeverityError,
	}
}

// Arc rotates start about the origin through the given angle. Positive
// degrees sweep clockwise. A full 360 yields exactly segments points with no
// duplicate seam point; partial arcs yield segments+1 points including both
// ends.
func Arc(start spatial.Pt2, degrees float64, segments int) ([]spatial.Pt2, error) {
	if degrees == 0 || degrees < -360 || degrees > 360 {
		return nil, invalidf("arc", "degrees", "sweep is %.4f, must be non-zero and within [-360, 360]", degrees)
	}
	if segments < 1 {
		return nil, invalidf("arc", "segments", "segments is %d, need at least 1", segments)
	}
	n := segments + 1
	if degrees == 360 || degrees == -360 {
		n = segments
	}
	step := -degrees / float64(segments)
	points := make([]spatial.Pt2, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, start.Rotated(step*float64(i)))
	}
	return points, nil
}

// Circle returns a clockwise circle outline of the given radius.
func Circle(radius float64, segments int) ([]spatial.Pt2, error) {
	if radius <= 0 {
		return nil, invalidf("circle", "radius", "radius is %.4f, must be positive", radius)
	}
	if segments < 3 {
		return nil, invalidf("circle", "segments", "segments is %d, need at least 3", segments)
	}
	return Arc(spatial.P2(radius, 0), 360, segments)
}

// InscribedPolygon returns a regular polygon whose vertices lie on the
// circle of the given radius.
func InscribedPolygon(sides int, radius float64) ([]spatial.Pt2, error) {
	return Circle(radius, sides)
}

// CircumscribedPolygon returns a regular polygon whose edges are tangent to
// the circle of the given radius. Hex stock is measured this way: radius is
// half the across-flats width.
func CircumscribedPolygon(sides int, radius float64) ([]spatial.Pt2, error) {
	if sides < 3 {
		return nil, invalidf("circumscribed_polygon", "sides", "sides is %d, need at least 3", sides)
	}
	return Circle(radius/spatial.Cosd(180/float64(sides)), sides)
}

// RoundedRect returns a width x height rectangle with corners rounded at the
// given radius, segments per quarter corner. center moves the rectangle
// from the first quadrant onto the origin.
func RoundedRect(width, height, radius float64, segments int, center bool) ([]spatial.Pt2, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidf("rounded_rect", "size", "size is [%.4f, %.4f], must be positive", width, height)
	}
	if radius <= 0 {
		return nil, invalidf("rounded_rect", "radius", "radius is %.4f, must be positive", radius)
	}
	if 2*radius > width || 2*radius > height {
		return nil, invalidf("rounded_rect", "radius", "radius %.4f does not fit size [%.4f, %.4f]", radius, width, height)
	}
	if segments < 1 {
		return nil, invalidf("rounded_rect", "segments", "segments is %d, need at least 1", segments)
	}

	corner := func(start spatial.Pt2, offset spatial.Pt2) ([]spatial.Pt2, error) {
		pts, err := Arc(start, 90, segments)
		if err != nil {
			return nil, err
		}
		for i := range pts {
			pts[i] = pts[i].Add(offset)
		}
		return pts, nil
	}

	tr, err := corner(spatial.P2(0, radius), spatial.P2(width-radius, height-radius))
	if err != nil {
		return nil, err
	}
	br, err := corner(spatial.P2(radius, 0), spatial.P2(width-radius, radius))
	if err != nil {
		return nil, err
	}
	bl, err := corner(spatial.P2(0, -radius), spatial.P2(radius, radius))
	if err != nil {
		return nil, err
	}
	tl, err := corner(spatial.P2(-radius, 0), spatial.P2(radius, height-radius))
	if err != nil {
		return nil, err
	}

	points := make([]spatial.Pt2, 0, 4*(segments+1))
	points = append(points, tr...)
	points = append(points, br...)
	points = append(points, bl...)
	points = append(points, tl...)
	if center {
		for i := range points {
			points[i] = points[i].Sub(spatial.P2(width/2, height/2))
		}
	}
	return points, nil
}

// ChamferedRect returns a width x height rectangle with its corners cut
// at 45 degrees, size deep. center moves the rectangle from the first
// quadrant onto the origin.
func ChamferedRect(width, height, size float64, center bool) ([]spatial.Pt2, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidf("chamfered_rect", "size", "size is [%.4f, %.4f], must be positive", width, height)
	}
	if size <= 0 {
		return nil, invalidf("chamfered_rect", "chamfer", "chamfer is %.4f, must be positive", size)
	}
	if 2*size > width || 2*size > height {
		return nil, invalidf("chamfered_rect", "chamfer", "chamfer %.4f does not fit size [%.4f, %.4f]", size, width, height)
	}

	points := []spatial.Pt2{
		{X: width - size, Y: height},
		{X: width, Y: height - size},
		{X: width, Y: size},
		{X: width - size, Y: 0},
		{X: size, Y: 0},
		{X: 0, Y: size},
		{X: 0, Y: height - size},
		{X: size, Y: height},
	}
	if center {
		for i := range points {
			points[i] = points[i].Sub(spatial.P2(width/2, height/2))
		}
	}
	return points, nil
}

// Chamfer returns the cutting profile for a 45 degree chamfer of the given
// size. oversize extends the profile past the edge being cut so boolean
// subtraction leaves no sliver.
func Chamfer(size, oversize float64) ([]spatial.Pt2, error) {
	if size <= 0 {
		return nil, invalidf("chamfer", "size", "size is %.4f, must be positive", size)
	}
	if oversize <= 0 {
		return nil, invalidf("chamfer", "oversize", "oversize is %.4f, must be positive", oversize)
	}
	return []spatial.Pt2{
		{X: 0, Y: size + oversize},
		{X: oversize, Y: size + oversize},
		{X: oversize, Y: size},
		{X: size, Y: oversize},
		{X: size + oversize, Y: oversize},
		{X: size + oversize, Y: 0},
		{X: 0, Y: 0},
	}, nil
}

// Star returns a star outline alternating inner and outer vertices,
// clockwise, starting on the inner radius at the +X axis.
func Star(points int, innerRadius, outerRadius float64) ([]spatial.Pt2, error) {
	if points < 2 {
		return nil, invalidf("star", "points", "points is %d, need at least 2", points)
	}
	if innerRadius <= 0 || outerRadius <= 0 {
		return nil, invalidf("star", "radius", "radii are %.4f and %.4f, must be positive", innerRadius, outerRadius)
	}
	angle := -360 / float64(points)
	out := make([]spatial.Pt2, 0, 2*points)
	for i := 0; i < points; i++ {
		a := angle * float64(i)
		out = append(out, spatial.P2(spatial.Cosd(a)*innerRadius, spatial.Sind(a)*innerRadius))
		a = angle * (float64(i) + 0.5)
		out = append(out, spatial.P2(spatial.Cosd(a)*outerRadius, spatial.Sind(a)*outerRadius))
	}
	return out, nil
}

// BezierStar returns a smoothed star whose spikes and valleys are cubic
// bezier curves. The handle lengths control how round the outer spikes and
// inner valleys are; segments applies per curve.
func BezierStar(points int, innerRadius, innerHandleLength, outerRadius, outerHandleLength float64, segments int) ([]spatial.Pt2, error) {
	if points < 2 {
		return nil, invalidf("bezier_star", "points", "points is %d, need at least 2", points)
	}
	if innerRadius <= 0 || outerRadius <= 0 {
		return nil, invalidf("bezier_star", "radius", "radii are %.4f and %.4f, must be positive", innerRadius, outerRadius)
	}
	if segments < 1 {
		return nil, invalidf("bezier_star", "segments", "segments is %d, need at least 1", segments)
	}

	angle := 360 / float64(points)
	knots := make([]spatial.Pt2, 0, 2*points)
	for i := 0; i < points; i++ {
		a := angle * float64(i)
		knots = append(knots, spatial.P2(spatial.Cosd(a)*outerRadius, spatial.Sind(a)*outerRadius))
		a = angle * (float64(i) + 0.5)
		knots = append(knots, spatial.P2(spatial.Cosd(a)*innerRadius, spatial.Sind(a)*innerRadius))
	}

	n := len(knots)
	controls := make([]spatial.Pt2, 0, n)
	for i := 0; i < n; i++ {
		handle := outerHandleLength
		if i%2 == 0 {
			handle = innerHandleLength
		}
		dir, err := knots[(i+2)%n].Sub(knots[i]).Normalized()
		if err != nil {
			return nil, err
		}
		controls = append(controls, knots[(i+1)%n].Sub(dir.Mul(handle)))
	}

	chain, err := NewCubicBezierChain2D(knots[0], controls[0], controls[0], knots[1], segments)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n-1; i++ {
		handle := innerHandleLength
		if i%2 == 0 {
			handle = outerHandleLength
		}
		if err := chain.Add(handle, controls[i], knots[i+1], segments); err != nil {
			return nil, err
		}
	}
	if err := chain.Close(innerHandleLength, controls[n-1], outerHandleLength, segments); err != nil {
		return nil, err
	}
	return chain.Points(), nil
}
