// Package thread generates helical thread meshes and the ISO metric
// fastener parts built on them: threaded cylinders and rods, hex bolts,
// taps and hex nuts.
package thread

import (
	"fmt"
	"math"

	"github.com/chazu/treen/pkg/scad"
	"github.com/chazu/treen/pkg/solid"
	"github.com/chazu/treen/pkg/spatial"
)

// closureEps bounds how far turns*segments may sit from a whole number
// before the sweep cannot close onto the thread lead.
const closureEps = 1.0e-6

// Helix describes a tooth profile swept along a helical path about the
// Z axis, starting on the positive X side at z=0 and climbing upward.
type Helix struct {
	// Profile is the tooth outline in the radius/height plane, wound
	// clockwise. X is the distance from the axis, Y the height along it.
	Profile []spatial.Pt2

	// Pitch is the axial distance between adjacent crests.
	Pitch float64

	// Turns is the number of revolutions each helix makes.
	Turns float64

	// Segments is the number of angular steps per revolution.
	Segments int

	// Starts is the number of interleaved helices, 1 for a plain thread.
	// The helices share a lead of Pitch*Starts and sit 360/Starts degrees
	// apart.
	Starts int

	// LeftHand mirrors the sweep for a left-handed thread.
	LeftHand bool
}

// HelicalSweep stitches the tooth profile along one helix per start. Each
// side quad between successive rings is split into two triangles and both
// tube ends are capped with the triangulated profile, so the result is
// watertight whenever the profile is a simple clockwise polygon. The sweep
// must span a whole number of angular steps, otherwise the last ring could
// not land on the thread lead.
func HelicalSweep(h Helix) (*solid.Polyhedron, error) {
	if h.Pitch <= 0 {
		return nil, invalidf("helical sweep", "pitch", "pitch is %.4f, must be positive", h.Pitch)
	}
	if h.Turns <= 0 {
		return nil, invalidf("helical sweep", "turns", "turns is %.4f, must be positive", h.Turns)
	}
	if h.Segments < 3 {
		return nil, invalidf("helical sweep", "segments", "have %d segments, need at least 3", h.Segments)
	}
	if h.Starts < 1 {
		return nil, invalidf("helical sweep", "starts", "have %d starts, need at least 1", h.Starts)
	}
	span := h.Turns * float64(h.Segments)
	if math.Abs(span-math.Round(span)) > closureEps {
		return nil, invalidf("helical sweep", "turns",
			"sweep spans %.6f steps, turns*segments must be whole so the helix closes", span)
	}
	steps := int(math.Round(span))
	if steps < 1 {
		return nil, invalidf("helical sweep", "turns", "sweep spans %d steps, need at least 1", steps)
	}
	for i, p := range h.Profile {
		if p.X < 0 {
			return nil, invalidf("helical sweep", "profile", "point %d has radius %.4f, must be non-negative", i, p.X)
		}
	}
	caps, err := solid.Triangulate(h.Profile)
	if err != nil {
		return nil, err
	}

	stepAngle := 360.0 / float64(h.Segments)
	zStep := h.Pitch * float64(h.Starts) / float64(h.Segments)

	mesh := &solid.Polyhedron{}
	for s := 0; s < h.Starts; s++ {
		phase := 360.0 * float64(s) / float64(h.Starts)
		rings := make([][]spatial.Pt3, 0, steps+1)
		for k := 0; k <= steps; k++ {
			rings = append(rings, profileRing(h.Profile, phase+stepAngle*float64(k), zStep*float64(k)))
		}
		appendShell(mesh, stitchTube(rings, caps, caps))
	}
	if h.LeftHand {
		mirrorAcrossXZ(mesh)
	}
	return mesh, nil
}

// profileRing places a radius/height outline at the given angle about Z,
// raised by z.
func profileRing(outline []spatial.Pt2, angle, z float64) []spatial.Pt3 {
	sin := spatial.Sind(angle)
	cos := spatial.Cosd(angle)
	ring := make([]spatial.Pt3, len(outline))
	for i, p := range outline {
		ring[i] = spatial.Pt3{X: p.X * cos, Y: p.X * sin, Z: p.Y + z}
	}
	return ring
}

// stitchTube closes a run of equal-length rings into one shell: a cap over
// the first ring, two triangles per side quad, and a reversed cap over the
// last ring. The cap triangulations index the rings' own outlines.
func stitchTube(rings [][]spatial.Pt3, startCap, endCap []int) *solid.Polyhedron {
	n := len(rings[0])
	points := make([]spatial.Pt3, 0, len(rings)*n)
	for _, ring := range rings {
		points = append(points, ring...)
	}

	last := len(rings) - 1
	faces := make([][]int, 0, 2*last*n+2*(n-2))
	for i := 0; i < len(startCap); i += 3 {
		faces = append(faces, []int{startCap[i], startCap[i+1], startCap[i+2]})
	}
	for k := 1; k <= last; k++ {
		for p := 0; p < n; p++ {
			a := k*n + p
			b := k*n + (p+1)%n
			c := (k-1)*n + (p+1)%n
			d := (k-1)*n + p
			faces = append(faces, []int{a, b, c}, []int{a, c, d})
		}
	}
	off := last * n
	for i := 0; i < len(endCap); i += 3 {
		faces = append(faces, []int{endCap[i+2] + off, endCap[i+1] + off, endCap[i] + off})
	}
	return &solid.Polyhedron{Points: points, Faces: faces}
}

// mirrorAcrossXZ negates Y and reverses every face, so the mesh stays
// wound clockwise from outside after the reflection.
func mirrorAcrossXZ(mesh *solid.Polyhedron) {
	for i := range mesh.Points {
		mesh.Points[i].Y = -mesh.Points[i].Y
	}
	for _, face := range mesh.Faces {
		for i, j := 0, len(face)-1; i < j; i, j = i+1, j-1 {
			face[i], face[j] = face[j], face[i]
		}
	}
}

// appendShell merges src into dst as a disjoint shell.
func appendShell(dst, src *solid.Polyhedron) {
	off := len(dst.Points)
	dst.Points = append(dst.Points, src.Points...)
	for _, face := range src.Faces {
		for i := range face {
			face[i] += off
		}
		dst.Faces = append(dst.Faces, face)
	}
}

func invalidf(op, field, format string, args ...any) scad.ValidationError {
	return scad.ValidationError{
		Op:       op,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
		Severity: scad.SeverityError,
	}
}
