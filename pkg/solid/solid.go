// Package solid builds explicit polyhedron meshes: linear extrusions,
// revolves, path sweeps, lofts and the ear-clip triangulation they share.
// Generated meshes are watertight, with every face wound clockwise when
// viewed from outside, which is what OpenSCAD's polyhedron() expects.
package solid

import (
	"fmt"

	"github.com/chazu/treen/pkg/scad"
	"github.com/chazu/treen/pkg/spatial"
)

// Polyhedron is an explicit mesh: a shared vertex pool and faces indexing
// into it. Faces list their vertices clockwise viewed from outside the
// solid.
type Polyhedron struct {
	Points []spatial.Pt3
	Faces  [][]int
}

// Node wraps the mesh in a polyhedron scene node with the given convexity.
func (p *Polyhedron) Node(convexity int) (*scad.Node, error) {
	return scad.Polyhedron(p.Points, p.Faces, convexity)
}

// Translate shifts every point by v.
func (p *Polyhedron) Translate(v spatial.Pt3) *Polyhedron {
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(v)
	}
	return p
}

// Apply transforms every point by m. A mirroring m flips the winding; faces
// are not reordered.
func (p *Polyhedron) Apply(m spatial.Mt4) *Polyhedron {
	for i := range p.Points {
		p.Points[i] = m.MulPt3(p.Points[i])
	}
	return p
}

// RotateX spins the mesh about the X axis.
func (p *Polyhedron) RotateX(degrees float64) *Polyhedron {
	for i := range p.Points {
		p.Points[i] = p.Points[i].RotatedX(degrees)
	}
	return p
}

// RotateY spins the mesh about the Y axis.
func (p *Polyhedron) RotateY(degrees float64) *Polyhedron {
	for i := range p.Points {
		p.Points[i] = p.Points[i].RotatedY(degrees)
	}
	return p
}

// RotateZ spins the mesh about the Z axis.
func (p *Polyhedron) RotateZ(degrees float64) *Polyhedron {
	for i := range p.Points {
		p.Points[i] = p.Points[i].RotatedZ(degrees)
	}
	return p
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// Validate checks that the mesh describes a closed solid: enough points,
// well-formed faces, indices in bounds, every edge shared by exactly two
// faces running in opposite directions. Topology is only checked once the
// structure is sound.
func (p *Polyhedron) Validate() []scad.ValidationError {
	errs := p.validateStructure()
	if len(errs) > 0 {
		return errs
	}
	return p.validateTopology()
}

func (p *Polyhedron) validateStructure() []scad.ValidationError {
	var errs []scad.ValidationError
	if len(p.Points) < 4 {
		errs = append(errs, invalidf("polyhedron", "points",
			"mesh has %d points, need at least 4 to enclose a volume", len(p.Points)))
	}
	if len(p.Faces) < 4 {
		errs = append(errs, invalidf("polyhedron", "faces",
			"mesh has %d faces, need at least 4 to enclose a volume", len(p.Faces)))
	}
	for i, face := range p.Faces {
		if len(face) < 3 {
			errs = append(errs, invalidf("polyhedron", "faces",
				"face %d has %d vertices, need at least 3", i, len(face)))
			continue
		}
		for j, idx := range face {
			if idx < 0 || idx >= len(p.Points) {
				errs = append(errs, invalidf("polyhedron", "faces",
					"face %d references point %d, have %d points", i, idx, len(p.Points)))
			}
			if face[(j+1)%len(face)] == idx {
				errs = append(errs, invalidf("polyhedron", "faces",
					"face %d repeats vertex %d on consecutive corners", i, idx))
			}
		}
	}
	return errs
}

func (p *Polyhedron) validateTopology() []scad.ValidationError {
	var errs []scad.ValidationError
	counts := p.edgeCounts()
	seen := make(map[[2]int]bool)
	for _, face := range p.Faces {
		for i := range face {
			e := [2]int{face[i], face[(i+1)%len(face)]}
			if seen[e] {
				continue
			}
			seen[e] = true
			if counts[e] > 1 {
				errs = append(errs, invalidf("polyhedron", "faces",
					"edge %d-%d runs the same direction in %d faces, winding is inconsistent", e[0], e[1], counts[e]))
			}
			if counts[[2]int{e[1], e[0]}] == 0 {
				errs = append(errs, invalidf("polyhedron", "faces",
					"edge %d-%d borders only one face, mesh is not watertight", e[0], e[1]))
			}
		}
	}
	return errs
}

// OpenEdges returns the directed edges that lack an opposing twin, in face
// order. A closed, consistently wound mesh returns none.
func (p *Polyhedron) OpenEdges() [][2]int {
	counts := p.edgeCounts()
	var open [][2]int
	for _, face := range p.Faces {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			if counts[[2]int{b, a}] == 0 {
				open = append(open, [2]int{a, b})
			}
		}
	}
	return open
}

// Watertight reports whether every directed edge appears exactly once and is
// matched by its reverse.
func (p *Polyhedron) Watertight() bool {
	counts := p.edgeCounts()
	if len(counts) == 0 {
		return false
	}
	for e, c := range counts {
		if c != 1 || counts[[2]int{e[1], e[0]}] != 1 {
			return false
		}
	}
	return true
}

func (p *Polyhedron) edgeCounts() map[[2]int]int {
	counts := make(map[[2]int]int)
	for _, face := range p.Faces {
		for i := range face {
			counts[[2]int{face[i], face[(i+1)%len(face)]}]++
		}
	}
	return counts
}

func invalidf(op, field, format string, args ...any) scad.ValidationError {
	return scad.ValidationError{
		Op:       op,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
		Severity: scad.SeverityError,
	}
}
