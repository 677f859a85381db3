package scad

import "github.com/chazu/treen/pkg/spatial"

// Viewer collects debug markers for inspecting computed points. Each added
// point becomes a small sphere; Node returns the union of all markers, ready
// to drop into a scene next to the real geometry.
type Viewer struct {
	pointRadius float64
	segments    int
	root        *Node
}

// NewViewer builds a Viewer emitting spheres of the given radius and facet
// count.
func NewViewer(pointRadius float64, segments int) (*Viewer, error) {
	if pointRadius <= 0 {
		return nil, invalidf("viewer", "point_radius", "radius is %.4f, must be positive", pointRadius)
	}
	if segments < 3 {
		return nil, invalidf("viewer", "segments", "segments is %d, need at least 3", segments)
	}
	return &Viewer{pointRadius: pointRadius, segments: segments, root: Union()}, nil
}

// AddPt3 marks a single point.
func (v *Viewer) AddPt3(p spatial.Pt3) {
	marker := &Node{Data: SphereData{R: v.pointRadius, FN: v.segments}}
	v.root.Add(Translate(p, marker))
}

// AddPt3s marks every point in ps in order.
func (v *Viewer) AddPt3s(ps []spatial.Pt3) {
	for _, p := range ps {
		v.AddPt3(p)
	}
}

// AddPt2s marks every point in ps at z=0.
func (v *Viewer) AddPt2s(ps []spatial.Pt2) {
	for _, p := range ps {
		v.AddPt3(p.AsPt3(0))
	}
}

// Node returns the accumulated markers.
func (v *Viewer) Node() *Node {
	return v.root
}
