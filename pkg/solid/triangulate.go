package solid

import (
	"math"

	"github.com/chazu/treen/pkg/spatial"
)

const triangulateEps = 1.0e-5

// Triangulate splits a clockwise polygon into triangles by ear clipping and
// returns flat index triples into points. The triangles keep the input
// winding. Counterclockwise, degenerate or self-intersecting input fails
// with a ValidationError.
func Triangulate(points []spatial.Pt2) ([]int, error) {
	if len(points) < 3 {
		return nil, invalidf("triangulate", "points", "have %d points, need at least 3", len(points))
	}
	poly := make([]cornerPt, len(points))
	for i, p := range points {
		poly[i] = cornerPt{index: i, p: p}
	}
	return earClip(poly)
}

// TriangulateReversed triangulates like Triangulate and flips every triangle,
// for faces whose outside is the far side of the polygon plane.
func TriangulateReversed(points []spatial.Pt2) ([]int, error) {
	tris, err := Triangulate(points)
	if err != nil {
		return nil, err
	}
	return reverseTriples(tris), nil
}

// TriangulateFace triangulates a planar polygon embedded in 3D by projecting
// it along the dominant axis of normal. The polygon must wind clockwise when
// seen from the side the normal points at; the returned triangles keep that
// winding. The normal need not be unit length.
func TriangulateFace(points []spatial.Pt3, normal spatial.Pt3) ([]int, error) {
	if len(points) < 3 {
		return nil, invalidf("triangulate", "points", "have %d points, need at least 3", len(points))
	}
	flat := make([]spatial.Pt2, len(points))
	ax, ay, az := math.Abs(normal.X), math.Abs(normal.Y), math.Abs(normal.Z)
	switch {
	case ax >= ay && ax >= az:
		for i, v := range points {
			if normal.X >= 0 {
				flat[i] = spatial.Pt2{X: v.Y, Y: v.Z}
			} else {
				flat[i] = spatial.Pt2{X: -v.Y, Y: v.Z}
			}
		}
	case ay >= ax && ay >= az:
		for i, v := range points {
			if normal.Y >= 0 {
				flat[i] = spatial.Pt2{X: -v.X, Y: v.Z}
			} else {
				flat[i] = spatial.Pt2{X: v.X, Y: v.Z}
			}
		}
	default:
		for i, v := range points {
			if normal.Z >= 0 {
				flat[i] = spatial.Pt2{X: v.X, Y: v.Y}
			} else {
				flat[i] = spatial.Pt2{X: -v.X, Y: v.Y}
			}
		}
	}
	return Triangulate(flat)
}

// TriangulateFaceReversed triangulates like TriangulateFace and flips every
// triangle.
func TriangulateFaceReversed(points []spatial.Pt3, normal spatial.Pt3) ([]int, error) {
	tris, err := TriangulateFace(points, normal)
	if err != nil {
		return nil, err
	}
	return reverseTriples(tris), nil
}

// cornerPt carries a polygon vertex with its index into the caller's slice,
// so clipped ears still report original indices.
type cornerPt struct {
	index int
	p     spatial.Pt2
}

func earClip(poly []cornerPt) ([]int, error) {
	left := 0
	for i := 1; i < len(poly); i++ {
		if poly[i].p.X < poly[left].p.X ||
			(spatial.ApproxEq(poly[i].p.X, poly[left].p.X, triangulateEps) && poly[i].p.Y < poly[left].p.Y) {
			left = i
		}
	}
	// The leftmost vertex is always convex, so it settles the winding.
	if ccw(poly[wrap(left-1, len(poly))].p, poly[left].p, poly[wrap(left+1, len(poly))].p) {
		return nil, invalidf("triangulate", "points", "polygon winds counterclockwise, must wind clockwise")
	}

	tris := make([]int, 0, (len(poly)-2)*3)
	for len(poly) >= 3 {
		eartip := -1
		for i := range poly {
			prev := wrap(i-1, len(poly))
			next := wrap(i+1, len(poly))
			if ccw(poly[prev].p, poly[i].p, poly[next].p) {
				continue
			}
			ear := true
			for j := range poly {
				if j == prev || j == i || j == next {
					continue
				}
				if inTriangle(poly[j].p, poly[prev].p, poly[i].p, poly[next].p) {
					ear = false
					break
				}
			}
			if ear {
				eartip = i
				break
			}
		}
		if eartip < 0 {
			return nil, invalidf("triangulate", "points", "no ear found, polygon is degenerate or self-intersecting")
		}
		prev := wrap(eartip-1, len(poly))
		next := wrap(eartip+1, len(poly))
		tris = append(tris, poly[prev].index, poly[eartip].index, poly[next].index)
		poly = append(poly[:eartip], poly[eartip+1:]...)
	}
	return tris, nil
}

func wrap(i, n int) int {
	return (i + n) % n
}

// ccw reports whether corner a, b, c turns counterclockwise.
func ccw(a, b, c spatial.Pt2) bool {
	return (b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y) > 0
}

// inTriangle reports whether p lies inside or on triangle abc. A degenerate
// triangle contains every point, which keeps ear clipping from cutting
// through zero-area corners.
func inTriangle(p, a, b, c spatial.Pt2) bool {
	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if spatial.ApproxEq(denom, 0, triangulateEps) {
		return true
	}
	denom = 1 / denom
	alpha := denom * ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y))
	if alpha < 0 {
		return false
	}
	beta := denom * ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y))
	if beta < 0 {
		return false
	}
	return 1-alpha-beta >= 0
}

func reverseTriples(tris []int) []int {
	for i := 0; i < len(tris); i += 3 {
		tris[i], tris[i+2] = tris[i+2], tris[i]
	}
	return tris
}
