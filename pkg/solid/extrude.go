package solid

import (
	"github.com/chazu/treen/pkg/profile"
	"github.com/chazu/treen/pkg/spatial"
)

// LinearExtrude builds a straight prism from a clockwise profile, bottom cap
// at z=0 and top cap at z=height.
func LinearExtrude(outline []spatial.Pt2, height float64) (*Polyhedron, error) {
	if height <= 0 {
		return nil, invalidf("linear extrude", "height", "height is %.4f, must be positive", height)
	}
	caps, err := Triangulate(outline)
	if err != nil {
		return nil, err
	}

	n := len(outline)
	points := make([]spatial.Pt3, 0, 2*n)
	for _, p := range outline {
		points = append(points, p.AsPt3(0))
	}
	for _, p := range outline {
		points = append(points, p.AsPt3(height))
	}

	faces := make([][]int, 0, 2*(n-2)+n)
	for i := 0; i < len(caps); i += 3 {
		faces = append(faces, []int{caps[i+2], caps[i+1], caps[i]})
	}
	for i := 0; i < len(caps); i += 3 {
		faces = append(faces, []int{caps[i] + n, caps[i+1] + n, caps[i+2] + n})
	}
	for i := 0; i < n; i++ {
		faces = append(faces, []int{i, (i + 1) % n, (i+1)%n + n, i + n})
	}
	return &Polyhedron{Points: points, Faces: faces}, nil
}

// Cylinder builds a closed cylinder mesh of the given radius and height,
// sitting on the XY plane.
func Cylinder(radius, height float64, segments int) (*Polyhedron, error) {
	circle, err := profile.Circle(radius, segments)
	if err != nil {
		return nil, err
	}
	return LinearExtrude(circle, height)
}

// Revolve sweeps a clockwise XZ-plane profile about the Z axis through the
// given angle. The profile x coordinate is the radius and must stay
// non-negative. Partial sweeps get triangulated caps on the start and end
// planes; a full 360 degree sweep closes by wrapping the last ring back to
// the first.
func Revolve(outline []spatial.Pt2, degrees float64, segments int) (*Polyhedron, error) {
	if degrees <= 0 || degrees > 360 {
		return nil, invalidf("revolve", "degrees", "sweep is %.4f degrees, must be in (0, 360]", degrees)
	}
	if segments < 3 {
		return nil, invalidf("revolve", "segments", "have %d segments, need at least 3", segments)
	}
	for i, p := range outline {
		if p.X < 0 {
			return nil, invalidf("revolve", "profile", "point %d has radius %.4f, must be non-negative", i, p.X)
		}
	}
	caps, err := Triangulate(outline)
	if err != nil {
		return nil, err
	}

	closed := degrees == 360
	n := len(outline)
	last := segments
	if closed {
		last = segments - 1
	}

	points := make([]spatial.Pt3, 0, (last+1)*n)
	for _, p := range outline {
		points = append(points, p.ToXZ())
	}
	step := degrees / float64(segments)
	for s := 1; s <= last; s++ {
		sin := spatial.Sind(step * float64(s))
		cos := spatial.Cosd(step * float64(s))
		for _, p := range outline {
			points = append(points, spatial.Pt3{X: p.X * cos, Y: p.X * sin, Z: p.Y})
		}
	}

	faces := make([][]int, 0, segments*n+2*(n-2))
	if !closed {
		for i := 0; i < len(caps); i += 3 {
			faces = append(faces, []int{caps[i], caps[i+1], caps[i+2]})
		}
	}
	for s := 1; s <= last; s++ {
		for p := 0; p < n; p++ {
			faces = append(faces, []int{s*n + p, s*n + (p+1)%n, (s-1)*n + (p+1)%n, (s-1)*n + p})
		}
	}
	if closed {
		for p := 0; p < n; p++ {
			faces = append(faces, []int{p, (p + 1) % n, last*n + (p+1)%n, last*n + p})
		}
	} else {
		off := last * n
		for i := 0; i < len(caps); i += 3 {
			faces = append(faces, []int{caps[i+2] + off, caps[i+1] + off, caps[i] + off})
		}
	}
	return &Polyhedron{Points: points, Faces: faces}, nil
}

// Loft connects two equal-count clockwise profiles with side walls, bottom
// at z=0 and top at z=height. Vertices pair up index to index; mismatched
// counts fail rather than resample.
func Loft(bottom, top []spatial.Pt2, height float64) (*Polyhedron, error) {
	if len(bottom) != len(top) {
		return nil, invalidf("loft", "profiles",
			"bottom has %d points, top has %d, counts must match", len(bottom), len(top))
	}
	if height <= 0 {
		return nil, invalidf("loft", "height", "height is %.4f, must be positive", height)
	}
	bottomTris, err := Triangulate(bottom)
	if err != nil {
		return nil, err
	}
	topTris, err := Triangulate(top)
	if err != nil {
		return nil, err
	}

	n := len(bottom)
	points := make([]spatial.Pt3, 0, 2*n)
	for _, p := range bottom {
		points = append(points, p.AsPt3(0))
	}
	for _, p := range top {
		points = append(points, p.AsPt3(height))
	}

	faces := make([][]int, 0, 2*(n-2)+n)
	for i := 0; i < len(bottomTris); i += 3 {
		faces = append(faces, []int{bottomTris[i+2], bottomTris[i+1], bottomTris[i]})
	}
	for i := 0; i < len(topTris); i += 3 {
		faces = append(faces, []int{topTris[i] + n, topTris[i+1] + n, topTris[i+2] + n})
	}
	for i := 0; i < n; i++ {
		faces = append(faces, []int{i, (i + 1) % n, (i+1)%n + n, i + n})
	}
	return &Polyhedron{Points: points, Faces: faces}, nil
}
