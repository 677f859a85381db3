package solid

import "github.com/chazu/treen/pkg/spatial"

// Sweep runs a clockwise profile along a 3D path. Every path point gets a
// frame looking along the local tangent with +Z as the up reference, the
// profile is rotated by its share of twistDegrees, and consecutive rings are
// stitched with quads. Open sweeps are capped at both ends; closed sweeps
// wrap the last ring back to the first.
//
// Consecutive path points must not coincide, and a path running parallel to
// +Z keeps the profile unrotated in the XY plane.
func Sweep(outline []spatial.Pt2, path []spatial.Pt3, twistDegrees float64, closed bool) (*Polyhedron, error) {
	caps, err := Triangulate(outline)
	if err != nil {
		return nil, err
	}
	if closed && len(path) < 3 {
		return nil, invalidf("sweep", "path", "closed path has %d points, need at least 3", len(path))
	}
	if !closed && len(path) < 2 {
		return nil, invalidf("sweep", "path", "path has %d points, need at least 2", len(path))
	}

	n := len(outline)
	steps := len(path)
	twistStep := twistDegrees / float64(steps-1)
	if closed {
		twistStep = twistDegrees / float64(steps)
	}

	points := make([]spatial.Pt3, 0, steps*n)
	for k := 0; k < steps; k++ {
		frame, err := spatial.LookAlong(pathTangent(path, k, closed), spatial.P3(0, 0, 1))
		if err != nil {
			return nil, err
		}
		twist := twistStep * float64(k)
		for _, p := range outline {
			local := p.Rotated(twist).AsPt3(0)
			points = append(points, frame.MulVec3(local).Add(path[k]))
		}
	}

	faces := make([][]int, 0, steps*n+2*(n-2))
	if !closed {
		for i := 0; i < len(caps); i += 3 {
			faces = append(faces, []int{caps[i+2], caps[i+1], caps[i]})
		}
	}
	for k := 1; k < steps; k++ {
		for p := 0; p < n; p++ {
			faces = append(faces, []int{(k-1)*n + p, (k-1)*n + (p+1)%n, k*n + (p+1)%n, k*n + p})
		}
	}
	if closed {
		last := steps - 1
		for p := 0; p < n; p++ {
			faces = append(faces, []int{last*n + p, last*n + (p+1)%n, (p + 1) % n, p})
		}
	} else {
		off := (steps - 1) * n
		for i := 0; i < len(caps); i += 3 {
			faces = append(faces, []int{caps[i] + off, caps[i+1] + off, caps[i+2] + off})
		}
	}
	return &Polyhedron{Points: points, Faces: faces}, nil
}

// pathTangent picks the chord direction for ring k: central differences in
// the interior, one-sided at open ends, wrapped around for closed paths.
func pathTangent(path []spatial.Pt3, k int, closed bool) spatial.Pt3 {
	last := len(path) - 1
	switch {
	case k == 0 && closed:
		return path[1].Sub(path[last])
	case k == 0:
		return path[1].Sub(path[0])
	case k == last && closed:
		return path[0].Sub(path[last-1])
	case k == last:
		return path[last].Sub(path[last-1])
	default:
		return path[k+1].Sub(path[k-1])
	}
}
