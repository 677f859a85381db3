package scad

// Validate runs all checks over the subtree rooted at n and returns every
// finding. An empty slice means the tree serializes to a well-formed script.
// Constructors already reject bad arguments; Validate exists for trees
// assembled by hand or mutated after construction. It never modifies the
// tree.
func Validate(root *Node) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateStructure(root)...)
	errs = append(errs, validateArgs(root)...)
	return errs
}

// validateStructure checks tree shape: no nil nodes, no payload-less nodes,
// and no node attached in two places. A reused pointer aliases subtrees,
// breaking the one-parent ownership rule, and a cycle would hang traversal.
func validateStructure(root *Node) []ValidationError {
	var errs []ValidationError
	seen := make(map[*Node]bool)

	var visit func(n *Node)
	visit = func(n *Node) {
		if seen[n] {
			errs = append(errs, ValidationError{
				Op:       opName(n.Data),
				Message:  "node attached more than once; each node takes exactly one parent",
				Severity: SeverityError,
			})
			return
		}
		seen[n] = true
		for i, c := range n.Children {
			if c == nil {
				errs = append(errs, invalidf(opName(n.Data), "children", "child %d is nil", i))
				continue
			}
			visit(c)
		}
	}

	if root == nil {
		return []ValidationError{{Message: "root node is nil", Severity: SeverityError}}
	}
	visit(root)
	return errs
}

// validateArgs re-applies the constructor argument rules to every payload in
// the subtree.
func validateArgs(root *Node) []ValidationError {
	if root == nil {
		return nil
	}
	errs := checkData(root.Data)
	for _, c := range root.Children {
		if c == nil {
			continue
		}
		errs = append(errs, validateArgs(c)...)
	}
	return errs
}

func checkData(d OpData) []ValidationError {
	var errs []ValidationError
	switch d := d.(type) {
	case CircleData:
		if d.R < 0 {
			errs = append(errs, invalidf("circle", "r", "radius is %.4f, must be non-negative", d.R))
		}
	case SquareData:
		if d.Size.X < 0 || d.Size.Y < 0 {
			errs = append(errs, invalidf("square", "size", "size is [%.4f, %.4f], must be non-negative", d.Size.X, d.Size.Y))
		}
	case PolygonData:
		if d.Paths == nil && len(d.Points) < 3 {
			errs = append(errs, invalidf("polygon", "points", "outline has %d points, need at least 3", len(d.Points)))
		}
		for i, path := range d.Paths {
			if len(path) < 3 {
				errs = append(errs, invalidf("polygon", "paths", "path %d has %d points, need at least 3", i, len(path)))
			}
			for _, idx := range path {
				if idx < 0 || idx >= len(d.Points) {
					errs = append(errs, invalidf("polygon", "paths", "path %d references point %d, have %d points", i, idx, len(d.Points)))
				}
			}
		}
	case TextData:
		if d.Size <= 0 {
			errs = append(errs, invalidf("text", "size", "size is %.4f, must be positive", d.Size))
		}
		if d.Spacing <= 0 {
			errs = append(errs, invalidf("text", "spacing", "spacing is %.4f, must be positive", d.Spacing))
		}
	case SphereData:
		if d.R < 0 {
			errs = append(errs, invalidf("sphere", "r", "radius is %.4f, must be non-negative", d.R))
		}
	case CubeData:
		if d.Size.X < 0 || d.Size.Y < 0 || d.Size.Z < 0 {
			errs = append(errs, invalidf("cube", "size", "size is [%.4f, %.4f, %.4f], must be non-negative", d.Size.X, d.Size.Y, d.Size.Z))
		}
	case CylinderData:
		if d.H < 0 {
			errs = append(errs, invalidf("cylinder", "h", "height is %.4f, must be non-negative", d.H))
		}
		if d.R1 < 0 || d.R2 < 0 {
			errs = append(errs, invalidf("cylinder", "r", "radii are %.4f and %.4f, must be non-negative", d.R1, d.R2))
		}
	case PolyhedronData:
		for i, face := range d.Faces {
			if len(face) < 3 {
				errs = append(errs, invalidf("polyhedron", "faces", "face %d has %d vertices, need at least 3", i, len(face)))
			}
			for _, idx := range face {
				if idx < 0 || idx >= len(d.Points) {
					errs = append(errs, invalidf("polyhedron", "faces", "face %d references point %d, have %d points", i, idx, len(d.Points)))
				}
			}
		}
	case ImportData:
		if d.File == "" {
			errs = append(errs, invalidf("import", "file", "file name is empty"))
		}
	case SurfaceData:
		if d.File == "" {
			errs = append(errs, invalidf("surface", "file", "file name is empty"))
		}
	case LinearExtrudeData:
		if d.Height <= 0 {
			errs = append(errs, invalidf("linear_extrude", "height", "height is %.4f, must be positive", d.Height))
		}
		if d.Scale.X < 0 || d.Scale.Y < 0 {
			errs = append(errs, invalidf("linear_extrude", "scale", "scale is [%.4f, %.4f], must be non-negative", d.Scale.X, d.Scale.Y))
		}
	case RotateExtrudeData:
		if d.Angle <= 0 || d.Angle > 360 {
			errs = append(errs, invalidf("rotate_extrude", "angle", "angle is %.4f, must be in (0, 360]", d.Angle))
		}
	case ColorData:
		switch {
		case d.RGBA != nil:
			for _, c := range d.RGBA {
				if c < 0 || c > 1 {
					errs = append(errs, invalidf("color", "c", "component is %.4f, must be in [0, 1]", c))
				}
			}
		case d.Hex != "":
			if !validHexColor(d.Hex) {
				errs = append(errs, invalidf("color", "hex", "malformed hex color '%s'", d.Hex))
			}
		default:
			if !knownColor(d.Name) {
				errs = append(errs, invalidf("color", "name", "unknown color '%s'", d.Name))
			}
		}
	}
	return errs
}
