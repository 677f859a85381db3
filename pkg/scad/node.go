package scad

import "github.com/chazu/treen/pkg/spatial"

// Modifier is the debug prefix attached to a statement.
type Modifier int

const (
	ModNone       Modifier = iota
	ModDisable             // *
	ModShowOnly            // !
	ModHighlight           // #
	ModBackground          // %
)

func (m Modifier) String() string {
	switch m {
	case ModDisable:
		return "*"
	case ModShowOnly:
		return "!"
	case ModHighlight:
		return "#"
	case ModBackground:
		return "%"
	default:
		return ""
	}
}

// Node is one statement in the scene tree. Children belong to exactly one
// parent; attach a node once and build shared shapes with a constructor per
// use instead. Nodes do not point back at their parents.
type Node struct {
	Data     OpData
	Children []*Node
	Mod      Modifier
}

// Add appends children in order and returns n for chaining. Child order is
// meaningful: difference subtracts later children from the first.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Fn sets the $fn facet count on payloads that accept it and returns n.
// Payloads without facet control are left unchanged.
func (n *Node) Fn(count int) *Node {
	switch d := n.Data.(type) {
	case CircleData:
		d.FN = count
		n.Data = d
	case SphereData:
		d.FN = count
		n.Data = d
	case CylinderData:
		d.FN = count
		n.Data = d
	case TextData:
		d.FN = count
		n.Data = d
	case LinearExtrudeData:
		d.FN = count
		n.Data = d
	case RotateExtrudeData:
		d.FN = count
		n.Data = d
	}
	return n
}

// FacetAngle sets $fa on payloads that accept it and returns n.
func (n *Node) FacetAngle(fa float64) *Node {
	switch d := n.Data.(type) {
	case CircleData:
		d.FA = fa
		n.Data = d
	case SphereData:
		d.FA = fa
		n.Data = d
	case CylinderData:
		d.FA = fa
		n.Data = d
	case RotateExtrudeData:
		d.FA = fa
		n.Data = d
	}
	return n
}

// FacetSize sets $fs on payloads that accept it and returns n.
func (n *Node) FacetSize(fs float64) *Node {
	switch d := n.Data.(type) {
	case CircleData:
		d.FS = fs
		n.Data = d
	case SphereData:
		d.FS = fs
		n.Data = d
	case CylinderData:
		d.FS = fs
		n.Data = d
	case RotateExtrudeData:
		d.FS = fs
		n.Data = d
	}
	return n
}

// Alpha sets the alpha on a named or hex color payload and returns n.
func (n *Node) Alpha(a float64) *Node {
	if d, ok := n.Data.(ColorData); ok && d.RGBA == nil {
		d.Alpha = &a
		n.Data = d
	}
	return n
}

// Disable marks the statement with * so the renderer skips it.
func (n *Node) Disable() *Node {
	n.Mod = ModDisable
	return n
}

// ShowOnly marks the statement with ! so the renderer shows only it.
func (n *Node) ShowOnly() *Node {
	n.Mod = ModShowOnly
	return n
}

// Highlight marks the statement with # so the renderer tints it.
func (n *Node) Highlight() *Node {
	n.Mod = ModHighlight
	return n
}

// Background marks the statement with % so the renderer ghosts it.
func (n *Node) Background() *Node {
	n.Mod = ModBackground
	return n
}

// ---------------------------------------------------------------------------
// 2D shapes
// ---------------------------------------------------------------------------

// Circle builds a circle of radius r.
func Circle(r float64) (*Node, error) {
	if r < 0 {
		return nil, invalidf("circle", "r", "radius is %.4f, must be non-negative", r)
	}
	return &Node{Data: CircleData{R: r}}, nil
}

// Square builds a rectangle with the given size. center places it about the
// origin instead of the first quadrant.
func Square(size spatial.Pt2, center bool) (*Node, error) {
	if size.X < 0 || size.Y < 0 {
		return nil, invalidf("square", "size", "size is [%.4f, %.4f], must be non-negative", size.X, size.Y)
	}
	return &Node{Data: SquareData{Size: size, Center: center}}, nil
}

// Polygon builds a polygon from an outline of at least three points.
func Polygon(points []spatial.Pt2) (*Node, error) {
	if len(points) < 3 {
		return nil, invalidf("polygon", "points", "outline has %d points, need at least 3", len(points))
	}
	return &Node{Data: PolygonData{Points: points}}, nil
}

// PolygonPaths builds a polygon from a shared point pool and one or more
// index paths. The first path is the outer outline, the rest are holes.
func PolygonPaths(points []spatial.Pt2, paths [][]int, convexity int) (*Node, error) {
	if len(paths) == 0 {
		return nil, invalidf("polygon", "paths", "no paths given")
	}
	for i, path := range paths {
		if len(path) < 3 {
			return nil, invalidf("polygon", "paths", "path %d has %d points, need at least 3", i, len(path))
		}
		for _, idx := range path {
			if idx < 0 || idx >= len(points) {
				return nil, invalidf("polygon", "paths", "path %d references point %d, have %d points", i, idx, len(points))
			}
		}
	}
	if convexity < 1 {
		convexity = 1
	}
	return &Node{Data: PolygonData{Points: points, Paths: paths, Convexity: convexity}}, nil
}

// Text builds a text outline with default styling. Use TextWith for full
// control.
func Text(s string) (*Node, error) {
	return TextWith(DefaultText(s))
}

// TextWith builds a text outline from an explicit TextData.
func TextWith(d TextData) (*Node, error) {
	if d.Size <= 0 {
		return nil, invalidf("text", "size", "size is %.4f, must be positive", d.Size)
	}
	if d.Spacing <= 0 {
		return nil, invalidf("text", "spacing", "spacing is %.4f, must be positive", d.Spacing)
	}
	switch d.HAlign {
	case "left", "center", "right":
	default:
		return nil, invalidf("text", "halign", "unknown alignment '%s'", d.HAlign)
	}
	switch d.VAlign {
	case "top", "center", "baseline", "bottom":
	default:
		return nil, invalidf("text", "valign", "unknown alignment '%s'", d.VAlign)
	}
	switch d.Direction {
	case "ltr", "rtl", "ttb", "btt":
	default:
		return nil, invalidf("text", "direction", "unknown direction '%s'", d.Direction)
	}
	return &Node{Data: d}, nil
}

// ---------------------------------------------------------------------------
// 3D shapes
// ---------------------------------------------------------------------------

// Sphere builds a sphere of radius r centered on the origin.
func Sphere(r float64) (*Node, error) {
	if r < 0 {
		return nil, invalidf("sphere", "r", "radius is %.4f, must be non-negative", r)
	}
	return &Node{Data: SphereData{R: r}}, nil
}

// Cube builds a box with the given size. center places it about the origin
// instead of the first octant.
func Cube(size spatial.Pt3, center bool) (*Node, error) {
	if size.X < 0 || size.Y < 0 || size.Z < 0 {
		return nil, invalidf("cube", "size", "size is [%.4f, %.4f, %.4f], must be non-negative", size.X, size.Y, size.Z)
	}
	return &Node{Data: CubeData{Size: size, Center: center}}, nil
}

// Cylinder builds a cylinder or cone of height h along +Z with bottom radius
// r1 and top radius r2.
func Cylinder(h, r1, r2 float64, center bool) (*Node, error) {
	if h < 0 {
		return nil, invalidf("cylinder", "h", "height is %.4f, must be non-negative", h)
	}
	if r1 < 0 || r2 < 0 {
		return nil, invalidf("cylinder", "r", "radii are %.4f and %.4f, must be non-negative", r1, r2)
	}
	return &Node{Data: CylinderData{H: h, R1: r1, R2: r2, Center: center}}, nil
}

// Polyhedron builds an explicit mesh. Every face must hold at least three
// indices, each within the point list. Faces wind clockwise seen from
// outside.
func Polyhedron(points []spatial.Pt3, faces [][]int, convexity int) (*Node, error) {
	for i, face := range faces {
		if len(face) < 3 {
			return nil, invalidf("polyhedron", "faces", "face %d has %d vertices, need at least 3", i, len(face))
		}
		for _, idx := range face {
			if idx < 0 || idx >= len(points) {
				return nil, invalidf("polyhedron", "faces", "face %d references point %d, have %d points", i, idx, len(points))
			}
		}
	}
	if convexity < 1 {
		convexity = 1
	}
	return &Node{Data: PolyhedronData{Points: points, Faces: faces, Convexity: convexity}}, nil
}

// Import references an external model file such as an STL.
func Import(file string, convexity int) (*Node, error) {
	if file == "" {
		return nil, invalidf("import", "file", "file name is empty")
	}
	if convexity < 1 {
		convexity = 1
	}
	return &Node{Data: ImportData{File: file, Convexity: convexity}}, nil
}

// Surface references a heightmap file.
func Surface(file string, center, invert bool, convexity int) (*Node, error) {
	if file == "" {
		return nil, invalidf("surface", "file", "file name is empty")
	}
	if convexity < 1 {
		convexity = 1
	}
	return &Node{Data: SurfaceData{File: file, Center: center, Invert: invert, Convexity: convexity}}, nil
}

// ---------------------------------------------------------------------------
// Operators
// ---------------------------------------------------------------------------

// Offset rounds a 2D child outline outward (or inward for negative r).
func Offset(r float64, children ...*Node) *Node {
	return &Node{Data: OffsetData{R: r}, Children: children}
}

// OffsetDelta grows a 2D child outline with straight edges, optionally
// chamfering corners.
func OffsetDelta(delta float64, chamfer bool, children ...*Node) *Node {
	return &Node{Data: OffsetData{Delta: delta, Chamfer: chamfer, UseDelta: true}, Children: children}
}

// Projection flattens 3D children onto the XY plane. cut keeps only the
// slice through z=0.
func Projection(cut bool, children ...*Node) *Node {
	return &Node{Data: ProjectionData{Cut: cut}, Children: children}
}

// LinearExtrude extrudes 2D children to the given height, optionally
// twisting by twist degrees and scaling the top by scale.
func LinearExtrude(height float64, center bool, convexity int, twist float64, scale spatial.Pt2, children ...*Node) (*Node, error) {
	if height <= 0 {
		return nil, invalidf("linear_extrude", "height", "height is %.4f, must be positive", height)
	}
	if scale.X < 0 || scale.Y < 0 {
		return nil, invalidf("linear_extrude", "scale", "scale is [%.4f, %.4f], must be non-negative", scale.X, scale.Y)
	}
	if convexity < 1 {
		convexity = 1
	}
	return &Node{
		Data:     LinearExtrudeData{Height: height, Center: center, Convexity: convexity, Twist: twist, Scale: scale},
		Children: children,
	}, nil
}

// RotateExtrude revolves 2D children about the Z axis through angle degrees.
func RotateExtrude(angle float64, convexity int, children ...*Node) (*Node, error) {
	if angle <= 0 || angle > 360 {
		return nil, invalidf("rotate_extrude", "angle", "angle is %.4f, must be in (0, 360]", angle)
	}
	if convexity < 1 {
		convexity = 1
	}
	return &Node{Data: RotateExtrudeData{Angle: angle, Convexity: convexity}, Children: children}, nil
}

// Union merges children. A union with no children is the empty solid and
// still serializes to a complete statement.
func Union(children ...*Node) *Node {
	return &Node{Data: UnionData{}, Children: children}
}

// Difference subtracts every child after the first from the first.
func Difference(children ...*Node) *Node {
	return &Node{Data: DifferenceData{}, Children: children}
}

// Intersection keeps the space common to all children.
func Intersection(children ...*Node) *Node {
	return &Node{Data: IntersectionData{}, Children: children}
}

// Hull takes the convex hull of the children.
func Hull(children ...*Node) *Node {
	return &Node{Data: HullData{}, Children: children}
}

// Minkowski takes the Minkowski sum of the children.
func Minkowski(convexity int, children ...*Node) *Node {
	if convexity < 1 {
		convexity = 1
	}
	return &Node{Data: MinkowskiData{Convexity: convexity}, Children: children}
}

// Translate moves children by v.
func Translate(v spatial.Pt3, children ...*Node) *Node {
	return &Node{Data: TranslateData{V: v}, Children: children}
}

// Rotate rotates children about +Z by degrees.
func Rotate(degrees float64, children ...*Node) *Node {
	return &Node{Data: RotateData{Angle: degrees}, Children: children}
}

// RotateAxis rotates children about an arbitrary axis by degrees.
func RotateAxis(degrees float64, axis spatial.Pt3, children ...*Node) *Node {
	return &Node{Data: RotateData{Angle: degrees, Axis: &axis}, Children: children}
}

// RotateXYZ rotates children about X, then Y, then Z by the components of
// angles, in degrees.
func RotateXYZ(angles spatial.Pt3, children ...*Node) *Node {
	return &Node{Data: RotateData{Angles: &angles}, Children: children}
}

// Scale scales children per axis by the components of v.
func Scale(v spatial.Pt3, children ...*Node) *Node {
	return &Node{Data: ScaleData{V: v}, Children: children}
}

// Resize scales children to newSize. auto sizes zero components
// proportionally.
func Resize(newSize spatial.Pt3, auto bool, convexity int, children ...*Node) *Node {
	if convexity < 1 {
		convexity = 1
	}
	return &Node{Data: ResizeData{NewSize: newSize, Auto: auto, Convexity: convexity}, Children: children}
}

// ResizeXYZ scales children to newSize with per-axis auto control.
func ResizeXYZ(newSize spatial.Pt3, auto [3]bool, convexity int, children ...*Node) *Node {
	if convexity < 1 {
		convexity = 1
	}
	return &Node{Data: ResizeData{NewSize: newSize, AutoXYZ: &auto, Convexity: convexity}, Children: children}
}

// Mirror reflects children across the plane through the origin with the
// given normal.
func Mirror(normal spatial.Pt3, children ...*Node) *Node {
	return &Node{Data: MirrorData{V: normal}, Children: children}
}

// MultMatrix applies a raw affine matrix to children.
func MultMatrix(m spatial.Mt4, children ...*Node) *Node {
	return &Node{Data: MultMatrixData{M: m}, Children: children}
}

// Transformed wraps children in the statement matching how t was built:
// translate, rotate, scale, mirror or multmatrix.
func Transformed(t spatial.Transform, children ...*Node) *Node {
	switch t.Kind {
	case spatial.TransformTranslate:
		return Translate(t.Vec, children...)
	case spatial.TransformRotate:
		if t.Euler {
			return RotateXYZ(t.Vec, children...)
		}
		return RotateAxis(t.Angle, t.Vec, children...)
	case spatial.TransformScale:
		return Scale(t.Vec, children...)
	case spatial.TransformMirror:
		return Mirror(t.Vec, children...)
	default:
		return MultMatrix(t.M, children...)
	}
}

// ColorRGBA colors children with components in [0, 1].
func ColorRGBA(r, g, b, a float64, children ...*Node) (*Node, error) {
	for _, c := range [4]float64{r, g, b, a} {
		if c < 0 || c > 1 {
			return nil, invalidf("color", "c", "component is %.4f, must be in [0, 1]", c)
		}
	}
	rgba := [4]float64{r, g, b, a}
	return &Node{Data: ColorData{RGBA: &rgba}, Children: children}, nil
}

// ColorName colors children with a named web color such as "Peru".
func ColorName(name string, children ...*Node) (*Node, error) {
	if !knownColor(name) {
		return nil, invalidf("color", "name", "unknown color '%s'", name)
	}
	return &Node{Data: ColorData{Name: name}, Children: children}, nil
}

// ColorHex colors children with a hex literal of the form #rgb, #rgba,
// #rrggbb or #rrggbbaa.
func ColorHex(hex string, children ...*Node) (*Node, error) {
	if !validHexColor(hex) {
		return nil, invalidf("color", "hex", "malformed hex color '%s'", hex)
	}
	return &Node{Data: ColorData{Hex: hex}, Children: children}, nil
}
