package scad

import "github.com/chazu/treen/pkg/spatial"

// OpData is the interface for statement-specific node payloads. The set of
// implementations is closed; the serializer matches over all of them.
type OpData interface {
	opData() // marker method restricting implementations to this package
}

// ---------------------------------------------------------------------------
// 2D shapes
// ---------------------------------------------------------------------------

// CircleData represents a circle in the XY plane. FA, FS and FN override the
// facet special variables when non-zero.
type CircleData struct {
	R      float64
	FA, FS float64
	FN     int
}

func (CircleData) opData() {}

// SquareData represents an axis-aligned rectangle in the XY plane.
type SquareData struct {
	Size   spatial.Pt2
	Center bool
}

func (SquareData) opData() {}

// PolygonData represents a 2D polygon. When Paths is nil the points form a
// single outline in order; otherwise each path indexes into Points and the
// first path is the outer outline.
type PolygonData struct {
	Points    []spatial.Pt2
	Paths     [][]int
	Convexity int
}

func (PolygonData) opData() {}

// TextData represents a text outline. Use DefaultText for the standard
// field values.
type TextData struct {
	Text      string
	Size      float64
	Font      string
	HAlign    string
	VAlign    string
	Spacing   float64
	Direction string
	Language  string
	Script    string
	FN        int
}

func (TextData) opData() {}

// DefaultText returns a TextData for s with the renderer's default size,
// font and alignment.
func DefaultText(s string) TextData {
	return TextData{
		Text:      s,
		Size:      10,
		Font:      "Liberation Sans",
		HAlign:    "left",
		VAlign:    "baseline",
		Spacing:   1,
		Direction: "ltr",
		Language:  "en",
		Script:    "latin",
	}
}

// ---------------------------------------------------------------------------
// 3D shapes
// ---------------------------------------------------------------------------

// SphereData represents a sphere centered on the origin.
type SphereData struct {
	R      float64
	FA, FS float64
	FN     int
}

func (SphereData) opData() {}

// CubeData represents an axis-aligned box.
type CubeData struct {
	Size   spatial.Pt3
	Center bool
}

func (CubeData) opData() {}

// CylinderData represents a cylinder or cone along +Z. R1 is the bottom
// radius, R2 the top.
type CylinderData struct {
	H      float64
	R1, R2 float64
	Center bool
	FA, FS float64
	FN     int
}

func (CylinderData) opData() {}

// PolyhedronData represents an explicit mesh. Faces index into Points and
// wind clockwise when viewed from outside the solid.
type PolyhedronData struct {
	Points    []spatial.Pt3
	Faces     [][]int
	Convexity int
}

func (PolyhedronData) opData() {}

// ImportData references an external model file.
type ImportData struct {
	File      string
	Convexity int
}

func (ImportData) opData() {}

// SurfaceData references a heightmap file.
type SurfaceData struct {
	File      string
	Center    bool
	Invert    bool
	Convexity int
}

func (SurfaceData) opData() {}

// ---------------------------------------------------------------------------
// 2D operators
// ---------------------------------------------------------------------------

// OffsetData grows or shrinks a 2D child outline. UseDelta selects the
// straight-edged delta form over the rounded radius form.
type OffsetData struct {
	R        float64
	Delta    float64
	Chamfer  bool
	UseDelta bool
}

func (OffsetData) opData() {}

// ProjectionData flattens 3D children onto the XY plane.
type ProjectionData struct {
	Cut bool
}

func (ProjectionData) opData() {}

// ---------------------------------------------------------------------------
// 2D to 3D
// ---------------------------------------------------------------------------

// LinearExtrudeData extrudes 2D children along +Z. Slices and FN override
// the tessellation when non-zero.
type LinearExtrudeData struct {
	Height    float64
	Center    bool
	Convexity int
	Twist     float64
	Scale     spatial.Pt2
	Slices    int
	FN        int
}

func (LinearExtrudeData) opData() {}

// RotateExtrudeData revolves 2D children about the Z axis.
type RotateExtrudeData struct {
	Angle     float64
	Convexity int
	FA, FS    float64
	FN        int
}

func (RotateExtrudeData) opData() {}

// ---------------------------------------------------------------------------
// Booleans
// ---------------------------------------------------------------------------

// UnionData merges all children. With no children it denotes the empty
// solid.
type UnionData struct{}

func (UnionData) opData() {}

// DifferenceData subtracts every child after the first from the first.
type DifferenceData struct{}

func (DifferenceData) opData() {}

// IntersectionData keeps only the space common to all children.
type IntersectionData struct{}

func (IntersectionData) opData() {}

// HullData takes the convex hull of the children.
type HullData struct{}

func (HullData) opData() {}

// MinkowskiData takes the Minkowski sum of the children.
type MinkowskiData struct {
	Convexity int
}

func (MinkowskiData) opData() {}

// ---------------------------------------------------------------------------
// Transforms
// ---------------------------------------------------------------------------

// TranslateData moves children by V.
type TranslateData struct {
	V spatial.Pt3
}

func (TranslateData) opData() {}

// RotateData rotates children. Exactly one form applies: Angles set means
// per-axis angles, Axis set means axis-angle, neither means Angle about +Z.
type RotateData struct {
	Angle  float64
	Axis   *spatial.Pt3
	Angles *spatial.Pt3
}

func (RotateData) opData() {}

// ScaleData scales children per axis.
type ScaleData struct {
	V spatial.Pt3
}

func (ScaleData) opData() {}

// ResizeData scales children to an absolute size. AutoXYZ, when set,
// controls per-axis auto sizing and overrides Auto.
type ResizeData struct {
	NewSize   spatial.Pt3
	Auto      bool
	AutoXYZ   *[3]bool
	Convexity int
}

func (ResizeData) opData() {}

// MirrorData reflects children across the plane through the origin with
// normal V.
type MirrorData struct {
	V spatial.Pt3
}

func (MirrorData) opData() {}

// MultMatrixData applies a raw affine matrix to children.
type MultMatrixData struct {
	M spatial.Mt4
}

func (MultMatrixData) opData() {}

// ColorData colors children. Exactly one form applies: RGBA set means
// numeric components, Hex set means a hex literal, otherwise Name with an
// optional Alpha.
type ColorData struct {
	RGBA  *[4]float64
	Name  string
	Hex   string
	Alpha *float64
}

func (ColorData) opData() {}

// opName returns the statement keyword for a payload, used in error context
// and by the serializer.
func opName(d OpData) string {
	switch d.(type) {
	case CircleData:
		return "circle"
	case SquareData:
		return "square"
	case PolygonData:
		return "polygon"
	case TextData:
		return "text"
	case SphereData:
		return "sphere"
	case CubeData:
		return "cube"
	case CylinderData:
		return "cylinder"
	case PolyhedronData:
		return "polyhedron"
	case ImportData:
		return "import"
	case SurfaceData:
		return "surface"
	case OffsetData:
		return "offset"
	case ProjectionData:
		return "projection"
	case LinearExtrudeData:
		return "linear_extrude"
	case RotateExtrudeData:
		return "rotate_extrude"
	case UnionData:
		return "union"
	case DifferenceData:
		return "difference"
	case IntersectionData:
		return "intersection"
	case HullData:
		return "hull"
	case MinkowskiData:
		return "minkowski"
	case TranslateData:
		return "translate"
	case RotateData:
		return "rotate"
	case ScaleData:
		return "scale"
	case ResizeData:
		return "resize"
	case MirrorData:
		return "mirror"
	case MultMatrixData:
		return "multmatrix"
	case ColorData:
		return "color"
	default:
		return "unknown"
	}
}
