package spatial

// TransformKind identifies how a Transform was built. Serialization uses it
// to pick the matching script statement instead of flattening everything to
// a raw matrix.
type TransformKind int

const (
	TransformTranslate TransformKind = iota
	TransformRotate
	TransformScale
	TransformMirror
	TransformMatrix
)

func (k TransformKind) String() string {
	switch k {
	case TransformTranslate:
		return "translate"
	case TransformRotate:
		return "rotate"
	case TransformScale:
		return "scale"
	case TransformMirror:
		return "mirror"
	case TransformMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// Transform is an affine transform that remembers how it was built. Vec
// holds the translation vector, scale factors, mirror normal, rotation axis
// or rotation angles depending on Kind. Angle holds the rotation in degrees
// for axis-angle rotations; Euler marks rotations given as per-axis angles.
type Transform struct {
	Kind  TransformKind
	Vec   Pt3
	Angle float64
	Euler bool
	M     Mt4
}

// Translate builds a translation by v.
func Translate(v Pt3) Transform {
	return Transform{Kind: TransformTranslate, Vec: v, M: Translation(v)}
}

// Scale builds a per-axis scale by the components of v.
func Scale(v Pt3) Transform {
	return Transform{Kind: TransformScale, Vec: v, M: Scaling(v)}
}

// Rotate builds a right-handed rotation about axis by degrees. A zero-length
// axis returns a DegenerateGeometryError.
func Rotate(axis Pt3, degrees float64) (Transform, error) {
	m, err := RotationAxis(axis, degrees)
	if err != nil {
		return Transform{}, err
	}
	return Transform{Kind: TransformRotate, Vec: axis, Angle: degrees, M: m}, nil
}

// RotateXYZ builds a rotation about X, then Y, then Z by the matching
// components of angles, in degrees.
func RotateXYZ(angles Pt3) Transform {
	return Transform{Kind: TransformRotate, Vec: angles, Euler: true, M: RotationXYZ(angles)}
}

// Mirror builds a reflection across the plane through the origin with the
// given normal. A zero-length normal returns a DegenerateGeometryError.
func Mirror(normal Pt3) (Transform, error) {
	m, err := Reflection(normal)
	if err != nil {
		return Transform{}, err
	}
	return Transform{Kind: TransformMirror, Vec: normal, M: m}, nil
}

// Matrix wraps a raw matrix as a Transform.
func Matrix(m Mt4) Transform {
	return Transform{Kind: TransformMatrix, M: m}
}

// Compose combines two transforms so that b applies first, then a. This is
// the same order as nesting b inside a in the emitted script.
func Compose(a, b Transform) Transform {
	return Transform{Kind: TransformMatrix, M: a.M.Mul(b.M)}
}

// Apply transforms the point p.
func (t Transform) Apply(p Pt3) Pt3 {
	return t.M.MulPt3(p)
}

// Inverse returns the transform undoing t. Translations, rotations, scales
// and mirrors invert to their own kind; everything else falls back to a
// matrix inverse. A zero scale factor or singular matrix returns a
// DegenerateGeometryError.
func (t Transform) Inverse() (Transform, error) {
	switch t.Kind {
	case TransformTranslate:
		return Translate(t.Vec.Neg()), nil
	case TransformRotate:
		if !t.Euler {
			return Rotate(t.Vec, -t.Angle)
		}
	case TransformScale:
		if t.Vec.X == 0 || t.Vec.Y == 0 || t.Vec.Z == 0 {
			return Transform{}, &DegenerateGeometryError{Op: "inverse", Detail: "zero scale factor"}
		}
		return Scale(Pt3{1 / t.Vec.X, 1 / t.Vec.Y, 1 / t.Vec.Z}), nil
	case TransformMirror:
		return t, nil
	}
	m, err := t.M.Inverse()
	if err != nil {
		return Transform{}, err
	}
	return Matrix(m), nil
}
