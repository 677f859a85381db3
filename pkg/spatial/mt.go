package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Mt4 is a 4x4 homogeneous transform matrix. The zero value is not useful;
// start from Ident4 or one of the constructors.
type Mt4 mgl64.Mat4

// Mt3 is a 3x3 homogeneous transform matrix for the XY plane.
type Mt3 mgl64.Mat3

// Ident4 returns the 4x4 identity.
func Ident4() Mt4 {
	return Mt4(mgl64.Ident4())
}

// Translation returns the matrix translating by v.
func Translation(v Pt3) Mt4 {
	return Mt4(mgl64.Translate3D(v.X, v.Y, v.Z))
}

// Scaling returns the matrix scaling each axis by the matching component of v.
func Scaling(v Pt3) Mt4 {
	return Mt4(mgl64.Scale3D(v.X, v.Y, v.Z))
}

// RotationX returns the right-handed rotation about +X by degrees.
func RotationX(degrees float64) Mt4 {
	return Mt4(mgl64.HomogRotate3DX(Radians(degrees)))
}

// RotationY returns the right-handed rotation about +Y by degrees.
func RotationY(degrees float64) Mt4 {
	return Mt4(mgl64.HomogRotate3DY(Radians(degrees)))
}

// RotationZ returns the right-handed rotation about +Z by degrees.
func RotationZ(degrees float64) Mt4 {
	return Mt4(mgl64.HomogRotate3DZ(Radians(degrees)))
}

// RotationXYZ rotates about X, then Y, then Z, matching rotate(a=[x, y, z])
// in the script format.
func RotationXYZ(angles Pt3) Mt4 {
	z := mgl64.HomogRotate3DZ(Radians(angles.Z))
	y := mgl64.HomogRotate3DY(Radians(angles.Y))
	x := mgl64.HomogRotate3DX(Radians(angles.X))
	return Mt4(z.Mul4(y).Mul4(x))
}

// RotationAxis returns the right-handed rotation about an arbitrary axis by
// degrees. A zero-length axis returns a DegenerateGeometryError.
func RotationAxis(axis Pt3, degrees float64) (Mt4, error) {
	n, err := axis.Normalized()
	if err != nil {
		return Ident4(), &DegenerateGeometryError{Op: "rotation", Detail: "zero-length axis"}
	}
	q := mgl64.QuatRotate(Radians(degrees), n.vec3())
	return Mt4(q.Mat4()), nil
}

// Reflection returns the matrix mirroring across the plane through the origin
// with the given normal. A zero-length normal returns a
// DegenerateGeometryError.
func Reflection(normal Pt3) (Mt4, error) {
	n, err := normal.Normalized()
	if err != nil {
		return Ident4(), &DegenerateGeometryError{Op: "reflection", Detail: "zero-length normal"}
	}
	// Householder: I - 2nnT, embedded in the rotation block. Columns listed
	// first since mgl64 matrices are column major.
	return Mt4(mgl64.Mat4{
		1 - 2*n.X*n.X, -2*n.X*n.Y, -2*n.X*n.Z, 0,
		-2*n.X*n.Y, 1 - 2*n.Y*n.Y, -2*n.Y*n.Z, 0,
		-2*n.X*n.Z, -2*n.Y*n.Z, 1 - 2*n.Z*n.Z, 0,
		0, 0, 0, 1,
	}), nil
}

// LookAlong returns the rotation taking the +Z axis onto dir. up breaks the
// roll ambiguity. When dir is parallel to up the frame falls back to the
// identity, or to a half turn about X when anti-parallel, so vertical path
// segments stay usable.
func LookAlong(dir, up Pt3) (Mt4, error) {
	f, err := dir.Normalized()
	if err != nil {
		return Ident4(), &DegenerateGeometryError{Op: "look along", Detail: "zero-length direction"}
	}
	s := up.Cross(f)
	if s.Len2() == 0 {
		if up.Dot(f) < 0 {
			return RotationX(180), nil
		}
		return Ident4(), nil
	}
	s, err = s.Normalized()
	if err != nil {
		return Ident4(), err
	}
	u := f.Cross(s)
	return Mt4(mgl64.Mat4{
		s.X, s.Y, s.Z, 0,
		u.X, u.Y, u.Z, 0,
		f.X, f.Y, f.Z, 0,
		0, 0, 0, 1,
	}), nil
}

// Mul returns m*o. Applied to a point, o acts first.
func (m Mt4) Mul(o Mt4) Mt4 {
	return Mt4(mgl64.Mat4(m).Mul4(mgl64.Mat4(o)))
}

// MulPt3 transforms a point, including translation.
func (m Mt4) MulPt3(p Pt3) Pt3 {
	v := mgl64.Mat4(m).Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Pt3{v[0], v[1], v[2]}
}

// MulVec3 transforms a direction, ignoring translation.
func (m Mt4) MulVec3(p Pt3) Pt3 {
	v := mgl64.Mat4(m).Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 0})
	return Pt3{v[0], v[1], v[2]}
}

// Transposed returns the transpose.
func (m Mt4) Transposed() Mt4 {
	return Mt4(mgl64.Mat4(m).Transpose())
}

// Det returns the determinant.
func (m Mt4) Det() float64 {
	return mgl64.Mat4(m).Det()
}

// Inverse returns the inverse matrix. A determinant of exactly zero, as
// produced by a zero scale factor, returns a DegenerateGeometryError.
func (m Mt4) Inverse() (Mt4, error) {
	if m.Det() == 0 {
		return Ident4(), &DegenerateGeometryError{Op: "inverse", Detail: "singular matrix"}
	}
	return Mt4(mgl64.Mat4(m).Inv()), nil
}

// At returns the element at the given row and column.
func (m Mt4) At(row, col int) float64 {
	return mgl64.Mat4(m).At(row, col)
}

// Ident3 returns the 3x3 identity.
func Ident3() Mt3 {
	return Mt3(mgl64.Ident3())
}

// Translation2 returns the matrix translating the XY plane by v.
func Translation2(v Pt2) Mt3 {
	return Mt3(mgl64.Translate2D(v.X, v.Y))
}

// Rotation2 returns the counterclockwise rotation of the XY plane by degrees.
func Rotation2(degrees float64) Mt3 {
	return Mt3(mgl64.HomogRotate2D(Radians(degrees)))
}

// Scaling2 returns the matrix scaling the XY plane by the components of v.
func Scaling2(v Pt2) Mt3 {
	return Mt3(mgl64.Scale2D(v.X, v.Y))
}

// Mul returns m*o. Applied to a point, o acts first.
func (m Mt3) Mul(o Mt3) Mt3 {
	return Mt3(mgl64.Mat3(m).Mul3(mgl64.Mat3(o)))
}

// MulPt2 transforms a point, including translation.
func (m Mt3) MulPt2(p Pt2) Pt2 {
	v := mgl64.Mat3(m).Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Pt2{v[0], v[1]}
}

// MulVec2 transforms a direction, ignoring translation.
func (m Mt3) MulVec2(p Pt2) Pt2 {
	v := mgl64.Mat3(m).Mul3x1(mgl64.Vec3{p.X, p.Y, 0})
	return Pt2{v[0], v[1]}
}

// Transposed returns the transpose.
func (m Mt3) Transposed() Mt3 {
	return Mt3(mgl64.Mat3(m).Transpose())
}

// Det returns the determinant.
func (m Mt3) Det() float64 {
	return mgl64.Mat3(m).Det()
}

// Inverse returns the inverse matrix. A determinant of exactly zero returns
// a DegenerateGeometryError.
func (m Mt3) Inverse() (Mt3, error) {
	if m.Det() == 0 {
		return Ident3(), &DegenerateGeometryError{Op: "inverse", Detail: "singular matrix"}
	}
	return Mt3(mgl64.Mat3(m).Inv()), nil
}

// At returns the element at the given row and column.
func (m Mt3) At(row, col int) float64 {
	return mgl64.Mat3(m).At(row, col)
}
