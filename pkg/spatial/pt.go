package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pt2 is a point or vector in the XY plane.
type Pt2 struct {
	X, Y float64
}

// P2 builds a Pt2.
func P2(x, y float64) Pt2 {
	return Pt2{X: x, Y: y}
}

func (p Pt2) Add(o Pt2) Pt2 { return Pt2{p.X + o.X, p.Y + o.Y} }
func (p Pt2) Sub(o Pt2) Pt2 { return Pt2{p.X - o.X, p.Y - o.Y} }
func (p Pt2) Neg() Pt2      { return Pt2{-p.X, -p.Y} }

// Mul scales both components by s.
func (p Pt2) Mul(s float64) Pt2 { return Pt2{p.X * s, p.Y * s} }

// Div divides both components by s.
func (p Pt2) Div(s float64) Pt2 { return Pt2{p.X / s, p.Y / s} }

// Dot returns the dot product p·o.
func (p Pt2) Dot(o Pt2) float64 { return p.X*o.X + p.Y*o.Y }

// Cross returns the z component of the cross product, positive when o lies
// counterclockwise of p.
func (p Pt2) Cross(o Pt2) float64 { return p.X*o.Y - p.Y*o.X }

// Len2 returns the squared length.
func (p Pt2) Len2() float64 { return p.Dot(p) }

// Len returns the length.
func (p Pt2) Len() float64 { return math.Sqrt(p.Len2()) }

// Normalized returns p scaled to unit length. A zero-length input returns a
// DegenerateGeometryError.
func (p Pt2) Normalized() (Pt2, error) {
	l := p.Len()
	if l == 0 {
		return Pt2{}, &DegenerateGeometryError{Op: "normalize", Detail: "zero-length 2d vector"}
	}
	return p.Div(l), nil
}

// Lerp interpolates from p to o. t=0 yields p, t=1 yields o.
func (p Pt2) Lerp(o Pt2, t float64) Pt2 {
	return p.Add(o.Sub(p).Mul(t))
}

// Rotated rotates p counterclockwise about the origin by the given angle in
// degrees.
func (p Pt2) Rotated(degrees float64) Pt2 {
	c, s := Cosd(degrees), Sind(degrees)
	return Pt2{p.X*c - p.Y*s, p.X*s + p.Y*c}
}

// AsPt3 lifts p into 3D with the given z.
func (p Pt2) AsPt3(z float64) Pt3 { return Pt3{p.X, p.Y, z} }

// ToXZ places p in the XZ plane, mapping Y to Z. Revolved profiles use this
// orientation so that profile height runs along the axis of revolution.
func (p Pt2) ToXZ() Pt3 { return Pt3{p.X, 0, p.Y} }

// Pt3 is a point or vector in 3D space.
type Pt3 struct {
	X, Y, Z float64
}

// P3 builds a Pt3.
func P3(x, y, z float64) Pt3 {
	return Pt3{X: x, Y: y, Z: z}
}

func (p Pt3) Add(o Pt3) Pt3 { return Pt3{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Pt3) Sub(o Pt3) Pt3 { return Pt3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Pt3) Neg() Pt3      { return Pt3{-p.X, -p.Y, -p.Z} }

// Mul scales all components by s.
func (p Pt3) Mul(s float64) Pt3 { return Pt3{p.X * s, p.Y * s, p.Z * s} }

// Div divides all components by s.
func (p Pt3) Div(s float64) Pt3 { return Pt3{p.X / s, p.Y / s, p.Z / s} }

// Dot returns the dot product p·o.
func (p Pt3) Dot(o Pt3) float64 { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }

// Cross returns the cross product p×o.
func (p Pt3) Cross(o Pt3) Pt3 {
	return Pt3{
		p.Y*o.Z - p.Z*o.Y,
		p.Z*o.X - p.X*o.Z,
		p.X*o.Y - p.Y*o.X,
	}
}

// Len2 returns the squared length.
func (p Pt3) Len2() float64 { return p.Dot(p) }

// Len returns the length.
func (p Pt3) Len() float64 { return math.Sqrt(p.Len2()) }

// Normalized returns p scaled to unit length. A zero-length input returns a
// DegenerateGeometryError.
func (p Pt3) Normalized() (Pt3, error) {
	l := p.Len()
	if l == 0 {
		return Pt3{}, &DegenerateGeometryError{Op: "normalize", Detail: "zero-length 3d vector"}
	}
	return p.Div(l), nil
}

// Lerp interpolates from p to o. t=0 yields p, t=1 yields o.
func (p Pt3) Lerp(o Pt3, t float64) Pt3 {
	return p.Add(o.Sub(p).Mul(t))
}

// RotatedX rotates p about the +X axis by the given angle in degrees,
// following the right-hand rule.
func (p Pt3) RotatedX(degrees float64) Pt3 {
	c, s := Cosd(degrees), Sind(degrees)
	return Pt3{p.X, p.Y*c - p.Z*s, p.Y*s + p.Z*c}
}

// RotatedY rotates p about the +Y axis by the given angle in degrees,
// following the right-hand rule.
func (p Pt3) RotatedY(degrees float64) Pt3 {
	c, s := Cosd(degrees), Sind(degrees)
	return Pt3{p.X*c + p.Z*s, p.Y, -p.X*s + p.Z*c}
}

// RotatedZ rotates p about the +Z axis by the given angle in degrees,
// following the right-hand rule.
func (p Pt3) RotatedZ(degrees float64) Pt3 {
	c, s := Cosd(degrees), Sind(degrees)
	return Pt3{p.X*c - p.Y*s, p.X*s + p.Y*c, p.Z}
}

func (p Pt3) vec3() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

func fromVec3(v mgl64.Vec3) Pt3 { return Pt3{v[0], v[1], v[2]} }
