// Package vec provides the small float32 vector arithmetic the map's
// derived-value computations need.
package vec

import (
	"github.com/chewxy/math32"
)

// Vec3 is a 3-dimensional vector.
type Vec3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add the argument to a copy of the receiver, returning the sum.
func (v Vec3) Add(b Vec3) Vec3 {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	return v
}

// Subtract the argument from a copy of the receiver, returning the
// difference.
func (v Vec3) Subtract(b Vec3) Vec3 {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	return v
}

// Multiply the argument element-wise into a copy of the receiver.
func (v Vec3) Multiply(b Vec3) Vec3 {
	v.X *= b.X
	v.Y *= b.Y
	v.Z *= b.Z
	return v
}

// Scale returns a copy of the receiver scaled by the given factor.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		v.X * s,
		v.Y * s,
		v.Z * s,
	}
}

// Abs returns the element-wise absolute value of the receiver.
func (v Vec3) Abs() Vec3 {
	return Vec3{
		math32.Abs(v.X),
		math32.Abs(v.Y),
		math32.Abs(v.Z),
	}
}

// Sum returns the total of the receiver's elements.
func (v Vec3) Sum() float32 {
	return v.X + v.Y + v.Z
}

// Dot returns the dot product of the receiver and argument vectors.
func (v Vec3) Dot(b Vec3) float32 {
	return v.Multiply(b).Sum()
}

// Cross returns the cross product of the receiver and argument vectors.
func (v Vec3) Cross(b Vec3) Vec3 {
	ax, ay, az := v.X, v.Y, v.Z
	bx, by, bz := b.X, b.Y, b.Z
	return Vec3{
		ay*bz - az*by,
		az*bx - ax*bz,
		ax*by - ay*bx,
	}
}

// SquaredLength computes the squared length of the receiver.
func (v Vec3) SquaredLength() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length computes the length of the receiver.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.SquaredLength())
}

// Normalize returns a normalized copy of the receiver; the zero vector
// normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	if n := v.SquaredLength(); n > 0 {
		n = 1 / math32.Sqrt(n)
		v.X *= n
		v.Y *= n
		v.Z *= n
	}
	return v
}

// Zero returns true only if every element of the receiver is zero.
func (v Vec3) Zero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Within returns true only if all of the given argument's elements are
// within epsilon of the receiver's elements.
func (v Vec3) Within(b Vec3, epsilon float32) bool {
	d := v.Subtract(b).Abs()
	v = v.Abs()
	b = b.Abs()
	return (d.X <= epsilon*math32.Max(1, math32.Max(v.X, b.X)) &&
		d.Y <= epsilon*math32.Max(1, math32.Max(v.Y, b.Y)) &&
		d.Z <= epsilon*math32.Max(1, math32.Max(v.Z, b.Z)))
}
