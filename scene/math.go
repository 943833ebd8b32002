// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/chewxy/math32"

// Vector3 is a 3D vector / point with X Y Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// V3 returns a new [Vector3] with the given x, y, z components.
func V3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Add adds the other vector to this one, returning the result.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub subtracts the other vector from this one, returning the result.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// MulScalar multiplies each component by the scalar, returning the result.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the length of the vector.
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normal returns the vector normalized to unit length,
// or the zero vector if its length is zero.
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.MulScalar(1 / l)
}

// Min returns the component-wise minimum of this vector and the other.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math32.Min(v.X, o.X), math32.Min(v.Y, o.Y), math32.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of this vector and the other.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math32.Max(v.X, o.X), math32.Max(v.Y, o.Y), math32.Max(v.Z, o.Z)}
}

// Quat is a unit quaternion rotation.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// IsIdentity returns whether this is the identity rotation.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// Box3 is an axis-aligned 3D bounding box defined by Min and Max corners.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// EmptyBox3 returns a box in the canonical empty state,
// with Min components at positive infinity and Max at negative.
func EmptyBox3() Box3 {
	inf := math32.Inf(1)
	return Box3{Min: V3(inf, inf, inf), Max: V3(-inf, -inf, -inf)}
}

// IsEmpty returns whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint grows the box as needed to include the given point.
func (b Box3) ExpandByPoint(p Vector3) Box3 {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
	return b
}

// Center returns the center point of the box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the per-dimension extent of the box.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}
