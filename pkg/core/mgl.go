package core

import "github.com/go-gl/mathgl/mgl64"

// Vec3 conversions to and from the mgl64 types used for the 4x4 transform pipeline.

// ToMgl converts v to an mgl64.Vec3
func (v Vec3) ToMgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Point returns v as a homogeneous point (w = 1)
func (v Vec3) Point() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, 1}
}

// Direction returns v as a homogeneous direction (w = 0)
func (v Vec3) Direction() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, 0}
}

// FromMgl converts an mgl64.Vec3 to a Vec3
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// FromMgl4 drops the w component of a homogeneous vector without dividing by it
func FromMgl4(v mgl64.Vec4) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}
