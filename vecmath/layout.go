package vecmath

import (
	"unsafe"

	"golang.org/x/image/math/f32"
)

// Flatten reinterprets vs as its backing float array without copying.
// Writes through either slice are visible in the other.
func Flatten[V Vector](vs []V) []float32 {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&vs[0])), len(vs)*len(vs[0]))
}

// Unflatten is the inverse of Flatten. Trailing floats that do not make up a
// whole vector are left out.
func Unflatten[V Vector](fs []float32) []V {
	var zero V
	n := len(fs) / len(zero)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*V)(unsafe.Pointer(&fs[0])), n)
}

// Conversions to and from golang.org/x/image/math/f32, which shares the layout.

func (v Vec2) F32() f32.Vec2 { return f32.Vec2(v) }
func (v Vec3) F32() f32.Vec3 { return f32.Vec3(v) }
func (v Vec4) F32() f32.Vec4 { return f32.Vec4(v) }

func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2(v) }
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3(v) }
func Vec4FromF32(v f32.Vec4) Vec4 { return Vec4(v) }
