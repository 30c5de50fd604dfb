package vecmath

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestSizes(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Vec2{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(Vec3{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Vec4{}))
}

func TestFlatten(t *testing.T) {
	verts := []Vec3{NewVec3(1, 2, 3), NewVec3(4, 5, 6)}
	flat := Flatten(verts)
	require.Len(t, flat, 6)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, flat)

	// Shared storage.
	flat[4] = 50
	assert.Equal(t, NewVec3(4, 50, 6), verts[1])

	assert.Nil(t, Flatten[Vec2](nil))
}

func TestUnflatten(t *testing.T) {
	fs := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}

	v4 := Unflatten[Vec4](fs)
	require.Len(t, v4, 2)
	assert.Equal(t, NewVec4(5, 6, 7, 8), v4[1])

	v2 := Unflatten[Vec2](fs)
	assert.Len(t, v2, 4)

	assert.Nil(t, Unflatten[Vec3](fs[:2]))
}

func TestF32RoundTrip(t *testing.T) {
	v := NewVec3(1, 2, 3)
	assert.Equal(t, f32.Vec3{1, 2, 3}, v.F32())
	assert.Equal(t, v, Vec3FromF32(v.F32()))
	assert.Equal(t, NewVec2(1, 2), Vec2FromF32(f32.Vec2{1, 2}))
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, NewVec4(1, 2, 3, 4).F32())
	assert.Equal(t, NewVec4(0, 0, 0, 1), Vec4FromF32(Vec4UnitW().F32()))
}
