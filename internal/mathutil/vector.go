package mathutil

import (
	"math"

	"baryon/vecmath"
)

func mul(a, b float32) float32   { return a * b }
func sum(acc, c float32) float32 { return acc + c }

// Dot returns a·b.
func Dot(a, b vecmath.Vec3) float32 {
	return vecmath.Fold(a.ZipWith(b, mul), 0, sum)
}

func Cross(a, b vecmath.Vec3) vecmath.Vec3 {
	return vecmath.NewVec3(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	)
}

func Len(v vecmath.Vec3) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}

// Normalize returns v scaled to unit length, or the zero vector when v is
// too short to have a direction.
func Normalize(v vecmath.Vec3) vecmath.Vec3 {
	l := Len(v)
	if l < 1e-12 {
		return vecmath.Vec3{}
	}
	return v.Div(l)
}

// Lerp4 interpolates a→b by t. Used for colors as well as points.
func Lerp4(a, b vecmath.Vec4, t float32) vecmath.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}
