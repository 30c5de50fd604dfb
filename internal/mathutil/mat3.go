package mathutil

import "baryon/vecmath"

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float32

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// Row returns row r as a vector.
func (m Mat3) Row(r int) vecmath.Vec3 {
	return vecmath.NewVec3(m[r*3], m[r*3+1], m[r*3+2])
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v vecmath.Vec3) vecmath.Vec3 {
	return vecmath.NewVec3(Dot(m.Row(0), v), Dot(m.Row(1), v), Dot(m.Row(2), v))
}
