package mathutil

import "baryon/vecmath"

// Mat4 is a 4×4 affine matrix stored row-major. Used for the model transform.
type Mat4 [16]float32

// MulVec4 returns M × v. Points carry w=1 and pick up the translation,
// directions carry w=0 and do not.
func (m Mat4) MulVec4(v vecmath.Vec4) vecmath.Vec4 {
	var out vecmath.Vec4
	for r := 0; r < 4; r++ {
		row := vecmath.NewVec4(m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
		out[r] = vecmath.Fold(row.ZipWith(v, mul), 0, sum)
	}
	return out
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func (m Mat4) MulPoint(v vecmath.Vec3) vecmath.Vec3 {
	return m.MulVec4(v.Extend(1)).XYZ()
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation(r Mat3, t vecmath.Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}
