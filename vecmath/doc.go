// Package vecmath provides the float32 vector value types used by the renderer:
// Vec2, Vec3 and Vec4.
//
// Each type is a plain [N]float32 array, so a vector has the memory layout of N
// consecutive float32 values in x, y, z, w order and can be handed to vertex
// buffers as-is (see Flatten). Vectors are compared with ==, which is
// componentwise IEEE-754 equality.
//
// All shapes share one elementwise engine (Map, ZipWith, ZipWithScalar, Fold) and
// the arithmetic methods are thin bindings over it. Go has no operator
// overloading, so a+b is written a.Add(b), s*a is Scale(s, a) and a += b is
// a.AddAssign(b).
package vecmath
