package vecmath

// Component indices, in declaration order.
const (
	X = iota
	Y
	Z
	W
)

// Vec2 is a 2d vector.
type Vec2 [2]float32

// Vec3 is a 3d vector.
type Vec3 [3]float32

// Vec4 is a 3d homogeneous vector. The core attaches no meaning to w.
type Vec4 [4]float32

// Vector is the set of vector shapes the generic operations accept.
type Vector interface {
	Vec2 | Vec3 | Vec4
}

// mapVec applies f once to every component of v.
func mapVec[V Vector](v V, f func(float32) float32) V {
	var out V
	for i := 0; i < len(v); i++ {
		out[i] = f(v[i])
	}
	return out
}

// zipVec pairs components of a and b by position.
func zipVec[V Vector](a, b V, f func(float32, float32) float32) V {
	var out V
	for i := 0; i < len(a); i++ {
		out[i] = f(a[i], b[i])
	}
	return out
}

// zipScalar broadcasts s to every component of v. The component is always the
// left argument of f.
func zipScalar[V Vector](v V, s float32, f func(float32, float32) float32) V {
	var out V
	for i := 0; i < len(v); i++ {
		out[i] = f(v[i], s)
	}
	return out
}

// splat returns a vector with every component set to c.
func splat[V Vector](c float32) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = c
	}
	return out
}

// unit returns the vector whose axis component is 1 and all others 0.
func unit[V Vector](axis int) V {
	var out V
	out[axis] = 1
	return out
}

// Fold reduces v to a single value, feeding components to f left to right
// starting from init.
func Fold[T any, V Vector](v V, init T, f func(T, float32) T) T {
	acc := init
	for i := 0; i < len(v); i++ {
		acc = f(acc, v[i])
	}
	return acc
}

// Scale returns s*v. It is the scalar-on-the-left form of v.Mul(s) and gives
// the same result.
func Scale[V Vector](s float32, v V) V {
	return zipScalar(v, s, mul)
}

// PartialCompare orders a and b lexicographically in component order.
// It returns -1, 0 or +1 with ok set, or ok=false when a NaN leaves the pair
// unordered at the first component that is not equal.
func PartialCompare[V Vector](a, b V) (cmp int, ok bool) {
	for i := 0; i < len(a); i++ {
		switch {
		case a[i] < b[i]:
			return -1, true
		case a[i] > b[i]:
			return 1, true
		case a[i] == b[i]:
		default:
			return 0, false
		}
	}
	return 0, true
}

func add(a, b float32) float32 { return a + b }
func sub(a, b float32) float32 { return a - b }
func mul(a, b float32) float32 { return a * b }
func div(a, b float32) float32 { return a / b }
func neg(a float32) float32    { return -a }
