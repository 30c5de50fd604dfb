package vecmath

// NewVec3 creates a Vec3 from its components.
func NewVec3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// Vec3Zero returns (0, 0, 0).
func Vec3Zero() Vec3 { return Vec3{} }

// Vec3One returns (1, 1, 1).
func Vec3One() Vec3 { return splat[Vec3](1) }

// Vec3UnitX returns the unit vector (1, 0, 0).
func Vec3UnitX() Vec3 { return unit[Vec3](X) }

// Vec3UnitY returns the unit vector (0, 1, 0).
func Vec3UnitY() Vec3 { return unit[Vec3](Y) }

// Vec3UnitZ returns the unit vector (0, 0, 1).
func Vec3UnitZ() Vec3 { return unit[Vec3](Z) }

func (v Vec3) X() float32 { return v[X] }
func (v Vec3) Y() float32 { return v[Y] }
func (v Vec3) Z() float32 { return v[Z] }

// Map applies f to every component.
func (v Vec3) Map(f func(float32) float32) Vec3 { return mapVec(v, f) }

// ZipWith combines v and o component by component.
func (v Vec3) ZipWith(o Vec3, f func(a, b float32) float32) Vec3 { return zipVec(v, o, f) }

// ZipWithScalar combines every component with s.
func (v Vec3) ZipWithScalar(s float32, f func(a, b float32) float32) Vec3 {
	return zipScalar(v, s, f)
}

func (v Vec3) Add(o Vec3) Vec3    { return v.ZipWith(o, add) }
func (v Vec3) Sub(o Vec3) Vec3    { return v.ZipWith(o, sub) }
func (v Vec3) Neg() Vec3          { return v.Map(neg) }
func (v Vec3) Mul(s float32) Vec3 { return v.ZipWithScalar(s, mul) }
func (v Vec3) Div(s float32) Vec3 { return v.ZipWithScalar(s, div) }

func (v *Vec3) AddAssign(o Vec3)    { *v = v.Add(o) }
func (v *Vec3) SubAssign(o Vec3)    { *v = v.Sub(o) }
func (v *Vec3) MulAssign(s float32) { *v = v.Mul(s) }
func (v *Vec3) DivAssign(s float32) { *v = v.Div(s) }

// Extend returns (x, y, z, w).
func (v Vec3) Extend(w float32) Vec4 { return Vec4{v[X], v[Y], v[Z], w} }
