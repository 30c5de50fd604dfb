package vecmath

// NewVec4 creates a Vec4 from its components.
func NewVec4(x, y, z, w float32) Vec4 { return Vec4{x, y, z, w} }

// Vec4Zero returns (0, 0, 0, 0).
func Vec4Zero() Vec4 { return Vec4{} }

// Vec4One returns (1, 1, 1, 1).
func Vec4One() Vec4 { return splat[Vec4](1) }

// Vec4UnitX returns the unit vector (1, 0, 0, 0).
func Vec4UnitX() Vec4 { return unit[Vec4](X) }

// Vec4UnitY returns the unit vector (0, 1, 0, 0).
func Vec4UnitY() Vec4 { return unit[Vec4](Y) }

// Vec4UnitZ returns the unit vector (0, 0, 1, 0).
func Vec4UnitZ() Vec4 { return unit[Vec4](Z) }

// Vec4UnitW returns the unit vector (0, 0, 0, 1).
func Vec4UnitW() Vec4 { return unit[Vec4](W) }

func (v Vec4) X() float32 { return v[X] }
func (v Vec4) Y() float32 { return v[Y] }
func (v Vec4) Z() float32 { return v[Z] }
func (v Vec4) W() float32 { return v[W] }

// Map applies f to every component.
func (v Vec4) Map(f func(float32) float32) Vec4 { return mapVec(v, f) }

// ZipWith combines v and o component by component.
func (v Vec4) ZipWith(o Vec4, f func(a, b float32) float32) Vec4 { return zipVec(v, o, f) }

// ZipWithScalar combines every component with s.
func (v Vec4) ZipWithScalar(s float32, f func(a, b float32) float32) Vec4 {
	return zipScalar(v, s, f)
}

func (v Vec4) Add(o Vec4) Vec4    { return v.ZipWith(o, add) }
func (v Vec4) Sub(o Vec4) Vec4    { return v.ZipWith(o, sub) }
func (v Vec4) Neg() Vec4          { return v.Map(neg) }
func (v Vec4) Mul(s float32) Vec4 { return v.ZipWithScalar(s, mul) }
func (v Vec4) Div(s float32) Vec4 { return v.ZipWithScalar(s, div) }

func (v *Vec4) AddAssign(o Vec4)    { *v = v.Add(o) }
func (v *Vec4) SubAssign(o Vec4)    { *v = v.Sub(o) }
func (v *Vec4) MulAssign(s float32) { *v = v.Mul(s) }
func (v *Vec4) DivAssign(s float32) { *v = v.Div(s) }

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 { return Vec3{v[X], v[Y], v[Z]} }
