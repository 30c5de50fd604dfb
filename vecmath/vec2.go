package vecmath

// NewVec2 creates a Vec2 from its components.
func NewVec2(x, y float32) Vec2 { return Vec2{x, y} }

// Vec2Zero returns (0, 0).
func Vec2Zero() Vec2 { return Vec2{} }

// Vec2One returns (1, 1).
func Vec2One() Vec2 { return splat[Vec2](1) }

// Vec2UnitX returns the unit vector (1, 0).
func Vec2UnitX() Vec2 { return unit[Vec2](X) }

// Vec2UnitY returns the unit vector (0, 1).
func Vec2UnitY() Vec2 { return unit[Vec2](Y) }

func (v Vec2) X() float32 { return v[X] }
func (v Vec2) Y() float32 { return v[Y] }

// Map applies f to every component.
func (v Vec2) Map(f func(float32) float32) Vec2 { return mapVec(v, f) }

// ZipWith combines v and o component by component.
func (v Vec2) ZipWith(o Vec2, f func(a, b float32) float32) Vec2 { return zipVec(v, o, f) }

// ZipWithScalar combines every component with s.
func (v Vec2) ZipWithScalar(s float32, f func(a, b float32) float32) Vec2 {
	return zipScalar(v, s, f)
}

func (v Vec2) Add(o Vec2) Vec2    { return v.ZipWith(o, add) }
func (v Vec2) Sub(o Vec2) Vec2    { return v.ZipWith(o, sub) }
func (v Vec2) Neg() Vec2          { return v.Map(neg) }
func (v Vec2) Mul(s float32) Vec2 { return v.ZipWithScalar(s, mul) }
func (v Vec2) Div(s float32) Vec2 { return v.ZipWithScalar(s, div) }

func (v *Vec2) AddAssign(o Vec2)    { *v = v.Add(o) }
func (v *Vec2) SubAssign(o Vec2)    { *v = v.Sub(o) }
func (v *Vec2) MulAssign(s float32) { *v = v.Mul(s) }
func (v *Vec2) DivAssign(s float32) { *v = v.Div(s) }
