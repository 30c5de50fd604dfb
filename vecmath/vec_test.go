package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type shapeOps[V Vector] struct {
	add, sub  func(V, V) V
	neg       func(V) V
	mul, div  func(V, float32) V
	zero, one func() V
	units     []func() V

	addAssign, subAssign func(*V, V)
	mulAssign, divAssign func(*V, float32)
}

var (
	ops2 = shapeOps[Vec2]{
		add:       Vec2.Add,
		sub:       Vec2.Sub,
		neg:       Vec2.Neg,
		mul:       Vec2.Mul,
		div:       Vec2.Div,
		zero:      Vec2Zero,
		one:       Vec2One,
		units:     []func() Vec2{Vec2UnitX, Vec2UnitY},
		addAssign: (*Vec2).AddAssign,
		subAssign: (*Vec2).SubAssign,
		mulAssign: (*Vec2).MulAssign,
		divAssign: (*Vec2).DivAssign,
	}
	ops3 = shapeOps[Vec3]{
		add:       Vec3.Add,
		sub:       Vec3.Sub,
		neg:       Vec3.Neg,
		mul:       Vec3.Mul,
		div:       Vec3.Div,
		zero:      Vec3Zero,
		one:       Vec3One,
		units:     []func() Vec3{Vec3UnitX, Vec3UnitY, Vec3UnitZ},
		addAssign: (*Vec3).AddAssign,
		subAssign: (*Vec3).SubAssign,
		mulAssign: (*Vec3).MulAssign,
		divAssign: (*Vec3).DivAssign,
	}
	ops4 = shapeOps[Vec4]{
		add:       Vec4.Add,
		sub:       Vec4.Sub,
		neg:       Vec4.Neg,
		mul:       Vec4.Mul,
		div:       Vec4.Div,
		zero:      Vec4Zero,
		one:       Vec4One,
		units:     []func() Vec4{Vec4UnitX, Vec4UnitY, Vec4UnitZ, Vec4UnitW},
		addAssign: (*Vec4).AddAssign,
		subAssign: (*Vec4).SubAssign,
		mulAssign: (*Vec4).MulAssign,
		divAssign: (*Vec4).DivAssign,
	}
)

// vecOf fills a vector from the leading values of cs.
func vecOf[V Vector](cs ...float32) V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = cs[i]
	}
	return v
}

// Operands use dyadic fractions so every sum and product is exact.
func checkArithmetic[V Vector](t *testing.T, o shapeOps[V]) {
	a := vecOf[V](1, 2, 3, 4)
	b := vecOf[V](0.5, 0.25, -1, 8)
	c := vecOf[V](2, -3, 0.125, 16)

	t.Run("AddCommutes", func(t *testing.T) {
		assert.Equal(t, o.add(a, b), o.add(b, a))
	})
	t.Run("AddAssociates", func(t *testing.T) {
		assert.Equal(t, o.add(o.add(a, b), c), o.add(a, o.add(b, c)))
	})
	t.Run("Identities", func(t *testing.T) {
		assert.Equal(t, a, o.add(a, o.zero()))
		assert.Equal(t, a, o.mul(a, 1))
		assert.Equal(t, o.zero(), o.sub(a, a))
		assert.Equal(t, a, o.neg(o.neg(a)))
	})
	t.Run("ScaleBothSides", func(t *testing.T) {
		assert.Equal(t, o.mul(a, 2.5), Scale(2.5, a))
	})
	t.Run("OneAndZero", func(t *testing.T) {
		z, one := o.zero(), o.one()
		var dflt V
		assert.Equal(t, dflt, z)
		for i := 0; i < len(one); i++ {
			assert.Equal(t, float32(0), z[i])
			assert.Equal(t, float32(1), one[i])
		}
	})
	t.Run("Units", func(t *testing.T) {
		for axis, unitFn := range o.units {
			u := unitFn()
			for i := 0; i < len(u); i++ {
				want := float32(0)
				if i == axis {
					want = 1
				}
				assert.Equal(t, want, u[i], "axis %d component %d", axis, i)
			}
		}
	})
	t.Run("CompoundMatchesBinary", func(t *testing.T) {
		v := a
		o.addAssign(&v, b)
		assert.Equal(t, o.add(a, b), v)

		v = a
		o.subAssign(&v, b)
		assert.Equal(t, o.sub(a, b), v)

		v = a
		o.mulAssign(&v, 4)
		assert.Equal(t, o.mul(a, 4), v)

		v = a
		o.divAssign(&v, 4)
		assert.Equal(t, o.div(a, 4), v)
	})
	t.Run("CopyDoesNotAlias", func(t *testing.T) {
		v := a
		w := v
		o.addAssign(&w, b)
		assert.Equal(t, a, v)
	})
}

func TestArithmetic(t *testing.T) {
	t.Run("Vec2", func(t *testing.T) { checkArithmetic(t, ops2) })
	t.Run("Vec3", func(t *testing.T) { checkArithmetic(t, ops3) })
	t.Run("Vec4", func(t *testing.T) { checkArithmetic(t, ops4) })
}

func TestScenarios(t *testing.T) {
	assert.Equal(t, NewVec3(1.5, 2.5, 3.5), NewVec3(1, 2, 3).Add(NewVec3(0.5, 0.5, 0.5)))
	assert.Equal(t, NewVec4(1, 2, 3, 4), NewVec4(2, 4, 6, 8).Div(2))
	assert.Equal(t, NewVec2(-3, 3), NewVec2(3, -3).Neg())
	assert.Equal(t, NewVec3(2, 4, 6), Scale(2, NewVec3(1, 2, 3)))

	sum := Fold(NewVec3(1, 2, 3), float32(0), func(acc, c float32) float32 { return acc + c })
	assert.Equal(t, float32(6), sum)
}

func TestAccessors(t *testing.T) {
	v := NewVec4(1, 2, 3, 4)
	assert.Equal(t, float32(1), v.X())
	assert.Equal(t, float32(2), v.Y())
	assert.Equal(t, float32(3), v.Z())
	assert.Equal(t, float32(4), v.W())
	assert.Equal(t, NewVec3(1, 2, 3), v.XYZ())
	assert.Equal(t, v, v.XYZ().Extend(4))

	v2 := NewVec2(5, 6)
	assert.Equal(t, float32(5), v2.X())
	assert.Equal(t, float32(6), v2[Y])
}

func TestIEEE754(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	t.Run("NaNNeverEqual", func(t *testing.T) {
		a := NewVec2(nan, 1)
		b := NewVec2(nan, 1)
		assert.False(t, a == b)
	})
	t.Run("DivideByZero", func(t *testing.T) {
		v := NewVec3(1, -1, 0).Div(0)
		assert.Equal(t, inf, v[X])
		assert.Equal(t, -inf, v[Y])
		assert.True(t, math.IsNaN(float64(v[Z])))
	})
	t.Run("NaNPropagates", func(t *testing.T) {
		v := NewVec4(1, 2, 3, 4).Mul(nan)
		for i := range v {
			assert.True(t, math.IsNaN(float64(v[i])))
		}
	})
	t.Run("InfinityAccepted", func(t *testing.T) {
		v := NewVec2(inf, 0).Add(NewVec2(1, 1))
		assert.Equal(t, NewVec2(inf, 1), v)
	})
}
