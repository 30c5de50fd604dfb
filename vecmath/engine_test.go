package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCallsOncePerComponent(t *testing.T) {
	var seen []float32
	got := NewVec4(1, 2, 3, 4).Map(func(c float32) float32 {
		seen = append(seen, c)
		return c * 10
	})
	assert.Equal(t, NewVec4(10, 20, 30, 40), got)
	assert.Equal(t, []float32{1, 2, 3, 4}, seen)
}

func TestZipWith(t *testing.T) {
	got := NewVec3(1, 2, 3).ZipWith(NewVec3(4, 5, 6), func(a, b float32) float32 { return a*10 + b })
	assert.Equal(t, NewVec3(14, 25, 36), got)
}

func TestZipWithScalarMatchesMap(t *testing.T) {
	sub := func(a, b float32) float32 { return a - b }
	tests := []struct {
		name string
		v    Vec4
		s    float32
	}{
		{"Positive", NewVec4(1, 2, 3, 4), 0.5},
		{"Negative", NewVec4(-1, 0, 1, 2), -8},
		{"Zero", Vec4Zero(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.v.Map(func(c float32) float32 { return sub(c, tt.s) })
			assert.Equal(t, want, tt.v.ZipWithScalar(tt.s, sub))
		})
	}
}

func TestFoldOrder(t *testing.T) {
	digits := Fold(NewVec4(1, 2, 3, 4), 0, func(acc int, c float32) int {
		return acc*10 + int(c)
	})
	assert.Equal(t, 1234, digits)

	var order []float32
	n := Fold(NewVec2(7, 9), 0, func(acc int, c float32) int {
		order = append(order, c)
		return acc + 1
	})
	assert.Equal(t, 2, n)
	assert.Equal(t, []float32{7, 9}, order)
}

func TestPartialCompare(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name   string
		a, b   Vec3
		cmp    int
		wantOK bool
	}{
		{"Equal", NewVec3(1, 2, 3), NewVec3(1, 2, 3), 0, true},
		{"LessFirst", NewVec3(0, 9, 9), NewVec3(1, 0, 0), -1, true},
		{"GreaterLast", NewVec3(1, 2, 4), NewVec3(1, 2, 3), 1, true},
		{"NaNUnordered", NewVec3(1, nan, 0), NewVec3(1, 2, 0), 0, false},
		{"NaNAfterDecision", NewVec3(0, nan, 0), NewVec3(1, 2, 0), -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, ok := PartialCompare(tt.a, tt.b)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.cmp, cmp)
		})
	}
}
