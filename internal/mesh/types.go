package mesh

import (
	"math"

	"baryon/vecmath"
)

// Triangle holds polygon type and index lists into the vertex and texcoord arrays.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Triangle struct {
	Polygon int
	VI      [4]int
	TI      [4]int
}

// Mesh holds the geometry of one renderable object.
type Mesh struct {
	Name    string
	Verts   []vecmath.Vec3
	UVs     []vecmath.Vec2
	Tris    []Triangle
	TexPath string // optional texture file, resolved by the caller
}

// Bounds returns the axis-aligned bounding box of the vertices. An empty mesh
// yields (+Inf, -Inf) in every axis.
func (m Mesh) Bounds() (lo, hi vecmath.Vec3) {
	inf := float32(math.Inf(1))
	lo = vecmath.Vec3One().Mul(inf)
	hi = lo.Neg()
	for _, v := range m.Verts {
		lo = lo.ZipWith(v, min32)
		hi = hi.ZipWith(v, max32)
	}
	return lo, hi
}

// Center returns the midpoint of the bounding box.
func (m Mesh) Center() vecmath.Vec3 {
	lo, hi := m.Bounds()
	return lo.Add(hi).Div(2)
}

// Transform returns a copy of m with f applied to every vertex.
func (m Mesh) Transform(f func(vecmath.Vec3) vecmath.Vec3) Mesh {
	out := m
	out.Verts = make([]vecmath.Vec3, len(m.Verts))
	for i, v := range m.Verts {
		out.Verts[i] = f(v)
	}
	return out
}

// TriangleCount counts quads as two triangles.
func (m Mesh) TriangleCount() int {
	n := 0
	for _, t := range m.Tris {
		if t.Polygon == 4 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func min32(a, b float32) float32 { return min(a, b) }
func max32(a, b float32) float32 { return max(a, b) }
