package mesh

import (
	"fmt"
	"sort"

	"baryon/vecmath"
)

var builders = map[string]func(size float32) Mesh{
	"cube":  Cube,
	"plane": Plane,
	"tetra": Tetra,
}

// Names lists the built-in primitives.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named primitive with the given edge length.
func ByName(name string, size float32) (Mesh, error) {
	build, ok := builders[name]
	if !ok {
		return Mesh{}, fmt.Errorf("mesh: unknown primitive %q (have %v)", name, Names())
	}
	return build(size), nil
}

// quadUVs maps the four corners of every quad face onto the full texture.
var quadUVs = []vecmath.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Cube is an axis-aligned cube centered at the origin, six textured quads.
func Cube(size float32) Mesh {
	h := size / 2
	// Face axes: normal n, with u and v spanning the face.
	faces := [6][3]vecmath.Vec3{
		{vecmath.Vec3UnitX(), vecmath.Vec3UnitZ().Neg(), vecmath.Vec3UnitY()},
		{vecmath.Vec3UnitX().Neg(), vecmath.Vec3UnitZ(), vecmath.Vec3UnitY()},
		{vecmath.Vec3UnitY(), vecmath.Vec3UnitX(), vecmath.Vec3UnitZ().Neg()},
		{vecmath.Vec3UnitY().Neg(), vecmath.Vec3UnitX(), vecmath.Vec3UnitZ()},
		{vecmath.Vec3UnitZ(), vecmath.Vec3UnitX(), vecmath.Vec3UnitY()},
		{vecmath.Vec3UnitZ().Neg(), vecmath.Vec3UnitX().Neg(), vecmath.Vec3UnitY()},
	}

	m := Mesh{Name: "cube", UVs: quadUVs}
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		base := len(m.Verts)
		c := n.Mul(h)
		m.Verts = append(m.Verts,
			c.Sub(u.Mul(h)).Sub(v.Mul(h)),
			c.Add(u.Mul(h)).Sub(v.Mul(h)),
			c.Add(u.Mul(h)).Add(v.Mul(h)),
			c.Sub(u.Mul(h)).Add(v.Mul(h)),
		)
		m.Tris = append(m.Tris, Triangle{
			Polygon: 4,
			VI:      [4]int{base, base + 1, base + 2, base + 3},
			TI:      [4]int{0, 1, 2, 3},
		})
	}
	return m
}

// Plane is a single quad in the XZ plane.
func Plane(size float32) Mesh {
	h := size / 2
	return Mesh{
		Name: "plane",
		Verts: []vecmath.Vec3{
			{-h, 0, -h}, {h, 0, -h}, {h, 0, h}, {-h, 0, h},
		},
		UVs:  quadUVs,
		Tris: []Triangle{{Polygon: 4, VI: [4]int{0, 1, 2, 3}, TI: [4]int{0, 1, 2, 3}}},
	}
}

// Tetra is a regular tetrahedron inscribed in a cube of the given edge.
func Tetra(size float32) Mesh {
	h := size / 2
	verts := []vecmath.Vec3{
		{h, h, h}, {-h, -h, h}, {-h, h, -h}, {h, -h, -h},
	}
	uvs := []vecmath.Vec2{{0.5, 0}, {0, 1}, {1, 1}}
	faces := [4][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}

	m := Mesh{Name: "tetra", Verts: verts, UVs: uvs}
	for _, f := range faces {
		m.Tris = append(m.Tris, Triangle{
			Polygon: 3,
			VI:      [4]int{f[0], f[1], f[2]},
			TI:      [4]int{0, 1, 2},
		})
	}
	return m
}
