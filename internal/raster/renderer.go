package raster

import (
	"image"

	"baryon/internal/mathutil"
	"baryon/internal/mesh"
	"baryon/vecmath"
)

// RenderMesh renders m rotated by rot to a square NRGBA image of
// size*supersample pixels. The mesh is centered and scaled to fill the frame
// minus a margin.
func RenderMesh(m mesh.Mesh, rot mathutil.Mat3, tex *image.NRGBA, size, supersample int) *image.NRGBA {
	renderSize := size * supersample
	if len(m.Verts) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	// Rotate about the mesh center: p' = R·p - R·c.
	model := mathutil.FromMat3Translation(rot, rot.MulVec3(m.Center()).Neg())
	view := m.Transform(model.MulPoint)

	lo, hi := view.Bounds()
	extent := hi.Sub(lo)
	span := max(extent.X(), extent.Y(), 0.001)

	margin := min(16, size/8) * supersample
	scale := float32(max(renderSize-2*margin, 1)) / span
	mid := lo.Add(hi).Div(2)
	half := float32(renderSize) / 2

	// Screen space: y grows downward, z toward the viewer.
	screen := make([]vecmath.Vec3, len(view.Verts))
	for i, v := range view.Verts {
		p := v.Sub(mid).Mul(scale)
		screen[i] = vecmath.NewVec3(half+p.X(), half-p.Y(), p.Z())
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	base := DefaultColor
	if tex != nil {
		base = AverageColor(tex)
	}

	vertex := func(vi, ti int) (Vertex, bool) {
		if vi < 0 || vi >= len(screen) {
			return Vertex{}, false
		}
		v := Vertex{Pos: screen[vi]}
		if ti >= 0 && ti < len(m.UVs) {
			v.UV = m.UVs[ti]
		}
		return v, true
	}

	draw := func(t mesh.Triangle, a, b, c int) {
		var tri [3]Vertex
		for k, corner := range [3]int{a, b, c} {
			v, ok := vertex(t.VI[corner], t.TI[corner])
			if !ok {
				return
			}
			tri[k] = v
		}
		RasterizeTriangle(fb, tri, tex, base, &lc)
	}

	for _, t := range m.Tris {
		draw(t, 0, 1, 2)
		// Quad: second triangle
		if t.Polygon == 4 {
			draw(t, 0, 2, 3)
		}
	}

	return fb.Image()
}
