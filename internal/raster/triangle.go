package raster

import (
	"image"

	"baryon/internal/mathutil"
	"baryon/vecmath"
)

// Vertex is a screen-space vertex. Pos holds pixel x, pixel y and depth
// (larger is nearer the viewer).
type Vertex struct {
	Pos vecmath.Vec3
	UV  vecmath.Vec2
}

// RasterizeTriangle rasterizes a single triangle with texture mapping, z-buffer,
// sRGB color space, lighting, and ACES tone mapping.
//
// Lighting is flat-shaded (per-face, not per-pixel). When tex is nil every
// pixel takes base, an RGBA color in 0..255.
func RasterizeTriangle(fb *FrameBuffer, tri [3]Vertex, tex *image.NRGBA, base vecmath.Vec4, lc *LightConfig) {
	p0, p1, p2 := tri[0].Pos, tri[1].Pos, tri[2].Pos

	// Face normal for flat shading
	n := mathutil.Cross(p1.Sub(p0), p2.Sub(p0))
	if mathutil.Len(n) < 1e-8 {
		return
	}
	shade := lc.ComputeShade(mathutil.Normalize(n))

	// Bounding box
	lo := p0.ZipWith(p1, minf).ZipWith(p2, minf)
	hi := p0.ZipWith(p1, maxf).ZipWith(p2, maxf)
	minX := max(int(lo.X()), 0)
	maxX := min(int(hi.X())+1, fb.Width-1)
	minY := max(int(lo.Y()), 0)
	maxY := min(int(hi.Y())+1, fb.Height-1)
	if minX >= maxX || minY >= maxY {
		return
	}

	x0, y0 := p0.X(), p0.Y()
	x1, y1 := p1.X(), p1.Y()
	x2, y2 := p2.X(), p2.Y()

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float32(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float32(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*p0.Z() + w1*p1.Z() + w2*p2.Z()
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			c := base
			if tex != nil {
				uv := tri[0].UV.Mul(w0).Add(tri[1].UV.Mul(w1)).Add(tri[2].UV.Mul(w2))
				c = SampleTexture(tex, uv)
			}

			// Skip transparent texels
			if c.W() < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			out := lc.Encode(Linearize(c.XYZ()), shade).Mul(255)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(out.X())
			fb.Color[pxIdx+1] = clamp255(out.Y())
			fb.Color[pxIdx+2] = clamp255(out.Z())
			fb.Color[pxIdx+3] = clamp255(c.W())
		}
	}
}

func minf(a, b float32) float32 { return min(a, b) }
func maxf(a, b float32) float32 { return max(a, b) }

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
