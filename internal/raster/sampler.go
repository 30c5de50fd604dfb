package raster

import (
	"image"

	"baryon/internal/mathutil"
	"baryon/vecmath"
)

// SampleTexture performs bilinear filtering with UV wrapping.
// Returns RGBA in 0..255. Accesses tex.Pix directly for performance.
func SampleTexture(tex *image.NRGBA, uv vecmath.Vec2) vecmath.Vec4 {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	// Wrap UVs into [0, 1)
	uv = uv.Map(func(c float32) float32 {
		c -= float32(int(c))
		if c < 0 {
			c += 1
		}
		return c
	})

	fx := uv.X() * float32(w-1)
	fy := uv.Y() * float32(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float32(x0)
	dy := fy - float32(y0)

	top := mathutil.Lerp4(texel(tex, x0, y0), texel(tex, x1, y0), dx)
	bottom := mathutil.Lerp4(texel(tex, x0, y1), texel(tex, x1, y1), dx)
	return mathutil.Lerp4(top, bottom, dy)
}

func texel(tex *image.NRGBA, x, y int) vecmath.Vec4 {
	i := y*tex.Stride + x*4
	p := tex.Pix[i : i+4 : i+4]
	return vecmath.NewVec4(float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3]))
}

// AverageColor returns the mean RGB of tex with opaque alpha.
func AverageColor(tex *image.NRGBA) vecmath.Vec4 {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return DefaultColor
	}

	var sum vecmath.Vec4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum.AddAssign(texel(tex, x, y))
		}
	}
	avg := sum.Div(float32(w * h))
	avg[vecmath.W] = 255
	return avg
}

// DefaultColor is used for meshes without a texture.
var DefaultColor = vecmath.NewVec4(160, 160, 170, 255)
