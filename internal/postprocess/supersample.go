package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"baryon/vecmath"
)

// Downsample reduces a square supersampled render to targetSize with
// premultiplied-alpha CatmullRom filtering, which avoids dark halos at
// transparent edges.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := image.NewRGBA(b)
	eachPixel(b, func(x, y int) {
		c := load(img.Pix, img.PixOffset(x, y))
		a := c.W()
		store(premul.Pix, premul.PixOffset(x, y), c.Mul(a/255), a)
	})

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	result := image.NewNRGBA(dst.Bounds())
	eachPixel(dst.Bounds(), func(x, y int) {
		c := load(dst.Pix, dst.PixOffset(x, y))
		a := c.W()
		if a <= 1 {
			result.Pix[result.PixOffset(x, y)+3] = clamp8(a)
			return
		}
		store(result.Pix, result.PixOffset(x, y), c.Mul(255/a), a)
	})

	return result
}

func eachPixel(r image.Rectangle, f func(x, y int)) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			f(x, y)
		}
	}
}

func load(pix []uint8, i int) vecmath.Vec4 {
	return vecmath.NewVec4(float32(pix[i]), float32(pix[i+1]), float32(pix[i+2]), float32(pix[i+3]))
}

// store writes the color channels of c and the given alpha.
func store(pix []uint8, i int, c vecmath.Vec4, alpha float32) {
	pix[i] = clamp8(c.X())
	pix[i+1] = clamp8(c.Y())
	pix[i+2] = clamp8(c.Z())
	pix[i+3] = clamp8(alpha)
}

func clamp8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
