package postprocess

import "image"

// neighbors8 are the offsets of the 8-connected neighborhood.
var neighbors8 = [8]image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Despeckle clears opaque islands smaller than minRatio of all non-transparent
// pixels. Islands are 8-connected. img is returned unchanged when it has at
// most one island.
func Despeckle(img *image.NRGBA, minRatio float64) *image.NRGBA {
	b := img.Bounds()
	opaque := func(p image.Point) bool {
		return p.In(b) && img.Pix[img.PixOffset(p.X, p.Y)+3] > 0
	}

	seen := make(map[image.Point]bool)
	var islands [][]image.Point
	total := 0

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			start := image.Pt(x, y)
			if seen[start] || !opaque(start) {
				continue
			}
			seen[start] = true
			island := []image.Point{start}
			for i := 0; i < len(island); i++ {
				for _, d := range neighbors8 {
					n := island[i].Add(d)
					if !seen[n] && opaque(n) {
						seen[n] = true
						island = append(island, n)
					}
				}
			}
			islands = append(islands, island)
			total += len(island)
		}
	}

	if len(islands) <= 1 {
		return img
	}

	minSize := int(float64(total) * minRatio)
	result := image.NewNRGBA(b)
	copy(result.Pix, img.Pix)
	for _, island := range islands {
		if len(island) >= minSize {
			continue
		}
		for _, p := range island {
			i := result.PixOffset(p.X, p.Y)
			clear(result.Pix[i : i+4])
		}
	}
	return result
}
