package filters

import (
	"math"

	"github.com/docbound/docbound-mcp/internal/raster"
)

var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// Sobel computes gradient magnitude over a 3x3 neighborhood:
// output = min(255, sqrt(gx^2 + gy^2)), rounded. The outermost one-pixel
// frame is forced to 0 rather than sampled with clamp-to-edge — unlike
// every other filter in this package, Sobel does not extend its kernel
// past the buffer edge.
func Sobel(g raster.GrayBuffer) (raster.GrayBuffer, error) {
	out, err := raster.NewGrayBuffer(g.Width, g.Height)
	if err != nil {
		return raster.GrayBuffer{}, err
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := float64(g.At(x+kx, y+ky))
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			mag := math.Sqrt(gx*gx + gy*gy)
			if mag > 255 {
				mag = 255
			}
			out.Set(x, y, clamp8(math.Round(mag)))
		}
	}
	// Border row/column: already zero from allocation.
	return out, nil
}
