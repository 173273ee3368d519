package filters

import (
	"math"

	"github.com/docbound/docbound-mcp/internal/raster"
)

// GaussianBlur convolves g with a (2*radius+1)^2 Gaussian kernel, sigma =
// radius/2, using clamp-to-edge boundary handling. radius defaults to 2
// when callers pass 0; radius must be >= 1 once defaulted.
//
// This performs the full 2D convolution rather than a separable pass: with
// clamp-to-edge, every kernel cell maps to some in-bounds sample (possibly
// replicated), so the normalization denominator — the full kernel weight
// sum — is identical for every pixel, interior or border. A separable
// implementation is also valid per the border-handling contract as long as
// each 1D pass clamps the same way; this package takes the direct route to
// make that equivalence exact rather than approximate.
func GaussianBlur(g raster.GrayBuffer, radius int) (raster.GrayBuffer, error) {
	if radius <= 0 {
		radius = 2
	}

	out, err := raster.NewGrayBuffer(g.Width, g.Height)
	if err != nil {
		return raster.GrayBuffer{}, err
	}

	kernel, sum := gaussianKernel(radius)
	k := 2*radius + 1

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			var acc float64
			for ky := 0; ky < k; ky++ {
				for kx := 0; kx < k; kx++ {
					sx := x + kx - radius
					sy := y + ky - radius
					acc += float64(g.At(sx, sy)) * kernel[ky*k+kx]
				}
			}
			out.Set(x, y, clamp8(math.Round(acc/sum)))
		}
	}
	return out, nil
}

// gaussianKernel builds a flattened (2*radius+1)^2 row-major weight table
// and its total sum, using weight = exp(-(dx^2+dy^2)/(2*sigma^2)) with
// sigma = radius/2.
func gaussianKernel(radius int) (weights []float64, sum float64) {
	k := 2*radius + 1
	sigma := float64(radius) / 2.0
	weights = make([]float64, k*k)

	for ky := 0; ky < k; ky++ {
		dy := float64(ky - radius)
		for kx := 0; kx < k; kx++ {
			dx := float64(kx - radius)
			w := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			weights[ky*k+kx] = w
			sum += w
		}
	}
	return weights, sum
}
