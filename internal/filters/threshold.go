package filters

import "github.com/docbound/docbound-mcp/internal/raster"

// AdaptiveMeanThreshold binarizes g against a local window mean. For each
// pixel p at (x, y), it computes the mean m of all samples in the
// (blockSize x blockSize) window centered on (x, y) using only in-bounds
// samples — the window is not clamp-to-edge extended, and the divisor is
// the actual in-bounds sample count, not blockSize^2.
//
// output = 255 if p < m - C else 0.
//
// blockSize defaults to 15 when callers pass a value <= 0 (and must be odd
// once defaulted); c is used as given (the pipeline passes 5).
func AdaptiveMeanThreshold(g raster.GrayBuffer, blockSize int, c int) (raster.Mask, error) {
	if blockSize <= 0 {
		blockSize = 15
	}

	out, err := raster.NewMask(g.Width, g.Height)
	if err != nil {
		return raster.Mask{}, err
	}

	half := blockSize / 2

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			var sum int
			var count int
			for wy := y - half; wy <= y+half; wy++ {
				for wx := x - half; wx <= x+half; wx++ {
					if v, ok := g.AtChecked(wx, wy); ok {
						sum += int(v)
						count++
					}
				}
			}
			mean := float64(sum) / float64(count)
			p := float64(g.At(x, y))

			if p < mean-float64(c) {
				out.Set(x, y, 255)
			} else {
				out.Set(x, y, 0)
			}
		}
	}
	return out, nil
}
