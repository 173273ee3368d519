package filters

import (
	"math"

	"github.com/docbound/docbound-mcp/internal/raster"
)

// Grayscale converts a packed RGBA raster to single-channel luminance using
// ITU-R BT.601 weights. Alpha is ignored.
//
// output = round(0.299*R + 0.587*G + 0.114*B), clamped to [0, 255].
func Grayscale(r raster.Raster) (raster.GrayBuffer, error) {
	out, err := raster.NewGrayBuffer(r.Width, r.Height)
	if err != nil {
		return raster.GrayBuffer{}, err
	}

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			i := (y*r.Width + x) * 4
			rr := float64(r.Pix[i])
			gg := float64(r.Pix[i+1])
			bb := float64(r.Pix[i+2])
			v := 0.299*rr + 0.587*gg + 0.114*bb
			out.Set(x, y, clamp8(math.Round(v)))
		}
	}
	return out, nil
}

// clamp8 rounds and saturates a float64 accumulator to the [0, 255] 8-bit
// range used at every stage boundary.
func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
