package preprocess

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/docbound/docbound-mcp/internal/raster"
)

// Downscale applies plan to r. A no-op plan returns r unchanged, sharing
// its backing byte slice. Otherwise it round-trips through image.NRGBA and
// bild's box-filtered resize, then re-packs the result into a fresh
// raster.Raster.
func Downscale(r raster.Raster, plan DownscalePlan) (raster.Raster, error) {
	if plan.ScaleFactor == 1.0 {
		return r, nil
	}

	src := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	copy(src.Pix, r.Pix)

	resized := transform.Resize(src, plan.TargetWidth, plan.TargetHeight, transform.Box)

	bounds := resized.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r32, g32, b32, a32 := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := 4 * (y*w + x)
			pix[i] = byte(r32 >> 8)
			pix[i+1] = byte(g32 >> 8)
			pix[i+2] = byte(b32 >> 8)
			pix[i+3] = byte(a32 >> 8)
		}
	}

	return raster.NewRaster(w, h, pix)
}
