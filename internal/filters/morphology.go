package filters

import "github.com/docbound/docbound-mcp/internal/raster"

// Dilate replaces each pixel with the max over its (2*radius+1)^2
// clamp-to-edge neighborhood.
func Dilate(m raster.Mask, radius int) (raster.Mask, error) {
	return morph(m, radius, func(a, b uint8) uint8 {
		if a > b {
			return a
		}
		return b
	})
}

// Erode replaces each pixel with the min over its (2*radius+1)^2
// clamp-to-edge neighborhood.
func Erode(m raster.Mask, radius int) (raster.Mask, error) {
	return morph(m, radius, func(a, b uint8) uint8 {
		if a < b {
			return a
		}
		return b
	})
}

func morph(m raster.Mask, radius int, combine func(a, b uint8) uint8) (raster.Mask, error) {
	out, err := raster.NewMask(m.Width, m.Height)
	if err != nil {
		return raster.Mask{}, err
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			acc := m.At(x-radius, y-radius)
			for ky := -radius; ky <= radius; ky++ {
				for kx := -radius; kx <= radius; kx++ {
					if ky == -radius && kx == -radius {
						continue
					}
					acc = combine(acc, m.At(x+kx, y+ky))
				}
			}
			out.Set(x, y, acc)
		}
	}
	return out, nil
}

// Close applies the detection pipeline's standing morphological sequence —
// dilate(r=2) followed by erode(r=1) — to a combined mask, closing small
// gaps in document edges before contour tracing.
func Close(m raster.Mask) (raster.Mask, error) {
	dilated, err := Dilate(m, 2)
	if err != nil {
		return raster.Mask{}, err
	}
	return Erode(dilated, 1)
}
