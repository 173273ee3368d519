package filters

import "github.com/docbound/docbound-mcp/internal/raster"

// Combine logically ORs a Sobel edge map and an adaptive-threshold mask:
// output = 255 if edges > edgeThreshold OR threshold > 128, else 0.
// edgeThreshold defaults to 50 when callers pass a negative value.
func Combine(edges raster.GrayBuffer, threshold raster.Mask, edgeThreshold int) (raster.Mask, error) {
	if edgeThreshold < 0 {
		edgeThreshold = 50
	}
	if edges.Width != threshold.Width || edges.Height != threshold.Height {
		return raster.Mask{}, raster.InvalidInputf("combine: dimension mismatch %dx%d vs %dx%d",
			edges.Width, edges.Height, threshold.Width, threshold.Height)
	}

	out, err := raster.NewMask(edges.Width, edges.Height)
	if err != nil {
		return raster.Mask{}, err
	}

	for i := range out.Pix {
		if int(edges.Pix[i]) > edgeThreshold || int(threshold.Pix[i]) > 128 {
			out.Pix[i] = 255
		}
	}
	return out, nil
}
