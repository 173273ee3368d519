package preprocess

// DownscalePlan describes how (or whether) to shrink a raster before
// detection. ScaleFactor == 1.0 means no-op.
type DownscalePlan struct {
	ScaleFactor  float64
	TargetWidth  int
	TargetHeight int
}

// Plan computes a DownscalePlan for an image of size width x height against
// maxDimension. If the image's longer side already fits, the plan is a
// no-op. Otherwise it shrinks uniformly so the longer side lands exactly on
// maxDimension, flooring the shorter side and clamping both to a minimum of
// 1.
func Plan(width, height, maxDimension int) DownscalePlan {
	longSide := width
	if height > longSide {
		longSide = height
	}

	if longSide <= maxDimension {
		return DownscalePlan{ScaleFactor: 1.0, TargetWidth: width, TargetHeight: height}
	}

	scale := float64(maxDimension) / float64(longSide)

	targetW := int(float64(width) * scale)
	if targetW < 1 {
		targetW = 1
	}
	targetH := int(float64(height) * scale)
	if targetH < 1 {
		targetH = 1
	}

	return DownscalePlan{ScaleFactor: scale, TargetWidth: targetW, TargetHeight: targetH}
}
