package detect

import (
	"github.com/docbound/docbound-mcp/internal/approx"
	"github.com/docbound/docbound-mcp/internal/classify"
	"github.com/docbound/docbound-mcp/internal/contour"
	"github.com/docbound/docbound-mcp/internal/filters"
	"github.com/docbound/docbound-mcp/internal/geometry"
	"github.com/docbound/docbound-mcp/internal/raster"
)

// Detect runs the full pixel-to-boundary pipeline once against r under
// options, validating options and the raster's dimensions/pixel-buffer
// length before doing any work.
func Detect(r raster.Raster, options Options) (Result, error) {
	if err := options.Validate(); err != nil {
		return Result{}, err
	}
	if r.Width <= 0 || r.Height <= 0 {
		return Result{}, raster.InvalidInputf("raster dimensions must be positive, got %dx%d", r.Width, r.Height)
	}
	if len(r.Pix) != 4*r.Width*r.Height {
		return Result{}, raster.InvalidInputf("pixel buffer length %d does not match 4*%d*%d", len(r.Pix), r.Width, r.Height)
	}

	gray, err := filters.Grayscale(r)
	if err != nil {
		return Result{}, err
	}
	blurred, err := filters.GaussianBlur(gray, options.BlurRadius)
	if err != nil {
		return Result{}, err
	}
	edges, err := filters.Sobel(blurred)
	if err != nil {
		return Result{}, err
	}
	thresholdMask, err := filters.AdaptiveMeanThreshold(blurred, 15, 5)
	if err != nil {
		return Result{}, err
	}
	combined, err := filters.Combine(edges, thresholdMask, options.EdgeThreshold)
	if err != nil {
		return Result{}, err
	}
	processed, err := filters.Close(combined)
	if err != nil {
		return Result{}, err
	}

	contours := contour.Trace(processed)

	filterParams := classify.FilterParams{
		MinAreaRatio: options.MinAreaRatio,
		MaxAreaRatio: options.MaxAreaRatio,
		MinAspect:    0.3,
		MaxAspect:    3.5,
	}

	var boundaries []classify.Boundary
	for _, c := range contours {
		if !classify.PassesAreaAspect(c, r.Width, r.Height, filterParams) {
			continue
		}

		perimeter := geometry.Perimeter(c)
		points := approx.Approximate(c, perimeter)
		if points == nil {
			continue
		}
		if !classify.PassesVertexCount(points) {
			continue
		}

		boundaries = append(boundaries, classify.Build(points))
	}

	boundaries = classify.SuppressOverlapping(boundaries)
	boundaries = classify.Classify(boundaries)

	intermediate := map[IntermediateKey]raster.GrayBuffer{
		StageGrayscale: gray,
		StageEdges:     edges,
		StageThreshold: thresholdMask.GrayBuffer,
		StageProcessed: processed.GrayBuffer,
	}

	return Result{
		Boundaries:   boundaries,
		Intermediate: intermediate,
		Stats: Stats{
			TotalDetected:      len(boundaries),
			ProcessingPipeline: ProcessingPipeline,
		},
	}, nil
}
