package classify

import (
	"github.com/docbound/docbound-mcp/internal/geometry"
	"github.com/docbound/docbound-mcp/internal/raster"
)

// FilterParams bundles the bounds of the pre-approximation area/aspect gate;
// the area fields mirror the detector's Options so callers can pass those
// through directly. The post-approximation vertex-count gate
// (PassesVertexCount) takes no parameters.
type FilterParams struct {
	MinAreaRatio float64
	MaxAreaRatio float64
	MinAspect    float64
	MaxAspect    float64
}

// PassesAreaAspect reports whether contour's raw area and bounding-box
// aspect ratio fall inside the configured ranges, against an image of size
// imageWidth x imageHeight. This runs before polygon approximation, on the
// raw traced contour.
func PassesAreaAspect(contour []raster.Point, imageWidth, imageHeight int, p FilterParams) bool {
	area := geometry.Area(contour)
	imgArea := float64(imageWidth) * float64(imageHeight)
	if area < p.MinAreaRatio*imgArea || area > p.MaxAreaRatio*imgArea {
		return false
	}

	bbox := geometry.BoundingBox(contour)
	if bbox.Height == 0 {
		return false
	}
	aspect := bbox.Width / bbox.Height
	if aspect < p.MinAspect || aspect > p.MaxAspect {
		return false
	}
	return true
}

// PassesVertexCount reports whether an approximated polygon has a usable
// vertex count.
func PassesVertexCount(points []raster.Point) bool {
	return len(points) >= 4 && len(points) <= 8
}
