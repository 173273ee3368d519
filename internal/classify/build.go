package classify

import (
	"github.com/docbound/docbound-mcp/internal/geometry"
	"github.com/docbound/docbound-mcp/internal/raster"
)

// Build computes the derived fields (area, aspect ratio, bounding box,
// convexity) of a Boundary from its approximated points. The vertex count
// must already have passed PassesVertexCount; Build does not re-check it.
// If exactly 4 points are supplied they are reordered via
// OrderQuadrilateral first. Type is left empty for Classify to fill in.
func Build(points []raster.Point) Boundary {
	if len(points) == 4 {
		points = OrderQuadrilateral(points)
	}

	bbox := geometry.BoundingBox(points)
	var aspect float64
	if bbox.Height != 0 {
		aspect = bbox.Width / bbox.Height
	}

	return Boundary{
		Points:       points,
		Area:         geometry.Area(points),
		AspectRatio:  aspect,
		NumVertices:  len(points),
		BoundingRect: bbox,
		IsConvex:     geometry.IsConvex(points),
	}
}
