package classify

import (
	"math"
	"sort"

	"github.com/docbound/docbound-mcp/internal/raster"
)

// OrderQuadrilateral reorders an exactly-4-point polygon: compute the
// centroid, sort the points by atan2(y-cy, x-cx) ascending (counterclockwise
// from the positive x-axis), then rotate the sequence so the point with the
// smallest x+y sum comes first. Points of any other length are returned
// unchanged.
func OrderQuadrilateral(points []raster.Point) []raster.Point {
	if len(points) != 4 {
		return points
	}

	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= 4
	cy /= 4

	ordered := append([]raster.Point(nil), points...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return math.Atan2(ordered[i].Y-cy, ordered[i].X-cx) < math.Atan2(ordered[j].Y-cy, ordered[j].X-cx)
	})

	minIdx := 0
	minSum := ordered[0].X + ordered[0].Y
	for i := 1; i < len(ordered); i++ {
		sum := ordered[i].X + ordered[i].Y
		if sum < minSum {
			minSum = sum
			minIdx = i
		}
	}

	rotated := make([]raster.Point, 4)
	for i := 0; i < 4; i++ {
		rotated[i] = ordered[(minIdx+i)%4]
	}
	return rotated
}
