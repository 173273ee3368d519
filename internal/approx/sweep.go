package approx

import "github.com/docbound/docbound-mcp/internal/raster"

// epsilonFactors are tried in order against each contour's perimeter; order
// matters for the "earliest-tried" tie-break in Approximate.
var epsilonFactors = []float64{0.01, 0.02, 0.03, 0.04, 0.05}

// Approximate reduces contour to a small polygon via an adaptive
// epsilon-sweep over Douglas-Peucker, falling back to a curvature corner
// search when no sweep factor lands on a usable vertex count.
//
// Acceptance, in priority order:
//  1. If any epsilon factor yields exactly 4 vertices, that result is used.
//  2. Otherwise, among factors yielding a vertex count in [4, 8], the
//     result whose count is closest to 4 is used (ties go to the
//     earliest-tried factor).
//  3. Otherwise, a curvature corner search requesting 4 corners is run; its
//     result is used only if it returns exactly 4 points.
//
// Approximate returns nil if none of the above produce a result.
func Approximate(contour []raster.Point, perimeter float64) []raster.Point {
	var bestInRange []raster.Point
	bestDistance := -1

	for _, factor := range epsilonFactors {
		eps := factor * perimeter
		simplified := Simplify(contour, eps)
		count := len(simplified)

		if count == 4 {
			return simplified
		}

		if count >= 4 && count <= 8 {
			d := count - 4
			if d < 0 {
				d = -d
			}
			if bestDistance == -1 || d < bestDistance {
				bestDistance = d
				bestInRange = simplified
			}
		}
	}

	if bestInRange != nil {
		return bestInRange
	}

	corners := CornerSearch(contour, 4)
	if len(corners) == 4 {
		return corners
	}
	return nil
}
