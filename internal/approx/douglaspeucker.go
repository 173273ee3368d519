package approx

import (
	"math"

	"github.com/docbound/docbound-mcp/internal/geometry"
	"github.com/docbound/docbound-mcp/internal/raster"
)

// span is a (start, end) index range into the source contour awaiting a
// simplification decision. Using an explicit stack keeps Simplify from
// recursing to contour depth.
type span struct {
	start, end int
}

// Simplify runs Douglas-Peucker polyline simplification over contour with
// tolerance epsilon, treating it as a polyline from first to last point (the
// closing edge back to the first point is implicit and is not part of the
// simplified chain itself). Because that closing edge is implicit, a last
// point lying within epsilon of it (for example a traced contour's return to
// its start pixel, or a point just short of it) is dropped from the result,
// so a closed shape keeps no extra vertex at the seam.
//
// The recursive formulation splits at the point of maximum perpendicular
// distance from the chord between the span's endpoints, recursing on both
// halves when that distance exceeds epsilon. This iterative form uses an
// explicit stack to the same effect, which keeps worst-case O(|contour|)
// recursion depth off the call stack.
func Simplify(contour []raster.Point, epsilon float64) []raster.Point {
	n := len(contour)
	if n < 3 {
		return append([]raster.Point(nil), contour...)
	}

	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true

	stack := []span{{0, n - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.end-s.start < 2 {
			continue
		}

		a, b := contour[s.start], contour[s.end]
		maxDist := -1.0
		maxIdx := -1
		for i := s.start + 1; i < s.end; i++ {
			d := pointLineDistance(contour[i], a, b)
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxDist > epsilon {
			keep[maxIdx] = true
			stack = append(stack, span{s.start, maxIdx}, span{maxIdx, s.end})
		}
	}

	result := make([]raster.Point, 0, n)
	for i, k := range keep {
		if k {
			result = append(result, contour[i])
		}
	}

	// Drop a last point that sits on the implicit closing edge from the
	// point before it back to the first point.
	if m := len(result); m >= 4 && geometry.PointToSegmentDistance(result[m-1], result[m-2], result[0]) <= epsilon {
		result = result[:m-1]
	}
	return result
}

// pointLineDistance is the perpendicular distance from p to the infinite
// line through a and b (not clamped to the segment, unlike
// geometry.PointToSegmentDistance — Douglas-Peucker measures against the
// chord line itself).
func pointLineDistance(p, a, b raster.Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	length := math.Sqrt(abx*abx + aby*aby)
	if length == 0 {
		apx, apy := p.X-a.X, p.Y-a.Y
		return math.Sqrt(apx*apx + apy*apy)
	}
	// |cross(ab, ap)| / |ab|
	apx, apy := p.X-a.X, p.Y-a.Y
	cross := abx*apy - aby*apx
	return math.Abs(cross) / length
}
