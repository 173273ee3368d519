package contour

import "github.com/docbound/docbound-mcp/internal/raster"

// minContourPoints discards any trace shorter than this — short traces are
// noise, not document edges.
const minContourPoints = 20

// directionDX/directionDY hold the 8 Moore-neighbor offsets in clockwise
// order starting with east, matching the direction indices used while
// stepping the tracer.
var directionDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
var directionDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}

// Trace runs Moore-neighbor boundary tracing over mask and returns one
// contour per connected white region's outer-left edge.
//
// A pixel starts a new trace when it is white, unvisited, and its western
// neighbor is black — i.e. it is the left edge of a white region. The
// scanner only considers start pixels in (1,1)..(W-2,H-2); the outermost
// frame is never scanned, so regions touching the image border (in
// particular its left edge) may be missed entirely. This is a known,
// intentional limitation carried over unchanged rather than "fixed".
//
// Contours shorter than minContourPoints, and traces whose iteration budget
// is exhausted before they close, are discarded silently.
func Trace(mask raster.Mask) [][]raster.Point {
	w, h := mask.Width, mask.Height
	visited := make([]bool, w*h)

	var contours [][]raster.Point

	for y := 1; y <= h-2; y++ {
		for x := 1; x <= w-2; x++ {
			if visited[y*w+x] {
				continue
			}
			if mask.At(x, y) != 255 {
				continue
			}
			if mask.At(x-1, y) != 0 {
				continue
			}

			points, exceededBudget := traceOne(mask, visited, x, y)
			if exceededBudget {
				continue
			}
			if len(points) >= minContourPoints {
				contours = append(contours, points)
			}
		}
	}
	return contours
}

// traceOne follows the Moore-neighbor boundary starting at (startX, startY),
// marking every traced pixel visited as it goes. It returns the traced
// points and whether the W*H iteration budget was exhausted before the
// trace closed.
func traceOne(mask raster.Mask, visited []bool, startX, startY int) ([]raster.Point, bool) {
	w := mask.Width
	budget := mask.Width * mask.Height

	x, y := startX, startY
	d := 0 // initial direction is arbitrary; the first search step examines
	// all 8 neighbors regardless of where it starts.

	visited[y*w+x] = true
	points := []raster.Point{{X: float64(x), Y: float64(y)}}

	for step := 0; step < budget; step++ {
		nx, ny, nd, found := nextBoundaryPoint(mask, x, y, d)
		if !found {
			return points, false
		}
		x, y, d = nx, ny, nd
		visited[y*w+x] = true
		points = append(points, raster.Point{X: float64(x), Y: float64(y)})

		if x == startX && y == startY {
			return points, false
		}
	}
	return points, true
}

// nextBoundaryPoint examines the 8 neighbors of (x, y) starting two
// positions counterclockwise of the current direction d and proceeding
// clockwise, returning the first in-bounds white neighbor found.
func nextBoundaryPoint(mask raster.Mask, x, y, d int) (nx, ny, nd int, found bool) {
	start := (d + 6) % 8
	for i := 0; i < 8; i++ {
		idx := (start + i) % 8
		cx := x + directionDX[idx]
		cy := y + directionDY[idx]
		if v, ok := mask.AtChecked(cx, cy); ok && v == 255 {
			return cx, cy, idx, true
		}
	}
	return 0, 0, 0, false
}
