package geometry

import (
	"math"

	"github.com/docbound/docbound-mcp/internal/raster"
)

// Area computes the shoelace-formula area of a closed polygon (the closing
// edge from the last point back to the first is implicit).
func Area(points []raster.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

// Perimeter sums Euclidean distances between consecutive points, wrapping
// last back to first.
func Perimeter(points []raster.Point) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += dist(points[i], points[j])
	}
	return total
}

func dist(a, b raster.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox is an axis-aligned bounding box: (X, Y) is the top-left corner,
// Width and Height are non-negative.
type BBox struct {
	X, Y, Width, Height float64
}

// BoundingBox returns the minimal axis-aligned box enclosing points.
func BoundingBox(points []raster.Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Area returns the bounding box's area.
func (b BBox) Area() float64 { return b.Width * b.Height }

// Right returns the box's right edge X coordinate.
func (b BBox) Right() float64 { return b.X + b.Width }

// Bottom returns the box's bottom edge Y coordinate.
func (b BBox) Bottom() float64 { return b.Y + b.Height }

// Intersects reports whether two boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// Intersection returns the overlapping region of two boxes. The zero value
// is returned (zero area) when they do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}
	x := math.Max(b.X, other.X)
	y := math.Max(b.Y, other.Y)
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())
	return BBox{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// IoU is the intersection-over-union of two axis-aligned boxes: zero when
// they are disjoint, otherwise intersection area divided by union area.
func (b BBox) IoU(other BBox) float64 {
	inter := b.Intersection(other)
	interArea := inter.Area()
	if interArea <= 0 {
		return 0
	}
	unionArea := b.Area() + other.Area() - interArea
	if unionArea <= 0 {
		return 0
	}
	return interArea / unionArea
}

// PointToSegmentDistance returns the Euclidean distance from p to the
// segment [a, b], clamping the parametric projection t to [0, 1]. A
// degenerate (zero-length) segment returns the distance to either endpoint.
func PointToSegmentDistance(p, a, b raster.Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return dist(p, a)
	}
	apx, apy := p.X-a.X, p.Y-a.Y
	t := (apx*abx + apy*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := raster.Point{X: a.X + t*abx, Y: a.Y + t*aby}
	return dist(p, proj)
}

// IsConvex reports whether a polygon is convex: the signed cross product of
// every pair of consecutive edges must agree in sign (zero cross products,
// i.e. collinear edges, are ignored).
func IsConvex(points []raster.Point) bool {
	n := len(points)
	if n < 3 {
		return false
	}

	var sign float64
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		c := points[(i+2)%n]

		v1x, v1y := b.X-a.X, b.Y-a.Y
		v2x, v2y := c.X-b.X, c.Y-b.Y
		cross := v1x*v2y - v1y*v2x

		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (sign > 0) != (cross > 0) {
			return false
		}
	}
	return true
}
