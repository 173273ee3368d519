package geometry

import (
	"math"
	"testing"

	"github.com/docbound/docbound-mcp/internal/raster"
)

func square(x, y, w, h float64) []raster.Point {
	return []raster.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

func TestAreaOfSquare(t *testing.T) {
	got := Area(square(0, 0, 10, 5))
	if got != 50 {
		t.Errorf("Area = %v, want 50", got)
	}
}

func TestAreaDegenerateBelowThreePoints(t *testing.T) {
	if got := Area([]raster.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}); got != 0 {
		t.Errorf("Area of 2 points = %v, want 0", got)
	}
}

func TestPerimeterOfSquare(t *testing.T) {
	got := Perimeter(square(0, 0, 3, 4))
	want := 2 * (3 + 4)
	if math.Abs(got-float64(want)) > 1e-9 {
		t.Errorf("Perimeter = %v, want %v", got, want)
	}
}

func TestBoundingBox(t *testing.T) {
	pts := []raster.Point{{X: 2, Y: 3}, {X: -1, Y: 5}, {X: 4, Y: -2}}
	b := BoundingBox(pts)
	if b.X != -1 || b.Y != -2 || b.Width != 5 || b.Height != 7 {
		t.Errorf("BoundingBox = %+v, want {X:-1 Y:-2 Width:5 Height:7}", b)
	}
}

func TestIoUDisjointIsZero(t *testing.T) {
	a := BBox{X: 0, Y: 0, Width: 10, Height: 10}
	b := BBox{X: 100, Y: 100, Width: 10, Height: 10}
	if got := a.IoU(b); got != 0 {
		t.Errorf("IoU of disjoint boxes = %v, want 0", got)
	}
}

func TestIoUIdenticalIsOne(t *testing.T) {
	a := BBox{X: 0, Y: 0, Width: 10, Height: 10}
	if got := a.IoU(a); math.Abs(got-1) > 1e-9 {
		t.Errorf("IoU of identical boxes = %v, want 1", got)
	}
}

func TestIoUPartialOverlap(t *testing.T) {
	a := BBox{X: 0, Y: 0, Width: 10, Height: 10}
	b := BBox{X: 5, Y: 0, Width: 10, Height: 10}
	// intersection = 5x10=50, union = 100+100-50=150
	want := 50.0 / 150.0
	if got := a.IoU(b); math.Abs(got-want) > 1e-9 {
		t.Errorf("IoU = %v, want %v", got, want)
	}
}

func TestPointToSegmentDistanceClampsToEndpoint(t *testing.T) {
	a := raster.Point{X: 0, Y: 0}
	b := raster.Point{X: 10, Y: 0}
	p := raster.Point{X: -5, Y: 0}
	if got := PointToSegmentDistance(p, a, b); got != 5 {
		t.Errorf("distance = %v, want 5 (clamped to endpoint a)", got)
	}
}

func TestPointToSegmentDistancePerpendicular(t *testing.T) {
	a := raster.Point{X: 0, Y: 0}
	b := raster.Point{X: 10, Y: 0}
	p := raster.Point{X: 5, Y: 3}
	if got := PointToSegmentDistance(p, a, b); got != 3 {
		t.Errorf("distance = %v, want 3", got)
	}
}

func TestPointToSegmentDistanceDegenerateSegment(t *testing.T) {
	a := raster.Point{X: 2, Y: 2}
	p := raster.Point{X: 5, Y: 2}
	if got := PointToSegmentDistance(p, a, a); got != 3 {
		t.Errorf("distance to degenerate segment = %v, want 3", got)
	}
}

func TestIsConvexSquareIsConvex(t *testing.T) {
	if !IsConvex(square(0, 0, 10, 10)) {
		t.Error("square should be convex")
	}
}

func TestIsConvexLShapeIsNotConvex(t *testing.T) {
	lshape := []raster.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5},
		{X: 5, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
	}
	if IsConvex(lshape) {
		t.Error("L-shape should not be convex")
	}
}
