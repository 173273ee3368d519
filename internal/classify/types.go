package classify

import (
	"github.com/docbound/docbound-mcp/internal/geometry"
	"github.com/docbound/docbound-mcp/internal/raster"
)

// Boundary is one classified document/spread candidate surviving the
// filter, approximation, overlap-suppression, and classification stages.
type Boundary struct {
	Points       []raster.Point
	Area         float64
	AspectRatio  float64
	NumVertices  int
	BoundingRect geometry.BBox
	IsConvex     bool
	Type         string
}

const (
	TypeSingleDocument  = "single-document"
	TypeDocument        = "document"
	TypeBookSpreadLeft  = "book-spread-left"
	TypeBookSpreadRight = "book-spread-right"
)
