package detect

import (
	"github.com/docbound/docbound-mcp/internal/classify"
	"github.com/docbound/docbound-mcp/internal/raster"
)

// Boundary is re-exported so callers never need to import internal/classify
// directly.
type Boundary = classify.Boundary

// IntermediateKey names one of the fixed intermediate-buffer stages exposed
// on a Result.
type IntermediateKey string

const (
	StageGrayscale IntermediateKey = "grayscale"
	StageEdges     IntermediateKey = "edges"
	StageThreshold IntermediateKey = "threshold"
	StageProcessed IntermediateKey = "processed"
)

// ProcessingPipeline is the fixed stage-name list every Result reports,
// regardless of how many boundaries it found.
var ProcessingPipeline = []string{"grayscale", "blur", "edges", "threshold", "contours", "filter"}

// Stats summarizes one detect/DetectEnhanced run.
type Stats struct {
	TotalDetected      int
	ProcessingPipeline []string
}

// Result is the outcome of one detect/DetectEnhanced call: the surviving,
// classified boundaries plus the intermediate buffers and stats from the
// run that produced them.
type Result struct {
	Boundaries   []Boundary
	Intermediate map[IntermediateKey]raster.GrayBuffer
	Stats        Stats
}

func emptyResult() Result {
	return Result{
		Boundaries:   nil,
		Intermediate: map[IntermediateKey]raster.GrayBuffer{},
		Stats:        Stats{TotalDetected: 0, ProcessingPipeline: ProcessingPipeline},
	}
}
