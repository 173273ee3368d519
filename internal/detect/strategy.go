package detect

import (
	"log"

	"github.com/docbound/docbound-mcp/internal/raster"
)

// strategyOverride describes one fixed option override applied on top of
// the caller's base options.
type strategyOverride func(o Options) Options

// strategies are applied in order; the first strategy is the caller's
// options unchanged.
var strategies = []strategyOverride{
	func(o Options) Options { return o },
	func(o Options) Options {
		o.EdgeThreshold = 30
		o.MinAreaRatio = 0.03
		return o
	},
	func(o Options) Options {
		o.EdgeThreshold = 70
		o.BlurRadius = 3
		return o
	},
	func(o Options) Options {
		o.MinAreaRatio = 0.01
		o.MaxAreaRatio = 0.98
		return o
	},
}

// countFourVertex reports how many boundaries in result have exactly 4
// vertices.
func countFourVertex(result Result) int {
	count := 0
	for _, b := range result.Boundaries {
		if b.NumVertices == 4 {
			count++
		}
	}
	return count
}

// DetectEnhanced runs Detect under a fixed sequence of option overrides on
// top of baseOptions, returning as soon as a run produces at least one
// 4-vertex boundary. If no run does, it falls back to the run with the
// highest 4-vertex count (ties keep the earliest), then to the run with the
// most total boundaries (ties keep the earliest). A run that errors is
// logged and skipped; it never counts as a candidate.
func DetectEnhanced(r raster.Raster, baseOptions Options) Result {
	var best Result
	haveBest := false
	bestFourVertex := -1

	for i, override := range strategies {
		opts := override(baseOptions)

		result, err := Detect(r, opts)
		if err != nil {
			log.Printf("docbound: strategy %d failed: %v", i, err)
			continue
		}

		fourVertex := countFourVertex(result)
		if fourVertex >= 1 {
			return result
		}

		if !haveBest {
			best = result
			bestFourVertex = fourVertex
			haveBest = true
			continue
		}

		if fourVertex > bestFourVertex {
			best = result
			bestFourVertex = fourVertex
		} else if fourVertex == bestFourVertex && bestFourVertex == 0 && len(result.Boundaries) > len(best.Boundaries) {
			best = result
		}
	}

	if !haveBest {
		return emptyResult()
	}
	return best
}
