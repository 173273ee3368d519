// Package preprocess offers an opt-in downscale for oversized rasters
// before they reach the detection pipeline. Detect/DetectEnhanced never
// call into this package themselves; it exists for callers (the CLI, the
// MCP server) that want to bound how much pixel data a single detect call
// processes.
package preprocess
