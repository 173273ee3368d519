// Package contour extracts ordered boundary point sequences from a binary
// mask using Moore-neighbor tracing. It produces one contour per connected
// white region's outer-left edge; it does not attempt general connected-
// component labeling.
package contour
