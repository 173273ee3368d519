// Package raster holds the leaf-level data types the detection pipeline is
// built from: the packed RGBA input, the single-channel buffers every filter
// stage reads and writes, and the error kinds the pipeline's outer boundary
// surfaces to callers.
//
// Every buffer type here owns its backing slice exclusively for the
// lifetime of one detect call. Nothing in this package retains state
// between calls, and nothing here performs I/O.
package raster
