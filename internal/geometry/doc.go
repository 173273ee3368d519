// Package geometry provides the plain-geometry primitives the approximator
// and classifier build on: area, perimeter, bounding boxes, point-to-segment
// distance, convexity, and axis-aligned IoU.
package geometry
