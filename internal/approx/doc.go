// Package approx reduces a traced contour to a small polygon: a
// Douglas-Peucker simplifier driven by an adaptive epsilon sweep, with a
// curvature-based corner search as fallback when no sweep factor lands on a
// usable vertex count.
package approx
