// Package classify turns approximated polygons into labeled boundaries: a
// pre-approximation area/aspect filter, 4-vertex ordering, bounding-box
// overlap suppression, and a book-spread/document classification pass.
package classify
