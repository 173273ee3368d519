package classify

import (
	"math"
	"sort"
)

// Classify labels boundaries in place: a single survivor is
// single-document; otherwise adjacent pairs (sorted by bounding-box x) that
// are close together and similarly tall are labelled as a book spread, and
// everything else left unlabelled becomes a plain document.
func Classify(boundaries []Boundary) []Boundary {
	if len(boundaries) == 1 {
		boundaries[0].Type = TypeSingleDocument
		return boundaries
	}

	ordered := append([]Boundary(nil), boundaries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].BoundingRect.X < ordered[j].BoundingRect.X
	})

	for i := 0; i+1 < len(ordered); i++ {
		left := &ordered[i]
		right := &ordered[i+1]

		gap := right.BoundingRect.X - left.BoundingRect.Right()
		avgWidth := (left.BoundingRect.Width + right.BoundingRect.Width) / 2
		heightDiff := math.Abs(left.BoundingRect.Height - right.BoundingRect.Height)
		avgHeight := (left.BoundingRect.Height + right.BoundingRect.Height) / 2

		if gap < 0.3*avgWidth && heightDiff < 0.3*avgHeight {
			left.Type = TypeBookSpreadLeft
			right.Type = TypeBookSpreadRight
		}
	}

	for i := range ordered {
		if ordered[i].Type == "" {
			ordered[i].Type = TypeDocument
		}
	}
	return ordered
}
