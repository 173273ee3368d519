package classify

import "sort"

// SuppressOverlapping sorts boundaries by area descending (ties keep their
// original relative order) and drops every later boundary whose
// bounding-box IoU against an already-accepted boundary exceeds 0.5.
func SuppressOverlapping(boundaries []Boundary) []Boundary {
	ordered := append([]Boundary(nil), boundaries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Area > ordered[j].Area
	})

	var accepted []Boundary
	for _, candidate := range ordered {
		suppressed := false
		for _, kept := range accepted {
			if candidate.BoundingRect.IoU(kept.BoundingRect) > 0.5 {
				suppressed = true
				break
			}
		}
		if !suppressed {
			accepted = append(accepted, candidate)
		}
	}
	return accepted
}
