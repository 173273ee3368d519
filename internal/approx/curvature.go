package approx

import (
	"math"
	"sort"

	"github.com/docbound/docbound-mcp/internal/geometry"
	"github.com/docbound/docbound-mcp/internal/raster"
)

// curvatureSample is one candidate corner: its point, its score, and its
// index into the sampled sequence (used only to break score ties
// deterministically).
type curvatureSample struct {
	point      raster.Point
	score      float64
	sampleIdx  int
}

// CornerSearch finds n sharp-turn corners along contour by subsampling it,
// scoring each sample by how sharply the polyline turns there, and greedily
// selecting the highest-scoring samples subject to a minimum-separation
// constraint. contour must have at least 8 points.
//
// Selected points are returned in descending-score (selection) order, not
// contour order; callers that need exactly 4 corners reorder them
// separately.
func CornerSearch(contour []raster.Point, n int) []raster.Point {
	total := len(contour)
	if total < 8 {
		return nil
	}

	step := total / 100
	if step < 1 {
		step = 1
	}

	var sampledIdx []int
	for i := 0; i < total; i += step {
		sampledIdx = append(sampledIdx, i)
	}
	sampled := len(sampledIdx)

	window := sampled / 20
	if window < 3 {
		window = 3
	}

	bbox := geometry.BoundingBox(contour)
	minSeparation := 0.2 * math.Min(bbox.Width, bbox.Height)

	candidates := make([]curvatureSample, 0, sampled)
	for i := 0; i < sampled; i++ {
		curr := contour[sampledIdx[i]]
		prev := contour[sampledIdx[((i-window)%sampled+sampled)%sampled]]
		next := contour[sampledIdx[(i+window)%sampled]]

		// v1 and v2 both point away from curr, so a straight run gives an
		// angle of pi between them (score 0) and a sharp corner a small
		// angle (score near pi).
		v1x, v1y := prev.X-curr.X, prev.Y-curr.Y
		v2x, v2y := next.X-curr.X, next.Y-curr.Y

		v1len := math.Sqrt(v1x*v1x + v1y*v1y)
		v2len := math.Sqrt(v2x*v2x + v2y*v2y)
		if v1len == 0 || v2len == 0 {
			continue
		}

		cosAngle := (v1x*v2x + v1y*v2y) / (v1len * v2len)
		if cosAngle < -1 {
			cosAngle = -1
		} else if cosAngle > 1 {
			cosAngle = 1
		}
		score := math.Pi - math.Acos(cosAngle)

		candidates = append(candidates, curvatureSample{point: curr, score: score, sampleIdx: i})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].sampleIdx < candidates[j].sampleIdx
	})

	var selected []raster.Point
	for _, c := range candidates {
		if len(selected) >= n {
			break
		}
		tooClose := false
		for _, s := range selected {
			dx, dy := c.point.X-s.X, c.point.Y-s.Y
			if math.Sqrt(dx*dx+dy*dy) < minSeparation {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		selected = append(selected, c.point)
	}
	return selected
}
