package motion

import "math"

// sharpCornerThreshold is the directness magnitude at or above which a
// segment is sampled as a straight line instead of a Bézier. Extreme
// intensities would otherwise overshoot the tangent handles.
const sharpCornerThreshold = 0.9

// DefaultBaselineSamples is the default per-segment sample density used when
// oversampling a waypoint path.
const DefaultBaselineSamples = 24

// SamplePath samples a continuous curve through the ordered waypoints.
//
// Each consecutive waypoint pair becomes a cubic Bézier whose Catmull-Rom
// tangent handles are scaled by the signed directness intensity at the
// segment's normalized position. Where |intensity| ≥ 0.9 the segment is
// sampled linearly instead (the sharp-corner rule). The total sample budget,
// baseline × segment count, is allocated proportionally to segment length so
// that short segments do not starve curvature detail.
//
// Fewer than 2 waypoints are returned unchanged. Duplicate joint samples at
// segment boundaries are removed.
func SamplePath(waypoints []Point, baseline int, directness ParamMap) []Point {
	return SamplePathCounts(waypoints, allocateSamples(waypoints, baseline), directness)
}

// SamplePathCounts is like [SamplePath] with an explicit per-segment sample
// count, counts[i] covering the segment from waypoints[i] to waypoints[i+1].
func SamplePathCounts(waypoints []Point, counts []int, directness ParamMap) []Point {
	if len(waypoints) < 2 {
		return waypoints
	}
	segs := len(waypoints) - 1
	out := make([]Point, 0, sum(counts))
	for i := 0; i < segs; i++ {
		n := 2
		if i < len(counts) && counts[i] > 2 {
			n = counts[i]
		}
		segPos := 0.0
		if segs > 1 {
			segPos = float64(i) / float64(segs-1)
		}
		c := intensity(directness, segPos)

		p0, p3 := waypoints[i], waypoints[i+1]
		start := 0
		if i > 0 {
			// The joint sample duplicates the previous segment's end.
			start = 1
		}

		if math.Abs(c) >= sharpCornerThreshold {
			for k := start; k < n; k++ {
				out = append(out, p0.Lerp(p3, float64(k)/float64(n-1)))
			}
			continue
		}

		// Catmull-Rom tangents from the neighboring waypoints, scaled by the
		// signed intensity. At zero intensity the handles collapse onto the
		// endpoints and the segment degenerates to a straight line.
		prev, next := p0, p3
		if i > 0 {
			prev = waypoints[i-1]
		}
		if i+2 < len(waypoints) {
			next = waypoints[i+2]
		}
		m0 := p3.Sub(prev).Mul(0.5)
		m1 := next.Sub(p0).Mul(0.5)
		cb := CubicBez{
			P0: p0,
			P1: p0.Translate(m0.Mul(c / 3)),
			P2: p3.Translate(m1.Mul(c / 3).Negate()),
			P3: p3,
		}
		for k := start; k < n; k++ {
			out = append(out, cb.Eval(float64(k)/float64(n-1)))
		}
	}
	return out
}

// allocateSamples distributes the total sample budget, baseline per segment,
// across segments in proportion to their geometric length. Rounding drift is
// redistributed to the longest segments when under-allocated and taken from
// the shortest when over-allocated, never below 2 samples per segment. A
// zero-length path falls back to uniform allocation.
func allocateSamples(waypoints []Point, baseline int) []int {
	if len(waypoints) < 2 {
		return nil
	}
	if baseline < 2 {
		baseline = 2
	}
	segs := len(waypoints) - 1
	total := baseline * segs

	lengths := make([]float64, segs)
	var pathLen float64
	for i := range lengths {
		lengths[i] = waypoints[i].Distance(waypoints[i+1])
		pathLen += lengths[i]
	}

	counts := make([]int, segs)
	if pathLen == 0 {
		for i := range counts {
			counts[i] = max(total/segs, 2)
		}
		return counts
	}

	allocated := 0
	for i := range counts {
		counts[i] = max(int(math.Round(float64(total)*lengths[i]/pathLen)), 2)
		allocated += counts[i]
	}
	for allocated < total {
		counts[argLongest(lengths, counts, false)]++
		allocated++
	}
	for allocated > total {
		i := argLongest(lengths, counts, true)
		if i < 0 {
			break
		}
		counts[i]--
		allocated--
	}
	return counts
}

// argLongest returns the index of the longest segment, or, when shortest is
// set, the shortest segment that still has more than 2 samples to give up.
// Returns -1 if no segment qualifies.
func argLongest(lengths []float64, counts []int, shortest bool) int {
	best := -1
	for i, l := range lengths {
		if shortest {
			if counts[i] <= 2 {
				continue
			}
			if best < 0 || l < lengths[best] {
				best = i
			}
		} else {
			if best < 0 || l > lengths[best] {
				best = i
			}
		}
	}
	return best
}

func sum(ns []int) int {
	var t int
	for _, n := range ns {
		t += n
	}
	return t
}
