package motion

import "sort"

// ResampleUniform converts an arbitrarily spaced sample sequence into count
// samples spaced uniformly in arc length.
//
// It computes cumulative euclidean distance across the input and binary
// searches it for each evenly spaced arc-length target, interpolating within
// the bracketing pair. Irregular input spacing otherwise shows up as
// artifacts in the velocity profile.
//
// Degenerate inputs (fewer than 2 points, count ≤ 1, or zero total length)
// are returned unchanged.
func ResampleUniform(samples []Point, count int) []Point {
	if len(samples) < 2 || count <= 1 {
		return samples
	}
	cum := cumulativeDistances(samples)
	total := cum[len(cum)-1]
	if total == 0 {
		return samples
	}

	out := make([]Point, count)
	out[0] = samples[0]
	for k := 1; k < count; k++ {
		target := total * float64(k) / float64(count-1)
		i := sort.SearchFloat64s(cum, target)
		if i >= len(cum) {
			i = len(cum) - 1
		}
		if i == 0 {
			out[k] = samples[0]
			continue
		}
		span := cum[i] - cum[i-1]
		if span == 0 {
			out[k] = samples[i]
			continue
		}
		out[k] = samples[i-1].Lerp(samples[i], (target-cum[i-1])/span)
	}
	return out
}

// cumulativeDistances returns the running euclidean distance along pts;
// element 0 is 0.
func cumulativeDistances(pts []Point) []float64 {
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i-1].Distance(pts[i])
	}
	return cum
}
