package motion

import "math"

// SmoothCorners blends the joints of an oversampled curve.
//
// For every interior waypoint it finds the sample nearest that waypoint's
// normalized arc position and applies a symmetric Gaussian convolution over a
// window centered there. The window half-width (≈ 0.6 × baseline) and sigma
// (≈ 0.12 × baseline) derive from the sampling density, so the blend covers a
// consistent stretch of curve regardless of path length. The first and last
// samples are never moved.
//
// This is a fixed-strength pass, independent of the sampler's curvature
// logic; it only exists to hide hard polyline joints.
func SmoothCorners(samples, waypoints []Point, baseline int) []Point {
	if len(samples) < 3 || len(waypoints) < 3 {
		return samples
	}
	half := int(math.Round(0.6 * float64(baseline)))
	if half < 1 {
		return samples
	}
	sigma := 0.12 * float64(baseline)

	samplePos, ok := arcPositions(samples)
	if !ok {
		return samples
	}
	wpPos, ok := arcPositions(waypoints)
	if !ok {
		return samples
	}

	weights := make([]float64, 2*half+1)
	for k := -half; k <= half; k++ {
		weights[k+half] = math.Exp(-float64(k*k) / (2 * sigma * sigma))
	}

	out := make([]Point, len(samples))
	copy(out, samples)
	for w := 1; w < len(waypoints)-1; w++ {
		center := nearestPosition(samplePos, wpPos[w])
		src := make([]Point, len(out))
		copy(src, out)
		for j := max(center-half, 1); j <= min(center+half, len(out)-2); j++ {
			var acc Vec2
			var wsum float64
			for k := -half; k <= half; k++ {
				idx := min(max(j+k, 0), len(src)-1)
				wt := weights[k+half]
				acc = acc.Add(Vec2(src[idx]).Mul(wt))
				wsum += wt
			}
			out[j] = Point(acc.Div(wsum))
		}
	}
	return out
}

// arcPositions returns each point's normalized cumulative arc position in
// [0, 1]. ok is false for degenerate (zero total length) input.
func arcPositions(pts []Point) (pos []float64, ok bool) {
	pos = make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		pos[i] = pos[i-1] + pts[i-1].Distance(pts[i])
	}
	total := pos[len(pos)-1]
	if total == 0 {
		return nil, false
	}
	for i := range pos {
		pos[i] /= total
	}
	return pos, true
}

// nearestPosition returns the index of the value nearest target, first match
// winning ties.
func nearestPosition(pos []float64, target float64) int {
	best := 0
	bestDist := math.Abs(pos[0] - target)
	for i := 1; i < len(pos); i++ {
		if d := math.Abs(pos[i] - target); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
