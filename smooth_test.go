package motion

import "testing"

func TestSmoothCornersBlendsJoint(t *testing.T) {
	wp := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	samples := SamplePath(wp, 16, Constant(0.95)) // sharp: pure polyline
	out := SmoothCorners(samples, wp, 16)
	if len(out) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(out), len(samples))
	}

	// The sample at the corner must be pulled toward the inside of the bend.
	c := nearestPosition(mustArcPositions(t, out), 0.5)
	if out[c].X >= 10 || out[c].Y <= 0 {
		t.Errorf("corner sample %v not blended inward", out[c])
	}
}

func TestSmoothCornersPreservesEndpoints(t *testing.T) {
	wp := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	samples := SamplePath(wp, 16, Constant(0.95))
	out := SmoothCorners(samples, wp, 16)
	diff(t, samples[0], out[0])
	diff(t, samples[len(samples)-1], out[len(out)-1])
}

func TestSmoothCornersNoInteriorWaypoints(t *testing.T) {
	wp := []Point{Pt(0, 0), Pt(10, 0)}
	samples := SamplePath(wp, 8, Constant(0))
	diff(t, samples, SmoothCorners(samples, wp, 8))
}

func TestSmoothCornersDegenerate(t *testing.T) {
	short := []Point{Pt(0, 0), Pt(1, 1)}
	diff(t, short, SmoothCorners(short, []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, 8))

	// Zero-length geometry is returned unchanged.
	flat := []Point{Pt(2, 2), Pt(2, 2), Pt(2, 2), Pt(2, 2)}
	diff(t, flat, SmoothCorners(flat, []Point{Pt(2, 2), Pt(2, 2), Pt(2, 2)}, 8))
}

func mustArcPositions(t *testing.T, pts []Point) []float64 {
	t.Helper()
	pos, ok := arcPositions(pts)
	if !ok {
		t.Fatal("degenerate arc positions")
	}
	return pos
}
