package motion

import (
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"
)

// ParamMap is a signed intensity curve over normalized path position.
//
// Evaluate is called with s in [0, 1]; the result is conventionally in
// [-1, 1] and is clamped by consumers. Non-finite results are treated as 0.
// The engine never owns a ParamMap; callers may supply any implementation.
type ParamMap interface {
	Evaluate(s float64) float64
}

// Constant is a ParamMap with the same intensity everywhere.
type Constant float64

func (c Constant) Evaluate(s float64) float64 {
	return float64(c)
}

// ControlPoint is one editable knot of a [ControlCurve].
type ControlPoint struct {
	S float64 `yaml:"s" json:"s"`
	V float64 `yaml:"v" json:"v"`
}

// ControlCurve is a piecewise-linear ParamMap defined by control points,
// the curve representation produced by position-editable intensity editors.
//
// An empty curve evaluates to 0 everywhere. Outside the knot range the
// nearest knot's value is held.
type ControlCurve struct {
	Points []ControlPoint `yaml:"points" json:"points"`
}

// NewControlCurve returns a curve through the given knots, sorted by position.
func NewControlCurve(pts ...ControlPoint) *ControlCurve {
	c := &ControlCurve{Points: make([]ControlPoint, len(pts))}
	copy(c.Points, pts)
	sort.SliceStable(c.Points, func(i, j int) bool { return c.Points[i].S < c.Points[j].S })
	return c
}

func (c *ControlCurve) Evaluate(s float64) float64 {
	pts := c.Points
	switch len(pts) {
	case 0:
		return 0
	case 1:
		return pts[0].V
	}
	if s <= pts[0].S {
		return pts[0].V
	}
	if s >= pts[len(pts)-1].S {
		return pts[len(pts)-1].V
	}
	i := sort.Search(len(pts), func(i int) bool { return pts[i].S >= s })
	lo, hi := pts[i-1], pts[i]
	if hi.S == lo.S {
		return hi.V
	}
	t := (s - lo.S) / (hi.S - lo.S)
	return lo.V + t*(hi.V-lo.V)
}

// ParseControlCurve decodes a YAML curve preset as written by [ControlCurve.Encode].
func ParseControlCurve(data []byte) (*ControlCurve, error) {
	var c ControlCurve
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("motion: parsing control curve: %w", err)
	}
	sort.SliceStable(c.Points, func(i, j int) bool { return c.Points[i].S < c.Points[j].S })
	return &c, nil
}

// Encode serializes the curve as a YAML preset.
func (c *ControlCurve) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}

// intensity evaluates a ParamMap with the coercions consumers rely on:
// a nil map and non-finite results count as 0, and the result is clamped
// to [-1, 1].
func intensity(m ParamMap, s float64) float64 {
	if m == nil {
		return 0
	}
	v := m.Evaluate(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return clamp(v, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
