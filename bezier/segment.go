package bezier

import (
	"fmt"
	"math"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}

// Segment is a cubic Bézier segment.
type Segment struct {
	P0, P1, P2, P3 navpath.Pair
}

// Seg is a quick notation for constructing a segment.
func Seg(p0, p1, p2, p3 navpath.Pair) Segment {
	return Segment{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Start is the start point of the segment (an anchor).
func (s Segment) Start() navpath.Pair {
	return s.P0
}

// End is the end point of the segment (an anchor).
func (s Segment) End() navpath.Pair {
	return s.P3
}

// Points returns the four control points as an array.
func (s Segment) Points() [4]navpath.Pair {
	return [4]navpath.Pair{s.P0, s.P1, s.P2, s.P3}
}

// Eval evaluates the segment at parameter t ∈ [0,1].
func (s Segment) Eval(t float64) navpath.Pair {
	u := 1 - t
	tt := t * t
	uu := u * u
	uuu := uu * u
	ttt := tt * t
	x := uuu*s.P0.X() + 3*uu*t*s.P1.X() + 3*u*tt*s.P2.X() + ttt*s.P3.X()
	y := uuu*s.P0.Y() + 3*uu*t*s.P1.Y() + 3*u*tt*s.P2.Y() + ttt*s.P3.Y()
	return navpath.P(x, y)
}

// Deriv1 is the first derivative B′(t), i.e. the velocity vector at t.
func (s Segment) Deriv1(t float64) navpath.Pair {
	u := 1 - t
	d := func(c0, c1, c2, c3 float64) float64 {
		return 3 * (u*u*(c1-c0) + 2*u*t*(c2-c1) + t*t*(c3-c2))
	}
	return navpath.P(
		d(s.P0.X(), s.P1.X(), s.P2.X(), s.P3.X()),
		d(s.P0.Y(), s.P1.Y(), s.P2.Y(), s.P3.Y()),
	)
}

// Deriv2 is the second derivative B″(t).
func (s Segment) Deriv2(t float64) navpath.Pair {
	u := 1 - t
	d := func(c0, c1, c2, c3 float64) float64 {
		return 6 * (u*(c2-2*c1+c0) + t*(c3-2*c2+c1))
	}
	return navpath.P(
		d(s.P0.X(), s.P1.X(), s.P2.X(), s.P3.X()),
		d(s.P0.Y(), s.P1.Y(), s.P2.Y(), s.P3.Y()),
	)
}

// Curvature returns the unsigned curvature κ at parameter t.
// At points of zero velocity κ is 0.
func (s Segment) Curvature(t float64) float64 {
	d1 := s.Deriv1(t)
	d2 := s.Deriv2(t)
	num := math.Abs(d1.X()*d2.Y() - d1.Y()*d2.X())
	denom := math.Pow(d1.X()*d1.X()+d1.Y()*d1.Y(), 1.5)
	if denom == 0 {
		tracer().Debugf("zero velocity at t=%.4g of %s", t, s)
		return 0
	}
	return num / denom
}

// Heading is the direction of travel at t, in radians, counter-clockwise
// from the x-axis. For zero velocity the heading of the chord p0→p3 is used.
func (s Segment) Heading(t float64) float64 {
	d := s.Deriv1(t)
	if d.Abs() == 0 {
		d = s.P3 - s.P0
	}
	return math.Atan2(d.Y(), d.X())
}

// ControlPolygonLength is the perimeter of the open control polygon
// p0–p1–p2–p3. It is an upper bound of the arc length of the segment.
func (s Segment) ControlPolygonLength() float64 {
	return s.P0.Dist(s.P1) + s.P1.Dist(s.P2) + s.P2.Dist(s.P3)
}

// IsValid is false if any control point has a NaN or infinite coordinate.
func (s Segment) IsValid() bool {
	return s.P0.IsValid() && s.P1.IsValid() && s.P2.IsValid() && s.P3.IsValid()
}

// CurvatureSample is the curvature of a segment at a parameter value.
type CurvatureSample struct {
	T         float64
	Pos       navpath.Pair
	Curvature float64
}

// Sample evaluates position and curvature at t.
func (s Segment) Sample(t float64) CurvatureSample {
	return CurvatureSample{
		T:         t,
		Pos:       s.Eval(t),
		Curvature: s.Curvature(t),
	}
}

// Samples returns n+1 curvature samples at evenly spaced parameters
// t = i/n, i = 0…n. Endpoints are included.
func (s Segment) Samples(n int) []CurvatureSample {
	if n < 1 {
		n = 1
	}
	samples := make([]CurvatureSample, n+1)
	for i := 0; i <= n; i++ {
		samples[i] = s.Sample(float64(i) / float64(n))
	}
	return samples
}

// Flatten returns n+1 points along the segment, including both endpoints.
func (s Segment) Flatten(n int) []navpath.Pair {
	if n < 1 {
		n = 1
	}
	pts := make([]navpath.Pair, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = s.Eval(float64(i) / float64(n))
	}
	return pts
}

// String returns a segment in a MetaPost-like notation.
func (s Segment) String() string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s",
		ptstring(s.P0, false), ptstring(s.P1, true), ptstring(s.P2, true), ptstring(s.P3, false))
}

// AsString returns a sequence of joined segments as a (debugging) string.
// Consecutive segments are expected to share their anchors. If cycle is set,
// the last segment is printed as closing the path.
func AsString(segs []Segment, cycle bool) string {
	if len(segs) == 0 {
		return "<empty>"
	}
	var s string
	for i, seg := range segs {
		if i == 0 {
			s += ptstring(seg.P0, false)
		}
		s += fmt.Sprintf(" .. controls %s and %s\n  .. ", ptstring(seg.P1, true), ptstring(seg.P2, true))
		if cycle && i == len(segs)-1 {
			s += "cycle"
		} else {
			s += ptstring(seg.P3, false)
		}
	}
	return s
}

func ptstring(p navpath.Pair, iscontrol bool) string {
	if !p.IsValid() {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
