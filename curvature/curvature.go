/*
Package curvature color-codes Bézier paths by their local curvature.

Curvature values of all segments of a path are accumulated into a Range
first. The range then provides a Coloring, which maps the curvature at any
point of a segment onto a hue between blue (lowest curvature of the path)
and red (highest curvature of the path).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curvature

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/navpath/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvature'
func tracer() tracing.Trace {
	return tracing.Select("curvature")
}

// DefaultSampling is the number of parameter steps per segment used for
// finding the curvature range.
const DefaultSampling = 200

// Hue range of the color coding, in degrees.
const (
	HueLow  = 240.0 // blue, for minimum curvature
	HueHigh = 0.0   // red, for maximum curvature
)

// ErrNoSegments is returned when a coloring is requested from a range which
// has not seen any segment. Drawing without a valid range is meaningless, so
// there is no default.
var ErrNoSegments = errors.New("no segments for curvature range")

// Range tracks the minimum and maximum curvature of a set of segments.
// The zero value is not usable; create one with NewRange.
type Range struct {
	sampling int
	kmin     float64
	kmax     float64
	segments int
}

// NewRange creates an empty curvature range, sampling every segment at
// sampling+1 evenly spaced parameter values. A sampling < 1 selects
// DefaultSampling.
func NewRange(sampling int) *Range {
	if sampling < 1 {
		sampling = DefaultSampling
	}
	return &Range{
		sampling: sampling,
		kmin:     math.Inf(1),
		kmax:     math.Inf(-1),
	}
}

// Add takes segments into account for the curvature range.
func (r *Range) Add(segs ...bezier.Segment) {
	for _, seg := range segs {
		for _, cs := range seg.Samples(r.sampling) {
			r.kmin = math.Min(r.kmin, cs.Curvature)
			r.kmax = math.Max(r.kmax, cs.Curvature)
		}
		r.segments++
	}
}

// Segments is the number of segments accumulated.
func (r *Range) Segments() int {
	return r.segments
}

// Bounds returns the minimum and maximum curvature seen.
func (r *Range) Bounds() (kmin, kmax float64, err error) {
	if r.segments == 0 {
		return 0, 0, ErrNoSegments
	}
	return r.kmin, r.kmax, nil
}

// Coloring returns the curvature coloring for the accumulated range.
func (r *Range) Coloring() (Coloring, error) {
	kmin, kmax, err := r.Bounds()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("curvature range [%.4g, %.4g] over %d segments", kmin, kmax, r.segments)
	return func(seg bezier.Segment, t float64) colorful.Color {
		return ValueToColor(seg.Curvature(t), kmin, kmax)
	}, nil
}

// MustColoring is like Coloring, but panics on an empty range.
func (r *Range) MustColoring() Coloring {
	c, err := r.Coloring()
	if err != nil {
		panic(err)
	}
	return c
}

func (r *Range) String() string {
	if r.segments == 0 {
		return "curvature[]"
	}
	return fmt.Sprintf("curvature[%.4g, %.4g]", r.kmin, r.kmax)
}

// Coloring maps a position on a segment to a color.
type Coloring func(seg bezier.Segment, t float64) colorful.Color

// Normalize maps v linearly from [vmin,vmax] to [0,1], clamping values
// outside the interval. If vmin == vmax, every value maps to 0.
func Normalize(v, vmin, vmax float64) float64 {
	span := vmax - vmin
	if span == 0 || math.IsNaN(span) {
		return 0
	}
	n := (v - vmin) / span
	if math.IsNaN(n) {
		return 0
	}
	return math.Max(0, math.Min(1, n))
}

// Hue maps a value v ∈ [vmin,vmax] to a hue between HueLow and HueHigh.
// Hue is monotonically decreasing in v.
func Hue(v, vmin, vmax float64) float64 {
	return HueLow - (HueLow-HueHigh)*Normalize(v, vmin, vmax)
}

// ValueToColor maps a value v ∈ [vmin,vmax] to a fully saturated color of
// medium lightness (HSL 100 %, 50 %), from blue to red.
func ValueToColor(v, vmin, vmax float64) colorful.Color {
	return colorful.Hsl(Hue(v, vmin, vmax), 1.0, 0.5)
}

// CSS returns a color in CSS hsl() notation, as used by web-based surfaces.
func CSS(c colorful.Color) string {
	h, s, l := c.Hsl()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
}
