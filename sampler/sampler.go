/*
Package sampler resamples a composite Bézier path into a dense sequence of
points, for preview and for export to a robot's navigation stack.

Each segment is sampled with a step count derived from the length of its
control polygon, which is a cheap upper bound of its arc length. Samples are
produced in two frames: display coordinates for drawing, and world
coordinates for export. Every sample carries the curvature of the path at
that point.
*/
package sampler

import (
	"math"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/bezier"
	"github.com/npillmayer/navpath/ctrlpath"
	"github.com/npillmayer/navpath/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sampler'
func tracer() tracing.Trace {
	return tracing.Select("sampler")
}

// Sample is a point of a sampled path.
type Sample struct {
	Pos       navpath.Pair
	Curvature float64
	Heading   float64 // direction of travel, radians
}

// SampledPath is the result of resampling a path. Display and World are
// parallel sequences.
type SampledPath struct {
	Display []Sample
	World   []Sample
	Closed  bool
}

// MaxSteps caps the number of samples taken from a single segment.
const MaxSteps = 1 << 20

// Steps returns the number of samples taken from a segment for a given
// sample distance: max(1, ⌈L/d⌉), where L is the control polygon length.
// The result is clamped to MaxSteps.
func Steps(seg bezier.Segment, sampleDistance float64) int {
	if sampleDistance <= 0 || math.IsNaN(sampleDistance) {
		return 1
	}
	n := math.Ceil(seg.ControlPolygonLength() / sampleDistance)
	if math.IsNaN(n) {
		return 1
	}
	if n > MaxSteps {
		tracer().Errorf("sample distance %g too small, segment clamped to %d steps", sampleDistance, MaxSteps)
		return MaxSteps
	}
	return max(1, int(n))
}

// AsPath samples a path with points about sampleDistance display units
// apart. Samples are taken at t = i/steps, i ∈ [0,steps), so the end anchor of
// a segment is not repeated as the start of the next one. Paths with less
// than four points are not sampled and AsPath returns false.
//
// World samples are projected with tr. Their curvature is expressed in
// world units, i.e. divided by the length of a display unit.
func AsPath(path *ctrlpath.Path, tr navpath.Transform, sampleDistance float64) (*SampledPath, bool) {
	if path.N() < 4 {
		return nil, false
	}
	segs := path.Segments()
	sp := &SampledPath{Closed: path.IsCycle()}
	unit := tr.ToWorldScalar(1)
	for _, seg := range segs {
		steps := Steps(seg, sampleDistance)
		for i := 0; i < steps; i++ {
			t := float64(i) / float64(steps)
			cs := seg.Sample(t)
			heading := seg.Heading(t)
			sp.Display = append(sp.Display, Sample{Pos: cs.Pos, Curvature: cs.Curvature, Heading: heading})
			sp.World = append(sp.World, Sample{
				Pos:       tr.ToWorld(cs.Pos),
				Curvature: worldCurvature(cs.Curvature, unit),
				Heading:   worldHeading(tr, cs.Pos, seg.Deriv1(t), heading),
			})
		}
	}
	tracer().Debugf("sampled %d segments into %d points", len(segs), len(sp.Display))
	return sp, true
}

// AsPathWorld is like AsPath, with the sample distance given in world units.
func AsPathWorld(path *ctrlpath.Path, tr navpath.Transform, distance float64) (*SampledPath, bool) {
	unit := tr.ToWorldScalar(1)
	if unit == 0 {
		return AsPath(path, tr, distance)
	}
	return AsPath(path, tr, distance/unit)
}

func worldCurvature(k, unit float64) float64 {
	if unit == 0 {
		return k
	}
	return k / unit
}

// Transforms may flip or rotate the frame, therefore the heading is
// re-measured after projecting the velocity vector.
func worldHeading(tr navpath.Transform, p, v navpath.Pair, fallback float64) float64 {
	if v.Abs() == 0 {
		return fallback
	}
	w := tr.ToWorld(p+v/navpath.Pair(complex(v.Abs(), 0))) - tr.ToWorld(p)
	if w.Abs() == 0 {
		return fallback
	}
	return math.Atan2(w.Y(), w.X())
}

// Len is the number of samples.
func (sp *SampledPath) Len() int {
	return len(sp.Display)
}

// DisplayPoints returns the positions of the display samples.
func (sp *SampledPath) DisplayPoints() []navpath.Pair {
	return positions(sp.Display)
}

// WorldPoints returns the positions of the world samples.
func (sp *SampledPath) WorldPoints() []navpath.Pair {
	return positions(sp.World)
}

func positions(samples []Sample) []navpath.Pair {
	pts := make([]navpath.Pair, len(samples))
	for i, s := range samples {
		pts[i] = s.Pos
	}
	return pts
}

// Contour returns the display samples as a polygon, closed if the path is
// a loop.
func (sp *SampledPath) Contour() *polygon.Polygon {
	pg := polygon.FromPoints(sp.DisplayPoints())
	if sp.Closed {
		pg.Cycle()
	}
	return pg
}

// Encloses is a predicate: does a closed path enclose the world point p?
// Open paths enclose nothing.
func (sp *SampledPath) Encloses(p navpath.Pair) bool {
	pg := polygon.FromPoints(sp.WorldPoints())
	if sp.Closed {
		pg.Cycle()
	}
	return pg.Contains(p)
}

// Length is the length of the sampled polyline in world units.
func (sp *SampledPath) Length() float64 {
	pg := polygon.FromPoints(sp.WorldPoints())
	if sp.Closed {
		pg.Cycle()
	}
	return pg.Length()
}
