package editor

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/bezier"
	"github.com/npillmayer/navpath/curvature"
	"github.com/npillmayer/navpath/sampler"
	"github.com/npillmayer/navpath/surface"
)

var (
	handleColor  = colorful.Color{R: 0.75, G: 0.75, B: 0.75}
	pointColor   = colorful.Color{R: 0.2, G: 0.2, B: 0.2}
	previewColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	sampleColor  = colorful.Color{R: 0.2, G: 0.2, B: 0.9}
)

// legendPosition is the top left corner of the legend box.
var legendPosition = navpath.P(5, 5)

// Tick redraws the editor onto s if anything changed since the last tick.
// Returns true if a frame has been drawn.
func (e *Editor) Tick(s surface.Surface) bool {
	if !e.dirty {
		return false
	}
	e.Draw(s)
	e.dirty = false
	return true
}

// Draw renders a complete frame: the curvature-colored path, handle lines,
// the placement preview, control points, sample points and the legend.
// Draw does not change the editor's state.
func (e *Editor) Draw(s surface.Surface) {
	if c, ok := s.(surface.Clearer); ok {
		c.Clear()
	}
	segs := e.path.Segments()
	var rng *curvature.Range
	if len(segs) > 0 {
		rng = curvature.NewRange(e.config.Sampling)
		rng.Add(segs...)
		e.drawSegments(s, segs, rng.MustColoring())
	}
	e.drawHandles(s, segs)
	e.drawPreview(s)
	e.drawPoints(s)
	if e.config.ShowSamples {
		if sp, ok := sampler.AsPath(e.path, e.tr, e.config.SampleDistance); ok {
			s.SetStroke(sampleColor, 1)
			pts := sp.DisplayPoints()
			if sp.Closed {
				pts = append(pts, pts[0])
			}
			surface.Polyline(s, pts)
		}
	}
	if e.config.ShowLegend && rng != nil {
		lg, err := curvature.LegendFor(rng, e.tr, e.config.LegendLength)
		if err != nil {
			tracer().Errorf("%v", err)
			return
		}
		lg.Draw(s, legendPosition)
	}
}

// drawSegments strokes every segment as a sequence of short lines, each
// colored by the curvature at its start.
func (e *Editor) drawSegments(s surface.Surface, segs []bezier.Segment, coloring curvature.Coloring) {
	n := e.config.Sampling
	for _, seg := range segs {
		prev := seg.P0
		for i := 1; i <= n; i++ {
			t0 := float64(i-1) / float64(n)
			p := seg.Eval(float64(i) / float64(n))
			s.SetStroke(coloring(seg, t0), e.config.PathWidth)
			surface.Line(s, prev, p)
			prev = p
		}
	}
}

func (e *Editor) drawHandles(s surface.Surface, segs []bezier.Segment) {
	if len(segs) == 0 {
		return
	}
	s.SetStroke(handleColor, 1)
	for _, seg := range segs {
		surface.Line(s, seg.P0, seg.P1)
		surface.Line(s, seg.P2, seg.P3)
	}
}

// drawPreview shows where the next point would go while placing.
func (e *Editor) drawPreview(s surface.Surface) {
	mode, _ := e.Mode()
	if mode != Placing || e.cursor == nil || e.path.N() == 0 {
		return
	}
	cursor := *e.cursor
	n := e.path.N()
	s.SetStroke(previewColor, 1)
	s.BeginPath()
	switch {
	case n < 4: // chain of the first segment's points
		s.MoveTo(e.path.Z(0))
		switch n {
		case 1:
			s.LineTo(cursor)
		case 2:
			s.QuadTo(e.path.Z(1), cursor)
		case 3:
			s.BezierTo(e.path.Z(1), e.path.Z(2), cursor)
		}
	case n%2 == 0: // next point is a handle
		s.MoveTo(e.path.Z(n - 1))
		s.LineTo(cursor)
	default: // next point is an anchor
		derived := e.path.Derived()
		l := len(derived)
		anchor := derived[l-1]
		cp1 := derived[l-2].Mirrored(anchor)
		s.MoveTo(anchor)
		s.BezierTo(cp1, e.path.Z(n-1), cursor)
	}
	s.Stroke()
}

// drawPoints draws anchors as discs and handles as circles.
func (e *Editor) drawPoints(s surface.Surface) {
	s.SetStroke(pointColor, 1)
	for i := 0; i < e.path.N(); i++ {
		s.Circle(e.path.Z(i), e.config.PointRadius, e.path.IsAnchor(i))
	}
}
