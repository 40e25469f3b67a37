// Package surface defines the drawing surface the path editor renders onto.
//
// The editor never depends on results of drawing operations; a surface is a
// pure sink. Two implementations are provided: Recorder, which keeps a log of
// operations, and Raster, which paints into an RGBA image.
package surface

import (
	"image/color"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'surface'
func tracer() tracing.Trace {
	return tracing.Select("surface")
}

// Surface is the set of primitive drawing operations used by the editor.
// Path construction follows the usual begin/move/line/curve/stroke protocol
// of 2D canvases.
type Surface interface {
	SetStroke(c color.Color, width float64)
	BeginPath()
	MoveTo(p navpath.Pair)
	LineTo(p navpath.Pair)
	QuadTo(c, p navpath.Pair)
	BezierTo(c1, c2, p navpath.Pair)
	Stroke()
	Circle(center navpath.Pair, radius float64, fill bool)
}

// Align is the horizontal alignment of a text label.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Labeler is implemented by surfaces able to draw text.
type Labeler interface {
	Label(at navpath.Pair, text string, align Align)
}

// Clearer is implemented by surfaces which are able to restore their
// background before a new frame is drawn.
type Clearer interface {
	Clear()
}

// Polyline strokes a sequence of points as a single open path.
func Polyline(s Surface, pts []navpath.Pair) {
	if len(pts) == 0 {
		return
	}
	s.BeginPath()
	s.MoveTo(pts[0])
	for _, p := range pts[1:] {
		s.LineTo(p)
	}
	s.Stroke()
}

// Line strokes a single line from a to b.
func Line(s Surface, a, b navpath.Pair) {
	s.BeginPath()
	s.MoveTo(a)
	s.LineTo(b)
	s.Stroke()
}

// Rect strokes the outline of an axis-parallel rectangle.
func Rect(s Surface, topLeft navpath.Pair, w, h float64) {
	x, y := topLeft.F()
	s.BeginPath()
	s.MoveTo(topLeft)
	s.LineTo(navpath.P(x+w, y))
	s.LineTo(navpath.P(x+w, y+h))
	s.LineTo(navpath.P(x, y+h))
	s.LineTo(topLeft)
	s.Stroke()
}
