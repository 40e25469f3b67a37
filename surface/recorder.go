package surface

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/navpath"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpSetStroke OpKind = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpQuadTo
	OpBezierTo
	OpStroke
	OpCircle
	OpLabel
	OpClear
)

var opNames = [...]string{"stroke-style", "begin", "move", "line", "quad", "bezier",
	"stroke", "circle", "label", "clear"}

func (k OpKind) String() string {
	if int(k) < 0 || int(k) >= len(opNames) {
		return fmt.Sprintf("op(%d)", int(k))
	}
	return opNames[k]
}

// Op is a recorded drawing operation.
type Op struct {
	Kind   OpKind
	Points []navpath.Pair
	Color  color.Color
	Width  float64 // stroke width or circle radius
	Fill   bool
	Text   string
}

// Recorder is a Surface which records every operation. It is used for
// testing and for debugging render output.
type Recorder struct {
	ops []Op
}

var _ Surface = (*Recorder)(nil)
var _ Labeler = (*Recorder)(nil)
var _ Clearer = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(op Op) {
	r.ops = append(r.ops, op)
}

// SetStroke records a change of the stroke style.
func (r *Recorder) SetStroke(c color.Color, width float64) {
	r.add(Op{Kind: OpSetStroke, Color: c, Width: width})
}

// BeginPath records the start of a new path.
func (r *Recorder) BeginPath() { r.add(Op{Kind: OpBeginPath}) }

// MoveTo records a move to p.
func (r *Recorder) MoveTo(p navpath.Pair) {
	r.add(Op{Kind: OpMoveTo, Points: []navpath.Pair{p}})
}

// LineTo records a line to p.
func (r *Recorder) LineTo(p navpath.Pair) {
	r.add(Op{Kind: OpLineTo, Points: []navpath.Pair{p}})
}

// QuadTo records a quadratic curve.
func (r *Recorder) QuadTo(c, p navpath.Pair) {
	r.add(Op{Kind: OpQuadTo, Points: []navpath.Pair{c, p}})
}

// BezierTo records a cubic curve.
func (r *Recorder) BezierTo(c1, c2, p navpath.Pair) {
	r.add(Op{Kind: OpBezierTo, Points: []navpath.Pair{c1, c2, p}})
}

// Stroke records painting the current path.
func (r *Recorder) Stroke() { r.add(Op{Kind: OpStroke}) }

// Circle records a circle, with the radius kept in Width.
func (r *Recorder) Circle(center navpath.Pair, radius float64, fill bool) {
	r.add(Op{Kind: OpCircle, Points: []navpath.Pair{center}, Width: radius, Fill: fill})
}

// Label records a text label, with the alignment kept in Width.
func (r *Recorder) Label(at navpath.Pair, text string, align Align) {
	r.add(Op{Kind: OpLabel, Points: []navpath.Pair{at}, Text: text, Width: float64(align)})
}

// Clear drops all recorded operations and records a clear operation.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.add(Op{Kind: OpClear})
}

// Ops returns the recorded operations.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns the number of recorded operations of a kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Labels returns the texts of all recorded labels, in order.
func (r *Recorder) Labels() []string {
	var l []string
	for _, op := range r.ops {
		if op.Kind == OpLabel {
			l = append(l, op.Text)
		}
	}
	return l
}

// Reset forgets all recorded operations.
func (r *Recorder) Reset() {
	r.ops = nil
}

// String lists the recorded operations, one per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, op := range r.ops {
		b.WriteString(op.Kind.String())
		for _, p := range op.Points {
			b.WriteString(" ")
			b.WriteString(p.String())
		}
		if op.Text != "" {
			fmt.Fprintf(&b, " %q", op.Text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
