package curvature

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/surface"
)

// Legend layout, in display units.
const (
	DefaultLegendLength = 200
	barHeight           = 12
	padding             = 8
	fontSize            = 12
	titleHeight         = fontSize + 4
	labelsHeight        = fontSize + 4
	scaleBarHeight      = 20
	maxScaleBar         = 100
)

// LegendTitle is the caption of the color bar.
const LegendTitle = "Curvature Radius (m)"

// Legend describes the color bar explaining a curvature coloring, together
// with a scale bar. Radii and the scale bar length are in world units.
type Legend struct {
	KMin, KMax     float64
	Length         int              // width of the color bar
	Stops          []colorful.Color // one color per display unit of the bar
	Radii          [3]float64       // curvature radius at min, mid and max
	Labels         [3]string
	ScaleBarPx     float64 // length of the scale bar in display units
	ScaleBarLength float64 // length of the scale bar in world units
	ScaleBarLabel  string
}

// NewLegend computes a legend for the curvature range [kmin,kmax].
// Lengths are converted to world units using tr. It is a pure function of
// its arguments.
func NewLegend(kmin, kmax float64, tr navpath.Transform, length int) Legend {
	if length < 2 {
		length = DefaultLegendLength
	}
	lg := Legend{
		KMin:   kmin,
		KMax:   kmax,
		Length: length,
		Stops:  make([]colorful.Color, length),
	}
	for i := 0; i < length; i++ {
		t := float64(i) / float64(length-1)
		v := kmin + t*(kmax-kmin)
		lg.Stops[i] = ValueToColor(v, kmin, kmax)
	}
	span := kmax - kmin
	ks := [3]float64{kmin, kmin + span/2, kmax}
	for i, k := range ks {
		lg.Radii[i] = tr.ToWorldScalar(1 / k)
		lg.Labels[i] = radiusLabel(lg.Radii[i])
	}
	lg.ScaleBarPx = math.Min(float64(length)/3, maxScaleBar)
	lg.ScaleBarLength = tr.ToWorldScalar(lg.ScaleBarPx)
	lg.ScaleBarLabel = fmt.Sprintf("%.0f m", lg.ScaleBarLength)
	return lg
}

// LegendFor computes the legend for an accumulated curvature range.
func LegendFor(r *Range, tr navpath.Transform, length int) (Legend, error) {
	kmin, kmax, err := r.Bounds()
	if err != nil {
		return Legend{}, fmt.Errorf("cannot draw legend: %w", err)
	}
	return NewLegend(kmin, kmax, tr, length), nil
}

func radiusLabel(r float64) string {
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return "∞ m"
	}
	return fmt.Sprintf("%.1f m", r)
}

// Size is the total extent of the legend box.
func (lg Legend) Size() (w, h float64) {
	w = float64(lg.Length + 2*padding)
	h = titleHeight + padding + barHeight + padding + labelsHeight + padding + scaleBarHeight + padding
	return
}

// Draw paints the legend onto a surface, with the legend box's top left
// corner at topLeft. Text is drawn only if the surface is a Labeler.
func (lg Legend) Draw(s surface.Surface, topLeft navpath.Pair) {
	w, h := lg.Size()
	s.SetStroke(color.Black, 1)
	surface.Rect(s, topLeft, w, h)
	origin := topLeft + navpath.P(padding, padding+titleHeight)
	for i, c := range lg.Stops {
		s.SetStroke(c, 1)
		x := origin + navpath.P(float64(i)+0.5, 0)
		surface.Line(s, x, x+navpath.P(0, barHeight))
	}
	scaleY := origin + navpath.P(0, barHeight+labelsHeight+padding)
	s.SetStroke(color.Black, 1)
	s.BeginPath()
	s.MoveTo(scaleY + navpath.P(0, 5))
	s.LineTo(scaleY)
	s.LineTo(scaleY + navpath.P(lg.ScaleBarPx, 0))
	s.LineTo(scaleY + navpath.P(lg.ScaleBarPx, 5))
	s.Stroke()
	lb, ok := s.(surface.Labeler)
	if !ok {
		return
	}
	lb.Label(origin+navpath.P(float64(lg.Length)/2, -titleHeight/2), LegendTitle, surface.AlignCenter)
	aligns := [3]surface.Align{surface.AlignLeft, surface.AlignCenter, surface.AlignRight}
	for i, text := range lg.Labels {
		x := float64(lg.Length) * float64(i) / 2
		lb.Label(origin+navpath.P(x, barHeight+4), text, aligns[i])
	}
	lb.Label(scaleY+navpath.P(lg.ScaleBarPx/2, 7), lg.ScaleBarLabel, surface.AlignCenter)
}
