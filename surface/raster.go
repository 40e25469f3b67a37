package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/bezier"
	"golang.org/x/image/vector"
)

// flattening resolution for curves and circles
const (
	curveSteps  = 24
	circleSteps = 32
)

// Raster is a Surface painting into an RGBA image. Strokes are expanded into
// quadrilaterals per line piece and filled with a vector rasterizer; curves
// are flattened beforehand. Text labels are not supported.
type Raster struct {
	img        *image.RGBA
	background image.Image
	stroke     color.Color
	width      float64
	subpaths   [][]navpath.Pair
	ras        *vector.Rasterizer // reused between strokes
}

var _ Surface = (*Raster)(nil)
var _ Clearer = (*Raster)(nil)

// NewRaster creates a raster surface of size w × h, with a white background.
func NewRaster(w, h int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := &Raster{
		img:        img,
		background: image.White,
		stroke:     color.Black,
		width:      1,
	}
	r.Clear()
	return r
}

// SetBackground sets an image to be painted by Clear, e.g. the map.
// The background is drawn at the origin, unscaled.
func (r *Raster) SetBackground(bg image.Image) {
	if bg == nil {
		bg = image.White
	}
	r.background = bg
}

// Image returns the image painted so far.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear restores the background.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), r.background, image.Point{}, draw.Src)
}

// SetStroke sets color and line width for subsequent strokes.
func (r *Raster) SetStroke(c color.Color, width float64) {
	if c == nil {
		c = color.Black
	}
	r.stroke = c
	r.width = width
}

// BeginPath discards the current path.
func (r *Raster) BeginPath() {
	r.subpaths = r.subpaths[:0]
}

// MoveTo starts a new subpath at p.
func (r *Raster) MoveTo(p navpath.Pair) {
	r.subpaths = append(r.subpaths, []navpath.Pair{p})
}

// LineTo adds a line to p. Without a current point it acts as MoveTo.
func (r *Raster) LineTo(p navpath.Pair) {
	if len(r.subpaths) == 0 {
		r.MoveTo(p)
		return
	}
	last := len(r.subpaths) - 1
	r.subpaths[last] = append(r.subpaths[last], p)
}

func (r *Raster) current() (navpath.Pair, bool) {
	if len(r.subpaths) == 0 {
		return navpath.Origin, false
	}
	sp := r.subpaths[len(r.subpaths)-1]
	return sp[len(sp)-1], true
}

// QuadTo is drawn as the degree-elevated cubic.
func (r *Raster) QuadTo(c, p navpath.Pair) {
	p0, ok := r.current()
	if !ok {
		r.MoveTo(p)
		return
	}
	c1 := p0 + (c-p0)*2/3
	c2 := p + (c-p)*2/3
	r.BezierTo(c1, c2, p)
}

// BezierTo adds a cubic Bézier curve, flattened into lines.
func (r *Raster) BezierTo(c1, c2, p navpath.Pair) {
	p0, ok := r.current()
	if !ok {
		r.MoveTo(p)
		return
	}
	pts := bezier.Seg(p0, c1, c2, p).Flatten(curveSteps)
	for _, pt := range pts[1:] {
		r.LineTo(pt)
	}
}

// Stroke paints the current path with the current stroke style.
func (r *Raster) Stroke() {
	ras := r.rasterizer()
	n := 0
	for _, sp := range r.subpaths {
		for i := 1; i < len(sp); i++ {
			if addQuad(ras, sp[i-1], sp[i], r.width) {
				n++
			}
		}
	}
	if n > 0 {
		r.paint(ras)
	}
}

// Circle paints a circle outline or a filled disc.
func (r *Raster) Circle(center navpath.Pair, radius float64, fill bool) {
	if radius <= 0 {
		return
	}
	pts := make([]navpath.Pair, circleSteps+1)
	for i := 0; i <= circleSteps; i++ {
		phi := 2 * math.Pi * float64(i) / circleSteps
		pts[i] = center + navpath.P(radius*math.Cos(phi), radius*math.Sin(phi))
	}
	ras := r.rasterizer()
	if fill {
		ras.MoveTo(float32(pts[0].X()), float32(pts[0].Y()))
		for _, p := range pts[1:] {
			ras.LineTo(float32(p.X()), float32(p.Y()))
		}
		ras.ClosePath()
	} else {
		for i := 1; i < len(pts); i++ {
			addQuad(ras, pts[i-1], pts[i], r.width)
		}
	}
	r.paint(ras)
}

func (r *Raster) rasterizer() *vector.Rasterizer {
	b := r.img.Bounds()
	if r.ras == nil {
		r.ras = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		r.ras.Reset(b.Dx(), b.Dy())
	}
	r.ras.DrawOp = draw.Over
	return r.ras
}

func (r *Raster) paint(ras *vector.Rasterizer) {
	ras.Draw(r.img, r.img.Bounds(), image.NewUniform(r.stroke), image.Point{})
}

// addQuad adds the rectangle of width w around line a–b. All quads share the
// same orientation, so overlapping pieces do not cancel out.
func addQuad(ras *vector.Rasterizer, a, b navpath.Pair, w float64) bool {
	d := b - a
	l := d.Abs()
	if l == 0 {
		return false
	}
	if w <= 0 {
		w = 1
	}
	n := navpath.P(-d.Y()/l*w/2, d.X()/l*w/2)
	q := [4]navpath.Pair{a + n, b + n, b - n, a - n}
	ras.MoveTo(float32(q[0].X()), float32(q[0].Y()))
	for _, p := range q[1:] {
		ras.LineTo(float32(p.X()), float32(p.Y()))
	}
	ras.ClosePath()
	return true
}

// WritePNG encodes the image painted so far as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encoding raster surface: %w", err)
	}
	tracer().Debugf("wrote %dx%d PNG", r.img.Bounds().Dx(), r.img.Bounds().Dy())
	return nil
}
