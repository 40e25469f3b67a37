/*
Package polygon implements polygons built from knots, as used for control
polygons and flattened paths. Geometric queries are delegated to
github.com/akavel/polyclip-go.

Polygons are built in a builder style:

	pg := NullPolygon().Knot(navpath.P(0,0)).Knot(navpath.P(1,3)).Knot(navpath.P(3,0)).Cycle()

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/navpath"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'polygon'
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of knots connected by straight lines. A closed
// polygon (cycle) connects its last knot back to the first one.
type Polygon struct {
	points []navpath.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates an open polygon from a sequence of points.
func FromPoints(pts []navpath.Pair) *Polygon {
	pg := &Polygon{points: make([]navpath.Pair, len(pts))}
	copy(pg.points, pts)
	return pg
}

// Box creates a closed rectangular polygon from two opposite corners.
func Box(a, b navpath.Pair) *Polygon {
	x0, y0 := min(a.X(), b.X()), min(a.Y(), b.Y())
	x1, y1 := max(a.X(), b.X()), max(a.Y(), b.Y())
	return NullPolygon().
		Knot(navpath.P(x0, y0)).Knot(navpath.P(x1, y0)).
		Knot(navpath.P(x1, y1)).Knot(navpath.P(x0, y1)).Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p navpath.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Z returns knot i, modulo N.
func (pg *Polygon) Z(i int) navpath.Pair {
	n := pg.N()
	return pg.points[((i%n)+n)%n]
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Length is the total length of all edges.
func (pg *Polygon) Length() float64 {
	l := 0.0
	for i := 1; i < pg.N(); i++ {
		l += pg.points[i-1].Dist(pg.points[i])
	}
	if pg.cycle && pg.N() > 1 {
		l += pg.points[pg.N()-1].Dist(pg.points[0])
	}
	return l
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, p := range pg.points {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-parallel rectangle containing all knots. An empty polygon has an
// empty box at the origin.
func (pg *Polygon) BoundingBox() (navpath.Pair, navpath.Pair) {
	if pg.N() == 0 {
		return navpath.Origin, navpath.Origin
	}
	r := pg.contour().BoundingBox()
	return navpath.P(r.Min.X, r.Min.Y), navpath.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: does the area enclosed by a closed polygon
// contain p? Open polygons enclose nothing.
func (pg *Polygon) Contains(p navpath.Pair) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	parts := make([]string, pg.N())
	for i, p := range pg.points {
		parts[i] = p.String()
	}
	s := strings.Join(parts, " -- ")
	if pg.cycle {
		s += " -- cycle"
	}
	return fmt.Sprintf("polygon{%s}", s)
}
