package ctrlpath

import (
	"fmt"
	"strings"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ctrlpath'
func tracer() tracing.Trace {
	return tracing.Select("ctrlpath")
}

// MinLoopPoints is the minimum number of points for closing a path.
const MinLoopPoints = 4

// Kind is the role of a control point.
type Kind uint8

const (
	// Anchor is a point lying on the curve, shared by adjacent segments.
	Anchor Kind = iota
	// Handle is a control point steering the tangent at an adjacent anchor.
	Handle
)

func (k Kind) String() string {
	if k == Anchor {
		return "anchor"
	}
	return "handle"
}

// KindAt returns the role of the i-th point of a path:
// 0 is an anchor, 1 and 2 are handles, from 3 on odd indices are anchors and
// even indices are handles.
func KindAt(i int) Kind {
	if IsAnchor(i) {
		return Anchor
	}
	return Handle
}

// IsAnchor is a predicate: is the i-th point of a path an anchor?
func IsAnchor(i int) bool {
	return i == 0 || (i >= 3 && i%2 == 1)
}

// Entry is a control point together with its role.
type Entry struct {
	Kind Kind
	Pos  navpath.Pair
}

func (e Entry) String() string {
	return fmt.Sprintf("%s%v", e.Kind.String()[:1], e.Pos)
}

// Path is the control-point model of a composite Bézier path. Points are
// given in display coordinates.
//
// The zero value is an empty, open path ready to use.
type Path struct {
	entries []Entry
	loop    bool
}

// New creates an open path from a sequence of points. Roles are assigned
// by position.
func New(points ...navpath.Pair) *Path {
	path := &Path{entries: make([]Entry, 0, len(points))}
	for _, p := range points {
		path.push(p)
	}
	return path
}

func (path *Path) push(p navpath.Pair) {
	path.entries = append(path.entries, Entry{Kind: KindAt(len(path.entries)), Pos: p})
}

// N returns the number of stored points.
func (path *Path) N() int {
	return len(path.entries)
}

// Z returns the i-th stored point.
func (path *Path) Z(i int) navpath.Pair {
	return path.entries[i].Pos
}

// Entry returns the i-th stored point together with its role.
func (path *Path) Entry(i int) Entry {
	return path.entries[i]
}

// IsAnchor is a predicate: is the i-th stored point an anchor?
func (path *Path) IsAnchor(i int) bool {
	return i >= 0 && i < len(path.entries) && path.entries[i].Kind == Anchor
}

// Points returns a copy of the stored points.
func (path *Path) Points() []navpath.Pair {
	pts := make([]navpath.Pair, len(path.entries))
	for i, e := range path.entries {
		pts[i] = e.Pos
	}
	return pts
}

// IsCycle is a predicate: is this path closed into a loop?
func (path *Path) IsCycle() bool {
	return path.loop
}

// Clone returns a deep copy of path.
func (path *Path) Clone() *Path {
	c := &Path{loop: path.loop}
	c.entries = append([]Entry(nil), path.entries...)
	return c
}

// === Editing ===============================================================

// Append adds a point at the end of the path. Points may not be added to a
// closed path. Returns true if the path changed.
func (path *Path) Append(p navpath.Pair) bool {
	if path.loop {
		tracer().Debugf("cannot append to closed path")
		return false
	}
	path.push(p)
	tracer().Debugf("appended %s #%d", path.entries[len(path.entries)-1], len(path.entries)-1)
	return true
}

// PopLast removes the last point of an open, non-empty path.
// Returns true if the path changed.
func (path *Path) PopLast() bool {
	if path.loop || len(path.entries) == 0 {
		return false
	}
	path.entries = path.entries[:len(path.entries)-1]
	return true
}

// ToggleLoop opens a closed path or closes an open one. Closing is refused
// for paths with less than MinLoopPoints points, as the closing segment
// would refer to points which do not exist, and for paths ending with a
// handle, which would not be part of any segment.
// Returns true if the path changed.
func (path *Path) ToggleLoop() bool {
	if !path.loop {
		if err := path.closable(); err != nil {
			tracer().Infof("refusing to close path: %v", err)
			return false
		}
	}
	path.loop = !path.loop
	return true
}

// closable checks if the path may be closed into a loop.
func (path *Path) closable() error {
	n := len(path.entries)
	if n < MinLoopPoints {
		return fmt.Errorf("%d points, need at least %d", n, MinLoopPoints)
	}
	if path.entries[n-1].Kind != Anchor {
		return fmt.Errorf("path ends with handle #%d", n-1)
	}
	return nil
}

// Move sets the i-th point to p. If it is an anchor, its adjacent stored
// handle is translated by the same offset, keeping the local tangent: the
// leaving handle for the first anchor, the arriving handle for all others.
// Derived (mirrored) handles follow automatically.
// Returns true if the path changed.
func (path *Path) Move(i int, p navpath.Pair) bool {
	if i < 0 || i >= len(path.entries) {
		return false
	}
	delta := p - path.entries[i].Pos
	path.entries[i].Pos = p
	if path.entries[i].Kind != Anchor {
		return true
	}
	if i == 0 && len(path.entries) > 1 && path.entries[1].Kind == Handle {
		path.entries[1].Pos += delta
	}
	if i-1 >= 0 && path.entries[i-1].Kind == Handle {
		path.entries[i-1].Pos += delta
	}
	return true
}

// Nearest returns the index of the first point within radius of p.
// Points are checked in index order.
func (path *Path) Nearest(p navpath.Pair, radius float64) (int, bool) {
	for i, e := range path.entries {
		if e.Pos.Dist(p) <= radius {
			return i, true
		}
	}
	return -1, false
}

// === Segments ==============================================================

// Derived returns the explicit control point sequence of the open part of
// the path: anchor, handle, handle, anchor, handle, handle, anchor, …
// Leaving handles are mirrored from the stored arriving handles.
// Trailing points not yet completing a segment are not included.
func (path *Path) Derived() []navpath.Pair {
	n := len(path.entries)
	if n < 4 {
		return nil
	}
	derived := make([]navpath.Pair, 4, 4+(n-4)/2*3)
	for i := 0; i < 4; i++ {
		derived[i] = path.entries[i].Pos
	}
	for i := 4; i+1 < n; i += 2 {
		cp2, anchor := path.entries[i].Pos, path.entries[i+1].Pos
		l := len(derived)
		prevCp2, prevAnchor := derived[l-2], derived[l-1]
		cp1 := prevCp2.Mirrored(prevAnchor)
		derived = append(derived, cp1, cp2, anchor)
	}
	return derived
}

// Segments derives the cubic segments of the path. Paths with less than
// four points have no segments. A closed path gets an additional closing
// segment from the last anchor back to the first.
func (path *Path) Segments() []bezier.Segment {
	derived := path.Derived()
	if len(derived) == 0 {
		return nil
	}
	n := (len(derived) - 1) / 3
	if path.loop {
		n++
	}
	segs := make([]bezier.Segment, 0, n)
	for k := 0; k+3 < len(derived); k += 3 {
		segs = append(segs, bezier.Seg(derived[k], derived[k+1], derived[k+2], derived[k+3]))
	}
	if path.loop {
		l := len(derived)
		last, lastCp2 := derived[l-1], derived[l-2]
		first, firstCp1 := derived[0], derived[1]
		segs = append(segs, bezier.Seg(last, lastCp2.Mirrored(last), firstCp1.Mirrored(first), first))
	}
	return segs
}

// Anchors returns the indices of all stored anchors.
func (path *Path) Anchors() []int {
	var a []int
	for i, e := range path.entries {
		if e.Kind == Anchor {
			a = append(a, i)
		}
	}
	return a
}

// String returns the path in MetaPost-like notation if it has segments,
// or its raw points otherwise.
func (path *Path) String() string {
	if segs := path.Segments(); len(segs) > 0 {
		return bezier.AsString(segs, path.loop)
	}
	parts := make([]string, len(path.entries))
	for i, e := range path.entries {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
