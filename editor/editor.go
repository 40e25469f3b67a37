/*
Package editor implements the interactive editing of a navigation path.

An Editor owns a control-point path and interprets pointer and key events
as edits: placing points while the place modifier is held, dragging points
within a snap radius, undoing the last point and closing the path into a
loop.

The editor is single-threaded and event-driven. Every edit sets a dirty
flag; a render tick redraws the path only if it is dirty, so any number of
events between two ticks result in a single redraw. Drawing is a pure
function of the path, the cursor and the current modifiers.

Changes of the display transform, e.g. after reloading or resizing the
map, are bracketed by Snapshot and Restore. The snapshot holds the path in
world units; Restore reprojects it with the new transform.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package editor

import (
	"fmt"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/ctrlpath"
	"github.com/npillmayer/navpath/polygon"
	"github.com/npillmayer/navpath/sampler"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'editor'
func tracer() tracing.Trace {
	return tracing.Select("editor")
}

// Mode is the state of the editing state machine.
type Mode int

// Modes of the editor.
const (
	Idle     Mode = iota // no gesture in progress
	Placing              // a new point follows the pointer
	Dragging             // an existing point follows the pointer
)

func (m Mode) String() string {
	switch m {
	case Placing:
		return "placing"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// Editor is the editing state machine for a single path.
type Editor struct {
	config   Config
	tr       navpath.Transform
	keys     *Keys
	path     *ctrlpath.Path
	mods     Modifiers     // modifiers of the most recent event
	cursor   *navpath.Pair // nil if the pointer is outside the surface
	down     bool          // within a pointer-down gesture
	dragging int           // index of the dragged point, or -1
	dirty    bool
	pending  *Token          // outstanding snapshot
	deferred *ctrlpath.Record // load waiting for the snapshot to resolve
	tokens   uint64
}

// New creates an editor for an empty path. If tr is nil, display and world
// coordinates coincide.
func New(config Config, tr navpath.Transform) (*Editor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if tr == nil {
		tr = navpath.IdentityTransform()
	}
	e := &Editor{
		config:   config,
		tr:       tr,
		keys:     NewKeys(),
		path:     &ctrlpath.Path{},
		dragging: -1,
		dirty:    true,
	}
	km := config.Keys
	e.keys.OnKeyDown(km.Undo, func() { e.Undo(e.Modifiers()) })
	e.keys.OnKeyDown(km.ToggleLoop, func() { e.ToggleLoop() })
	// the placement preview depends on the place modifier
	e.keys.OnKeyDown(km.Place, func() { e.mods = e.Modifiers(); e.dirty = true })
	e.keys.OnKeyUp(km.Place, func() { e.mods = e.Modifiers(); e.dirty = true })
	return e, nil
}

// MustNew is like New, but panics on an invalid configuration.
func MustNew(config Config, tr navpath.Transform) *Editor {
	e, err := New(config, tr)
	if err != nil {
		panic(err)
	}
	return e
}

// Config returns the editor's configuration.
func (e *Editor) Config() Config {
	return e.config
}

// Transform returns the current display/world transform.
func (e *Editor) Transform() navpath.Transform {
	return e.tr
}

// Keys returns the key registry of the editor. Key events are fed into it
// by the caller.
func (e *Editor) Keys() *Keys {
	return e.keys
}

// Modifiers returns the modifier state derived from the editor's keys.
func (e *Editor) Modifiers() Modifiers {
	return e.keys.Modifiers(e.config.Keys)
}

// Path returns a copy of the edited path.
func (e *Editor) Path() *ctrlpath.Path {
	return e.path.Clone()
}

// Cursor returns the last known pointer position.
func (e *Editor) Cursor() (navpath.Pair, bool) {
	if e.cursor == nil {
		return navpath.Origin, false
	}
	return *e.cursor, true
}

// Mode returns the current state of the state machine. For Dragging the
// index of the dragged point is returned as well.
func (e *Editor) Mode() (Mode, int) {
	if e.dragging >= 0 {
		return Dragging, e.dragging
	}
	if e.mods.Place && !e.path.IsCycle() {
		return Placing, -1
	}
	return Idle, -1
}

// Dirty is a predicate: does the editor need to be redrawn?
func (e *Editor) Dirty() bool {
	return e.dirty
}

func (e *Editor) changed(ok bool) bool {
	if ok {
		e.dirty = true
	}
	return ok
}

// === Transitions ===========================================================

// PointerDown starts a gesture. In placing mode a new point is appended;
// otherwise the first point within the snap radius is grabbed for dragging.
func (e *Editor) PointerDown(pos navpath.Pair, mods Modifiers) {
	e.mods = mods
	if e.down {
		return
	}
	e.down = true
	if mode, _ := e.Mode(); mode == Placing {
		e.changed(e.path.Append(pos))
		return
	}
	if i, ok := e.path.Nearest(pos, e.config.SnapRadius); ok {
		tracer().Debugf("grabbed point #%d at %v", i, pos)
		e.dragging = i
		e.dirty = true
	}
}

// PointerMove tracks the cursor and drags a grabbed point. Dragging is
// suspended while the place modifier is held.
func (e *Editor) PointerMove(pos navpath.Pair, mods Modifiers) {
	e.mods = mods
	e.cursor = &pos
	e.dirty = true
	if e.dragging >= 0 && !mods.Place {
		e.path.Move(e.dragging, pos)
	}
}

// PointerUp ends a gesture.
func (e *Editor) PointerUp(pos navpath.Pair) {
	e.endGesture()
}

// PointerLeave ends a gesture and forgets the cursor.
func (e *Editor) PointerLeave() {
	e.endGesture()
	e.cursor = nil
	e.dirty = true
}

func (e *Editor) endGesture() {
	if e.dragging >= 0 {
		tracer().Debugf("released point #%d", e.dragging)
		e.dirty = true
	}
	e.down = false
	e.dragging = -1
}

// Undo removes the last point. It is accepted only while the undo modifier
// is held, for an open, non-empty path. Returns true if the path changed.
func (e *Editor) Undo(mods Modifiers) bool {
	e.mods = mods
	if !mods.Undo || e.down {
		return false
	}
	return e.changed(e.path.PopLast())
}

// ToggleLoop closes or opens the path. Returns true if the path changed.
func (e *Editor) ToggleLoop() bool {
	if e.down {
		return false
	}
	return e.changed(e.path.ToggleLoop())
}

// === Queries ===============================================================

// Export samples the path with a distance of sampleDistance display units
// between samples. If sampleDistance ≤ 0, the configured distance is used.
func (e *Editor) Export(sampleDistance float64) (*sampler.SampledPath, bool) {
	if sampleDistance <= 0 {
		sampleDistance = e.config.SampleDistance
	}
	return sampler.AsPath(e.path, e.tr, sampleDistance)
}

// Bounds returns the bounding box of all control points in display
// coordinates.
func (e *Editor) Bounds() (navpath.Pair, navpath.Pair) {
	return polygon.FromPoints(e.path.Points()).BoundingBox()
}

func (e *Editor) String() string {
	mode, i := e.Mode()
	if mode == Dragging {
		return fmt.Sprintf("editor{%s #%d, %d points}", mode, i, e.path.N())
	}
	return fmt.Sprintf("editor{%s, %d points}", mode, e.path.N())
}
