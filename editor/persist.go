package editor

import (
	"errors"
	"fmt"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/ctrlpath"
)

var (
	// ErrNoSnapshot is returned by Restore if no snapshot is outstanding.
	ErrNoSnapshot = errors.New("no snapshot pending")
	// ErrStaleSnapshot is returned by Restore for a token which has been
	// superseded by a newer snapshot.
	ErrStaleSnapshot = errors.New("stale snapshot")
)

// Token is the result of Snapshot. It holds the path in world units.
type Token struct {
	id  uint64
	rec ctrlpath.Record
}

// Record returns the world-frame record captured by the snapshot.
func (tok Token) Record() ctrlpath.Record {
	return tok.rec
}

// Save returns the path as a record in world coordinates.
func (e *Editor) Save() ctrlpath.Record {
	return e.path.Save(e.tr)
}

// Load replaces the path with a record given in world coordinates. While a
// snapshot is outstanding the load is deferred until Restore; a later load
// overrides an earlier deferred one.
func (e *Editor) Load(rec ctrlpath.Record) error {
	if e.pending != nil {
		tracer().Debugf("snapshot pending, deferring load of %d points", len(rec.Points))
		e.deferred = &rec
		return nil
	}
	return e.load(rec)
}

func (e *Editor) load(rec ctrlpath.Record) error {
	path, err := ctrlpath.Load(rec, e.tr)
	if err != nil {
		return fmt.Errorf("editor cannot load path: %w", err)
	}
	e.path = path
	e.endGesture()
	e.dirty = true
	return nil
}

// Snapshot captures the path in world units before a change of the display
// transform. Every Snapshot has to be followed by Restore.
func (e *Editor) Snapshot() Token {
	e.tokens++
	tok := Token{id: e.tokens, rec: e.Save()}
	e.pending = &tok
	tracer().Debugf("snapshot #%d of %d points", tok.id, len(tok.rec.Points))
	return tok
}

// Pending is a predicate: is a snapshot outstanding?
func (e *Editor) Pending() bool {
	return e.pending != nil
}

// Restore reprojects the snapshotted path with the current transform. A load
// deferred during the snapshot is applied afterwards. If the snapshot cannot
// be reprojected, the deferred load is discarded.
func (e *Editor) Restore(tok Token) error {
	if e.pending == nil {
		return ErrNoSnapshot
	}
	if tok.id != e.pending.id {
		return fmt.Errorf("%w: token #%d, pending #%d", ErrStaleSnapshot, tok.id, e.pending.id)
	}
	e.pending = nil
	deferred := e.deferred
	e.deferred = nil
	if err := e.load(tok.rec); err != nil {
		if deferred != nil {
			tracer().Errorf("discarding deferred load of %d points", len(deferred.Points))
		}
		return err
	}
	if deferred != nil {
		return e.load(*deferred)
	}
	return nil
}

// SetTransform exchanges the display/world transform. The path keeps its
// display coordinates; use Resize to keep its world coordinates instead.
func (e *Editor) SetTransform(tr navpath.Transform) {
	if tr == nil {
		tr = navpath.IdentityTransform()
	}
	e.tr = tr
	e.dirty = true
}

// Resize changes the transform, keeping the path fixed in world
// coordinates.
func (e *Editor) Resize(tr navpath.Transform) error {
	tok := e.Snapshot()
	e.SetTransform(tr)
	return e.Restore(tok)
}
