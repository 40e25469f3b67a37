package ctrlpath

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/npillmayer/navpath"
)

// ErrInvalidPoint flags a persisted point with a NaN or infinite coordinate.
var ErrInvalidPoint = errors.New("invalid point in path record")

// Point is the serialized form of a point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt converts a pair into its serialized form.
func Pt(p navpath.Pair) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// Pair converts a serialized point back into a pair.
func (p Point) Pair() navpath.Pair {
	return navpath.P(p.X, p.Y)
}

// Record is the persisted form of a path. Points are stored in world
// coordinates, so a record survives changes of the display transform.
type Record struct {
	LoopFinished bool    `json:"loopFinished"`
	Points       []Point `json:"points"`
}

// Save projects the path into world coordinates. The record shares no
// memory with the path.
func (path *Path) Save(tr navpath.Transform) Record {
	rec := Record{
		LoopFinished: path.loop,
		Points:       make([]Point, len(path.entries)),
	}
	for i, e := range path.entries {
		rec.Points[i] = Pt(tr.ToWorld(e.Pos))
	}
	return rec
}

// Load creates a path from a record, projecting its points into display
// coordinates. A record claiming a loop which could not be closed by
// ToggleLoop is loaded as an open path.
func Load(rec Record, tr navpath.Transform) (*Path, error) {
	path := &Path{entries: make([]Entry, 0, len(rec.Points))}
	for i, p := range rec.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("%w at index %d", ErrInvalidPoint, i)
		}
		path.push(tr.ToDisplay(p.Pair()))
	}
	if rec.LoopFinished {
		if err := path.closable(); err != nil {
			tracer().Errorf("record is closed with %v, loading as open path", err)
		} else {
			path.loop = true
		}
	}
	tracer().Infof("loaded path with %d points, loop=%v", len(path.entries), path.loop)
	return path, nil
}

// Encode writes a record as JSON.
func (rec Record) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encoding path record: %w", err)
	}
	return nil
}

// DecodeRecord reads a JSON path record.
func DecodeRecord(r io.Reader) (Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("decoding path record: %w", err)
	}
	return rec, nil
}
