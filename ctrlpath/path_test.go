package ctrlpath

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arch() *Path {
	return New(navpath.P(0, 0), navpath.P(0, 50), navpath.P(50, 50), navpath.P(50, 0))
}

// two segments: the arch, followed by a dip
func twoSegments() *Path {
	p := arch()
	p.Append(navpath.P(100, -50))
	p.Append(navpath.P(100, 0))
	return p
}

func TestRoles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	want := []Kind{Anchor, Handle, Handle, Anchor, Handle, Anchor, Handle, Anchor}
	p := New()
	for i := range want {
		p.Append(navpath.P(float64(i), 0))
	}
	for i, k := range want {
		assert.Equal(t, k, p.Entry(i).Kind, "entry %d", i)
		assert.Equal(t, k == Anchor, IsAnchor(i), "index %d", i)
	}
	assert.Equal(t, []int{0, 3, 5, 7}, p.Anchors())
}

func TestTooFewPointsHaveNoSegments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 0; n < 4; n++ {
		p := New()
		for i := 0; i < n; i++ {
			p.Append(navpath.P(float64(i), float64(i*i)))
		}
		assert.Empty(t, p.Segments(), "n=%d", n)
		p.loop = true // force, closing is refused by ToggleLoop
		assert.Empty(t, p.Segments(), "n=%d, closed", n)
	}
}

func TestSegmentCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := arch()
	for k := 0; k < 5; k++ {
		assert.Len(t, p.Segments(), 1+k, "k=%d", k)
		assert.Equal(t, 4+2*k, p.N())
		p.Append(navpath.P(float64(60+k*20), float64(10*k)))
		// a dangling handle does not complete a segment
		assert.Len(t, p.Segments(), 1+k)
		p.Append(navpath.P(float64(70+k*20), float64(-10*k)))
	}
}

func TestFirstSegmentVerbatim(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := arch()
	segs := p.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, [4]navpath.Pair{p.Z(0), p.Z(1), p.Z(2), p.Z(3)}, segs[0].Points())
}

func assertContinuous(t *testing.T, a, b navpath.Pair, anchor navpath.Pair) {
	t.Helper()
	mirrored := 2*anchor - a
	assert.InDelta(t, mirrored.X(), b.X(), 1e-9)
	assert.InDelta(t, mirrored.Y(), b.Y(), 1e-9)
	assert.InDelta(t, a.Dist(anchor), b.Dist(anchor), 1e-9)
}

func TestContinuityAtJoins(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twoSegments()
	p.Append(navpath.P(130, 80))
	p.Append(navpath.P(170, 40))
	segs := p.Segments()
	require.Len(t, segs, 3)
	for i := 0; i+1 < len(segs); i++ {
		assert.Equal(t, segs[i].P3, segs[i+1].P0, "segments %d and %d must share an anchor", i, i+1)
		assertContinuous(t, segs[i].P2, segs[i+1].P1, segs[i].P3)
	}
	// stored handles are used verbatim
	assert.Equal(t, p.Z(4), segs[1].P2)
	assert.Equal(t, p.Z(6), segs[2].P2)
}

func TestLoopClosure(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twoSegments()
	open := p.Segments()
	require.Len(t, open, 2)
	require.True(t, p.ToggleLoop())
	closed := p.Segments()
	require.Len(t, closed, 3)
	last := closed[2]
	assert.Equal(t, open[1].P3, last.P0)
	assert.Equal(t, p.Z(0), last.P3)
	assertContinuous(t, open[1].P2, last.P1, last.P0)
	assertContinuous(t, last.P2, closed[0].P1, closed[0].P0)
	require.True(t, p.ToggleLoop())
	assert.Len(t, p.Segments(), 2)
}

func TestClosingRefusedBelowFourPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New(navpath.P(0, 0), navpath.P(1, 1), navpath.P(2, 2))
	assert.False(t, p.ToggleLoop())
	assert.False(t, p.IsCycle())
}

func TestClosingRefusedWithTrailingHandle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := arch()
	require.True(t, p.Append(navpath.P(80, -40)))
	assert.False(t, p.ToggleLoop(), "handle #4 would not be part of any segment")
	assert.False(t, p.IsCycle())
	require.True(t, p.Append(navpath.P(100, 0)))
	require.True(t, p.ToggleLoop())
	segs := p.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, navpath.P(80, -40), segs[1].P2)
	assert.Equal(t, segs[1].P3, segs[2].P0)
}

func TestEditingOnClosedPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := arch()
	require.True(t, p.ToggleLoop())
	assert.False(t, p.Append(navpath.P(9, 9)))
	assert.False(t, p.PopLast())
	assert.Equal(t, 4, p.N())
	// moving is allowed on closed paths
	assert.True(t, p.Move(2, navpath.P(40, 60)))
}

func TestPopLast(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New()
	assert.False(t, p.PopLast())
	p = twoSegments()
	assert.True(t, p.PopLast())
	assert.Equal(t, 5, p.N())
	assert.Len(t, p.Segments(), 1)
	assert.True(t, p.Append(navpath.P(1, 1)))
	assert.Equal(t, Anchor, p.Entry(5).Kind)
}

func TestMoveFirstAnchor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twoSegments()
	before := p.Points()
	delta := navpath.P(7, -3)
	require.True(t, p.Move(0, before[0]+delta))
	after := p.Points()
	assert.Equal(t, before[0]+delta, after[0])
	assert.Equal(t, before[1]+delta, after[1])
	assert.Equal(t, before[2:], after[2:])
}

func TestMoveInteriorAnchor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twoSegments()
	before := p.Points()
	segsBefore := p.Segments()
	delta := navpath.P(5, 5)
	require.True(t, p.Move(3, before[3]+delta))
	after := p.Points()
	assert.Equal(t, before[2]+delta, after[2])
	assert.Equal(t, before[3]+delta, after[3])
	assert.Equal(t, before[4], after[4], "the following arriving handle stays")
	segs := p.Segments()
	// the mirrored leaving handle follows the anchor
	assert.True(t, segs[1].P1.Equal(segsBefore[1].P1+delta))
	assertContinuous(t, segs[0].P2, segs[1].P1, segs[0].P3)
}

func TestMoveHandle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twoSegments()
	before := p.Points()
	require.True(t, p.Move(4, navpath.P(90, -70)))
	after := p.Points()
	assert.Equal(t, navpath.P(90, -70), after[4])
	before[4] = after[4]
	assert.Equal(t, before, after)
	assert.False(t, p.Move(17, navpath.Origin))
	assert.False(t, p.Move(-1, navpath.Origin))
}

func TestNearest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New(navpath.P(0, 0), navpath.P(3, 0), navpath.P(50, 50), navpath.P(50, 0))
	i, ok := p.Nearest(navpath.P(2, 0), 6)
	assert.True(t, ok)
	assert.Equal(t, 0, i, "first match in index order wins")
	_, ok = p.Nearest(navpath.P(25, 25), 6)
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := arch()
	c := p.Clone()
	c.Move(1, navpath.P(-1, -1))
	c.ToggleLoop()
	assert.Equal(t, navpath.P(0, 50), p.Z(1))
	assert.False(t, p.IsCycle())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := navpath.MustAffine(0.05, navpath.P(-12.5, 3))
	p := twoSegments()
	p.ToggleLoop()
	rec := p.Save(tr)
	assert.True(t, rec.LoopFinished)
	require.Len(t, rec.Points, 6)
	assert.InDelta(t, -12.5+0.05*50, rec.Points[3].X, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	assert.Contains(t, buf.String(), `"loopFinished": true`)
	rec2, err := DecodeRecord(&buf)
	require.NoError(t, err)

	q, err := Load(rec2, tr)
	require.NoError(t, err)
	assert.True(t, q.IsCycle())
	require.Equal(t, p.N(), q.N())
	for i := 0; i < p.N(); i++ {
		assert.InDelta(t, p.Z(i).X(), q.Z(i).X(), 1e-9)
		assert.InDelta(t, p.Z(i).Y(), q.Z(i).Y(), 1e-9)
		assert.Equal(t, p.Entry(i).Kind, q.Entry(i).Kind)
	}
}

func TestLoadRejectsInvalidPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := Record{Points: []Point{{X: 1, Y: 2}, {X: math.NaN(), Y: 0}}}
	_, err := Load(rec, navpath.IdentityTransform())
	assert.True(t, errors.Is(err, ErrInvalidPoint))
	_, err = DecodeRecord(strings.NewReader(`{"points": "nope"}`))
	assert.Error(t, err)
}

func TestLoadShortLoopOpens(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := Record{LoopFinished: true, Points: []Point{{X: 1, Y: 2}}}
	p, err := Load(rec, navpath.IdentityTransform())
	require.NoError(t, err)
	assert.False(t, p.IsCycle())
	// ends with a handle
	rec.Points = []Point{{X: 0, Y: 0}, {X: 0, Y: 50}, {X: 50, Y: 50}, {X: 50, Y: 0}, {X: 80, Y: -40}}
	p, err = Load(rec, navpath.IdentityTransform())
	require.NoError(t, err)
	assert.False(t, p.IsCycle())
	assert.Equal(t, 5, p.N())
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "[a(0,0) h(0,50)]", New(navpath.P(0, 0), navpath.P(0, 50)).String())
	p := arch()
	p.ToggleLoop()
	assert.True(t, strings.HasSuffix(p.String(), "cycle"))
}
