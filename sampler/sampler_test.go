package sampler

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/ctrlpath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arch() *ctrlpath.Path {
	return ctrlpath.New(navpath.P(0, 0), navpath.P(0, 50), navpath.P(50, 50), navpath.P(50, 0))
}

func TestTooFewPointsAreNotSampled(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := ctrlpath.New(navpath.P(0, 0), navpath.P(1, 1), navpath.P(2, 2))
	sp, ok := AsPath(p, navpath.IdentityTransform(), 10)
	assert.False(t, ok)
	assert.Nil(t, sp)
}

func TestArchScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sp, ok := AsPath(arch(), navpath.IdentityTransform(), 10)
	require.True(t, ok)
	// control polygon has length 150
	assert.Equal(t, 15, sp.Len())
	assert.GreaterOrEqual(t, sp.Len(), 1)
	assert.LessOrEqual(t, sp.Len(), 15)
	for _, s := range sp.Display {
		assert.False(t, math.IsNaN(s.Curvature) || math.IsInf(s.Curvature, 0))
	}
	assert.True(t, sp.Display[0].Pos.Equal(navpath.P(0, 0)))
	assert.Len(t, sp.World, sp.Len())
}

func TestStepCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := arch().Segments()[0]
	for _, tc := range []struct {
		d    float64
		want int
	}{
		{10, 15}, {7, 22}, {150, 1}, {1000, 1}, {0.5, 300}, {0, 1},
	} {
		assert.Equal(t, tc.want, Steps(seg, tc.d), "d=%g", tc.d)
		sp, ok := AsPath(arch(), navpath.IdentityTransform(), tc.d)
		require.True(t, ok)
		assert.Equal(t, tc.want, sp.Len(), "d=%g", tc.d)
	}
}

func TestStepCountIsClamped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := arch().Segments()[0]
	for _, d := range []float64{1e-4, 1e-20, 1e-300, math.SmallestNonzeroFloat64} {
		assert.Equal(t, MaxSteps, Steps(seg, d), "d=%g", d)
	}
	assert.Equal(t, 1, Steps(seg, math.Inf(1)))
	assert.Equal(t, 1, Steps(seg, math.NaN()))
}

func TestNoDuplicateJoins(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := arch()
	p.Append(navpath.P(100, -50))
	p.Append(navpath.P(100, 0))
	sp, ok := AsPath(p, navpath.IdentityTransform(), 25)
	require.True(t, ok)
	segs := p.Segments()
	assert.Equal(t, Steps(segs[0], 25)+Steps(segs[1], 25), sp.Len())
	for i := 1; i < sp.Len(); i++ {
		assert.False(t, sp.Display[i].Pos.Equal(sp.Display[i-1].Pos), "duplicate sample at %d", i)
	}
}

func TestWorldFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := navpath.MustAffine(0.1, navpath.P(-5, 2))
	sp, ok := AsPath(arch(), tr, 10)
	require.True(t, ok)
	for i := range sp.Display {
		w := tr.ToWorld(sp.Display[i].Pos)
		assert.True(t, w.Equal(sp.World[i].Pos))
		assert.InDelta(t, sp.Display[i].Curvature*10, sp.World[i].Curvature, 1e-9)
		assert.InDelta(t, sp.Display[i].Heading, sp.World[i].Heading, 1e-9)
	}
	// sample distance in world units: 1 m = 10 px
	spw, ok := AsPathWorld(arch(), tr, 1)
	require.True(t, ok)
	assert.Equal(t, sp.Len(), spw.Len())
}

func TestClosedLoop(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := arch()
	require.True(t, p.ToggleLoop())
	sp, ok := AsPath(p, navpath.IdentityTransform(), 5)
	require.True(t, ok)
	assert.True(t, sp.Closed)
	assert.True(t, sp.Contour().IsCycle())
	// the loop bulges up over the arch and down below the chord
	assert.True(t, sp.Encloses(navpath.P(25, 10)))
	assert.False(t, sp.Encloses(navpath.P(200, 10)))
	assert.Greater(t, sp.Length(), 100.0)
	open, _ := AsPath(arch(), navpath.IdentityTransform(), 5)
	assert.False(t, open.Encloses(navpath.P(25, 10)))
}

func TestExport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sp, ok := AsPath(arch(), navpath.IdentityTransform(), 50)
	require.True(t, ok)
	pts := sp.ToJSON()
	require.Len(t, pts, 3)
	assert.Equal(t, 0.0, pts[0].X)
	var buf bytes.Buffer
	require.NoError(t, sp.WriteJSON(&buf))
	var back []Point
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, pts, back)
}

func TestNavPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sp, ok := AsPath(arch(), navpath.IdentityTransform(), 50)
	require.True(t, ok)
	msg := sp.NavPath("map")
	assert.Equal(t, "map", msg.Header.FrameID)
	require.Len(t, msg.Poses, 3)
	// the arch starts heading straight up (+y), a yaw of 90°
	q := msg.Poses[0].Pose.Orientation
	assert.InDelta(t, math.Sqrt2/2, q.Z, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, q.W, 1e-9)
	assert.Equal(t, uint32(2), msg.Poses[2].Header.Seq)
}
