package polygon

import (
	"testing"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(navpath.P(0, 0)).Knot(navpath.P(1, 3)).Knot(navpath.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "polygon{(0,0) -- (1,3) -- (3,0) -- cycle}", AsString(pg))
	assert.Equal(t, navpath.P(3, 0), pg.Z(-1))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(navpath.P(0, 5), navpath.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	ll, ur := box.BoundingBox()
	assert.Equal(t, navpath.P(0, 1), ll)
	assert.Equal(t, navpath.P(4, 5), ur)
	assert.InDelta(t, 16.0, box.Length(), 1e-12)
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(navpath.P(0, 0), navpath.P(10, 10))
	assert.True(t, box.Contains(navpath.P(5, 5)))
	assert.False(t, box.Contains(navpath.P(15, 5)))
	open := FromPoints([]navpath.Pair{navpath.P(0, 0), navpath.P(10, 0), navpath.P(10, 10)})
	assert.False(t, open.Contains(navpath.P(9, 1)))
	assert.InDelta(t, 20.0, open.Length(), 1e-12)
}

func TestEmptyBoundingBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ll, ur := NullPolygon().End().BoundingBox()
	assert.True(t, ll.IsOrigin())
	assert.True(t, ur.IsOrigin())
}
