package navpath

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Translation(P(-1, -1)).Transform(P(1, 1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !Scaling(-1, 1).Combine(Translation(P(1, 0))).Transform(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestMirrored(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := P(1, 2).Mirrored(P(3, 3))
	assert.True(t, m.Equal(P(5, 4)), "mirror of (1,2) through (3,3) is %v", m)
	assert.InDelta(t, 5.0, P(0, 0).Dist(P(3, 4)), 1e-12)
}

func TestInverse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Scaling(2, 4).Combine(Translation(P(7, -1)))
	inv, err := m.Inverse()
	require.NoError(t, err)
	p := P(3, 5)
	q := inv.Transform(m.Transform(p))
	assert.True(t, q.Equal(p), "expected %v, got %v", p, q)
	_, err = Scaling(0, 1).Inverse()
	assert.True(t, errors.Is(err, ErrSingular))
}

func TestAffineRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr, err := NewAffine(0.05, P(-10, 4))
	require.NoError(t, err)
	w := tr.ToWorld(P(100, 200))
	assert.InDelta(t, -5.0, w.X(), 1e-9)
	assert.InDelta(t, 14.0, w.Y(), 1e-9)
	d := tr.ToDisplay(w)
	assert.InDelta(t, 100.0, d.X(), 1e-9)
	assert.InDelta(t, 200.0, d.Y(), 1e-9)
	assert.InDelta(t, 5.0, tr.ToWorldScalar(100), 1e-12)
}

func TestAffineRejectsInvalidScale(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, s := range []float64{0, -1} {
		_, err := NewAffine(s, Origin)
		assert.True(t, errors.Is(err, ErrInvalidScale), "scale %g", s)
	}
	assert.Panics(t, func() { MustAffine(0, Origin) })
}

