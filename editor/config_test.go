package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := DefaultConfig()
	assert.NoError(t, c.Validate())
	assert.Equal(t, 6.0, c.SnapRadius)
	assert.Equal(t, 200, c.Sampling)
}

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := LoadConfig(strings.NewReader(`
snap_radius: 10
show_legend: false
keys:
  place: Alt
`))
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.SnapRadius)
	assert.False(t, c.ShowLegend)
	assert.True(t, c.ShowSamples, "missing values keep their defaults")
	assert.Equal(t, "Alt", c.Keys.Place)
	assert.Equal(t, "Control", c.Keys.UndoGuard)
}

func TestLoadEmptyConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadInvalidConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, input := range []string{
		"snap_radius: -1",
		"curvature_sampling: 0",
		"sample_distance: 0",
		"unknown_key: 1",
		"snap_radius: [1, 2]",
		"keys:\n  undo: ''",
	} {
		_, err := LoadConfig(strings.NewReader(input))
		assert.True(t, errors.Is(err, ErrInvalidConfig), "input %q: %v", input, err)
	}
}
