package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/navpath/curvature"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig flags a configuration value out of range.
var ErrInvalidConfig = errors.New("invalid editor configuration")

// Config holds the tunables of an editor.
type Config struct {
	SnapRadius     float64 `yaml:"snap_radius"`        // display units
	Sampling       int     `yaml:"curvature_sampling"` // steps per segment for the curvature range
	SampleDistance float64 `yaml:"sample_distance"`    // display units between exported samples
	PointRadius    float64 `yaml:"point_radius"`
	PathWidth      float64 `yaml:"path_width"`
	ShowSamples    bool    `yaml:"show_samples"`
	ShowLegend     bool    `yaml:"show_legend"`
	LegendLength   int     `yaml:"legend_length"`
	Keys           KeyMap  `yaml:"keys"`
}

// KeyMap names the keys driving the editor.
type KeyMap struct {
	Place      string `yaml:"place"`       // modifier: pointer-down places a point
	UndoGuard  string `yaml:"undo_guard"`  // modifier which must be held for undo
	Undo       string `yaml:"undo"`        // command key
	ToggleLoop string `yaml:"toggle_loop"` // command key
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		SnapRadius:     6,
		Sampling:       curvature.DefaultSampling,
		SampleDistance: 5,
		PointRadius:    4,
		PathWidth:      3,
		ShowSamples:    true,
		ShowLegend:     true,
		LegendLength:   curvature.DefaultLegendLength,
		Keys: KeyMap{
			Place:      "Shift",
			UndoGuard:  "Control",
			Undo:       "z",
			ToggleLoop: "l",
		},
	}
}

// Validate checks configuration values.
func (c Config) Validate() error {
	switch {
	case c.SnapRadius < 0:
		return fmt.Errorf("%w: snap radius %g", ErrInvalidConfig, c.SnapRadius)
	case c.Sampling < 1:
		return fmt.Errorf("%w: curvature sampling %d", ErrInvalidConfig, c.Sampling)
	case c.SampleDistance <= 0:
		return fmt.Errorf("%w: sample distance %g", ErrInvalidConfig, c.SampleDistance)
	case c.Keys.Place == "" || c.Keys.Undo == "" || c.Keys.ToggleLoop == "":
		return fmt.Errorf("%w: key map has unbound keys", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads a YAML configuration. Values missing in the input keep
// their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
