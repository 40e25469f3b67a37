/*
Package mapmeta reads the metadata of occupancy grid maps in the format of
the ROS map server, and relates map images to world coordinates.

A map consists of a YAML file and an image:

	image: office.pgm
	resolution: 0.05
	origin: [-10.0, -10.0, 0.0]
	negate: 0
	occupied_thresh: 0.65
	free_thresh: 0.196

Resolution is given in meters per pixel. Positions on a map displayed with
a scale factor s are converted to world coordinates by

	world = (p/s − size/2 + origin) · resolution

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mapmeta

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'mapmeta'
func tracer() tracing.Trace {
	return tracing.Select("mapmeta")
}

// ErrInvalidMetadata is returned for map metadata which cannot be used.
var ErrInvalidMetadata = errors.New("invalid map metadata")

// Interpretation modes of pixel values.
const (
	ModeTrinary = "trinary"
	ModeScale   = "scale"
	ModeRaw     = "raw"
)

// Metadata is the content of a map YAML file.
type Metadata struct {
	Image          string     `yaml:"image"`
	Resolution     float64    `yaml:"resolution"` // meters per pixel
	Origin         [3]float64 `yaml:"origin"`     // x, y, yaw
	Negate         int        `yaml:"negate"`
	OccupiedThresh float64    `yaml:"occupied_thresh"`
	FreeThresh     float64    `yaml:"free_thresh"`
	Mode           string     `yaml:"mode,omitempty"`
}

// Parse reads map metadata from YAML and validates it.
func Parse(r io.Reader) (*Metadata, error) {
	m := &Metadata{}
	if err := yaml.NewDecoder(r).Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidMetadata)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads map metadata from a file. A relative image path is resolved
// against the directory of the file.
func Load(name string) (*Metadata, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if m.Image != "" && !filepath.IsAbs(m.Image) {
		m.Image = filepath.Join(filepath.Dir(name), m.Image)
	}
	tracer().Infof("loaded map metadata %s, resolution %g m/px", name, m.Resolution)
	return m, nil
}

// Validate checks the metadata for values out of range.
func (m *Metadata) Validate() error {
	switch {
	case !(m.Resolution > 0) || math.IsInf(m.Resolution, 0):
		return fmt.Errorf("%w: resolution %g", ErrInvalidMetadata, m.Resolution)
	case m.Negate != 0 && m.Negate != 1:
		return fmt.Errorf("%w: negate %d", ErrInvalidMetadata, m.Negate)
	case m.OccupiedThresh < 0 || m.OccupiedThresh > 1:
		return fmt.Errorf("%w: occupied threshold %g", ErrInvalidMetadata, m.OccupiedThresh)
	case m.FreeThresh < 0 || m.FreeThresh > 1:
		return fmt.Errorf("%w: free threshold %g", ErrInvalidMetadata, m.FreeThresh)
	case m.OccupiedThresh > 0 && m.FreeThresh > m.OccupiedThresh:
		return fmt.Errorf("%w: free threshold above occupied threshold", ErrInvalidMetadata)
	}
	switch m.Mode {
	case "", ModeTrinary, ModeScale, ModeRaw:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidMetadata, m.Mode)
	}
	for _, v := range m.Origin {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: origin %v", ErrInvalidMetadata, m.Origin)
		}
	}
	return nil
}

// Encode writes the metadata as YAML.
func (m *Metadata) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding map metadata: %w", err)
	}
	return nil
}

// OriginPair returns the x and y components of the origin.
func (m *Metadata) OriginPair() navpath.Pair {
	return navpath.P(m.Origin[0], m.Origin[1])
}

// Transform returns the transform between display coordinates of a map
// image of size w × h, drawn with a scale factor of scale, and world
// coordinates in meters.
func (m *Metadata) Transform(w, h int, scale float64) (*navpath.Affine, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: image size %d×%d", ErrInvalidMetadata, w, h)
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("%w: display scale %g", navpath.ErrInvalidScale, scale)
	}
	half := navpath.P(float64(w)/2, float64(h)/2)
	offset := (m.OriginPair() - half).Scaled(m.Resolution)
	return navpath.NewAffine(m.Resolution/scale, offset)
}

// FitScale returns the largest display scale at which an image of size
// w × h fits into a view of size vw × vh.
func FitScale(w, h, vw, vh int) float64 {
	if w <= 0 || h <= 0 || vw <= 0 || vh <= 0 {
		return 1
	}
	return math.Min(float64(vw)/float64(w), float64(vh)/float64(h))
}
