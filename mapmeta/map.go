package mapmeta

import (
	"fmt"
	"image"

	"github.com/npillmayer/navpath"
)

// Map is a map image together with its metadata.
type Map struct {
	Meta  *Metadata
	Image image.Image
}

// NewMap combines metadata and an image.
func NewMap(meta *Metadata, img image.Image) (*Map, error) {
	if meta == nil || img == nil {
		return nil, fmt.Errorf("%w: map needs metadata and image", ErrInvalidMetadata)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%w: empty map image", ErrInvalidMetadata)
	}
	return &Map{Meta: meta, Image: img}, nil
}

// LoadMap reads a map YAML file and the image it references.
func LoadMap(name string) (*Map, error) {
	meta, err := Load(name)
	if err != nil {
		return nil, err
	}
	img, err := LoadImage(meta.Image)
	if err != nil {
		return nil, err
	}
	return NewMap(meta, img)
}

// Size returns the image dimensions in pixels.
func (mp *Map) Size() (int, int) {
	b := mp.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Transform returns the display transform for the map drawn with scale.
func (mp *Map) Transform(scale float64) (*navpath.Affine, error) {
	w, h := mp.Size()
	return mp.Meta.Transform(w, h, scale)
}
