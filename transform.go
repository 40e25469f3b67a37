package navpath

import (
	"errors"
	"fmt"
	"math"
)

// Transform maps between the display frame (pixels of the drawing surface)
// and the world frame (map units, usually meters).
//
// Implementations must be pure for the duration of an editing session:
// the same argument always yields the same result. A change of mapping,
// e.g. after reloading the background map, is an external event which
// invalidates display coordinates but not paths stored in world units.
type Transform interface {
	ToWorld(p Pair) Pair
	ToDisplay(p Pair) Pair
	ToWorldScalar(length float64) float64
}

// ErrInvalidScale flags a scale factor which is zero, negative or not a number.
var ErrInvalidScale = errors.New("transform scale must be positive")

// Affine is a Transform consisting of a uniform scale and a 2D offset:
//
//	world = display·scale + offset
//
// The zero value is not usable; create one with NewAffine.
type Affine struct {
	scale     float64
	offset    Pair
	toWorld   AT
	toDisplay AT
}

var _ Transform = (*Affine)(nil)

// NewAffine creates a display-to-world transform which scales display
// coordinates by scale and then shifts them by offset.
func NewAffine(scale float64, offset Pair) (*Affine, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidScale, scale)
	}
	if !offset.IsValid() {
		return nil, fmt.Errorf("invalid transform offset %v", offset)
	}
	m := Scaling(scale, scale).Combine(Translation(offset))
	inv, err := m.Inverse()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("new display->world transform %s", m)
	return &Affine{
		scale:     scale,
		offset:    offset,
		toWorld:   m,
		toDisplay: inv,
	}, nil
}

// MustAffine is like NewAffine, but panics on invalid arguments.
func MustAffine(scale float64, offset Pair) *Affine {
	a, err := NewAffine(scale, offset)
	if err != nil {
		panic(err)
	}
	return a
}

// IdentityTransform returns a transform where display and world frame coincide.
func IdentityTransform() *Affine {
	return MustAffine(1, Origin)
}

// Scale is the length of one display unit in world units.
func (a *Affine) Scale() float64 {
	return a.scale
}

// Offset is the world position of the display origin.
func (a *Affine) Offset() Pair {
	return a.offset
}

// ToWorld maps a display point to world coordinates.
func (a *Affine) ToWorld(p Pair) Pair {
	return a.toWorld.Transform(p)
}

// ToDisplay maps a world point to display coordinates.
func (a *Affine) ToDisplay(p Pair) Pair {
	return a.toDisplay.Transform(p)
}

// ToWorldScalar maps a length in display units to a length in world units.
func (a *Affine) ToWorldScalar(length float64) float64 {
	return length * a.scale
}

func (a *Affine) String() string {
	return fmt.Sprintf("affine(scale=%g, offset=%v)", a.scale, a.offset)
}
