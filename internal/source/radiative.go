package source

import "github.com/drmayerson/FOORT-sub000/internal/tensor"

// Radiative is a declared but unwired extension point for a disc-emission
// style forcing term (e.g. radiation drag from an accretion flow). The
// engine builder never constructs one: no scenario in this engine's scope
// calls for anything but vacuum geodesics, so Radiative exists purely to
// give a future forcing term a place to live without reshaping Source.
type Radiative struct {
	// Strength scales the (currently zero) forcing contribution.
	Strength float64
}

// At always returns the zero vector until a concrete emission model is
// implemented; present so Radiative satisfies Source today.
func (r Radiative) At(p tensor.Point, v tensor.OneIndex) tensor.OneIndex {
	return tensor.OneIndex{}
}

// Description implements Source.
func (r Radiative) Description() string { return "radiative (unimplemented)" }
