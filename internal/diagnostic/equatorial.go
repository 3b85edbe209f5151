package diagnostic

import (
	"math"
	"strconv"

	"github.com/drmayerson/FOORT-sub000/internal/raystate"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
)

// EquatorialPasses counts how many times a geodesic has crossed the
// theta = pi/2 equatorial plane. Grounded on EquatorialPassesDiagnostic.
//
// prevTheta starts at -1, a value curTheta (always in [0, pi]) can never
// take, so the very first sample is guaranteed never to register as a
// crossing -- there being no previous side to have crossed from.
type EquatorialPasses struct {
	Freq UpdateFrequency

	prevTheta float64
	passes    int
}

// NewEquatorialPasses returns an EquatorialPasses diagnostic ready to
// track crossings from the first update onward.
func NewEquatorialPasses(freq UpdateFrequency) *EquatorialPasses {
	return &EquatorialPasses{Freq: freq, prevTheta: -1}
}

// Update implements Diagnostic.
func (e *EquatorialPasses) Update(s *raystate.State, cause terminator.Cause) {
	if !e.Freq.decideUpdate(s.Lambda, cause) {
		return
	}
	curTheta := s.Pos[2]
	if e.prevTheta > 0 && (e.prevTheta-math.Pi/2)*(curTheta-math.Pi/2) < 0 {
		e.passes++
	}
	e.prevTheta = curTheta
}

// FinalDataString implements Diagnostic.
func (e *EquatorialPasses) FinalDataString() string {
	return strconv.Itoa(e.passes)
}

// FinalDataValue implements Diagnostic.
func (e *EquatorialPasses) FinalDataValue() []float64 {
	return []float64{float64(e.passes)}
}

// Distance implements Diagnostic.
func (e *EquatorialPasses) Distance(a, b []float64) float64 {
	return math.Abs(a[0] - b[0])
}

// Name implements Diagnostic.
func (e *EquatorialPasses) Name() string { return "EquatPasses" }

// Description implements Diagnostic.
func (e *EquatorialPasses) Description() string { return "Equatorial passes" }
