package diagnostic

import (
	"math"
	"strconv"

	"github.com/drmayerson/FOORT-sub000/internal/raystate"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
)

// FourColorScreen records which of the four screen quadrants a geodesic
// that escaped to the boundary sphere ended up in, for a cheap visual
// sanity check. Grounded on FourColorScreenDiagnostic.
type FourColorScreen struct {
	Freq UpdateFrequency

	quadrant int
}

// Update implements Diagnostic.
func (f *FourColorScreen) Update(s *raystate.State, cause terminator.Cause) {
	if !f.Freq.decideUpdate(s.Lambda, cause) {
		return
	}
	if cause != terminator.BoundarySphere {
		return
	}
	phi := s.Pos[3]
	for phi > 2*math.Pi {
		phi -= 2 * math.Pi
	}
	for phi < 0 {
		phi += 2 * math.Pi
	}

	theta := s.Pos[2]
	var quadrant int
	switch {
	case theta < math.Pi/2 && phi < math.Pi:
		quadrant = 1
	case theta < math.Pi/2:
		quadrant = 2
	case phi < math.Pi:
		quadrant = 3
	default:
		quadrant = 4
	}
	f.quadrant = quadrant
}

// FinalDataString implements Diagnostic.
func (f *FourColorScreen) FinalDataString() string {
	return strconv.Itoa(f.quadrant)
}

// FinalDataValue implements Diagnostic.
func (f *FourColorScreen) FinalDataValue() []float64 {
	return []float64{float64(f.quadrant)}
}

// Distance implements Diagnostic: a discrete metric, 0 if the quadrants
// match, 1 otherwise.
func (f *FourColorScreen) Distance(a, b []float64) float64 {
	if math.Abs(a[0]-b[0]) < 1 {
		return 0
	}
	return 1
}

// Name implements Diagnostic.
func (f *FourColorScreen) Name() string { return "FourColorScreen" }

// Description implements Diagnostic.
func (f *FourColorScreen) Description() string { return "Four-color screen" }
