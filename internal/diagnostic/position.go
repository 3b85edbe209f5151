package diagnostic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/drmayerson/FOORT-sub000/internal/raystate"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
)

// GeodesicPosition records the full trajectory of a geodesic, and its
// final (theta, phi) as the mesh comparison value. When OutputNrSteps is
// positive and smaller than the number of recorded points, the list is
// thinned at finish to every (len/OutputNrSteps)'th point with the final
// point kept last; the result can hold more than OutputNrSteps points.
// Grounded on
// GeodesicPositionDiagnostic.
type GeodesicPosition struct {
	Freq          UpdateFrequency
	OutputNrSteps int // 0 disables downsampling

	points []tensor.Point
}

// Update implements Diagnostic.
func (g *GeodesicPosition) Update(s *raystate.State, cause terminator.Cause) {
	if g.Freq.decideUpdate(s.Lambda, cause) {
		g.points = append(g.points, s.Pos)
	}
	if cause == terminator.Continue {
		return
	}
	if g.OutputNrSteps > 0 && g.OutputNrSteps < len(g.points) {
		jettison := len(g.points) / g.OutputNrSteps
		kept := make([]tensor.Point, 0, g.OutputNrSteps+1)
		for i, p := range g.points {
			if i%jettison == 0 {
				kept = append(kept, p)
			}
		}
		last := len(g.points) - 1
		if last%jettison != 0 {
			kept[len(kept)-1] = g.points[last]
		}
		g.points = kept
	}
}

// FinalDataString implements Diagnostic.
func (g *GeodesicPosition) FinalDataString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ;; ", len(g.points))
	for _, p := range g.points {
		for i := 0; i < tensor.Dim; i++ {
			fmt.Fprintf(&b, "%v ", p[i])
		}
	}
	return b.String()
}

// FinalDataValue implements Diagnostic: the last (theta, phi) reached.
func (g *GeodesicPosition) FinalDataValue() []float64 {
	if len(g.points) == 0 {
		return []float64{0, 0}
	}
	last := g.points[len(g.points)-1]
	return []float64{last[2], last[3]}
}

// Distance implements Diagnostic as the planar Euclidean distance
// between two (theta, phi) pairs. The original source's equivalent
// compared a value against itself (val1 against val1) rather than
// against val2 -- a defect in that implementation, not a behavior this
// diagnostic's mesh-comparison contract calls for, so it is corrected
// here.
func (g *GeodesicPosition) Distance(a, b []float64) float64 {
	if len(a) != 2 || len(b) != 2 {
		return 0
	}
	dTheta := a[0] - b[0]
	dPhi := a[1] - b[1]
	return math.Sqrt(dTheta*dTheta + dPhi*dPhi)
}

// Name implements Diagnostic.
func (g *GeodesicPosition) Name() string { return "GeodesicPosition" }

// Description implements Diagnostic.
func (g *GeodesicPosition) Description() string {
	return "Geodesic position (output " + strconv.Itoa(g.OutputNrSteps) +
		" steps, updates every " + strconv.FormatUint(g.Freq.NSteps, 10) + " steps)"
}
