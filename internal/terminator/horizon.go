package terminator

import (
	"fmt"
	"math"

	"github.com/drmayerson/FOORT-sub000/internal/raystate"
)

// HorizonTerminator fires once the geodesic's radial coordinate has
// fallen within (1+AtHorizonEps) times the metric's horizon radius.
// Grounded on HorizonTermination::CheckTermination.
type HorizonTerminator struct {
	HorizonRadius  float64
	AtHorizonEps   float64
	LogRadial      bool
	UpdateEveryN   uint64
	stepsSinceLast uint64
}

// Check implements Terminator.
func (h *HorizonTerminator) Check(s *raystate.State) Cause {
	if !decideUpdate(h.UpdateEveryN, &h.stepsSinceLast) {
		return Continue
	}
	r := s.Pos[1]
	if h.LogRadial {
		r = math.Exp(r)
	}
	if r < h.HorizonRadius*(1+h.AtHorizonEps) {
		return Horizon
	}
	return Continue
}

// Description implements Terminator.
func (h *HorizonTerminator) Description() string {
	return fmt.Sprintf("Horizon (stop at %vx(horizon radius))", 1+h.AtHorizonEps)
}
