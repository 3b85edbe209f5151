package terminator

import (
	"fmt"

	"github.com/drmayerson/FOORT-sub000/internal/raystate"
)

// BoundarySphereTerminator fires once the geodesic's radial coordinate
// has passed a configured escape radius. Grounded on
// BoundarySphereTermination::CheckTermination.
type BoundarySphereTerminator struct {
	SphereRadius   float64
	UpdateEveryN   uint64
	stepsSinceLast uint64
}

// Check implements Terminator.
func (b *BoundarySphereTerminator) Check(s *raystate.State) Cause {
	if !decideUpdate(b.UpdateEveryN, &b.stepsSinceLast) {
		return Continue
	}
	if s.Pos[1] > b.SphereRadius {
		return BoundarySphere
	}
	return Continue
}

// Description implements Terminator.
func (b *BoundarySphereTerminator) Description() string {
	return fmt.Sprintf("Boundary sphere (R = %v)", b.SphereRadius)
}
