package terminator

import (
	"fmt"

	"github.com/drmayerson/FOORT-sub000/internal/raystate"
)

// TimeOutTerminator fires once a geodesic has taken its maximum allowed
// number of integration steps. Grounded on TimeOutTermination::CheckTermination.
type TimeOutTerminator struct {
	MaxSteps       uint64
	UpdateEveryN   uint64
	stepsSinceLast uint64
}

// Check implements Terminator.
func (to *TimeOutTerminator) Check(s *raystate.State) Cause {
	if !decideUpdate(to.UpdateEveryN, &to.stepsSinceLast) {
		return Continue
	}
	if s.Step >= to.MaxSteps {
		return TimeOut
	}
	return Continue
}

// Description implements Terminator.
func (to *TimeOutTerminator) Description() string {
	return fmt.Sprintf("Time out (max integration steps: %d)", to.MaxSteps)
}
