// Package diagnostic provides the open extension point for data
// gathered along a geodesic: the mesh only needs a distance between two
// geodesics' final diagnostic values, so new diagnostics can be added
// without the mesh or driver ever changing.
package diagnostic

import (
	"github.com/drmayerson/FOORT-sub000/internal/raystate"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
)

// UpdateFrequency gates how often a diagnostic's Update is allowed to
// record new data: every n steps, and/or only at the start and/or
// finish of the geodesic's integration. Grounded on
// Diagnostic::DecideUpdate and the Update_OnlyStart /
// Update_OnlyFinish / Update_OnlyStartAndFinish sentinels in the
// original source.
type UpdateFrequency struct {
	NSteps  uint64 // 0 disables step-based updates
	OnStart bool
	OnFinish bool

	stepsSinceLast uint64
}

// decideUpdate implements the three-way branch of Diagnostic::DecideUpdate:
// start, then finish, then step-counter -- in that order, each one
// independently able to trigger an update.
func (u *UpdateFrequency) decideUpdate(lambda float64, cause terminator.Cause) bool {
	if u.OnStart && lambda == 0 {
		return true
	}
	if u.OnFinish && cause != terminator.Continue {
		return true
	}
	if u.NSteps > 0 {
		u.stepsSinceLast++
		if u.stepsSinceLast >= u.NSteps {
			u.stepsSinceLast = 0
			return true
		}
	}
	return false
}

// Diagnostic is satisfied by every quantity tracked along a geodesic.
// Unlike Metric/Source/Terminator, this is an open interface: new
// diagnostics are expected to be added without touching the mesh,
// driver or ray actor.
type Diagnostic interface {
	// Update is called once per integration step (including the very
	// first, pre-integration state) with the ray's current state and
	// its current termination cause (Continue while still integrating).
	Update(s *raystate.State, cause terminator.Cause)
	// FinalDataString renders the accumulated data for file output.
	FinalDataString() string
	// FinalDataValue returns the data used for mesh-weight distance
	// comparisons between neighboring pixels.
	FinalDataValue() []float64
	// Distance computes the mesh comparison distance between two
	// FinalDataValue results (not necessarily from this instance).
	Distance(a, b []float64) float64
	// Name is the short diagnostic identifier used in file names.
	Name() string
	Description() string
}
