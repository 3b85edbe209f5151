// Package terminator provides the fixed-order stopping conditions
// checked after every integration step of a geodesic: horizon capture,
// escape past a boundary sphere, and step-count timeout.
package terminator

import "github.com/drmayerson/FOORT-sub000/internal/raystate"

// Cause identifies why a geodesic stopped, or that it has not yet.
type Cause uint8

const (
	// Continue means no terminator has fired; integration proceeds.
	Continue Cause = iota
	Horizon
	BoundarySphere
	Singularity
	TimeOut
)

func (c Cause) String() string {
	switch c {
	case Continue:
		return "Continue"
	case Horizon:
		return "Horizon"
	case BoundarySphere:
		return "BoundarySphere"
	case Singularity:
		return "Singularity"
	case TimeOut:
		return "TimeOut"
	default:
		return "Unknown"
	}
}

// Terminator is satisfied by every stopping condition this engine
// checks. Like Metric and Source, it is a closed tagged-variant style
// surface: CreateTerminationVector in the original source builds a fixed
// ordered list of concrete terminators once per run, and that order is
// itself part of the contract (the first non-Continue cause wins).
type Terminator interface {
	Check(s *raystate.State) Cause
	Description() string
}

// decideUpdate gates how often an expensive termination check actually
// runs: the counter increments every call, and the check only proceeds
// once every n calls, resetting the counter on the step it fires. An n
// of 0 or 1 lets the check run on every call.
// Grounded on Termination::DecideUpdate.
func decideUpdate(n uint64, counter *uint64) bool {
	*counter++
	if *counter >= n {
		*counter = 0
		return true
	}
	return false
}
