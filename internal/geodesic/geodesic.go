// Package geodesic implements the ray actor: the mutable, per-geodesic
// state machine that owns one null geodesic's integration, running its
// registered terminators and diagnostics in a fixed order after every
// step. Grounded on Geodesic::Update in the original source and on the
// teacher's Spacecraft as the mutable, logger-carrying per-entity actor
// whose Accelerate method walks its own ordered collaborator lists
// (WayPoints, EPThrusters) exactly the way Advance walks terminators
// then diagnostics here.
package geodesic

import (
	"strconv"

	"github.com/drmayerson/FOORT-sub000/internal/diagnostic"
	"github.com/drmayerson/FOORT-sub000/internal/integrator"
	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/raystate"
	"github.com/drmayerson/FOORT-sub000/internal/source"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
)

// Ray is one geodesic being integrated toward a termination condition.
type Ray struct {
	state raystate.State

	metric      metric.Provider
	source      source.Source
	integrator  integrator.RK4
	terminators []terminator.Terminator
	diagnostics []diagnostic.Diagnostic

	cause terminator.Cause
}

// New builds a Ray ready to integrate from the given initial conditions.
// terminators and diagnostics are stored (and later iterated) in the
// order given -- that order is part of the contract: the first
// terminator to report a non-Continue cause wins.
func New(m metric.Provider, src source.Source, pos tensor.Point, vel tensor.OneIndex, index raystate.ScreenIndex, terminators []terminator.Terminator, diagnostics []diagnostic.Diagnostic) *Ray {
	r := &Ray{
		metric:      m,
		source:      src,
		terminators: terminators,
		diagnostics: diagnostics,
	}
	r.state = raystate.State{Pos: pos, Vel: vel, Index: index, Metric: m}
	for _, d := range r.diagnostics {
		d.Update(&r.state, terminator.Continue)
	}
	return r
}

// Advance integrates one RK4 step, evaluates every registered
// terminator in order (first non-Continue wins, with the metric's own
// InternalTerminate check taking priority over all of them since it
// guards against evaluating the Christoffel symbols somewhere the
// metric cannot represent), then updates every diagnostic unconditionally.
// Grounded on Geodesic::Update.
func (r *Ray) Advance() terminator.Cause {
	newPos, newVel, step := r.integrator.Step(r.metric, r.source, r.state.Pos, r.state.Vel)
	r.state.Lambda += step
	r.state.Pos = newPos
	r.state.Vel = newVel
	r.state.Step++

	r.cause = terminator.Continue
	if r.metric.InternalTerminate(r.state.Pos) {
		r.cause = terminator.Singularity
	} else {
		for _, t := range r.terminators {
			if c := t.Check(&r.state); c != terminator.Continue {
				r.cause = c
				break
			}
		}
	}

	for _, d := range r.diagnostics {
		d.Update(&r.state, r.cause)
	}

	return r.cause
}

// Finished reports whether a prior Advance produced a non-Continue cause.
func (r *Ray) Finished() bool { return r.cause != terminator.Continue }

// TermCondition returns the current termination cause.
func (r *Ray) TermCondition() terminator.Cause { return r.cause }

// CurrentPos returns the current position.
func (r *Ray) CurrentPos() tensor.Point { return r.state.Pos }

// CurrentVel returns the current velocity.
func (r *Ray) CurrentVel() tensor.OneIndex { return r.state.Vel }

// CurrentLambda returns the affine parameter accumulated so far.
func (r *Ray) CurrentLambda() float64 { return r.state.Lambda }

// ScreenIndex returns the pixel this ray was launched from.
func (r *Ray) ScreenIndex() raystate.ScreenIndex { return r.state.Index }

// FinalRecord returns, for a terminated ray, the screen index string
// followed by each diagnostic's full data string, in registration
// order. Grounded on Geodesic::getAllOutputStr.
func (r *Ray) FinalRecord() []string {
	out := make([]string, 0, len(r.diagnostics)+1)
	out = append(out, screenIndexString(r.state.Index))
	for _, d := range r.diagnostics {
		out = append(out, d.FinalDataString())
	}
	return out
}

// FinalValue returns the mesh-comparison value of the first registered
// diagnostic -- the "value diagnostic" rotated to the front at engine
// build time. Grounded on Geodesic::getDiagnosticFinalValue.
func (r *Ray) FinalValue() []float64 {
	if len(r.diagnostics) == 0 {
		return nil
	}
	return r.diagnostics[0].FinalDataValue()
}

func screenIndexString(idx raystate.ScreenIndex) string {
	return strconv.Itoa(idx.Row) + " " + strconv.Itoa(idx.Col) + " "
}
