// Package integrator advances a single geodesic by one adaptive-step
// fourth-order Runge-Kutta step, grounded on Integrators::IntegrateGeodesicStep_RK4
// in the original source and on the teacher's ode.Integrable-driven
// propagation style in mission.go (here reshaped into a single externally
// driven Step, since the ray actor -- not the integrator -- owns the
// termination loop and must inspect state after every step).
package integrator

import (
	"math"

	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/source"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
)

// Tuning constants for the adaptive step-size formula (Noble et al. 2007,
// Dolence et al. 2009, as used by Raptor and by the original source).
const (
	Epsilon     = 0.03
	DeltaNoDiv0 = 1e-20
	HMin        = 1e-12
)

// RK4 advances geodesics with an adaptive affine-parameter step size.
type RK4 struct{}

// Step advances (pos, vel) by one adaptive RK4 step under metric m and
// forcing source src, and returns the new position, velocity and the
// step size (in affine parameter) actually taken.
func (RK4) Step(m metric.Provider, src source.Source, pos tensor.Point, vel tensor.OneIndex) (tensor.Point, tensor.OneIndex, float64) {
	h := stepSize(pos, vel)

	rhs := func(p tensor.Point, v tensor.OneIndex) tensor.OneIndex {
		christ := m.ChristoffelUDD(p)
		ret := src.At(p, v)
		for i := 0; i < tensor.Dim; i++ {
			for j := 0; j < tensor.Dim; j++ {
				for k := 0; k < tensor.Dim; k++ {
					ret[i] -= christ[i][j][k] * v[j] * v[k]
				}
			}
		}
		return ret
	}

	k1 := rhs(pos, vel)
	l1 := vel

	k2 := rhs(addScaled(pos, l1, 0.5*h), addScaled(vel, k1, 0.5*h))
	l2 := addScaled(vel, k1, 0.5*h)

	k3 := rhs(addScaled(pos, l2, 0.5*h), addScaled(vel, k2, 0.5*h))
	l3 := addScaled(vel, k2, 0.5*h)

	k4 := rhs(addScaled(pos, l3, h), addScaled(vel, k3, h))
	l4 := addScaled(vel, k3, h)

	nextVel := sumRK(vel, k1, k2, k3, k4, h)
	nextPos := sumRKPos(pos, l1, l2, l3, l4, h)

	return nextPos, nextVel, h
}

// stepSize implements the adaptive affine-parameter step formula,
// eqs (21)-(24) of Raptor, as used verbatim by the original source.
func stepSize(pos tensor.Point, vel tensor.OneIndex) float64 {
	dx1 := Epsilon / (math.Abs(vel[1]) + DeltaNoDiv0)
	dx2 := Epsilon * math.Min(pos[2], math.Pi-pos[2]) / (math.Abs(vel[2]) + DeltaNoDiv0)
	dx3 := Epsilon / (math.Abs(vel[3]) + DeltaNoDiv0)

	h := 1 / (1/math.Abs(dx1) + 1/math.Abs(dx2) + 1/math.Abs(dx3))
	return math.Max(h, HMin)
}

func addScaled(p tensor.Point, v tensor.OneIndex, h float64) tensor.Point {
	var r tensor.Point
	for i := range p {
		r[i] = p[i] + h*v[i]
	}
	return r
}

func sumRK(v tensor.OneIndex, k1, k2, k3, k4 tensor.OneIndex, h float64) tensor.OneIndex {
	var r tensor.OneIndex
	for i := range v {
		r[i] = v[i] + h/6.0*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return r
}

func sumRKPos(p tensor.Point, l1, l2, l3, l4 tensor.OneIndex, h float64) tensor.Point {
	var r tensor.Point
	for i := range p {
		r[i] = p[i] + h/6.0*(l1[i]+2*l2[i]+2*l3[i]+l4[i])
	}
	return r
}
