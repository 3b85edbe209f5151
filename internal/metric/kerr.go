package metric

import (
	"fmt"
	"math"

	"github.com/drmayerson/FOORT-sub000/internal/tensor"
)

// Kerr is the rotating black hole metric in Boyer-Lindquist-like
// coordinates, parameterized by spin a (0 <= a <= 1 in units of M=1).
// Grounded on KerrMetric in the original source.
type Kerr struct {
	base
	sphericalHorizon
	A float64
}

// NewKerr builds a Kerr metric with spin parameter a and the given
// radial-coordinate convention.
func NewKerr(a float64, logRadial bool) *Kerr {
	k := &Kerr{A: a}
	k.sphericalHorizon = sphericalHorizon{
		horizonRadius: 1 + math.Sqrt(1-a*a),
		logRadial:     logRadial,
	}
	// Kerr has Killing vectors along t (index 0) and phi (index 3).
	k.base = newBase([]int{0, 3}, k.metricDD, k.metricUU)
	return k
}

func (k *Kerr) metricDD(p tensor.Point) tensor.TwoIndex {
	r := k.radialCoordinate(p[1])
	theta := p[2]
	sint, cost := math.Sincos(theta)
	sigma := r*r + k.A*k.A*cost*cost
	delta := r*r + k.A*k.A - 2*r
	bigA := (r*r+k.A*k.A)*(r*r+k.A*k.A) - delta*k.A*k.A*sint*sint

	g00 := -(1 - 2*r/sigma)
	g11 := sigma / delta
	g22 := sigma
	g33 := bigA / sigma * sint * sint
	g03 := -2 * k.A * r * sint * sint / sigma

	if k.logRadial {
		g11 *= r * r
	}

	var g tensor.TwoIndex
	g[0][0], g[0][3] = g00, g03
	g[1][1] = g11
	g[2][2] = g22
	g[3][0], g[3][3] = g03, g33
	return g
}

func (k *Kerr) metricUU(p tensor.Point) tensor.TwoIndex {
	r := k.radialCoordinate(p[1])
	theta := p[2]
	sint, cost := math.Sincos(theta)
	sigma := r*r + k.A*k.A*cost*cost
	delta := r*r + k.A*k.A - 2*r
	bigA := (r*r+k.A*k.A)*(r*r+k.A*k.A) - delta*k.A*k.A*sint*sint

	g00 := -bigA / (sigma * delta)
	g11 := delta / sigma
	g22 := 1 / sigma
	g33 := (delta - k.A*k.A*sint*sint) / (sigma * delta * sint * sint)
	g03 := -2 * k.A * r / (sigma * delta)

	if k.logRadial {
		g11 /= r * r
	}

	var g tensor.TwoIndex
	g[0][0], g[0][3] = g00, g03
	g[1][1] = g11
	g[2][2] = g22
	g[3][0], g[3][3] = g03, g33
	return g
}

// MetricDD implements Provider.
func (k *Kerr) MetricDD(p tensor.Point) tensor.TwoIndex { return k.metricDD(p) }

// MetricUU implements Provider.
func (k *Kerr) MetricUU(p tensor.Point) tensor.TwoIndex { return k.metricUU(p) }

// InternalTerminate reports whether p has fallen inside (or onto) the
// horizon -- the metric's own termination condition, independent of any
// configured terminator.
func (k *Kerr) InternalTerminate(p tensor.Point) bool {
	return k.radialCoordinate(p[1]) <= k.HorizonRadius()
}

// Description implements Provider.
func (k *Kerr) Description() string {
	scale := "using normal r coord"
	if k.logRadial {
		scale = "using logarithmic r coord"
	}
	return fmt.Sprintf("Kerr (a = %v, %s)", k.A, scale)
}
