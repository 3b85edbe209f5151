// Package tensor provides the small fixed-size vectors and tensors used
// throughout FOORT's four-dimensional spacetime geometry: points,
// one-index (vector) objects, and the two/three/four-index objects that
// the metric and Christoffel symbols are built from.
package tensor

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// Dim is the dimensionality of the spacetimes this package supports.
const Dim = 4

const equalEps = 1e-12

// Point is a coordinate four-tuple (t, r or ln r, θ, φ).
type Point [Dim]float64

// OneIndex is a contravariant (or covariant) four-vector, e.g. dx^mu/dlambda.
type OneIndex [Dim]float64

// TwoIndex is a rank-2 object such as the metric g_{mu nu}.
type TwoIndex [Dim][Dim]float64

// ThreeIndex is a rank-3 object such as the Christoffel symbols Gamma^a_{bc}.
type ThreeIndex [Dim][Dim][Dim]float64

// FourIndex is a rank-4 object such as the Riemann tensor (unused by the
// current diagnostics, kept because Metric providers may compute it for
// curvature-based terminators).
type FourIndex [Dim][Dim][Dim][Dim]float64

// Add returns the elementwise sum of two one-index objects.
func (a OneIndex) Add(b OneIndex) OneIndex {
	var r OneIndex
	for i := 0; i < Dim; i++ {
		r[i] = a[i] + b[i]
	}
	return r
}

// Scale returns a scaled by s.
func (a OneIndex) Scale(s float64) OneIndex {
	var r OneIndex
	for i := 0; i < Dim; i++ {
		r[i] = a[i] * s
	}
	return r
}

// Norm3 returns the Euclidean norm of the spatial (index 1..3) part of
// v, not the spacetime interval.
func Norm3(v OneIndex) float64 {
	return math.Sqrt(v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// Sign returns the sign of v, treating 0 as positive. Grounded on the
// teacher's Sign helper in math.go.
func Sign(v float64) float64 {
	if EqualWithinAbs(v, 0) {
		return 1
	}
	return v / math.Abs(v)
}

// EqualWithinAbs reports whether a and b are equal within the package's
// default absolute tolerance, mirroring the teacher's use of
// gonum/floats for every epsilon comparison instead of hand-rolled
// math.Abs(a-b) < eps checks.
func EqualWithinAbs(a, b float64) bool {
	return floats.EqualWithinAbs(a, b, equalEps)
}

// String implements fmt.Stringer for debug logging.
func (p Point) String() string {
	return fmt.Sprintf("(t=%.6g, r=%.6g, th=%.6g, ph=%.6g)", p[0], p[1], p[2], p[3])
}

// String implements fmt.Stringer for debug logging.
func (v OneIndex) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g, %.6g)", v[0], v[1], v[2], v[3])
}

// Contract lowers a OneIndex with a TwoIndex: result_mu = sum_nu g_{mu nu} v^nu.
func Contract(g TwoIndex, v OneIndex) OneIndex {
	var r OneIndex
	for mu := 0; mu < Dim; mu++ {
		for nu := 0; nu < Dim; nu++ {
			r[mu] += g[mu][nu] * v[nu]
		}
	}
	return r
}

// QuadraticForm returns v^T g v, the spacetime interval ds^2 along v.
func QuadraticForm(g TwoIndex, v OneIndex) float64 {
	var sum float64
	for mu := 0; mu < Dim; mu++ {
		for nu := 0; nu < Dim; nu++ {
			sum += g[mu][nu] * v[mu] * v[nu]
		}
	}
	return sum
}
