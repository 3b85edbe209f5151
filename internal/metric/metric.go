// Package metric provides the spacetime metric providers FOORT integrates
// geodesics through: the two-index metric itself, its inverse, and the
// Christoffel symbols derived from it by symmetry-aware central
// differencing.
//
// Metric, Source and Terminator are all closed, tagged-variant style
// dispatch surfaces rather than open interfaces: the set of concrete
// providers is small, fixed at engine-build time, and sits on the
// integrator's hot path, so a handful of concrete structs satisfying a
// narrow interface -- chosen once and never type-switched again --
// outperforms both naive virtual dispatch and an open plugin registry.
package metric

import "github.com/drmayerson/FOORT-sub000/internal/tensor"

// DerivativeH is the central-difference step used to numerically
// differentiate the metric when computing Christoffel symbols.
const DerivativeH = 1e-5

// Provider is satisfied by every metric this engine can integrate
// geodesics through.
type Provider interface {
	MetricDD(p tensor.Point) tensor.TwoIndex
	MetricUU(p tensor.Point) tensor.TwoIndex
	ChristoffelUDD(p tensor.Point) tensor.ThreeIndex
	// InternalTerminate reports whether p has crossed into a region the
	// metric itself considers untraceable (e.g. inside a coordinate
	// singularity), independent of any configured terminator.
	InternalTerminate(p tensor.Point) bool
	Description() string
}

// base is embedded by every concrete Provider and supplies the shared
// Christoffel-by-finite-difference machinery, following the teacher's
// GenericCL-embedded-in-ThrustControl pattern: a small shared struct
// holding common state, embedded into each concrete variant so it only
// has to implement the few methods that are actually metric-specific.
type base struct {
	// symmetries lists the coordinate indices along which the metric is
	// independent of that coordinate (Killing vectors), so the central
	// difference in that direction can be skipped entirely.
	symmetries [tensor.Dim]bool
	metricDD   func(tensor.Point) tensor.TwoIndex
	metricUU   func(tensor.Point) tensor.TwoIndex
}

func newBase(symmetries []int, dd, uu func(tensor.Point) tensor.TwoIndex) base {
	var b base
	for _, s := range symmetries {
		b.symmetries[s] = true
	}
	b.metricDD = dd
	b.metricUU = uu
	return b
}

// ChristoffelUDD computes Gamma^mu_{nu rho} at p via central differencing
// of the metric, skipping coordinates along which the metric has a
// declared symmetry. Grounded on Metric::getChristoffel_udd.
func (b base) ChristoffelUDD(p tensor.Point) tensor.ThreeIndex {
	var metricDDDer tensor.ThreeIndex
	for coord := 0; coord < tensor.Dim; coord++ {
		if b.symmetries[coord] {
			continue
		}
		var shift tensor.Point
		shift[coord] = DerivativeH
		plus := b.metricDD(addPoint(p, shift))
		minus := b.metricDD(subPoint(p, shift))
		for i := 0; i < tensor.Dim; i++ {
			for j := 0; j < tensor.Dim; j++ {
				metricDDDer[coord][i][j] = (plus[i][j] - minus[i][j]) / (2 * DerivativeH)
			}
		}
	}

	metricUU := b.metricUU(p)

	var gamma tensor.ThreeIndex
	for mu := 0; mu < tensor.Dim; mu++ {
		for nu := 0; nu < tensor.Dim; nu++ {
			for rho := 0; rho < tensor.Dim; rho++ {
				var sum float64
				for sigma := 0; sigma < tensor.Dim; sigma++ {
					sum += metricUU[mu][sigma] * (metricDDDer[nu][rho][sigma] +
						metricDDDer[rho][nu][sigma] - metricDDDer[sigma][nu][rho])
				}
				gamma[mu][nu][rho] = 0.5 * sum
			}
		}
	}
	return gamma
}

func addPoint(p, shift tensor.Point) tensor.Point {
	var r tensor.Point
	for i := range p {
		r[i] = p[i] + shift[i]
	}
	return r
}

func subPoint(p, shift tensor.Point) tensor.Point {
	var r tensor.Point
	for i := range p {
		r[i] = p[i] - shift[i]
	}
	return r
}
