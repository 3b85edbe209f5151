package metric

import (
	"math"

	"github.com/drmayerson/FOORT-sub000/internal/tensor"
)

// FlatSpace is Minkowski space in spherical coordinates, used mostly as
// a sanity-check metric: straight-line null geodesics with no bending.
// Grounded on FlatSpaceMetric in the original source.
type FlatSpace struct {
	base
}

// NewFlatSpace builds a flat-space metric.
func NewFlatSpace() *FlatSpace {
	f := &FlatSpace{}
	f.base = newBase([]int{0, 3}, f.metricDD, f.metricUU)
	return f
}

func (f *FlatSpace) metricDD(p tensor.Point) tensor.TwoIndex {
	r := p[1]
	sint := math.Sin(p[2])
	var g tensor.TwoIndex
	g[0][0] = -1
	g[1][1] = 1
	g[2][2] = r * r
	g[3][3] = r * r * sint * sint
	return g
}

func (f *FlatSpace) metricUU(p tensor.Point) tensor.TwoIndex {
	r := p[1]
	sint := math.Sin(p[2])
	var g tensor.TwoIndex
	g[0][0] = -1
	g[1][1] = 1
	g[2][2] = 1 / (r * r)
	g[3][3] = 1 / (r * r * sint * sint)
	return g
}

// MetricDD implements Provider.
func (f *FlatSpace) MetricDD(p tensor.Point) tensor.TwoIndex { return f.metricDD(p) }

// MetricUU implements Provider.
func (f *FlatSpace) MetricUU(p tensor.Point) tensor.TwoIndex { return f.metricUU(p) }

// InternalTerminate is always false: flat space has no horizon.
func (f *FlatSpace) InternalTerminate(p tensor.Point) bool { return false }

// Description implements Provider.
func (f *FlatSpace) Description() string { return "Flat space" }
