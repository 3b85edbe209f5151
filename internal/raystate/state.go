// Package raystate holds the mutable per-geodesic state that
// terminators and diagnostics read and write. It exists as its own
// package (rather than living on internal/geodesic.Ray directly) so
// that internal/terminator and internal/diagnostic can depend on the
// state shape without importing internal/geodesic, which itself depends
// on both of them.
package raystate

import (
	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
)

// ScreenIndex identifies a pixel's row/column on the view screen.
type ScreenIndex struct {
	Row, Col int
}

// State is the full mutable state of one geodesic being integrated.
type State struct {
	Pos   tensor.Point
	Vel   tensor.OneIndex
	Lambda float64 // affine parameter accumulated so far
	Step   uint64  // number of integration steps taken

	Index ScreenIndex

	// Metric is exposed read-only so terminators/diagnostics that need
	// metric-dependent quantities (e.g. the horizon radius) can reach it
	// without the engine threading that value through every call.
	Metric metric.Provider
}
