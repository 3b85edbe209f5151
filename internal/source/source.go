// Package source provides the right-hand-side forcing term of the
// geodesic equation, [Source(x,u)]^a, for non-vacuum spacetimes.
package source

import "github.com/drmayerson/FOORT-sub000/internal/tensor"

// Source is satisfied by every forcing term this engine can integrate
// against. It is a closed, tagged-variant style surface like Metric and
// Terminator: the hot integration loop calls it once per RK4 stage, so
// the set of concrete sources is fixed at engine-build time.
type Source interface {
	At(p tensor.Point, v tensor.OneIndex) tensor.OneIndex
	Description() string
}

// None is the vacuum source: the geodesic equation with no forcing
// term, used for every scenario spec.md describes (pure null geodesics
// in Kerr or flat space).
type None struct{}

// At implements Source; always returns the zero vector.
func (None) At(p tensor.Point, v tensor.OneIndex) tensor.OneIndex { return tensor.OneIndex{} }

// Description implements Source.
func (None) Description() string { return "vacuum (no source)" }
