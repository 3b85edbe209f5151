// Package viewscreen constructs the initial position and velocity of
// each null geodesic launched from a camera, using the asymptotic
// Carter-constant expressions of Cunningham & Bardeen (1973). Grounded
// on ViewScreen::SetNewInitialConditions.
package viewscreen

import (
	"math"

	"github.com/drmayerson/FOORT-sub000/internal/mesh"
	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
)

// Screen is a radially inward-pointing camera at a fixed position,
// sampling initial conditions for its rays from a Mesh.
type Screen struct {
	Metric       metric.Provider
	Pos          tensor.Point
	ScreenWidth  float64
	ScreenHeight float64
	Mesh         mesh.Mesh
}

// InitialConditionsFor returns the position, velocity and screen index
// of the queuePos'th pixel currently queued by the mesh.
//
// Only a camera pointed radially inward (toward decreasing r) is
// supported: the Cunningham & Bardeen expressions used here are valid
// asymptotically, for a camera far from the source, and assume the spin
// axis (if any) is the polar axis of the coordinate system.
func (s *Screen) InitialConditionsFor(queuePos int) (tensor.Point, tensor.OneIndex, mesh.Index) {
	unitPoint, screenIndex := s.Mesh.NextInitialPoint(queuePos)

	alpha := s.ScreenWidth * (unitPoint.U - 0.5)
	beta := s.ScreenHeight * (unitPoint.V - 0.5)

	cosTheta0 := math.Cos(s.Pos[2])
	sinTheta0 := math.Sin(s.Pos[2])

	// [CB] (28) inverted: q = beta^2 + (alpha^2-1)cos^2(theta0), lambda = -alpha sin(theta0).
	q := beta*beta + (alpha*alpha-1)*cosTheta0*cosTheta0
	lambda := -alpha * sinTheta0

	const energy = 1.0

	var pDown tensor.OneIndex
	pDown[0] = -energy
	pDown[3] = lambda * energy
	pDown[2] = tensor.Sign(beta) * energy * math.Sqrt(q-
		lambda*lambda*cosTheta0*cosTheta0/(sinTheta0*sinTheta0)+cosTheta0*cosTheta0)

	metricUU := s.Metric.MetricUU(s.Pos)
	var vel tensor.OneIndex
	for i := 0; i < tensor.Dim; i++ {
		vel[0] += metricUU[0][i] * pDown[i]
		vel[2] += metricUU[2][i] * pDown[i]
		vel[3] += metricUU[3][i] * pDown[i]
	}
	// The radial component is fixed by demanding the geodesic is null, with
	// the sign chosen so the ray points inward.
	vel[1] = -math.Sqrt(-metricUU[1][1] * (vel[0]*pDown[0] + vel[2]*pDown[2] + vel[3]*pDown[3]))

	return s.Pos, vel, screenIndex
}
