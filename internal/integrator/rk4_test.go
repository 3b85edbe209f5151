package integrator

import (
	"math"
	"testing"

	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/source"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
)

func TestFlatSpaceRayTravelsInStraightLine(t *testing.T) {
	m := metric.NewFlatSpace()
	var rk RK4
	pos := tensor.Point{0, 50, math.Pi / 2, 0}
	// A radially ingoing null ray: dt/dl=1, dr/dl=-1, others 0.
	vel := tensor.OneIndex{1, -1, 0, 0}

	for i := 0; i < 200; i++ {
		pos, vel, _ = rk.Step(m, source.None{}, pos, vel)
	}
	if pos[2] != math.Pi/2 {
		t.Fatalf("theta drifted in flat space: %v", pos[2])
	}
	if pos[3] != 0 {
		t.Fatalf("phi drifted in flat space: %v", pos[3])
	}
}

func TestStepSizeRespectsHMin(t *testing.T) {
	pos := tensor.Point{0, 1, math.Pi / 2, 0}
	vel := tensor.OneIndex{1e10, 1e10, 1e10, 1e10}
	h := stepSize(pos, vel)
	if h < HMin {
		t.Fatalf("step size %v below floor %v", h, HMin)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	m := metric.NewKerr(0.9, false)
	var rk RK4
	pos := tensor.Point{0, 20, 1.3, 0}
	vel := tensor.OneIndex{1, -0.5, 0.01, 0.02}

	p1, v1, h1 := rk.Step(m, source.None{}, pos, vel)
	p2, v2, h2 := rk.Step(m, source.None{}, pos, vel)
	if p1 != p2 || v1 != v2 || h1 != h2 {
		t.Fatal("RK4 step is not deterministic for identical inputs")
	}
}
