package viewscreen

import (
	"math"
	"testing"

	"github.com/drmayerson/FOORT-sub000/internal/mesh"
	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
)

func TestInitialConditionsProduceNullGeodesic(t *testing.T) {
	m := metric.NewKerr(0.5, false)
	msh := mesh.NewSimpleSquareMesh(5)
	s := &Screen{
		Metric:       m,
		Pos:          tensor.Point{0, 1000, math.Pi / 2, 0},
		ScreenWidth:  20,
		ScreenHeight: 20,
		Mesh:         msh,
	}

	pos, vel, _ := s.InitialConditionsFor(0)
	g := m.MetricDD(pos)
	interval := tensor.QuadraticForm(g, vel)
	if math.Abs(interval) > 1e-6 {
		t.Fatalf("initial velocity is not null: ds^2 = %v", interval)
	}
}

func TestInitialConditionsPointInward(t *testing.T) {
	m := metric.NewKerr(0, false)
	msh := mesh.NewSimpleSquareMesh(5)
	s := &Screen{Metric: m, Pos: tensor.Point{0, 1000, math.Pi / 2, 0}, ScreenWidth: 20, ScreenHeight: 20, Mesh: msh}

	_, vel, _ := s.InitialConditionsFor(0)
	if vel[1] >= 0 {
		t.Fatalf("expected inward (negative) radial velocity, got %v", vel[1])
	}
}
