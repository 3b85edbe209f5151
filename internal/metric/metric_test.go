package metric

import (
	"math"
	"testing"

	"github.com/drmayerson/FOORT-sub000/internal/tensor"
)

func TestFlatSpaceMetricIsInverseOfItself(t *testing.T) {
	f := NewFlatSpace()
	p := tensor.Point{0, 3, 1.2, 0.4}
	dd := f.MetricDD(p)
	uu := f.MetricUU(p)
	for mu := 0; mu < tensor.Dim; mu++ {
		if !tensor.EqualWithinAbs(dd[mu][mu]*uu[mu][mu], 1) {
			t.Fatalf("g_%d%d * g^%d%d = %v, want 1", mu, mu, mu, mu, dd[mu][mu]*uu[mu][mu])
		}
	}
}

func TestFlatSpaceChristoffelMatchesSphericalClosedForm(t *testing.T) {
	f := NewFlatSpace()
	r, theta := 1e6, 1.2
	p := tensor.Point{0, r, theta, 0.4}
	gamma := f.ChristoffelUDD(p)

	// Flat space in spherical coordinates: the only non-zero symbols.
	sint, cost := math.Sincos(theta)
	var want tensor.ThreeIndex
	want[1][2][2] = -r
	want[1][3][3] = -r * sint * sint
	want[2][1][2], want[2][2][1] = 1/r, 1/r
	want[2][3][3] = -sint * cost
	want[3][1][3], want[3][3][1] = 1/r, 1/r
	want[3][2][3], want[3][3][2] = cost/sint, cost/sint

	for mu := 0; mu < tensor.Dim; mu++ {
		for nu := 0; nu < tensor.Dim; nu++ {
			for rho := 0; rho < tensor.Dim; rho++ {
				v, w := gamma[mu][nu][rho], want[mu][nu][rho]
				if math.Abs(v-w) > 1e-3*math.Max(1, math.Abs(w)) {
					t.Fatalf("Gamma^%d_%d%d = %v, want %v", mu, nu, rho, v, w)
				}
			}
		}
	}
}

func TestKerrHorizonRadius(t *testing.T) {
	k := NewKerr(0, false)
	if k.HorizonRadius() != 2 {
		t.Fatalf("Schwarzschild horizon = %v, want 2", k.HorizonRadius())
	}
	k2 := NewKerr(1, false)
	if k2.HorizonRadius() != 1 {
		t.Fatalf("extremal Kerr horizon = %v, want 1", k2.HorizonRadius())
	}
}

func TestKerrInternalTerminate(t *testing.T) {
	k := NewKerr(0.5, false)
	inside := tensor.Point{0, k.HorizonRadius() - 0.1, 1, 0}
	outside := tensor.Point{0, k.HorizonRadius() + 5, 1, 0}
	if !k.InternalTerminate(inside) {
		t.Fatal("expected termination inside horizon")
	}
	if k.InternalTerminate(outside) {
		t.Fatal("did not expect termination far outside horizon")
	}
}

func TestKerrMetricReducesToSchwarzschildDiagonal(t *testing.T) {
	k := NewKerr(0, false)
	p := tensor.Point{0, 10, math.Pi / 2, 0}
	g := k.MetricDD(p)
	if g[0][3] != 0 || g[3][0] != 0 {
		t.Fatalf("expected no frame dragging at a=0, got g03=%v", g[0][3])
	}
	want00 := -(1 - 2.0/10)
	if !tensor.EqualWithinAbs(g[0][0], want00) {
		t.Fatalf("g00 = %v, want %v", g[0][0], want00)
	}
}
