package diagnostic

import (
	"math"
	"testing"

	"github.com/drmayerson/FOORT-sub000/internal/raystate"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
)

func TestFourColorScreenQuadrants(t *testing.T) {
	cases := []struct {
		theta, phi float64
		want       int
	}{
		{0.1, 0.1, 1},
		{0.1, math.Pi + 0.1, 2},
		{math.Pi - 0.1, 0.1, 3},
		{math.Pi - 0.1, math.Pi + 0.1, 4},
	}
	for _, c := range cases {
		f := &FourColorScreen{Freq: UpdateFrequency{OnFinish: true}}
		s := &raystate.State{Pos: tensor.Point{0, 1000, c.theta, c.phi}}
		f.Update(s, terminator.BoundarySphere)
		if got := f.FinalDataValue()[0]; got != float64(c.want) {
			t.Fatalf("theta=%v phi=%v: quadrant = %v, want %v", c.theta, c.phi, got, c.want)
		}
	}
}

func TestFourColorScreenIgnoresNonBoundaryTermination(t *testing.T) {
	f := &FourColorScreen{Freq: UpdateFrequency{OnFinish: true}}
	s := &raystate.State{Pos: tensor.Point{0, 1000, 0.1, 0.1}}
	f.Update(s, terminator.Horizon)
	if got := f.FinalDataValue()[0]; got != 0 {
		t.Fatalf("expected default quadrant 0, got %v", got)
	}
}

func TestEquatorialPassesFirstSampleNeverCounts(t *testing.T) {
	e := NewEquatorialPasses(UpdateFrequency{NSteps: 1})
	// First sample exactly on the equator: must not register as a crossing.
	e.Update(&raystate.State{Pos: tensor.Point{0, 10, math.Pi / 2, 0}}, terminator.Continue)
	if e.passes != 0 {
		t.Fatalf("first sample counted as a crossing: passes=%d", e.passes)
	}
}

func TestEquatorialPassesCountsCrossing(t *testing.T) {
	e := NewEquatorialPasses(UpdateFrequency{NSteps: 1})
	e.Update(&raystate.State{Pos: tensor.Point{0, 10, 1.0, 0}}, terminator.Continue)
	e.Update(&raystate.State{Pos: tensor.Point{0, 10, 2.0, 0}}, terminator.Continue)
	if e.passes != 1 {
		t.Fatalf("expected 1 crossing, got %d", e.passes)
	}
}

func TestGeodesicPositionDistanceIsSymmetricEuclidean(t *testing.T) {
	g := &GeodesicPosition{}
	a := []float64{1.0, 2.0}
	b := []float64{1.0, 5.0}
	if d := g.Distance(a, b); !tensor.EqualWithinAbs(d, 3.0) {
		t.Fatalf("Distance = %v, want 3", d)
	}
	if g.Distance(a, b) != g.Distance(b, a) {
		t.Fatal("Distance should be symmetric")
	}
}

func TestGeodesicPositionDownsamplesKeepingLastPoint(t *testing.T) {
	g := &GeodesicPosition{Freq: UpdateFrequency{NSteps: 1}, OutputNrSteps: 3}
	for i := 0; i < 10; i++ {
		g.Update(&raystate.State{Pos: tensor.Point{0, float64(i), 1, 0}}, terminator.Continue)
	}
	g.Update(&raystate.State{Pos: tensor.Point{0, 99, 1, 0}}, terminator.Horizon)
	if last := g.points[len(g.points)-1]; last[1] != 99 {
		t.Fatalf("last point not preserved after downsampling: %v", last)
	}
}

func TestUpdateFrequencyOnStartOnly(t *testing.T) {
	u := UpdateFrequency{OnStart: true}
	if !u.decideUpdate(0, terminator.Continue) {
		t.Fatal("expected update at lambda=0")
	}
	if u.decideUpdate(1, terminator.Continue) {
		t.Fatal("expected no update mid-integration with OnStart only")
	}
}
