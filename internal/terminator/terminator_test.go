package terminator

import (
	"testing"

	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/raystate"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
)

func newState(r float64) *raystate.State {
	return &raystate.State{Pos: tensor.Point{0, r, 1, 0}, Metric: metric.NewKerr(0, false)}
}

func TestHorizonTerminator(t *testing.T) {
	h := &HorizonTerminator{HorizonRadius: 2, AtHorizonEps: 1e-4, UpdateEveryN: 1}
	if c := h.Check(newState(10)); c != Continue {
		t.Fatalf("expected Continue far from horizon, got %v", c)
	}
	if c := h.Check(newState(2.00001)); c != Horizon {
		t.Fatalf("expected Horizon near horizon, got %v", c)
	}
}

func TestBoundarySphereTerminator(t *testing.T) {
	b := &BoundarySphereTerminator{SphereRadius: 1000, UpdateEveryN: 1}
	if c := b.Check(newState(500)); c != Continue {
		t.Fatalf("expected Continue inside boundary, got %v", c)
	}
	if c := b.Check(newState(1001)); c != BoundarySphere {
		t.Fatalf("expected BoundarySphere past boundary, got %v", c)
	}
}

func TestTimeOutTerminator(t *testing.T) {
	to := &TimeOutTerminator{MaxSteps: 5, UpdateEveryN: 1}
	s := newState(10)
	s.Step = 4
	if c := to.Check(s); c != Continue {
		t.Fatalf("expected Continue at step 4, got %v", c)
	}
	s.Step = 5
	if c := to.Check(s); c != TimeOut {
		t.Fatalf("expected TimeOut at step 5, got %v", c)
	}
}

func TestDecideUpdateGating(t *testing.T) {
	to := &TimeOutTerminator{MaxSteps: 0, UpdateEveryN: 3}
	s := newState(10)
	s.Step = 100 // would time out immediately if ever checked
	if c := to.Check(s); c != Continue {
		t.Fatalf("call 1: expected gated Continue, got %v", c)
	}
	if c := to.Check(s); c != Continue {
		t.Fatalf("call 2: expected gated Continue, got %v", c)
	}
	if c := to.Check(s); c != TimeOut {
		t.Fatalf("call 3: expected check to fire, got %v", c)
	}
}
