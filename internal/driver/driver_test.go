package driver

import (
	"context"
	"math"
	"testing"

	"github.com/drmayerson/FOORT-sub000/internal/diagnostic"
	"github.com/drmayerson/FOORT-sub000/internal/foortlog"
	"github.com/drmayerson/FOORT-sub000/internal/mesh"
	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/output"
	"github.com/drmayerson/FOORT-sub000/internal/source"
	"github.com/drmayerson/FOORT-sub000/internal/tensor"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
	"github.com/drmayerson/FOORT-sub000/internal/viewscreen"
)

func TestRunReturnsWithMeshFinished(t *testing.T) {
	m := metric.NewFlatSpace()
	msh := mesh.NewSimpleSquareMesh(3)
	screen := &viewscreen.Screen{
		Metric:       m,
		Pos:          tensor.Point{0, 50, math.Pi / 2, 0},
		ScreenWidth:  10,
		ScreenHeight: 10,
		Mesh:         msh,
	}

	dir := t.TempDir()
	out := output.New(output.Config{Dir: dir, FilePrefix: "test", DiagNames: []string{"pos"}, CacheSize: 1}, foortlog.New("test", foortlog.LevelWarning))
	defer out.Close()

	var seen int
	cfg := Config{
		Screen: screen,
		Mesh:   msh,
		Metric: m,
		Source: source.None{},
		NewTerminators: func() []terminator.Terminator {
			return []terminator.Terminator{
				&terminator.BoundarySphereTerminator{SphereRadius: 200},
				&terminator.TimeOutTerminator{MaxSteps: 50},
			}
		},
		NewDiagnostics: func() []diagnostic.Diagnostic {
			return []diagnostic.Diagnostic{diagnostic.NewEquatorialPasses(diagnostic.UpdateFrequency{NSteps: 1, OnFinish: true})}
		},
		Output:  out,
		Log:     foortlog.New("test", foortlog.LevelWarning),
		Workers: 2,
	}

	if err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !msh.Finished() {
		t.Fatal("expected mesh to be finished after Run")
	}
	_ = seen
}
