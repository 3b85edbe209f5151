// Package engine wires a resolved EngineConfig into the concrete
// metric, source, terminators, diagnostics, viewscreen, mesh and output
// sink, and runs the driver loop to completion. Grounded on
// Mission.Propagate as the single entry point that a fully-built object
// graph exposes to main().
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/drmayerson/FOORT-sub000/internal/config"
	"github.com/drmayerson/FOORT-sub000/internal/diagnostic"
	"github.com/drmayerson/FOORT-sub000/internal/driver"
	"github.com/drmayerson/FOORT-sub000/internal/foortlog"
	"github.com/drmayerson/FOORT-sub000/internal/mesh"
	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/output"
	"github.com/drmayerson/FOORT-sub000/internal/source"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
	"github.com/drmayerson/FOORT-sub000/internal/viewscreen"
)

// Engine is a fully-built, ready-to-run ray tracing pass.
type Engine struct {
	driverCfg driver.Config
	log       *foortlog.Logger
}

// Run executes the engine's driver loop to completion, then closes its
// output sink.
func (e *Engine) Run(ctx context.Context) error {
	defer e.driverCfg.Output.Close()
	e.log.Log(foortlog.LevelProcedure, "msg", "engine starting", "metric", e.driverCfg.Metric.Description())
	err := driver.Run(ctx, e.driverCfg)
	e.log.Log(foortlog.LevelProcedure, "msg", "engine finished")
	return err
}

// Build wires cfg into a runnable Engine. Any configuration defect
// already resolved to a documented default by config.Reader; Build
// itself only fails if the resulting object graph is fundamentally
// unrunnable: an unknown metric name or mesh type.
func Build(cfg config.EngineConfig, log *foortlog.Logger) (*Engine, error) {
	m, err := buildMetric(cfg.Metric)
	if err != nil {
		return nil, err
	}
	src := buildSource(cfg.Source)

	diagNames, newDiagnostics, valueDistance := buildDiagnosticFactory(cfg.Diagnostics, log)
	newTerminators := buildTerminatorFactory(cfg.Terminations, m, log)

	msh, err := buildMesh(cfg.ViewScreen.Mesh, valueDistance, log)
	if err != nil {
		return nil, err
	}

	screen := &viewscreen.Screen{
		Metric:       m,
		Pos:          cfg.ViewScreen.Position,
		ScreenWidth:  cfg.ViewScreen.ScreenSize[0],
		ScreenHeight: cfg.ViewScreen.ScreenSize[1],
		Mesh:         msh,
	}

	sink := output.New(output.Config{
		Dir:        cfg.Output.Dir,
		FilePrefix: cfg.Output.FilePrefix,
		DiagNames:  diagNames,
		CacheSize:  cfg.Output.GeodesicsToCache,
		Timestamp:  cfg.Output.TimeStamp,
	}, log)

	return &Engine{
		log: log,
		driverCfg: driver.Config{
			Screen:         screen,
			Mesh:           msh,
			Metric:         m,
			Source:         src,
			NewTerminators: newTerminators,
			NewDiagnostics: newDiagnostics,
			Output:         sink,
			Log:            log,
			ProgressEvery:  1000,
		},
	}, nil
}

func buildMetric(c config.MetricConfig) (metric.Provider, error) {
	switch strings.ToLower(c.Name) {
	case "flatspace":
		return metric.NewFlatSpace(), nil
	case "kerr", "":
		return metric.NewKerr(c.A, c.RLogScale), nil
	default:
		return nil, fmt.Errorf("unknown metric %q", c.Name)
	}
}

func buildSource(c config.SourceConfig) source.Source {
	return source.None{}
}

// buildDiagnosticFactory returns the diagnostic column names (in the
// order the output sink writes them, with the value diagnostic first),
// a factory building a fresh, unshared diagnostic set per geodesic --
// each diagnostic instance carries mutable per-ray state -- and the
// value diagnostic's Distance method, which the mesh uses to compare
// two geodesics' final values. Distance is stateless on every
// diagnostic type, so a throwaway instance supplies it safely.
func buildDiagnosticFactory(cfgs map[string]config.DiagnosticConfig, log *foortlog.Logger) ([]string, func() []diagnostic.Diagnostic, mesh.DistanceFunc) {
	type entry struct {
		name string
		cfg  config.DiagnosticConfig
	}
	var enabled []entry
	valueName := ""
	for name, c := range cfgs {
		if !c.On {
			continue
		}
		enabled = append(enabled, entry{name, c})
		if c.UseForMesh && valueName == "" {
			valueName = name
		}
	}
	if valueName == "" {
		for _, e := range enabled {
			if e.name == "FourColorScreen" {
				valueName = "FourColorScreen"
				break
			}
		}
	}

	// Rotate the value diagnostic to the front, matching
	// Ray.FinalValue's "first registered diagnostic" contract.
	order := make([]entry, 0, len(enabled))
	for _, e := range enabled {
		if e.name == valueName {
			order = append([]entry{e}, order...)
		} else {
			order = append(order, e)
		}
	}

	names := make([]string, len(order))
	for i, e := range order {
		names[i] = e.name
	}

	factory := func() []diagnostic.Diagnostic {
		out := make([]diagnostic.Diagnostic, 0, len(order))
		for _, e := range order {
			out = append(out, newDiagnostic(e.name, e.cfg))
		}
		return out
	}

	valueName = firstOr(valueName, "FourColorScreen")
	valueDiag := newDiagnostic(valueName, config.DiagnosticConfig{})
	distance := func(a, b []float64) float64 { return valueDiag.Distance(a, b) }

	return names, factory, distance
}

func firstOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func newDiagnostic(name string, c config.DiagnosticConfig) diagnostic.Diagnostic {
	freq := diagnostic.UpdateFrequency{NSteps: uint64(c.UpdateFrequency)}
	switch name {
	case "FourColorScreen":
		return &diagnostic.FourColorScreen{Freq: freq}
	case "GeodesicPosition":
		return &diagnostic.GeodesicPosition{Freq: freq, OutputNrSteps: c.OutputSteps}
	case "EquatorialPasses":
		return diagnostic.NewEquatorialPasses(freq)
	default:
		return &diagnostic.FourColorScreen{Freq: freq}
	}
}

// horizonProvider is satisfied by metrics that declare a horizon
// (Kerr); FlatSpace does not, so a Horizon terminator configured
// against it is a metric/terminator mismatch per spec.md §7.
type horizonProvider interface {
	HorizonRadius() float64
	LogRadial() bool
}

func buildTerminatorFactory(cfgs map[string]config.TerminationConfig, m metric.Provider, log *foortlog.Logger) func() []terminator.Terminator {
	type builder func() terminator.Terminator
	var builders []builder

	if c, ok := cfgs["Horizon"]; ok && c.On {
		if hp, ok := m.(horizonProvider); ok {
			radius, logRadial := hp.HorizonRadius(), hp.LogRadial()
			freq := uint64(c.UpdateFrequency)
			builders = append(builders, func() terminator.Terminator {
				return &terminator.HorizonTerminator{HorizonRadius: radius, AtHorizonEps: c.EpsilonHorizon, LogRadial: logRadial, UpdateEveryN: freq}
			})
		} else {
			log.Warn("msg", "Horizon termination requires a horizon-bearing metric, omitting")
		}
	}
	if c, ok := cfgs["BoundarySphere"]; ok && c.On {
		radius, freq := c.SphereRadius, uint64(c.UpdateFrequency)
		builders = append(builders, func() terminator.Terminator {
			return &terminator.BoundarySphereTerminator{SphereRadius: radius, UpdateEveryN: freq}
		})
	}
	if c, ok := cfgs["TimeOut"]; ok && c.On {
		maxSteps, freq := uint64(c.MaxSteps), uint64(c.UpdateFrequency)
		builders = append(builders, func() terminator.Terminator {
			return &terminator.TimeOutTerminator{MaxSteps: maxSteps, UpdateEveryN: freq}
		})
	}

	return func() []terminator.Terminator {
		out := make([]terminator.Terminator, 0, len(builders))
		for _, b := range builders {
			out = append(out, b())
		}
		return out
	}
}

func buildMesh(c config.MeshConfig, distance mesh.DistanceFunc, log *foortlog.Logger) (mesh.Mesh, error) {
	switch c.Type {
	case "", "SimpleSquareMesh":
		n := c.TotalPixels
		if n <= 0 {
			n = 100
		}
		rowCol := isqrt(n)
		return mesh.NewSimpleSquareMesh(rowCol), nil
	case "InputCertainPixelsMesh":
		// The original sources this list from an interactive console
		// prompt; EngineConfig has no equivalent field (config parsing
		// detail is out of scope per spec.md §1), so this falls back to
		// the full grid with a warning rather than silently dropping to
		// zero pixels.
		log.Warn("msg", "InputCertainPixelsMesh has no pixel list in EngineConfig, using SimpleSquareMesh instead")
		n := c.TotalPixels
		if n <= 0 {
			n = 100
		}
		return mesh.NewSimpleSquareMesh(isqrt(n)), nil
	case "SquareSubdivisionMesh":
		maxSub := c.MaxSubdivide
		if maxSub <= 0 {
			maxSub = 1
		}
		return mesh.NewSquareSubdivisionMesh(mesh.SquareSubdivisionConfig{
			InitialPixels:           c.InitialPixels,
			MaxSubdivide:            maxSub,
			IterationPixels:         c.IterationPixels,
			MaxPixels:               c.MaxPixels,
			InfinitePixels:          c.MaxPixels <= 0,
			InitialSubdivideToFinal: c.InitialSubdivisionToFinal,
			Distance:                distance,
			Warn: func(format string, args ...interface{}) {
				log.Log(foortlog.LevelWarning, "msg", fmt.Sprintf(format, args...))
			},
		}), nil
	default:
		return nil, fmt.Errorf("unknown mesh type %q", c.Type)
	}
}

func isqrt(n int) int {
	r := 0
	for r*r < n {
		r++
	}
	return r
}
