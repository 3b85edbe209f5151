// Package driver runs the mesh's outer "while not finished" loop,
// fanning each iteration's geodesics out across a bounded worker pool
// instead of the original's OpenMP parallel for. Grounded on the
// iteration loop in Main.cpp and on Mission.Propagate's
// ticker-plus-status-log pattern in mission.go.
package driver

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/drmayerson/FOORT-sub000/internal/diagnostic"
	"github.com/drmayerson/FOORT-sub000/internal/foortlog"
	"github.com/drmayerson/FOORT-sub000/internal/geodesic"
	"github.com/drmayerson/FOORT-sub000/internal/mesh"
	"github.com/drmayerson/FOORT-sub000/internal/metric"
	"github.com/drmayerson/FOORT-sub000/internal/output"
	"github.com/drmayerson/FOORT-sub000/internal/raystate"
	"github.com/drmayerson/FOORT-sub000/internal/source"
	"github.com/drmayerson/FOORT-sub000/internal/terminator"
	"github.com/drmayerson/FOORT-sub000/internal/viewscreen"
)

// Config wires together one run of the engine.
type Config struct {
	Screen *viewscreen.Screen
	Mesh   mesh.Mesh
	Metric metric.Provider
	Source source.Source

	// NewTerminators and NewDiagnostics build a fresh, unshared set of
	// collaborators for each geodesic -- both terminators (e.g. the
	// horizon terminator's step counter) and diagnostics carry mutable
	// per-ray state, so one set cannot be reused across concurrent rays.
	NewTerminators func() []terminator.Terminator
	NewDiagnostics func() []diagnostic.Diagnostic

	Output *output.Handler
	Log    *foortlog.Logger

	// Workers bounds how many geodesics are integrated concurrently.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// ProgressEvery sets the approximate spacing, in completed geodesics,
	// of progress log lines within one iteration: every two seconds a line
	// is logged if the completed count is less than one worker-pool width
	// past a multiple of ProgressEvery. Zero disables it.
	ProgressEvery int
}

// Run drives every iteration of cfg.Mesh to completion, fanning each
// iteration's geodesics out across the worker pool. It returns when
// the mesh reports it is finished or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers()
	}

	iteration := 0
	for !cfg.Mesh.Finished() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		iteration++
		count := cfg.Mesh.CurrentCount()
		cfg.Log.Log(foortlog.LevelProcedure, "msg", "starting integration loop", "iteration", iteration, "geodesics", count)

		start := time.Now()
		if err := runIteration(ctx, cfg, count, workers); err != nil {
			return err
		}
		cfg.Mesh.EndCurrentLoop()
		cfg.Log.Log(foortlog.LevelProcedure, "msg", "integration loop done", "iteration", iteration, "elapsed", time.Since(start))
	}
	return nil
}

func runIteration(ctx context.Context, cfg Config, count, workers int) error {
	jobs := make(chan int)
	var wg sync.WaitGroup
	var completed int64

	stopProgress := make(chan struct{})
	if cfg.ProgressEvery > 0 {
		go reportProgress(cfg, &completed, int64(count), int64(workers), stopProgress)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				runOneGeodesic(cfg, idx)
				atomic.AddInt64(&completed, 1)
			}
		}()
	}

feed:
	for idx := 0; idx < count; idx++ {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(stopProgress)

	return ctx.Err()
}

func runOneGeodesic(cfg Config, idx int) {
	pos, vel, scrIdx := cfg.Screen.InitialConditionsFor(idx)
	index := raystate.ScreenIndex{Row: scrIdx.Row, Col: scrIdx.Col}
	ray := geodesic.New(cfg.Metric, cfg.Source, pos, vel, index, cfg.NewTerminators(), cfg.NewDiagnostics())

	for !ray.Finished() {
		ray.Advance()
	}

	cfg.Mesh.GeodesicFinished(idx, ray.FinalValue())
	cfg.Output.Record(ray.FinalRecord())
}

func reportProgress(cfg Config, completed *int64, total, workers int64, stop <-chan struct{}) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			done := atomic.LoadInt64(completed)
			if done > 0 && done%int64(cfg.ProgressEvery) < workers {
				cfg.Log.Log(foortlog.LevelSubprocedure, "msg", "approx geodesic progress", "done", done, "total", total)
			}
		}
	}
}

func defaultWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}
