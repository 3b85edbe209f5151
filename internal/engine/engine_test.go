package engine

import (
	"context"
	"testing"

	"github.com/drmayerson/FOORT-sub000/internal/config"
	"github.com/drmayerson/FOORT-sub000/internal/foortlog"
)

func TestBuildAndRunFlatSpaceDefaultConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Metric.Name = "flatspace"
	cfg.ViewScreen.Mesh.TotalPixels = 9
	cfg.Output.Dir = t.TempDir()

	log := foortlog.New("test", foortlog.LevelWarning)
	e, err := Build(cfg, log)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestBuildRejectsUnknownMetric(t *testing.T) {
	cfg := config.Default()
	cfg.Metric.Name = "wormhole"
	if _, err := Build(cfg, foortlog.New("test", foortlog.LevelWarning)); err == nil {
		t.Fatal("expected an error for an unknown metric")
	}
}

func TestBuildOmitsHorizonTerminatorOnFlatSpace(t *testing.T) {
	cfg := config.Default()
	cfg.Metric.Name = "flatspace"
	cfg.Terminations = map[string]config.TerminationConfig{
		"Horizon":        {On: true, UpdateFrequency: 1, EpsilonHorizon: 0.01},
		"BoundarySphere": {On: true, UpdateFrequency: 1, SphereRadius: 500},
	}
	cfg.ViewScreen.Mesh.TotalPixels = 4
	cfg.Output.Dir = t.TempDir()

	e, err := Build(cfg, foortlog.New("test", foortlog.LevelWarning))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	terms := e.driverCfg.NewTerminators()
	for _, term := range terms {
		if _, ok := term.(interface{ Description() string }); ok {
			if term.Description() == "" {
				t.Fatal("unexpected empty terminator")
			}
		}
	}
	if len(terms) != 1 {
		t.Fatalf("expected only BoundarySphere to survive, got %d terminators", len(terms))
	}
}
