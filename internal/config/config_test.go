package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drmayerson/FOORT-sub000/internal/foortlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "foort.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	r := NewReader(foortlog.New("test", foortlog.LevelWarning))
	if _, err := r.Load(filepath.Join(t.TempDir(), "nonexistent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadOverridesOnlySpecifiedFields(t *testing.T) {
	path := writeConfig(t, `
Metric:
  Name: flatspace
ViewScreen:
  Mesh:
    TotalPixels: 256
`)
	r := NewReader(foortlog.New("test", foortlog.LevelWarning))
	cfg, err := r.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Metric.Name != "flatspace" {
		t.Fatalf("expected overridden metric name, got %q", cfg.Metric.Name)
	}
	if cfg.ViewScreen.Mesh.TotalPixels != 256 {
		t.Fatalf("expected overridden pixel count, got %d", cfg.ViewScreen.Mesh.TotalPixels)
	}
	// Everything left unset should still carry the documented default.
	def := Default()
	if cfg.Output.FilePrefix != def.Output.FilePrefix {
		t.Fatalf("expected default output prefix to survive, got %q", cfg.Output.FilePrefix)
	}
	if cfg.Integrator.StepSize != def.Integrator.StepSize {
		t.Fatalf("expected default step size to survive, got %v", cfg.Integrator.StepSize)
	}
}

func TestLoadOmitsHorizonOnNonHorizonMetric(t *testing.T) {
	path := writeConfig(t, `
Metric:
  Name: flatspace
Terminations:
  Horizon:
    On: true
  BoundarySphere:
    On: true
`)
	r := NewReader(foortlog.New("test", foortlog.LevelWarning))
	cfg, err := r.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Terminations["Horizon"].On {
		t.Fatal("expected Horizon termination to be disabled against flatspace")
	}
	if !cfg.Terminations["BoundarySphere"].On {
		t.Fatal("expected BoundarySphere to remain enabled")
	}
}

func TestLoadRejectsUnrecognizedMetricName(t *testing.T) {
	path := writeConfig(t, `
Metric:
  Name: wormhole
`)
	r := NewReader(foortlog.New("test", foortlog.LevelWarning))
	cfg, err := r.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Metric.Name != "kerr" {
		t.Fatalf("expected fallback to kerr, got %q", cfg.Metric.Name)
	}
}
