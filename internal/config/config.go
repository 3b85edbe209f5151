// Package config reads the nested-section configuration file described
// by spec.md §6 into an EngineConfig; engine.Build turns that into a
// ready-to-run engine. Grounded on config.go's smdConfig() for the viper reading
// conventions and on mission.go's NewMission for the "wire a handful of
// validated arguments into the runnable object" builder pattern.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/drmayerson/FOORT-sub000/internal/foortlog"
)

// MetricConfig configures which metric.Provider the engine builds.
type MetricConfig struct {
	Name         string
	A            float64
	RLogScale    bool
}

// SourceConfig configures which source.Source the engine builds.
type SourceConfig struct {
	Name string
}

// DiagnosticConfig configures one diagnostic by name.
type DiagnosticConfig struct {
	On              bool
	UpdateFrequency int
	UseForMesh      bool
	OutputSteps     int // GeodesicPosition only; -1 keeps every point
}

// TerminationConfig configures one terminator by name.
type TerminationConfig struct {
	On              bool
	UpdateFrequency int
	EpsilonHorizon  float64
	SphereRadius    float64
	MaxSteps        int
}

// MeshConfig configures the viewscreen's mesh.
type MeshConfig struct {
	Type                    string
	TotalPixels             int
	InitialPixels           int
	MaxPixels               int // 0 = infinite
	IterationPixels         int
	MaxSubdivide            int
	InitialSubdivisionToFinal bool
}

// ViewScreenConfig configures the camera.
type ViewScreenConfig struct {
	Position   [4]float64
	ScreenSize [2]float64
	Mesh       MeshConfig
}

// IntegratorConfig holds the integrator section of the config file.
// engine.Build reads neither field: the engine always integrates with
// integrator.RK4, whose base step is the fixed integrator.Epsilon.
type IntegratorConfig struct {
	Type     string
	StepSize float64
}

// OutputConfig configures the output sink. engine.Build passes Dir,
// FilePrefix, TimeStamp and GeodesicsToCache to output.Handler;
// FileExtension, GeodesicsPerFile and FirstLineInfo are read from the
// file but not used.
type OutputConfig struct {
	FilePrefix       string
	FileExtension    string
	TimeStamp        bool
	GeodesicsToCache int
	GeodesicsPerFile int
	FirstLineInfo    bool
	Dir              string
}

// EngineConfig is the fully-resolved, language-neutral record spec.md
// §3/§6 describes; Reader.Load parses a config file into one of these,
// and Build turns it into a runnable engine.
type EngineConfig struct {
	Metric       MetricConfig
	Source       SourceConfig
	Diagnostics  map[string]DiagnosticConfig
	Terminations map[string]TerminationConfig
	ViewScreen   ViewScreenConfig
	Integrator   IntegratorConfig
	Output       OutputConfig
}

// Default returns the documented defaults of spec.md §6, used whenever
// a config file is missing a section entirely.
func Default() EngineConfig {
	return EngineConfig{
		Metric: MetricConfig{Name: "kerr", A: 0.5},
		Source: SourceConfig{Name: "nosource"},
		Diagnostics: map[string]DiagnosticConfig{
			"FourColorScreen": {On: true, UpdateFrequency: 1, UseForMesh: true},
		},
		Terminations: map[string]TerminationConfig{
			"BoundarySphere": {On: true, UpdateFrequency: 1, SphereRadius: 1000},
			"TimeOut":        {On: true, UpdateFrequency: 1, MaxSteps: 10000},
		},
		ViewScreen: ViewScreenConfig{
			Position:   [4]float64{0, 1000, 1.5, 0},
			ScreenSize: [2]float64{40, 40},
			Mesh:       MeshConfig{Type: "SimpleSquareMesh", TotalPixels: 100},
		},
		Integrator: IntegratorConfig{Type: "rk4", StepSize: 0.01},
		Output: OutputConfig{
			FilePrefix:       "foort",
			FileExtension:    "dat",
			TimeStamp:        true,
			GeodesicsToCache: 1000,
			GeodesicsPerFile: 100000,
			FirstLineInfo:    true,
			Dir:              ".",
		},
	}
}

// Reader loads EngineConfig values from a viper-backed nested file.
// Fields the file leaves unset keep their Default() value without a
// warning. An unrecognized Metric.Name, a Diagnostics section with no
// known diagnostic, a Terminations section with nothing on, and a
// Horizon termination on a non-Kerr metric are logged as warnings and
// replaced by defaults; other values are taken as given, without
// validation.
type Reader struct {
	log *foortlog.Logger
}

// NewReader returns a Reader that logs defect warnings through log.
func NewReader(log *foortlog.Logger) *Reader {
	return &Reader{log: log}
}

// Load reads path (any format viper supports: TOML, YAML, JSON) into
// an EngineConfig, starting from Default() and overriding whatever the
// file actually specifies.
func (r *Reader) Load(path string) (EngineConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return EngineConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()

	if v.IsSet("Metric.Name") {
		name := strings.ToLower(v.GetString("Metric.Name"))
		if name != "kerr" && name != "flatspace" {
			r.log.Warn("msg", "unrecognized Metric.Name, using default", "got", name)
			name = "kerr"
		}
		cfg.Metric.Name = name
	}
	if v.IsSet("Metric.a") {
		cfg.Metric.A = v.GetFloat64("Metric.a")
	}
	if v.IsSet("Metric.RLogScale") {
		cfg.Metric.RLogScale = v.GetBool("Metric.RLogScale")
	}

	if v.IsSet("Source.Name") {
		cfg.Source.Name = strings.ToLower(v.GetString("Source.Name"))
	}

	if v.IsSet("Diagnostics") {
		cfg.Diagnostics = map[string]DiagnosticConfig{}
		for _, name := range []string{"FourColorScreen", "GeodesicPosition", "EquatorialPasses"} {
			key := "Diagnostics." + name
			if !v.IsSet(key) {
				continue
			}
			cfg.Diagnostics[name] = DiagnosticConfig{
				On:              v.GetBool(key + ".On"),
				UpdateFrequency: v.GetInt(key + ".UpdateFrequency"),
				UseForMesh:      v.GetBool(key + ".UseForMesh"),
				OutputSteps:     intOr(v, key+".OutputSteps", -1),
			}
		}
		if len(cfg.Diagnostics) == 0 {
			r.log.Warn("msg", "no diagnostics configured, using default FourColorScreen")
			cfg.Diagnostics = Default().Diagnostics
		}
	}

	if v.IsSet("Terminations") {
		cfg.Terminations = map[string]TerminationConfig{}
		for _, name := range []string{"Horizon", "BoundarySphere", "TimeOut"} {
			key := "Terminations." + name
			if !v.IsSet(key) {
				continue
			}
			tc := TerminationConfig{
				On:              v.GetBool(key + ".On"),
				UpdateFrequency: v.GetInt(key + ".UpdateFrequency"),
			}
			switch name {
			case "Horizon":
				tc.EpsilonHorizon = floatOr(v, key+".Epsilon_Horizon", 0.01)
				if cfg.Metric.Name != "kerr" && tc.On {
					r.log.Warn("msg", "Horizon termination requires a horizon-bearing metric, omitting", "metric", cfg.Metric.Name)
					tc.On = false
				}
			case "BoundarySphere":
				tc.SphereRadius = floatOr(v, key+".SphereRadius", 1000)
			case "TimeOut":
				tc.MaxSteps = intOr(v, key+".MaxSteps", 10000)
			}
			cfg.Terminations[name] = tc
		}
		if !anyOn(cfg.Terminations) {
			r.log.Warn("msg", "no terminations configured, using default BoundarySphere+TimeOut")
			cfg.Terminations = Default().Terminations
		}
	}

	if v.IsSet("ViewScreen.Position") {
		pos := v.GetStringMap("ViewScreen.Position")
		cfg.ViewScreen.Position = [4]float64{
			toFloat(pos["t"]), toFloat(pos["r"]), toFloat(pos["theta"]), toFloat(pos["phi"]),
		}
	}
	if v.IsSet("ViewScreen.ScreenSize") {
		size := v.GetStringMap("ViewScreen.ScreenSize")
		cfg.ViewScreen.ScreenSize = [2]float64{toFloat(size["x"]), toFloat(size["y"])}
	}
	if v.IsSet("ViewScreen.Mesh.Type") {
		cfg.ViewScreen.Mesh.Type = v.GetString("ViewScreen.Mesh.Type")
	}
	if v.IsSet("ViewScreen.Mesh.TotalPixels") {
		cfg.ViewScreen.Mesh.TotalPixels = v.GetInt("ViewScreen.Mesh.TotalPixels")
	}
	if v.IsSet("ViewScreen.Mesh.InitialPixels") {
		cfg.ViewScreen.Mesh.InitialPixels = v.GetInt("ViewScreen.Mesh.InitialPixels")
	}
	if v.IsSet("ViewScreen.Mesh.MaxPixels") {
		cfg.ViewScreen.Mesh.MaxPixels = v.GetInt("ViewScreen.Mesh.MaxPixels")
	}
	if v.IsSet("ViewScreen.Mesh.IterationPixels") {
		cfg.ViewScreen.Mesh.IterationPixels = v.GetInt("ViewScreen.Mesh.IterationPixels")
	}
	if v.IsSet("ViewScreen.Mesh.MaxSubdivide") {
		cfg.ViewScreen.Mesh.MaxSubdivide = v.GetInt("ViewScreen.Mesh.MaxSubdivide")
	}
	if v.IsSet("ViewScreen.Mesh.InitialSubdivisionToFinal") {
		cfg.ViewScreen.Mesh.InitialSubdivisionToFinal = v.GetBool("ViewScreen.Mesh.InitialSubdivisionToFinal")
	}

	if v.IsSet("Integrator.Type") {
		cfg.Integrator.Type = strings.ToLower(v.GetString("Integrator.Type"))
	}
	if v.IsSet("Integrator.StepSize") {
		cfg.Integrator.StepSize = v.GetFloat64("Integrator.StepSize")
	}

	if v.IsSet("Output.FilePrefix") {
		cfg.Output.FilePrefix = v.GetString("Output.FilePrefix")
	}
	if v.IsSet("Output.FileExtension") {
		cfg.Output.FileExtension = v.GetString("Output.FileExtension")
	}
	if v.IsSet("Output.TimeStamp") {
		cfg.Output.TimeStamp = v.GetBool("Output.TimeStamp")
	}
	if v.IsSet("Output.GeodesicToCache") {
		cfg.Output.GeodesicsToCache = v.GetInt("Output.GeodesicToCache")
	}
	if v.IsSet("Output.GeodesicsPerFile") {
		cfg.Output.GeodesicsPerFile = v.GetInt("Output.GeodesicsPerFile")
	}
	if v.IsSet("Output.FirstLineInfo") {
		cfg.Output.FirstLineInfo = v.GetBool("Output.FirstLineInfo")
	}
	if v.IsSet("Output.Dir") {
		cfg.Output.Dir = v.GetString("Output.Dir")
	}

	return cfg, nil
}

func anyOn(terms map[string]TerminationConfig) bool {
	for _, t := range terms {
		if t.On {
			return true
		}
	}
	return false
}

func intOr(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	return v.GetInt(key)
}

func floatOr(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	return v.GetFloat64(key)
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
