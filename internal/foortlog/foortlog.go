// Package foortlog wraps go-kit's logfmt logger with the five console
// verbosity levels of the original engine (warning through debug).
// Grounded on the teacher's SCLogInit in spacecraft.go.
package foortlog

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// Level is the priority at which a log line is emitted. Higher levels
// are more verbose.
type Level int

const (
	LevelWarning Level = iota
	LevelProcedure
	LevelSubprocedure
	LevelAllDetail
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelProcedure:
		return "procedure"
	case LevelSubprocedure:
		return "subprocedure"
	case LevelAllDetail:
		return "alldetail"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Logger filters go-kit log lines by Level before writing them,
// mirroring the engine's SetOutputLevel/ScreenOutput pair.
type Logger struct {
	base    kitlog.Logger
	current Level
}

// New returns a Logger writing logfmt lines to stdout, tagged with
// subsys, at the given verbosity.
func New(subsys string, lvl Level) *Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "subsys", subsys)
	return &Logger{base: klog, current: lvl}
}

// SetLevel changes the verbosity threshold.
func (l *Logger) SetLevel(lvl Level) {
	l.current = lvl
}

// Log emits keyvals at lvl, contingent on it being allowed by the
// current verbosity threshold. Warnings are always emitted regardless
// of threshold, matching ScreenOutput's Level_0_WARNING behavior.
func (l *Logger) Log(lvl Level, keyvals ...interface{}) {
	if lvl != LevelWarning && lvl > l.current {
		return
	}
	args := append([]interface{}{"level", lvl.String()}, keyvals...)
	l.base.Log(args...)
}

// Warn is a shorthand for Log(LevelWarning, ...).
func (l *Logger) Warn(keyvals ...interface{}) {
	l.Log(LevelWarning, keyvals...)
}

// With returns a Logger with additional key-value pairs applied to
// every subsequent Log call.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{base: kitlog.With(l.base, keyvals...), current: l.current}
}
