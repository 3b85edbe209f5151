package foortlog

import (
	"bytes"
	"strings"
	"testing"

	kitlog "github.com/go-kit/kit/log"
)

func newBufLogger(lvl Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Logger{base: kitlog.NewLogfmtLogger(&buf), current: lvl}, &buf
}

func TestLogSuppressesAboveThreshold(t *testing.T) {
	l, buf := newBufLogger(LevelProcedure)
	l.Log(LevelDebug, "msg", "hello")
	if buf.Len() != 0 {
		t.Fatalf("expected debug line to be suppressed, got %q", buf.String())
	}
}

func TestLogAllowsAtOrBelowThreshold(t *testing.T) {
	l, buf := newBufLogger(LevelSubprocedure)
	l.Log(LevelProcedure, "msg", "hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected line to be emitted, got %q", buf.String())
	}
}

func TestWarnIsNeverSuppressed(t *testing.T) {
	l, buf := newBufLogger(LevelWarning)
	l.Warn("msg", "careful")
	if !strings.Contains(buf.String(), "careful") {
		t.Fatalf("expected warning to always be emitted, got %q", buf.String())
	}
}
