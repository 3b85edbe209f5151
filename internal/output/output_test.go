package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drmayerson/FOORT-sub000/internal/foortlog"
)

func TestRecordFlushesAtCacheSize(t *testing.T) {
	dir := t.TempDir()
	h := New(Config{Dir: dir, FilePrefix: "test", DiagNames: []string{"d1"}, CacheSize: 2}, foortlog.New("test", foortlog.LevelWarning))

	h.Record([]string{"0 0", "1.0"})
	if _, err := os.Stat(filepath.Join(dir, "test.csv")); err == nil {
		t.Fatal("expected no file before cache fills")
	}
	h.Record([]string{"0 1", "2.0"})
	if _, err := os.Stat(filepath.Join(dir, "test.csv")); err != nil {
		t.Fatalf("expected file to exist after cache fills: %v", err)
	}
}

func TestCloseFlushesRemainder(t *testing.T) {
	dir := t.TempDir()
	h := New(Config{Dir: dir, FilePrefix: "test", DiagNames: []string{"d1"}, CacheSize: 100}, foortlog.New("test", foortlog.LevelWarning))
	h.Record([]string{"0 0", "1.0"})
	h.Close()

	if _, err := os.Stat(filepath.Join(dir, "test.csv")); err != nil {
		t.Fatalf("expected Close to flush: %v", err)
	}
}

func TestFallsBackToConsoleOnWriteFailure(t *testing.T) {
	h := New(Config{Dir: "/nonexistent-dir-for-test", FilePrefix: "test", DiagNames: []string{"d1"}, CacheSize: 1}, foortlog.New("test", foortlog.LevelWarning))
	h.Record([]string{"0 0", "1.0"})
	if !h.toConsole {
		t.Fatal("expected handler to fall back to console output")
	}
}
