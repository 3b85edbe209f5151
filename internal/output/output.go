// Package output caches per-geodesic diagnostic output and flushes it
// to timestamped CSV files, falling back to the console if file I/O
// fails. Grounded on GeodesicOutputHandler (InputOutput.h/.cpp) and the
// teacher's timestamped-filename convention in export.go.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/drmayerson/FOORT-sub000/internal/foortlog"
)

// Config names the output files and bounds the handler's memory use.
type Config struct {
	// Dir is the directory output files are written to.
	Dir string
	// FilePrefix names the run, e.g. "kerr-a0.9".
	FilePrefix string
	// DiagNames are the column-group names, in output order; each
	// geodesic's record must carry exactly len(DiagNames) fields after
	// its screen index.
	DiagNames []string
	// CacheSize is how many geodesic records to buffer before flushing
	// to file. Zero means flush after every record.
	CacheSize int
	// Timestamp appends the handler's creation time to the filename,
	// matching export.go's createInterpolatedFile(stamped=true).
	Timestamp bool
}

// Handler accumulates geodesic output records and writes them to file
// in cache-sized batches. Safe for concurrent use by many goroutines
// calling Record.
type Handler struct {
	cfg       Config
	log       *foortlog.Logger
	timestamp string

	mu           sync.Mutex
	cached       [][]string
	toConsole    bool
	wroteHeader  bool
	file         *os.File
	writer       *csv.Writer
}

// New returns a Handler ready to accept geodesic output.
func New(cfg Config, log *foortlog.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		log:       log,
		timestamp: time.Now().Format("2006-01-02T15.04.05"),
	}
}

// Record stores one geodesic's output row (screen index string plus
// one field per diagnostic), flushing to file once the cache fills.
// Thread-safe: one Handler may be shared by an entire worker pool, one
// record at a time per geodesic.
func (h *Handler) Record(row []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cached = append(h.cached, row)
	limit := h.cfg.CacheSize
	if limit <= 0 {
		limit = 1
	}
	if len(h.cached) >= limit {
		h.flushLocked()
	}
}

// Close flushes any remaining cached output. Call once all geodesics
// have finished.
func (h *Handler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.flushLocked()
	if h.file != nil {
		h.writer.Flush()
		h.file.Close()
	}
}

func (h *Handler) flushLocked() {
	if len(h.cached) == 0 {
		return
	}
	if !h.toConsole {
		if err := h.ensureWriterLocked(); err != nil {
			h.log.Warn("msg", "switching output to console", "err", err)
			h.toConsole = true
		}
	}
	if h.toConsole {
		for _, row := range h.cached {
			fmt.Println(joinRow(row))
		}
	} else {
		for _, row := range h.cached {
			if err := h.writer.Write(row); err != nil {
				h.log.Warn("msg", "switching output to console", "err", err)
				h.toConsole = true
				fmt.Println(joinRow(row))
			}
		}
		h.writer.Flush()
	}
	h.cached = h.cached[:0]
}

func (h *Handler) ensureWriterLocked() error {
	if h.writer != nil {
		return nil
	}
	name := h.cfg.FilePrefix
	if h.cfg.Timestamp {
		name = fmt.Sprintf("%s-%s", name, h.timestamp)
	}
	path := fmt.Sprintf("%s/%s.csv", h.cfg.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	h.file = f
	h.writer = csv.NewWriter(f)
	if !h.wroteHeader {
		header := append([]string{"screen_index"}, h.cfg.DiagNames...)
		if err := h.writer.Write(header); err != nil {
			return err
		}
		h.wroteHeader = true
	}
	return nil
}

func joinRow(row []string) string {
	out := row[0]
	for _, f := range row[1:] {
		out += " " + f
	}
	return out
}
