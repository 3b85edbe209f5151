package mesh

import (
	"fmt"
	"sort"
)

// DistanceFunc computes the mesh-comparison distance between two
// geodesics' final diagnostic values. It is the one method this mesh
// actually needs from a diagnostic.Diagnostic -- accepting the narrower
// function type here instead of the full interface avoids an import
// cycle between mesh and diagnostic and keeps the mesh's dependency
// surface honest about what it uses.
type DistanceFunc func(a, b []float64) float64

// Warnf is called with non-fatal, recoverable problems the mesh notices
// in its own bookkeeping (e.g. an iteration ending before every queued
// pixel reported in). Grounded on the ScreenOutput(..., Level_0_WARNING)
// calls scattered through Mesh.cpp; nil is a valid no-op logger.
type Warnf func(format string, args ...interface{})

// SquareSubdivisionMesh is the adaptive mesh of spec.md §4.8: it starts
// from a coarse grid and iteratively subdivides the pixels whose
// neighbors disagree the most, up to configured per-iteration and total
// pixel budgets. Grounded line-for-line on SquareSubdivisionMesh in the
// original source.
type SquareSubdivisionMesh struct {
	maxSubdivide            int
	iterationPixels         int
	maxPixels               int
	infinitePixels          bool
	initialSubdivideToFinal bool
	rowColSize              int
	distance                DistanceFunc
	warn                    Warnf

	allPixels    []PixelInfo
	allIndex     map[Index]int
	currentQueue []PixelInfo
	queueIndex   map[Index]int
	queueDone    []bool

	pixelsLeft int
}

// SquareSubdivisionConfig collects the tunables of the adaptive mesh.
type SquareSubdivisionConfig struct {
	InitialPixels           int // must be a perfect square
	MaxSubdivide            int
	IterationPixels         int
	MaxPixels               int
	InfinitePixels          bool
	InitialSubdivideToFinal bool
	Distance                DistanceFunc
	Warn                    Warnf
}

// NewSquareSubdivisionMesh builds the initial coarse grid and is ready
// to hand out its first iteration's worth of pixels.
func NewSquareSubdivisionMesh(cfg SquareSubdivisionConfig) *SquareSubdivisionMesh {
	initRowColSize := isqrt(cfg.InitialPixels)
	m := &SquareSubdivisionMesh{
		maxSubdivide:            cfg.MaxSubdivide,
		iterationPixels:         cfg.IterationPixels,
		maxPixels:               cfg.MaxPixels,
		infinitePixels:          cfg.InfinitePixels,
		initialSubdivideToFinal: cfg.InitialSubdivideToFinal,
		rowColSize:              (initRowColSize-1)*expInt(2, cfg.MaxSubdivide-1) + 1,
		distance:                cfg.Distance,
		warn:                    cfg.Warn,
		allIndex:                make(map[Index]int),
		queueIndex:              make(map[Index]int),
	}

	scale := expInt(2, cfg.MaxSubdivide-1)
	m.currentQueue = make([]PixelInfo, 0, cfg.InitialPixels)
	for i := 0; i < cfg.InitialPixels; i++ {
		row := 0
		for (row+1)*initRowColSize <= i {
			row++
		}
		col := i - row*initRowColSize

		level := 1
		if row == initRowColSize-1 || col == initRowColSize-1 {
			level = 0
		}

		idx := Index{Row: row * scale, Col: col * scale}
		m.currentQueue = append(m.currentQueue, newPixel(idx, level))
		m.queueIndex[idx] = len(m.currentQueue) - 1
	}

	if !m.infinitePixels {
		m.pixelsLeft = m.maxPixels - len(m.currentQueue)
	}
	m.queueDone = make([]bool, len(m.currentQueue))

	return m
}

func newPixel(idx Index, level int) PixelInfo {
	return PixelInfo{Index: idx, Level: level, Weight: -1}
}

func isqrt(n int) int {
	r := 0
	for r*r < n {
		r++
	}
	return r
}

// Finished implements Mesh: no new pixels were queued this iteration.
func (m *SquareSubdivisionMesh) Finished() bool { return len(m.currentQueue) == 0 }

// CurrentCount implements Mesh.
func (m *SquareSubdivisionMesh) CurrentCount() int { return len(m.currentQueue) }

// NextInitialPoint implements Mesh.
func (m *SquareSubdivisionMesh) NextInitialPoint(queuePos int) (Point, Index) {
	idx := m.currentQueue[queuePos].Index
	denom := float64(m.rowColSize - 1)
	return Point{U: float64(idx.Row) / denom, V: float64(idx.Col) / denom}, idx
}

// GeodesicFinished implements Mesh.
func (m *SquareSubdivisionMesh) GeodesicFinished(queuePos int, finalValue []float64) {
	m.currentQueue[queuePos].Value = finalValue
	m.queueDone[queuePos] = true
}

// Description implements Mesh.
func (m *SquareSubdivisionMesh) Description() string {
	maxPixelsStr := fmt.Sprintf("%d", m.maxPixels)
	if m.infinitePixels {
		maxPixelsStr = "infinite"
	}
	return fmt.Sprintf("Mesh: square subdivision (max subdivision: %d; pixels subdivided per iteration: %d; max total pixels: %s; if pixel is initially subdivided, will continue to max: %v)",
		m.maxSubdivide, m.iterationPixels, maxPixelsStr, m.initialSubdivideToFinal)
}

func (m *SquareSubdivisionMesh) warnf(format string, args ...interface{}) {
	if m.warn != nil {
		m.warn(format, args...)
	}
}

// updateAllNeighbors assigns right/lower neighbor indices to every
// pixel whose subdivision level allows neighbors and whose neighbors
// have not been assigned yet. It reports false if any pixel's right or
// lower neighbor is missing. Grounded on
// SquareSubdivisionMesh::UpdateAllNeighbors.
func (m *SquareSubdivisionMesh) updateAllNeighbors() bool {
	complete := true
	for i := range m.allPixels {
		p := &m.allPixels[i]
		if p.Level <= 0 || p.NeighborLower != 0 || p.NeighborRight != 0 {
			continue
		}
		step := expInt(2, m.maxSubdivide-p.Level)

		rightIdx := Index{Row: p.Index.Row, Col: p.Index.Col + step}
		if j, ok := m.allIndex[rightIdx]; ok {
			p.NeighborRight = j
		} else {
			m.warnf("pixel %v has no right neighbor", p.Index)
			complete = false
		}

		lowerIdx := Index{Row: p.Index.Row + step, Col: p.Index.Col}
		if j, ok := m.allIndex[lowerIdx]; ok {
			p.NeighborLower = j
		} else {
			m.warnf("pixel %v has no lower neighbor", p.Index)
			complete = false
		}
	}
	return complete
}

// updateAllWeights assigns a weight (the maximum diagnostic-distance to
// the right, lower and diagonal neighbor) to every pixel that needs
// one. The diagonal distance prefers the right-neighbor's lower
// neighbor; if that does not exist, it falls back to the
// lower-neighbor's right neighbor; if neither exists this is the
// lower-right corner pixel, and the diagonal distance simply reuses the
// already-computed lower distance. Grounded on
// SquareSubdivisionMesh::UpdateAllWeights.
func (m *SquareSubdivisionMesh) updateAllWeights() {
	for i := range m.allPixels {
		p := &m.allPixels[i]
		if !(p.Weight < 0 && p.Level > 0 && p.Level < m.maxSubdivide) {
			continue
		}

		dRight := m.distance(p.Value, m.allPixels[p.NeighborRight].Value)
		dLower := m.distance(p.Value, m.allPixels[p.NeighborLower].Value)

		var dDiag float64
		switch {
		case p.NeighborRight > 0 && m.allPixels[p.NeighborRight].NeighborLower > 0:
			dDiag = m.distance(p.Value, m.allPixels[m.allPixels[p.NeighborRight].NeighborLower].Value)
		case p.NeighborLower > 0 && m.allPixels[p.NeighborLower].NeighborRight > 0:
			dDiag = m.distance(p.Value, m.allPixels[m.allPixels[p.NeighborLower].NeighborRight].Value)
		default:
			dDiag = dLower
		}

		p.Weight = max3(dRight, dLower, dDiag)
	}
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// subdivideAndQueue subdivides the square with allPixels[ind] at its
// upper-left corner, queuing up to 5 new pixels for the next iteration.
// Grounded on SquareSubdivisionMesh::SubdivideAndQueue.
func (m *SquareSubdivisionMesh) subdivideAndQueue(ind int) {
	p := &m.allPixels[ind]
	newLevel := p.Level + 1
	p.Level = newLevel
	p.NeighborLower = 0
	p.NeighborRight = 0
	p.Weight = -1

	step := expInt(2, m.maxSubdivide-newLevel)
	row, col := p.Index.Row, p.Index.Col

	// Right, lower and diagonal neighbors will themselves have neighbors.
	m.placeOrUpgrade(Index{Row: row, Col: col + step}, newLevel)
	m.placeOrUpgrade(Index{Row: row + step, Col: col}, newLevel)
	m.placeOrUpgrade(Index{Row: row + step, Col: col + step}, newLevel)

	// The far corner pixels of the subdivided square will not have
	// neighbors of their own until a later subdivision reaches them.
	m.placeIfAbsent(Index{Row: row + 2*step, Col: col + step})
	m.placeIfAbsent(Index{Row: row + step, Col: col + 2*step})
}

// placeOrUpgrade either creates a new queued pixel at idx at the given
// level, upgrades the level of one already queued, or resets an
// existing placed pixel's neighbors/weight so updateAllNeighbors picks
// it back up.
func (m *SquareSubdivisionMesh) placeOrUpgrade(idx Index, level int) {
	if j, ok := m.allIndex[idx]; ok {
		existing := &m.allPixels[j]
		existing.Level = level
		existing.Weight = -1
		existing.NeighborLower = 0
		existing.NeighborRight = 0
		return
	}
	if j, ok := m.queueIndex[idx]; ok {
		if level > m.currentQueue[j].Level {
			m.currentQueue[j].Level = level
		}
		return
	}
	m.currentQueue = append(m.currentQueue, newPixel(idx, level))
	m.queueIndex[idx] = len(m.currentQueue) - 1
}

// placeIfAbsent queues idx at subdivision level 0 (no neighbors) unless
// it is already placed or already queued, in which case it is left
// untouched.
func (m *SquareSubdivisionMesh) placeIfAbsent(idx Index) {
	if _, ok := m.allIndex[idx]; ok {
		return
	}
	if _, ok := m.queueIndex[idx]; ok {
		return
	}
	m.currentQueue = append(m.currentQueue, newPixel(idx, 0))
	m.queueIndex[idx] = len(m.currentQueue) - 1
}

// EndCurrentLoop folds the finished queue into the permanent pixel set,
// then selects and subdivides the next iteration's candidates.
// Grounded on SquareSubdivisionMesh::EndCurrentLoop.
func (m *SquareSubdivisionMesh) EndCurrentLoop() {
	for _, done := range m.queueDone {
		if !done {
			m.warnf("not all pixels have been integrated")
			break
		}
	}

	startAt := len(m.allPixels)
	m.allPixels = append(m.allPixels, m.currentQueue...)
	for i := startAt; i < len(m.allPixels); i++ {
		m.allIndex[m.allPixels[i].Index] = i
	}
	m.currentQueue = nil
	m.queueIndex = make(map[Index]int)
	m.queueDone = nil

	if !(m.infinitePixels || m.pixelsLeft > 0) {
		return
	}

	// A missing neighbor breaks the mesh invariants: the warning has been
	// logged, and the next queue stays empty so the mesh finishes.
	if !m.updateAllNeighbors() {
		return
	}
	m.updateAllWeights()

	candidates := make([]int, 0, len(m.allPixels))
	for i, p := range m.allPixels {
		if !(p.Level > 0 && p.Level < m.maxSubdivide) {
			continue
		}
		if p.Weight > 0 || (m.initialSubdivideToFinal && p.Level > 1) {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := m.allPixels[candidates[i]], m.allPixels[candidates[j]]
		if pi.Weight != pj.Weight {
			return pi.Weight > pj.Weight
		}
		return pi.Level < pj.Level
	})

	if len(candidates) > m.iterationPixels {
		candidates = candidates[:m.iterationPixels]
	}

	m.currentQueue = make([]PixelInfo, 0, 5*len(candidates))
	m.queueIndex = make(map[Index]int)
	for _, ind := range candidates {
		m.subdivideAndQueue(ind)
	}

	if !m.infinitePixels && len(m.currentQueue) > m.pixelsLeft {
		m.currentQueue = m.currentQueue[:m.pixelsLeft]
	}
	if !m.infinitePixels {
		m.pixelsLeft -= len(m.currentQueue)
	}
	m.queueDone = make([]bool, len(m.currentQueue))
}
