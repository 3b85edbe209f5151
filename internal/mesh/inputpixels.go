package mesh

// InputPixelsMesh hands out a caller-supplied list of pixel coordinates
// rather than a full grid. Grounded on InputCertainPixelsMesh, whose
// original source reads coordinates interactively off stdin; here the
// list is passed to NewInputPixelsMesh by the caller, since an ambient
// CLI prompt loop has no place in a library API. EngineConfig carries
// no pixel list, so engine.Build does not construct this mesh.
type InputPixelsMesh struct {
	RowColSize int
	pixels     []Index
	done       bool
}

// NewInputPixelsMesh builds a mesh that will hand out exactly the given
// pixel coordinates, in order, against a grid of the given resolution.
func NewInputPixelsMesh(rowColSize int, pixels []Index) *InputPixelsMesh {
	return &InputPixelsMesh{RowColSize: rowColSize, pixels: pixels}
}

// Finished implements Mesh.
func (m *InputPixelsMesh) Finished() bool { return m.done }

// CurrentCount implements Mesh.
func (m *InputPixelsMesh) CurrentCount() int { return len(m.pixels) }

// NextInitialPoint implements Mesh. queuePos indexes directly into the
// fixed pixel list, so concurrent callers never contend over shared
// state.
func (m *InputPixelsMesh) NextInitialPoint(queuePos int) (Point, Index) {
	idx := m.pixels[queuePos]
	denom := float64(m.RowColSize - 1)
	return Point{U: float64(idx.Row) / denom, V: float64(idx.Col) / denom}, idx
}

// GeodesicFinished implements Mesh; no bookkeeping needed.
func (m *InputPixelsMesh) GeodesicFinished(int, []float64) {}

// EndCurrentLoop implements Mesh; there is only ever one loop.
func (m *InputPixelsMesh) EndCurrentLoop() { m.done = true }

// Description implements Mesh.
func (m *InputPixelsMesh) Description() string { return "Mesh: user-input pixels" }
