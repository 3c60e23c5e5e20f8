package quad

import (
	"errors"
	"fmt"
	"image"

	"github.com/MightyBOBcnc/SimpleHydrology/cellpool"
	"github.com/MightyBOBcnc/SimpleHydrology/vec"
)

// ErrMisaligned is returned by Add when a node does not land on the next
// free slot of the fixed tile grid.
var ErrMisaligned = errors.New("quad: tile out of grid order")

// Map is the fixed arrangement of tiles covering the world. Lookup
// divides a world coordinate by the tile size to index the node list
// directly, which requires tiles to arrive in column-major grid order;
// Add enforces that rather than trusting the caller.
type Map struct {
	cfg    Config
	nodes  []Node
	bounds image.Rectangle
}

// NewMap returns an empty map with the given geometry.
func NewMap(cfg Config) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Map{cfg: cfg}, nil
}

// Config returns the map's geometry.
func (m *Map) Config() Config {
	return m.cfg
}

// Len returns the number of tiles added so far.
func (m *Map) Len() int {
	return len(m.nodes)
}

// Node returns the i'th tile in grid order.
func (m *Map) Node(i int) *Node {
	return &m.nodes[i]
}

// Slice returns the i'th tile's backing slice.
func (m *Map) Slice(i int) cellpool.Slice[cellpool.Cell] {
	return m.nodes[i].slice
}

// Bounds returns the union of all added tile footprints. It grows as
// tiles are added and never shrinks.
func (m *Map) Bounds() image.Rectangle {
	return m.bounds
}

// Add appends a node and extends the map bounds over its footprint. The
// node must be the next tile in grid order at the configured tile size,
// resolution, and stride; anything else would silently misroute Get.
func (m *Map) Add(n Node) error {
	if len(m.nodes) >= m.cfg.TileCount() {
		return fmt.Errorf("%w: map already holds %d tiles", ErrMisaligned, m.cfg.TileCount())
	}
	ind := len(m.nodes)
	want := image.Pt(ind/m.cfg.MapSize, ind%m.cfg.MapSize).Mul(m.cfg.TileSize)
	if n.Pos != want {
		return fmt.Errorf("%w: tile %d at %v, want %v", ErrMisaligned, ind, n.Pos, want)
	}
	if n.Res != m.cfg.TileRes() {
		return fmt.Errorf("%w: tile %d res %v, want %v", ErrMisaligned, ind, n.Res, m.cfg.TileRes())
	}
	if n.stride != m.cfg.LodStride {
		return fmt.Errorf("%w: tile %d stride %d, want %d", ErrMisaligned, ind, n.stride, m.cfg.LodStride)
	}
	m.nodes = append(m.nodes, n)
	m.bounds = m.bounds.Union(n.Bounds())
	return nil
}

// Build populates the map from the pool, acquiring one span per tile in
// grid order. The pool must hold at least Config.PoolSize free cells;
// running out mid-build is fatal to construction.
func (m *Map) Build(pool *cellpool.Pool[cellpool.Cell]) error {
	res := m.cfg.TileRes()
	cells := m.cfg.CellsPerTile()
	sliceRes := res.Div(m.cfg.LodStride)
	for i := 0; i < m.cfg.MapSize; i++ {
		for j := 0; j < m.cfg.MapSize; j++ {
			buf := pool.Acquire(cells)
			if buf.Len() == 0 {
				return fmt.Errorf("quad: pool exhausted acquiring tile (%d,%d): %d cells needed, %d free",
					i, j, cells, pool.Free())
			}
			pos := image.Pt(i, j).Mul(m.cfg.TileSize)
			n := NewNode(pos, res, m.cfg.LodStride, m.cfg.HeightScale, cellpool.NewSlice(buf, sliceRes))
			if err := m.Add(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// OutOfBounds reports whether p falls outside the union bounds of the
// added tiles.
func (m *Map) OutOfBounds(p image.Point) bool {
	return !p.In(m.bounds)
}

// Get returns the node owning world coordinate p, or nil when p is out
// of bounds.
func (m *Map) Get(p image.Point) *Node {
	if m.OutOfBounds(p) {
		return nil
	}
	ind := (p.X/m.cfg.TileSize)*m.cfg.MapSize + p.Y/m.cfg.TileSize
	if ind >= len(m.nodes) {
		return nil
	}
	return &m.nodes[ind]
}

// Height returns the stored height at p, or 0 beyond the world edge.
func (m *Map) Height(p image.Point) float32 {
	n := m.Get(p)
	if n == nil {
		return 0
	}
	return n.Height(p)
}

// Discharge returns the normalized discharge at p, or 0 beyond the world
// edge.
func (m *Map) Discharge(p image.Point) float32 {
	n := m.Get(p)
	if n == nil {
		return 0
	}
	return n.Discharge(p)
}

// Normal approximates the surface normal at p, sampling heights across
// tile seams so neighboring tiles shade continuously.
func (m *Map) Normal(p image.Point) vec.Vec3 {
	return Normal(m, p, m.cfg.LodStride, m.cfg.HeightScale)
}

// Cell returns direct mutable cell access at p, or nil beyond the world
// edge. The simulation writes primaries and track accumulators through
// this; the map imposes no ordering on those writes.
func (m *Map) Cell(p image.Point) *cellpool.Cell {
	n := m.Get(p)
	if n == nil {
		return nil
	}
	return n.Get(p)
}
