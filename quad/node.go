package quad

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/MightyBOBcnc/SimpleHydrology/cellpool"
	"github.com/MightyBOBcnc/SimpleHydrology/vec"
)

// Node is one tile of the world: a fixed world-space footprint whose cell
// data lives in a single pool slice at the tile's level of detail. The
// node owns its slice; the renderer section handle is managed elsewhere.
type Node struct {
	// Pos is the tile's absolute world position (its minimum corner).
	Pos image.Point

	// Res is the tile's world-space footprint.
	Res image.Point

	// Section is the renderer's vertex section handle for this tile.
	// Negative while no renderer has claimed the tile.
	Section int

	stride int
	scale  float32
	slice  cellpool.Slice[cellpool.Cell]
}

// NewNode places a slice of cells at pos covering res world units, with
// one cell per stride world units per axis.
func NewNode(pos, res image.Point, stride int, heightScale float32, s cellpool.Slice[cellpool.Cell]) Node {
	return Node{
		Pos:     pos,
		Res:     res,
		Section: -1,
		stride:  stride,
		scale:   heightScale,
		slice:   s,
	}
}

// Stride returns the node's level-of-detail stride in world units per cell.
func (n *Node) Stride() int {
	return n.stride
}

// Slice returns the node's backing slice.
func (n *Node) Slice() cellpool.Slice[cellpool.Cell] {
	return n.slice
}

// Bounds returns the node's world-space footprint rectangle.
func (n *Node) Bounds() image.Rectangle {
	return image.Rectangle{Min: n.Pos, Max: n.Pos.Add(n.Res)}
}

// WorldToLocal translates an absolute world coordinate into the slice's
// local grid.
func (n *Node) WorldToLocal(p image.Point) image.Point {
	return p.Sub(n.Pos).Div(n.stride)
}

// OutOfBounds reports whether the world coordinate falls outside the
// node's footprint. The test runs on world coordinates: integer division
// truncates toward zero, which would fold coordinates just west or north
// of the tile onto its first cell.
func (n *Node) OutOfBounds(p image.Point) bool {
	return !p.In(n.Bounds())
}

// Get returns the cell at world coordinate p, or nil outside the node.
func (n *Node) Get(p image.Point) *cellpool.Cell {
	if n.OutOfBounds(p) {
		return nil
	}
	return n.slice.Get(n.WorldToLocal(p))
}

// Height returns the stored height at p, or 0 outside the node. World
// edges are routine query targets, so a miss reads as flat ground rather
// than failing.
func (n *Node) Height(p image.Point) float32 {
	c := n.Get(p)
	if c == nil {
		return 0
	}
	return c.Height
}

// Discharge returns the stored discharge at p squashed through
// erf(0.4·d): a wetness indicator in (-1, 1) that grows monotonically
// with flux. Outside the node it returns 0.
func (n *Node) Discharge(p image.Point) float32 {
	c := n.Get(p)
	if c == nil {
		return 0
	}
	return math32.Erf(0.4 * c.Discharge)
}

// Normal approximates the surface normal at p from the node's own cells.
func (n *Node) Normal(p image.Point) vec.Vec3 {
	return Normal(n, p, n.stride, n.scale)
}
