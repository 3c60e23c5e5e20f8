package quad

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MightyBOBcnc/SimpleHydrology/cellpool"
)

func testNode(t *testing.T, edge, stride int) Node {
	t.Helper()
	cells := (edge / stride) * (edge / stride)
	pool := cellpool.NewPool[cellpool.Cell](cells)
	s := cellpool.NewSlice(pool.Acquire(cells), image.Pt(edge/stride, edge/stride))
	return NewNode(image.Pt(0, 0), image.Pt(edge, edge), stride, 80, s)
}

func TestNodeWorldToLocal(t *testing.T) {
	pool := cellpool.NewPool[cellpool.Cell](16)
	s := cellpool.NewSlice(pool.Acquire(16), image.Pt(4, 4))
	n := NewNode(image.Pt(8, 12), image.Pt(8, 8), 2, 80, s)

	assert.Equal(t, image.Pt(0, 0), n.WorldToLocal(n.Pos))

	// Round trip: every local coordinate maps back through the stride.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			l := image.Pt(x, y)
			world := n.Pos.Add(l.Mul(2))
			assert.Equal(t, l, n.WorldToLocal(world), "world %v", world)
			assert.False(t, n.OutOfBounds(world))
			assert.NotNil(t, n.Get(world))
		}
	}
}

func TestNodeOutOfBounds(t *testing.T) {
	n := testNode(t, 4, 1)
	for _, p := range []image.Point{
		image.Pt(-1, 0),
		image.Pt(0, -1),
		image.Pt(4, 0),
		image.Pt(0, 4),
		image.Pt(4, 4),
	} {
		t.Run(fmt.Sprintf("%v", p), func(t *testing.T) {
			assert.True(t, n.OutOfBounds(p))
			assert.Nil(t, n.Get(p))
		})
	}
}

func TestNodeAccessorDefaults(t *testing.T) {
	n := testNode(t, 4, 1)
	n.Get(image.Pt(1, 1)).Height = 3.5
	n.Get(image.Pt(1, 1)).Discharge = 2

	assert.Equal(t, float32(3.5), n.Height(image.Pt(1, 1)))
	assert.Greater(t, n.Discharge(image.Pt(1, 1)), float32(0))

	// Beyond the edge every scalar accessor reads as a defined default.
	assert.Equal(t, float32(0), n.Height(image.Pt(-1, -1)))
	assert.Equal(t, float32(0), n.Discharge(image.Pt(9, 0)))
}

func TestNodeSectionUnclaimed(t *testing.T) {
	n := testNode(t, 4, 1)
	assert.Equal(t, -1, n.Section)
}

func TestNodeStrideScalesFootprint(t *testing.T) {
	// An 8x8 world-unit tile at stride 2 stores only 4x4 cells, but its
	// footprint still answers every world coordinate inside it.
	n := testNode(t, 8, 2)
	assert.Equal(t, 16, n.Slice().Size())
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.NotNil(t, n.Get(image.Pt(x, y)))
		}
	}
	// Coordinates sharing a stride bucket share a cell.
	n.Get(image.Pt(0, 0)).Height = 7
	assert.Equal(t, float32(7), n.Height(image.Pt(1, 1)))
	assert.Equal(t, float32(0), n.Height(image.Pt(2, 2)))
}
