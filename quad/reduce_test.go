package quad

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MightyBOBcnc/SimpleHydrology/vec"
)

func TestNormalFlatGround(t *testing.T) {
	n := testNode(t, 4, 1)
	got := n.Normal(image.Pt(1, 1))
	assert.True(t, got.Within(vec.V3(0, 1, 0), 1e-6), "got %v", got)
}

func TestNormalIsolatedCell(t *testing.T) {
	// A 1x1 tile has no in-bounds quadrant at any step, so the normal
	// degenerates to the zero vector.
	n := testNode(t, 1, 1)
	assert.True(t, n.Normal(image.Pt(0, 0)).Zero())
}

func TestNormalSlope(t *testing.T) {
	n := testNode(t, 4, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			n.Get(image.Pt(x, y)).Height = 0.01 * float32(x)
		}
	}

	got := n.Normal(image.Pt(1, 1))
	assert.InDelta(t, 1.0, float64(got.Length()), 1e-5)
	assert.Less(t, got.X, float32(0), "normal leans against the ascent")
	assert.Greater(t, got.Y, float32(0))
	assert.InDelta(t, 0.0, float64(got.Z), 1e-5)
}

func TestNormalEdgeSkipsQuadrants(t *testing.T) {
	// At the tile corner only the NE quadrant is in bounds; the normal is
	// still unit length when a height difference exists.
	n := testNode(t, 4, 1)
	n.Get(image.Pt(1, 0)).Height = 0.05

	got := n.Normal(image.Pt(0, 0))
	assert.InDelta(t, 1.0, float64(got.Length()), 1e-5)
	assert.False(t, got.Within(vec.V3(0, 1, 0), 1e-6))
}

func TestNormalAcrossTileSeam(t *testing.T) {
	// Map-level normals sample the neighboring tile, node-level normals
	// cannot; at a seam they disagree for sloped terrain.
	m := testMap(t, testConfig())
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.Cell(image.Pt(x, y)).Height = 0.01 * float32(x) * float32(x)
		}
	}

	p := image.Pt(3, 3) // east edge of tile (0,0)
	mapNormal := m.Normal(p)
	nodeNormal := m.Get(p).Normal(p)
	assert.InDelta(t, 1.0, float64(mapNormal.Length()), 1e-5)
	assert.Less(t, mapNormal.X, float32(0))
	assert.False(t, mapNormal.Within(nodeNormal, 1e-6))
}

func TestDischargeMonotoneAndBounded(t *testing.T) {
	n := testNode(t, 4, 1)
	p := image.Pt(1, 1)

	prev := float32(-1)
	for _, d := range []float32{0, 0.1, 0.5, 1, 2, 5, 50} {
		n.Get(p).Discharge = d
		got := n.Discharge(p)
		assert.Greater(t, got, float32(-1))
		assert.Less(t, got, float32(1))
		assert.GreaterOrEqual(t, got, prev, "discharge %v", d)
		prev = got
	}
}
