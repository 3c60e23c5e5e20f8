package mesh

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MightyBOBcnc/SimpleHydrology/cellpool"
	"github.com/MightyBOBcnc/SimpleHydrology/quad"
	"github.com/MightyBOBcnc/SimpleHydrology/shade"
)

func testMap(t *testing.T) *quad.Map {
	t.Helper()
	cfg := quad.Config{TileSize: 4, MapSize: 2, LodStride: 1, HeightScale: 80}
	m, err := quad.NewMap(cfg)
	assert.NoError(t, err)
	assert.NoError(t, m.Build(cellpool.NewPool[cellpool.Cell](cfg.PoolSize())))
	return m
}

func TestTriangleIndices(t *testing.T) {
	res := image.Pt(4, 3)
	indices := TriangleIndices(res)

	// Two triangles per quad of the vertex grid.
	assert.Len(t, indices, 6*(res.X-1)*(res.Y-1))

	for _, i := range indices {
		assert.Less(t, i, uint32(res.X*res.Y))
	}

	// First quad: the shared diagonal edge appears in both triangles.
	assert.Equal(t, []uint32{0, 4, 1, 1, 4, 5}, indices[:6])
}

func TestSectionReservation(t *testing.T) {
	p := NewPool(20)
	a, err := p.Section(16)
	assert.NoError(t, err)
	assert.Equal(t, 16, len(p.Vertices(a)))
	assert.Equal(t, 4, p.Free())

	_, err = p.Section(5)
	assert.Error(t, err)
	assert.Equal(t, 4, p.Free())

	b, err := p.Section(4)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 0, p.Free())
}

func TestFillBounds(t *testing.T) {
	p := NewPool(4)
	id, err := p.Section(4)
	assert.NoError(t, err)

	v := Vertex{Color: shade.Color{R: 1, A: 1}}
	p.Fill(id, 2, v)
	assert.Equal(t, v, p.Vertices(id)[2])

	// Overshooting the section is dropped, not a panic.
	p.Fill(id, 4, v)
	p.Fill(id, -1, v)
}

func TestBuildClaimsEveryTile(t *testing.T) {
	m := testMap(t)
	p := NewPool(m.Config().PoolSize())
	assert.NoError(t, Build(p, m))

	seen := map[int]bool{}
	for i := 0; i < m.Len(); i++ {
		n := m.Node(i)
		assert.GreaterOrEqual(t, n.Section, 0)
		assert.False(t, seen[n.Section], "section %d claimed twice", n.Section)
		seen[n.Section] = true
		assert.Len(t, p.Indices(n.Section), 6*3*3)
	}
	assert.Equal(t, 0, p.Free())
}

func TestBuildExhausted(t *testing.T) {
	m := testMap(t)
	p := NewPool(m.Config().PoolSize() - 1)
	assert.Error(t, Build(p, m))
}

func TestUpdateFillsVertices(t *testing.T) {
	m := testMap(t)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.Cell(image.Pt(x, y)).Height = 0.01 * float32(x)
		}
	}

	p := NewPool(m.Config().PoolSize())
	assert.NoError(t, Build(p, m))
	Update(p, m, shade.DefaultPalette())

	// Vertex for world (5,5): tile at (4,4), local (1,1), flat index 5.
	n := m.Get(image.Pt(5, 5))
	v := p.Vertices(n.Section)[1*4+1]
	assert.Equal(t, float32(5), v.Position.X)
	assert.Equal(t, float32(5), v.Position.Z)
	assert.InDelta(t, 80*0.05, float64(v.Position.Y), 1e-4)
	assert.InDelta(t, 1.0, float64(v.Normal.Length()), 1e-5)
	assert.Greater(t, v.Color.A, float32(0))
}
