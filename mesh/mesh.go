// Package mesh builds display geometry from map tiles: a fixed-capacity
// vertex pool carved into per-tile sections, a row-major triangulation
// over a tile's cell grid, and per-vertex fills carrying world position,
// surface normal, and color. The pool is plain memory; uploading it to a
// GPU or rasterizer is the embedding application's business.
package mesh

import (
	"fmt"
	"image"

	"github.com/MightyBOBcnc/SimpleHydrology/quad"
	"github.com/MightyBOBcnc/SimpleHydrology/shade"
	"github.com/MightyBOBcnc/SimpleHydrology/vec"
)

// Vertex is one display vertex of a tile's surface.
type Vertex struct {
	Position vec.Vec3
	Normal   vec.Vec3
	Color    shade.Color
}

// Section is a per-tile reservation inside the vertex pool: a vertex
// range plus the triangle index list over the tile's local grid.
type Section struct {
	Start   int
	Count   int
	Indices []uint32
}

// Pool is a fixed-capacity vertex store. Like the cell pool it only ever
// grows into its reservation; tiles claim a section once and refill it in
// place every update.
type Pool struct {
	verts    []Vertex
	next     int
	sections []Section
}

// NewPool reserves storage for capacity vertices.
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{verts: make([]Vertex, capacity)}
}

// Free returns the remaining unreserved vertex capacity.
func (p *Pool) Free() int {
	return len(p.verts) - p.next
}

// Section reserves a vertex range of the given size, returning its
// handle, or an error when the pool cannot hold it.
func (p *Pool) Section(count int) (int, error) {
	if count <= 0 || count > p.Free() {
		return -1, fmt.Errorf("mesh: no room for %d vertices, %d free", count, p.Free())
	}
	id := len(p.sections)
	p.sections = append(p.sections, Section{Start: p.next, Count: count})
	p.next += count
	return id, nil
}

// Vertices returns the vertex range of a section.
func (p *Pool) Vertices(id int) []Vertex {
	s := p.sections[id]
	return p.verts[s.Start : s.Start+s.Count]
}

// Indices returns a section's triangle index list, local to its vertex
// range.
func (p *Pool) Indices(id int) []uint32 {
	return p.sections[id].Indices
}

// Fill writes one vertex at the flattened local coordinate of a section.
// Coordinates outside the section are dropped, mirroring the cell pool's
// tolerance of edge overshoot.
func (p *Pool) Fill(id int, local int, v Vertex) {
	s := p.sections[id]
	if local < 0 || local >= s.Count {
		return
	}
	p.verts[s.Start+local] = v
}

// TriangleIndices returns the fixed row-major triangulation of a res.X by
// res.Y vertex grid: two triangles per quad, indices flattened the same
// way the cell slices flatten local coordinates.
func TriangleIndices(res image.Point) []uint32 {
	flatten := func(x, y int) uint32 {
		return uint32(y*res.X + x)
	}
	indices := make([]uint32, 0, 6*(res.X-1)*(res.Y-1))
	for x := 0; x < res.X-1; x++ {
		for y := 0; y < res.Y-1; y++ {
			indices = append(indices,
				flatten(x, y),
				flatten(x, y+1),
				flatten(x+1, y),

				flatten(x+1, y),
				flatten(x, y+1),
				flatten(x+1, y+1),
			)
		}
	}
	return indices
}

// IndexNode claims a pool section for the tile and attaches its triangle
// index list, recording the handle on the node. Call once per tile after
// the map is built.
func IndexNode(p *Pool, n *quad.Node) error {
	res := n.Res.Div(n.Stride())
	id, err := p.Section(res.X * res.Y)
	if err != nil {
		return fmt.Errorf("index tile at %v: %w", n.Pos, err)
	}
	p.sections[id].Indices = TriangleIndices(res)
	n.Section = id
	return nil
}

// UpdateNode refills the tile's section from current cell data: world
// position with exaggerated elevation, the finite-difference normal, and
// the terrain color for the cell's wetness and steepness. Normals and
// discharge sample through the surface, so passing the owning map shades
// continuously across tile seams.
func UpdateNode(p *Pool, n *quad.Node, t Surface, pal shade.Palette) {
	if n.Section < 0 {
		return
	}
	stride := n.Stride()
	res := n.Res.Div(stride)
	scale := t.Config().HeightScale
	for x := 0; x < res.X; x++ {
		for y := 0; y < res.Y; y++ {
			world := n.Pos.Add(image.Pt(x, y).Mul(stride))
			normal := t.Normal(world)
			height := scale * t.Height(world)
			color := pal.Terrain(t.Discharge(world), normal)

			p.Fill(n.Section, y*res.X+x, Vertex{
				Position: vec.V3(float32(world.X), height, float32(world.Y)),
				Normal:   normal,
				Color:    color,
			})
		}
	}
}

// Surface is the slice of map behavior UpdateNode needs: geometry plus
// the three derived per-coordinate quantities.
type Surface interface {
	Config() quad.Config
	Height(image.Point) float32
	Discharge(image.Point) float32
	Normal(image.Point) vec.Vec3
}

// Build claims and indexes a section for every tile of the map.
func Build(p *Pool, m *quad.Map) error {
	for i := 0; i < m.Len(); i++ {
		if err := IndexNode(p, m.Node(i)); err != nil {
			return err
		}
	}
	return nil
}

// Update refills every tile's section from current cell data.
func Update(p *Pool, m *quad.Map, pal shade.Palette) {
	for i := 0; i < m.Len(); i++ {
		UpdateNode(p, m.Node(i), m, pal)
	}
}
