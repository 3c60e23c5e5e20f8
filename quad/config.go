// Package quad maintains the spatial tiling over the cell pool: nodes are
// fixed world-space tiles wrapping one pool slice each, and a map routes
// absolute world coordinates to the owning node. Derived quantities
// (normalized discharge, finite-difference surface normals) live here too,
// computed on demand from neighboring cells.
package quad

import (
	"fmt"
	"image"
)

// Config fixes the world and tile geometry for one map. It is established
// once at startup and threaded through pool sizing and map construction,
// so differently shaped worlds can coexist in one process.
type Config struct {
	// TileSize is the edge length of one tile in world units.
	TileSize int

	// MapSize is the number of tiles along each edge of the map.
	MapSize int

	// LodStride is the number of world units one stored cell spans along
	// each axis. TileSize must divide evenly by it.
	LodStride int

	// HeightScale exaggerates stored heights into world-space elevation
	// for normals and vertex positions.
	HeightScale float32
}

// DefaultConfig is the geometry the simulation has always run at.
func DefaultConfig() Config {
	return Config{
		TileSize:    512,
		MapSize:     2,
		LodStride:   2,
		HeightScale: 80,
	}
}

// Validate reports the first geometry constraint the config violates.
func (c Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("quad: tile size %d must be positive", c.TileSize)
	}
	if c.MapSize <= 0 {
		return fmt.Errorf("quad: map size %d must be positive", c.MapSize)
	}
	if c.LodStride <= 0 {
		return fmt.Errorf("quad: lod stride %d must be positive", c.LodStride)
	}
	if c.TileSize%c.LodStride != 0 {
		return fmt.Errorf("quad: lod stride %d must divide tile size %d", c.LodStride, c.TileSize)
	}
	if c.HeightScale <= 0 {
		return fmt.Errorf("quad: height scale %v must be positive", c.HeightScale)
	}
	return nil
}

// WorldSize returns the world edge length in world units.
func (c Config) WorldSize() int {
	return c.TileSize * c.MapSize
}

// Bounds returns the world rectangle the map covers.
func (c Config) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.WorldSize(), c.WorldSize())
}

// TileRes returns a tile's world-space footprint.
func (c Config) TileRes() image.Point {
	return image.Pt(c.TileSize, c.TileSize)
}

// TileCount returns the number of tiles in the map.
func (c Config) TileCount() int {
	return c.MapSize * c.MapSize
}

// CellsPerTile returns the cells stored per tile at the configured stride.
func (c Config) CellsPerTile() int {
	edge := c.TileSize / c.LodStride
	return edge * edge
}

// PoolSize returns the cell capacity a pool needs to back a full map.
func (c Config) PoolSize() int {
	return c.TileCount() * c.CellsPerTile()
}
