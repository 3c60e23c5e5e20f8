// Package stats captures the range of a cell field across the world, for
// views that project raw field values onto display scales.
package stats

import (
	"fmt"
	"image"
	"math"

	"github.com/MightyBOBcnc/SimpleHydrology/cellpool"
)

// Stats capture the min, max, and mean of one dimension of the world.
type Stats struct {
	Min   float32
	Max   float32
	Num   int
	Total float64
}

// Reset spreads Min and Max to the farthest possible boundary values.
func (stats *Stats) Reset() {
	stats.Min = math.MaxFloat32
	stats.Max = -math.MaxFloat32
	stats.Num = 0
	stats.Total = 0
}

// Add accounts for a value, raising the max or lowering the min.
func (stats *Stats) Add(v float32) {
	if v > stats.Max {
		stats.Max = v
	}
	if v < stats.Min {
		stats.Min = v
	}
	stats.Num++
	stats.Total += float64(v)
}

// Spread returns the gap between the highest and lowest value.
func (stats *Stats) Spread() float32 {
	return stats.Max - stats.Min
}

// Project projects a value in the statistical range into [0, into].
func (stats *Stats) Project(from float32, into int) int {
	spread := stats.Spread()
	if spread <= 0 {
		return 0
	}
	out := int((from - stats.Min) / spread * float32(into))
	if out < 0 {
		return 0
	}
	if out > into {
		return into
	}
	return out
}

// Mean returns the average of the accounted values.
func (stats *Stats) Mean() float64 {
	if stats.Num == 0 {
		return 0
	}
	return stats.Total / float64(stats.Num)
}

func (stats *Stats) String() string {
	return fmt.Sprintf("%g...%g...%g", stats.Min, stats.Mean(), stats.Max)
}

// Field extracts one scalar from a cell.
type Field func(*cellpool.Cell) float32

// Height reads the terrain elevation field.
func Height(c *cellpool.Cell) float32 { return c.Height }

// Discharge reads the raw water flux field.
func Discharge(c *cellpool.Cell) float32 { return c.Discharge }

// Grid is anything exposing a run of tiles as slices, which is how the
// world walker avoids depending on the tiling package directly.
type Grid interface {
	Len() int
	Slice(i int) cellpool.Slice[cellpool.Cell]
}

// Measure resets the stats and accounts for the field across every cell
// of the grid.
func Measure(stats *Stats, g Grid, field Field) {
	stats.Reset()
	for i := 0; i < g.Len(); i++ {
		s := g.Slice(i)
		res := s.Res()
		for y := 0; y < res.Y; y++ {
			for x := 0; x < res.X; x++ {
				if c := s.Get(image.Pt(x, y)); c != nil {
					stats.Add(field(c))
				}
			}
		}
	}
}
