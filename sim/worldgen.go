package sim

import (
	"image"

	"github.com/MightyBOBcnc/SimpleHydrology/cellpool"
	"github.com/MightyBOBcnc/SimpleHydrology/quad"
)

// hash2 mixes a coordinate and seed into a unit float. The mixing
// constants are the xorshift* multiplier and Knuth LCG increment, which
// keep adjacent lattice points decorrelated without any RNG state, so
// regeneration from the same seed is exact.
func hash2(x, y int, seed int64) float32 {
	state := uint64(x)*6364136223846793005 + uint64(y)*1442695040888963407 + uint64(seed)
	state ^= state >> 12
	state ^= state << 25
	state ^= state >> 27
	state *= 6364136223846793005
	return float32(state>>40) / float32(1<<24)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func smooth(t float32) float32 {
	return t * t * (3 - 2*t)
}

// valueNoise samples bilinear value noise on an integer lattice of the
// given period.
func valueNoise(p image.Point, period int, seed int64) float32 {
	cx, cy := floorDiv(p.X, period), floorDiv(p.Y, period)
	fx := smooth(float32(p.X-cx*period) / float32(period))
	fy := smooth(float32(p.Y-cy*period) / float32(period))

	v00 := hash2(cx, cy, seed)
	v10 := hash2(cx+1, cy, seed)
	v01 := hash2(cx, cy+1, seed)
	v11 := hash2(cx+1, cy+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Seed writes an initial fractal heightmap into every cell of the map:
// four octaves of value noise, each octave halving in period and
// amplitude. Heights land in roughly [0, 1); the same seed always
// produces the same world.
func Seed(m *quad.Map, seed int64) {
	cfg := m.Config()
	b := m.Bounds()
	for x := b.Min.X; x < b.Max.X; x += cfg.LodStride {
		for y := b.Min.Y; y < b.Max.Y; y += cfg.LodStride {
			p := image.Pt(x, y)
			var h, amp float32 = 0, 0.5
			period := cfg.WorldSize() / 2
			for o := 0; o < 4 && period >= 1; o++ {
				h += amp * valueNoise(p, period, seed+int64(o))
				amp /= 2
				period /= 2
			}
			c := m.Cell(p)
			*c = cellpool.Cell{Height: h}
		}
	}
}
