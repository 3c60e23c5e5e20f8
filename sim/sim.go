// Package sim runs a small hydrology pass over the map: rainfall becomes
// discharge routed down steepest descent, moving sediment as it goes.
// Each tick accumulates into the cells' track fields and then folds the
// tracks into the primary fields, so readers between ticks always see one
// coherent generation.
package sim

import (
	"image"

	"github.com/MightyBOBcnc/SimpleHydrology/quad"
)

// Params tune one simulation instance.
type Params struct {
	// Rainfall is the discharge added to every cell per tick.
	Rainfall float32

	// Solubility scales how much sediment moving water carries.
	Solubility float32

	// Folding is the exponential smoothing rate at which track
	// accumulators fold into the primary fields, in (0, 1].
	Folding float32
}

// DefaultParams give a slow, stable erosion run.
func DefaultParams() Params {
	return Params{
		Rainfall:   0.1,
		Solubility: 0.01,
		Folding:    0.1,
	}
}

// Simulation owns the per-tick scratch state for one map. Ticks are
// synchronous and deterministic; a generation counter tracks progress.
type Simulation struct {
	m      *quad.Map
	params Params
	gen    int

	// Height deltas accumulate out of line so erosion and deposition
	// read one consistent surface per tick.
	dh map[image.Point]float32
}

// New prepares a simulation over an already-built map.
func New(m *quad.Map, params Params) *Simulation {
	return &Simulation{
		m:      m,
		params: params,
		dh:     make(map[image.Point]float32),
	}
}

// Gen returns the number of completed ticks.
func (s *Simulation) Gen() int {
	return s.gen
}

// Map returns the simulated map.
func (s *Simulation) Map() *quad.Map {
	return s.m
}

// descent returns the steepest strictly-downhill neighbor of p at the
// map's stride, or p itself when p is a pit or world edge minimum.
func (s *Simulation) descent(p image.Point) image.Point {
	stride := s.m.Config().LodStride
	best := p
	bestH := s.m.Height(p)
	for _, d := range []image.Point{
		{X: stride}, {X: -stride}, {Y: stride}, {Y: -stride},
	} {
		q := p.Add(d)
		if s.m.OutOfBounds(q) {
			continue
		}
		if h := s.m.Height(q); h < bestH {
			best, bestH = q, h
		}
	}
	return best
}

// Tick advances the world one generation.
func (s *Simulation) Tick() {
	s.rain()
	s.route()
	s.settle()
	s.fold()
	s.gen++
}

// rain charges every cell's discharge accumulator.
func (s *Simulation) rain() {
	s.each(func(p image.Point) {
		s.m.Cell(p).DischargeTrack += s.params.Rainfall
	})
}

// route sends each cell's standing discharge to its steepest-descent
// neighbor, tracking the momentum of the transfer. Reads touch only
// primary fields, so the pass is order-independent.
func (s *Simulation) route() {
	stride := float32(s.m.Config().LodStride)
	s.each(func(p image.Point) {
		c := s.m.Cell(p)
		q := s.descent(p)
		if q == p {
			// Pits keep their water standing.
			c.DischargeTrack += c.Discharge
			return
		}
		out := c.Discharge
		dst := s.m.Cell(q)
		dst.DischargeTrack += out
		dst.MomentumXTrack += float32(q.X-p.X) / stride * out
		dst.MomentumYTrack += float32(q.Y-p.Y) / stride * out
	})
}

// settle erodes along each flow path and deposits downhill, conserving
// total height.
func (s *Simulation) settle() {
	s.each(func(p image.Point) {
		q := s.descent(p)
		if q == p {
			return
		}
		c := s.m.Cell(p)
		drop := c.Height - s.m.Height(q)
		erode := s.params.Solubility * c.Discharge * drop
		if max := drop / 2; erode > max {
			erode = max
		}
		s.dh[p] -= erode
		s.dh[q] += erode
	})
	for p, d := range s.dh {
		s.m.Cell(p).Height += d
		delete(s.dh, p)
	}
}

// fold smooths the track accumulators into the primary fields and resets
// them for the next generation.
func (s *Simulation) fold() {
	k := s.params.Folding
	s.each(func(p image.Point) {
		c := s.m.Cell(p)
		c.Discharge = (1-k)*c.Discharge + k*c.DischargeTrack
		c.MomentumX = (1-k)*c.MomentumX + k*c.MomentumXTrack
		c.MomentumY = (1-k)*c.MomentumY + k*c.MomentumYTrack
		c.DischargeTrack = 0
		c.MomentumXTrack = 0
		c.MomentumYTrack = 0
	})
}

// each visits one world coordinate per stored cell, in tile grid order.
func (s *Simulation) each(f func(image.Point)) {
	stride := s.m.Config().LodStride
	b := s.m.Bounds()
	for x := b.Min.X; x < b.Max.X; x += stride {
		for y := b.Min.Y; y < b.Max.Y; y += stride {
			f(image.Pt(x, y))
		}
	}
}
