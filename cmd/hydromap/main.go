// Command hydromap runs the hydrology world in a terminal: it builds the
// cell pool and tile map from a world config, seeds terrain, ticks the
// simulation, and draws height/wetness shading into the screen grid.
//
// Keys: q or Ctrl-C quits, p pauses, n steps one generation while paused.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/jcorbin/anansi/ansi"
	"github.com/jcorbin/anansi/x/platform"

	"github.com/MightyBOBcnc/SimpleHydrology/cellpool"
	"github.com/MightyBOBcnc/SimpleHydrology/quad"
	"github.com/MightyBOBcnc/SimpleHydrology/shade"
	"github.com/MightyBOBcnc/SimpleHydrology/sim"
	"github.com/MightyBOBcnc/SimpleHydrology/stats"
	"github.com/MightyBOBcnc/SimpleHydrology/worldcfg"
)

var errInt = errors.New("interrupt")

var configPath = flag.String("config", "", "path to world YAML; empty for defaults")

func main() {
	flag.Parse()

	cfg, err := worldcfg.Load(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	v, err := newView(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	platform.MustRun(os.Stdin, os.Stdout, func(p *platform.Platform) error {
		for {
			if err := p.Run(v); platform.IsReplayDone(err) {
				continue // loop replay
			} else if err == io.EOF || err == errInt {
				return nil
			} else if err != nil {
				log.Printf("exiting due to %v", err)
				return err
			}
		}
	}, platform.FrameRate(30), platform.Config{
		LogFileName: "hydromap.log",
	})
}

type view struct {
	m       *quad.Map
	sim     *sim.Simulation
	pal     shade.Palette
	heights stats.Stats
	ticking bool
}

func newView(cfg worldcfg.Config) (*view, error) {
	q := cfg.Quad()
	m, err := quad.NewMap(q)
	if err != nil {
		return nil, err
	}
	if err := m.Build(cellpool.NewPool[cellpool.Cell](q.PoolSize())); err != nil {
		return nil, err
	}
	sim.Seed(m, cfg.Seed)
	return &view{
		m:       m,
		sim:     sim.New(m, cfg.Params()),
		pal:     shade.DefaultPalette(),
		ticking: true,
	}, nil
}

func (v *view) Update(ctx *platform.Context) (err error) {
	// Ctrl-C interrupts
	if ctx.Input.HasTerminal('\x03') {
		err = errInt
	}
	if ctx.Input.CountRune('q') > 0 {
		err = errInt
	}

	// Ctrl-Z suspends
	if ctx.Input.CountRune('\x1a') > 0 {
		defer func() {
			if err == nil {
				err = ctx.Suspend()
			}
		}()
	}

	if ctx.Input.CountRune('p')%2 == 1 {
		v.ticking = !v.ticking
	}
	if v.ticking || ctx.Input.CountRune('n') > 0 {
		v.sim.Tick()
	}

	stats.Measure(&v.heights, v.m, stats.Height)
	v.draw(ctx)

	if ctx.HUD.Visible {
		pt := ansi.Pt(1, 2)
		ctx.Output.To(pt)
		fmt.Fprintf(ctx.Output, "gen:%d", v.sim.Gen())

		pt = ansi.Pt(1, pt.Y+1)
		ctx.Output.To(pt)
		fmt.Fprintf(ctx.Output, "height:%s", v.heights.String())
	}

	return
}

// draw shades every screen cell from the world coordinate it covers.
// Terminal cells are about twice as tall as wide, so the vertical world
// step doubles to keep the map square.
func (v *view) draw(ctx *platform.Context) {
	grid := ctx.Output.Grid
	rect := grid.Rect
	size := rect.Size()
	bounds := v.m.Bounds()
	if size.X <= 0 || size.Y <= 0 || bounds.Empty() {
		return
	}

	step := bounds.Dx() / size.X
	if s := bounds.Dy() / (2 * size.Y); s > step {
		step = s
	}
	if step < 1 {
		step = 1
	}

	var pt ansi.Point
	for pt.Y = rect.Min.Y; pt.Y < rect.Max.Y; pt.Y++ {
		for pt.X = rect.Min.X; pt.X < rect.Max.X; pt.X++ {
			o, ok := grid.CellOffset(pt)
			if !ok {
				continue
			}
			ipt := pt.ToImage()
			world := image.Pt(ipt.X*step, ipt.Y*2*step).Add(bounds.Min)
			if v.m.OutOfBounds(world) {
				continue
			}

			c := v.cellColor(world)
			grid.Rune[o] = ' '
			grid.Attr[o] = ansi.RGB(c.R, c.G, c.B).BG()
		}
	}
}

// cellColor is the map's terrain color darkened toward the valleys, so
// relief reads even where the palette is uniform.
func (v *view) cellColor(p image.Point) color.RGBA {
	base := v.pal.Terrain(v.m.Discharge(p), v.m.Normal(p)).RGBA()
	light := 128 + uint32(v.heights.Project(v.m.Height(p), 127))
	return color.RGBA{
		R: uint8(uint32(base.R) * light / 255),
		G: uint8(uint32(base.G) * light / 255),
		B: uint8(uint32(base.B) * light / 255),
		A: 0xff,
	}
}
