// Package worldcfg loads the world configuration: map geometry, the
// initial terrain seed, and the hydrology tuning, from one YAML file
// established at startup.
package worldcfg

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MightyBOBcnc/SimpleHydrology/quad"
	"github.com/MightyBOBcnc/SimpleHydrology/sim"
)

// Config is the on-disk world description. Zero fields take defaults.
type Config struct {
	TileSize    int     `yaml:"tile_size"`
	MapSize     int     `yaml:"map_size"`
	LodStride   int     `yaml:"lod_stride"`
	HeightScale float32 `yaml:"height_scale"`

	Seed int64 `yaml:"seed"`

	Rainfall   float32 `yaml:"rainfall"`
	Solubility float32 `yaml:"solubility"`
	Folding    float32 `yaml:"folding"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	q := quad.DefaultConfig()
	p := sim.DefaultParams()
	return Config{
		TileSize:    q.TileSize,
		MapSize:     q.MapSize,
		LodStride:   q.LodStride,
		HeightScale: q.HeightScale,
		Seed:        1,
		Rainfall:    p.Rainfall,
		Solubility:  p.Solubility,
		Folding:     p.Folding,
	}
}

// Load reads the config at path, applying defaults for absent fields. An
// empty path yields the defaults without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the geometry and tuning ranges.
func (c Config) Validate() error {
	if err := c.Quad().Validate(); err != nil {
		return err
	}
	if c.Rainfall < 0 {
		return fmt.Errorf("worldcfg: rainfall %v must not be negative", c.Rainfall)
	}
	if c.Solubility < 0 {
		return fmt.Errorf("worldcfg: solubility %v must not be negative", c.Solubility)
	}
	if c.Folding <= 0 || c.Folding > 1 {
		return fmt.Errorf("worldcfg: folding %v must be in (0, 1]", c.Folding)
	}
	return nil
}

// Quad returns the map geometry portion of the config.
func (c Config) Quad() quad.Config {
	return quad.Config{
		TileSize:    c.TileSize,
		MapSize:     c.MapSize,
		LodStride:   c.LodStride,
		HeightScale: c.HeightScale,
	}
}

// Params returns the hydrology tuning portion of the config.
func (c Config) Params() sim.Params {
	return sim.Params{
		Rainfall:   c.Rainfall,
		Solubility: c.Solubility,
		Folding:    c.Folding,
	}
}
