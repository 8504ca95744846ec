package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config represents the startup parameters for the application. Values can
// come from flags or a JSON file.
type Config struct {
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	CellSize int     `json:"cell_size"`
	Speed    int     `json:"speed"`
	Wrap     bool    `json:"wrap"`
	Seed     int64   `json:"seed"`
	Density  float64 `json:"density"`
	Workers  int     `json:"workers"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     50,
		Cols:     50,
		CellSize: 16,
		Speed:    10,
		Wrap:     true,
		Seed:     42,
		Density:  0,
		Workers:  1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board width in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations per second (1-60)")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap the board edges into a torus")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial board")
	fs.Float64Var(&c.Density, "density", c.Density, "live fraction of the random initial board (0 starts empty)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation advance")
}

// Load resolves the final configuration after fs has been parsed: values
// from the JSON file at path overlay the defaults, but flags the user set
// explicitly keep precedence over the file. An empty path is a no-op.
func (c *Config) Load(fs *flag.FlagSet, path string) error {
	if path == "" {
		return nil
	}
	// Snapshot explicitly set flags before the file overwrites the bound
	// fields.
	set := map[string]string{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
	if err := c.LoadFile(path); err != nil {
		return err
	}
	for name, value := range set {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "re-apply flag -%s", name)
		}
	}
	return nil
}

// LoadFile overlays values from a JSON config file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Validate rejects settings the engine or window geometry cannot take.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("board dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return errors.Errorf("speed must be in [%d,%d], got %d", MinSpeed, MaxSpeed, c.Speed)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be in [0,1], got %g", c.Density)
	}
	return nil
}
