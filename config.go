package foo

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the TOML-backed configuration of the fixed capacities spec.md
// §5 requires ("part of the specification; exceeding them is an error,
// never a resize") and the module search path of spec.md §4.6, grounded on
// the lookbusy1344-arm_emulator config package's Load/LoadFrom shape.
type Config struct {
	Capacities struct {
		IntStack   int `toml:"int_stack"`
		FloatStack int `toml:"float_stack"`
		LoopStack  int `toml:"loop_stack"`
		IntVars    int `toml:"int_vars"`
		FloatVars  int `toml:"float_vars"`
		WordMax    int `toml:"word_max"`
		ExprMax    int `toml:"expr_max"`
	} `toml:"capacities"`

	Modules struct {
		Path []string `toml:"path"`
	} `toml:"modules"`
}

// DefaultConfig returns a Config populated with the built-in defaults of
// interp.go's Default* constants.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Capacities.IntStack = DefaultIntStackCap
	cfg.Capacities.FloatStack = DefaultFloatStackCap
	cfg.Capacities.LoopStack = DefaultLoopStackCap
	cfg.Capacities.IntVars = DefaultIntVarCap
	cfg.Capacities.FloatVars = DefaultFloatVarCap
	cfg.Capacities.WordMax = DefaultWordMax
	cfg.Capacities.ExprMax = DefaultExprMax
	return cfg
}

// LoadConfig reads path as TOML over the defaults; a missing file is not an
// error, matching LoadFrom's "file doesn't exist -> defaults" behavior.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options turns a Config into the Option values New expects.
func (c *Config) Options() Option {
	return Options(
		WithCapacities(Capacities{
			IntStack:   c.Capacities.IntStack,
			FloatStack: c.Capacities.FloatStack,
			LoopStack:  c.Capacities.LoopStack,
			IntVars:    c.Capacities.IntVars,
			FloatVars:  c.Capacities.FloatVars,
			WordMax:    c.Capacities.WordMax,
			ExprMax:    c.Capacities.ExprMax,
		}),
		WithModulePath(c.Modules.Path...),
	)
}
