// Package config loads the simulator configuration from TOML.
package config

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/isacore/fault"
	"github.com/ezrec/isacore/isa"
	"github.com/ezrec/isacore/machine"
	"github.com/ezrec/isacore/translate"
)

var f = translate.From

var ErrUnknownKey = errors.New(f("unknown configuration key"))

// Machine configures the simulated processor.
type Machine struct {
	DelayedBranching bool   `toml:"delayed_branching"`
	CompactMemory    bool   `toml:"compact_memory"`
	MemorySize       uint32 `toml:"memory_size"` // Zero selects the layout default.
}

// Pseudo configures the pseudo-instruction resource.
type Pseudo struct {
	Resource string `toml:"resource"` // Empty selects the embedded resource.
}

// Config is the complete configuration.
type Config struct {
	Verbose bool    `toml:"verbose"`
	Machine Machine `toml:"machine"`
	Pseudo  Pseudo  `toml:"pseudo"`
}

// Default configuration.
func Default() Config {
	return Config{}
}

// Settings for the machine.
func (cfg *Config) Settings() machine.Settings {
	return machine.Settings{
		DelayedBranching: cfg.Machine.DelayedBranching,
		CompactMemory:    cfg.Machine.CompactMemory,
	}
}

// TextBase is the program load address.
func (cfg *Config) TextBase() uint32 {
	settings := cfg.Settings()
	return settings.TextBase()
}

// Catalog loads the instruction catalog, with the configured
// pseudo-instruction resource if any.
func (cfg *Config) Catalog() (cat *isa.Catalog, err error) {
	if cfg.Pseudo.Resource == "" {
		return isa.NewDefaultCatalog()
	}

	file, err := os.Open(cfg.Pseudo.Resource)
	if err != nil {
		err = &fault.ErrConfig{Source: cfg.Pseudo.Resource, Err: errors.Join(fault.ErrResource, err)}
		return
	}
	defer file.Close()

	return isa.NewCatalog(cfg.Pseudo.Resource, file)
}

// Decode a configuration from r, over the defaults.
// Source names r in errors.
func Decode(source string, r io.Reader) (cfg Config, err error) {
	cfg = Default()

	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		err = &fault.ErrConfig{Source: source, Err: err}
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		err = &fault.ErrConfig{Source: source, Err: errors.Join(ErrUnknownKey, errors.New(strings.Join(keys, ", ")))}
		return
	}

	return
}

// Load a configuration file.
func Load(path string) (cfg Config, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = &fault.ErrConfig{Source: path, Err: err}
		return
	}
	defer file.Close()

	return Decode(path, file)
}
