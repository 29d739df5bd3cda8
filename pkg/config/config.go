// Package config is for run wide settings that are unmarshalled from viper,
// which merges (in decreasing priority) command line flags, GAPFISHER_
// environment variables, an optional settings file and the defaults below
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tanaes/gapfisher/pkg/clip"
)

// EnvPrefix is prepended to setting names to find their environment variables,
// e.g. GAPFISHER_DEVICE_HOST for device.host
const EnvPrefix = "GAPFISHER"

// Device holds the basecaller connection and the read-until decisions written
// to the device configuration
type Device struct {
	// the basecalling model the caller is running
	ConfigName string `mapstructure:"config-name"`
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`

	// whether the condition is a control region (no selection)
	Control bool `mapstructure:"control"`

	// the chunk window in which decisions are made
	MinChunks int    `mapstructure:"min-chunks"`
	MaxChunks string `mapstructure:"max-chunks"`

	// what to do with reads whose alignments are on or off target
	SingleOn  string `mapstructure:"single-on"`
	SingleOff string `mapstructure:"single-off"`
	MultiOn   string `mapstructure:"multi-on"`
	MultiOff  string `mapstructure:"multi-off"`
	NoSeq     string `mapstructure:"no-seq"`
	NoMap     string `mapstructure:"no-map"`
}

// Minimap holds how the external indexer is invoked
type Minimap struct {
	Binary string `mapstructure:"binary"`
	Preset string `mapstructure:"preset"`
}

// Config is the root-level settings struct
type Config struct {
	// length of the target window at each contig end
	Length  int     `mapstructure:"length"`
	Device  Device  `mapstructure:"device"`
	Minimap Minimap `mapstructure:"minimap"`
}

// SetDefaults registers the default value of every setting with v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("length", 2000)

	v.SetDefault("device.config-name", "dna_r9.4.1_450bps_hac")
	v.SetDefault("device.host", "127.0.0.1")
	v.SetDefault("device.port", "5555")
	v.SetDefault("device.control", false)
	v.SetDefault("device.min-chunks", 0)
	v.SetDefault("device.max-chunks", "inf")
	v.SetDefault("device.single-on", "stop_receiving")
	v.SetDefault("device.single-off", "unblock")
	v.SetDefault("device.multi-on", "stop_receiving")
	v.SetDefault("device.multi-off", "unblock")
	v.SetDefault("device.no-seq", "proceed")
	v.SetDefault("device.no-map", "unblock")

	v.SetDefault("minimap.binary", "minimap2")
	v.SetDefault("minimap.preset", "map-ont")
}

// Load populates a Config from v. If settingsFile is not empty it is read
// first; its format is taken from its extension (yaml, toml, json, ...).
// Flags should already have been bound to v by the caller.
func Load(v *viper.Viper, settingsFile string) (Config, error) {
	var c Config

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("reading settings file %s: %w", settingsFile, err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode settings: %w", err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

// Validate rejects settings that cannot produce a sensible run
func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w (got %d)", clip.ErrInvalidLength, c.Length)
	}
	if c.Minimap.Binary == "" {
		return fmt.Errorf("%w: minimap binary must not be empty", clip.ErrInvalidArgument)
	}
	return nil
}

// Default returns the default settings, ignoring the environment
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	var c Config
	// decoding the defaults into their own struct cannot fail
	_ = v.Unmarshal(&c)
	return c
}
