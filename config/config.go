// Package config loads the logger's start-up settings from defaults,
// CONLOG_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "CONLOG"

// Default configuration values.
const (
	// DefaultForceConsole is the default force-console setting.
	DefaultForceConsole = false

	// DefaultTimestamps is the default timestamp setting.
	DefaultTimestamps = false
)

// Config holds the settings read once at start-up.
type Config struct {
	// ForceConsole requires a freshly attached terminal.
	ForceConsole bool `mapstructure:"force_console"`

	// Timestamps prefixes every line with "[HH:MM:SS.mmm] ".
	Timestamps bool `mapstructure:"timestamps"`
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"force-console": "force_console",
	"timestamps":    "timestamps",
}

// setDefaults configures default values in the viper instance.
func setDefaults(viperInstance *viper.Viper) {
	viperInstance.SetDefault("force_console", DefaultForceConsole)
	viperInstance.SetDefault("timestamps", DefaultTimestamps)
}

// Load reads the configuration. Flags present in flags (which may be
// nil) override the environment when they were set explicitly.
func Load(flags *pflag.FlagSet) (*Config, error) {
	viperInstance := viper.New()
	setDefaults(viperInstance)

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viperInstance.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := viperInstance.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := viperInstance.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return &cfg, nil
}

// RegisterFlags adds the flags Load understands to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Bool("force-console", DefaultForceConsole, "require a freshly attached terminal; fail if none is available")
	flags.Bool("timestamps", DefaultTimestamps, "prefix every line with [HH:MM:SS.mmm]")
}
