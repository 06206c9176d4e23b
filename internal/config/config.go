package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Plot   PlotConfig
	UI     UIConfig
	Export ExportConfig
}

// PlotConfig holds polar plot settings.
type PlotConfig struct {
	// MaxRangeMM is the sensor's usable range; readings beyond it are
	// treated as no-return. The Botvac LDS tops out at 5 m.
	MaxRangeMM int `mapstructure:"max_range_mm"`
	// IntensityColors colors markers by reflected signal strength.
	IntensityColors bool `mapstructure:"intensity_colors"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// ThemeFile points at an optional TOML palette override.
	ThemeFile string `mapstructure:"theme_file"`
}

// ExportConfig holds scan export settings.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from file and env. Env var overrides use prefix LDSVIEW_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("plot.max_range_mm", 5000)
	v.SetDefault("plot.intensity_colors", true)
	v.SetDefault("ui.theme_file", "")
	v.SetDefault("export.dir", ".")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LDSVIEW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ldsview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LDSVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
