package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// BusConfig selects the I2C bus.
type BusConfig struct {
	Name    string `mapstructure:"name"`
	SpeedHz int64  `mapstructure:"speedHz"`
}

// PacingConfig limits how fast frames are written.
type PacingConfig struct {
	FramesPerSecond float64 `mapstructure:"framesPerSecond"`
	Burst           int     `mapstructure:"burst"`
}

// LumberjackConfig is the rotated log file configuration.
type LumberjackConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge"`
	Compress   bool   `mapstructure:"compress"`
}

// LoggingConfig sets log level and output.
type LoggingConfig struct {
	Level  string           `mapstructure:"level"`
	Format string           `mapstructure:"format"`
	File   LumberjackConfig `mapstructure:"file"`
}

// MetricsConfig exposes Prometheus metrics when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
	Path string `mapstructure:"path"`
}

// Config is the top-level dmdctl configuration.
type Config struct {
	Bus       BusConfig     `mapstructure:"bus"`
	Profile   string        `mapstructure:"profile"`
	Addr      uint16        `mapstructure:"addr"`
	MaxColour int           `mapstructure:"maxColour"`
	DryRun    bool          `mapstructure:"dryRun"`
	Pacing    PacingConfig  `mapstructure:"pacing"`
	Logging   LoggingConfig `mapstructure:"logging"`
	Metrics   MetricsConfig `mapstructure:"metrics"`
}

// Load reads configuration from a YAML/TOML/JSON file and DMD_ environment
// variables. An empty path looks for dmdctl.* in the working directory and
// falls back to defaults when none exists.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("dmdctl")
	}

	setDefaults(v)

	v.SetEnvPrefix("DMD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.MaxColour < 0 || cfg.MaxColour > 7 {
		return nil, fmt.Errorf("maxColour %d out of range [0, 7]", cfg.MaxColour)
	}
	if cfg.Pacing.FramesPerSecond < 0 {
		return nil, errors.New("pacing.framesPerSecond must not be negative")
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bus.name", "")
	v.SetDefault("bus.speedHz", 0)

	v.SetDefault("profile", "full")
	v.SetDefault("addr", 0)
	v.SetDefault("maxColour", 1)
	v.SetDefault("dryRun", false)

	v.SetDefault("pacing.framesPerSecond", 0)
	v.SetDefault("pacing.burst", 1)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.filename", "")
	v.SetDefault("logging.file.maxSize", 10)
	v.SetDefault("logging.file.maxBackups", 3)
	v.SetDefault("logging.file.maxAge", 7)
	v.SetDefault("logging.file.compress", false)

	v.SetDefault("metrics.addr", "")
	v.SetDefault("metrics.path", "/metrics")
}
