package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Query QueryConfig `mapstructure:"query"`
	View  ViewConfig  `mapstructure:"view"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives log output; empty discards it in the viewer and uses
	// stderr elsewhere.
	File string `mapstructure:"file"`
}

type QueryConfig struct {
	Precision int `mapstructure:"precision"`
}

type ViewConfig struct {
	ZoomStep     float64 `mapstructure:"zoom_step"`
	SidebarWidth int     `mapstructure:"sidebar_width"`
	Sort         string  `mapstructure:"sort"`
}

// SortKeys are the accepted values of view.sort.
var SortKeys = []string{"area", "vertices", "minx", "maxx", "miny", "maxy"}

// Load reads configuration from file and environment variables.
// An explicit path must exist; otherwise polyscope.yaml is looked up in
// "." and "./configs" and may be missing.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("query.precision", 1)
	v.SetDefault("view.zoom_step", 1.2)
	v.SetDefault("view.sidebar_width", 28)
	v.SetDefault("view.sort", "area")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("polyscope")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// POLYSCOPE_LOG_LEVEL -> log.level
	v.SetEnvPrefix("POLYSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration values are sane.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Query.Precision < 1 || c.Query.Precision > 12 {
		errs = append(errs, fmt.Sprintf("query.precision must be 1-12, got %d", c.Query.Precision))
	}
	if c.View.ZoomStep <= 1 {
		errs = append(errs, fmt.Sprintf("view.zoom_step must be greater than 1, got %g", c.View.ZoomStep))
	}
	if c.View.SidebarWidth < 10 {
		errs = append(errs, fmt.Sprintf("view.sidebar_width must be at least 10, got %d", c.View.SidebarWidth))
	}
	validSort := false
	for _, k := range SortKeys {
		if strings.EqualFold(c.View.Sort, k) {
			validSort = true
		}
	}
	if !validSort {
		errs = append(errs, fmt.Sprintf("view.sort must be one of %s, got %q", strings.Join(SortKeys, ", "), c.View.Sort))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
