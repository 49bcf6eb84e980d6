// Package config provides Viper-based configuration management for clipdeck
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/deck"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/layout"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/parser"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/render"
)

// Config represents the complete clipdeck configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Report  ReportConfig  `mapstructure:"report"`
	Style   layout.Style  `mapstructure:"style"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// BodyLimit is an echo size string such as "32M".
	BodyLimit       string        `mapstructure:"body_limit"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig contains the texts and input settings of generated reports
type ReportConfig struct {
	TitleColumn       string      `mapstructure:"title_column"`
	CirculationColumn string      `mapstructure:"circulation_column"`
	SkipPrefixes      []string    `mapstructure:"skip_prefixes"`
	MaxLogoPixels     int         `mapstructure:"max_logo_pixels"`
	Creator           string      `mapstructure:"creator"`
	Labels            deck.Labels `mapstructure:"labels"`
}

// Load reads configuration from file and environment variables
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("clipdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/clipdeck")
	}

	// CLIPDECK_SERVER_ADDR overrides server.addr
	v.SetEnvPrefix("CLIPDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":10000")
	v.SetDefault("server.body_limit", "32M")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	p := parser.DefaultOptions()
	v.SetDefault("report.title_column", p.TitleColumn)
	v.SetDefault("report.circulation_column", p.CirculationColumn)
	v.SetDefault("report.skip_prefixes", p.SkipPrefixes)
	v.SetDefault("report.max_logo_pixels", clipdeck.DefaultOptions().MaxLogoPixels)
	v.SetDefault("report.creator", "clipdeck")

	labels := deck.DefaultLabels()
	v.SetDefault("report.labels.title", labels.Title)
	v.SetDefault("report.labels.subtitle", labels.Subtitle)
	v.SetDefault("report.labels.news_heading", labels.NewsHeading)
	v.SetDefault("report.labels.news_count", labels.NewsCount)
	v.SetDefault("report.labels.circulation_total", labels.CirculationTotal)
	v.SetDefault("report.labels.circulation", labels.Circulation)

	style := layout.DefaultStyle()
	v.SetDefault("style.background", style.Background)
	v.SetDefault("style.text_color", style.TextColor)
	v.SetDefault("style.title_font", style.TitleFont)
	v.SetDefault("style.body_font", style.BodyFont)
	v.SetDefault("style.title_size", style.TitleSize)
	v.SetDefault("style.body_size", style.BodySize)
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", cfg.Logging.Format)
	}

	if cfg.Server.Addr == "" {
		return fmt.Errorf("server address must not be empty")
	}

	if _, err := cfg.Options().Validate(); err != nil {
		return err
	}

	return nil
}

// Options returns the generation options described by the configuration
func (c *Config) Options() clipdeck.Options {
	opts := clipdeck.DefaultOptions()
	opts.Parser = parser.Options{
		TitleColumn:       c.Report.TitleColumn,
		CirculationColumn: c.Report.CirculationColumn,
		SkipPrefixes:      c.Report.SkipPrefixes,
	}
	opts.Labels = c.Report.Labels
	opts.Style = c.Style
	opts.MaxLogoPixels = c.Report.MaxLogoPixels
	opts.Metadata = render.Metadata{Title: c.Report.Labels.Title, Creator: c.Report.Creator}
	return opts
}
