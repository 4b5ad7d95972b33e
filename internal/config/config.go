package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig controls the listening socket.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// LoggerConfig controls the zerolog/lumberjack setup.
type LoggerConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// MarkdownConfig selects the HTML shell wrapped around converted markdown.
// Style is "document" (styled A4 template) or "plain" (bare passthrough).
type MarkdownConfig struct {
	Style string `yaml:"style"`
}

// PDFConfig controls the wkhtmltopdf invocation.
type PDFConfig struct {
	Binary       string  `yaml:"binary"`
	ScratchDir   string  `yaml:"scratch_dir"`
	PageSize     string  `yaml:"page_size"`
	DPI          int     `yaml:"dpi"`
	MarginTop    string  `yaml:"margin_top"`
	MarginBottom string  `yaml:"margin_bottom"`
	Zoom         float64 `yaml:"zoom"`
	// TimeoutSecs bounds a single render; 0 disables the bound.
	TimeoutSecs int `yaml:"timeout_secs"`
}

// Config is the root configuration for the md2pdf service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logger   LoggerConfig   `yaml:"logger"`
	Markdown MarkdownConfig `yaml:"markdown"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// Timeout returns the render bound as a duration, zero when disabled.
func (c PDFConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// Default returns the configuration matching the service's stock behavior:
// listen on 0.0.0.0:8080, resolve wkhtmltopdf via PATH, styled template.
func Default() Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = ":8080"
	cfg.Logger.Level = "info"
	cfg.Logger.MaxSizeMB = 10
	cfg.Logger.MaxBackups = 3
	cfg.Logger.MaxAgeDays = 14
	cfg.Markdown.Style = "document"
	cfg.PDF.Binary = "wkhtmltopdf"
	cfg.PDF.PageSize = "A4"
	cfg.PDF.DPI = 96
	cfg.PDF.MarginTop = "20mm"
	cfg.PDF.MarginBottom = "20mm"
	cfg.PDF.Zoom = 1.0
	return cfg
}

// Load reads the config file named by CONFIG_PATH, falling back to
// ./config.yaml. A missing file yields defaults; an unreadable or invalid
// file panics, since starting with half a config helps nobody.
func Load() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default()
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the config file at path, panicking on any
// error.
func LoadFrom(path string) Config {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("config: read %s: %v", path, err))
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic(fmt.Sprintf("config: parse %s: %v", path, err))
	}
	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("config: %s: %v", path, err))
	}
	return cfg
}

func (c Config) validate() error {
	if !strings.HasPrefix(c.Server.Port, ":") {
		return fmt.Errorf("server.port must start with ':', got %q", c.Server.Port)
	}
	switch c.Markdown.Style {
	case "document", "plain":
	default:
		return fmt.Errorf("markdown.style must be \"document\" or \"plain\", got %q", c.Markdown.Style)
	}
	if c.PDF.Binary == "" {
		return fmt.Errorf("pdf.binary is empty")
	}
	if c.PDF.DPI <= 0 {
		return fmt.Errorf("pdf.dpi must be positive, got %d", c.PDF.DPI)
	}
	if c.PDF.Zoom <= 0 {
		return fmt.Errorf("pdf.zoom must be positive, got %v", c.PDF.Zoom)
	}
	if c.PDF.TimeoutSecs < 0 {
		return fmt.Errorf("pdf.timeout_secs must not be negative, got %d", c.PDF.TimeoutSecs)
	}
	return nil
}
