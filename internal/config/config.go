package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/IvanShishkin/collider/internal/patterns"
	"github.com/spf13/viper"
)

// ErrInvalidConfig marks configuration problems detected before a scan starts
var ErrInvalidConfig = errors.New("invalid configuration")

// Supported hash algorithms
const (
	HashMD5    = "md5"
	HashSHA256 = "sha256"
	HashXXHash = "xxhash"
	HashXXH3   = "xxh3"
)

// Config represents the collision scanner configuration
type Config struct {
	// Scan settings
	Path              string   `mapstructure:"path"`               // root directory to scan
	Patterns          []string `mapstructure:"patterns"`           // include glob patterns, matched against lower-cased file names
	LightMapExclusion bool     `mapstructure:"exclude_lightmaps"`  // drop lodlights*.ymap and vw_*.ymap
	Workers           int      `mapstructure:"workers"`            // number of hashing goroutines
	HashAlgorithm     string   `mapstructure:"hash_algorithm"`     // md5, sha256, xxhash, xxh3
	Exclude           []string `mapstructure:"exclude"`            // directory names to prune
	CatalogPath       string   `mapstructure:"catalog_path"`       // optional YAML pattern catalog

	// Report settings
	ReportFormat string `mapstructure:"report_format"` // lua, txt, html, md, json, yaml; empty prints to console
	OutputFile   string `mapstructure:"output_file"`   // output file path
}

// reportFormats lists the accepted report format names
var reportFormats = []string{"", "lua", "txt", "text", "html", "md", "markdown", "json", "yaml", "yml"}

// DefaultPatterns are the recommended map asset patterns
var DefaultPatterns = []string{"*.ymap", "*.ybn", "*.ymt", "*.ytd"}

// LoadConfig loads configuration from an optional file, environment variables and defaults
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("patterns", DefaultPatterns)
	v.SetDefault("exclude_lightmaps", false)
	v.SetDefault("workers", runtime.NumCPU()*2)
	v.SetDefault("hash_algorithm", HashMD5)
	v.SetDefault("exclude", []string{})
	v.SetDefault("report_format", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	// Read environment variables
	v.SetEnvPrefix("COLLIDER")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings that do not touch the filesystem
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative (got %d)", ErrInvalidConfig, c.Workers)
	}

	switch c.Algorithm() {
	case HashMD5, HashSHA256, HashXXHash, HashXXH3:
	default:
		return fmt.Errorf("%w: unknown hash algorithm %q", ErrInvalidConfig, c.HashAlgorithm)
	}

	for _, p := range c.PatternsSnapshot() {
		if err := patterns.ValidatePattern(p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	format := strings.ToLower(c.ReportFormat)
	for _, f := range reportFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown report format %q", ErrInvalidConfig, c.ReportFormat)
}

// Algorithm returns the configured hash algorithm, defaulting to md5
func (c *Config) Algorithm() string {
	if c.HashAlgorithm == "" {
		return HashMD5
	}
	return strings.ToLower(c.HashAlgorithm)
}

// WorkerCount returns the effective number of hashing goroutines
func (c *Config) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU() * 2
	}
	return c.Workers
}

// PatternsSnapshot returns a lower-cased copy of the include patterns
func (c *Config) PatternsSnapshot() []string {
	out := make([]string, 0, len(c.Patterns))
	for _, p := range c.Patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
