package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-reportpdf/internal/fileutil"
	"github.com/alnah/go-reportpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxURLLength      = 2048 // Browser limit
	MaxPathLength     = 4096
	MaxPageSizeLength = 10 // "letter", "a4", "legal"
	MaxLevelLength    = 10 // "debug", "warn"
	MaxFormatLength   = 10 // "text", "json"
)

// Layout bounds in logical pixels.
const (
	MinPageDimension = 200
	MaxPageDimension = 8192
	MaxAssetBytes    = 256 << 20
	MaxAssetTimeout  = 10 * time.Minute
)

// DirName is the directory under the user config dir searched for configs.
const DirName = "go-reportpdf"

// Config holds all configuration for report generation.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Output OutputConfig `yaml:"output"`
	Fonts  FontsConfig  `yaml:"fonts"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

// LayoutConfig defines the logical page. Zero fields keep the defaults.
type LayoutConfig struct {
	Width        float64 `yaml:"width"`        // default 1190
	Height       float64 `yaml:"height"`       // default 1684
	MarginX      float64 `yaml:"marginX"`      // default 80
	MarginTop    float64 `yaml:"marginTop"`    // default 80
	MarginBottom float64 `yaml:"marginBottom"` // default 100
	SectionGap   float64 `yaml:"sectionGap"`   // default 32
}

// OutputConfig defines the PDF output.
type OutputConfig struct {
	PageSize string `yaml:"pageSize"` // "a4", "letter", "legal" (default: "a4")
	Validate *bool  `yaml:"validate"` // default true
	Dir      string `yaml:"dir"`      // Default output directory (empty = same as payload)
}

// FontsConfig defines the custom font.
type FontsConfig struct {
	URL string `yaml:"url"` // Used when the payload carries no fontUrl
}

// AssetsConfig defines how fonts and images are fetched.
type AssetsConfig struct {
	BaseURL  string        `yaml:"baseURL"`  // Site root for relative URLs
	BaseDir  string        `yaml:"baseDir"`  // Directory for file:// and relative URLs
	Timeout  time.Duration `yaml:"timeout"`  // Per HTTP fetch (default 30s)
	MaxBytes int64         `yaml:"maxBytes"` // Per asset (default 32MiB)
}

// LogConfig defines logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error" (default: "warn")
	Format string `yaml:"format"` // "text", "json" (default: "text")
}

// ValidateOutput reports whether PDF validation is enabled.
func (o OutputConfig) ValidateOutput() bool {
	return o.Validate == nil || *o.Validate
}

// Validate checks ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	if err := c.Layout.validate(); err != nil {
		return err
	}

	if err := validateFieldLength("output.pageSize", c.Output.PageSize, MaxPageSizeLength); err != nil {
		return err
	}
	switch strings.ToLower(c.Output.PageSize) {
	case "", "a4", "letter", "legal":
		// valid
	default:
		return fmt.Errorf("%w: output.pageSize %q (must be a4, letter, or legal)", ErrInvalidValue, c.Output.PageSize)
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("fonts.url", c.Fonts.URL, MaxURLLength); err != nil {
		return err
	}

	if err := validateFieldLength("assets.baseURL", c.Assets.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.Assets.BaseURL != "" && !fileutil.IsURL(c.Assets.BaseURL) {
		return fmt.Errorf("%w: assets.baseURL %q must be an http(s) URL", ErrInvalidValue, c.Assets.BaseURL)
	}
	if err := validateFieldLength("assets.baseDir", c.Assets.BaseDir, MaxPathLength); err != nil {
		return err
	}
	if c.Assets.Timeout < 0 || c.Assets.Timeout > MaxAssetTimeout {
		return fmt.Errorf("%w: assets.timeout must be between 0 and %s, got %s", ErrInvalidValue, MaxAssetTimeout, c.Assets.Timeout)
	}
	if c.Assets.MaxBytes < 0 || c.Assets.MaxBytes > MaxAssetBytes {
		return fmt.Errorf("%w: assets.maxBytes must be between 0 and %d, got %d", ErrInvalidValue, MaxAssetBytes, c.Assets.MaxBytes)
	}

	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
		// valid
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	if err := validateFieldLength("log.format", c.Log.Format, MaxFormatLength); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
		// valid
	default:
		return fmt.Errorf("%w: log.format %q (must be text or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

func (l LayoutConfig) validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"layout.width", l.Width},
		{"layout.height", l.Height},
	} {
		if f.value != 0 && (f.value < MinPageDimension || f.value > MaxPageDimension) {
			return fmt.Errorf("%w: %s must be between %d and %d, got %.0f", ErrInvalidValue, f.name, MinPageDimension, MaxPageDimension, f.value)
		}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"layout.marginX", l.MarginX},
		{"layout.marginTop", l.MarginTop},
		{"layout.marginBottom", l.MarginBottom},
		{"layout.sectionGap", l.SectionGap},
	} {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %.0f", ErrInvalidValue, f.name, f.value)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that keeps every built-in default.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{PageSize: "a4"},
		Log:    LogConfig{Level: "warn", Format: "text"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory, then ~/.config/go-reportpdf/, each with
// .yaml before .yml.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
