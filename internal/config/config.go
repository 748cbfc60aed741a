package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration problems
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config file")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// Config holds the application configuration
type Config struct {
	Logo   LogoConfig   `yaml:"logo"`
	Mark   MarkConfig   `yaml:"mark"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// LogoConfig holds the settings for the full logo asset
type LogoConfig struct {
	Source       string  `yaml:"source" default:"/home/joao/Downloads/solidus_logo.png" validate:"required"`
	Width        int     `yaml:"width" default:"720" validate:"min=1"`
	Threshold    int     `yaml:"threshold" default:"40" validate:"min=0,max=255"`
	PaddingRatio float64 `yaml:"padding_ratio" default:"0.65" validate:"gte=0"`
	ForceSquare  bool    `yaml:"force_square"`
}

// MarkConfig holds the settings for the square mark asset
type MarkConfig struct {
	Source       string  `yaml:"source" default:"/home/joao/Downloads/solidus_small_logo.png" validate:"required"`
	Size         int     `yaml:"size" default:"64" validate:"min=1"`
	Threshold    int     `yaml:"threshold" default:"55" validate:"min=0,max=255"`
	PaddingRatio float64 `yaml:"padding_ratio" default:"1.25" validate:"gte=0"`
	ForceSquare  bool    `yaml:"force_square" default:"true"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	Dir      string `yaml:"dir" default:"public/assets" validate:"required"`
	LogoName string `yaml:"logo_name" default:"solidus-logo.png" validate:"required,endswith=.png,excludesall=/"`
	MarkName string `yaml:"mark_name" default:"solidus-mark.png" validate:"required,endswith=.png,excludesall=/"`
	Debug    bool   `yaml:"debug"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
}

// Default returns a configuration with default values
func Default() *Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		// Only reachable with malformed default tags
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return &cfg
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, filename)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, filename, err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalidConfig, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
