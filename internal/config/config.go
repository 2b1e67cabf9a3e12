// Package config loads palettes configuration from files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g.
// PALETTES_GENERATE_OUTPUT.
const EnvPrefix = "PALETTES"

// Config is the full palettes configuration.
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate"`
	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	TUI      TUIConfig      `mapstructure:"tui" yaml:"tui"`

	// Path is the config file that was read, if any.
	Path string `mapstructure:"-" yaml:"-"`
}

// GenerateConfig controls `palettes gen`.
type GenerateConfig struct {
	// Output is the directory generated packages are written below.
	Output string `mapstructure:"output" yaml:"output"`
	// Package overrides the package name when a single palette is generated.
	Package string `mapstructure:"package" yaml:"package"`
	// Sources are palette files or directories to generate from when none
	// are given on the command line.
	Sources []string `mapstructure:"sources" yaml:"sources"`
	// ColorImport and PaletteImport override the runtime import paths
	// referenced by generated code.
	ColorImport   string `mapstructure:"color_import" yaml:"color_import,omitempty"`
	PaletteImport string `mapstructure:"palette_import" yaml:"palette_import,omitempty"`
}

// CatalogConfig adds palette directories ahead of the search paths.
type CatalogConfig struct {
	Dirs []string `mapstructure:"dirs" yaml:"dirs"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// TUIConfig configures the palette browser.
type TUIConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			Output:  "palettes",
			Sources: []string{},
		},
		Catalog: CatalogConfig{
			Dirs: []string{},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		TUI: TUIConfig{
			Theme: "default",
		},
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	if strings.TrimSpace(c.Generate.Output) == "" {
		return errors.New("generate.output is required")
	}
	return nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/palettes, falling back to
// ~/.config/palettes.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "palettes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "palettes")
	}
	return filepath.Join(home, ".config", "palettes")
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("generate.output", def.Generate.Output)
	v.SetDefault("generate.package", def.Generate.Package)
	v.SetDefault("generate.sources", def.Generate.Sources)
	v.SetDefault("generate.color_import", "")
	v.SetDefault("generate.palette_import", "")
	v.SetDefault("catalog.dirs", def.Catalog.Dirs)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("tui.theme", def.TUI.Theme)
}

// Load reads configuration. An explicit path must exist; otherwise
// "config.yaml" is looked up in ./.palettes and then DefaultConfigDir, and
// a missing file just means defaults. Environment variables override file
// values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".palettes")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Path = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfg.Path, err)
	}
	return cfg, nil
}

const configHeader = `# Palettes Configuration File
#
# Values can be overridden with environment variables prefixed with
# PALETTES_, e.g. PALETTES_LOGGING_LEVEL=debug.

`

// DefaultConfigYAML renders DefaultConfig as a commented YAML file.
func DefaultConfigYAML() ([]byte, error) {
	body, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("render default config: %w", err)
	}
	return append([]byte(configHeader), body...), nil
}
