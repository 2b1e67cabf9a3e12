// Package cli implements the palettes command line.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/palettes/internal/catalog"
	"github.com/opencode-ai/palettes/internal/config"
	"github.com/opencode-ai/palettes/internal/logging"
)

var (
	configFile     string
	projectDir     string
	jsonOutput     bool
	jsonlOutput    bool
	logLevel       string
	nonInteractive bool
	noProgress     bool

	appConfig *config.Config
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "palettes",
	Short: "Compile palette declarations into Go packages",
	Long: `palettes parses palette declarations, such as

  Warm {
      "ember": "#ff4000",
      "ash": (0.5, 0.5, 0.5),
  }

and generates Go packages exposing each color as a typed constant, an
accessor method, and a name lookup.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default .palettes/config.yaml, then $XDG_CONFIG_HOME/palettes/config.yaml)")
	flags.StringVar(&projectDir, "project", "", "project directory searched for .palettes/ (default: current directory)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
}

// Execute runs the root command and prints errors the way users expect.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		return 1
	}
	return 0
}

func initConfig() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return &PreflightError{
			Message:  err.Error(),
			Hint:     "Fix the config file or point --config at a valid one",
			NextStep: "palettes init --force",
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := logging.Init(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format}); err != nil {
		return err
	}

	appConfig = cfg
	logger = logging.Component("cli")
	if cfg.Path != "" {
		logger.Debug().Str("path", cfg.Path).Msg("loaded config")
	}
	return nil
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool { return jsonOutput }

// IsJSONLOutput reports whether --jsonl was requested.
func IsJSONLOutput() bool { return jsonlOutput }

// WriteOutput writes v as indented JSON, or as one compact JSON value per
// line for slices when --jsonl is set.
func WriteOutput(out io.Writer, v any) error {
	if IsJSONLOutput() {
		enc := json.NewEncoder(out)
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice {
			for i := 0; i < rv.Len(); i++ {
				if err := enc.Encode(rv.Index(i).Interface()); err != nil {
					return err
				}
			}
			return nil
		}
		return enc.Encode(v)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PreflightError is a user-facing error with a hint and a suggested command.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func printError(out io.Writer, err error) {
	var pre *PreflightError
	if errors.As(err, &pre) {
		fmt.Fprintf(out, "Error: %s\n", pre.Message)
		if pre.Hint != "" {
			fmt.Fprintf(out, "Hint: %s\n", pre.Hint)
		}
		if pre.NextStep != "" {
			fmt.Fprintf(out, "Next: %s\n", pre.NextStep)
		}
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}

func resolveProjectDir() string {
	if projectDir != "" {
		return projectDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func loadCatalog() (*catalog.Catalog, error) {
	cfg := GetConfig()
	cat, err := catalog.Load(resolveProjectDir(), cfg.Catalog.Dirs, logging.Component("catalog"))
	if err != nil {
		return nil, err
	}
	return cat, nil
}
