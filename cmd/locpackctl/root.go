package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/joshuapare/locpack/internal/logger"
	"github.com/joshuapare/locpack/pkg/config"
	"github.com/joshuapare/locpack/pkg/locpack"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "locpackctl",
	Short: "Convert localization packs between .locpack and .locpackbin",
	Long: `locpackctl converts game localization packs between the editable
LocPack text form (.locpack) and the packed LocPackBin form (.locpackbin).
Menu and subtitle packs are recognized by the header pair at the top of the
file; extra titles can be registered in a config file.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadConfig returns the file named by --config, else the per-user config
// when one exists, else defaults.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.GetDefaultConfigPath()
		if !config.ConfigExists(path) {
			return config.DefaultConfig(), nil
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	printVerbose("Loaded config: %s\n", path)
	return cfg, nil
}

// loadOptions reads the config, configures logging and returns conversion
// options.
func loadOptions() (*locpack.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := setupLogging(cfg); err != nil {
		return nil, err
	}
	return locpack.FromConfig(cfg)
}

// setupLogging picks the level from --log-level, then the config file, then
// debug when --verbose is set. With none of them logging stays off.
func setupLogging(cfg *config.Config) error {
	name := logLevel
	if name == "" {
		name = cfg.Logging.Level
	}
	if name == "" && verbose {
		name = "debug"
	}
	if name == "" {
		logger.Init(logger.Options{})
		return nil
	}
	level, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{Enabled: true, Level: level, Output: os.Stderr, JSON: jsonOut})
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// plural returns "s" unless n is 1.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

