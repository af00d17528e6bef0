// Package main provides the mesto terminal form: a growable list of places
// with a live JSON preview. When the user leaves the form the collected
// fields are written to stdout or a file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/entrhq/mesto/pkg/config"
	"github.com/entrhq/mesto/pkg/executor/tui"
	"github.com/entrhq/mesto/pkg/form"
	"github.com/entrhq/mesto/pkg/logging"
)

const version = "0.1.0" // Version of mesto

// Config holds the application configuration
type Config struct {
	ConfigPath  string
	OutPath     string
	Format      string
	Quiet       bool
	NoHighlight bool
	ShowVersion bool
	InitConfig  bool

	format form.Format
}

func main() {
	// Parse command line flags
	cfg := parseFlags()

	// Show version if requested
	if cfg.ShowVersion {
		fmt.Printf("mesto v%s\n", version)
		return
	}

	// Write the default config file if requested
	if cfg.InitConfig {
		if err := initConfig(cfg, os.Stdout); err != nil {
			log.Fatalf("Config error: %v", err)
		}
		return
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		cancel()
		log.Fatalf("Application error: %v", err)
	}
}

// parseFlags parses command line flags
func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to the config file (default: ~/.mesto/config.yaml)")
	flag.StringVar(&cfg.OutPath, "out", "", "Write the collected fields to this file instead of stdout")
	flag.StringVar(&cfg.Format, "format", "json", "Output format: json or yaml")
	flag.BoolVar(&cfg.Quiet, "quiet", false, "Do not print the collected fields on exit")
	flag.BoolVar(&cfg.NoHighlight, "no-highlight", false, "Disable syntax highlighting of the preview")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version and exit")
	flag.BoolVar(&cfg.InitConfig, "init-config", false, "Write the default settings to the config file and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mesto - collect a list of places in the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mesto [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mesto                          # Print JSON to stdout on exit\n")
		fmt.Fprintf(os.Stderr, "  mesto -format yaml -out places.yaml\n")
		fmt.Fprintf(os.Stderr, "  mesto -config ./mesto.yaml -no-highlight\n")
		fmt.Fprintf(os.Stderr, "  mesto -init-config                # Create ~/.mesto/config.yaml\n")
	}

	flag.Parse()
	return cfg
}

// validate checks that the configuration is valid
func (c *Config) validate() error {
	format, err := form.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.format = format

	if c.Quiet && c.OutPath != "" {
		return fmt.Errorf("-quiet and -out cannot be combined")
	}

	if c.OutPath != "" {
		if info, err := os.Stat(c.OutPath); err == nil && info.IsDir() {
			return fmt.Errorf("output path '%s' is a directory", c.OutPath)
		}
	}

	return nil
}

// initConfig writes the default sections to the config file
func initConfig(cfg *Config, stdout io.Writer) error {
	path, sections, err := config.WriteDefaults(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote %s (sections: %s)\n", path, strings.Join(sections, ", "))
	return nil
}

// run executes the main application logic
func run(ctx context.Context, cfg *Config) error {
	if err := config.Initialize(cfg.ConfigPath); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger("mesto")
	if err != nil {
		// Stderr would draw over the form; log nowhere instead.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger = logging.Discard("mesto")
	}
	defer logger.Close()
	logger.Infof("mesto v%s starting, session %s", version, logger.SessionID())

	opts := []tui.Option{tui.WithLogger(logger)}
	if cfg.NoHighlight {
		opts = append(opts, tui.WithHighlight(false))
	}

	data, err := tui.NewExecutor(opts...).Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Infof("interrupted, discarding %d fields", data.Len())
			return nil
		}
		return err
	}

	logger.Infof("collected %d fields", data.Len())
	if cfg.Quiet {
		return nil
	}
	return writeOutput(cfg, data, os.Stdout)
}

// writeOutput encodes data to cfg.OutPath, or to stdout when no path is set.
func writeOutput(cfg *Config, data form.Data, stdout io.Writer) error {
	if cfg.OutPath == "" {
		return data.Encode(stdout, cfg.format)
	}

	f, err := os.Create(cfg.OutPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := data.Encode(f, cfg.format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
