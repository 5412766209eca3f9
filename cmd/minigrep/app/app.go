/*
Package app wires the minigrep components together and runs one search.

A run is: read the whole file, pick the case-sensitive or case-insensitive
matcher, print every matching line. Nothing is printed when the read fails.

Usage:

	application := app.New(&cfg, app.Options{})
	if err := application.Run(); err != nil {
	    return err
	}
*/
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sonemaro/minigrep/internal/config"
	"github.com/sonemaro/minigrep/pkg/logger"
	"github.com/sonemaro/minigrep/pkg/output"
	"github.com/sonemaro/minigrep/pkg/search"
	"github.com/sonemaro/minigrep/pkg/source"
	"github.com/spf13/afero"
)

// Options overrides the application's collaborators. Zero fields fall back
// to the OS filesystem, os.Stdout and a stderr logger at the configured verbosity.
type Options struct {
	Fs     afero.Fs
	Stdout io.Writer
	Logger logger.Logger
}

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger

	reader  source.Reader
	printer output.Printer
}

// New creates a new application instance
func New(cfg *config.Config, opts Options) *App {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewLogger(logger.Config{
			Verbosity: cfg.Verbose,
		})
	}

	app := &App{
		config:  cfg,
		log:     opts.Logger,
		reader:  source.NewReader(opts.Fs, opts.Logger),
		printer: output.NewPrinter(opts.Stdout, opts.Logger),
	}

	app.log.WithFields(logger.Fields{
		"verbose": cfg.Verbose,
	}).Debug("Application initialized")

	return app
}

// Run executes the search described by the application's configuration
func (a *App) Run() error {
	start := time.Now()

	a.log.WithFields(logger.Fields{
		"query":         a.config.Query,
		"path":          a.config.FilePath,
		"caseSensitive": a.config.CaseSensitive,
	}).Info("Starting search")

	contents, err := a.reader.Read(a.config.FilePath)
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err.Error(),
			"path":  a.config.FilePath,
		}).Debug("Failed to read file")
		return fmt.Errorf("failed to read file: %w", err)
	}

	match := search.For(a.config.CaseSensitive)
	lines := match(a.config.Query, contents)

	if err := a.printer.Print(lines); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"path":     a.config.FilePath,
		"bytes":    len(contents),
		"matches":  len(lines),
		"duration": time.Since(start),
	}).Info("Search completed")

	return nil
}
