// Package cli implements the forcedraw command-line interface.
//
// This package provides commands for running the force-directed layout
// simulation over node-link graph files, rendering the result, viewing
// it interactively in the terminal, and serving layouts over HTTP. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
//   - layout: Simulate and write a layout artifact (positions + curves)
//   - render: Simulate and render an SVG via Graphviz
//   - view: Interactive terminal viewer with pan, zoom, and drag
//   - serve: HTTP layout service with optional Redis caching
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cpereira/forcedraw/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "forcedraw"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Forcedraw lays out graphs with a force-directed simulation",
		Long:         `Forcedraw reads node-link graph files, arranges their vertices with a spring/repulsion force simulation, and renders or serves the result. Parallel edges between the same vertex pair are drawn as fanned curves.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())

	return root
}
