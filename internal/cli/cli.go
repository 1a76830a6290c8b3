// Package cli implements the mres command-line interface.
//
// The root command computes the resistance of a metal trace or via array
// from the compiled-in materials catalog and prints it in engineering
// notation, either as a one-line summary or as a box diagram. The CLI is
// built using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
//   - mres [flags] <material> [width|xrep] [length|yrep]: compute a resistance
//   - mres (no arguments): list the known metals and vias
//   - mres materials: print the catalog as a table
//   - mres completion: generate shell completion scripts
//
// # Options
//
// Options must be given before the material. Anything after the material is
// treated as a geometry argument, so "mres metal1 -p" fails with an invalid
// width rather than enabling diagram output.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging to stderr.
// Regular output goes to stdout only.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mres/pkg/buildinfo"
	"github.com/matzehuels/mres/pkg/material"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used in usage and version output.
	appName = "mres"

	// maxPositionalArgs is the material plus two geometry parameters.
	maxPositionalArgs = 3
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	Catalog *material.Catalog
}

// New creates a new CLI instance backed by the compiled-in catalog.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Catalog: material.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := c.calcCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.materialsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
