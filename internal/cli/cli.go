// Package cli implements the skeletrack command-line interface.
//
// Commands load frames from PNG or TIFF files, run the skeleton engine on
// them, and print results as YAML or JSON on stdout. Independent frames are
// processed in parallel; logs go to stderr.
//
// # Commands
//
//   - nodes: classify frames and report node statistics
//   - prune: remove all dead-end segments and save the cleaned frames
//   - segment: print the segment nearest to a point
//   - track: follow a junction or a segment through a frame sequence
//
// # Configuration
//
// --config reads a YAML (.yaml, .yml) or TOML (.toml) file; flags given on
// the command line override it.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app holds the flags and configuration shared by all commands.
type app struct {
	cfg        Config
	configPath string
	verbose    bool
	format     string
	workers    int
}

// NewRootCommand returns the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:          "skeletrack",
		Short:        "skeletrack extracts and tracks graphs in skeleton images",
		Long:         `skeletrack turns one-pixel-wide skeleton frames into junctions, dead ends and segments, prunes them, and follows branching points through time.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			return a.configure(cmd)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("skeletrack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", formatYAML, "output format: yaml or json")
	root.PersistentFlags().IntVarP(&a.workers, "workers", "w", 0, "frames processed in parallel (default: number of CPUs)")

	root.AddCommand(a.newNodesCmd())
	root.AddCommand(a.newPruneCmd())
	root.AddCommand(a.newSegmentCmd())
	root.AddCommand(a.newTrackCmd())

	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// configure loads the config file and applies explicit flags over it.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}
