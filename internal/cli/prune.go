package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/skeletrack/editor"
	"github.com/katalvlaran/skeletrack/internal/frames"
	"github.com/katalvlaran/skeletrack/topology"
)

// framePrune is the prune report of one frame.
type framePrune struct {
	File         string `json:"file" yaml:"file"`
	Out          string `json:"out" yaml:"out"`
	Segments     int    `json:"segments" yaml:"segments"`
	Pixels       int    `json:"pixels" yaml:"pixels"`
	Reclassified int    `json:"reclassified" yaml:"reclassified"`
	Nodes        int    `json:"nodes" yaml:"nodes"`
}

func (a *app) newPruneCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "prune FRAME...",
		Short: "Remove every dead-end segment and save the cleaned frames",
		Long:  `prune classifies each frame, removes all segments that end in a dead end, and writes the result under --out with the input file name.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				return errors.New("--out is required")
			}
			return a.runPrune(cmd.Context(), cmd.OutOrStdout(), outDir, args)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory")
	return cmd
}

func (a *app) runPrune(ctx context.Context, w io.Writer, outDir string, paths []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	out := make([]framePrune, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	if a.cfg.Workers > 0 {
		eg.SetLimit(a.cfg.Workers)
	}
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := frames.Load(path)
			if err != nil {
				return err
			}
			nodes, _, err := topology.Classify(g, a.cfg.classifyOptions(logger, i+1)...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			rep, err := editor.PruneAllDeadEnds(g, nodes, a.cfg.editorOptions(logger, i+1)...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			dst := filepath.Join(outDir, filepath.Base(path))
			if err := frames.Save(dst, g); err != nil {
				return err
			}
			out[i] = framePrune{
				File:         path,
				Out:          dst,
				Segments:     rep.Segments,
				Pixels:       rep.Pixels,
				Reclassified: rep.Reclassified,
				Nodes:        nodes.Len(),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Pruned %d frames", len(paths)))

	return writeOutput(w, a.cfg.Format, out)
}
