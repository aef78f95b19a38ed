package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/skeletrack/internal/frames"
	"github.com/katalvlaran/skeletrack/topology"
)

// frameNodes is the nodes report of one frame.
type frameNodes struct {
	File          string      `json:"file" yaml:"file"`
	Nodes         int         `json:"nodes" yaml:"nodes"`
	DeadEnds      int         `json:"dead_ends" yaml:"dead_ends"`
	LeftOverForks int         `json:"left_over_forks" yaml:"left_over_forks"`
	Forks         map[int]int `json:"forks,omitempty" yaml:"forks,omitempty"`
	Pieces        int         `json:"pieces" yaml:"pieces"`
	SpecialCases  int         `json:"special_cases" yaml:"special_cases"`
	Redundant     int         `json:"redundant" yaml:"redundant"`
	Isolated      int         `json:"isolated" yaml:"isolated"`
}

func (a *app) newNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes FRAME...",
		Short: "Classify frames and report node statistics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNodes(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) runNodes(ctx context.Context, w io.Writer, paths []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	out := make([]frameNodes, len(paths))
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
			nodes, rep, err := topology.Classify(g, a.cfg.classifyOptions(logger, i+1)...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			st := nodes.Statistics()
			out[i] = frameNodes{
				File:          path,
				Nodes:         nodes.Len(),
				DeadEnds:      st.DeadEnds,
				LeftOverForks: st.LeftOverForks,
				Forks:         st.Forks,
				Pieces:        len(g.Components()),
				SpecialCases:  rep.SpecialCases,
				Redundant:     rep.Redundant,
				Isolated:      rep.Isolated,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Classified %d frames", len(paths)))

	return writeOutput(w, a.cfg.Format, out)
}
