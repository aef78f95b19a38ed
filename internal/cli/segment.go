package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skeletrack/editor"
	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/internal/frames"
	"github.com/katalvlaran/skeletrack/topology"
)

// segmentReport describes the segment found at a query point.
type segmentReport struct {
	Click  grid.Pixel   `json:"click" yaml:"click"`
	Node1  grid.Pixel   `json:"node1" yaml:"node1"`
	Node2  grid.Pixel   `json:"node2" yaml:"node2"`
	Length int          `json:"length" yaml:"length"`
	Mean   float64      `json:"mean" yaml:"mean"`
	Points []grid.Pixel `json:"points" yaml:"points,flow"`
}

func (a *app) newSegmentCmd() *cobra.Command {
	var x, y int
	cmd := &cobra.Command{
		Use:   "segment FRAME",
		Short: "Print the segment nearest to a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSegment(cmd.Context(), cmd.OutOrStdout(), args[0], grid.Pixel{X: x, Y: y})
		},
	}
	cmd.Flags().IntVar(&x, "x", 0, "query column")
	cmd.Flags().IntVar(&y, "y", 0, "query row")
	return cmd
}

func (a *app) runSegment(ctx context.Context, w io.Writer, path string, at grid.Pixel) error {
	logger := loggerFromContext(ctx)

	g, err := frames.Load(path)
	if err != nil {
		return err
	}
	nodes, _, err := topology.Classify(g, a.cfg.classifyOptions(logger, 1)...)
	if err != nil {
		return err
	}

	opts := a.cfg.editorOptions(logger, 1)
	click, err := editor.FindClosestPointOnPath(g, at, nodes, opts...)
	if err == nil {
		var seg editor.Segment
		if seg, err = editor.FindSegment(g, nodes, click); err == nil {
			return writeOutput(w, a.cfg.Format, segmentReport{
				Click:  click,
				Node1:  seg.Node1.Position,
				Node2:  seg.Node2.Position,
				Length: seg.Len(),
				Mean:   seg.MeanIntensity(g),
				Points: seg.Points,
			})
		}
	}
	if errors.Is(err, editor.ErrInvalidQueryPoint) {
		logger.Debug("no segment found", "at", at, "err", err)
		_, werr := fmt.Fprintln(w, "no segment found")
		return werr
	}
	return err
}
