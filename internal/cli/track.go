package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/internal/frames"
	"github.com/katalvlaran/skeletrack/spatial"
	"github.com/katalvlaran/skeletrack/track"
)

// trackOpts holds the flags of the track command.
type trackOpts struct {
	ref             int
	x, y            float64
	mode            string
	maxDisplacement float64
	channels        []string // one comma-separated frame list per channel
}

// trackReport is the output of the track command.
type trackReport struct {
	Session   string         `json:"session" yaml:"session"`
	Mode      string         `json:"mode" yaml:"mode"`
	Status    string         `json:"status" yaml:"status"`
	Reference int            `json:"reference" yaml:"reference"`
	Records   []track.Record `json:"records" yaml:"records"`
}

func (a *app) newTrackCmd() *cobra.Command {
	opts := trackOpts{ref: 1}
	cmd := &cobra.Command{
		Use:   "track FRAME...",
		Short: "Follow a junction or segment through a frame sequence",
		Long: `track seeds at the entity nearest to (--x, --y) in frame --ref, propagates it forward and backward
through the frames, and prints per-frame branch lengths. Each --channel is a comma-separated list of
intensity frames, one per input frame, averaged along every branch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("mode") {
				a.cfg.Mode = opts.mode
			}
			if flags.Changed("max-displacement") {
				a.cfg.MaxDisplacement = opts.maxDisplacement
			}
			return a.runTrack(cmd.Context(), cmd.OutOrStdout(), args, &opts)
		},
	}
	cmd.Flags().IntVar(&opts.ref, "ref", 1, "reference frame (1-based)")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "seed column")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "seed row")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "node", "tracking mode: node or segment")
	cmd.Flags().Float64Var(&opts.maxDisplacement, "max-displacement", 0, "largest junction move between frames (0: unbounded)")
	cmd.Flags().StringArrayVar(&opts.channels, "channel", nil, "comma-separated intensity frames of one channel (repeatable)")
	return cmd
}

func (a *app) runTrack(ctx context.Context, w io.Writer, paths []string, opts *trackOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	stack, err := frames.LoadStack(paths...)
	if err != nil {
		return err
	}
	channels := make([]*grid.Stack, 0, len(opts.channels))
	for i, list := range opts.channels {
		ch, err := frames.LoadStack(strings.Split(list, ",")...)
		if err != nil {
			return fmt.Errorf("channel %d: %w", i+1, err)
		}
		channels = append(channels, ch)
	}

	topts, err := a.cfg.trackOptions(logger)
	if err != nil {
		return err
	}
	tr, err := track.NewTracker(stack, topts...)
	if err != nil {
		return err
	}
	if err := tr.Seed(opts.ref, spatial.Point{X: opts.x, Y: opts.y}); err != nil {
		return err
	}
	records, err := tr.Measure(channels...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Tracked %d of %d frames", len(records), stack.Len()))

	return writeOutput(w, a.cfg.Format, trackReport{
		Session:   tr.ID.String(),
		Mode:      tr.Mode().String(),
		Status:    tr.Status().String(),
		Reference: tr.Reference(),
		Records:   records,
	})
}
