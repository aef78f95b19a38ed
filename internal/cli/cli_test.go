package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/internal/frames"
)

// writeY saves a 9×9 Y with its junction at (4,4) and dead ends at (4,1),
// (1,7) and (7,7).
func writeY(t *testing.T, dir, name string) string {
	t.Helper()
	g, err := grid.New(9, 9)
	require.NoError(t, err)
	g.DrawLine(grid.Pixel{X: 4, Y: 1}, grid.Pixel{X: 4, Y: 4}, 255)
	g.DrawLine(grid.Pixel{X: 3, Y: 5}, grid.Pixel{X: 1, Y: 7}, 255)
	g.DrawLine(grid.Pixel{X: 5, Y: 5}, grid.Pixel{X: 7, Y: 7}, 255)

	path := filepath.Join(dir, name)
	require.NoError(t, frames.Save(path, g))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNodesCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeY(t, dir, "a.png")
	b := writeY(t, dir, "b.tif")

	out, err := execute(t, "nodes", "--format", "json", "--workers", "2", a, b)
	require.NoError(t, err)

	var got []frameNodes
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	for i, f := range got {
		require.Equal(t, []string{a, b}[i], f.File)
		require.Equal(t, 4, f.Nodes)
		require.Equal(t, 3, f.DeadEnds)
		require.Equal(t, map[int]int{3: 1}, f.Forks)
		require.Equal(t, 1, f.Pieces)
	}
}

func TestPruneCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeY(t, dir, "y.png")
	outDir := filepath.Join(dir, "clean")

	out, err := execute(t, "prune", "--out", outDir, in)
	require.NoError(t, err)
	require.Contains(t, out, "segments: 3")

	g, err := frames.Load(filepath.Join(outDir, "y.png"))
	require.NoError(t, err)
	require.Zero(t, g.Foreground())

	_, err = execute(t, "prune", in)
	require.Error(t, err, "--out is required")
}

func TestSegmentCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeY(t, dir, "y.png")

	out, err := execute(t, "segment", "--x", "0", "--y", "0", in)
	require.NoError(t, err)
	require.Contains(t, out, "length: 2")
	require.Contains(t, out, "mean: 255")

	cfg := writeFile(t, dir, "near.yaml", "radius: 3\n")
	out, err = execute(t, "segment", "--config", cfg, "--x", "0", "--y", "0", in)
	require.NoError(t, err)
	require.Equal(t, "no segment found\n", out)
}

func TestTrackCommand(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeY(t, dir, "1.png"), writeY(t, dir, "2.png"), writeY(t, dir, "3.png")}
	channel := paths[0] + "," + paths[1] + "," + paths[2]

	args := append([]string{"track", "--ref", "2", "--x", "4", "--y", "4", "--channel", channel, "-f", "json"}, paths...)
	out, err := execute(t, args...)
	require.NoError(t, err)

	var rep trackReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, "fully tracked", rep.Status)
	require.Equal(t, "node", rep.Mode)
	require.Equal(t, 2, rep.Reference)
	require.NotEmpty(t, rep.Session)
	require.Len(t, rep.Records, 3)
	for _, r := range rep.Records {
		require.Equal(t, [3]int{2, 2, 2}, r.Lengths)
		require.Equal(t, [][3]float64{{255, 255, 255}}, r.Means)
	}

	_, err = execute(t, "track", "--mode", "ring", paths[0])
	require.Error(t, err)
}
