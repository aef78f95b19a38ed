// Package skeletrack turns one-pixel-wide skeleton rasters into a graph of
// junctions, dead ends and connecting paths, and follows branching points
// through a sequence of frames.
//
// What is in the box?
//
//	No graph is ever stored: nodes live in an index-based registry and every
//	path is re-traced from the raster on demand.
//
// Everything is organized under these subpackages:
//
//	grid/     raster, canonical 8-neighbourhood, frame stacks, line drawing
//	topology/ cleanup passes and node classification (NodeSet)
//	trace/    walking from a pixel to the next node
//	editor/   segment queries, deletion and dead-end pruning
//	spatial/  nearest and nearest-degree-3 queries over a k-d tree
//	track/    junction and segment tracking through time
//
// Quick ASCII example:
//
//	    1
//	    1
//	    1        a Y: one degree-3 junction (the last 1 of the stem),
//	   1 1       three dead ends and three segments
//	  1   1
//	 1     1
//
// The skeletrack command (cmd/skeletrack) runs the engine on PNG and TIFF
// frames.
//
//	go install github.com/katalvlaran/skeletrack/cmd/skeletrack@latest
package skeletrack
