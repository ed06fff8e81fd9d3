package resilience

import (
	"errors"
	"fmt"

	"github.com/disklib/barrierresilience/blocking"
	"github.com/disklib/barrierresilience/geometry"
	"github.com/disklib/barrierresilience/internal/invariant"
	"github.com/disklib/barrierresilience/levels"
	"github.com/disklib/barrierresilience/proximity"
	"github.com/disklib/barrierresilience/tgraph"
)

// wrapIndexErr surfaces a non-uniform-radius rejection from the chosen
// proximity.Index as ErrUnsupportedConfig, the name spec §6/§7 gives this
// condition, so callers can errors.Is against one sentinel regardless of
// which index variant raised it.
func wrapIndexErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, proximity.ErrNonUniformRadius) {
		return fmt.Errorf("%w: %v", ErrUnsupportedConfig, err)
	}

	return err
}

// Count returns the minimum number of disks whose removal disconnects
// the left border at leftBorderX from the right border at rightBorderX.
func Count[T geometry.Number](disks []geometry.Disk[T], leftBorderX, rightBorderX T, cfg Config) (int, error) {
	indexed := geometry.AssignIndices(disks)
	_, count, err := solve(indexed, leftBorderX, rightBorderX, cfg)

	return count, err
}

// Witness returns the same count as Count, together with the indices
// (into the caller's original disks slice) of a disk set realising it.
func Witness[T geometry.Number](disks []geometry.Disk[T], leftBorderX, rightBorderX T, cfg Config) (WitnessResult, error) {
	indexed := geometry.AssignIndices(disks)
	edges, count, err := solve(indexed, leftBorderX, rightBorderX, cfg)
	if err != nil {
		return WitnessResult{}, err
	}

	newIndex, err := indexFactory[T](cfg.Index)
	if err != nil {
		return WitnessResult{}, err
	}

	r, err := levels.FindLevels(newIndex, indexed, leftBorderX, rightBorderX, edges)
	if err != nil {
		return WitnessResult{}, wrapIndexErr(err)
	}

	var diskIndices []int
	for _, d := range indexed {
		in := tgraph.DiskInbound(d.Index())
		out := tgraph.DiskOutbound(d.Index())

		if _, reachable := r.Levels[in]; reachable {
			if _, outReachable := r.Levels[out]; !outReachable {
				// The internal edge in->out straddles the cut.
				diskIndices = append(diskIndices, d.Index())
			}
		} else if p, onPath := r.Prev[in]; onPath {
			if _, predReachable := r.Levels[p]; predReachable {
				// An incoming crossover edge straddles the cut.
				diskIndices = append(diskIndices, d.Index())
			}
		}
	}

	invariant.Check(len(diskIndices) == count,
		"resilience: cut size %d disagrees with accumulated blocking-family path count %d", len(diskIndices), count)

	return WitnessResult{Count: count, DiskIndices: diskIndices}, nil
}

// solve runs the Dinic-style phase loop shared by Count and Witness:
// repeatedly find a blocking family against the residual graph implied by
// edges already used, fold it in, and stop once no family remains. It
// returns the final used-edge set and the total number of paths folded in
// (the disk-removal count).
func solve[T geometry.Number](disks []geometry.Disk[T], leftBorderX, rightBorderX T, cfg Config) ([]tgraph.Edge, int, error) {
	newIndex, err := indexFactory[T](cfg.Index)
	if err != nil {
		return nil, 0, err
	}

	ctx := cfg.context()
	var edges []tgraph.Edge
	pathCount := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		family, err := blocking.FindBlockingFamily(newIndex, disks, leftBorderX, rightBorderX, edges)
		if err != nil {
			return nil, 0, wrapIndexErr(err)
		}
		if len(family) == 0 {
			break
		}

		pathCount += len(family)
		edges = symmetricDifference(edges, family)

		if cfg.Verbose {
			fmt.Printf("resilience: blocking family of %d paths, %d total\n", len(family), pathCount)
		}
	}

	return edges, pathCount, nil
}

// symmetricDifference folds a blocking family's paths into the current
// used-edge set: an edge travelled in the family that reverses an edge
// already kept cancels it; otherwise the edge is added. Seeing the same
// edge in the same orientation twice would mean two paths reused one
// directed edge, which a blocking family's edge-disjointness forbids.
func symmetricDifference(edges []tgraph.Edge, family []tgraph.Path) []tgraph.Edge {
	kept := make(map[tgraph.Edge]bool, len(edges))
	for _, e := range edges {
		kept[e] = true
	}

	for _, path := range family {
		for _, e := range path {
			reverse := e.Reverse()
			if kept[reverse] {
				delete(kept, reverse)
			} else {
				invariant.Check(!kept[e], "resilience: edge %+v reused in the same orientation by a blocking family", e)
				kept[e] = true
			}
		}
	}

	result := make([]tgraph.Edge, 0, len(kept))
	for e := range kept {
		result = append(result, e)
	}

	return result
}
