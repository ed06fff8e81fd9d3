package blocking

import (
	"github.com/disklib/barrierresilience/geometry"
	"github.com/disklib/barrierresilience/internal/invariant"
	"github.com/disklib/barrierresilience/levels"
	"github.com/disklib/barrierresilience/proximity"
	"github.com/disklib/barrierresilience/tgraph"
)

// FindBlockingFamily returns a maximal set of edge-disjoint source→sink
// paths in the implicit residual graph R(G′, blockedEdges). An empty,
// nil-error result means no such path exists — either because the sink
// is unreachable, or because the only "path" would be the suppressed
// zero-disk source→sink shortcut (distance 1 via border overlap alone,
// which the ℓ = distance−1 guard below excludes from ever counting).
//
// disks must already carry stable indices (see geometry.AssignIndices).
func FindBlockingFamily[T geometry.Number](
	newIndex func() proximity.Index[T],
	disks []geometry.Disk[T],
	leftBorderX, rightBorderX T,
	blockedEdges []tgraph.Edge,
) ([]tgraph.Path, error) {
	if len(disks) == 0 {
		// A disk-less source→sink shortcut never counts as a path: it
		// would require a single hop over zero vertex-split vertices.
		return nil, nil
	}

	r, err := levels.FindLevels(newIndex, disks, leftBorderX, rightBorderX, blockedEdges)
	if err != nil {
		return nil, err
	}
	if !r.Reachable {
		return nil, nil
	}

	verticesByLevel := make([][]tgraph.Vertex, r.Distance+1)
	for v, lvl := range r.Levels {
		verticesByLevel[lvl] = append(verticesByLevel[lvl], v)
	}

	// Every layer gets a (possibly empty) index so a query against an
	// unbuilt layer — the odd-level-1 border-overlap edge case — simply
	// reports no match instead of dereferencing a missing structure.
	dataStructures := make([]proximity.Index[T], r.Distance+1)
	for i := range dataStructures {
		dataStructures[i] = newIndex()
	}
	// No structure is needed for the last layer; it holds only the sink.
	for i := 1; i < r.Distance; i += 2 {
		var inbound []geometry.GeometryObject[T]
		for _, v := range verticesByLevel[i] {
			if v.Inbound {
				inbound = append(inbound, disks[v.DiskIndex])
			}
		}
		if err := dataStructures[i].Rebuild(inbound); err != nil {
			return nil, err
		}
	}

	explored := make(map[tgraph.Vertex]bool)
	leftBorder := geometry.NewBorder(leftBorderX, true)
	rightBorder := geometry.NewBorder(rightBorderX, false)
	hasEdgeToSink := func(d geometry.Disk[T]) bool { return geometry.IntersectsDiskBorder(d, rightBorder) }

	var paths []tgraph.Path
	for {
		path := make([]tgraph.Vertex, 0, r.Distance+1)
		found := explore(dataStructures, disks, r.Levels, explored, r.Prev, r.Next,
			tgraph.Source, 0, r.Distance, leftBorder, hasEdgeToSink, &path)
		if found == nil {
			break
		}
		paths = append(paths, verticesToPath(found))
	}

	return paths, nil
}

// explore is the layered-DFS walker. It mutates path as a stack (pushing
// on entry, popping on every return) and explored as it goes, and returns
// the full source→sink vertex sequence the first time it reaches the
// sink, or nil if this subtree holds no such path.
func explore[T geometry.Number](
	ds []proximity.Index[T],
	disks []geometry.Disk[T],
	levelOf map[tgraph.Vertex]int,
	explored map[tgraph.Vertex]bool,
	prev, next map[tgraph.Vertex]tgraph.Vertex,
	v tgraph.Vertex,
	level, sinkLevel int,
	leftBorder geometry.Border[T],
	hasEdgeToSink func(geometry.Disk[T]) bool,
	path *[]tgraph.Vertex,
) []tgraph.Vertex {
	*path = append(*path, v)
	var result []tgraph.Vertex

	if level%2 == 1 {
		invariant.Check(v.Inbound, "blocking: vertex %+v at odd level %d must be inbound", v, level)

		if p, onPath := prev[v]; !onPath {
			u := tgraph.DiskOutbound(v.DiskIndex)
			if !explored[u] {
				explored[u] = true
				result = explore(ds, disks, levelOf, explored, prev, next, u, level+1, sinkLevel, leftBorder, hasEdgeToSink, path)
			}
		} else if !explored[p] && levelOf[p] == level+1 {
			// Only walk back to p if it sits on the very next layer (one
			// level further from the source); otherwise the step would
			// break the layered order.
			explored[p] = true
			result = explore(ds, disks, levelOf, explored, prev, next, p, level+1, sinkLevel, leftBorder, hasEdgeToSink, path)
		}
	} else {
		invariant.Check(!v.Inbound, "blocking: vertex %+v at even level %d must be outbound", v, level)

		isSource := v == tgraph.Source

		if !isSource && level == sinkLevel-1 {
			nextV, hasNext := next[v]
			if hasEdgeToSink(disks[v.DiskIndex]) && !(hasNext && nextV == tgraph.Sink) {
				result = append(append([]tgraph.Vertex{}, *path...), tgraph.Sink)
			}
		} else {
			if _, onPath := prev[v]; onPath {
				vIn := tgraph.DiskInbound(v.DiskIndex)
				if !explored[vIn] && levelOf[vIn] == level+1 {
					ds[level+1].Delete(geometry.GeometryObject[T](disks[v.DiskIndex]))
					explored[vIn] = true
					result = explore(ds, disks, levelOf, explored, prev, next, vIn, level+1, sinkLevel, leftBorder, hasEdgeToSink, path)
				}
			}

			for result == nil {
				var found geometry.GeometryObject[T]
				var ok bool
				if isSource {
					found, ok = ds[level+1].AnyIntersecting(geometry.GeometryObject[T](leftBorder))
				} else {
					found, ok = ds[level+1].AnyIntersecting(geometry.GeometryObject[T](disks[v.DiskIndex]))
				}
				if !ok {
					break
				}

				d, isDisk := found.(geometry.Disk[T])
				invariant.Check(isDisk, "blocking: expected a disk from a layer index, got a border")
				ds[level+1].Delete(found)

				u := tgraph.DiskInbound(d.Index())
				if explored[u] {
					continue
				}
				explored[u] = true
				result = explore(ds, disks, levelOf, explored, prev, next, u, level+1, sinkLevel, leftBorder, hasEdgeToSink, path)
			}
		}
	}

	*path = (*path)[:len(*path)-1]

	return result
}

func verticesToPath(vertices []tgraph.Vertex) tgraph.Path {
	path := make(tgraph.Path, 0, len(vertices)-1)
	for i := 1; i < len(vertices); i++ {
		path = append(path, tgraph.NewEdge(vertices[i-1], vertices[i]))
	}

	return path
}
