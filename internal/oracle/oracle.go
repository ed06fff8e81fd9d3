package oracle

import (
	"math"

	"github.com/disklib/barrierresilience/geometry"
	"github.com/disklib/barrierresilience/tgraph"
)

// graph is a plain adjacency-map residual graph over tgraph.Vertex,
// mirroring the capacity-map style package flow builds over string vertex
// IDs, keyed instead on the comparable Vertex struct.
type graph struct {
	capacity map[tgraph.Vertex]map[tgraph.Vertex]int
}

func newGraph() *graph {
	return &graph{capacity: make(map[tgraph.Vertex]map[tgraph.Vertex]int)}
}

func (g *graph) addEdge(from, to tgraph.Vertex, cap int) {
	if g.capacity[from] == nil {
		g.capacity[from] = make(map[tgraph.Vertex]int)
	}
	g.capacity[from][to] += cap

	if g.capacity[to] == nil {
		g.capacity[to] = make(map[tgraph.Vertex]int)
	}
	if _, ok := g.capacity[to][from]; !ok {
		g.capacity[to][from] = 0
	}
}

// bfsAugment finds a shortest (fewest-edges) augmenting path from source
// to sink in the current residual graph, or nil if none exists.
func (g *graph) bfsAugment(source, sink tgraph.Vertex) []tgraph.Vertex {
	parent := map[tgraph.Vertex]tgraph.Vertex{}
	visited := map[tgraph.Vertex]bool{source: true}
	queue := []tgraph.Vertex{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == sink {
			break
		}
		for v, c := range g.capacity[u] {
			if c > 0 && !visited[v] {
				visited[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}

	if !visited[sink] {
		return nil
	}

	path := []tgraph.Vertex{sink}
	for cur := sink; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (g *graph) maxFlow(source, sink tgraph.Vertex) int {
	flow := 0
	for {
		path := g.bfsAugment(source, sink)
		if path == nil {
			break
		}

		bottleneck := math.MaxInt
		for i := 0; i < len(path)-1; i++ {
			if c := g.capacity[path[i]][path[i+1]]; c < bottleneck {
				bottleneck = c
			}
		}
		for i := 0; i < len(path)-1; i++ {
			g.capacity[path[i]][path[i+1]] -= bottleneck
			g.capacity[path[i+1]][path[i]] += bottleneck
		}
		flow += bottleneck
	}

	return flow
}

// MaxFlow builds the vertex-split graph for disks against the left and
// right borders (unit vertex capacity via the inbound->outbound internal
// edge, unit edge capacity everywhere else) and returns its maximum
// source->sink flow.
func MaxFlow[T geometry.Number](disks []geometry.Disk[T], leftBorderX, rightBorderX T) int {
	indexed := geometry.AssignIndices(disks)
	leftBorder := geometry.NewBorder(leftBorderX, true)
	rightBorder := geometry.NewBorder(rightBorderX, false)

	g := newGraph()
	for _, d := range indexed {
		g.addEdge(tgraph.DiskInbound(d.Index()), tgraph.DiskOutbound(d.Index()), 1)
		if geometry.IntersectsDiskBorder(d, leftBorder) {
			g.addEdge(tgraph.Source, tgraph.DiskInbound(d.Index()), 1)
		}
		if geometry.IntersectsDiskBorder(d, rightBorder) {
			g.addEdge(tgraph.DiskOutbound(d.Index()), tgraph.Sink, 1)
		}
	}
	for i := range indexed {
		for j := range indexed {
			if i == j {
				continue
			}
			if geometry.IntersectsDiskDisk(indexed[i], indexed[j]) {
				g.addEdge(tgraph.DiskOutbound(indexed[i].Index()), tgraph.DiskInbound(indexed[j].Index()), 1)
			}
		}
	}
	// No direct Source->Sink edge even if the borders themselves overlap:
	// a zero-hop crossing is not a path (no disk removal is needed to
	// sever a barrier that was never bridged by a disk), matching the
	// engine's ℓ = distance-1 guard in package blocking.

	return g.maxFlow(tgraph.Source, tgraph.Sink)
}
