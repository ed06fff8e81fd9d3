package levels

import "github.com/disklib/barrierresilience/tgraph"

// Result is the outcome of a layered BFS over the implicit residual
// graph.
type Result struct {
	// Levels maps every vertex reached from the source to its BFS
	// distance (in edges).
	Levels map[tgraph.Vertex]int

	// Reachable reports whether the sink was reached.
	Reachable bool

	// Distance is the sink's level, or -1 if Reachable is false.
	Distance int

	// Prev maps a vertex on some already-found path to its predecessor on
	// that path. Prev[Sink] is meaningless when multiple paths reach the
	// sink.
	Prev map[tgraph.Vertex]tgraph.Vertex

	// Next maps a vertex on some already-found path to its successor on
	// that path. Next[Source] is meaningless when multiple paths leave
	// the source.
	Next map[tgraph.Vertex]tgraph.Vertex
}
