package tgraph

// Vertex is a node of the transformed graph G′: the source, the sink, or
// one of a disk's two split halves.
//
//   - Inbound vertex of disk i: DiskIndex == i, Inbound == true. Has at
//     most one outgoing edge, to the outbound vertex of the same disk.
//   - Outbound vertex of disk i: DiskIndex == i, Inbound == false. Has at
//     most one incoming edge, from the inbound vertex of the same disk.
//
// Source and Sink both carry DiskIndex == -1 and are distinguished by
// Inbound alone, matching the convention that Source has many outgoing
// edges (Inbound == false) and Sink has many incoming edges (Inbound ==
// true).
type Vertex struct {
	DiskIndex int
	Inbound   bool
}

// Source is the transformed graph's single source vertex.
var Source = Vertex{DiskIndex: -1, Inbound: false}

// Sink is the transformed graph's single sink vertex.
var Sink = Vertex{DiskIndex: -1, Inbound: true}

// IsSource reports whether v is the Source vertex.
func (v Vertex) IsSource() bool { return v == Source }

// IsSink reports whether v is the Sink vertex.
func (v Vertex) IsSink() bool { return v == Sink }

// DiskInbound returns the inbound vertex of the disk at index i.
func DiskInbound(i int) Vertex { return Vertex{DiskIndex: i, Inbound: true} }

// DiskOutbound returns the outbound vertex of the disk at index i.
func DiskOutbound(i int) Vertex { return Vertex{DiskIndex: i, Inbound: false} }

// Edge is a directed arc in G′. G′ is bipartite: every edge is one of
// Source→inbound(i), outbound(i)→Sink, outbound(i)→inbound(j), or the
// internal inbound(i)→outbound(i) edge that encodes disk i's unit vertex
// capacity.
type Edge struct {
	From, To Vertex
}

// NewEdge constructs an Edge from from to to.
func NewEdge(from, to Vertex) Edge { return Edge{From: from, To: to} }

// FromSource constructs the edge Source→to.
func FromSource(to Vertex) Edge { return Edge{From: Source, To: to} }

// ToSink constructs the edge from→Sink.
func ToSink(from Vertex) Edge { return Edge{From: from, To: Sink} }

// IsInternalEdge reports whether e connects the inbound and outbound
// vertices of the same disk.
func (e Edge) IsInternalEdge() bool { return e.From.DiskIndex == e.To.DiskIndex }

// Reverse returns the edge travelling in the opposite direction.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// Path is a directed sequence of edges from Source to Sink in G′.
type Path []Edge
