// Package poa implements partial-order alignment: a consensus DAG that
// reads are folded into one at a time, plus the extraction of a consensus
// sequence and candidate variants from the resulting graph.
package poa

// VertexID identifies a vertex in a Graph. IDs are assigned sequentially
// starting at 0 and are never reused, so they also give insertion order.
type VertexID int

const noVertex VertexID = -1

// sentinel bases. Real bases are always one of A, C, G, T.
const (
	enterBase byte = 0
	exitBase  byte = 0
)

type vertex struct {
	base          byte
	reads         int
	spanningReads int
	score         float64
	reachingScore float64
	in            []VertexID
	out           []VertexID
}

type edge struct {
	src, dst VertexID
}

// Graph is a partial-order alignment DAG. Zero value is not usable; build
// one with NewGraph.
type Graph struct {
	vertices []vertex
	edges    []edge
	enter    VertexID
	exit     VertexID
	numReads int

	topo      []VertexID
	topoDirty bool

	poisonErr error
}

// NewGraph returns an empty graph containing only the enter and exit
// sentinels, connected by nothing.
func NewGraph() *Graph {
	g := &Graph{}
	g.enter = g.addSentinel(enterBase)
	g.exit = g.addSentinel(exitBase)
	g.topoDirty = true
	return g
}

// Enter returns the sentinel vertex every path through the graph starts
// from.
func (g *Graph) Enter() VertexID { return g.enter }

// Exit returns the sentinel vertex every path through the graph ends at.
func (g *Graph) Exit() VertexID { return g.exit }

// NumReads returns the number of reads folded into the graph so far.
func (g *Graph) NumReads() int { return g.numReads }

// NumVertices returns the number of vertices, including the two sentinels.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// Base returns the base at v, or the sentinel markers '^'/'$' for enter
// and exit respectively.
func (g *Graph) Base(v VertexID) byte {
	switch v {
	case g.enter:
		return '^'
	case g.exit:
		return '$'
	default:
		return g.vertices[v].base
	}
}

// Reads returns the number of reads whose threading passed through v.
func (g *Graph) Reads(v VertexID) int { return g.vertices[v].reads }

// SpanningReads returns the number of reads that spanned over v without
// necessarily being incorporated into it.
func (g *Graph) SpanningReads(v VertexID) int { return g.vertices[v].spanningReads }

// InEdges returns the vertices with an edge into v, in the order those
// edges were first added.
func (g *Graph) InEdges(v VertexID) []VertexID { return g.vertices[v].in }

// OutEdges returns the vertices with an edge from v, in the order those
// edges were first added.
func (g *Graph) OutEdges(v VertexID) []VertexID { return g.vertices[v].out }

// Poisoned reports whether a prior operation left the graph in an
// inconsistent state. Once poisoned, a Graph refuses further reads.
func (g *Graph) Poisoned() bool { return g.poisonErr != nil }

func (g *Graph) poison(err error) { g.poisonErr = err }

// addSentinel creates the enter or exit vertex. Unlike addVertex, it never
// sets reads: sentinels are never "incorporated into" by a read.
func (g *Graph) addSentinel(base byte) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, vertex{base: base})
	g.topoDirty = true
	return id
}

func (g *Graph) addVertex(base byte) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, vertex{base: base, reads: 1})
	g.topoDirty = true
	return id
}

// addReadVertex creates a new vertex carrying one base of a read being
// threaded into the graph. Reads starts at 1, reflecting this one read.
func (g *Graph) addReadVertex(base byte) VertexID {
	return g.addVertex(base)
}

// addEdge adds an edge u->v if one does not already exist. Idempotent.
func (g *Graph) addEdge(u, v VertexID) {
	for _, w := range g.vertices[u].out {
		if w == v {
			return
		}
	}
	g.vertices[u].out = append(g.vertices[u].out, v)
	g.vertices[v].in = append(g.vertices[v].in, u)
	g.edges = append(g.edges, edge{u, v})
	g.topoDirty = true
}

// TopoOrder returns a deterministic topological order over all vertices,
// enter first and exit last. Recomputed lazily after structural changes.
func (g *Graph) TopoOrder() []VertexID {
	if !g.topoDirty && g.topo != nil {
		return g.topo
	}
	visited := make([]bool, len(g.vertices))
	order := make([]VertexID, 0, len(g.vertices))
	var visit func(v VertexID)
	visit = func(v VertexID) {
		if visited[v] {
			return
		}
		visited[v] = true
		for _, w := range g.vertices[v].out {
			visit(w)
		}
		order = append(order, v)
	}
	for id := VertexID(0); id < VertexID(len(g.vertices)); id++ {
		visit(id)
	}
	// visit appends each vertex after its descendants, so the full slice
	// is in reverse topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	g.topo = order
	g.topoDirty = false
	return g.topo
}
