package poa

// threadFirstRead handles the very first read folded into an otherwise
// empty graph: it cannot be aligned against anything, so it is threaded in
// directly as a linear chain from enter to exit, one new vertex per base.
func (g *Graph) threadFirstRead(seq []byte) []VertexID {
	path := make([]VertexID, len(seq))
	prev := g.enter
	for i, b := range seq {
		v := g.addReadVertex(b)
		g.addEdge(prev, v)
		path[i] = v
		prev = v
	}
	g.addEdge(prev, g.exit)
	g.tagSpan(path[0], prev)
	return path
}

// tagSpan walks the topological order from start to end (exclusive),
// incrementing spanningReads on every vertex in between. It records that a
// read's alignment passed over these vertices even where it was not
// incorporated into them.
func (g *Graph) tagSpan(start, end VertexID) {
	spanning := false
	for _, v := range g.TopoOrder() {
		if v == start {
			spanning = true
		}
		if v == end {
			return
		}
		if spanning {
			g.vertices[v].spanningReads++
		}
	}
}

// argmaxRow returns the read position at which col attains its highest
// score.
func argmaxRow(col alignmentColumn) int {
	bestRow := 0
	bestScore := col[0].Score
	for i, c := range col {
		if c.Score > bestScore {
			bestScore = c.Score
			bestRow = i
		}
	}
	return bestRow
}

// tracebackAndThread walks the alignment columns produced by alignRead
// backwards from exit to enter, threading new vertices and edges into the
// graph for every base that did not match an existing vertex, and returns
// the path of vertices the read now runs through, indexed by read
// position.
func (g *Graph) tracebackAndThread(seq []byte, cols map[VertexID]alignmentColumn, mode Mode) ([]VertexID, error) {
	I := len(seq)
	path := make([]VertexID, I)
	for i := range path {
		path[i] = noVertex
	}

	i := I
	u := g.exit
	v := noVertex
	fork := noVertex
	endSpan := cols[g.exit][I].Prev

	for !(u == g.enter && i == 0) {
		c := cols[u][i]
		prev := c.Prev

		switch c.Move {
		case MoveStart:
			if fork == noVertex {
				fork = v
			}
			for i > 0 {
				newV := g.addReadVertex(seq[i-1])
				g.addEdge(newV, fork)
				path[i-1] = newV
				fork = newV
				i--
			}
			// A Start cell's Prev is the vertex itself; the alignment began
			// here, so the traceback ends by stepping to enter.
			prev = g.enter

		case MoveEnd:
			fork = g.exit
			if mode == LocalMode {
				prevCol := cols[prev]
				prevRow := argmaxRow(prevCol)
				for i > prevRow {
					newV := g.addReadVertex(seq[i-1])
					g.addEdge(newV, fork)
					path[i-1] = newV
					fork = newV
					i--
				}
			}

		case MoveMatch:
			path[i-1] = u
			if fork != noVertex {
				g.addEdge(u, fork)
				fork = noVertex
			}
			g.vertices[u].reads++
			i--

		case MoveDelete:
			if fork == noVertex {
				fork = v
			}

		case MoveMismatch, MoveExtra:
			newV := g.addReadVertex(seq[i-1])
			if fork == noVertex {
				fork = v
			}
			g.addEdge(newV, fork)
			fork = newV
			path[i-1] = newV
			i--

		default:
			return nil, &InconsistentStateError{Reason: "alignment column has no valid move", Vertex: u, ReadPos: i}
		}

		v = u
		u = prev
	}

	startSpan := v
	if startSpan != noVertex && startSpan != g.exit {
		g.tagSpan(startSpan, endSpan)
	}
	if fork != noVertex {
		g.addEdge(g.enter, fork)
	}

	for i, pv := range path {
		if pv == noVertex {
			return nil, &InconsistentStateError{Reason: "traceback failed to assign every read position to a vertex", Vertex: noVertex, ReadPos: i}
		}
	}
	return path, nil
}
