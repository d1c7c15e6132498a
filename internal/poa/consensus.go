package poa

import (
	"math"
	"strings"
)

// Consensus extracts the best-supported path through the graph under the
// given mode and minimum-coverage floor, returning both the consensus
// sequence and the path of vertices (excluding the enter/exit sentinels)
// that produced it.
//
// If the graph has had no reads folded into it, Consensus returns an empty
// string and a nil path rather than an error; ConsensusUndefined describes
// this case for callers that want to distinguish it from a graph whose
// consensus genuinely came out empty.
//
// minCoverage is never clamped against NumReads(); passing a value above
// the graph's true coverage is a caller error that will simply produce a
// short or empty consensus.
func (g *Graph) Consensus(mode Mode, minCoverage int) (string, []VertexID) {
	if g.numReads == 0 {
		return "", nil
	}

	topo := g.TopoOrder()
	totalReads := g.numReads

	reaching := make(map[VertexID]float64, len(topo))
	bestPrev := make(map[VertexID]VertexID, len(topo))
	reaching[g.enter] = 0

	bestVertex := noVertex
	bestReachingScore := math.Inf(-1)

	for _, v := range topo {
		if v == g.enter || v == g.exit {
			continue
		}
		vi := &g.vertices[v]

		// The -0.0001 offset puts a vertex carried by exactly half the
		// coverage just below zero, so the path skips it instead of tying.
		var score float64
		if mode == GlobalMode {
			score = 2*float64(vi.reads) - float64(totalReads) - 0.0001
		} else {
			coverage := vi.spanningReads
			if minCoverage > coverage {
				coverage = minCoverage
			}
			score = 2*float64(vi.reads) - float64(coverage) - 0.0001
		}
		vi.score = score

		reachingScore := score
		prevForV := noVertex
		for _, u := range vi.in {
			rsc := score + reaching[u]
			if rsc > reachingScore {
				reachingScore = rsc
				prevForV = u
			}
			if rsc > bestReachingScore {
				bestReachingScore = rsc
				bestVertex = v
			}
		}
		vi.reachingScore = reachingScore
		reaching[v] = reachingScore
		bestPrev[v] = prevForV
	}

	if bestVertex == noVertex {
		return "", nil
	}

	var path []VertexID
	for v := bestVertex; v != noVertex; v = bestPrev[v] {
		path = append([]VertexID{v}, path...)
	}

	var sb strings.Builder
	sb.Grow(len(path))
	for _, v := range path {
		sb.WriteByte(g.vertices[v].base)
	}
	return sb.String(), path
}
