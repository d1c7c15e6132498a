package poa

import "math"

// Move names the kind of step a dynamic-programming cell was reached by.
type Move int

const (
	MoveStart Move = iota
	MoveEnd
	MoveMatch
	MoveMismatch
	MoveDelete
	MoveExtra
)

func (m Move) String() string {
	switch m {
	case MoveStart:
		return "Start"
	case MoveEnd:
		return "End"
	case MoveMatch:
		return "Match"
	case MoveMismatch:
		return "Mismatch"
	case MoveDelete:
		return "Delete"
	case MoveExtra:
		return "Extra"
	default:
		return "Unknown"
	}
}

// movePriority ranks moves for tie-breaking: lower wins. Match beats
// Mismatch beats Delete beats Extra beats Start beats End.
var movePriority = map[Move]int{
	MoveMatch:    0,
	MoveMismatch: 1,
	MoveDelete:   2,
	MoveExtra:    3,
	MoveStart:    4,
	MoveEnd:      5,
}

// cell is one entry of an alignmentColumn: the best score of aligning the
// read's prefix up to some row against the graph ending at this vertex,
// together with the move and predecessor vertex that achieved it.
type cell struct {
	Score float64
	Move  Move
	Prev  VertexID
}

// alignmentColumn holds one cell per read position 0..len(read), for one
// vertex, scoped to a single read's alignment.
type alignmentColumn []cell

// best tracks the highest-scoring candidate seen so far for one cell,
// applying the move-precedence tie-break deterministically: a later
// candidate only replaces the current best if it strictly improves the
// score, or ties the score with strictly higher move precedence. Among
// candidates of equal score and move, the first one registered wins.
type best struct {
	set  bool
	cell cell
}

func (b *best) consider(score float64, move Move, prev VertexID) {
	if !b.set {
		b.set = true
		b.cell = cell{score, move, prev}
		return
	}
	if score > b.cell.Score {
		b.cell = cell{score, move, prev}
		return
	}
	if score == b.cell.Score && movePriority[move] < movePriority[b.cell.Move] {
		b.cell = cell{score, move, prev}
	}
}

// alignRead computes, for every vertex in the graph, the alignment column
// scoring seq against the graph under cfg. Columns are keyed by vertex ID.
func alignRead(g *Graph, seq []byte, cfg ScoringConfig) map[VertexID]alignmentColumn {
	I := len(seq)
	topo := g.TopoOrder()
	cols := make(map[VertexID]alignmentColumn, len(topo))

	enterCol := make(alignmentColumn, I+1)
	// Only LOCAL gets a free read prefix at enter; GLOBAL and SEMIGLOBAL
	// pay the insert score for every read base consumed before the graph.
	if cfg.Mode != LocalMode {
		enterCol[0] = cell{0, MoveStart, g.enter}
		for i := 1; i <= I; i++ {
			enterCol[i] = cell{float64(i) * cfg.Insert, MoveExtra, g.enter}
		}
	} else {
		for i := 0; i <= I; i++ {
			enterCol[i] = cell{0, MoveStart, g.enter}
		}
	}
	cols[g.enter] = enterCol

	for _, v := range topo {
		if v == g.enter {
			continue
		}
		vi := &g.vertices[v]
		isExit := v == g.exit
		col := make(alignmentColumn, I+1)

		for i := 0; i <= I; i++ {
			var b best

			if !isExit {
				if i >= 1 {
					for _, u := range vi.in {
						uscore := cols[u][i-1].Score
						if seq[i-1] == vi.base {
							b.consider(uscore+cfg.Match, MoveMatch, u)
						} else {
							b.consider(uscore+cfg.Mismatch, MoveMismatch, u)
						}
					}
				}
				for _, u := range vi.in {
					b.consider(cols[u][i].Score+cfg.Delete, MoveDelete, u)
				}
				if i >= 1 {
					b.consider(col[i-1].Score+cfg.Insert, MoveExtra, v)
				}
				// SEMIGLOBAL may start at any vertex but must consume the
				// whole read; only LOCAL may also clip a read prefix.
				if cfg.Mode == LocalMode || (cfg.Mode == SemiglobalMode && i == 0) {
					b.consider(0, MoveStart, v)
				}
			} else {
				for _, u := range vi.in {
					b.consider(cols[u][i].Score+cfg.Delete, MoveDelete, u)
				}
				if cfg.Mode != GlobalMode && i == I {
					bestVertex := noVertex
					bestScore := math.Inf(-1)
					for _, w := range topo {
						if w == g.enter || w == g.exit {
							continue
						}
						if s := cols[w][I].Score; s > bestScore {
							bestScore = s
							bestVertex = w
						}
					}
					if bestVertex != noVertex {
						b.consider(bestScore, MoveEnd, bestVertex)
					}
				}
			}
			col[i] = b.cell
		}
		cols[v] = col
	}
	return cols
}
