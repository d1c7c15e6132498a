package poa

import "fmt"

// AddRead folds one read into the graph under the given scoring
// configuration. The first read folded into an empty graph is threaded in
// directly as a linear chain; every subsequent read is aligned against the
// graph and threaded in via traceback. Returns the path of vertices the
// read now runs through, one per base.
//
// AddRead rejects an empty read and a read containing a byte other than
// A, C, G, T without modifying the graph or aligning anything. A traceback
// that returns an InconsistentStateError poisons the graph: every
// subsequent call to AddRead on it returns an error wrapping the original
// InconsistentStateError.
func (g *Graph) AddRead(seq string, cfg ScoringConfig) ([]VertexID, error) {
	if g.poisonErr != nil {
		return nil, fmt.Errorf("poa: graph is poisoned: %w", g.poisonErr)
	}
	if len(seq) == 0 {
		return nil, ErrEmptyInput
	}
	bases := []byte(seq)
	for _, b := range bases {
		if !isValidBase(b) {
			return nil, invalidBaseError(b)
		}
	}

	var path []VertexID
	if g.numReads == 0 {
		path = g.threadFirstRead(bases)
	} else {
		cols := alignRead(g, bases, cfg)
		p, err := g.tracebackAndThread(bases, cols, cfg.Mode)
		if err != nil {
			g.poison(err)
			return nil, err
		}
		path = p
	}
	g.numReads++
	return path, nil
}
