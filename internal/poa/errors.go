package poa

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a read of length zero is submitted.
var ErrEmptyInput = errors.New("poa: empty read")

// ErrInvalidBase is returned when a read contains a byte that is not one
// of A, C, G, T.
var ErrInvalidBase = errors.New("poa: invalid base")

// ErrConsensusUndefined marks a consensus request against a graph with no
// reads folded in. It is never returned as an error by Graph.Consensus,
// which instead returns an empty sequence and a nil path; callers that
// want to distinguish "no consensus" from "empty consensus" can compare
// against it themselves.
var ErrConsensusUndefined = errors.New("poa: consensus undefined on a graph with no reads")

// InconsistentStateError reports that folding a read left the graph in a
// state the algorithm cannot make sense of: a traceback that left some read
// position without a vertex, or an alignment column with no valid move.
// Once returned, the Graph that produced it is poisoned and must not be
// used for further reads.
type InconsistentStateError struct {
	Reason  string
	Vertex  VertexID
	ReadPos int
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("poa: inconsistent state: %s (vertex=%d, read_pos=%d)", e.Reason, e.Vertex, e.ReadPos)
}

func invalidBaseError(b byte) error {
	return fmt.Errorf("%w: %q", ErrInvalidBase, b)
}

func isValidBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	default:
		return false
	}
}
